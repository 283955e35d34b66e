package object

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Artifact file extensions.
const (
	ObjectExt    = ".ob"
	EntriesExt   = ".ent"
	ExternalsExt = ".ext"
)

// Export is one name/address record in an entries or externals artifact.
type Export struct {
	Name    string
	Address int
}

// Marshal writes the image as an object artifact: a header holding the two
// segment sizes, then one address/token record per word, instructions
// before data.
func (img *Image) Marshal(file io.Writer) (err error) {
	_, err = fmt.Fprintf(file, "%d %d\n", len(img.Code), len(img.Data))
	if err != nil {
		return
	}

	for addr, w := range img.Words() {
		_, err = fmt.Fprintf(file, "%04d %s\n", addr, w.Token())
		if err != nil {
			return
		}
	}

	return
}

// Unmarshal replaces the image with the contents of an object artifact.
// The decoded image reproduces the marshaled one exactly.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	scanner := bufio.NewScanner(file)

	if !scanner.Scan() {
		err = scanner.Err()
		if err == nil {
			err = ErrImageHeader
		}
		return
	}

	counts := strings.Fields(scanner.Text())
	if len(counts) != 2 {
		err = ErrImageHeader
		return
	}
	ncode, err := strconv.Atoi(counts[0])
	if err != nil {
		err = ErrImageHeader
		return
	}
	ndata, err := strconv.Atoi(counts[1])
	if err != nil {
		err = ErrImageHeader
		return
	}

	img.Code = make([]Word, 0, ncode)
	img.Data = make([]Word, 0, ndata)
	img.CodeBase = 0

	for n := 0; n < ncode+ndata; n++ {
		if !scanner.Scan() {
			err = scanner.Err()
			if err == nil {
				err = ErrImageShort
			}
			return
		}

		var addr int
		var w Word
		addr, w, err = parseRecord(scanner.Text())
		if err != nil {
			return
		}

		if n == 0 {
			img.CodeBase = addr
		}
		if n < ncode {
			img.Code = append(img.Code, w)
		} else {
			img.Data = append(img.Data, w)
		}
	}

	return scanner.Err()
}

// parseRecord decodes one "address token" artifact line.
func parseRecord(line string) (addr int, w Word, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		err = ErrBadRecord(line)
		return
	}

	addr, err = strconv.Atoi(fields[0])
	if err != nil || addr < 0 {
		err = ErrBadRecord(line)
		return
	}

	w, err = ParseToken(fields[1])
	return
}

// MarshalExports writes one name/address record per export.
func MarshalExports(file io.Writer, exports []Export) (err error) {
	for _, export := range exports {
		_, err = fmt.Fprintf(file, "%s %04d\n", export.Name, export.Address)
		if err != nil {
			return
		}
	}

	return
}

// UnmarshalExports parses an entries or externals artifact.
func UnmarshalExports(file io.Reader) (exports []Export, err error) {
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			err = ErrBadRecord(scanner.Text())
			return
		}

		var addr int
		addr, err = strconv.Atoi(fields[1])
		if err != nil {
			err = ErrBadRecord(scanner.Text())
			return
		}

		exports = append(exports, Export{Name: fields[0], Address: addr})
	}

	err = scanner.Err()
	return
}

// CreateFS is an artifact destination: a file system that supports file
// creation.
type CreateFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS returns a CreateFS rooted at dir.
func DirFS(dir string) CreateFS {
	return dirFS(dir)
}

type dirFS string

func (dir dirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(filepath.Join(string(dir), name))
}

// WriteUnit writes the artifacts of one assembled unit under the given base
// name: the object image always, the entries and externals artifacts only
// when they have records.
func WriteUnit(filesys CreateFS, base string, img *Image, entries, externals []Export) (err error) {
	err = createAndMarshal(filesys, base+ObjectExt, img.Marshal)
	if err != nil {
		return
	}

	if len(entries) > 0 {
		err = createAndMarshal(filesys, base+EntriesExt, func(file io.Writer) error {
			return MarshalExports(file, entries)
		})
		if err != nil {
			return
		}
	}

	if len(externals) > 0 {
		err = createAndMarshal(filesys, base+ExternalsExt, func(file io.Writer) error {
			return MarshalExports(file, externals)
		})
	}

	return
}

// createAndMarshal creates one artifact file and fills it.
func createAndMarshal(filesys CreateFS, name string, marshal func(io.Writer) error) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = marshal(file)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}

	return
}
