package object

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memFS collects created artifacts in memory.
type memFS struct {
	files map[string]*bytes.Buffer
}

func newMemFS() *memFS {
	return &memFS{files: map[string]*bytes.Buffer{}}
}

func (m *memFS) Create(name string) (file io.WriteCloser, err error) {
	buf := &bytes.Buffer{}
	m.files[name] = buf
	return nopCloser{buf}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func TestImageMarshal(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(100)
	img.AppendCode(Word{Value: 0x0f0, Tag: Absolute})
	img.AppendCode(Word{Value: 0x050, Tag: Absolute})
	img.AppendData(Word{Value: 1, Tag: Absolute})
	img.AppendData(Word{Value: 2, Tag: Absolute})
	img.AppendData(Word{Value: 3, Tag: Absolute})

	assert.Equal(102, img.DataBase())
	assert.Equal(5, img.Size())

	buf := &bytes.Buffer{}
	err := img.Marshal(buf)
	assert.NoError(err)

	expected := []string{
		"2 3",
		"0100 03600",
		"0101 01200",
		"0102 00010",
		"0103 00020",
		"0104 00030",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buf.String())
}

func TestImageUnmarshal(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(100)
	img.AppendCode(Word{Value: 0x70, Tag: Absolute})
	img.AppendCode(Word{Value: 0, Tag: External})
	img.AppendCode(Word{Value: 103, Tag: Relocatable})
	img.AppendData(Word{Value: 0xfff, Tag: Absolute})

	buf := &bytes.Buffer{}
	err := img.Marshal(buf)
	assert.NoError(err)

	decoded := &Image{}
	err = decoded.Unmarshal(buf)
	assert.NoError(err)
	assert.Equal(img, decoded)
}

func TestImageUnmarshalErr(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input string
		err   error
	}){
		{"", ErrImageHeader},
		{"2\n", ErrImageHeader},
		{"x y\n", ErrImageHeader},
		{"1 x\n", ErrImageHeader},
		{"1 1\n0100 00000\n", ErrImageShort},
		{"1 0\n0100\n", ErrBadRecord("0100")},
		{"1 0\nabcd 00000\n", ErrBadRecord("abcd 00000")},
		{"1 0\n-100 00000\n", ErrBadRecord("-100 00000")},
		{"1 0\n0100 00003\n", ErrBadTag(3)},
	}

	for _, entry := range table {
		img := &Image{}
		err := img.Unmarshal(strings.NewReader(entry.input))
		assert.Equal(entry.err, err, entry.input)
	}
}

func TestExports(t *testing.T) {
	assert := assert.New(t)

	exports := []Export{
		{Name: "MAIN", Address: 100},
		{Name: "LOOP", Address: 116},
	}

	buf := &bytes.Buffer{}
	err := MarshalExports(buf, exports)
	assert.NoError(err)
	assert.Equal("MAIN 0100\nLOOP 0116\n", buf.String())

	decoded, err := UnmarshalExports(buf)
	assert.NoError(err)
	assert.Equal(exports, decoded)
}

func TestExportsErr(t *testing.T) {
	assert := assert.New(t)

	_, err := UnmarshalExports(strings.NewReader("MAIN\n"))
	assert.Equal(ErrBadRecord("MAIN"), err)

	_, err = UnmarshalExports(strings.NewReader("MAIN abc\n"))
	assert.Equal(ErrBadRecord("MAIN abc"), err)
}

func TestWriteUnit(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(100)
	img.AppendCode(Word{Value: 0xf00, Tag: Absolute})

	entries := []Export{{Name: "MAIN", Address: 100}}
	externals := []Export{{Name: "XPORT", Address: 101}}

	filesys := newMemFS()
	err := WriteUnit(filesys, "demo", img, entries, externals)
	assert.NoError(err)

	assert.Contains(filesys.files, "demo"+ObjectExt)
	assert.Contains(filesys.files, "demo"+EntriesExt)
	assert.Contains(filesys.files, "demo"+ExternalsExt)
	assert.Equal("1 0\n0100 74000\n", filesys.files["demo"+ObjectExt].String())
	assert.Equal("MAIN 0100\n", filesys.files["demo"+EntriesExt].String())
	assert.Equal("XPORT 0101\n", filesys.files["demo"+ExternalsExt].String())
}

func TestWriteUnitOmitsEmpty(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(100)
	img.AppendCode(Word{Value: 0xf00, Tag: Absolute})

	filesys := newMemFS()
	err := WriteUnit(filesys, "demo", img, nil, nil)
	assert.NoError(err)

	assert.Contains(filesys.files, "demo"+ObjectExt)
	assert.NotContains(filesys.files, "demo"+EntriesExt)
	assert.NotContains(filesys.files, "demo"+ExternalsExt)
}
