package object

import (
	"iter"

	"github.com/ezrec/uasm/internal"
)

// Image is one assembled memory image: the instruction segment, loaded at
// CodeBase, followed immediately by the data segment.
type Image struct {
	CodeBase int    // Load address of the first instruction word.
	Code     []Word // Instruction segment.
	Data     []Word // Data segment.
}

// NewImage returns an empty image loading at codeBase.
func NewImage(codeBase int) *Image {
	return &Image{CodeBase: codeBase}
}

// AppendCode appends one word to the instruction segment.
func (img *Image) AppendCode(w Word) {
	img.Code = append(img.Code, w)
}

// AppendData appends one word to the data segment.
func (img *Image) AppendData(w Word) {
	img.Data = append(img.Data, w)
}

// DataBase is the load address of the first data word.
func (img *Image) DataBase() int {
	return img.CodeBase + len(img.Code)
}

// Size is the total number of words.
func (img *Image) Size() int {
	return len(img.Code) + len(img.Data)
}

// Words iterates every (address, word) pair, instructions before data.
func (img *Image) Words() iter.Seq2[int, Word] {
	return internal.Seq2Concat(
		segment(img.CodeBase, img.Code),
		segment(img.DataBase(), img.Data),
	)
}

func segment(base int, words []Word) iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		for n, w := range words {
			if !yield(base+n, w) {
				return
			}
		}
	}
}
