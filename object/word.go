package object

import (
	"fmt"
	"strconv"
)

// Reloc tells a loader how to treat a word. The constants are the on-wire
// tag values.
type Reloc int

//go:generate go tool stringer -linecomment -type=Reloc
const (
	Absolute    = Reloc(0) // absolute
	External    = Reloc(1) // external
	Relocatable = Reloc(2) // relocatable
)

// Word geometry.
const (
	// PayloadBits is the width of a word's value field.
	PayloadBits = 12
	// TagBits is the width of a word's relocation tag field.
	TagBits = 3

	// MaxValue and MinValue bound a signed payload.
	MaxValue = (1 << (PayloadBits - 1)) - 1
	MinValue = -(1 << (PayloadBits - 1))
	// MaxOrdinal bounds an unsigned payload, such as an address or a
	// character code.
	MaxOrdinal = (1 << PayloadBits) - 1

	payloadMask = (1 << PayloadBits) - 1
	tagMask     = (1 << TagBits) - 1

	// Octal digits in a rendered token.
	tokenDigits = (PayloadBits + TagBits) / 3
)

// Word is one memory cell: a payload value and its relocation tag.
type Word struct {
	Value uint16
	Tag   Reloc
}

// NewWord builds a word from a signed or unsigned payload, truncating to
// the payload width.
func NewWord(value int, tag Reloc) Word {
	return Word{Value: uint16(value) & payloadMask, Tag: tag}
}

// Token renders the word as a fixed-width octal token, tag in the low bits.
func (w Word) Token() string {
	return fmt.Sprintf("%0*o", tokenDigits, (int(w.Value)&payloadMask)<<TagBits|int(w.Tag)&tagMask)
}

// ParseToken decodes a token rendered by Token, reproducing the original
// payload and tag exactly.
func ParseToken(token string) (w Word, err error) {
	if len(token) != tokenDigits {
		err = ErrBadToken(token)
		return
	}

	bits, perr := strconv.ParseUint(token, 8, PayloadBits+TagBits)
	if perr != nil {
		err = ErrBadToken(token)
		return
	}

	tag := Reloc(bits & tagMask)
	if tag > Relocatable {
		err = ErrBadTag(int(tag))
		return
	}

	w = Word{Value: uint16(bits >> TagBits), Tag: tag}
	return
}
