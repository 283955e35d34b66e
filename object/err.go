package object

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

var (
	// Artifact decode errors
	ErrImageHeader = errors.New(f("object header malformed"))
	ErrImageShort  = errors.New(f("object record missing"))
)

type ErrBadToken string

func (err ErrBadToken) Error() string {
	return f("'%v' is not a word token", string(err))
}

type ErrBadTag int

func (err ErrBadTag) Error() string {
	return f("%v is not a relocation tag", int(err))
}

type ErrBadRecord string

func (err ErrBadRecord) Error() string {
	return f("'%v' is not an address record", string(err))
}
