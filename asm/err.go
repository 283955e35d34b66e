package asm

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrLineTooLong  = errors.New(f("line too long"))
	ErrStringSyntax = errors.New(f("string not quoted"))

	// Macro errors
	ErrMacroName    = errors.New(f("macro name missing"))
	ErrMacroTooLong = errors.New(f("macro body too long"))

	// Pass errors
	ErrMemoryFull     = errors.New(f("memory image full"))
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrEntryExternal  = errors.New(f("external symbol cannot be an entry"))
)

type ErrBadLabel string

func (err ErrBadLabel) Error() string {
	return f("'%v' is not a valid label", string(err))
}

type ErrBadInteger string

func (err ErrBadInteger) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrBadRegister string

func (err ErrBadRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrBadMatrix string

func (err ErrBadMatrix) Error() string {
	return f("'%v' is not a matrix operand", string(err))
}

type ErrBadExpression string

func (err ErrBadExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %v does not fit in a word", int(err))
}

type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction '%v'", string(err))
}

type ErrUnknownDirective string

func (err ErrUnknownDirective) Error() string {
	return f("unknown directive '%v'", string(err))
}

type ErrDuplicateLabel string

func (err ErrDuplicateLabel) Error() string {
	return f("label '%v' already defined", string(err))
}

type ErrUndefinedLabel string

func (err ErrUndefinedLabel) Error() string {
	return f("label '%v' undefined", string(err))
}

type ErrMacroNotFound string

func (err ErrMacroNotFound) Error() string {
	return f("macro '%v' not found", string(err))
}

// ErrBadOperand reports an operand whose type the instruction slot
// does not permit.
type ErrBadOperand struct {
	Operand string
	Type    OperandType
}

func (err ErrBadOperand) Error() string {
	return f("%v operand '%v' not allowed here", err.Type, err.Operand)
}

// ErrOperandCount reports a statement with the wrong number of operands.
type ErrOperandCount struct {
	Name string
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %v operands, got %v", err.Name, err.Want, err.Got)
}

// ErrMatSize reports more matrix values than the declared dimensions hold.
type ErrMatSize struct {
	Size int
	Got  int
}

func (err ErrMatSize) Error() string {
	return f("matrix holds %v values, got %v", err.Size, err.Got)
}

// ErrLine locates an error in the source or expanded stream.
type ErrLine struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("%v line %d '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
