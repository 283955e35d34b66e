package asm

import (
	"strings"
)

// Leading-word field offsets within a word payload.
const (
	opcodeShift = 8
	srcShift    = 6
	destShift   = 4
)

// Register field offsets within a packed register or matrix-index word.
const (
	pairSrcShift  = 6
	pairDestShift = 3
)

// Operand is one parsed instruction operand.
type Operand struct {
	Text   string // Original token text.
	Type   OperandType
	Value  int    // Immediate value, or register ordinal.
	Symbol string // Referenced symbol, for direct and matrix operands.
	Index  [2]int // Matrix row and column registers.
}

// parseOperand classifies and parses a single operand token.
func parseOperand(token string) (op Operand, err error) {
	op.Text = token

	switch {
	case strings.HasPrefix(token, "#"):
		op.Type = Immediate
		op.Value, err = parseValue(token[1:])

	case strings.ContainsRune(token, '['):
		op.Type = Matrix
		op.Symbol, op.Index, err = parseMatrix(token)

	default:
		if reg, ok := registerOf(token); ok {
			op.Type = Register
			op.Value = reg
			return
		}

		op.Type = Direct
		op.Symbol = token
		if !validLabel(token) {
			err = ErrBadLabel(token)
		}
	}

	return
}

// parseMatrix parses a NAME[rA][rB] operand.
func parseMatrix(token string) (name string, index [2]int, err error) {
	open := strings.IndexByte(token, '[')
	name = token[:open]
	if !validLabel(name) {
		err = ErrBadLabel(name)
		return
	}

	rest := token[open:]
	for n := range index {
		if len(rest) == 0 || rest[0] != '[' {
			err = ErrBadMatrix(token)
			return
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			err = ErrBadMatrix(token)
			return
		}

		reg, ok := registerOf(rest[1:end])
		if !ok {
			err = ErrBadRegister(rest[1:end])
			return
		}
		index[n] = reg
		rest = rest[end+1:]
	}

	if rest != "" {
		err = ErrBadMatrix(token)
	}
	return
}

// parseDims parses the [rows][cols] dimension token of a .mat directive.
func parseDims(token string) (size int, err error) {
	rest := token
	size = 1

	for range 2 {
		if len(rest) == 0 || rest[0] != '[' {
			err = ErrBadMatrix(token)
			return
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			err = ErrBadMatrix(token)
			return
		}

		var dim int
		dim, err = parseValue(rest[1:end])
		if err != nil {
			return
		}
		if dim <= 0 {
			err = ErrBadMatrix(token)
			return
		}

		size *= dim
		rest = rest[end+1:]
	}

	if rest != "" {
		err = ErrBadMatrix(token)
	}
	return
}

// parseMat parses a .mat operand list: a [rows][cols] dimension token,
// then initial values. The declared size bounds the value count.
func parseMat(operands string) (size int, values []int, err error) {
	tokens := splitOperands(operands)
	if len(tokens) == 0 {
		err = ErrOperandMissing
		return
	}

	size, err = parseDims(tokens[0])
	if err != nil {
		return
	}

	for _, token := range tokens[1:] {
		var value int
		value, err = parseValue(token)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	if len(values) > size {
		err = ErrMatSize{Size: size, Got: len(values)}
	}
	return
}

// instructionWords is the encoded size of an instruction: the leading word
// plus its operand words. A two-register pair shares one operand word; a
// matrix operand takes two. Pass 1 sizing and Pass 2 emission both use
// this rule, so their counts always agree.
func instructionWords(ops []Operand) (words int) {
	words = 1

	if len(ops) == 2 && ops[0].Type == Register && ops[1].Type == Register {
		return words + 1
	}

	for _, op := range ops {
		if op.Type == Matrix {
			words += 2
		} else {
			words++
		}
	}

	return
}

// parseInstruction parses operand tokens and checks them against the
// catalog entry's arity and slot masks.
func parseInstruction(inst *Instruction, tokens []string) (ops []Operand, err error) {
	if len(tokens) != inst.Operands {
		err = ErrOperandCount{Name: inst.Name, Want: inst.Operands, Got: len(tokens)}
		return
	}

	for _, token := range tokens {
		var op Operand
		op, err = parseOperand(token)
		if err != nil {
			return
		}
		ops = append(ops, op)
	}

	var masks []TypeMask
	switch inst.Operands {
	case 2:
		masks = []TypeMask{inst.Src, inst.Dest}
	case 1:
		masks = []TypeMask{inst.Dest}
	}

	for n, op := range ops {
		if !masks[n].Has(op.Type) {
			err = ErrBadOperand{Operand: op.Text, Type: op.Type}
			return
		}
	}

	return
}
