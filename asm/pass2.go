// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/uasm/object"
)

// secondPass re-walks the expanded source and emits encoded words. It runs
// with both counters reset to their initial values, against the complete,
// rebased symbol table. Defects the first pass already reported are
// skipped silently here; only resolution errors are new.
func (s *Session) secondPass(lines []string) {
	s.ic = s.cfg.InitialIC
	s.dc = 0
	s.image = object.NewImage(s.cfg.InitialIC)
	s.externals = nil

	for n, text := range lines {
		s.encodeLine(n+1, text)
	}
}

// encodeLine handles one line of the second pass.
func (s *Session) encodeLine(lineno int, text string) {
	statement := strings.TrimSpace(stripComment(text))
	if statement == "" {
		return
	}

	statement, err := expandExprs(statement)
	if err != nil {
		return
	}

	_, rest := splitLabel(statement)
	if rest == "" {
		return
	}

	keyword, operands := splitStatement(rest)
	if strings.HasPrefix(keyword, ".") {
		s.encodeDirective(lineno, text, keyword, operands)
		return
	}

	inst, ok := Lookup(keyword)
	if !ok {
		return
	}

	ops, err := parseInstruction(inst, splitOperands(operands))
	if err != nil {
		return
	}

	s.encodeInstruction(lineno, text, inst, ops)
}

// encodeInstruction emits the leading word and the operand words.
func (s *Session) encodeInstruction(lineno int, text string, inst *Instruction, ops []Operand) {
	var src, dest *Operand
	switch len(ops) {
	case 2:
		src, dest = &ops[0], &ops[1]
	case 1:
		dest = &ops[0]
	}

	lead := int(inst.Op) << opcodeShift
	if src != nil {
		lead |= int(src.Type) << srcShift
	}
	if dest != nil {
		lead |= int(dest.Type) << destShift
	}

	addr := s.emitCode(object.NewWord(lead, object.Absolute))
	glog.V(3).Infof("%v:%v: %v leading word at %v", s.ExpandedName(), lineno, inst.Name, addr)

	// A register pair shares one packed operand word.
	if src != nil && dest != nil && src.Type == Register && dest.Type == Register {
		s.emitCode(object.NewWord(src.Value<<pairSrcShift|dest.Value<<pairDestShift, object.Absolute))
		return
	}

	for n := range ops {
		s.encodeOperand(lineno, text, &ops[n])
	}
}

// encodeOperand emits the words of one unpacked operand.
func (s *Session) encodeOperand(lineno int, text string, op *Operand) {
	switch op.Type {
	case Immediate:
		s.emitCode(object.NewWord(op.Value, object.Absolute))

	case Direct:
		s.encodeSymbolWord(lineno, text, op.Symbol)

	case Matrix:
		s.encodeSymbolWord(lineno, text, op.Symbol)
		s.emitCode(object.NewWord(op.Index[0]<<pairSrcShift|op.Index[1]<<pairDestShift, object.Absolute))

	case Register:
		s.emitCode(object.NewWord(op.Value, object.Absolute))
	}
}

// encodeSymbolWord emits the address word for a symbol reference. An
// external reference emits a zero word for the linker and records the
// use-site; an unresolved reference records the defect and emits a
// placeholder so word counts stay aligned with the first pass.
func (s *Session) encodeSymbolWord(lineno int, text string, name string) {
	sym, ok := s.symbols.Find(name)
	if !ok {
		s.record(lineno, text, ErrUndefinedLabel(name))
		s.emitCode(object.NewWord(0, object.Absolute))
		return
	}

	if sym.External {
		addr := s.emitCode(object.NewWord(0, object.External))
		s.externals = append(s.externals, ExternalRef{Name: name, Address: addr})
		return
	}

	s.emitCode(object.NewWord(sym.Address, object.Relocatable))
}

// encodeDirective emits data words and resolves entry markings.
func (s *Session) encodeDirective(lineno int, text, keyword, operands string) {
	switch keyword {
	case dirData:
		values, err := parseDataValues(operands)
		if err != nil {
			return
		}
		for _, value := range values {
			s.emitData(object.NewWord(value, object.Absolute))
		}

	case dirString:
		ordinals, err := stringWords(operands)
		if err != nil {
			return
		}
		for _, ordinal := range ordinals {
			s.emitData(object.NewWord(ordinal, object.Absolute))
		}
		s.emitData(object.NewWord(0, object.Absolute))

	case dirMat:
		size, values, err := parseMat(operands)
		if err != nil {
			return
		}
		for _, value := range values {
			s.emitData(object.NewWord(value, object.Absolute))
		}
		for n := len(values); n < size; n++ {
			s.emitData(object.NewWord(0, object.Absolute))
		}

	case dirEntry:
		tokens := splitOperands(operands)
		if len(tokens) != 1 {
			s.record(lineno, text, ErrOperandCount{Name: dirEntry, Want: 1, Got: len(tokens)})
			return
		}

		sym, ok := s.symbols.Find(tokens[0])
		switch {
		case !ok:
			s.record(lineno, text, ErrUndefinedLabel(tokens[0]))
		case sym.External:
			s.record(lineno, text, ErrEntryExternal)
		default:
			sym.Entry = true
		}

	case dirExtern:
		// Fully handled during the first pass.
	}
}

// emitCode appends one word to the instruction segment, returning its
// address.
func (s *Session) emitCode(w object.Word) (addr int) {
	addr = s.ic
	s.image.AppendCode(w)
	s.ic++
	return
}

// emitData appends one word to the data segment.
func (s *Session) emitData(w object.Word) {
	s.image.AppendData(w)
	s.dc++
}
