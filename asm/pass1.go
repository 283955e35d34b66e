// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/golang/glog"
)

// firstPass sizes every line, binds each label to its address, and
// registers external symbols. Per-line defects are recorded and the scan
// continues to the end of the unit; only resource exhaustion aborts.
// Afterwards every data symbol is rebased to sit after the instruction
// segment.
func (s *Session) firstPass(lines []string) (err error) {
	s.ic = s.cfg.InitialIC
	s.dc = 0

	for n, text := range lines {
		s.scanLine(n+1, text)
	}

	s.symbols.Rebase(s.ic)

	if s.ic+s.dc > s.cfg.MemorySize {
		err = ErrMemoryFull
	}
	return
}

// scanLine handles one line of the first pass.
func (s *Session) scanLine(lineno int, text string) {
	statement := strings.TrimSpace(stripComment(text))
	if statement == "" {
		return
	}

	statement, err := expandExprs(statement)
	if err != nil {
		s.record(lineno, text, err)
		return
	}

	label, rest := splitLabel(statement)
	if label != "" && !validLabel(label) {
		s.record(lineno, text, ErrBadLabel(label))
		label = ""
	}

	// A bare label binds to the instruction counter.
	if rest == "" {
		if label != "" {
			s.declare(lineno, text, Symbol{Name: label, Address: s.ic})
		}
		return
	}

	keyword, operands := splitStatement(rest)
	if strings.HasPrefix(keyword, ".") {
		s.scanDirective(lineno, text, label, keyword, operands)
		return
	}

	inst, ok := Lookup(keyword)
	if !ok {
		s.record(lineno, text, ErrUnknownInstruction(keyword))
		return
	}

	if label != "" {
		s.declare(lineno, text, Symbol{Name: label, Address: s.ic})
	}

	ops, err := parseInstruction(inst, splitOperands(operands))
	if err != nil {
		s.record(lineno, text, err)
		return
	}

	glog.V(3).Infof("%v:%v: %v sized %v words at %v", s.ExpandedName(), lineno, inst.Name, instructionWords(ops), s.ic)
	s.ic += instructionWords(ops)
}

// scanDirective handles a dot-directive during the first pass.
func (s *Session) scanDirective(lineno int, text, label, keyword, operands string) {
	// Entry and extern directives ignore a label prefix.
	if label != "" && (keyword == dirEntry || keyword == dirExtern) {
		glog.Warningf("%v:%v: label %q on %v ignored", s.ExpandedName(), lineno, label, keyword)
		label = ""
	}

	switch keyword {
	case dirData:
		if label != "" {
			s.declare(lineno, text, Symbol{Name: label, Address: s.dc, Data: true})
		}
		values, err := parseDataValues(operands)
		if err != nil {
			s.record(lineno, text, err)
			return
		}
		s.dc += len(values)

	case dirString:
		if label != "" {
			s.declare(lineno, text, Symbol{Name: label, Address: s.dc, Data: true})
		}
		ordinals, err := stringWords(operands)
		if err != nil {
			s.record(lineno, text, err)
			return
		}
		s.dc += len(ordinals) + 1

	case dirMat:
		if label != "" {
			s.declare(lineno, text, Symbol{Name: label, Address: s.dc, Data: true})
		}
		size, _, err := parseMat(operands)
		if err != nil {
			s.record(lineno, text, err)
			return
		}
		s.dc += size

	case dirEntry:
		// Resolved during the second pass, once every symbol exists.

	case dirExtern:
		tokens := splitOperands(operands)
		if len(tokens) != 1 {
			s.record(lineno, text, ErrOperandCount{Name: dirExtern, Want: 1, Got: len(tokens)})
			return
		}
		if !validLabel(tokens[0]) {
			s.record(lineno, text, ErrBadLabel(tokens[0]))
			return
		}
		s.declare(lineno, text, Symbol{Name: tokens[0], External: true})

	default:
		s.record(lineno, text, ErrUnknownDirective(keyword))
	}
}

// declare binds a symbol, recording a duplicate as a per-line error.
func (s *Session) declare(lineno int, text string, sym Symbol) {
	err := s.symbols.Declare(sym)
	if err != nil {
		s.record(lineno, text, err)
	}
}
