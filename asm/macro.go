package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/uasm/internal"
)

// Macro definition keywords, in both historical spellings.
var (
	macroOpen  = map[string]bool{"mcro": true, "macr": true}
	macroClose = map[string]bool{"mcroend": true, "endmacr": true}
)

// Macro is one preprocessor macro: the verbatim body lines substituted for
// each invocation.
type Macro struct {
	Name  string
	Lines []string
}

// MacroTable stores macros in definition order.
type MacroTable struct {
	macros internal.OrderedMap[*Macro]
}

// Define registers a macro body. Redefining a name replaces its body.
func (t *MacroTable) Define(name string, lines []string) {
	if _, ok := t.macros.Get(name); ok {
		glog.Warningf("macro %q redefined", name)
	}

	t.macros.Set(name, &Macro{Name: name, Lines: lines})
}

// Find returns the named macro, if defined.
func (t *MacroTable) Find(name string) (macro *Macro, ok bool) {
	return t.macros.Get(name)
}

// Len returns the number of defined macros.
func (t *MacroTable) Len() int {
	return t.macros.Len()
}

// Expand returns the named macro's body lines.
func (t *MacroTable) Expand(name string) (lines []string, err error) {
	macro, ok := t.macros.Get(name)
	if !ok {
		err = ErrMacroNotFound(name)
		return
	}

	lines = macro.Lines
	return
}

// Expand runs the macro preprocessor over one source unit, returning the
// flat intermediate lines. Definitions are collected and elided; an
// invocation line is replaced by the macro's stored body, verbatim and
// never re-scanned; everything else passes through unchanged.
func (s *Session) Expand(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var macro *Macro

	fail := func(text string, ferr error) error {
		return ErrLine{File: s.SourceName(), LineNo: lineno, Line: text, Err: ferr}
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if len(text) > s.cfg.MaxLineLength {
			err = fail(text[:s.cfg.MaxLineLength], ErrLineTooLong)
			return
		}

		statement := strings.TrimSpace(text)
		token := firstToken(statement)

		switch {
		case macro != nil && macroClose[token]:
			// Empty bodies are dropped wholesale.
			if len(macro.Lines) > 0 {
				s.macros.Define(macro.Name, macro.Lines)
			}
			macro = nil

		case macro != nil:
			macro.Lines = append(macro.Lines, text)
			if len(macro.Lines) > s.cfg.MaxMacroLines {
				err = fail(text, ErrMacroTooLong)
				return
			}

		case macroOpen[token]:
			rest := strings.TrimSpace(statement[len(token):])
			name := firstToken(rest)
			if name == "" {
				err = fail(text, ErrMacroName)
				return
			}
			if name != rest {
				glog.Warningf("%v: text after macro name %q ignored", s.SourceName(), name)
			}
			macro = &Macro{Name: name}

		case statement == "" || statement[0] == ';':
			// Blank and comment lines pass through unchanged.
			lines = append(lines, text)

		default:
			_, invocation := splitLabel(stripComment(statement))
			body, merr := s.macros.Expand(firstToken(invocation))
			switch merr.(type) {
			case nil:
				glog.V(2).Infof("%v:%v: expanding macro %q", s.SourceName(), lineno, firstToken(invocation))
				lines = append(lines, body...)
			case ErrMacroNotFound:
				lines = append(lines, text)
			}
		}
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		glog.Warningf("%v: input ended inside macro %q; definition dropped", s.SourceName(), macro.Name)
	}

	return
}
