// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"

	"github.com/golang/glog"

	"github.com/ezrec/uasm/object"
)

// Source and intermediate file extensions.
const (
	SourceExt   = ".as"
	ExpandedExt = ".am"
)

// Config bounds one assembly session.
type Config struct {
	Name          string // Unit base name, used in diagnostics.
	InitialIC     int    // First instruction address.
	MemorySize    int    // Total addressable words.
	MaxLineLength int    // Longest accepted source line, in bytes.
	MaxMacroLines int    // Longest accepted macro body, in lines.
}

// DefaultConfig returns the standard machine limits for a unit.
func DefaultConfig(name string) Config {
	return Config{
		Name:          name,
		InitialIC:     100,
		MemorySize:    4096,
		MaxLineLength: 256,
		MaxMacroLines: 100,
	}
}

// ExternalRef is one use of an external symbol: a word a linker must patch.
type ExternalRef struct {
	Name    string
	Address int
}

// Session is all mutable state for assembling one unit. Use a fresh
// session per unit; nothing carries over between units.
type Session struct {
	cfg Config

	macros    MacroTable
	symbols   SymbolTable
	image     *object.Image
	externals []ExternalRef
	errs      []error

	ic int
	dc int
}

// NewSession prepares a session with the given limits.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg:   cfg,
		image: object.NewImage(cfg.InitialIC),
	}
}

// SourceName is the unit's source stream name, for diagnostics.
func (s *Session) SourceName() string {
	return s.cfg.Name + SourceExt
}

// ExpandedName is the unit's intermediate stream name, for diagnostics.
func (s *Session) ExpandedName() string {
	return s.cfg.Name + ExpandedExt
}

// Macros exposes the unit's macro table.
func (s *Session) Macros() *MacroTable {
	return &s.macros
}

// Symbols exposes the unit's symbol table.
func (s *Session) Symbols() *SymbolTable {
	return &s.symbols
}

// Image is the memory image emitted by the second pass.
func (s *Session) Image() *object.Image {
	return s.image
}

// Externals lists every external use-site, in emission order.
func (s *Session) Externals() []ExternalRef {
	return s.externals
}

// Errors lists the recorded per-line errors.
func (s *Session) Errors() []error {
	return s.errs
}

// Failed reports whether any error was recorded; a failed unit must
// produce no artifacts.
func (s *Session) Failed() bool {
	return len(s.errs) > 0
}

// Entries returns the entry-flagged symbols as artifact exports, in
// declaration order.
func (s *Session) Entries() (exports []object.Export) {
	for _, sym := range s.symbols.All() {
		if sym.Entry {
			exports = append(exports, object.Export{Name: sym.Name, Address: sym.Address})
		}
	}
	return
}

// ExternalUses returns the external use-sites as artifact exports.
func (s *Session) ExternalUses() (exports []object.Export) {
	for _, ref := range s.externals {
		exports = append(exports, object.Export{Name: ref.Name, Address: ref.Address})
	}
	return
}

// record notes a per-line error and lets the scan continue.
func (s *Session) record(lineno int, text string, err error) {
	s.errs = append(s.errs, ErrLine{
		File:   s.ExpandedName(),
		LineNo: lineno,
		Line:   text,
		Err:    err,
	})
}

// Assemble runs both passes over the expanded source lines. The returned
// error joins every recorded defect; a nil return means the unit is clean
// and its image, entries, and externals may be written out.
func (s *Session) Assemble(lines []string) (err error) {
	err = s.firstPass(lines)
	if err != nil {
		return
	}

	s.secondPass(lines)

	glog.V(2).Infof("%v: %v code words, %v data words, %v symbols",
		s.cfg.Name, len(s.image.Code), len(s.image.Data), s.symbols.Len())

	err = errors.Join(s.errs...)
	return
}

// AssembleSource expands and assembles a source unit in one step.
func (s *Session) AssembleSource(input io.Reader) (err error) {
	lines, err := s.Expand(input)
	if err != nil {
		return
	}

	return s.Assemble(lines)
}
