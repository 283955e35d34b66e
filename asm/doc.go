// Package asm implements a two-pass macro assembler for a small fixed-width
// teaching CPU.
//
// A source unit is line oriented: an optional `label:` prefix, then an
// instruction mnemonic or a dot-directive, then operands. The preprocessor
// expands mcro/mcroend macro definitions into a flat intermediate, the
// first pass sizes every statement and binds each label to an address, and
// the second pass encodes instructions and data into a memory image,
// recording every use-site of an external symbol for a later linking stage.
//
// All mutable state for one unit lives in a Session; a batch assembles each
// unit with a fresh Session so nothing leaks between units.
package asm
