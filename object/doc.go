// Package object models the memory words produced by the assembler and the
// textual artifacts that carry them between tools.
//
// A word is a 12-bit payload plus a 3-bit relocation tag. On disk a word is
// a 5-digit octal token holding the payload above the tag, addresses are
// 4-digit decimal, and the rendering is exactly reversible. Three artifact
// kinds exist: the object image (.ob), exported entry symbols (.ent), and
// external use-sites (.ext).
package object
