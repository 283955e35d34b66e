package asm

import (
	"iter"

	"github.com/ezrec/uasm/internal"
)

// Symbol is one label binding.
type Symbol struct {
	Name     string
	Address  int
	External bool // Defined in another unit; Address stays 0.
	Entry    bool // Exported for use by other units.
	Data     bool // Bound in the data segment.
}

// SymbolTable stores symbols in declaration order.
type SymbolTable struct {
	symbols internal.OrderedMap[*Symbol]
}

// Declare binds a name. A non-external name may be bound once; external
// declarations may repeat freely, but never collide with a non-external
// binding of the same name.
func (t *SymbolTable) Declare(sym Symbol) (err error) {
	existing, ok := t.symbols.Get(sym.Name)
	if ok {
		if existing.External && sym.External {
			return
		}
		err = ErrDuplicateLabel(sym.Name)
		return
	}

	t.symbols.Set(sym.Name, &sym)
	return
}

// Find looks up a declared symbol.
func (t *SymbolTable) Find(name string) (sym *Symbol, ok bool) {
	return t.symbols.Get(name)
}

// Len returns the number of declared symbols.
func (t *SymbolTable) Len() int {
	return t.symbols.Len()
}

// Rebase shifts every data symbol up by the final instruction counter, so
// data addresses land after the instruction segment.
func (t *SymbolTable) Rebase(codeEnd int) {
	for _, sym := range t.symbols.All() {
		if sym.Data {
			sym.Address += codeEnd
		}
	}
}

// All iterates the symbols in declaration order.
func (t *SymbolTable) All() iter.Seq2[string, *Symbol] {
	return t.symbols.All()
}
