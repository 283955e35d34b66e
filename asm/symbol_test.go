package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	table := &SymbolTable{}

	err := table.Declare(Symbol{Name: "A", Address: 100})
	assert.NoError(err)
	err = table.Declare(Symbol{Name: "B", Address: 0, Data: true})
	assert.NoError(err)
	err = table.Declare(Symbol{Name: "X", External: true})
	assert.NoError(err)

	assert.Equal(3, table.Len())

	err = table.Declare(Symbol{Name: "A", Address: 200})
	assert.Equal(ErrDuplicateLabel("A"), err)

	// External redeclaration is harmless.
	err = table.Declare(Symbol{Name: "X", External: true})
	assert.NoError(err)
	assert.Equal(3, table.Len())

	err = table.Declare(Symbol{Name: "X", Address: 104})
	assert.Equal(ErrDuplicateLabel("X"), err)

	sym, ok := table.Find("B")
	assert.True(ok)
	assert.Equal(0, sym.Address)

	table.Rebase(110)

	// Only data symbols move.
	assert.Equal(110, sym.Address)
	a, _ := table.Find("A")
	assert.Equal(100, a.Address)
	x, _ := table.Find("X")
	assert.Equal(0, x.Address)

	var names []string
	for name := range table.All() {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "B", "X"}, names)
}
