package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}

	assert.NoError(st.Define("Screen", 0x0200))
	assert.NoError(st.DeclareLabel("loop", 3))

	sym, ok := st.Lookup("SCREEN")
	assert.True(ok)
	assert.False(sym.IsLabel)
	assert.Equal(uint16(0x0200), sym.Value)

	sym, ok = st.Lookup("Loop")
	assert.True(ok)
	assert.True(sym.IsLabel)
	assert.Equal(3, sym.Instruction)

	_, ok = st.Lookup("missing")
	assert.False(ok)

	assert.ErrorIs(st.Define("screen", 1), ErrSymbolDuplicate)
	assert.ErrorIs(st.DeclareLabel("LOOP", 4), ErrSymbolDuplicate)
	assert.ErrorIs(st.DeclareLabel("screen", 4), ErrSymbolDuplicate)
	assert.Equal(2, len(st.Symbols))
}
