package asm

import (
	"strings"
)

// Symbol is a named constant or label.
type Symbol struct {
	Name        string
	Value       uint16 // Constant value, if not a label.
	IsLabel     bool
	Instruction int // Index of the instruction following a label.
}

// SymbolTable is an append-only list of uniquely named symbols.
// Names compare case-insensitively.
type SymbolTable struct {
	Symbols []Symbol
}

func (st *SymbolTable) insert(sym Symbol) (err error) {
	_, found := st.Lookup(sym.Name)
	if found {
		err = ErrSymbolDuplicate
		return
	}

	st.Symbols = append(st.Symbols, sym)
	return
}

// Define adds a constant.
func (st *SymbolTable) Define(name string, value uint16) error {
	return st.insert(Symbol{Name: name, Value: value})
}

// DeclareLabel adds a label bound to an instruction index.
func (st *SymbolTable) DeclareLabel(name string, instruction int) error {
	return st.insert(Symbol{Name: name, IsLabel: true, Instruction: instruction})
}

// Lookup finds a symbol by name.
func (st *SymbolTable) Lookup(name string) (sym Symbol, ok bool) {
	for _, sym = range st.Symbols {
		if strings.EqualFold(sym.Name, name) {
			ok = true
			return
		}
	}

	sym = Symbol{}
	return
}
