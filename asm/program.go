package asm

import (
	"iter"
)

// Program is the listing of an assembled program.
type Program struct {
	Load         uint16 // Address of the first instruction.
	End          uint16 // Address past the last instruction.
	Instructions []Instruction
	Symbols      SymbolTable
}

// Debug locates an address within an instruction.
type Debug struct {
	*Instruction
	Index int // Byte offset of the address within the instruction.
}

// Debug returns the instruction that contains addr, if any.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, inst := range prog.Instructions {
		if addr >= inst.Address && int(addr) < int(inst.Address)+len(inst.Bytes) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       int(addr - inst.Address),
			}
			break
		}
	}

	return
}

// LineNo returns the source line of the instruction containing addr, or 0.
func (prog *Program) LineNo(addr uint16) int {
	dbg := prog.Debug(addr)
	if dbg.Instruction == nil {
		return 0
	}
	return dbg.LineNo
}

// Codes iterates over each address and byte of the program.
func (prog *Program) Codes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, code byte) bool) {
		for _, inst := range prog.Instructions {
			for n, code := range inst.Bytes {
				if !yield(inst.Address+uint16(n), code) {
					return
				}
			}
		}
	}
}

// Binary returns the program image, starting at the load address.
func (prog *Program) Binary() (bin []byte) {
	for _, code := range prog.Codes() {
		bin = append(bin, code)
	}

	return
}

// Label returns the address of a label.
func (prog *Program) Label(name string) (addr uint16, ok bool) {
	sym, ok := prog.Symbols.Lookup(name)
	if !ok || !sym.IsLabel {
		ok = false
		return
	}

	if sym.Instruction >= len(prog.Instructions) {
		addr = prog.End
	} else {
		addr = prog.Instructions[sym.Instruction].Address
	}

	return
}
