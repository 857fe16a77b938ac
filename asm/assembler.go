// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/vm6502/memory"
)

// Assembler is a two pass assembler for the 6502 instruction set.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]uint16 // Predefined constants.
}

// Predefine defines a constant visible to every assembled program, or
// redefines an existing one.
func (asm *Assembler) Predefine(name string, value uint16) {
	if asm.predefine == nil {
		asm.predefine = map[string]uint16{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse assembles an input stream into memory at the load address.
func (asm *Assembler) Parse(input io.Reader, mem *memory.Memory, load uint16) (prog *Program, err error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(string(source), mem, load)
	return
}

// Assemble assembles source text into memory at the load address.
// On error, memory is left unmodified.
func (asm *Assembler) Assemble(source string, mem *memory.Memory, load uint16) (prog *Program, err error) {
	tokens := Lex(source)

	symbols := &SymbolTable{}
	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		err = symbols.Define(name, asm.predefine[name])
		if err != nil {
			return
		}
	}

	ps := &parser{
		source:  source,
		tokens:  tokens,
		symbols: symbols,
	}
	err = ps.parse()
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("parsed %d instructions, %d symbols", len(ps.instructions), len(symbols.Symbols))
	}

	cg := &codegen{
		verbose:      asm.Verbose,
		source:       source,
		tokens:       tokens,
		symbols:      symbols,
		instructions: ps.instructions,
		load:         load,
	}

	err = cg.fixup()
	if err != nil {
		return
	}

	err = cg.emit()
	if err != nil {
		return
	}

	err = cg.commit(mem)
	if err != nil {
		return
	}

	prog = &Program{
		Load:         load,
		End:          cg.end,
		Instructions: cg.instructions,
		Symbols:      *symbols,
	}

	return
}

// Assemble assembles source text into memory at the load address, with
// no predefined constants.
func Assemble(source string, mem *memory.Memory, load uint16) (prog *Program, err error) {
	return (&Assembler{}).Assemble(source, mem, load)
}
