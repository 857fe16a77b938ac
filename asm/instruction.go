package asm

import (
	"fmt"

	"github.com/ezrec/vm6502/opcode"
)

// Instruction is a parsed instruction, filled in by code generation.
type Instruction struct {
	Mnemonic opcode.Mnemonic
	Mode     opcode.Mode
	Legal    opcode.ModeMask // Legal modes for the mnemonic.
	Operand  uint16          // Literal or resolved operand.
	Symbol   int             // Token index of a deferred operand, or -1.
	Token    int             // Token index of the mnemonic.
	LineNo   int             // Source line.
	Address  uint16          // Load address, set by the first pass.
	Bytes    []byte          // Encoded bytes, set by the second pass.
}

// Deferred reports whether the operand is a symbol reference.
func (inst *Instruction) Deferred() bool {
	return inst.Symbol >= 0
}

func (inst *Instruction) String() string {
	return fmt.Sprintf("%04X %v %v % X", inst.Address, inst.Mnemonic, inst.Mode, inst.Bytes)
}
