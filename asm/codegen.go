package asm

import (
	"log"

	"github.com/ezrec/vm6502/memory"
	"github.com/ezrec/vm6502/opcode"
)

// codegen assigns addresses and encodes parsed instructions.
type codegen struct {
	verbose      bool
	source       string
	tokens       []Token
	symbols      *SymbolTable
	instructions []Instruction
	load         uint16
	end          uint16 // Address past the last instruction.
}

func (cg *codegen) fail(inst *Instruction, index int, err error) error {
	return &ErrAssembly{
		LineNo: inst.LineNo,
		Token:  cg.tokens[index].Text(cg.source),
		Err:    err,
	}
}

// fixup is the first pass: select zero-page forms and assign addresses.
// Only literal operands select a zero-page form; symbols are unknown here.
func (cg *codegen) fixup() (err error) {
	offset := int(cg.load)

	for n := range cg.instructions {
		inst := &cg.instructions[n]

		zp, isAbsolute := inst.Mode.ZeroPage()
		if isAbsolute && inst.Legal.Has(zp) {
			literal := !inst.Deferred() && inst.Operand <= 0xff
			if literal || !inst.Legal.Has(inst.Mode) {
				inst.Mode = zp
			}
		}

		if offset+inst.Mode.Length() > memory.SIZE {
			err = cg.fail(inst, inst.Token, ErrProgramTooLarge)
			return
		}

		inst.Address = uint16(offset)
		offset += inst.Mode.Length()
	}

	cg.end = uint16(offset)
	if offset == memory.SIZE {
		cg.end = 0
	}

	return
}

// resolve returns the operand value of an instruction.
func (cg *codegen) resolve(inst *Instruction) (value uint16, err error) {
	if !inst.Deferred() {
		value = inst.Operand
		return
	}

	sym, ok := cg.symbols.Lookup(cg.tokens[inst.Symbol].Text(cg.source))
	if !ok {
		err = ErrSymbolUndefined
		return
	}

	if !sym.IsLabel {
		value = sym.Value
		return
	}

	if sym.Instruction >= len(cg.instructions) {
		value = cg.end
	} else {
		value = cg.instructions[sym.Instruction].Address
	}

	return
}

// emit is the second pass: resolve operands and encode each instruction.
func (cg *codegen) emit() (err error) {
	for n := range cg.instructions {
		inst := &cg.instructions[n]

		at := inst.Token
		if inst.Deferred() {
			at = inst.Symbol
		}

		var value uint16
		value, err = cg.resolve(inst)
		if err != nil {
			err = cg.fail(inst, at, err)
			return
		}

		abs, isZeroPage := inst.Mode.Absolute()
		if isZeroPage && value > 0xff && !inst.Legal.Has(abs) {
			err = cg.fail(inst, at, ErrZeroPageOnly)
			return
		}

		op, ok := opcode.Encode(inst.Mnemonic, inst.Mode)
		if !ok {
			err = cg.fail(inst, inst.Token, ErrModeInvalid)
			return
		}

		inst.Bytes = append(inst.Bytes[:0], op)

		switch {
		case inst.Mode == opcode.MODE_RELATIVE:
			next := int(inst.Address) + inst.Mode.Length()
			delta := int(value) - next
			if delta < -128 || delta > 127 {
				err = cg.fail(inst, at, ErrBranchRange)
				return
			}
			inst.Bytes = append(inst.Bytes, byte(int8(delta)))
		case inst.Mode.OperandBytes() == 1:
			if value > 0xff {
				err = cg.fail(inst, at, ErrOperandRange)
				return
			}
			inst.Bytes = append(inst.Bytes, byte(value))
		case inst.Mode.OperandBytes() == 2:
			inst.Bytes = append(inst.Bytes, byte(value), byte(value>>8))
		}

		if cg.verbose {
			log.Printf("%v: %v", inst.LineNo, inst)
		}
	}

	return
}

// commit writes every encoded instruction into memory.
func (cg *codegen) commit(mem *memory.Memory) (err error) {
	for _, inst := range cg.instructions {
		err = mem.Load(inst.Address, inst.Bytes)
		if err != nil {
			return
		}
	}

	return
}
