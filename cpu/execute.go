package cpu

import (
	"github.com/ezrec/vm6502/memory"
	"github.com/ezrec/vm6502/opcode"
)

// Effective returns the memory address an operand refers to.
// Zero-page indexing and pointers wrap within page zero.
func (cpu *CPU) Effective(mode opcode.Mode, operand uint16) (addr uint16) {
	switch mode {
	case opcode.MODE_ZERO_PAGE:
		addr = uint16(byte(operand))
	case opcode.MODE_ZERO_PAGE_X:
		addr = uint16(byte(operand) + cpu.X)
	case opcode.MODE_ZERO_PAGE_Y:
		addr = uint16(byte(operand) + cpu.Y)
	case opcode.MODE_ABSOLUTE:
		addr = operand
	case opcode.MODE_ABSOLUTE_X:
		addr = operand + uint16(cpu.X)
	case opcode.MODE_ABSOLUTE_Y:
		addr = operand + uint16(cpu.Y)
	case opcode.MODE_INDIRECT:
		addr = cpu.Mem.ReadWord(operand)
	case opcode.MODE_INDEXED_INDIRECT_X:
		addr = cpu.Mem.ReadWordZeroPage(byte(operand) + cpu.X)
	case opcode.MODE_INDIRECT_INDEXED_Y:
		addr = cpu.Mem.ReadWordZeroPage(byte(operand)) + uint16(cpu.Y)
	case opcode.MODE_RELATIVE:
		addr = cpu.PC + uint16(int8(byte(operand)))
	}

	return
}

func (cpu *CPU) load(mode opcode.Mode, operand uint16) byte {
	switch mode {
	case opcode.MODE_IMMEDIATE:
		return byte(operand)
	case opcode.MODE_ACCUMULATOR:
		return cpu.A
	}
	return cpu.Mem.Read(cpu.Effective(mode, operand))
}

func (cpu *CPU) store(mode opcode.Mode, operand uint16, value byte) {
	if mode == opcode.MODE_ACCUMULATOR {
		cpu.A = value
		return
	}
	cpu.Mem.Write(cpu.Effective(mode, operand), value)
}

// modify performs a read-modify-write, setting N and Z from the result.
func (cpu *CPU) modify(mode opcode.Mode, operand uint16, op func(v byte) byte) {
	cpu.store(mode, operand, cpu.setNZ(op(cpu.load(mode, operand))))
}

func (cpu *CPU) setNZ(v byte) byte {
	cpu.Status.Zero = v == 0
	cpu.Status.Negative = v&0x80 != 0
	return v
}

func (cpu *CPU) carry() byte {
	if cpu.Status.Carry {
		return 1
	}
	return 0
}

func (cpu *CPU) addBinary(v byte) {
	sum := uint16(cpu.A) + uint16(v) + uint16(cpu.carry())
	r := byte(sum)
	cpu.Status.Overflow = (cpu.A^r)&(v^r)&0x80 != 0
	cpu.Status.Carry = sum > 0xff
	cpu.A = cpu.setNZ(r)
}

func (cpu *CPU) adc(v byte) {
	if !cpu.Status.Decimal {
		cpu.addBinary(v)
		return
	}

	a, carry := cpu.A, cpu.Status.Carry
	cpu.Status.Zero = a+v+cpu.carry() == 0
	cpu.A, cpu.Status.Carry, cpu.Status.Negative, cpu.Status.Overflow = addDecimal(a, v, carry)
}

func (cpu *CPU) sbc(v byte) {
	a, carry := cpu.A, cpu.Status.Carry
	cpu.addBinary(^v)
	if cpu.Status.Decimal {
		cpu.A = subtractDecimal(a, v, carry)
	}
}

func (cpu *CPU) compare(reg byte, v byte) {
	cpu.Status.Carry = reg >= v
	cpu.setNZ(reg - v)
}

func (cpu *CPU) branch(cond bool, operand uint16) {
	if cond {
		cpu.PC = cpu.Effective(opcode.MODE_RELATIVE, operand)
	}
}

// Execute performs an instruction. The program counter must already be
// past the instruction.
func (cpu *CPU) Execute(entry opcode.Entry, operand uint16) {
	mode := entry.Mode
	st := &cpu.Status

	switch entry.Mnemonic {
	// Loads and stores
	case opcode.LDA:
		cpu.A = cpu.setNZ(cpu.load(mode, operand))
	case opcode.LDX:
		cpu.X = cpu.setNZ(cpu.load(mode, operand))
	case opcode.LDY:
		cpu.Y = cpu.setNZ(cpu.load(mode, operand))
	case opcode.STA:
		cpu.store(mode, operand, cpu.A)
	case opcode.STX:
		cpu.store(mode, operand, cpu.X)
	case opcode.STY:
		cpu.store(mode, operand, cpu.Y)

	// Transfers
	case opcode.TAX:
		cpu.X = cpu.setNZ(cpu.A)
	case opcode.TAY:
		cpu.Y = cpu.setNZ(cpu.A)
	case opcode.TXA:
		cpu.A = cpu.setNZ(cpu.X)
	case opcode.TYA:
		cpu.A = cpu.setNZ(cpu.Y)
	case opcode.TSX:
		cpu.X = cpu.setNZ(cpu.SP)
	case opcode.TXS:
		cpu.SP = cpu.X

	// Stack
	case opcode.PHA:
		cpu.Push(cpu.A)
	case opcode.PHP:
		cpu.Push(st.Value() | STATUS_BREAK | STATUS_UNUSED)
	case opcode.PLA:
		cpu.A = cpu.setNZ(cpu.Pull())
	case opcode.PLP:
		brk := st.Break
		st.Load(cpu.Pull())
		st.Break = brk

	// Arithmetic and logic
	case opcode.ADC:
		cpu.adc(cpu.load(mode, operand))
	case opcode.SBC:
		cpu.sbc(cpu.load(mode, operand))
	case opcode.AND:
		cpu.A = cpu.setNZ(cpu.A & cpu.load(mode, operand))
	case opcode.ORA:
		cpu.A = cpu.setNZ(cpu.A | cpu.load(mode, operand))
	case opcode.EOR:
		cpu.A = cpu.setNZ(cpu.A ^ cpu.load(mode, operand))
	case opcode.BIT:
		v := cpu.load(mode, operand)
		st.Zero = cpu.A&v == 0
		st.Negative = v&0x80 != 0
		st.Overflow = v&0x40 != 0
	case opcode.CMP:
		cpu.compare(cpu.A, cpu.load(mode, operand))
	case opcode.CPX:
		cpu.compare(cpu.X, cpu.load(mode, operand))
	case opcode.CPY:
		cpu.compare(cpu.Y, cpu.load(mode, operand))

	// Increments and decrements
	case opcode.INC:
		cpu.modify(mode, operand, func(v byte) byte { return v + 1 })
	case opcode.DEC:
		cpu.modify(mode, operand, func(v byte) byte { return v - 1 })
	case opcode.INX:
		cpu.X = cpu.setNZ(cpu.X + 1)
	case opcode.INY:
		cpu.Y = cpu.setNZ(cpu.Y + 1)
	case opcode.DEX:
		cpu.X = cpu.setNZ(cpu.X - 1)
	case opcode.DEY:
		cpu.Y = cpu.setNZ(cpu.Y - 1)

	// Shifts and rotates
	case opcode.ASL:
		cpu.modify(mode, operand, func(v byte) byte {
			st.Carry = v&0x80 != 0
			return v << 1
		})
	case opcode.LSR:
		cpu.modify(mode, operand, func(v byte) byte {
			st.Carry = v&0x01 != 0
			return v >> 1
		})
	case opcode.ROL:
		cpu.modify(mode, operand, func(v byte) byte {
			c := cpu.carry()
			st.Carry = v&0x80 != 0
			return v<<1 | c
		})
	case opcode.ROR:
		cpu.modify(mode, operand, func(v byte) byte {
			c := cpu.carry()
			st.Carry = v&0x01 != 0
			return v>>1 | c<<7
		})

	// Branches
	case opcode.BCC:
		cpu.branch(!st.Carry, operand)
	case opcode.BCS:
		cpu.branch(st.Carry, operand)
	case opcode.BEQ:
		cpu.branch(st.Zero, operand)
	case opcode.BNE:
		cpu.branch(!st.Zero, operand)
	case opcode.BMI:
		cpu.branch(st.Negative, operand)
	case opcode.BPL:
		cpu.branch(!st.Negative, operand)
	case opcode.BVS:
		cpu.branch(st.Overflow, operand)
	case opcode.BVC:
		cpu.branch(!st.Overflow, operand)

	// Jumps and subroutines
	case opcode.JMP:
		cpu.PC = cpu.Effective(mode, operand)
	case opcode.JSR:
		cpu.PushWord(cpu.PC - 1)
		cpu.PC = operand
	case opcode.RTS:
		cpu.PC = cpu.PullWord() + 1
	case opcode.RTI:
		brk := st.Break
		st.Load(cpu.Pull())
		st.Break = brk
		cpu.PC = cpu.PullWord()
	case opcode.BRK:
		cpu.PushWord(cpu.PC + 1)
		cpu.Push(st.Value() | STATUS_BREAK | STATUS_UNUSED)
		st.InterruptDisable = true
		cpu.PC = cpu.Mem.ReadWord(memory.BRK_VECTOR)

	// Flags
	case opcode.CLC:
		st.Carry = false
	case opcode.SEC:
		st.Carry = true
	case opcode.CLI:
		st.InterruptDisable = false
	case opcode.SEI:
		st.InterruptDisable = true
	case opcode.CLV:
		st.Overflow = false
	case opcode.CLD:
		st.Decimal = false
	case opcode.SED:
		st.Decimal = true

	case opcode.NOP:
	case opcode.END:
		cpu.Running = false
	}
}
