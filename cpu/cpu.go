// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/vm6502/memory"
	"github.com/ezrec/vm6502/opcode"
)

// CPU is the simulation context for a 6502 processor.
type CPU struct {
	Verbose bool // Set to enable verbose logging.

	Mem *memory.Memory // Reference to the address space.

	A      byte   // Accumulator.
	X      byte   // X index register.
	Y      byte   // Y index register.
	SP     byte   // Stack pointer, within page one.
	PC     uint16 // Program counter.
	Status Status // Processor status flags.

	Origin  uint16 // Program counter after a reset.
	Running bool   // Cleared by END.
	Ticks   int    // Instructions executed since reset.
}

// NewCPU creates a CPU attached to memory, reset to start at origin.
func NewCPU(mem *memory.Memory, origin uint16) (cpu *CPU) {
	cpu = &CPU{
		Mem:    mem,
		Origin: origin,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Program counter to the origin.
// - Stack pointer to the top of page one.
// - Registers, flags and statistics zeroed.
func (cpu *CPU) Reset() {
	cpu.PC = cpu.Origin
	cpu.SP = STACK_TOP
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Status = Status{}
	cpu.Running = true
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *CPU) String() (text string) {
	regs := []string{"pc", "a", "x", "y", "sp", "sr", "stack"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.PC)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02X", cpu.Y)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.SP)
		case "sr":
			strval = cpu.Status.String()
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Fetch decodes the instruction at the program counter.
// An unmapped opcode decodes as a single byte NOP, and returns an error
// wrapping ErrOpcodeUnmapped.
func (cpu *CPU) Fetch() (entry opcode.Entry, operand uint16, err error) {
	pc := cpu.PC
	op := cpu.Mem.Read(pc)

	entry, ok := opcode.Decode(op)
	if !ok {
		log.Printf("warning: unmapped opcode $%02X at $%04X, executing as NOP", op, pc)
		err = errors.Join(ErrOpcodeUnmapped, &ErrOpcode{Opcode: op, PC: pc})
		entry = opcode.Entry{Opcode: op, Mnemonic: opcode.NOP, Mode: opcode.MODE_IMPLIED}
	}

	switch entry.Mode.OperandBytes() {
	case 1:
		operand = uint16(cpu.Mem.Read(pc + 1))
	case 2:
		operand = cpu.Mem.ReadWord(pc + 1)
	}

	return
}

// Tick executes a single instruction.
func (cpu *CPU) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	pc := cpu.PC
	entry, operand, err := cpu.Fetch()

	length := entry.Mode.Length()
	if length == 0 {
		cpu.Running = false
		err = errors.Join(ErrInternal, &ErrOpcode{Opcode: entry.Opcode, PC: pc})
		return
	}

	if cpu.Verbose {
		log.Printf("%04X: %v $%04X", pc, entry, operand)
	}

	cpu.PC = pc + uint16(length)
	cpu.Execute(entry, operand)
	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("%v", cpu)
	}

	return
}
