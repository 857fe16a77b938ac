package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm6502/memory"
	"github.com/ezrec/vm6502/opcode"
)

// Mnemonics that may set the program counter.
var controlFlow = map[opcode.Mnemonic]bool{
	opcode.BCC: true,
	opcode.BCS: true,
	opcode.BEQ: true,
	opcode.BNE: true,
	opcode.BMI: true,
	opcode.BPL: true,
	opcode.BVC: true,
	opcode.BVS: true,
	opcode.JMP: true,
	opcode.JSR: true,
	opcode.RTS: true,
	opcode.RTI: true,
	opcode.BRK: true,
}

func FuzzTick(f *testing.F) {
	for op := range 0x100 {
		f.Add(byte(op), byte(0x10), byte(0x02), byte(0), byte(0), byte(0), byte(0))
		f.Add(byte(op), byte(0xff), byte(0xff), byte(0x80), byte(0xff), byte(0x01), byte(0xff))
	}

	f.Fuzz(func(t *testing.T, op byte, lo byte, hi byte, a byte, x byte, y byte, status byte) {
		assert := assert.New(t)

		const origin = uint16(0x0600)

		mem := memory.New()
		mem.Write(origin, op)
		mem.Write(origin+1, lo)
		mem.Write(origin+2, hi)

		cpu := NewCPU(mem, origin)
		cpu.A = a
		cpu.X = x
		cpu.Y = y
		cpu.Status.Load(status)

		err := cpu.Tick()

		entry, mapped := opcode.Decode(op)
		if !mapped {
			assert.ErrorIs(err, ErrOpcodeUnmapped)
			var opErr *ErrOpcode
			assert.True(errors.As(err, &opErr))
			assert.Equal(origin+1, cpu.PC)
			assert.True(cpu.Running)
			return
		}

		assert.NoError(err, entry.String())
		assert.Equal(1, cpu.Ticks)
		assert.Equal(entry.Mnemonic != opcode.END, cpu.Running)

		if !controlFlow[entry.Mnemonic] {
			assert.Equal(origin+uint16(entry.Mode.Length()), cpu.PC, entry.String())
		}
	})
}
