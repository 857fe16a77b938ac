package cpu

import (
	"github.com/ezrec/vm6502/memory"
)

const (
	STACK_TOP = 0xff // Stack pointer after reset.
)

// Push stores a byte on the page one stack.
func (cpu *CPU) Push(value byte) {
	cpu.Mem.Write(memory.STACK_BASE|uint16(cpu.SP), value)
	cpu.SP--
}

// Pull removes a byte from the page one stack.
func (cpu *CPU) Pull() (value byte) {
	cpu.SP++
	value = cpu.Mem.Read(memory.STACK_BASE | uint16(cpu.SP))
	return
}

// PushWord stores a word on the stack, high byte first.
func (cpu *CPU) PushWord(value uint16) {
	cpu.Push(byte(value >> 8))
	cpu.Push(byte(value))
}

// PullWord removes a word from the stack.
func (cpu *CPU) PullWord() (value uint16) {
	lo := cpu.Pull()
	hi := cpu.Pull()
	value = uint16(lo) | uint16(hi)<<8
	return
}

// Depth returns the number of bytes on the stack.
func (cpu *CPU) Depth() int {
	return STACK_TOP - int(cpu.SP)
}

// Peek returns the byte on the top of the stack, if any.
func (cpu *CPU) Peek() (value byte, ok bool) {
	if cpu.Depth() <= 0 {
		return
	}

	return cpu.Mem.Read(memory.STACK_BASE | uint16(cpu.SP+1)), true
}
