// Package cpu implements the 6502 processor of the virtual machine.
//
// The CPU consists of an accumulator (A), two index registers (X, Y), a
// stack pointer into page one, a program counter and the NV-BDIZC status
// flags. Every official NMOS opcode is executed, including decimal mode
// arithmetic, plus the END ($FF) opcode that halts the machine.
//
// Each call to Tick executes one whole instruction.
package cpu
