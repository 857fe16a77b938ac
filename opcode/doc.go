// Package opcode implements the instruction table shared by the 6502
// assembler and CPU.
//
// A single list of (opcode, mnemonic, addressing mode) triples is the
// source of truth. The 256-slot decode table used by the CPU, the inverse
// (mnemonic, mode) lookup used by the assembler, and the per-mnemonic
// legal mode masks are all derived from it once, at package init.
package opcode
