// Package asm assembles 6502 source text into machine code.
//
// The dialect is line-agnostic:
//
//	// comment to end of line
//	DEFINE NAME $nn
//	LABEL:
//	MNEMONIC [operand]
//
// Operands are #$nn or #nn (immediate), $nnnn or nnnn (absolute or
// zero-page), addr,X and addr,Y (indexed), (addr,X) and (addr),Y
// (indirect indexed), (addr) (JMP only), A (accumulator) or a bare label
// (branches). Mnemonics, registers and symbols are case-insensitive.
//
// Assembly runs in two passes. The first assigns each instruction an
// address, selecting zero-page forms for literal operands that fit in one
// byte. Symbol operands keep the absolute form unless the mnemonic has
// only the zero-page form. The second resolves labels and constants, and
// encodes each instruction. Bytes reach memory only if every instruction
// encodes.
package asm
