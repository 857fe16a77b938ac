// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Mnemonic is an instruction type.
type Mnemonic int

//go:generate go tool stringer -type=Mnemonic
const (
	ADC = Mnemonic(iota)
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	END // Virtual machine halt.
)

// MNEMONIC_COUNT is the number of distinct mnemonics.
const MNEMONIC_COUNT = int(END) + 1

// END_OPCODE is the terminal opcode; executing it stops the CPU.
const END_OPCODE = byte(0xff)

// Entry is a single row of the canonical opcode table.
type Entry struct {
	Opcode   byte
	Mnemonic Mnemonic
	Mode     Mode
}

func (e Entry) String() string {
	return fmt.Sprintf("$%02X %v %v", e.Opcode, e.Mnemonic, e.Mode)
}

// table is the single source of truth for encoding and decoding.
var table = []Entry{
	{0x69, ADC, MODE_IMMEDIATE},
	{0x65, ADC, MODE_ZERO_PAGE},
	{0x75, ADC, MODE_ZERO_PAGE_X},
	{0x6d, ADC, MODE_ABSOLUTE},
	{0x7d, ADC, MODE_ABSOLUTE_X},
	{0x79, ADC, MODE_ABSOLUTE_Y},
	{0x61, ADC, MODE_INDEXED_INDIRECT_X},
	{0x71, ADC, MODE_INDIRECT_INDEXED_Y},

	{0x29, AND, MODE_IMMEDIATE},
	{0x25, AND, MODE_ZERO_PAGE},
	{0x35, AND, MODE_ZERO_PAGE_X},
	{0x2d, AND, MODE_ABSOLUTE},
	{0x3d, AND, MODE_ABSOLUTE_X},
	{0x39, AND, MODE_ABSOLUTE_Y},
	{0x21, AND, MODE_INDEXED_INDIRECT_X},
	{0x31, AND, MODE_INDIRECT_INDEXED_Y},

	{0x0a, ASL, MODE_ACCUMULATOR},
	{0x06, ASL, MODE_ZERO_PAGE},
	{0x16, ASL, MODE_ZERO_PAGE_X},
	{0x0e, ASL, MODE_ABSOLUTE},
	{0x1e, ASL, MODE_ABSOLUTE_X},

	{0x90, BCC, MODE_RELATIVE},
	{0xb0, BCS, MODE_RELATIVE},
	{0xf0, BEQ, MODE_RELATIVE},
	{0x30, BMI, MODE_RELATIVE},
	{0xd0, BNE, MODE_RELATIVE},
	{0x10, BPL, MODE_RELATIVE},
	{0x50, BVC, MODE_RELATIVE},
	{0x70, BVS, MODE_RELATIVE},

	{0x24, BIT, MODE_ZERO_PAGE},
	{0x2c, BIT, MODE_ABSOLUTE},

	{0x00, BRK, MODE_IMPLIED},

	{0x18, CLC, MODE_IMPLIED},
	{0xd8, CLD, MODE_IMPLIED},
	{0x58, CLI, MODE_IMPLIED},
	{0xb8, CLV, MODE_IMPLIED},

	{0xc9, CMP, MODE_IMMEDIATE},
	{0xc5, CMP, MODE_ZERO_PAGE},
	{0xd5, CMP, MODE_ZERO_PAGE_X},
	{0xcd, CMP, MODE_ABSOLUTE},
	{0xdd, CMP, MODE_ABSOLUTE_X},
	{0xd9, CMP, MODE_ABSOLUTE_Y},
	{0xc1, CMP, MODE_INDEXED_INDIRECT_X},
	{0xd1, CMP, MODE_INDIRECT_INDEXED_Y},

	{0xe0, CPX, MODE_IMMEDIATE},
	{0xe4, CPX, MODE_ZERO_PAGE},
	{0xec, CPX, MODE_ABSOLUTE},

	{0xc0, CPY, MODE_IMMEDIATE},
	{0xc4, CPY, MODE_ZERO_PAGE},
	{0xcc, CPY, MODE_ABSOLUTE},

	{0xc6, DEC, MODE_ZERO_PAGE},
	{0xd6, DEC, MODE_ZERO_PAGE_X},
	{0xce, DEC, MODE_ABSOLUTE},
	{0xde, DEC, MODE_ABSOLUTE_X},

	{0xca, DEX, MODE_IMPLIED},
	{0x88, DEY, MODE_IMPLIED},

	{0x49, EOR, MODE_IMMEDIATE},
	{0x45, EOR, MODE_ZERO_PAGE},
	{0x55, EOR, MODE_ZERO_PAGE_X},
	{0x4d, EOR, MODE_ABSOLUTE},
	{0x5d, EOR, MODE_ABSOLUTE_X},
	{0x59, EOR, MODE_ABSOLUTE_Y},
	{0x41, EOR, MODE_INDEXED_INDIRECT_X},
	{0x51, EOR, MODE_INDIRECT_INDEXED_Y},

	{0xe6, INC, MODE_ZERO_PAGE},
	{0xf6, INC, MODE_ZERO_PAGE_X},
	{0xee, INC, MODE_ABSOLUTE},
	{0xfe, INC, MODE_ABSOLUTE_X},

	{0xe8, INX, MODE_IMPLIED},
	{0xc8, INY, MODE_IMPLIED},

	{0x4c, JMP, MODE_ABSOLUTE},
	{0x6c, JMP, MODE_INDIRECT},

	{0x20, JSR, MODE_ABSOLUTE},

	{0xa9, LDA, MODE_IMMEDIATE},
	{0xa5, LDA, MODE_ZERO_PAGE},
	{0xb5, LDA, MODE_ZERO_PAGE_X},
	{0xad, LDA, MODE_ABSOLUTE},
	{0xbd, LDA, MODE_ABSOLUTE_X},
	{0xb9, LDA, MODE_ABSOLUTE_Y},
	{0xa1, LDA, MODE_INDEXED_INDIRECT_X},
	{0xb1, LDA, MODE_INDIRECT_INDEXED_Y},

	{0xa2, LDX, MODE_IMMEDIATE},
	{0xa6, LDX, MODE_ZERO_PAGE},
	{0xb6, LDX, MODE_ZERO_PAGE_Y},
	{0xae, LDX, MODE_ABSOLUTE},
	{0xbe, LDX, MODE_ABSOLUTE_Y},

	{0xa0, LDY, MODE_IMMEDIATE},
	{0xa4, LDY, MODE_ZERO_PAGE},
	{0xb4, LDY, MODE_ZERO_PAGE_X},
	{0xac, LDY, MODE_ABSOLUTE},
	{0xbc, LDY, MODE_ABSOLUTE_X},

	{0x4a, LSR, MODE_ACCUMULATOR},
	{0x46, LSR, MODE_ZERO_PAGE},
	{0x56, LSR, MODE_ZERO_PAGE_X},
	{0x4e, LSR, MODE_ABSOLUTE},
	{0x5e, LSR, MODE_ABSOLUTE_X},

	{0xea, NOP, MODE_IMPLIED},

	{0x09, ORA, MODE_IMMEDIATE},
	{0x05, ORA, MODE_ZERO_PAGE},
	{0x15, ORA, MODE_ZERO_PAGE_X},
	{0x0d, ORA, MODE_ABSOLUTE},
	{0x1d, ORA, MODE_ABSOLUTE_X},
	{0x19, ORA, MODE_ABSOLUTE_Y},
	{0x01, ORA, MODE_INDEXED_INDIRECT_X},
	{0x11, ORA, MODE_INDIRECT_INDEXED_Y},

	{0x48, PHA, MODE_IMPLIED},
	{0x08, PHP, MODE_IMPLIED},
	{0x68, PLA, MODE_IMPLIED},
	{0x28, PLP, MODE_IMPLIED},

	{0x2a, ROL, MODE_ACCUMULATOR},
	{0x26, ROL, MODE_ZERO_PAGE},
	{0x36, ROL, MODE_ZERO_PAGE_X},
	{0x2e, ROL, MODE_ABSOLUTE},
	{0x3e, ROL, MODE_ABSOLUTE_X},

	{0x6a, ROR, MODE_ACCUMULATOR},
	{0x66, ROR, MODE_ZERO_PAGE},
	{0x76, ROR, MODE_ZERO_PAGE_X},
	{0x6e, ROR, MODE_ABSOLUTE},
	{0x7e, ROR, MODE_ABSOLUTE_X},

	{0x40, RTI, MODE_IMPLIED},
	{0x60, RTS, MODE_IMPLIED},

	{0xe9, SBC, MODE_IMMEDIATE},
	{0xe5, SBC, MODE_ZERO_PAGE},
	{0xf5, SBC, MODE_ZERO_PAGE_X},
	{0xed, SBC, MODE_ABSOLUTE},
	{0xfd, SBC, MODE_ABSOLUTE_X},
	{0xf9, SBC, MODE_ABSOLUTE_Y},
	{0xe1, SBC, MODE_INDEXED_INDIRECT_X},
	{0xf1, SBC, MODE_INDIRECT_INDEXED_Y},

	{0x38, SEC, MODE_IMPLIED},
	{0xf8, SED, MODE_IMPLIED},
	{0x78, SEI, MODE_IMPLIED},

	{0x85, STA, MODE_ZERO_PAGE},
	{0x95, STA, MODE_ZERO_PAGE_X},
	{0x8d, STA, MODE_ABSOLUTE},
	{0x9d, STA, MODE_ABSOLUTE_X},
	{0x99, STA, MODE_ABSOLUTE_Y},
	{0x81, STA, MODE_INDEXED_INDIRECT_X},
	{0x91, STA, MODE_INDIRECT_INDEXED_Y},

	{0x86, STX, MODE_ZERO_PAGE},
	{0x96, STX, MODE_ZERO_PAGE_Y},
	{0x8e, STX, MODE_ABSOLUTE},

	{0x84, STY, MODE_ZERO_PAGE},
	{0x94, STY, MODE_ZERO_PAGE_X},
	{0x8c, STY, MODE_ABSOLUTE},

	{0xaa, TAX, MODE_IMPLIED},
	{0xa8, TAY, MODE_IMPLIED},
	{0xba, TSX, MODE_IMPLIED},
	{0x8a, TXA, MODE_IMPLIED},
	{0x9a, TXS, MODE_IMPLIED},
	{0x98, TYA, MODE_IMPLIED},

	{END_OPCODE, END, MODE_IMPLIED},
}

type encodeKey struct {
	mnemonic Mnemonic
	mode     Mode
}

var (
	decodeTable [256]Entry
	decodeValid [256]bool
	encodeTable = map[encodeKey]byte{}
	legalModes  [MNEMONIC_COUNT]ModeMask
	byName      = map[string]Mnemonic{}
)

func init() {
	for _, e := range table {
		if decodeValid[e.Opcode] {
			panic(fmt.Sprintf("opcode: $%02X declared twice", e.Opcode))
		}
		key := encodeKey{e.Mnemonic, e.Mode}
		if _, ok := encodeTable[key]; ok {
			panic(fmt.Sprintf("opcode: %v %v declared twice", e.Mnemonic, e.Mode))
		}
		if e.Mode.Length() == 0 {
			panic(fmt.Sprintf("opcode: $%02X has no length", e.Opcode))
		}

		decodeTable[e.Opcode] = e
		decodeValid[e.Opcode] = true
		encodeTable[key] = e.Opcode
		legalModes[e.Mnemonic] |= e.Mode.Bit()
	}

	for n := range MNEMONIC_COUNT {
		m := Mnemonic(n)
		byName[m.String()] = m
	}
}

// Decode returns the table entry for an opcode byte.
func Decode(op byte) (entry Entry, ok bool) {
	return decodeTable[op], decodeValid[op]
}

// Encode returns the opcode byte for a mnemonic in an addressing mode.
func Encode(mnemonic Mnemonic, mode Mode) (op byte, ok bool) {
	op, ok = encodeTable[encodeKey{mnemonic, mode}]
	return
}

// Legal returns the set of addressing modes a mnemonic supports.
func Legal(mnemonic Mnemonic) ModeMask {
	if mnemonic < 0 || int(mnemonic) >= MNEMONIC_COUNT {
		return 0
	}
	return legalModes[mnemonic]
}

// Lookup finds a mnemonic by name, ignoring case.
func Lookup(name string) (mnemonic Mnemonic, ok bool) {
	mnemonic, ok = byName[strings.ToUpper(name)]
	return
}

// Entries iterates over the canonical table, in declaration order.
func Entries() iter.Seq[Entry] {
	return slices.Values(table)
}
