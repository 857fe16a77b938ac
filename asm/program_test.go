package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm6502/opcode"
)

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"start:",
		"  LDA #$01",  // 0600
		"  STA $0200", // 0602
		"  END",       // 0605
	}

	_, prog, _ := assemble(t, program)

	table := []struct {
		addr     uint16
		lineNo   int
		index    int
		mnemonic opcode.Mnemonic
	}{
		{0x0600, 2, 0, opcode.LDA},
		{0x0601, 2, 1, opcode.LDA},
		{0x0602, 3, 0, opcode.STA},
		{0x0604, 3, 2, opcode.STA},
		{0x0605, 4, 0, opcode.END},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.addr)
		if !assert.NotNil(dbg.Instruction, "%04x", entry.addr) {
			continue
		}
		assert.Equal(entry.index, dbg.Index)
		assert.Equal(entry.mnemonic, dbg.Mnemonic)
		assert.Equal(entry.lineNo, prog.LineNo(entry.addr))
	}

	assert.Nil(prog.Debug(0x05ff).Instruction)
	assert.Nil(prog.Debug(0x0606).Instruction)
	assert.Equal(0, prog.LineNo(0x0606))

	addr, ok := prog.Label("start")
	assert.True(ok)
	assert.Equal(uint16(0x0600), addr)

	_, ok = prog.Label("nowhere")
	assert.False(ok)
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	_, prog, code := assemble(t, []string{"INX", "JMP $0600"})

	var addrs []uint16
	var bytes []byte
	for addr, b := range prog.Codes() {
		addrs = append(addrs, addr)
		bytes = append(bytes, b)
	}

	assert.Equal([]uint16{0x0600, 0x0601, 0x0602, 0x0603}, addrs)
	assert.Equal(code, bytes)
	assert.Equal("0601 JMP absolute 4C 00 06", prog.Instructions[1].String())
}
