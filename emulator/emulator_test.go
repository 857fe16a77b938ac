package emulator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm6502/asm"
	"github.com/ezrec/vm6502/config"
	"github.com/ezrec/vm6502/cpu"
	"github.com/ezrec/vm6502/memory"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())

	assert.False(emu.Verbose)
	assert.NotNil(emu.CPU)
	assert.Equal(uint16(0x0600), emu.CPU.PC)
	assert.Equal(emu.Memory, emu.CPU.Mem)
	assert.Equal(&Frame{}, emu.Frame())
	assert.Equal(0, emu.LineNo())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.LoadAddress = 0x0800
	emu := NewEmulator(cfg)

	defines := map[string]uint16{}
	for name, value := range emu.Defines() {
		defines[name] = value
	}

	assert.Equal(map[string]uint16{
		"LOAD_ADDRESS": 0x0800,
		"STACK_BASE":   0x0100,
		"VIDEO_BASE":   0x0200,
		"VIDEO_WIDTH":  32,
		"VIDEO_HEIGHT": 32,
		"VIDEO_SIZE":   1024,
	}, defines)
}

func doLoad(emu *Emulator, program []string, t *testing.T) (prog *asm.Program) {
	err := emu.Load(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return emu.Program
}

func TestEmulatorSingle(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())

	program := []string{
		"LDA #$05",
		"STA VIDEO_BASE",
		"LDX #$0E",
		"STX $0201",
		"END",
	}
	prog := doLoad(emu, program, t)

	for n, inst := range prog.Instructions {
		here := program[inst.LineNo-1]
		assert.Equal(inst.LineNo, emu.LineNo(), here)
		assert.Equal(inst.Address, emu.CPU.PC, here)

		debug := emu.Program.Debug(emu.CPU.PC)
		assert.Equal(0, debug.Index, here)
		assert.Equal(inst.Mnemonic, debug.Mnemonic, here)

		done, err := emu.Tick()
		assert.NoError(err, here)
		assert.Equal(n == len(prog.Instructions)-1, done, here)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	assert.Equal(byte(0x05), emu.Memory.Read(memory.VIDEO_BASE))
	assert.Equal(byte(0x0e), emu.Memory.Read(memory.VIDEO_BASE+1))
	assert.Equal(5, emu.Ticks)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())

	doLoad(emu, []string{
		"  LDX #$00",
		"loop:",
		"  TXA",
		"  STA VIDEO_BASE,X",
		"  INX",
		"  CPX #$10",
		"  BNE loop",
		"  END",
	}, t)

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.False(emu.Running)

	frame := emu.Frame()
	for n := range 0x10 {
		assert.Equal(byte(n), frame[n])
	}
	assert.Equal(byte(0), frame[0x10])
}

func TestEmulatorRunCancel(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.ClockHz = 6000
	emu := NewEmulator(cfg)

	doLoad(emu, []string{
		"loop:",
		"  INC VIDEO_BASE",
		"  JMP loop",
	}, t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := emu.Run(ctx)
		assert.ErrorIs(err, context.DeadlineExceeded)
	}()

	// Frames may be read while the CPU runs.
	for ctx.Err() == nil {
		frame := emu.Frame()
		assert.NotNil(frame)
		time.Sleep(5 * time.Millisecond)
	}

	wg.Wait()
	assert.True(emu.Running)
	assert.Greater(emu.Ticks, 0)
	assert.Equal(emu.Memory.Read(memory.VIDEO_BASE), emu.Frame()[0])
}

func TestEmulatorLoadError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())
	prog := doLoad(emu, []string{"LDA #$01", "END"}, t)

	err := emu.Load(strings.NewReader("LDA #$01\nBOGUS\n"))
	assert.ErrorIs(err, asm.ErrMnemonicUnknown)

	var asmErr *asm.ErrAssembly
	if assert.True(errors.As(err, &asmErr)) {
		assert.Equal(2, asmErr.LineNo)
	}

	assert.Equal(prog, emu.Program)
	assert.Equal(byte(0xa9), emu.Memory.Read(0x0600))
	assert.Equal(byte(0xff), emu.Memory.Read(0x0602))

	err = emu.Load(strings.NewReader("DEFINE VIDEO_BASE 1"))
	assert.ErrorIs(err, asm.ErrSymbolDuplicate)
}

func TestEmulatorAddresses(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.LoadAddress = 0x1000
	cfg.ResetAddress = 0x1003
	emu := NewEmulator(cfg)

	doLoad(emu, []string{
		"LDA LOAD_ADDRESS",
		"LDX #$07",
		"END",
	}, t)

	assert.Equal(uint16(0x1003), emu.CPU.PC)
	assert.Equal(byte(0xad), emu.Memory.Read(0x1000))

	assert.NoError(emu.Run(context.Background()))
	assert.Equal(byte(0x07), emu.X)
	assert.Equal(byte(0x00), emu.A)
	assert.Equal(2, emu.Ticks)
}

func TestEmulatorUnmapped(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())
	doLoad(emu, []string{"NOP", "END"}, t)
	emu.Memory.Write(0x0600, 0x02)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint16(0x0601), emu.CPU.PC)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	var err error = &ErrRuntime{LineNo: 3, Err: cpu.ErrInternal}
	assert.ErrorIs(err, cpu.ErrInternal)
	assert.Contains(err.Error(), "line 3")
}
