// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"sync/atomic"
	"time"

	"github.com/ezrec/vm6502/asm"
	"github.com/ezrec/vm6502/config"
	"github.com/ezrec/vm6502/cpu"
	"github.com/ezrec/vm6502/internal"
	"github.com/ezrec/vm6502/memory"
)

const (
	FRAME_RATE = 60 // Video frames published per second while running.
)

var _emulator_defines = map[string]uint16{
	"STACK_BASE":   memory.STACK_BASE,
	"VIDEO_BASE":   memory.VIDEO_BASE,
	"VIDEO_WIDTH":  memory.VIDEO_WIDTH,
	"VIDEO_HEIGHT": memory.VIDEO_HEIGHT,
	"VIDEO_SIZE":   memory.VIDEO_SIZE,
}

// Frame is a snapshot of video memory.
type Frame [memory.VIDEO_SIZE]byte

// Emulator state. CPU + memory + program listing.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.CPU                // Reference to the CPU simulation.
	Memory   *memory.Memory // Reference to the address space.
	Program  *asm.Program   // Reference to the currently loaded program listing.
	Config   config.Config  // Machine configuration.

	frame atomic.Pointer[Frame]
}

// NewEmulator creates a new emulator.
func NewEmulator(cfg config.Config) (emu *Emulator) {
	mem := memory.New()
	emu = &Emulator{
		CPU:     cpu.NewCPU(mem, cfg.ResetAddress),
		Memory:  mem,
		Program: &asm.Program{Load: cfg.LoadAddress, End: cfg.LoadAddress},
		Config:  cfg,
	}

	emu.publish()

	return
}

// Defines returns an iterator over all of the assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, uint16] {
	var config_defines iter.Seq2[string, uint16] = func(yield func(string, uint16) bool) {
		_ = yield("LOAD_ADDRESS", emu.Config.LoadAddress)
	}

	return internal.IterSeq2Concat(maps.All(_emulator_defines), config_defines)
}

// Load assembles a program into memory at the configured load address,
// and resets the CPU. On error the emulator state is unchanged.
func (emu *Emulator) Load(input io.Reader) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		assembler.Predefine(name, value)
	}

	mem := memory.New()
	prog, err := assembler.Parse(input, mem, emu.Config.LoadAddress)
	if err != nil {
		return
	}

	*emu.Memory = *mem
	emu.Program = prog

	if emu.Verbose {
		log.Printf("loaded %d bytes at $%04X", int(prog.End)-int(prog.Load), prog.Load)
	}

	emu.Reset()

	return
}

// Reset the CPU, keeping memory.
func (emu *Emulator) Reset() {
	emu.CPU.Reset()
	emu.publish()
}

// LineNo returns the source line of the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}
	return emu.Program.LineNo(emu.CPU.PC)
}

// Tick performs a single instruction. Unmapped opcodes execute as NOP,
// with a logged warning. done is set once the program has ended.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.CPU.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.CPU.Tick()
	switch {
	case errors.Is(err, cpu.ErrHalted):
		err = nil
		done = true
		return
	case errors.Is(err, cpu.ErrOpcodeUnmapped):
		err = nil
	case err != nil:
		return
	}

	done = !emu.CPU.Running
	return
}

// publish snapshots video memory for Frame.
func (emu *Emulator) publish() {
	frame := &Frame{}
	copy(frame[:], emu.Memory.Video())
	emu.frame.Store(frame)
}

// Frame returns the latest published video memory snapshot. It is safe to
// call concurrently with Run.
func (emu *Emulator) Frame() *Frame {
	return emu.frame.Load()
}

// Run ticks the CPU at the configured clock rate until the program ends,
// a runtime error occurs, or the context is cancelled. Video memory is
// published FRAME_RATE times per second. Run is the only writer of the
// emulator state while it executes.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	batch := max(emu.Config.ClockHz/FRAME_RATE, 1)

	ticker := time.NewTicker(time.Second / FRAME_RATE)
	defer ticker.Stop()

	defer emu.publish()

	for {
		for range batch {
			err = ctx.Err()
			if err != nil {
				return
			}

			var done bool
			done, err = emu.Tick()
			if err != nil || done {
				return
			}
		}

		emu.publish()

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-ticker.C:
		}
	}
}
