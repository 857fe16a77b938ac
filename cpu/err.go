package cpu

import (
	"errors"

	"github.com/ezrec/vm6502/translate"
)

var f = translate.From

var (
	ErrOpcodeUnmapped = errors.New(f("opcode not mapped"))
	ErrInternal       = errors.New(f("internal error"))
	ErrHalted         = errors.New(f("cpu halted"))
)

// ErrOpcode locates an opcode fault.
type ErrOpcode struct {
	Opcode byte
	PC     uint16
}

func (err *ErrOpcode) Error() string {
	return f("opcode $%02X at $%04X", err.Opcode, err.PC)
}
