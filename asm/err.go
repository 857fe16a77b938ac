package asm

import (
	"errors"

	"github.com/ezrec/vm6502/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrHexEmpty     = errors.New(f("hex number expected after '$'"))
	ErrTokenUnknown = errors.New(f("unknown token"))

	// Syntax errors
	ErrStatementExpected = errors.New(f("command or label expected"))
	ErrMnemonicUnknown   = errors.New(f("unknown mnemonic"))
	ErrOperandInvalid    = errors.New(f("incorrect operand"))
	ErrDefineSyntax      = errors.New(f("DEFINE expects a name and a number"))

	// Semantic errors
	ErrSymbolDuplicate = errors.New(f("duplicate identifier"))
	ErrSymbolUndefined = errors.New(f("undefined identifier"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrModeInvalid     = errors.New(f("incorrect addressing mode for mnemonic"))
	ErrZeroPageOnly    = errors.New(f("only zero-page addressing supported"))
	ErrBranchRange     = errors.New(f("branch target out of range"))
	ErrProgramTooLarge = errors.New(f("program too large for memory"))
)

// ErrAssembly locates an assembly error in the source text.
type ErrAssembly struct {
	LineNo int    // 1-based source line.
	Token  string // Offending token text.
	Err    error
}

func (err *ErrAssembly) Error() string {
	if len(err.Token) == 0 {
		return f("line %d: %v", err.LineNo, err.Err)
	}
	return f("line %d '%v': %v", err.LineNo, err.Token, err.Err)
}

func (err *ErrAssembly) Unwrap() error {
	return err.Err
}
