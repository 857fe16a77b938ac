package asm

import (
	"strings"

	"github.com/ezrec/vm6502/opcode"
)

// parser builds instructions and symbols from a token stream.
type parser struct {
	source       string
	tokens       []Token
	pos          int
	symbols      *SymbolTable
	instructions []Instruction
}

// peek returns the next token without consuming it.
func (ps *parser) peek() Token {
	if ps.pos >= len(ps.tokens) {
		return ps.tokens[len(ps.tokens)-1]
	}
	return ps.tokens[ps.pos]
}

// next consumes a token, returning its index.
func (ps *parser) next() (index int, tok Token) {
	index = min(ps.pos, len(ps.tokens)-1)
	tok = ps.tokens[index]
	ps.pos++
	return
}

// unread pushes back the last consumed token.
func (ps *parser) unread() {
	ps.pos--
}

func (ps *parser) text(index int) string {
	return ps.tokens[index].Text(ps.source)
}

// fail locates err at a token.
func (ps *parser) fail(index int, err error) error {
	index = min(index, len(ps.tokens)-1)
	tok := ps.tokens[index]
	return &ErrAssembly{
		LineNo: tok.LineNo,
		Token:  tok.Text(ps.source),
		Err:    err,
	}
}

// isRegister reports whether the token is the named register.
func (ps *parser) isRegister(tok Token, name string) bool {
	return tok.Kind == TOKEN_IDENTIFIER && strings.EqualFold(tok.Text(ps.source), name)
}

// parse consumes all statements.
func (ps *parser) parse() (err error) {
	last := len(ps.tokens) - 1
	if ps.tokens[last].Kind == TOKEN_SYNTAX_ERROR {
		err = ps.fail(last, ps.tokens[last].Err)
		return
	}

	for {
		var done bool
		done, err = ps.statement()
		if err != nil || done {
			return
		}
	}
}

// statement consumes one statement.
func (ps *parser) statement() (done bool, err error) {
	index, tok := ps.next()
	switch tok.Kind {
	case TOKEN_END_OF_STREAM:
		done = true
	case TOKEN_LABEL:
		err = ps.symbols.DeclareLabel(ps.text(index), len(ps.instructions))
		if err != nil {
			err = ps.fail(index, err)
		}
	case TOKEN_DEFINE:
		err = ps.define()
	case TOKEN_IDENTIFIER:
		err = ps.instruction(index)
	default:
		err = ps.fail(index, ErrStatementExpected)
	}

	return
}

// define consumes 'DEFINE name value'.
func (ps *parser) define() (err error) {
	nameIndex, name := ps.next()
	if name.Kind != TOKEN_IDENTIFIER {
		err = ps.fail(nameIndex, ErrDefineSyntax)
		return
	}

	valueIndex, value := ps.next()
	if !value.IsNumber() {
		err = ps.fail(valueIndex, ErrDefineSyntax)
		return
	}

	number, err := value.Value(ps.source)
	if err != nil {
		err = ps.fail(valueIndex, err)
		return
	}

	err = ps.symbols.Define(ps.text(nameIndex), number)
	if err != nil {
		err = ps.fail(nameIndex, err)
		return
	}

	return
}

// instruction consumes a mnemonic and its operand.
func (ps *parser) instruction(at int) (err error) {
	mnemonic, ok := opcode.Lookup(ps.text(at))
	if !ok {
		err = ps.fail(at, ErrMnemonicUnknown)
		return
	}

	ps.instructions = append(ps.instructions, Instruction{
		Mnemonic: mnemonic,
		Legal:    opcode.Legal(mnemonic),
		Symbol:   -1,
		Token:    at,
		LineNo:   ps.tokens[at].LineNo,
	})
	inst := &ps.instructions[len(ps.instructions)-1]

	alternatives := []func(inst *Instruction) (bool, error){
		ps.implied,
		ps.immediate,
		ps.absolute,
		ps.indirect,
		ps.relative,
		ps.accumulator,
	}

	start := ps.pos
	for _, alternative := range alternatives {
		ok, err = alternative(inst)
		if err != nil || ok {
			return
		}
		ps.pos = start
		inst.Operand = 0
		inst.Symbol = -1
	}

	err = ps.fail(start, ErrOperandInvalid)
	return
}

// operand consumes a number or identifier.
func (ps *parser) operand(inst *Instruction) (ok bool, err error) {
	index, tok := ps.next()
	switch {
	case tok.IsNumber():
		inst.Operand, err = tok.Value(ps.source)
		if err != nil {
			err = ps.fail(index, err)
			return
		}
		ok = true
	case tok.Kind == TOKEN_IDENTIFIER:
		inst.Symbol = index
		ok = true
	default:
		ps.unread()
	}

	return
}

// register consumes ',' followed by a register name.
func (ps *parser) register(name string) bool {
	_, comma := ps.next()
	if comma.Kind != TOKEN_COMMA {
		ps.unread()
		return false
	}

	_, reg := ps.next()
	if !ps.isRegister(reg, name) {
		ps.unread()
		ps.unread()
		return false
	}

	return true
}

func (ps *parser) implied(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Has(opcode.MODE_IMPLIED) {
		return
	}

	inst.Mode = opcode.MODE_IMPLIED
	ok = true
	return
}

func (ps *parser) immediate(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Has(opcode.MODE_IMMEDIATE) || ps.peek().Kind != TOKEN_HASH {
		return
	}
	ps.next()

	ok, err = ps.operand(inst)
	if ok {
		inst.Mode = opcode.MODE_IMMEDIATE
	}
	return
}

func (ps *parser) absolute(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Any(opcode.MASK_ABSOLUTE_FAMILY) {
		return
	}

	if inst.Legal.Has(opcode.MODE_ACCUMULATOR) && ps.isRegister(ps.peek(), "A") {
		return
	}

	ok, err = ps.operand(inst)
	if !ok || err != nil {
		return
	}

	switch {
	case ps.register("X"):
		inst.Mode = opcode.MODE_ABSOLUTE_X
	case ps.register("Y"):
		inst.Mode = opcode.MODE_ABSOLUTE_Y
	case ps.peek().Kind == TOKEN_COMMA:
		// Not an index register.
		ps.next()
		index, _ := ps.next()
		err = ps.fail(index, ErrOperandInvalid)
	default:
		inst.Mode = opcode.MODE_ABSOLUTE
	}

	return
}

func (ps *parser) indirect(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Any(opcode.MASK_INDIRECT_FAMILY) || ps.peek().Kind != TOKEN_OPEN_PAREN {
		return
	}
	open, _ := ps.next()

	ok, err = ps.operand(inst)
	if !ok || err != nil {
		return
	}
	ok = false

	var mode opcode.Mode
	switch {
	case ps.register("X"):
		if ps.peek().Kind != TOKEN_CLOSE_PAREN {
			return
		}
		ps.next()
		mode = opcode.MODE_INDEXED_INDIRECT_X
	case ps.peek().Kind == TOKEN_CLOSE_PAREN:
		ps.next()
		if ps.register("Y") {
			mode = opcode.MODE_INDIRECT_INDEXED_Y
		} else {
			mode = opcode.MODE_INDIRECT
		}
	default:
		return
	}

	if !inst.Legal.Has(mode) {
		err = ps.fail(open, ErrOperandInvalid)
		return
	}

	inst.Mode = mode
	ok = true
	return
}

func (ps *parser) relative(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Has(opcode.MODE_RELATIVE) {
		return
	}

	index, tok := ps.next()
	if tok.Kind != TOKEN_IDENTIFIER {
		return
	}

	inst.Symbol = index
	inst.Mode = opcode.MODE_RELATIVE
	ok = true
	return
}

func (ps *parser) accumulator(inst *Instruction) (ok bool, err error) {
	if !inst.Legal.Has(opcode.MODE_ACCUMULATOR) {
		return
	}

	_, tok := ps.next()
	if !ps.isRegister(tok, "A") {
		return
	}

	inst.Mode = opcode.MODE_ACCUMULATOR
	ok = true
	return
}
