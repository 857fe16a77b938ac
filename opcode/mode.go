package opcode

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED            = Mode(0)  // implied
	MODE_ACCUMULATOR        = Mode(1)  // accumulator
	MODE_IMMEDIATE          = Mode(2)  // immediate
	MODE_ZERO_PAGE          = Mode(3)  // zero-page
	MODE_ZERO_PAGE_X        = Mode(4)  // zero-page,X
	MODE_ZERO_PAGE_Y        = Mode(5)  // zero-page,Y
	MODE_ABSOLUTE           = Mode(6)  // absolute
	MODE_ABSOLUTE_X         = Mode(7)  // absolute,X
	MODE_ABSOLUTE_Y         = Mode(8)  // absolute,Y
	MODE_INDIRECT           = Mode(9)  // (indirect)
	MODE_INDEXED_INDIRECT_X = Mode(10) // (indirect,X)
	MODE_INDIRECT_INDEXED_Y = Mode(11) // (indirect),Y
	MODE_RELATIVE           = Mode(12) // relative
)

// MODE_COUNT is the number of addressing modes.
const MODE_COUNT = int(MODE_RELATIVE) + 1

// Instruction byte length, opcode included, per addressing mode.
var modeLength = [MODE_COUNT]int{
	MODE_IMPLIED:            1,
	MODE_ACCUMULATOR:        1,
	MODE_IMMEDIATE:          2,
	MODE_ZERO_PAGE:          2,
	MODE_ZERO_PAGE_X:        2,
	MODE_ZERO_PAGE_Y:        2,
	MODE_ABSOLUTE:           3,
	MODE_ABSOLUTE_X:         3,
	MODE_ABSOLUTE_Y:         3,
	MODE_INDIRECT:           3,
	MODE_INDEXED_INDIRECT_X: 2,
	MODE_INDIRECT_INDEXED_Y: 2,
	MODE_RELATIVE:           2,
}

// Length returns the instruction byte length for the mode, or 0 if the
// mode is unknown.
func (mode Mode) Length() int {
	if mode < 0 || int(mode) >= MODE_COUNT {
		return 0
	}
	return modeLength[mode]
}

// OperandBytes returns the number of operand bytes following the opcode.
func (mode Mode) OperandBytes() int {
	length := mode.Length()
	if length == 0 {
		return 0
	}
	return length - 1
}

// Bit returns the mask bit for the mode.
func (mode Mode) Bit() ModeMask {
	return ModeMask(1) << uint(mode)
}

// ZeroPage returns the zero-page counterpart of an absolute-family mode.
func (mode Mode) ZeroPage() (zp Mode, ok bool) {
	switch mode {
	case MODE_ABSOLUTE:
		return MODE_ZERO_PAGE, true
	case MODE_ABSOLUTE_X:
		return MODE_ZERO_PAGE_X, true
	case MODE_ABSOLUTE_Y:
		return MODE_ZERO_PAGE_Y, true
	}
	return mode, false
}

// Absolute returns the absolute counterpart of a zero-page-family mode.
func (mode Mode) Absolute() (abs Mode, ok bool) {
	switch mode {
	case MODE_ZERO_PAGE:
		return MODE_ABSOLUTE, true
	case MODE_ZERO_PAGE_X:
		return MODE_ABSOLUTE_X, true
	case MODE_ZERO_PAGE_Y:
		return MODE_ABSOLUTE_Y, true
	}
	return mode, false
}

// ModeMask is a set of addressing modes.
type ModeMask uint16

// Absolute and zero-page families, direct or indexed.
const (
	MASK_ABSOLUTE_FAMILY = ModeMask(1<<MODE_ABSOLUTE | 1<<MODE_ABSOLUTE_X | 1<<MODE_ABSOLUTE_Y |
		1<<MODE_ZERO_PAGE | 1<<MODE_ZERO_PAGE_X | 1<<MODE_ZERO_PAGE_Y)
	MASK_INDIRECT_FAMILY = ModeMask(1<<MODE_INDIRECT | 1<<MODE_INDEXED_INDIRECT_X | 1<<MODE_INDIRECT_INDEXED_Y)
)

// Has reports whether the mode is in the set.
func (mask ModeMask) Has(mode Mode) bool {
	return mask&mode.Bit() != 0
}

// Any reports whether any mode of other is in the set.
func (mask ModeMask) Any(other ModeMask) bool {
	return mask&other != 0
}

// Modes lists the modes in the set, in mode order.
func (mask ModeMask) Modes() (modes []Mode) {
	for n := range MODE_COUNT {
		if mask.Has(Mode(n)) {
			modes = append(modes, Mode(n))
		}
	}
	return
}
