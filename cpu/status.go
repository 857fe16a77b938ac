package cpu

import (
	"strings"
)

// Status register bits.
const (
	STATUS_CARRY     = byte(1 << 0)
	STATUS_ZERO      = byte(1 << 1)
	STATUS_INTERRUPT = byte(1 << 2)
	STATUS_DECIMAL   = byte(1 << 3)
	STATUS_BREAK     = byte(1 << 4)
	STATUS_UNUSED    = byte(1 << 5) // Always set when pushed.
	STATUS_OVERFLOW  = byte(1 << 6)
	STATUS_NEGATIVE  = byte(1 << 7)
)

// Status is the processor status register.
type Status struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// Value returns the register as a byte. The unused bit is always set.
func (st Status) Value() (v byte) {
	flags := []struct {
		set bool
		bit byte
	}{
		{st.Carry, STATUS_CARRY},
		{st.Zero, STATUS_ZERO},
		{st.InterruptDisable, STATUS_INTERRUPT},
		{st.Decimal, STATUS_DECIMAL},
		{st.Break, STATUS_BREAK},
		{st.Overflow, STATUS_OVERFLOW},
		{st.Negative, STATUS_NEGATIVE},
	}

	v = STATUS_UNUSED
	for _, flag := range flags {
		if flag.set {
			v |= flag.bit
		}
	}

	return
}

// Load sets the register from a byte.
func (st *Status) Load(v byte) {
	st.Carry = v&STATUS_CARRY != 0
	st.Zero = v&STATUS_ZERO != 0
	st.InterruptDisable = v&STATUS_INTERRUPT != 0
	st.Decimal = v&STATUS_DECIMAL != 0
	st.Break = v&STATUS_BREAK != 0
	st.Overflow = v&STATUS_OVERFLOW != 0
	st.Negative = v&STATUS_NEGATIVE != 0
}

// String renders the flags as NV-BDIZC, lower case when clear.
func (st Status) String() string {
	var s strings.Builder

	value := st.Value()
	for n, ch := range "NV-BDIZC" {
		bit := byte(0x80) >> n
		switch {
		case ch == '-':
			s.WriteRune(ch)
		case value&bit != 0:
			s.WriteRune(ch)
		default:
			s.WriteRune(ch + ('a' - 'A'))
		}
	}

	return s.String()
}
