package cpu

// addDecimal adds two packed BCD values. Negative and overflow reflect the
// result after the units are adjusted, but before the tens are adjusted.
func addDecimal(a, v byte, carry bool) (r byte, rcarry, negative, overflow bool) {
	units := int(a&0x0f) + int(v&0x0f)
	if carry {
		units++
	}
	tens := int(a>>4) + int(v>>4)

	if units > 9 {
		units += 6
	}
	if units > 0x0f {
		tens++
	}

	partial := byte(tens<<4) | byte(units&0x0f)
	negative = partial&0x80 != 0
	overflow = (a^partial)&(v^partial)&0x80 != 0

	if tens > 9 {
		tens += 6
	}
	rcarry = tens > 0x0f

	r = byte(tens<<4) | byte(units&0x0f)
	return
}

// subtractDecimal subtracts two packed BCD values. A clear carry is a borrow.
// Flags follow the binary subtraction.
func subtractDecimal(a, v byte, carry bool) (r byte) {
	units := int(a&0x0f) - int(v&0x0f)
	if !carry {
		units--
	}
	tens := int(a>>4) - int(v>>4)

	if units < 0 {
		units -= 6
		tens--
	}
	if tens < 0 {
		tens -= 6
	}

	r = byte(tens<<4) | byte(units&0x0f)
	return
}
