package cpu

// bcdAddDigit adds two decimal digits plus a carry in. A sum above 9 is
// renormalized by subtracting 10 and carrying into the next digit.
func bcdAddDigit(a, b uint8, carry bool) (uint8, bool) {
	sum := a + b
	if carry {
		sum++
	}
	if sum > 9 {
		return sum - 10, true
	}
	return sum, false
}

// bcdAdd adds two packed BCD bytes nibble by nibble, propagating the low
// nibble's carry into the high nibble. The boolean is the carry out of the
// top nibble.
func bcdAdd(a, b uint8) (uint8, bool) {
	lo, carryLo := bcdAddDigit(a&0x0f, b&0x0f, false)
	hi, carry := bcdAddDigit(a>>4, b>>4, carryLo)

	return (hi << 4) | lo, carry
}
