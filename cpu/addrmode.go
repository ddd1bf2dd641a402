package cpu

// AddrModeType is the tag of an addressing mode.
type AddrModeType string

// The closed set of addressing modes used by the implemented instruction
// set. Valid (instruction, mode) pairings exist only as dispatch table
// entries; there is no way to request an unlisted combination at runtime.
const (
	AddrModeTypeAbs AddrModeType = "Abs"
	AddrModeTypeAbx AddrModeType = "Abx"
	AddrModeTypeAby AddrModeType = "Aby"
	AddrModeTypeAcc AddrModeType = "Acc"
	AddrModeTypeImm AddrModeType = "Imm"
	AddrModeTypeIzx AddrModeType = "Izx"
	AddrModeTypeIzy AddrModeType = "Izy"
	AddrModeTypeRel AddrModeType = "Rel"
	AddrModeTypeZp0 AddrModeType = "Zp0"
	AddrModeTypeZpx AddrModeType = "Zpx"
)

// Each addressing mode method resolves the operand location for the
// instruction being executed, consuming 0-2 bytes following the opcode, and
// returns 1 if resolution crossed a page in a way that can cost an extra
// cycle, 0 otherwise. All address arithmetic wraps: 8-bit quantities wrap
// within a byte, 16-bit quantities wrap within the address space. That is
// observable hardware behavior, never an error.

// Acc is Address Mode: Accumulator
// The operand is the accumulator itself; no memory access is required.
func (cpu *CPU) Acc() uint8 {
	cpu.fetched = cpu.a
	return 0
}

// Imm is Address Mode: Immediate
// The instruction expects the next byte to be used as a value, so we'll prep
// the read address to point to the next byte
func (cpu *CPU) Imm() uint8 {
	cpu.addrAbs = cpu.programCounter
	cpu.programCounter++
	return 0
}

// Zp0 is Address Mode: Zero Page
// To save program bytes, zero page addressing allows you to absolutely
// address a location in the first 0xFF bytes of the address range. Clearly
// this only requires one byte instead of the usual two.
func (cpu *CPU) Zp0() uint8 {
	cpu.addrAbs = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++
	cpu.addrAbs &= 0x00ff
	return 0
}

// Zpx is Address Mode: Zero Page with X Offset
// Fundamentally the same as Zero Page addressing, but the contents of the X
// Register is added to the supplied single byte address. The sum wraps
// within page zero: it never carries into page one.
func (cpu *CPU) Zpx() uint8 {
	cpu.addrAbs = uint16(cpu.Read(cpu.programCounter) + cpu.x)
	cpu.programCounter++
	cpu.addrAbs &= 0x00ff
	return 0
}

// Rel is Address Mode: Relative
// This address mode is exclusive to branch instructions. The displacement
// byte is signed two's-complement, so the target must reside within -128 to
// +127 of the byte following the branch instruction.
func (cpu *CPU) Rel() uint8 {
	cpu.addrRel = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++
	if (cpu.addrRel & 0x80) != 0 {
		cpu.addrRel |= 0xff00
	}
	return 0
}

// Abs is Address Mode: Absolute
// A full 16-bit address is loaded, low byte first
func (cpu *CPU) Abs() uint8 {
	var lo uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++
	var hi uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++

	cpu.addrAbs = (hi << 8) | lo

	return 0
}

// Abx is Address Mode: Absolute with X Offset
// Fundamentally the same as absolute addressing, but the contents of the X
// Register is added to the supplied two byte address. If the resulting
// address changes the page, an additional clock cycle may be required
func (cpu *CPU) Abx() uint8 {
	var lo uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++
	var hi uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.x)

	if (cpu.addrAbs & 0xff00) != (hi << 8) {
		return 1
	}
	return 0
}

// Aby is Address Mode: Absolute with Y Offset
// Same as above but uses Y Register for offset
func (cpu *CPU) Aby() uint8 {
	var lo uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++
	var hi uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.y)

	if (cpu.addrAbs & 0xff00) != (hi << 8) {
		return 1
	}
	return 0
}

// Izx is Address Mode: Indirect X
// The supplied 8-bit address is offset by X Register to index a location in
// page 0x00, wrapping within the page. The actual 16-bit address is read
// from this location, and the pointer's high byte also wraps within page
// zero: a pointer at 0xFF reads its high byte from 0x00, never from 0x100.
func (cpu *CPU) Izx() uint8 {
	var t uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++

	var lo uint16 = uint16(cpu.Read((t + uint16(cpu.x)) & 0x00ff))
	var hi uint16 = uint16(cpu.Read((t + uint16(cpu.x) + 1) & 0x00ff))

	cpu.addrAbs = (hi << 8) | lo

	return 0
}

// Izy is Address Mode: Indirect Y
// The supplied 8-bit address indexes a location in page 0x00. From here the
// actual 16-bit address is read (with the same zero-page pointer wrap as
// Izx), and the contents of the Y Register is added to it to offset it. If
// the offset causes a change in page then an additional clock cycle may be
// required.
func (cpu *CPU) Izy() uint8 {
	var t uint16 = uint16(cpu.Read(cpu.programCounter))
	cpu.programCounter++

	var lo uint16 = uint16(cpu.Read(t & 0x00ff))
	var hi uint16 = uint16(cpu.Read((t + 1) & 0x00ff))

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.y)

	if (cpu.addrAbs & 0xff00) != (hi << 8) {
		return 1
	}
	return 0
}
