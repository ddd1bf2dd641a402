package cpu

// OperateType is the mnemonic of an instruction.
type OperateType string

// The implemented instruction set.
const (
	OperateTypeAdc OperateType = "ADC"
	OperateTypeAnd OperateType = "AND"
	OperateTypeAsl OperateType = "ASL"
	OperateTypeBcc OperateType = "BCC"
	OperateTypeBcs OperateType = "BCS"
	OperateTypeBeq OperateType = "BEQ"
	OperateTypeBit OperateType = "BIT"
	OperateTypeBmi OperateType = "BMI"
	OperateTypeBne OperateType = "BNE"
	OperateTypeBpl OperateType = "BPL"
)

// Each instruction method consumes the operand resolved by its addressing
// mode, updates registers, flags and (for read-modify-write instructions)
// memory, and returns 1 if the instruction's timing is sensitive to a page
// cross reported by the addressing mode, 0 otherwise.

// Adc is Instruction: Add with Carry In
// Function:    A = A + M + C
// Flags Out:   C, V, N, Z
//
// In binary mode the add is performed in the 16-bit domain so the carry out
// can be captured from bit 8. In decimal mode each nibble is treated as a
// decimal digit: the operand and then the carry-in are accumulated in two
// BCD passes, and the carry flag is set if either pass carried out of the
// top nibble.
//
// The signed overflow flag follows the hardware rule: overflow occurs when
// the accumulator and operand agree in sign but the result does not, i.e.
// V = (A^R) & (M^R) & 0x80.
func (cpu *CPU) Adc() uint8 {
	// Grab the data that we are adding to the accumulator
	cpu.Fetch()

	var result uint8
	if cpu.GetFlag(FlagD) == 1 {
		var carry1, carry2 bool
		result, carry1 = bcdAdd(cpu.a, cpu.fetched)
		result, carry2 = bcdAdd(result, cpu.GetFlag(FlagC))
		cpu.SetFlag(FlagC, carry1 || carry2)
	} else {
		temp := uint16(cpu.a) + uint16(cpu.fetched) + uint16(cpu.GetFlag(FlagC))
		cpu.SetFlag(FlagC, temp > 0x00ff)
		result = uint8(temp & 0x00ff)
	}

	cpu.SetFlag(FlagV, ((cpu.a^result)&(cpu.fetched^result)&0x80) != 0)
	cpu.SetFlag(FlagZ, result == 0x00)
	cpu.SetFlag(FlagN, (result&0x80) != 0)

	// Load the result into the accumulator (it's 8-bit dont forget!)
	cpu.a = result

	// This instruction has the potential to require an additional clock cycle
	return 1
}

// And is Instruction: Bitwise Logic AND
// Function:    A = A & M
// Flags Out:   N, Z
func (cpu *CPU) And() uint8 {
	cpu.Fetch()

	cpu.a = cpu.a & cpu.fetched

	cpu.SetFlag(FlagZ, cpu.a == 0x00)
	cpu.SetFlag(FlagN, (cpu.a&0x80) != 0)

	return 1
}

// Asl is Instruction: Arithmetic Shift Left
// Function:    A = C <- (A << 1) <- 0
// Flags Out:   N, Z, C
//
// The bit shifted out of the top lands in the carry flag. The result is
// written back to wherever the operand came from: the accumulator in
// accumulator mode, the resolved address otherwise.
func (cpu *CPU) Asl() uint8 {
	cpu.Fetch()

	temp := uint16(cpu.fetched) << 1

	cpu.SetFlag(FlagC, (temp&0xff00) > 0)
	cpu.SetFlag(FlagZ, (temp&0x00ff) == 0x00)
	cpu.SetFlag(FlagN, (temp&0x0080) != 0)

	if cpu.instructions[cpu.opcode].AddrMdType == AddrModeTypeAcc {
		cpu.a = uint8(temp & 0x00ff)
	} else {
		cpu.Write(cpu.addrAbs, uint8(temp&0x00ff))
	}

	return 0
}

// Bit is Instruction: Test Bits in Memory with Accumulator
// Function:    Z <- (A & M) == 0    N <- M bit 7    V <- M bit 6
// The accumulator is never modified.
func (cpu *CPU) Bit() uint8 {
	cpu.Fetch()

	temp := cpu.a & cpu.fetched

	cpu.SetFlag(FlagZ, temp == 0x00)
	cpu.SetFlag(FlagN, (cpu.fetched&(1<<7)) != 0x00)
	cpu.SetFlag(FlagV, (cpu.fetched&(1<<6)) != 0x00)

	return 0
}

// Bcc is Instruction: Branch if Carry Clear
// Function:    if(C == 0) pc = address
func (cpu *CPU) Bcc() uint8 {
	if cpu.GetFlag(FlagC) == 0 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}

// Bcs is Instruction: Branch if Carry Set
// Function:    if(C == 1) pc = address
func (cpu *CPU) Bcs() uint8 {
	if cpu.GetFlag(FlagC) == 1 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}

// Beq is Instruction: Branch if Equal
// Function:    if(Z == 1) pc = address
func (cpu *CPU) Beq() uint8 {
	if cpu.GetFlag(FlagZ) == 1 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}

// Bmi is Instruction: Branch if Negative
// Function:    if(N == 1) pc = address
func (cpu *CPU) Bmi() uint8 {
	if cpu.GetFlag(FlagN) == 1 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}

// Bne is Instruction: Branch if Not Equal
// Function:    if(Z == 0) pc = address
func (cpu *CPU) Bne() uint8 {
	if cpu.GetFlag(FlagZ) == 0 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}

// Bpl is Instruction: Branch if Positive
// Function:    if(N == 0) pc = address
func (cpu *CPU) Bpl() uint8 {
	if cpu.GetFlag(FlagN) == 0 {
		cpu.cycles++
		cpu.addrAbs = cpu.programCounter + cpu.addrRel

		if (cpu.addrAbs & 0xff00) != (cpu.programCounter & 0xff00) {
			cpu.cycles++
		}

		cpu.programCounter = cpu.addrAbs
	}
	return 0
}
