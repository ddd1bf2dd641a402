package cpu

// createInstructions fills the 6502 opcode translation table. Entries are
// keyed by opcode byte and exist only for documented (instruction,
// addressing mode) pairs; every other opcode is a zero entry whose nil
// Operate marks it as unsupported to Step. Base cycle counts follow the
// historical timing table; the addressing mode and instruction methods
// report the page-cross and branch-taken penalties on top of these.
func (cpu *CPU) createInstructions() {
	cpu.instructions = [256]Instruction{
		0x06: {OperateTypeAsl, AddrModeTypeZp0, 5, cpu.Asl, cpu.Zp0},
		0x0a: {OperateTypeAsl, AddrModeTypeAcc, 2, cpu.Asl, cpu.Acc},
		0x0e: {OperateTypeAsl, AddrModeTypeAbs, 6, cpu.Asl, cpu.Abs},
		0x10: {OperateTypeBpl, AddrModeTypeRel, 2, cpu.Bpl, cpu.Rel},
		0x16: {OperateTypeAsl, AddrModeTypeZpx, 6, cpu.Asl, cpu.Zpx},
		0x1e: {OperateTypeAsl, AddrModeTypeAbx, 7, cpu.Asl, cpu.Abx},
		0x21: {OperateTypeAnd, AddrModeTypeIzx, 6, cpu.And, cpu.Izx},
		0x24: {OperateTypeBit, AddrModeTypeZp0, 3, cpu.Bit, cpu.Zp0},
		0x25: {OperateTypeAnd, AddrModeTypeZp0, 3, cpu.And, cpu.Zp0},
		0x29: {OperateTypeAnd, AddrModeTypeImm, 2, cpu.And, cpu.Imm},
		0x2c: {OperateTypeBit, AddrModeTypeAbs, 4, cpu.Bit, cpu.Abs},
		0x2d: {OperateTypeAnd, AddrModeTypeAbs, 4, cpu.And, cpu.Abs},
		0x30: {OperateTypeBmi, AddrModeTypeRel, 2, cpu.Bmi, cpu.Rel},
		0x31: {OperateTypeAnd, AddrModeTypeIzy, 5, cpu.And, cpu.Izy},
		0x35: {OperateTypeAnd, AddrModeTypeZpx, 4, cpu.And, cpu.Zpx},
		0x39: {OperateTypeAnd, AddrModeTypeAby, 4, cpu.And, cpu.Aby},
		0x3d: {OperateTypeAnd, AddrModeTypeAbx, 4, cpu.And, cpu.Abx},
		0x61: {OperateTypeAdc, AddrModeTypeIzx, 6, cpu.Adc, cpu.Izx},
		0x65: {OperateTypeAdc, AddrModeTypeZp0, 3, cpu.Adc, cpu.Zp0},
		0x69: {OperateTypeAdc, AddrModeTypeImm, 2, cpu.Adc, cpu.Imm},
		0x6d: {OperateTypeAdc, AddrModeTypeAbs, 4, cpu.Adc, cpu.Abs},
		0x71: {OperateTypeAdc, AddrModeTypeIzy, 5, cpu.Adc, cpu.Izy},
		0x75: {OperateTypeAdc, AddrModeTypeZpx, 4, cpu.Adc, cpu.Zpx},
		0x79: {OperateTypeAdc, AddrModeTypeAby, 4, cpu.Adc, cpu.Aby},
		0x7d: {OperateTypeAdc, AddrModeTypeAbx, 4, cpu.Adc, cpu.Abx},
		0x90: {OperateTypeBcc, AddrModeTypeRel, 2, cpu.Bcc, cpu.Rel},
		0xb0: {OperateTypeBcs, AddrModeTypeRel, 2, cpu.Bcs, cpu.Rel},
		0xd0: {OperateTypeBne, AddrModeTypeRel, 2, cpu.Bne, cpu.Rel},
		0xf0: {OperateTypeBeq, AddrModeTypeRel, 2, cpu.Beq, cpu.Rel},
	}
}
