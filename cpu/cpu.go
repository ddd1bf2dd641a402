package cpu

import (
	"github.com/pkg/errors"

	"github.com/welldias/go6502/bus"
)

// Instruction is one entry of the opcode translation table.
type Instruction struct {
	OperType   OperateType
	AddrMdType AddrModeType
	Cycles     uint8
	Operate    func() uint8
	Addrmode   func() uint8
}

// CPU is The 6502 CPU core. It owns the register file and executes one
// instruction per Step call against the connected bus. A CPU must not be
// stepped from more than one goroutine, but independent CPU/bus pairs are
// fully isolated from each other.
type CPU struct {
	bus *bus.BUS

	a              uint8  // Accumulator Register
	x              uint8  // X Register
	y              uint8  // Y Register
	programCounter uint16 // Program Counter
	status         uint8  // Status Register

	// Working state of the instruction currently being executed. Set
	// during a Step call and meaningless outside of one.
	fetched uint8  // Represents the working input value to the ALU
	addrAbs uint16 // All used memory addresses end up in here
	addrRel uint16 // Represents the relative displacement of a branch
	opcode  uint8  // Is the instruction byte
	cycles  uint8  // Cycle cost accumulated by the current instruction

	instructions [256]Instruction
}

// ErrUnsupportedOpcode is reported by Step when the byte at the program
// counter has no entry in the dispatch table. The CPU state is left exactly
// as it was before the call, so the host is free to apply its own policy
// (halt, substitute a NOP, ...). Use errors.Cause to classify.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// New creates a CPU connected to the given bus, with every register and
// flag zeroed. The host is expected to populate memory and set the initial
// register values before stepping begins.
func New(b *bus.BUS) *CPU {
	cpu := &CPU{bus: b}
	cpu.createInstructions()
	return cpu
}

// Step executes the instruction at the current program counter: fetch the
// opcode, resolve the operand with the instruction's addressing mode,
// perform the operation and advance the program counter past the
// instruction. It returns the total cycle cost, including any page-cross
// and branch-taken penalties.
func (cpu *CPU) Step() (uint8, error) {
	// Read next instruction byte. This 8-bit value is used to index the
	// translation table to get the relevant information about how to
	// implement the instruction
	cpu.opcode = cpu.Read(cpu.programCounter)

	inst := &cpu.instructions[cpu.opcode]
	if inst.Operate == nil {
		return 0, errors.Wrapf(ErrUnsupportedOpcode,
			"opcode 0x%02x at 0x%04x", cpu.opcode, cpu.programCounter)
	}

	// Increment program counter, we read the opcode byte
	cpu.programCounter++

	// Get starting number of cycles
	cpu.cycles = inst.Cycles

	// Perform fetch of intermediate data using the required addressing
	// mode, then perform the operation. Both report whether they may add
	// a cycle; the page-cross penalty applies only when both do.
	additionalCycle1 := inst.Addrmode()
	additionalCycle2 := inst.Operate()

	cpu.cycles += additionalCycle1 & additionalCycle2

	return cpu.cycles, nil
}

// Fetch sources the data used by the instruction into a convenient working
// variable. In accumulator mode the data was already captured from the
// accumulator by the addressing mode; for every other mode the data resides
// at the location held within addrAbs, so it is read from there. Immediate
// mode exploits this slightly, as it has set addrAbs to the byte following
// the opcode.
func (cpu *CPU) Fetch() uint8 {
	if cpu.instructions[cpu.opcode].AddrMdType != AddrModeTypeAcc {
		cpu.fetched = cpu.Read(cpu.addrAbs)
	}
	return cpu.fetched
}

// Read reads an 8-bit byte from the bus, located at the specified 16-bit
// address
func (cpu *CPU) Read(a uint16) uint8 {
	return cpu.bus.Read(a)
}

// Write writes a byte to the bus at the specified address
func (cpu *CPU) Write(a uint16, d uint8) {
	cpu.bus.Write(a, d)
}

// A returns the accumulator.
func (cpu *CPU) A() uint8 {
	return cpu.a
}

// SetA loads the accumulator.
func (cpu *CPU) SetA(v uint8) {
	cpu.a = v
}

// X returns the X index register.
func (cpu *CPU) X() uint8 {
	return cpu.x
}

// SetX loads the X index register.
func (cpu *CPU) SetX(v uint8) {
	cpu.x = v
}

// Y returns the Y index register.
func (cpu *CPU) Y() uint8 {
	return cpu.y
}

// SetY loads the Y index register.
func (cpu *CPU) SetY(v uint8) {
	cpu.y = v
}

// PC returns the program counter.
func (cpu *CPU) PC() uint16 {
	return cpu.programCounter
}

// SetPC loads the program counter.
func (cpu *CPU) SetPC(v uint16) {
	cpu.programCounter = v
}
