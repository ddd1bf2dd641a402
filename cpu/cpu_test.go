package cpu

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/welldias/go6502/bus"
)

func newTestCPU() *CPU {
	return New(bus.New())
}

// load writes a program into memory at origin and points the program
// counter at its first byte.
func load(cpu *CPU, origin uint16, prog ...uint8) {
	for i, b := range prog {
		cpu.Write(origin+uint16(i), b)
	}
	cpu.programCounter = origin
}

func step(t *testing.T, cpu *CPU) uint8 {
	t.Helper()
	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return cycles
}

func TestUnsupportedOpcode(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x02) // no such opcode

	cycles, err := cpu.Step()
	if err == nil {
		t.Fatal("expected an error for an opcode with no table entry")
	}
	if errors.Cause(err) != ErrUnsupportedOpcode {
		t.Errorf("expected ErrUnsupportedOpcode cause, got %v", err)
	}
	if cycles != 0 {
		t.Errorf("expected 0 cycles on failed dispatch, got %d", cycles)
	}
	if cpu.programCounter != 0x0200 {
		t.Errorf("program counter moved to 0x%04x on failed dispatch", cpu.programCounter)
	}
}

func TestDispatchTable(t *testing.T) {
	cpu := newTestCPU()

	implemented := 0
	for op := 0; op < 256; op++ {
		inst := cpu.instructions[op]
		if inst.Operate == nil {
			if inst.Addrmode != nil || inst.Cycles != 0 {
				t.Errorf("opcode 0x%02x: partial table entry", op)
			}
			continue
		}
		implemented++
		if inst.Addrmode == nil {
			t.Errorf("opcode 0x%02x: missing addressing mode", op)
		}
		if inst.Cycles == 0 {
			t.Errorf("opcode 0x%02x: zero base cycle count", op)
		}
		if inst.OperType == "" || inst.AddrMdType == "" {
			t.Errorf("opcode 0x%02x: missing type tags", op)
		}
	}

	if implemented != 29 {
		t.Errorf("expected 29 implemented opcodes, found %d", implemented)
	}
}

func TestAdcBinary(t *testing.T) {
	tests := []struct {
		name    string
		a       uint8
		operand uint8
		carryIn bool
		want    uint8
		c       bool
		v       bool
		n       bool
		z       bool
	}{
		{"simple", 0x50, 0x10, false, 0x60, false, false, false, false},
		{"carry in", 0x00, 0x00, true, 0x01, false, false, false, false},
		{"pos plus pos overflows", 0x50, 0x50, false, 0xa0, false, true, true, false},
		{"neg plus neg overflows", 0x90, 0x90, false, 0x20, true, true, false, false},
		{"wrap to zero", 0xff, 0x01, false, 0x00, true, false, false, true},
		{"neg plus neg in range", 0xd0, 0x90, false, 0x60, true, true, false, false},
		{"mixed signs never overflow", 0x50, 0xd0, false, 0x20, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := newTestCPU()
			load(cpu, 0x0200, 0x69, tt.operand) // ADC #operand
			cpu.a = tt.a
			cpu.SetFlag(FlagC, tt.carryIn)

			cycles := step(t, cpu)

			if cycles != 2 {
				t.Errorf("expected 2 cycles, got %d", cycles)
			}
			if cpu.a != tt.want {
				t.Errorf("A = 0x%02x, want 0x%02x", cpu.a, tt.want)
			}
			assertFlag(t, cpu, FlagC, tt.c)
			assertFlag(t, cpu, FlagV, tt.v)
			assertFlag(t, cpu, FlagN, tt.n)
			assertFlag(t, cpu, FlagZ, tt.z)
			if cpu.programCounter != 0x0202 {
				t.Errorf("PC = 0x%04x, want 0x0202", cpu.programCounter)
			}
		})
	}
}

func TestAnd(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x29, 0x0f) // AND #$0F
	cpu.a = 0xf3

	cycles := step(t, cpu)

	if cycles != 2 {
		t.Errorf("expected 2 cycles, got %d", cycles)
	}
	if cpu.a != 0x03 {
		t.Errorf("A = 0x%02x, want 0x03", cpu.a)
	}
	assertFlag(t, cpu, FlagZ, false)
	assertFlag(t, cpu, FlagN, false)
}

func TestAslAccumulator(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x0a) // ASL A
	cpu.a = 0x81

	cycles := step(t, cpu)

	if cycles != 2 {
		t.Errorf("expected 2 cycles, got %d", cycles)
	}
	if cpu.a != 0x02 {
		t.Errorf("A = 0x%02x, want 0x02", cpu.a)
	}
	// the discarded top bit lands in carry
	assertFlag(t, cpu, FlagC, true)
	assertFlag(t, cpu, FlagN, false)
	assertFlag(t, cpu, FlagZ, false)
}

func TestAslMemoryWriteBack(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x06, 0x40) // ASL $40
	cpu.Write(0x0040, 0xc0)

	cycles := step(t, cpu)

	if cycles != 5 {
		t.Errorf("expected 5 cycles, got %d", cycles)
	}
	if got := cpu.Read(0x0040); got != 0x80 {
		t.Errorf("memory = 0x%02x, want 0x80", got)
	}
	if cpu.a != 0x00 {
		t.Errorf("accumulator modified by memory-mode ASL: 0x%02x", cpu.a)
	}
	assertFlag(t, cpu, FlagC, true)
	assertFlag(t, cpu, FlagN, true)
}

func TestAslAbsoluteXFixedCost(t *testing.T) {
	// read-modify-write timing is flat: no page-cross bonus even though
	// the addressing mode reports one
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x1e, 0xff, 0x00) // ASL $00FF,X
	cpu.x = 0x01
	cpu.Write(0x0100, 0x01)

	cycles := step(t, cpu)

	if cycles != 7 {
		t.Errorf("expected 7 cycles, got %d", cycles)
	}
	if got := cpu.Read(0x0100); got != 0x02 {
		t.Errorf("memory = 0x%02x, want 0x02", got)
	}
}

func TestBitLeavesAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		a       uint8
		operand uint8
		n       bool
		v       bool
		z       bool
	}{
		{"bits 7 and 6 set, no intersection", 0x0f, 0xc0, true, true, true},
		{"intersection, low bits", 0x0f, 0x0f, false, false, false},
		{"bit 6 only", 0x01, 0x41, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := newTestCPU()
			load(cpu, 0x0200, 0x24, 0x10) // BIT $10
			cpu.Write(0x0010, tt.operand)
			cpu.a = tt.a

			cycles := step(t, cpu)

			if cycles != 3 {
				t.Errorf("expected 3 cycles, got %d", cycles)
			}
			if cpu.a != tt.a {
				t.Errorf("BIT modified the accumulator: 0x%02x", cpu.a)
			}
			assertFlag(t, cpu, FlagN, tt.n)
			assertFlag(t, cpu, FlagV, tt.v)
			assertFlag(t, cpu, FlagZ, tt.z)
		})
	}
}

func TestBranchNotTaken(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x90, 0x10) // BCC +16
	cpu.SetFlag(FlagC, true)

	cycles := step(t, cpu)

	if cycles != 2 {
		t.Errorf("expected 2 cycles, got %d", cycles)
	}
	if cpu.programCounter != 0x0202 {
		t.Errorf("PC = 0x%04x, want 0x0202", cpu.programCounter)
	}
}

func TestBranchTaken(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x90, 0x10) // BCC +16

	cycles := step(t, cpu)

	if cycles != 3 {
		t.Errorf("expected 3 cycles, got %d", cycles)
	}
	// target is the byte after the instruction plus the displacement
	if cpu.programCounter != 0x0212 {
		t.Errorf("PC = 0x%04x, want 0x0212", cpu.programCounter)
	}
}

func TestBranchTakenPageCross(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x02f0, 0xf0, 0x20) // BEQ +32
	cpu.SetFlag(FlagZ, true)

	cycles := step(t, cpu)

	if cycles != 4 {
		t.Errorf("expected 4 cycles, got %d", cycles)
	}
	if cpu.programCounter != 0x0312 {
		t.Errorf("PC = 0x%04x, want 0x0312", cpu.programCounter)
	}
}

func TestBranchBackward(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0205, 0xd0, 0xfb) // BNE -5

	cycles := step(t, cpu)

	if cycles != 3 {
		t.Errorf("expected 3 cycles, got %d", cycles)
	}
	if cpu.programCounter != 0x0202 {
		t.Errorf("PC = 0x%04x, want 0x0202", cpu.programCounter)
	}
}

func TestBranchConditions(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		flag   Flag
		taken  bool // branch taken when the flag is set?
	}{
		{"BCC", 0x90, FlagC, false},
		{"BCS", 0xb0, FlagC, true},
		{"BEQ", 0xf0, FlagZ, true},
		{"BNE", 0xd0, FlagZ, false},
		{"BMI", 0x30, FlagN, true},
		{"BPL", 0x10, FlagN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, set := range []bool{false, true} {
				cpu := newTestCPU()
				load(cpu, 0x0200, tt.opcode, 0x08)
				cpu.SetFlag(tt.flag, set)

				cycles := step(t, cpu)

				wantPC := uint16(0x0202)
				wantCycles := uint8(2)
				if set == tt.taken {
					wantPC = 0x020a
					wantCycles = 3
				}
				if cpu.programCounter != wantPC {
					t.Errorf("flag=%v: PC = 0x%04x, want 0x%04x", set, cpu.programCounter, wantPC)
				}
				if cycles != wantCycles {
					t.Errorf("flag=%v: cycles = %d, want %d", set, cycles, wantCycles)
				}
			}
		})
	}
}

// Negative and zero must be derived from the result alone, whatever the
// flags held before the instruction ran.
func TestFlagsIndependentOfPriorState(t *testing.T) {
	cpu := newTestCPU()
	load(cpu, 0x0200, 0x29, 0x00) // AND #$00
	cpu.a = 0xff
	cpu.status = 0xff

	step(t, cpu)

	assertFlag(t, cpu, FlagZ, true)
	assertFlag(t, cpu, FlagN, false)

	load(cpu, 0x0200, 0x29, 0x80) // AND #$80
	cpu.a = 0x80
	cpu.status = 0x00

	step(t, cpu)

	assertFlag(t, cpu, FlagZ, false)
	assertFlag(t, cpu, FlagN, true)
}

func assertFlag(t *testing.T, cpu *CPU, flag Flag, want bool) {
	t.Helper()
	got := cpu.GetFlag(flag) == 1
	if got != want {
		t.Errorf("flag 0x%02x = %v, want %v", uint8(flag), got, want)
	}
}
