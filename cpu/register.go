package cpu

// Flag is the status register flag.
type Flag uint8

// The status register stores 8 flags. The implemented instruction set reads
// and writes C, Z, D, V and N; the I, B and U bits exist for the interrupt
// subsystem, which lives outside this core.
const (
	FlagC Flag = (1 << 0) // Carry Bit
	FlagZ Flag = (1 << 1) // Zero
	FlagI Flag = (1 << 2) // Disable Interrupts
	FlagD Flag = (1 << 3) // Decimal Mode
	FlagB Flag = (1 << 4) // Break
	FlagU Flag = (1 << 5) // Unused
	FlagV Flag = (1 << 6) // Overflow
	FlagN Flag = (1 << 7) // Negative
)

// GetFlag returns the value of a specific bit of the status register
func (cpu *CPU) GetFlag(flag Flag) uint8 {
	if (cpu.status & uint8(flag)) > 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears a specific bit of the status register
func (cpu *CPU) SetFlag(flag Flag, v bool) {
	if v {
		cpu.status |= uint8(flag)
	} else {
		cpu.status &= uint8(^flag)
	}
}
