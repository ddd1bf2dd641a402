package bus

// BUS is the flat 64KB memory map of the system. There is no banking and
// no mapped I/O; a read returns exactly the byte last written. Hosts that
// want device mappings sit in front of this, not inside it.
type BUS struct {
	ram [64 * 1024]uint8
}

// New returns a bus with all 65536 bytes zeroed.
func New() *BUS {
	return &BUS{}
}

// Read returns the 8-bit byte located at the specified 16-bit address.
func (bus *BUS) Read(a uint16) uint8 {
	return bus.ram[a]
}

// Write stores a byte at the specified address.
func (bus *BUS) Write(a uint16, d uint8) {
	bus.ram[a] = d
}
