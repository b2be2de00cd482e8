// Package memory defines the basic interfaces for working
// with a 6502 family memory map. The core only ever sees a single flat
// 64KB address space; interposing bank switching or MMIO is left to a
// future caller that implements Bank differently.
package memory

// Bank is the interface every other package in this module codes against
// rather than a bare byte array, so a future caller could swap in a banked
// or memory-mapped implementation without touching the CPU.
type Bank interface {
	// Read returns the data byte stored at addr. All 65536 addresses are
	// valid; there are no protected regions and reads never fail.
	Read(addr uint16) uint8
	// Write updates addr with the new value. Writes never fail.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank to its initial state. For this core that's
	// deterministically all zeros, matching the zeroed memory cpu.New
	// promises (unlike real hardware, whose power-on RAM is random).
	// cpu.Reset does not call it and leaves memory untouched.
	PowerOn()
}

// flatBank implements Bank as a single, fully populated 65536 byte address
// space with no aliasing or parent chain.
type flatBank struct {
	ram [65536]uint8
}

// NewFlatBank returns a Bank backed by a zero-filled 64KB array.
func NewFlatBank() Bank {
	return &flatBank{}
}

// Read implements Bank.
func (r *flatBank) Read(addr uint16) uint8 {
	return r.ram[addr]
}

// Write implements Bank.
func (r *flatBank) Write(addr uint16, val uint8) {
	r.ram[addr] = val
}

// PowerOn implements Bank and zero-fills the backing array.
func (r *flatBank) PowerOn() {
	for i := range r.ram {
		r.ram[i] = 0
	}
}

// Read16 reads a little-endian 16 bit value starting at pos: the low byte is
// at pos, the high byte at pos+1 (which wraps to 0x0000 if pos is 0xFFFF).
func Read16(b Bank, pos uint16) uint16 {
	lo := uint16(b.Read(pos))
	hi := uint16(b.Read(pos + 1))
	return (hi << 8) | lo
}

// Write16 stores val as a little-endian 16 bit value starting at pos,
// symmetric with Read16.
func Write16(b Bank, pos uint16, val uint16) {
	b.Write(pos, uint8(val&0xFF))
	b.Write(pos+1, uint8(val>>8))
}
