// Package membank implements the fixed-size byte-array building block that
// every ROM bank, RAM region, and OAM/palette array in this emulator is
// built from.
package membank

import "nescore/internal/nerr"

// Bank is a fixed-size byte array with bounds-checked access and a
// block-copy primitive. Cartridge banks, CPU RAM, PPU VRAM, sprite OAM, and
// palette RAM are all a Bank underneath.
type Bank struct {
	data []uint8
}

// New allocates a zeroed Bank of exactly size bytes.
func New(size int) *Bank {
	return &Bank{data: make([]uint8, size)}
}

// NewFrom wraps an existing slice as a Bank without copying. The caller must
// not retain a separate mutable reference to data.
func NewFrom(data []uint8) *Bank {
	return &Bank{data: data}
}

// Size returns the bank's fixed length.
func (b *Bank) Size() int { return len(b.data) }

// Read returns the byte at addr. addr must be < Size(); out-of-range access
// is a programming error and panics, matching the spec's "fatal programming
// error" treatment of bounds violations.
func (b *Bank) Read(addr int) uint8 {
	return b.data[addr]
}

// Write stores v at addr. addr must be < Size().
func (b *Bank) Write(addr int, v uint8) {
	b.data[addr] = v
}

// WriteBlock copies src into the bank starting at offset. It returns a
// SizeOverflow error instead of panicking, since block writes originate from
// loader/flash code paths where the span is attacker- or file-controlled.
func (b *Bank) WriteBlock(offset int, src []uint8) error {
	if offset < 0 || offset+len(src) > len(b.data) {
		return nerr.New(nerr.SizeOverflow, "block write of %d bytes at offset %d exceeds bank size %d", len(src), offset, len(b.data))
	}
	copy(b.data[offset:offset+len(src)], src)
	return nil
}

// Slice returns the bank's backing storage. Callers must treat it as
// read-only unless they hold the bank's only reference.
func (b *Bank) Slice() []uint8 { return b.data }
