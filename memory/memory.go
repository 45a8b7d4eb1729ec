// Package memory provides the flat RAM bank the host reference bus
// (see host.RAM) backs the core's Pins/Bus boundary with. The core itself
// has no memory map of its own (spec.md places cartridge mapping and
// shadowed regions out of the core's scope); a host only ever needs a
// single flat, aliasable address space to drive the CPU through its own
// tests, so this package narrows the teacher's chainable multi-bank
// Bank abstraction down to exactly that: one bank, no Parent pointer, no
// databus-snooping query.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank is a flat, byte-addressable memory region.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn fills the bank with the undefined contents real RAM has at
	// power-up.
	PowerOn()
}

// bank is a flat RAM bank. Addresses outside [0, len) alias modulo len,
// so a host backing a smaller address space than the CPU's full 64KiB
// still gets well-defined (if repeating) behavior instead of a panic.
type bank struct {
	mem []uint8
}

// New8BitRAMBank creates a flat R/W RAM bank of the given size. Size
// must be a power of 2 and no larger than 64KiB (the 6502's full
// address space); smaller sizes alias on Read/Write.
func New8BitRAMBank(size int) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &bank{mem: make([]uint8, size)}, nil
}

// Read implements Bank. addr is masked to fit the bank's size.
func (b *bank) Read(addr uint16) uint8 {
	addr &= uint16(len(b.mem) - 1)
	return b.mem[addr]
}

// Write implements Bank. addr is masked to fit the bank's size.
func (b *bank) Write(addr uint16, val uint8) {
	addr &= uint16(len(b.mem) - 1)
	b.mem[addr] = val
}

// PowerOn implements Bank and randomizes every byte.
func (b *bank) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range b.mem {
		b.mem[i] = uint8(rand.Intn(256))
	}
}
