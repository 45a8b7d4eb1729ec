// Package host provides a minimal cpu.Bus implementation: a flat, aliasable
// RAM bank plus level/edge interrupt lines, suitable for driving the core
// through power-on, flat-memory test ROMs such as the Klaus Dormann
// functional test, and the single-step ProcessorTests vectors. Interrupt
// lines come only from attached Sender values; no address is watched for
// writes that would drive IRQ or NMI. It intentionally stops at "enough
// bus to run the core" and does not model any particular machine's memory
// map, cartridge mapping, or peripherals.
package host

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/sixfiveohtwo/core/cpu"
	"github.com/sixfiveohtwo/core/memory"
)

// RAM is a flat memory.Bank wired to the CPU through cpu.Bus. Size must be
// a power of 2; addresses outside [0, size) alias modulo size, the same
// rule the underlying memory.Bank implementation documents.
type RAM struct {
	bank memory.Bank

	irq Sender
	nmi Sender
	rst Sender
}

// NewRAM constructs a RAM of the given size (a power of 2, at most 64KiB)
// with all interrupt lines left unset. Use WithIRQ/WithNMI/WithReset to
// wire in sources, e.g. a Line or a Pulse, for the common case of driving
// a single core directly from test code.
func NewRAM(size int) (*RAM, error) {
	bank, err := memory.New8BitRAMBank(size)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return &RAM{bank: bank}, nil
}

// PowerOn randomizes every byte, mirroring how memory.Bank.PowerOn behaves
// on real hardware where RAM contents are undefined at power-up.
func (r *RAM) PowerOn() {
	r.bank.PowerOn()
}

// Load copies data into RAM starting at addr, for installing a test
// program or ROM image before running the core.
func (r *RAM) Load(addr uint16, data []uint8) {
	for i, b := range data {
		r.bank.Write(addr+uint16(i), b)
	}
}

// Read returns the byte at addr without going through a bus cycle, for
// test assertions that want to inspect memory without perturbing the
// CPU's databus-latch state.
func (r *RAM) Read(addr uint16) uint8 {
	return r.bank.Read(addr)
}

// WithIRQ, WithNMI and WithReset attach the Sender the core's Tick
// implementation consults for Pins.IRQ/NMI/RST on every cycle.
func (r *RAM) WithIRQ(s Sender) *RAM   { r.irq = s; return r }
func (r *RAM) WithNMI(s Sender) *RAM   { r.nmi = s; return r }
func (r *RAM) WithReset(s Sender) *RAM { r.rst = s; return r }

// Tick implements cpu.Bus: it services the read or write the core asked
// for, then reports the current state of any attached interrupt lines.
// NMI's edge detection lives in the core (cpu.CPU.pollInterrupts), not
// here: Tick only ever reports the instantaneous level of the pin.
func (r *RAM) Tick(pins *cpu.Pins) {
	if pins.RW {
		pins.Data = r.bank.Read(pins.Address)
	} else {
		r.bank.Write(pins.Address, pins.Data)
	}

	if r.irq != nil {
		pins.IRQ = r.irq.Raised()
	}
	if r.nmi != nil {
		pins.NMI = r.nmi.Raised()
	}
	if r.rst != nil {
		pins.RST = r.rst.Raised()
	}
}

// Dump renders the RAM contents with go-spew, for use in failing-test
// output and interactive debugging.
func (r *RAM) Dump() string {
	return spew.Sdump(r.bank)
}
