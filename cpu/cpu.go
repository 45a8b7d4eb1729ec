package cpu

// CPU holds the programmer-visible registers plus the handful of bits of
// internal latch state needed to sequence interrupts (see interrupt.go).
// It has no memory of its own; every access crosses the Pins boundary
// into the host-supplied Bus.
type CPU struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       uint8

	bus    Bus
	pins   Pins
	cycles uint64

	// Interrupt latch state. rstLatched/needNMI persist until serviced;
	// prevIRQ/prevNeedNMI are the snapshots sampled on the cycle before
	// the current one, which is what Step consults at the instruction
	// boundary (see pollInterrupts).
	rstLatched  bool
	irqPending  bool
	prevIRQ     bool
	needNMI     bool
	prevNeedNMI bool
	prevNMIPin  bool
}

// New constructs a CPU wired to bus in power-up state: A=X=Y=0, S=0xFD,
// P=I|U, PC=0, cycles=0, with RESET latched so the first Step runs the
// reset sequence and loads PC from the reset vector.
func New(bus Bus) *CPU {
	return &CPU{
		S:          0xFD,
		P:          FlagI | FlagU,
		bus:        bus,
		pins:       Pins{RW: true},
		rstLatched: true,
	}
}

// Cycles returns the monotonic bus-cycle counter. It increases by exactly
// one for every readByte or writeByte.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// TriggerReset latches a reset independent of the pins, for hosts that
// want to force a reset without driving RST through Tick (e.g. to model a
// hardware reset button wired outside the emulated bus).
func (c *CPU) TriggerReset() {
	c.rstLatched = true
}

// pollInterrupts samples the pins after every bus cycle and updates the
// edge/level latches. The "prev" snapshots are what Step consults: an
// interrupt is honored at the next instruction boundary only if it was
// already asserted on the penultimate cycle of the instruction just
// finished, which is why this runs after every cycle rather than only at
// fetch time.
func (c *CPU) pollInterrupts() {
	c.prevIRQ = c.irqPending
	c.irqPending = c.pins.IRQ && c.P&FlagI == 0

	c.prevNeedNMI = c.needNMI
	if !c.prevNMIPin && c.pins.NMI {
		c.needNMI = true
	}
	c.prevNMIPin = c.pins.NMI

	if c.pins.RST {
		c.rstLatched = true
	}
}

// readByte increments the cycle counter, drives a read cycle through the
// bus, and samples interrupts.
func (c *CPU) readByte(addr uint16) uint8 {
	c.cycles++
	c.pins.Address = addr
	c.pins.RW = true
	c.bus.Tick(&c.pins)
	c.pollInterrupts()
	return c.pins.Data
}

// writeByte increments the cycle counter, drives a write cycle through the
// bus, and samples interrupts.
func (c *CPU) writeByte(addr uint16, v uint8) {
	c.cycles++
	c.pins.Address = addr
	c.pins.Data = v
	c.pins.RW = false
	c.bus.Tick(&c.pins)
	c.pollInterrupts()
}

// readWord reads two consecutive bytes, low then high.
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.readByte(addr)
	hi := c.readByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readWordBugged reads a word the way indirect addressing does on real
// silicon: the high byte is fetched from the same page as the low byte,
// wrapping instead of carrying into the next page. This is the
// JMP (ind)/zero-page-pointer page-wrap bug.
func (c *CPU) readWordBugged(addr uint16) uint16 {
	lo := c.readByte(addr)
	hi := c.readByte((addr & 0xFF00) | uint16(uint8(addr)+1))
	return uint16(hi)<<8 | uint16(lo)
}

// consumeByte reads the byte at PC and advances PC by one.
func (c *CPU) consumeByte() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

// consumeWord reads the word at PC and advances PC by two.
func (c *CPU) consumeWord() uint16 {
	v := c.readWord(c.PC)
	c.PC += 2
	return v
}

// push writes v to the stack page and decrements S.
func (c *CPU) push(v uint8) {
	c.writeByte(stackBase+uint16(c.S), v)
	c.S--
}

// pop increments S and reads the byte now at the top of the stack.
func (c *CPU) pop() uint8 {
	c.S++
	return c.readByte(stackBase + uint16(c.S))
}

// peek reads the byte that a pop would return, without changing S. Used
// for the "dummy stack read" cycle several instructions perform before
// the real pop(s).
func (c *CPU) peek() uint8 {
	return c.readByte(stackBase + uint16(c.S+1))
}

// Step executes exactly one instruction, or one interrupt sequence if
// RESET/NMI/IRQ is pending at the instruction boundary. The cycle counter
// advances by however many bus cycles that takes (2 to 8 for a single
// instruction; 7 for an interrupt sequence).
func (c *CPU) Step() {
	if c.rstLatched || c.prevNeedNMI || c.prevIRQ {
		// The host does not get a real opcode fetch here: this dummy read
		// stands in for it (PC is not advanced), so IRQ/NMI/RESET entry
		// takes the same 7 bus cycles as a BRK that was reached by
		// fetching opcode 0x00 normally.
		c.readByte(c.PC)

		kind := kindIRQ
		switch {
		case c.rstLatched:
			kind = kindReset
		case c.prevNeedNMI:
			kind = kindNMI
		}
		c.interrupt(kind)
		return
	}

	op := c.consumeByte()
	c.execute(op)
}
