package cpu

// interruptKind selects which vector and push behavior the shared BRK
// micro-program uses.
type interruptKind int

const (
	kindBRK interruptKind = iota
	kindIRQ
	kindNMI
	kindReset
)

// interrupt runs the BRK micro-program common to BRK, IRQ, NMI and RESET.
// Step's interrupt-entry path already performs one dummy read at PC
// before calling this for IRQ/NMI/RESET; for a real BRK opcode the
// preceding opcode fetch from Step/execute plays that role instead, which
// is why every kind ends up at 7 total bus cycles even though this
// function only accounts for 6 of them on its own.
func (c *CPU) interrupt(kind interruptKind) {
	c.readByte(c.PC)

	if kind == kindBRK {
		c.PC++
	}

	if kind == kindReset {
		// The chip is read-only during reset: three dummy stack reads
		// take the place of the three pushes, decrementing S but never
		// writing.
		for i := 0; i < 3; i++ {
			c.readByte(stackBase + uint16(c.S))
			c.S--
		}
	} else {
		pushP := c.P
		if kind == kindBRK {
			pushP |= FlagB
		}
		c.push(uint8(c.PC >> 8))
		c.push(uint8(c.PC))
		c.push(pushP)
	}

	c.P |= FlagI

	var vector uint16
	switch kind {
	case kindReset:
		vector = resetVector
	case kindNMI:
		vector = nmiVector
	default:
		vector = irqVector
	}
	lo := c.readByte(vector)
	hi := c.readByte(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)

	switch kind {
	case kindReset:
		c.rstLatched = false
	case kindNMI:
		c.needNMI = false
		c.prevNeedNMI = false
	}
}
