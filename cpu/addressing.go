package cpu

// AddressingMode enumerates the twelve 6502 addressing modes.
type AddressingMode int

const (
	ModeAbsolute AddressingMode = iota
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAccumulator
	ModeImmediate
	ModeImplied
	ModeIndexedIndirect // (zp,X)
	ModeIndirect        // (abs), JMP only
	ModeIndirectIndexed // (zp),Y
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
)

// effectiveAddress computes the address an instruction should read or
// write, performing exactly the dummy reads the silicon does along the
// way. write must be true for store instructions (and for the address
// phase of read-modify-write instructions): on Absolute,X/Y and
// (zp),Y the chip always takes the extra cycle to read the unfixed
// address when a write is coming, since it cannot undo a write to an
// unfixed address the way it can discard an unneeded read.
func (c *CPU) effectiveAddress(mode AddressingMode, write bool) uint16 {
	switch mode {
	case ModeAbsolute:
		return c.consumeWord()

	case ModeAbsoluteX, ModeAbsoluteY:
		index := c.X
		if mode == ModeAbsoluteY {
			index = c.Y
		}
		lo := c.consumeByte()
		newLo := lo + index
		crossed := newLo < lo
		hi := c.consumeByte()

		unfixed := uint16(hi)<<8 | uint16(newLo)
		if crossed || write {
			c.readByte(unfixed)
		}

		carry := uint8(0)
		if crossed {
			carry = 1
		}
		return uint16(hi+carry)<<8 | uint16(newLo)

	case ModeImmediate:
		addr := c.PC
		c.PC++
		return addr

	case ModeIndirect:
		ptr := c.consumeWord()
		return c.readWordBugged(ptr)

	case ModeIndexedIndirect:
		t := c.consumeByte()
		c.readByte(uint16(t))
		return c.readWordBugged(uint16(t + c.X))

	case ModeIndirectIndexed:
		t := c.consumeByte()
		lo := c.readByte(uint16(t))
		newLo := lo + c.Y
		crossed := newLo < lo
		hi := c.readByte(uint16(t + 1))

		unfixed := uint16(hi)<<8 | uint16(newLo)
		if crossed || write {
			c.readByte(unfixed)
		}

		carry := uint8(0)
		if crossed {
			carry = 1
		}
		return uint16(hi+carry)<<8 | uint16(newLo)

	case ModeZeroPage:
		return uint16(c.consumeByte())

	case ModeZeroPageX, ModeZeroPageY:
		index := c.X
		if mode == ModeZeroPageY {
			index = c.Y
		}
		t := c.consumeByte()
		c.readByte(uint16(t))
		return uint16(t + index)

	default:
		panic("cpu: effectiveAddress called with no-address mode")
	}
}
