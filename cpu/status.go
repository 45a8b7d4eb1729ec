package cpu

// Status register bits (the P register). Bit U is always observed as set;
// bit B is never stored in P itself, it is only injected into pushed
// copies of P to record whether the push was caused by BRK.
const (
	FlagC = uint8(0x01) // Carry
	FlagZ = uint8(0x02) // Zero
	FlagI = uint8(0x04) // Interrupt disable
	FlagD = uint8(0x08) // Decimal (storable, no arithmetic effect)
	FlagB = uint8(0x10) // Break (pushed-copy only)
	FlagU = uint8(0x20) // Unused, always reads 1
	FlagV = uint8(0x40) // Overflow
	FlagN = uint8(0x80) // Negative
)

// Vectors read through the bus like any other address.
const (
	nmiVector   = uint16(0xFFFA)
	resetVector = uint16(0xFFFC)
	irqVector   = uint16(0xFFFE)
)

const stackBase = uint16(0x0100)

func zn(v uint8) uint8 {
	var p uint8
	if v == 0 {
		p |= FlagZ
	}
	p |= v & FlagN
	return p
}

func (c *CPU) setZN(v uint8) {
	c.P = (c.P &^ (FlagZ | FlagN)) | zn(v)
}
