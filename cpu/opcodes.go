package cpu

// execute dispatches a fetched opcode byte to its instruction body. The
// 256-entry opcode space covers the 151 documented instructions plus the
// undocumented ("illegal") opcodes that execute deterministically on real
// silicon. Opcodes with no defined behavior (JAM/KIL, e.g. 0x02, 0x12,
// 0x22, ...) are modeled as a one-byte NOP, per spec: the real chip locks
// up on these, which has no useful deterministic single-step behavior to
// specify, so they degrade to the cheapest safe approximation instead of
// halting the whole emulator.
func (c *CPU) execute(op uint8) {
	switch op {
	// ADC
	case 0x69:
		c.adc(ModeImmediate)
	case 0x65:
		c.adc(ModeZeroPage)
	case 0x75:
		c.adc(ModeZeroPageX)
	case 0x6D:
		c.adc(ModeAbsolute)
	case 0x7D:
		c.adc(ModeAbsoluteX)
	case 0x79:
		c.adc(ModeAbsoluteY)
	case 0x61:
		c.adc(ModeIndexedIndirect)
	case 0x71:
		c.adc(ModeIndirectIndexed)

	// AND
	case 0x29:
		c.and(ModeImmediate)
	case 0x25:
		c.and(ModeZeroPage)
	case 0x35:
		c.and(ModeZeroPageX)
	case 0x2D:
		c.and(ModeAbsolute)
	case 0x3D:
		c.and(ModeAbsoluteX)
	case 0x39:
		c.and(ModeAbsoluteY)
	case 0x21:
		c.and(ModeIndexedIndirect)
	case 0x31:
		c.and(ModeIndirectIndexed)

	// ASL / SLO
	case 0x0A:
		c.readModifyWrite(ModeAccumulator, modifyASL)
	case 0x06:
		c.readModifyWrite(ModeZeroPage, modifyASL)
	case 0x16:
		c.readModifyWrite(ModeZeroPageX, modifyASL)
	case 0x0E:
		c.readModifyWrite(ModeAbsolute, modifyASL)
	case 0x1E:
		c.readModifyWrite(ModeAbsoluteX, modifyASL)
	case 0x07:
		c.slo(ModeZeroPage)
	case 0x17:
		c.slo(ModeZeroPageX)
	case 0x0F:
		c.slo(ModeAbsolute)
	case 0x1F:
		c.slo(ModeAbsoluteX)
	case 0x1B:
		c.slo(ModeAbsoluteY)
	case 0x03:
		c.slo(ModeIndexedIndirect)
	case 0x13:
		c.slo(ModeIndirectIndexed)

	// Branches
	case 0x90:
		c.branch(c.P&FlagC == 0)
	case 0xB0:
		c.branch(c.P&FlagC != 0)
	case 0xF0:
		c.branch(c.P&FlagZ != 0)
	case 0x30:
		c.branch(c.P&FlagN != 0)
	case 0xD0:
		c.branch(c.P&FlagZ == 0)
	case 0x10:
		c.branch(c.P&FlagN == 0)
	case 0x50:
		c.branch(c.P&FlagV == 0)
	case 0x70:
		c.branch(c.P&FlagV != 0)

	// BIT
	case 0x24:
		c.bit(ModeZeroPage)
	case 0x2C:
		c.bit(ModeAbsolute)

	// BRK
	case 0x00:
		c.interrupt(kindBRK)

	// Flag clear/set
	case 0x18:
		c.readByte(c.PC)
		c.P &^= FlagC
	case 0xD8:
		c.readByte(c.PC)
		c.P &^= FlagD
	case 0x58:
		c.readByte(c.PC)
		c.P &^= FlagI
	case 0xB8:
		c.readByte(c.PC)
		c.P &^= FlagV
	case 0x38:
		c.readByte(c.PC)
		c.P |= FlagC
	case 0xF8:
		c.readByte(c.PC)
		c.P |= FlagD
	case 0x78:
		c.readByte(c.PC)
		c.P |= FlagI

	// CMP/CPX/CPY
	case 0xC9:
		c.cmp(ModeImmediate)
	case 0xC5:
		c.cmp(ModeZeroPage)
	case 0xD5:
		c.cmp(ModeZeroPageX)
	case 0xCD:
		c.cmp(ModeAbsolute)
	case 0xDD:
		c.cmp(ModeAbsoluteX)
	case 0xD9:
		c.cmp(ModeAbsoluteY)
	case 0xC1:
		c.cmp(ModeIndexedIndirect)
	case 0xD1:
		c.cmp(ModeIndirectIndexed)
	case 0xE0:
		c.cpx(ModeImmediate)
	case 0xE4:
		c.cpx(ModeZeroPage)
	case 0xEC:
		c.cpx(ModeAbsolute)
	case 0xC0:
		c.cpy(ModeImmediate)
	case 0xC4:
		c.cpy(ModeZeroPage)
	case 0xCC:
		c.cpy(ModeAbsolute)

	// DCP
	case 0xC7:
		c.dcp(ModeZeroPage)
	case 0xD7:
		c.dcp(ModeZeroPageX)
	case 0xCF:
		c.dcp(ModeAbsolute)
	case 0xDF:
		c.dcp(ModeAbsoluteX)
	case 0xDB:
		c.dcp(ModeAbsoluteY)
	case 0xC3:
		c.dcp(ModeIndexedIndirect)
	case 0xD3:
		c.dcp(ModeIndirectIndexed)

	// DEC
	case 0xC6:
		c.readModifyWrite(ModeZeroPage, modifyDEC)
	case 0xD6:
		c.readModifyWrite(ModeZeroPageX, modifyDEC)
	case 0xCE:
		c.readModifyWrite(ModeAbsolute, modifyDEC)
	case 0xDE:
		c.readModifyWrite(ModeAbsoluteX, modifyDEC)

	// DEX/DEY/INX/INY
	case 0xCA:
		c.readByte(c.PC)
		c.X--
		c.setZN(c.X)
	case 0x88:
		c.readByte(c.PC)
		c.Y--
		c.setZN(c.Y)
	case 0xE8:
		c.readByte(c.PC)
		c.X++
		c.setZN(c.X)
	case 0xC8:
		c.readByte(c.PC)
		c.Y++
		c.setZN(c.Y)

	// EOR
	case 0x49:
		c.eor(ModeImmediate)
	case 0x45:
		c.eor(ModeZeroPage)
	case 0x55:
		c.eor(ModeZeroPageX)
	case 0x4D:
		c.eor(ModeAbsolute)
	case 0x5D:
		c.eor(ModeAbsoluteX)
	case 0x59:
		c.eor(ModeAbsoluteY)
	case 0x41:
		c.eor(ModeIndexedIndirect)
	case 0x51:
		c.eor(ModeIndirectIndexed)

	// INC
	case 0xE6:
		c.readModifyWrite(ModeZeroPage, modifyINC)
	case 0xF6:
		c.readModifyWrite(ModeZeroPageX, modifyINC)
	case 0xEE:
		c.readModifyWrite(ModeAbsolute, modifyINC)
	case 0xFE:
		c.readModifyWrite(ModeAbsoluteX, modifyINC)

	// ISB
	case 0xE7:
		c.isb(ModeZeroPage)
	case 0xF7:
		c.isb(ModeZeroPageX)
	case 0xEF:
		c.isb(ModeAbsolute)
	case 0xFF:
		c.isb(ModeAbsoluteX)
	case 0xFB:
		c.isb(ModeAbsoluteY)
	case 0xE3:
		c.isb(ModeIndexedIndirect)
	case 0xF3:
		c.isb(ModeIndirectIndexed)

	// JMP
	case 0x4C:
		c.PC = c.effectiveAddress(ModeAbsolute, false)
	case 0x6C:
		c.PC = c.effectiveAddress(ModeIndirect, false)

	// JSR
	case 0x20:
		c.jsr()

	// LAX
	case 0xA7:
		c.lax(ModeZeroPage)
	case 0xB7:
		c.lax(ModeZeroPageY)
	case 0xAF:
		c.lax(ModeAbsolute)
	case 0xBF:
		c.lax(ModeAbsoluteY)
	case 0xA3:
		c.lax(ModeIndexedIndirect)
	case 0xB3:
		c.lax(ModeIndirectIndexed)

	// LDA/LDX/LDY
	case 0xA9:
		c.lda(ModeImmediate)
	case 0xA5:
		c.lda(ModeZeroPage)
	case 0xB5:
		c.lda(ModeZeroPageX)
	case 0xAD:
		c.lda(ModeAbsolute)
	case 0xBD:
		c.lda(ModeAbsoluteX)
	case 0xB9:
		c.lda(ModeAbsoluteY)
	case 0xA1:
		c.lda(ModeIndexedIndirect)
	case 0xB1:
		c.lda(ModeIndirectIndexed)
	case 0xA2:
		c.ldx(ModeImmediate)
	case 0xA6:
		c.ldx(ModeZeroPage)
	case 0xB6:
		c.ldx(ModeZeroPageY)
	case 0xAE:
		c.ldx(ModeAbsolute)
	case 0xBE:
		c.ldx(ModeAbsoluteY)
	case 0xA0:
		c.ldy(ModeImmediate)
	case 0xA4:
		c.ldy(ModeZeroPage)
	case 0xB4:
		c.ldy(ModeZeroPageX)
	case 0xAC:
		c.ldy(ModeAbsolute)
	case 0xBC:
		c.ldy(ModeAbsoluteX)

	// LSR / SRE
	case 0x4A:
		c.readModifyWrite(ModeAccumulator, modifyLSR)
	case 0x46:
		c.readModifyWrite(ModeZeroPage, modifyLSR)
	case 0x56:
		c.readModifyWrite(ModeZeroPageX, modifyLSR)
	case 0x4E:
		c.readModifyWrite(ModeAbsolute, modifyLSR)
	case 0x5E:
		c.readModifyWrite(ModeAbsoluteX, modifyLSR)
	case 0x47:
		c.sre(ModeZeroPage)
	case 0x57:
		c.sre(ModeZeroPageX)
	case 0x4F:
		c.sre(ModeAbsolute)
	case 0x5F:
		c.sre(ModeAbsoluteX)
	case 0x5B:
		c.sre(ModeAbsoluteY)
	case 0x43:
		c.sre(ModeIndexedIndirect)
	case 0x53:
		c.sre(ModeIndirectIndexed)

	// NOP and read-NOPs (documented + illegal)
	case 0xEA:
		c.nop(ModeImplied)
	case 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA:
		c.nop(ModeImplied)
	case 0x80, 0x82, 0x89, 0xC2, 0xE2:
		c.nop(ModeImmediate)
	case 0x04, 0x44, 0x64:
		c.nop(ModeZeroPage)
	case 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4:
		c.nop(ModeZeroPageX)
	case 0x0C:
		c.nop(ModeAbsolute)
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		c.nop(ModeAbsoluteX)

	// JAM/KIL: modeled as a one-byte NOP.
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		c.nop(ModeImplied)

	// ORA
	case 0x09:
		c.ora(ModeImmediate)
	case 0x05:
		c.ora(ModeZeroPage)
	case 0x15:
		c.ora(ModeZeroPageX)
	case 0x0D:
		c.ora(ModeAbsolute)
	case 0x1D:
		c.ora(ModeAbsoluteX)
	case 0x19:
		c.ora(ModeAbsoluteY)
	case 0x01:
		c.ora(ModeIndexedIndirect)
	case 0x11:
		c.ora(ModeIndirectIndexed)

	// Stack
	case 0x48:
		c.pha()
	case 0x08:
		c.php()
	case 0x68:
		c.pla()
	case 0x28:
		c.plp()

	// RLA
	case 0x27:
		c.rla(ModeZeroPage)
	case 0x37:
		c.rla(ModeZeroPageX)
	case 0x2F:
		c.rla(ModeAbsolute)
	case 0x3F:
		c.rla(ModeAbsoluteX)
	case 0x3B:
		c.rla(ModeAbsoluteY)
	case 0x23:
		c.rla(ModeIndexedIndirect)
	case 0x33:
		c.rla(ModeIndirectIndexed)

	// ROL/ROR
	case 0x2A:
		c.readModifyWrite(ModeAccumulator, modifyROL)
	case 0x26:
		c.readModifyWrite(ModeZeroPage, modifyROL)
	case 0x36:
		c.readModifyWrite(ModeZeroPageX, modifyROL)
	case 0x2E:
		c.readModifyWrite(ModeAbsolute, modifyROL)
	case 0x3E:
		c.readModifyWrite(ModeAbsoluteX, modifyROL)
	case 0x6A:
		c.readModifyWrite(ModeAccumulator, modifyROR)
	case 0x66:
		c.readModifyWrite(ModeZeroPage, modifyROR)
	case 0x76:
		c.readModifyWrite(ModeZeroPageX, modifyROR)
	case 0x6E:
		c.readModifyWrite(ModeAbsolute, modifyROR)
	case 0x7E:
		c.readModifyWrite(ModeAbsoluteX, modifyROR)

	// RRA
	case 0x67:
		c.rra(ModeZeroPage)
	case 0x77:
		c.rra(ModeZeroPageX)
	case 0x6F:
		c.rra(ModeAbsolute)
	case 0x7F:
		c.rra(ModeAbsoluteX)
	case 0x7B:
		c.rra(ModeAbsoluteY)
	case 0x63:
		c.rra(ModeIndexedIndirect)
	case 0x73:
		c.rra(ModeIndirectIndexed)

	// RTI/RTS
	case 0x40:
		c.rti()
	case 0x60:
		c.rts()

	// SAX
	case 0x87:
		c.sax(ModeZeroPage)
	case 0x97:
		c.sax(ModeZeroPageY)
	case 0x8F:
		c.sax(ModeAbsolute)
	case 0x83:
		c.sax(ModeIndexedIndirect)

	// SBC
	case 0xE9, 0xEB:
		c.sbc(ModeImmediate)
	case 0xE5:
		c.sbc(ModeZeroPage)
	case 0xF5:
		c.sbc(ModeZeroPageX)
	case 0xED:
		c.sbc(ModeAbsolute)
	case 0xFD:
		c.sbc(ModeAbsoluteX)
	case 0xF9:
		c.sbc(ModeAbsoluteY)
	case 0xE1:
		c.sbc(ModeIndexedIndirect)
	case 0xF1:
		c.sbc(ModeIndirectIndexed)

	// SLO/SRE handled above with ASL/LSR.

	// STA/STX/STY
	case 0x85:
		c.sta(ModeZeroPage)
	case 0x95:
		c.sta(ModeZeroPageX)
	case 0x8D:
		c.sta(ModeAbsolute)
	case 0x9D:
		c.sta(ModeAbsoluteX)
	case 0x99:
		c.sta(ModeAbsoluteY)
	case 0x81:
		c.sta(ModeIndexedIndirect)
	case 0x91:
		c.sta(ModeIndirectIndexed)
	case 0x86:
		c.stx(ModeZeroPage)
	case 0x96:
		c.stx(ModeZeroPageY)
	case 0x8E:
		c.stx(ModeAbsolute)
	case 0x84:
		c.sty(ModeZeroPage)
	case 0x94:
		c.sty(ModeZeroPageX)
	case 0x8C:
		c.sty(ModeAbsolute)

	// Transfers
	case 0xAA:
		c.readByte(c.PC)
		c.X = c.A
		c.setZN(c.X)
	case 0xA8:
		c.readByte(c.PC)
		c.Y = c.A
		c.setZN(c.Y)
	case 0xBA:
		c.readByte(c.PC)
		c.X = c.S
		c.setZN(c.X)
	case 0x8A:
		c.readByte(c.PC)
		c.A = c.X
		c.setZN(c.A)
	case 0x9A:
		c.readByte(c.PC)
		c.S = c.X
	case 0x98:
		c.readByte(c.PC)
		c.A = c.Y
		c.setZN(c.A)

	// Immediate-mode illegal opcodes (ALR/ANC/ARR/SBX) and the unstable
	// illegal opcodes, the latter approximated deterministically.
	case 0x4B:
		c.alr()
	case 0x0B, 0x2B:
		c.anc()
	case 0x6B:
		c.arr()
	case 0x8B:
		c.ane()
	case 0xAB:
		c.lxa()
	case 0xCB:
		c.sbx()
	case 0x93:
		c.sha(ModeIndirectIndexed)
	case 0x9F:
		c.sha(ModeAbsoluteY)
	case 0x9C:
		c.shy()
	case 0x9E:
		c.shx()
	case 0x9B:
		c.tas()
	case 0xBB:
		c.las(ModeAbsoluteY)

	default:
		panic("cpu: unreachable opcode dispatch")
	}
}
