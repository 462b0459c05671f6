package cpu

// Official 6502 instruction bodies. Each receives the operand already
// resolved by the dispatcher and returns any cycles it adds beyond
// the opcode table's base cost (only taken branches ever do).

func (c *CPU) readOperand(op operand) uint8 {
	if op.accumulator {
		return c.a
	}
	return c.bus.Read(op.addr)
}

func (c *CPU) writeOperand(op operand, v uint8) {
	if op.accumulator {
		c.a = v
		return
	}
	c.bus.Write(op.addr, v)
}

func (c *CPU) adc(op operand) uint8 {
	m := c.readOperand(op)
	carry := uint16(0)
	if c.flagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.a) + uint16(m) + carry
	result := uint8(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (m^result)&(c.a^result)&0x80 != 0)
	c.a = result
	c.setZN(c.a)
	return 0
}

func (c *CPU) sbc(op operand) uint8 {
	m := c.readOperand(op)
	return c.subtractFromA(m)
}

// subtractFromA implements SBC's A-M-(1-C) arithmetic as A+^M+C,
// shared by the SBC opcodes (including the unofficial $EB encoding)
// and ISB's INC+SBC decomposition.
func (c *CPU) subtractFromA(m uint8) uint8 {
	inv := ^m
	carry := uint16(0)
	if c.flagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.a) + uint16(inv) + carry
	result := uint8(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (inv^result)&(c.a^result)&0x80 != 0)
	c.a = result
	c.setZN(c.a)
	return 0
}

func (c *CPU) and_(op operand) uint8 {
	c.a &= c.readOperand(op)
	c.setZN(c.a)
	return 0
}

func (c *CPU) asl(op operand) uint8 {
	v := c.readOperand(op)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) branch(taken bool, op operand) uint8 {
	if !taken {
		return 0
	}
	offset := int8(c.bus.Read(op.addr))
	target := uint16(int32(c.pc) + 1 + int32(offset))
	extra := uint8(1)
	if target&0xFF00 != (c.pc+1)&0xFF00 {
		extra++
	}
	c.pc = target
	return extra
}

func (c *CPU) bcc(op operand) uint8 { return c.branch(!c.flagSet(FlagCarry), op) }
func (c *CPU) bcs(op operand) uint8 { return c.branch(c.flagSet(FlagCarry), op) }
func (c *CPU) beq(op operand) uint8 { return c.branch(c.flagSet(FlagZero), op) }
func (c *CPU) bne(op operand) uint8 { return c.branch(!c.flagSet(FlagZero), op) }
func (c *CPU) bmi(op operand) uint8 { return c.branch(c.flagSet(FlagNegative), op) }
func (c *CPU) bpl(op operand) uint8 { return c.branch(!c.flagSet(FlagNegative), op) }
func (c *CPU) bvc(op operand) uint8 { return c.branch(!c.flagSet(FlagOverflow), op) }
func (c *CPU) bvs(op operand) uint8 { return c.branch(c.flagSet(FlagOverflow), op) }

func (c *CPU) bit(op operand) uint8 {
	m := c.readOperand(op)
	c.setFlag(FlagZero, c.a&m == 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	return 0
}

// brk is treated as a full interrupt sequence (not a halt): push
// PC+2, push P with B and U both set, set I, load PC from the IRQ/BRK
// vector.
func (c *CPU) brk(op operand) uint8 {
	c.push16(c.pc + 1)
	c.push8(c.p | FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.pc = c.read16(vectorIRQ)
	return 0
}

func (c *CPU) clc(op operand) uint8 { c.setFlag(FlagCarry, false); return 0 }
func (c *CPU) cld(op operand) uint8 { c.setFlag(FlagDecimal, false); return 0 }
func (c *CPU) cli(op operand) uint8 { c.setFlag(FlagInterrupt, false); return 0 }
func (c *CPU) clv(op operand) uint8 { c.setFlag(FlagOverflow, false); return 0 }

func (c *CPU) compare(reg uint8, op operand) uint8 {
	m := c.readOperand(op)
	result := reg - m
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(result)
	return 0
}

func (c *CPU) cmp(op operand) uint8 { return c.compare(c.a, op) }
func (c *CPU) cpx(op operand) uint8 { return c.compare(c.x, op) }
func (c *CPU) cpy(op operand) uint8 { return c.compare(c.y, op) }

func (c *CPU) dec(op operand) uint8 {
	v := c.readOperand(op) - 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) dex(op operand) uint8 { c.x--; c.setZN(c.x); return 0 }
func (c *CPU) dey(op operand) uint8 { c.y--; c.setZN(c.y); return 0 }

func (c *CPU) eor(op operand) uint8 {
	c.a ^= c.readOperand(op)
	c.setZN(c.a)
	return 0
}

func (c *CPU) inc(op operand) uint8 {
	v := c.readOperand(op) + 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) inx(op operand) uint8 { c.x++; c.setZN(c.x); return 0 }
func (c *CPU) iny(op operand) uint8 { c.y++; c.setZN(c.y); return 0 }

// jmp covers both Absolute and Indirect encodings; resolveOperand
// already applies the documented indirect page-wrap bug, so by the
// time exec runs op.addr is the final destination either way.
func (c *CPU) jmp(op operand) uint8 {
	c.pc = op.addr
	return 0
}

func (c *CPU) jsr(op operand) uint8 {
	c.push16(c.pc + 1)
	c.pc = op.addr
	return 0
}

func (c *CPU) lda(op operand) uint8 {
	c.a = c.readOperand(op)
	c.setZN(c.a)
	return 0
}

func (c *CPU) ldx(op operand) uint8 {
	c.x = c.readOperand(op)
	c.setZN(c.x)
	return 0
}

func (c *CPU) ldy(op operand) uint8 {
	c.y = c.readOperand(op)
	c.setZN(c.y)
	return 0
}

func (c *CPU) lsr(op operand) uint8 {
	v := c.readOperand(op)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) nop(op operand) uint8 { return 0 }

func (c *CPU) ora(op operand) uint8 {
	c.a |= c.readOperand(op)
	c.setZN(c.a)
	return 0
}

func (c *CPU) pha(op operand) uint8 { c.push8(c.a); return 0 }

func (c *CPU) php(op operand) uint8 {
	c.push8(c.p | FlagBreak | FlagUnused)
	return 0
}

func (c *CPU) pla(op operand) uint8 {
	c.a = c.pop8()
	c.setZN(c.a)
	return 0
}

func (c *CPU) plp(op operand) uint8 {
	c.p = (c.pop8() &^ FlagBreak) | FlagUnused
	return 0
}

func (c *CPU) rol(op operand) uint8 {
	v := c.readOperand(op)
	oldCarry := uint8(0)
	if c.flagSet(FlagCarry) {
		oldCarry = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	v = v<<1 | oldCarry
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) ror(op operand) uint8 {
	v := c.readOperand(op)
	oldCarry := uint8(0)
	if c.flagSet(FlagCarry) {
		oldCarry = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	v = v>>1 | oldCarry
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func (c *CPU) rti(op operand) uint8 {
	c.p = (c.pop8() &^ FlagBreak) | FlagUnused
	c.pc = c.pop16()
	return 0
}

func (c *CPU) rts(op operand) uint8 {
	c.pc = c.pop16() + 1
	return 0
}

func (c *CPU) sec(op operand) uint8 { c.setFlag(FlagCarry, true); return 0 }
func (c *CPU) sed(op operand) uint8 { c.setFlag(FlagDecimal, true); return 0 }
func (c *CPU) sei(op operand) uint8 { c.setFlag(FlagInterrupt, true); return 0 }

func (c *CPU) sta(op operand) uint8 { c.bus.Write(op.addr, c.a); return 0 }
func (c *CPU) stx(op operand) uint8 { c.bus.Write(op.addr, c.x); return 0 }
func (c *CPU) sty(op operand) uint8 { c.bus.Write(op.addr, c.y); return 0 }

func (c *CPU) tax(op operand) uint8 { c.x = c.a; c.setZN(c.x); return 0 }
func (c *CPU) tay(op operand) uint8 { c.y = c.a; c.setZN(c.y); return 0 }
func (c *CPU) tsx(op operand) uint8 { c.x = c.sp; c.setZN(c.x); return 0 }
func (c *CPU) txa(op operand) uint8 { c.a = c.x; c.setZN(c.a); return 0 }
func (c *CPU) txs(op operand) uint8 { c.sp = c.x; return 0 }
func (c *CPU) tya(op operand) uint8 { c.a = c.y; c.setZN(c.a); return 0 }
