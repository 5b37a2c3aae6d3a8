package cpu

// Every handler returns the extra cycles (page-cross bonus, branch taken/
// page-cross) on top of the opcode table's base cycle count.

func (c *CPU) readOperand(mode AddressingMode) (uint8, bool) {
	addr, crossed := c.resolveAddr(mode)
	return c.bus.ReadMem(addr), crossed
}

func opADC(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	carry := uint16(0)
	if c.GetFlag(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := uint8(sum)
	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opSBC(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	carry := uint16(0)
	if c.GetFlag(FlagC) {
		carry = 1
	}
	inv := ^v
	sum := uint16(c.A) + uint16(inv) + carry
	result := uint8(sum)
	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^inv)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opAND(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.A &= v
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opORA(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.A |= v
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opEOR(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.A ^= v
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opASL(c *CPU, mode AddressingMode) int {
	if mode == AMAccumulator {
		c.SetFlag(FlagC, c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return 0
	}
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr)
	c.SetFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opLSR(c *CPU, mode AddressingMode) int {
	if mode == AMAccumulator {
		c.SetFlag(FlagC, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return 0
	}
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr)
	c.SetFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opROL(c *CPU, mode AddressingMode) int {
	var oldCarry uint8
	if c.GetFlag(FlagC) {
		oldCarry = 1
	}
	if mode == AMAccumulator {
		c.SetFlag(FlagC, c.A&0x80 != 0)
		c.A = c.A<<1 | oldCarry
		c.setZN(c.A)
		return 0
	}
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr)
	c.SetFlag(FlagC, v&0x80 != 0)
	v = v<<1 | oldCarry
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opROR(c *CPU, mode AddressingMode) int {
	var oldCarry uint8
	if c.GetFlag(FlagC) {
		oldCarry = 0x80
	}
	if mode == AMAccumulator {
		c.SetFlag(FlagC, c.A&0x01 != 0)
		c.A = c.A>>1 | oldCarry
		c.setZN(c.A)
		return 0
	}
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr)
	c.SetFlag(FlagC, v&0x01 != 0)
	v = v>>1 | oldCarry
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opINC(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr) + 1
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opDEC(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	v := c.bus.ReadMem(addr) - 1
	c.bus.WriteMem(addr, v)
	c.setZN(v)
	return 0
}

func opINX(c *CPU, _ AddressingMode) int { c.X++; c.setZN(c.X); return 0 }
func opINY(c *CPU, _ AddressingMode) int { c.Y++; c.setZN(c.Y); return 0 }
func opDEX(c *CPU, _ AddressingMode) int { c.X--; c.setZN(c.X); return 0 }
func opDEY(c *CPU, _ AddressingMode) int { c.Y--; c.setZN(c.Y); return 0 }

func opLDA(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.A = v
	c.setZN(c.A)
	if crossed {
		return 1
	}
	return 0
}

func opLDX(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.X = v
	c.setZN(c.X)
	if crossed {
		return 1
	}
	return 0
}

func opLDY(c *CPU, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	c.Y = v
	c.setZN(c.Y)
	if crossed {
		return 1
	}
	return 0
}

func opSTA(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	c.bus.WriteMem(addr, c.A)
	return 0
}

func opSTX(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	c.bus.WriteMem(addr, c.X)
	return 0
}

func opSTY(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	c.bus.WriteMem(addr, c.Y)
	return 0
}

func opBIT(c *CPU, mode AddressingMode) int {
	v, _ := c.readOperand(mode)
	c.SetFlag(FlagZ, c.A&v == 0)
	c.SetFlag(FlagV, v&0x40 != 0)
	c.SetFlag(FlagN, v&0x80 != 0)
	return 0
}

func compare(c *CPU, reg uint8, mode AddressingMode) int {
	v, crossed := c.readOperand(mode)
	result := uint16(reg) - uint16(v)
	c.SetFlag(FlagC, reg >= v)
	c.setZN(uint8(result))
	if crossed {
		return 1
	}
	return 0
}

func opCMP(c *CPU, mode AddressingMode) int { return compare(c, c.A, mode) }
func opCPX(c *CPU, mode AddressingMode) int { return compare(c, c.X, mode) }
func opCPY(c *CPU, mode AddressingMode) int { return compare(c, c.Y, mode) }

func opJMP(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	c.PC = addr
	return 0
}

func opJSR(c *CPU, mode AddressingMode) int {
	addr, _ := c.resolveAddr(mode)
	c.pushWord(c.PC - 1)
	c.PC = addr
	return 0
}

func opRTS(c *CPU, _ AddressingMode) int {
	c.PC = c.popWord() + 1
	return 0
}

func opBRK(c *CPU, _ AddressingMode) int {
	c.PC++ // skip the padding byte
	c.pushWord(c.PC)
	c.push(c.P | uint8(FlagB) | 0x20)
	c.SetFlag(FlagI, true)
	// This core has no installed IRQ handler to hand BRK off to; rather
	// than vector through $FFFE/F into whatever lives there, BRK halts.
	c.state = StateHalted
	return 0
}

func opRTI(c *CPU, _ AddressingMode) int {
	c.P = c.pop() | 0x20
	c.PC = c.popWord()
	c.rtiCount++
	return 0
}

func opPHA(c *CPU, _ AddressingMode) int { c.push(c.A); return 0 }
func opPHP(c *CPU, _ AddressingMode) int { c.push(c.P | uint8(FlagB) | 0x20); return 0 }
func opPLA(c *CPU, _ AddressingMode) int { c.A = c.pop(); c.setZN(c.A); return 0 }
func opPLP(c *CPU, _ AddressingMode) int { c.P = c.pop() | 0x20; return 0 }

func opCLC(c *CPU, _ AddressingMode) int { c.SetFlag(FlagC, false); return 0 }
func opSEC(c *CPU, _ AddressingMode) int { c.SetFlag(FlagC, true); return 0 }
func opCLI(c *CPU, _ AddressingMode) int { c.SetFlag(FlagI, false); return 0 }
func opSEI(c *CPU, _ AddressingMode) int { c.SetFlag(FlagI, true); return 0 }
func opCLD(c *CPU, _ AddressingMode) int { c.SetFlag(FlagD, false); return 0 }
func opSED(c *CPU, _ AddressingMode) int { c.SetFlag(FlagD, true); return 0 }
func opCLV(c *CPU, _ AddressingMode) int { c.SetFlag(FlagV, false); return 0 }

func opTAX(c *CPU, _ AddressingMode) int { c.X = c.A; c.setZN(c.X); return 0 }
func opTAY(c *CPU, _ AddressingMode) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func opTXA(c *CPU, _ AddressingMode) int { c.A = c.X; c.setZN(c.A); return 0 }
func opTYA(c *CPU, _ AddressingMode) int { c.A = c.Y; c.setZN(c.A); return 0 }
func opTSX(c *CPU, _ AddressingMode) int { c.X = c.S; c.setZN(c.X); return 0 }
func opTXS(c *CPU, _ AddressingMode) int { c.S = c.X; return 0 }

func opNOP(c *CPU, _ AddressingMode) int { return 0 }

func opBCC(c *CPU, _ AddressingMode) int { return branch(c, !c.GetFlag(FlagC)) }
func opBCS(c *CPU, _ AddressingMode) int { return branch(c, c.GetFlag(FlagC)) }
func opBEQ(c *CPU, _ AddressingMode) int { return branch(c, c.GetFlag(FlagZ)) }
func opBNE(c *CPU, _ AddressingMode) int { return branch(c, !c.GetFlag(FlagZ)) }
func opBMI(c *CPU, _ AddressingMode) int { return branch(c, c.GetFlag(FlagN)) }
func opBPL(c *CPU, _ AddressingMode) int { return branch(c, !c.GetFlag(FlagN)) }
func opBVC(c *CPU, _ AddressingMode) int { return branch(c, !c.GetFlag(FlagV)) }
func opBVS(c *CPU, _ AddressingMode) int { return branch(c, c.GetFlag(FlagV)) }
