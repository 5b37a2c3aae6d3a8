package cpu

// AddressingMode names the operand-fetch strategy an instruction uses.
type AddressingMode int

const (
	AMAccumulator AddressingMode = iota
	AMImmediate
	AMZeroPage
	AMZeroPageX
	AMZeroPageY
	AMAbsolute
	AMAbsoluteX
	AMAbsoluteY
	AMIndirect      // JMP only
	AMIndexedIndirect // (zp,X)
	AMIndirectIndexed // (zp),Y
	AMImplied         // no operand; also covers branch/relative
)

// resolveAddr consumes whatever operand bytes mode requires from the
// instruction stream (advancing PC) and returns the effective address plus
// whether forming it crossed a page boundary. Accumulator and Implied modes
// have no address and return zero values.
func (c *CPU) resolveAddr(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case AMImmediate:
		addr = c.PC
		c.PC++
	case AMZeroPage:
		addr = uint16(c.fetchByte())
	case AMZeroPageX:
		addr = uint16(c.fetchByte()+c.X) & 0x00FF
	case AMZeroPageY:
		addr = uint16(c.fetchByte()+c.Y) & 0x00FF
	case AMAbsolute:
		addr = c.fetchWord()
	case AMAbsoluteX:
		base := c.fetchWord()
		addr = base + uint16(c.X)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case AMAbsoluteY:
		base := c.fetchWord()
		addr = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case AMIndirect:
		ptr := c.fetchWord()
		lo := c.bus.ReadMem(ptr)
		// The indirect-JMP page bug: if the pointer's low byte is $FF,
		// the high byte wraps within the same page instead of crossing
		// into the next one.
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.bus.ReadMem(hiAddr)
		addr = uint16(hi)<<8 | uint16(lo)
	case AMIndexedIndirect:
		zp := (c.fetchByte() + c.X) & 0xFF
		lo := c.bus.ReadMem(uint16(zp))
		hi := c.bus.ReadMem(uint16((zp + 1) & 0xFF))
		addr = uint16(hi)<<8 | uint16(lo)
	case AMIndirectIndexed:
		zp := c.fetchByte()
		lo := c.bus.ReadMem(uint16(zp))
		hi := c.bus.ReadMem(uint16((zp + 1) & 0xFF))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case AMAccumulator, AMImplied:
		// no operand bytes
	}
	return addr, pageCrossed
}

// branch reads the 8-bit signed displacement that follows every branch
// opcode and, if cond holds, jumps and returns the taken/page-cross
// penalty. The displacement byte is always consumed, taken or not.
func branch(c *CPU, cond bool) int {
	offset := int8(c.fetchByte())
	if !cond {
		return 0
	}
	from := c.PC
	target := uint16(int32(c.PC) + int32(offset))
	c.PC = target
	if target&0xFF00 != from&0xFF00 {
		return 2
	}
	return 1
}
