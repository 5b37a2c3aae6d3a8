package cpu

// opEntry is one row of the static, opcode-indexed dispatch table: a
// handler, its base cycle cost, and whether it's part of the documented
// instruction set. Unofficial opcodes are out of scope (see the core's
// non-goals) and are left as zero-value entries, which CPU.step treats as
// unknown and routes to StateError.
type opEntry struct {
	name     string
	mode     AddressingMode
	cycles   int
	official bool
	exec     func(*CPU, AddressingMode) int
}

// opcodeTable maps every opcode byte to its entry. Built once at package
// init as a keyed array literal so unlisted bytes default to the zero
// opEntry (exec == nil).
var opcodeTable = [256]opEntry{
	// ADC
	0x69: {"ADC", AMImmediate, 2, true, opADC},
	0x65: {"ADC", AMZeroPage, 3, true, opADC},
	0x75: {"ADC", AMZeroPageX, 4, true, opADC},
	0x6D: {"ADC", AMAbsolute, 4, true, opADC},
	0x7D: {"ADC", AMAbsoluteX, 4, true, opADC},
	0x79: {"ADC", AMAbsoluteY, 4, true, opADC},
	0x61: {"ADC", AMIndexedIndirect, 6, true, opADC},
	0x71: {"ADC", AMIndirectIndexed, 5, true, opADC},

	// AND
	0x29: {"AND", AMImmediate, 2, true, opAND},
	0x25: {"AND", AMZeroPage, 3, true, opAND},
	0x35: {"AND", AMZeroPageX, 4, true, opAND},
	0x2D: {"AND", AMAbsolute, 4, true, opAND},
	0x3D: {"AND", AMAbsoluteX, 4, true, opAND},
	0x39: {"AND", AMAbsoluteY, 4, true, opAND},
	0x21: {"AND", AMIndexedIndirect, 6, true, opAND},
	0x31: {"AND", AMIndirectIndexed, 5, true, opAND},

	// ASL
	0x0A: {"ASL", AMAccumulator, 2, true, opASL},
	0x06: {"ASL", AMZeroPage, 5, true, opASL},
	0x16: {"ASL", AMZeroPageX, 6, true, opASL},
	0x0E: {"ASL", AMAbsolute, 6, true, opASL},
	0x1E: {"ASL", AMAbsoluteX, 7, true, opASL},

	// Branches
	0x90: {"BCC", AMImplied, 2, true, opBCC},
	0xB0: {"BCS", AMImplied, 2, true, opBCS},
	0xF0: {"BEQ", AMImplied, 2, true, opBEQ},
	0x30: {"BMI", AMImplied, 2, true, opBMI},
	0xD0: {"BNE", AMImplied, 2, true, opBNE},
	0x10: {"BPL", AMImplied, 2, true, opBPL},
	0x50: {"BVC", AMImplied, 2, true, opBVC},
	0x70: {"BVS", AMImplied, 2, true, opBVS},

	// BIT
	0x24: {"BIT", AMZeroPage, 3, true, opBIT},
	0x2C: {"BIT", AMAbsolute, 4, true, opBIT},

	// BRK
	0x00: {"BRK", AMImplied, 7, true, opBRK},

	// Flag ops
	0x18: {"CLC", AMImplied, 2, true, opCLC},
	0xD8: {"CLD", AMImplied, 2, true, opCLD},
	0x58: {"CLI", AMImplied, 2, true, opCLI},
	0xB8: {"CLV", AMImplied, 2, true, opCLV},
	0x38: {"SEC", AMImplied, 2, true, opSEC},
	0xF8: {"SED", AMImplied, 2, true, opSED},
	0x78: {"SEI", AMImplied, 2, true, opSEI},

	// CMP
	0xC9: {"CMP", AMImmediate, 2, true, opCMP},
	0xC5: {"CMP", AMZeroPage, 3, true, opCMP},
	0xD5: {"CMP", AMZeroPageX, 4, true, opCMP},
	0xCD: {"CMP", AMAbsolute, 4, true, opCMP},
	0xDD: {"CMP", AMAbsoluteX, 4, true, opCMP},
	0xD9: {"CMP", AMAbsoluteY, 4, true, opCMP},
	0xC1: {"CMP", AMIndexedIndirect, 6, true, opCMP},
	0xD1: {"CMP", AMIndirectIndexed, 5, true, opCMP},

	// CPX / CPY
	0xE0: {"CPX", AMImmediate, 2, true, opCPX},
	0xE4: {"CPX", AMZeroPage, 3, true, opCPX},
	0xEC: {"CPX", AMAbsolute, 4, true, opCPX},
	0xC0: {"CPY", AMImmediate, 2, true, opCPY},
	0xC4: {"CPY", AMZeroPage, 3, true, opCPY},
	0xCC: {"CPY", AMAbsolute, 4, true, opCPY},

	// DEC / INC
	0xC6: {"DEC", AMZeroPage, 5, true, opDEC},
	0xD6: {"DEC", AMZeroPageX, 6, true, opDEC},
	0xCE: {"DEC", AMAbsolute, 6, true, opDEC},
	0xDE: {"DEC", AMAbsoluteX, 7, true, opDEC},
	0xE6: {"INC", AMZeroPage, 5, true, opINC},
	0xF6: {"INC", AMZeroPageX, 6, true, opINC},
	0xEE: {"INC", AMAbsolute, 6, true, opINC},
	0xFE: {"INC", AMAbsoluteX, 7, true, opINC},

	// DEX / DEY / INX / INY
	0xCA: {"DEX", AMImplied, 2, true, opDEX},
	0x88: {"DEY", AMImplied, 2, true, opDEY},
	0xE8: {"INX", AMImplied, 2, true, opINX},
	0xC8: {"INY", AMImplied, 2, true, opINY},

	// EOR
	0x49: {"EOR", AMImmediate, 2, true, opEOR},
	0x45: {"EOR", AMZeroPage, 3, true, opEOR},
	0x55: {"EOR", AMZeroPageX, 4, true, opEOR},
	0x4D: {"EOR", AMAbsolute, 4, true, opEOR},
	0x5D: {"EOR", AMAbsoluteX, 4, true, opEOR},
	0x59: {"EOR", AMAbsoluteY, 4, true, opEOR},
	0x41: {"EOR", AMIndexedIndirect, 6, true, opEOR},
	0x51: {"EOR", AMIndirectIndexed, 5, true, opEOR},

	// JMP / JSR / RTS / RTI
	0x4C: {"JMP", AMAbsolute, 3, true, opJMP},
	0x6C: {"JMP", AMIndirect, 5, true, opJMP},
	0x20: {"JSR", AMAbsolute, 6, true, opJSR},
	0x60: {"RTS", AMImplied, 6, true, opRTS},
	0x40: {"RTI", AMImplied, 6, true, opRTI},

	// LDA / LDX / LDY
	0xA9: {"LDA", AMImmediate, 2, true, opLDA},
	0xA5: {"LDA", AMZeroPage, 3, true, opLDA},
	0xB5: {"LDA", AMZeroPageX, 4, true, opLDA},
	0xAD: {"LDA", AMAbsolute, 4, true, opLDA},
	0xBD: {"LDA", AMAbsoluteX, 4, true, opLDA},
	0xB9: {"LDA", AMAbsoluteY, 4, true, opLDA},
	0xA1: {"LDA", AMIndexedIndirect, 6, true, opLDA},
	0xB1: {"LDA", AMIndirectIndexed, 5, true, opLDA},

	0xA2: {"LDX", AMImmediate, 2, true, opLDX},
	0xA6: {"LDX", AMZeroPage, 3, true, opLDX},
	0xB6: {"LDX", AMZeroPageY, 4, true, opLDX},
	0xAE: {"LDX", AMAbsolute, 4, true, opLDX},
	0xBE: {"LDX", AMAbsoluteY, 4, true, opLDX},

	0xA0: {"LDY", AMImmediate, 2, true, opLDY},
	0xA4: {"LDY", AMZeroPage, 3, true, opLDY},
	0xB4: {"LDY", AMZeroPageX, 4, true, opLDY},
	0xAC: {"LDY", AMAbsolute, 4, true, opLDY},
	0xBC: {"LDY", AMAbsoluteX, 4, true, opLDY},

	// LSR
	0x4A: {"LSR", AMAccumulator, 2, true, opLSR},
	0x46: {"LSR", AMZeroPage, 5, true, opLSR},
	0x56: {"LSR", AMZeroPageX, 6, true, opLSR},
	0x4E: {"LSR", AMAbsolute, 6, true, opLSR},
	0x5E: {"LSR", AMAbsoluteX, 7, true, opLSR},

	// NOP
	0xEA: {"NOP", AMImplied, 2, true, opNOP},

	// ORA
	0x09: {"ORA", AMImmediate, 2, true, opORA},
	0x05: {"ORA", AMZeroPage, 3, true, opORA},
	0x15: {"ORA", AMZeroPageX, 4, true, opORA},
	0x0D: {"ORA", AMAbsolute, 4, true, opORA},
	0x1D: {"ORA", AMAbsoluteX, 4, true, opORA},
	0x19: {"ORA", AMAbsoluteY, 4, true, opORA},
	0x01: {"ORA", AMIndexedIndirect, 6, true, opORA},
	0x11: {"ORA", AMIndirectIndexed, 5, true, opORA},

	// Stack ops
	0x48: {"PHA", AMImplied, 3, true, opPHA},
	0x08: {"PHP", AMImplied, 3, true, opPHP},
	0x68: {"PLA", AMImplied, 4, true, opPLA},
	0x28: {"PLP", AMImplied, 4, true, opPLP},

	// ROL / ROR
	0x2A: {"ROL", AMAccumulator, 2, true, opROL},
	0x26: {"ROL", AMZeroPage, 5, true, opROL},
	0x36: {"ROL", AMZeroPageX, 6, true, opROL},
	0x2E: {"ROL", AMAbsolute, 6, true, opROL},
	0x3E: {"ROL", AMAbsoluteX, 7, true, opROL},

	0x6A: {"ROR", AMAccumulator, 2, true, opROR},
	0x66: {"ROR", AMZeroPage, 5, true, opROR},
	0x76: {"ROR", AMZeroPageX, 6, true, opROR},
	0x6E: {"ROR", AMAbsolute, 6, true, opROR},
	0x7E: {"ROR", AMAbsoluteX, 7, true, opROR},

	// SBC
	0xE9: {"SBC", AMImmediate, 2, true, opSBC},
	0xE5: {"SBC", AMZeroPage, 3, true, opSBC},
	0xF5: {"SBC", AMZeroPageX, 4, true, opSBC},
	0xED: {"SBC", AMAbsolute, 4, true, opSBC},
	0xFD: {"SBC", AMAbsoluteX, 4, true, opSBC},
	0xF9: {"SBC", AMAbsoluteY, 4, true, opSBC},
	0xE1: {"SBC", AMIndexedIndirect, 6, true, opSBC},
	0xF1: {"SBC", AMIndirectIndexed, 5, true, opSBC},

	// STA / STX / STY
	0x85: {"STA", AMZeroPage, 3, true, opSTA},
	0x95: {"STA", AMZeroPageX, 4, true, opSTA},
	0x8D: {"STA", AMAbsolute, 4, true, opSTA},
	0x9D: {"STA", AMAbsoluteX, 5, true, opSTA},
	0x99: {"STA", AMAbsoluteY, 5, true, opSTA},
	0x81: {"STA", AMIndexedIndirect, 6, true, opSTA},
	0x91: {"STA", AMIndirectIndexed, 6, true, opSTA},

	0x86: {"STX", AMZeroPage, 3, true, opSTX},
	0x96: {"STX", AMZeroPageY, 4, true, opSTX},
	0x8E: {"STX", AMAbsolute, 4, true, opSTX},

	0x84: {"STY", AMZeroPage, 3, true, opSTY},
	0x94: {"STY", AMZeroPageX, 4, true, opSTY},
	0x8C: {"STY", AMAbsolute, 4, true, opSTY},

	// Register transfers
	0xAA: {"TAX", AMImplied, 2, true, opTAX},
	0xA8: {"TAY", AMImplied, 2, true, opTAY},
	0xBA: {"TSX", AMImplied, 2, true, opTSX},
	0x8A: {"TXA", AMImplied, 2, true, opTXA},
	0x9A: {"TXS", AMImplied, 2, true, opTXS},
	0x98: {"TYA", AMImplied, 2, true, opTYA},
}
