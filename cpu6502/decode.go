package cpu6502

type opEntry struct {
	name string
	mode int
	exec func(c *CPU, bus Bus, mode int)
}

var decodeTable [256]opEntry

func set(op uint8, name string, mode int, fn func(c *CPU, bus Bus, mode int)) {
	decodeTable[op] = opEntry{name: name, mode: mode, exec: fn}
}

// Shorthand exec bodies shared across many opcodes. selector picks which of
// the CPU's own registers an LD*/ST* opcode touches.
type regSelector int

const (
	regA regSelector = iota
	regX
	regY
)

func (c *CPU) reg(sel regSelector) *uint8 {
	switch sel {
	case regX:
		return &c.X
	case regY:
		return &c.Y
	default:
		return &c.A
	}
}

func ldReg(sel regSelector) func(*CPU, Bus, int) {
	return func(c *CPU, bus Bus, mode int) {
		addr := c.resolve(bus, mode)
		r := c.reg(sel)
		*r = c.read(bus, addr)
		c.setZN(*r)
	}
}

func stReg(sel regSelector) func(*CPU, Bus, int) {
	return func(c *CPU, bus Bus, mode int) {
		addr := c.resolve(bus, mode)
		c.write(bus, addr, *c.reg(sel))
	}
}

func jam(c *CPU, bus Bus, mode int) {
	// Unofficial halt opcode. Real hardware locks the bus; treat it as a
	// one-cycle no-op rather than stopping the emulated machine.
}

func init() {
	for i := range decodeTable {
		set(uint8(i), "JAM", ModeImplicit, jam)
	}

	set(0x00, "BRK", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.brk(bus) })
	set(0x01, "ORA", ModeIndirectX, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.A |= c.read(bus, a); c.setZN(c.A) })
	set(0x03, "SLO", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })
	set(0x04, "NOP", ModeZeroPage, nopRead)
	set(0x05, "ORA", ModeZeroPage, oraFn)
	set(0x06, "ASL", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.asl) })
	set(0x07, "SLO", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })
	set(0x08, "PHP", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.push(bus, c.P|FlagBreak|FlagUnused) })
	set(0x09, "ORA", ModeImmediate, oraFn)
	set(0x0A, "ASL", ModeAccumulator, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.asl) })
	set(0x0B, "ANC", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.anc(c.read(bus, a)) })
	set(0x0C, "NOP", ModeAbsolute, nopRead)
	set(0x0D, "ORA", ModeAbsolute, oraFn)
	set(0x0E, "ASL", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.asl) })
	set(0x0F, "SLO", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })

	set(0x10, "BPL", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, !c.getFlag(FlagNegative)) })
	set(0x11, "ORA", ModeIndirectY, oraFn)
	set(0x13, "SLO", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })
	set(0x14, "NOP", ModeZeroPageX, nopRead)
	set(0x15, "ORA", ModeZeroPageX, oraFn)
	set(0x16, "ASL", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.asl) })
	set(0x17, "SLO", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })
	set(0x18, "CLC", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagCarry, false) })
	set(0x19, "ORA", ModeAbsoluteY, oraFn)
	set(0x1A, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0x1B, "SLO", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })
	set(0x1C, "NOP", ModeAbsoluteX, nopRead)
	set(0x1D, "ORA", ModeAbsoluteX, oraFn)
	set(0x1E, "ASL", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.asl) })
	set(0x1F, "SLO", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.asl, func(v uint8) { c.A |= v; c.setZN(c.A) }) })

	set(0x20, "JSR", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.jsr(bus) })
	set(0x21, "AND", ModeIndirectX, andFn)
	set(0x23, "RLA", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })
	set(0x24, "BIT", ModeZeroPage, bitFn)
	set(0x25, "AND", ModeZeroPage, andFn)
	set(0x26, "ROL", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.rol) })
	set(0x27, "RLA", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })
	set(0x28, "PLP", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.P = (c.pull(bus) &^ FlagBreak) | FlagUnused })
	set(0x29, "AND", ModeImmediate, andFn)
	set(0x2A, "ROL", ModeAccumulator, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.rol) })
	set(0x2B, "ANC", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.anc(c.read(bus, a)) })
	set(0x2C, "BIT", ModeAbsolute, bitFn)
	set(0x2D, "AND", ModeAbsolute, andFn)
	set(0x2E, "ROL", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.rol) })
	set(0x2F, "RLA", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })

	set(0x30, "BMI", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, c.getFlag(FlagNegative)) })
	set(0x31, "AND", ModeIndirectY, andFn)
	set(0x33, "RLA", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })
	set(0x34, "NOP", ModeZeroPageX, nopRead)
	set(0x35, "AND", ModeZeroPageX, andFn)
	set(0x36, "ROL", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.rol) })
	set(0x37, "RLA", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })
	set(0x38, "SEC", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagCarry, true) })
	set(0x39, "AND", ModeAbsoluteY, andFn)
	set(0x3A, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0x3B, "RLA", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })
	set(0x3C, "NOP", ModeAbsoluteX, nopRead)
	set(0x3D, "AND", ModeAbsoluteX, andFn)
	set(0x3E, "ROL", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.rol) })
	set(0x3F, "RLA", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.rol, func(v uint8) { c.A &= v; c.setZN(c.A) }) })

	set(0x40, "RTI", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.rti(bus) })
	set(0x41, "EOR", ModeIndirectX, eorFn)
	set(0x43, "SRE", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })
	set(0x44, "NOP", ModeZeroPage, nopRead)
	set(0x45, "EOR", ModeZeroPage, eorFn)
	set(0x46, "LSR", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.lsr) })
	set(0x47, "SRE", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })
	set(0x48, "PHA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.push(bus, c.A) })
	set(0x49, "EOR", ModeImmediate, eorFn)
	set(0x4A, "LSR", ModeAccumulator, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.lsr) })
	set(0x4B, "ALR", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.alr(c.read(bus, a)) })
	set(0x4C, "JMP", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.PC = c.resolve(bus, mode) })
	set(0x4D, "EOR", ModeAbsolute, eorFn)
	set(0x4E, "LSR", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.lsr) })
	set(0x4F, "SRE", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })

	set(0x50, "BVC", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, !c.getFlag(FlagOverflow)) })
	set(0x51, "EOR", ModeIndirectY, eorFn)
	set(0x53, "SRE", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })
	set(0x54, "NOP", ModeZeroPageX, nopRead)
	set(0x55, "EOR", ModeZeroPageX, eorFn)
	set(0x56, "LSR", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.lsr) })
	set(0x57, "SRE", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })
	set(0x58, "CLI", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagInterrupt, false) })
	set(0x59, "EOR", ModeAbsoluteY, eorFn)
	set(0x5A, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0x5B, "SRE", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })
	set(0x5C, "NOP", ModeAbsoluteX, nopRead)
	set(0x5D, "EOR", ModeAbsoluteX, eorFn)
	set(0x5E, "LSR", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.lsr) })
	set(0x5F, "SRE", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.lsr, func(v uint8) { c.A ^= v; c.setZN(c.A) }) })

	set(0x60, "RTS", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.rts(bus) })
	set(0x61, "ADC", ModeIndirectX, adcFn)
	set(0x63, "RRA", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })
	set(0x64, "NOP", ModeZeroPage, nopRead)
	set(0x65, "ADC", ModeZeroPage, adcFn)
	set(0x66, "ROR", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.ror) })
	set(0x67, "RRA", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })
	set(0x68, "PLA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.A = c.pull(bus); c.setZN(c.A) })
	set(0x69, "ADC", ModeImmediate, adcFn)
	set(0x6A, "ROR", ModeAccumulator, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.ror) })
	set(0x6B, "ARR", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.arr(c.read(bus, a)) })
	set(0x6C, "JMP", ModeIndirect, func(c *CPU, bus Bus, mode int) { c.PC = c.resolve(bus, mode) })
	set(0x6D, "ADC", ModeAbsolute, adcFn)
	set(0x6E, "ROR", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.ror) })
	set(0x6F, "RRA", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })

	set(0x70, "BVS", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, c.getFlag(FlagOverflow)) })
	set(0x71, "ADC", ModeIndirectY, adcFn)
	set(0x73, "RRA", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })
	set(0x74, "NOP", ModeZeroPageX, nopRead)
	set(0x75, "ADC", ModeZeroPageX, adcFn)
	set(0x76, "ROR", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.ror) })
	set(0x77, "RRA", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })
	set(0x78, "SEI", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagInterrupt, true) })
	set(0x79, "ADC", ModeAbsoluteY, adcFn)
	set(0x7A, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0x7B, "RRA", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })
	set(0x7C, "NOP", ModeAbsoluteX, nopRead)
	set(0x7D, "ADC", ModeAbsoluteX, adcFn)
	set(0x7E, "ROR", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, c.ror) })
	set(0x7F, "RRA", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, c.ror, c.adc) })

	set(0x80, "NOP", ModeImmediate, nopRead)
	set(0x81, "STA", ModeIndirectX, stReg(regA))
	set(0x82, "NOP", ModeImmediate, nopRead)
	set(0x83, "SAX", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.sax(bus, c.resolve(bus, mode)) })
	set(0x84, "STY", ModeZeroPage, stReg(regY))
	set(0x85, "STA", ModeZeroPage, stReg(regA))
	set(0x86, "STX", ModeZeroPage, stReg(regX))
	set(0x87, "SAX", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.sax(bus, c.resolve(bus, mode)) })
	set(0x88, "DEY", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.Y--; c.setZN(c.Y) })
	set(0x89, "NOP", ModeImmediate, nopRead)
	set(0x8A, "TXA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.A = c.X; c.setZN(c.A) })
	set(0x8B, "XAA", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.A = c.X & c.read(bus, a); c.setZN(c.A) })
	set(0x8C, "STY", ModeAbsolute, stReg(regY))
	set(0x8D, "STA", ModeAbsolute, stReg(regA))
	set(0x8E, "STX", ModeAbsolute, stReg(regX))
	set(0x8F, "SAX", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.sax(bus, c.resolve(bus, mode)) })

	set(0x90, "BCC", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, !c.getFlag(FlagCarry)) })
	set(0x91, "STA", ModeIndirectYNoPB, stReg(regA))
	set(0x93, "AHX", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.write(bus, a, c.A&c.X&(uint8(a>>8)+1)) })
	set(0x94, "STY", ModeZeroPageX, stReg(regY))
	set(0x95, "STA", ModeZeroPageX, stReg(regA))
	set(0x96, "STX", ModeZeroPageY, stReg(regX))
	set(0x97, "SAX", ModeZeroPageY, func(c *CPU, bus Bus, mode int) { c.sax(bus, c.resolve(bus, mode)) })
	set(0x98, "TYA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.A = c.Y; c.setZN(c.A) })
	set(0x99, "STA", ModeAbsoluteYNoPB, stReg(regA))
	set(0x9A, "TXS", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.SP = c.X })
	set(0x9B, "TAS", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.SP = c.A & c.X; a := c.resolve(bus, mode); c.write(bus, a, c.SP&(uint8(a>>8)+1)) })
	set(0x9C, "SYA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.shAnd(bus, c.X, c.Y) })
	set(0x9D, "STA", ModeAbsoluteXNoPB, stReg(regA))
	set(0x9E, "SXA", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.shAnd(bus, c.Y, c.X) })
	set(0x9F, "AHX", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.write(bus, a, c.A&c.X&(uint8(a>>8)+1)) })

	set(0xA0, "LDY", ModeImmediate, ldReg(regY))
	set(0xA1, "LDA", ModeIndirectX, ldReg(regA))
	set(0xA2, "LDX", ModeImmediate, ldReg(regX))
	set(0xA3, "LAX", ModeIndirectX, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })
	set(0xA4, "LDY", ModeZeroPage, ldReg(regY))
	set(0xA5, "LDA", ModeZeroPage, ldReg(regA))
	set(0xA6, "LDX", ModeZeroPage, ldReg(regX))
	set(0xA7, "LAX", ModeZeroPage, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })
	set(0xA8, "TAY", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.Y = c.A; c.setZN(c.Y) })
	set(0xA9, "LDA", ModeImmediate, ldReg(regA))
	set(0xAA, "TAX", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.X = c.A; c.setZN(c.X) })
	set(0xAB, "ATX", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.atx(c.read(bus, a)) })
	set(0xAC, "LDY", ModeAbsolute, ldReg(regY))
	set(0xAD, "LDA", ModeAbsolute, ldReg(regA))
	set(0xAE, "LDX", ModeAbsolute, ldReg(regX))
	set(0xAF, "LAX", ModeAbsolute, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })

	set(0xB0, "BCS", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, c.getFlag(FlagCarry)) })
	set(0xB1, "LDA", ModeIndirectY, ldReg(regA))
	set(0xB3, "LAX", ModeIndirectY, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })
	set(0xB4, "LDY", ModeZeroPageX, ldReg(regY))
	set(0xB5, "LDA", ModeZeroPageX, ldReg(regA))
	set(0xB6, "LDX", ModeZeroPageY, ldReg(regX))
	set(0xB7, "LAX", ModeZeroPageY, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })
	set(0xB8, "CLV", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagOverflow, false) })
	set(0xB9, "LDA", ModeAbsoluteY, ldReg(regA))
	set(0xBA, "TSX", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.X = c.SP; c.setZN(c.X) })
	set(0xBB, "LAS", ModeAbsoluteY, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); v := c.read(bus, a) & c.SP; c.A, c.X, c.SP = v, v, v; c.setZN(v) })
	set(0xBC, "LDY", ModeAbsoluteX, ldReg(regY))
	set(0xBD, "LDA", ModeAbsoluteX, ldReg(regA))
	set(0xBE, "LDX", ModeAbsoluteY, ldReg(regX))
	set(0xBF, "LAX", ModeAbsoluteY, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.lax(c.read(bus, a)) })

	set(0xC0, "CPY", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.Y, c.read(bus, a)) })
	set(0xC1, "CMP", ModeIndirectX, cmpFn)
	set(0xC3, "DCP", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })
	set(0xC4, "CPY", ModeZeroPage, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.Y, c.read(bus, a)) })
	set(0xC5, "CMP", ModeZeroPage, cmpFn)
	set(0xC6, "DEC", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, dec1) })
	set(0xC7, "DCP", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })
	set(0xC8, "INY", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.Y++; c.setZN(c.Y) })
	set(0xC9, "CMP", ModeImmediate, cmpFn)
	set(0xCA, "DEX", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.X--; c.setZN(c.X) })
	set(0xCB, "AXS", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.axs(c.read(bus, a)) })
	set(0xCC, "CPY", ModeAbsolute, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.Y, c.read(bus, a)) })
	set(0xCD, "CMP", ModeAbsolute, cmpFn)
	set(0xCE, "DEC", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, dec1) })
	set(0xCF, "DCP", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })

	set(0xD0, "BNE", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, !c.getFlag(FlagZero)) })
	set(0xD1, "CMP", ModeIndirectY, cmpFn)
	set(0xD3, "DCP", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })
	set(0xD4, "NOP", ModeZeroPageX, nopRead)
	set(0xD5, "CMP", ModeZeroPageX, cmpFn)
	set(0xD6, "DEC", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, dec1) })
	set(0xD7, "DCP", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })
	set(0xD8, "CLD", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagDecimal, false) })
	set(0xD9, "CMP", ModeAbsoluteY, cmpFn)
	set(0xDA, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0xDB, "DCP", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })
	set(0xDC, "NOP", ModeAbsoluteX, nopRead)
	set(0xDD, "CMP", ModeAbsoluteX, cmpFn)
	set(0xDE, "DEC", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, dec1) })
	set(0xDF, "DCP", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, dec1, func(v uint8) { c.compare(c.A, v) }) })

	set(0xE0, "CPX", ModeImmediate, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.X, c.read(bus, a)) })
	set(0xE1, "SBC", ModeIndirectX, sbcFn)
	set(0xE3, "ISC", ModeIndirectX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
	set(0xE4, "CPX", ModeZeroPage, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.X, c.read(bus, a)) })
	set(0xE5, "SBC", ModeZeroPage, sbcFn)
	set(0xE6, "INC", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, inc1) })
	set(0xE7, "ISC", ModeZeroPage, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
	set(0xE8, "INX", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.X++; c.setZN(c.X) })
	set(0xE9, "SBC", ModeImmediate, sbcFn)
	set(0xEA, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0xEB, "SBC", ModeImmediate, sbcFn)
	set(0xEC, "CPX", ModeAbsolute, func(c *CPU, bus Bus, mode int) { a := c.resolve(bus, mode); c.compare(c.X, c.read(bus, a)) })
	set(0xED, "SBC", ModeAbsolute, sbcFn)
	set(0xEE, "INC", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, inc1) })
	set(0xEF, "ISC", ModeAbsolute, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })

	set(0xF0, "BEQ", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.branch(bus, c.getFlag(FlagZero)) })
	set(0xF1, "SBC", ModeIndirectY, sbcFn)
	set(0xF3, "ISC", ModeIndirectYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
	set(0xF4, "NOP", ModeZeroPageX, nopRead)
	set(0xF5, "SBC", ModeZeroPageX, sbcFn)
	set(0xF6, "INC", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, inc1) })
	set(0xF7, "ISC", ModeZeroPageX, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
	set(0xF8, "SED", ModeImplicit, func(c *CPU, bus Bus, mode int) { c.setFlag(FlagDecimal, true) })
	set(0xF9, "SBC", ModeAbsoluteY, sbcFn)
	set(0xFA, "NOP", ModeImplicit, func(c *CPU, bus Bus, mode int) {})
	set(0xFB, "ISC", ModeAbsoluteYNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
	set(0xFC, "NOP", ModeAbsoluteX, nopRead)
	set(0xFD, "SBC", ModeAbsoluteX, sbcFn)
	set(0xFE, "INC", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmw(bus, mode, inc1) })
	set(0xFF, "ISC", ModeAbsoluteXNoPB, func(c *CPU, bus Bus, mode int) { c.rmwCombined(bus, mode, inc1, c.sbc) })
}

func oraFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.A |= c.read(bus, a)
	c.setZN(c.A)
}

func andFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.A &= c.read(bus, a)
	c.setZN(c.A)
}

func eorFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.A ^= c.read(bus, a)
	c.setZN(c.A)
}

func adcFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.adc(c.read(bus, a))
}

func sbcFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.sbc(c.read(bus, a))
}

func cmpFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.compare(c.A, c.read(bus, a))
}

func bitFn(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	v := c.read(bus, a)
	c.setFlag(FlagZero, c.A&v == 0)
	c.setFlag(FlagOverflow, v&0x40 != 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func nopRead(c *CPU, bus Bus, mode int) {
	a := c.resolve(bus, mode)
	c.read(bus, a)
}

func dec1(v uint8) uint8 { return v - 1 }
func inc1(v uint8) uint8 { return v + 1 }
