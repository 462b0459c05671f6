package cpu

// addressingMode tags how an instruction's operand bytes are turned
// into an effective address. https://www.nesdev.org/obelisk-6502-guide/addressing.html
type addressingMode uint8

const (
	Implicit addressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

var modeNames = map[addressingMode]string{
	Implicit: "Implicit", Accumulator: "Accumulator", Immediate: "Immediate",
	ZeroPage: "ZeroPage", ZeroPageX: "ZeroPageX", ZeroPageY: "ZeroPageY",
	Relative: "Relative", Absolute: "Absolute", AbsoluteX: "AbsoluteX",
	AbsoluteY: "AbsoluteY", Indirect: "Indirect", IndirectX: "IndirectX",
	IndirectY: "IndirectY",
}

func (m addressingMode) String() string {
	return modeNames[m]
}

// execFunc is an instruction body. It receives the already-resolved
// operand and returns any cycles beyond the opcode's base cost that
// it incurred itself (branches only; indexed-read page-cross cycles
// are charged generically by the dispatcher from opcode.pageCross).
type execFunc func(c *CPU, op operand) uint8

// opcode is the immutable, table-driven description of one of the 256
// possible opcode bytes: its mnemonic, addressing mode, encoded
// length (including the opcode byte itself), base cycle cost, whether
// an indexed read should add a page-cross cycle, and whether it is a
// documented-unofficial encoding.
type opcode struct {
	mnemonic  string
	mode      addressingMode
	length    uint8
	cycles    uint8
	pageCross bool
	illegal   bool
	exec      execFunc
}

// opcodes is the process-wide, read-only, 256-entry opcode table.
// It is built once at init time from the composite literal below and
// never mutated; CPU instances only read from it.
var opcodes = map[uint8]opcode{
	0x00: {"BRK", Implicit, 1, 7, false, false, (*CPU).brk},
	0x01: {"ORA", IndirectX, 2, 6, false, false, (*CPU).ora},
	0x02: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x03: {"SLO", IndirectX, 2, 8, false, true, (*CPU).slo},
	0x04: {"NOP", ZeroPage, 2, 3, false, true, (*CPU).nop},
	0x05: {"ORA", ZeroPage, 2, 3, false, false, (*CPU).ora},
	0x06: {"ASL", ZeroPage, 2, 5, false, false, (*CPU).asl},
	0x07: {"SLO", ZeroPage, 2, 5, false, true, (*CPU).slo},
	0x08: {"PHP", Implicit, 1, 3, false, false, (*CPU).php},
	0x09: {"ORA", Immediate, 2, 2, false, false, (*CPU).ora},
	0x0A: {"ASL", Accumulator, 1, 2, false, false, (*CPU).asl},
	0x0B: {"ANC", Immediate, 2, 2, false, true, (*CPU).anc},
	0x0C: {"NOP", Absolute, 3, 4, false, true, (*CPU).nop},
	0x0D: {"ORA", Absolute, 3, 4, false, false, (*CPU).ora},
	0x0E: {"ASL", Absolute, 3, 6, false, false, (*CPU).asl},
	0x0F: {"SLO", Absolute, 3, 6, false, true, (*CPU).slo},
	0x10: {"BPL", Relative, 2, 2, false, false, (*CPU).bpl},
	0x11: {"ORA", IndirectY, 2, 5, true, false, (*CPU).ora},
	0x12: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x13: {"SLO", IndirectY, 2, 8, false, true, (*CPU).slo},
	0x14: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0x15: {"ORA", ZeroPageX, 2, 4, false, false, (*CPU).ora},
	0x16: {"ASL", ZeroPageX, 2, 6, false, false, (*CPU).asl},
	0x17: {"SLO", ZeroPageX, 2, 6, false, true, (*CPU).slo},
	0x18: {"CLC", Implicit, 1, 2, false, false, (*CPU).clc},
	0x19: {"ORA", AbsoluteY, 3, 4, true, false, (*CPU).ora},
	0x1A: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0x1B: {"SLO", AbsoluteY, 3, 7, false, true, (*CPU).slo},
	0x1C: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0x1D: {"ORA", AbsoluteX, 3, 4, true, false, (*CPU).ora},
	0x1E: {"ASL", AbsoluteX, 3, 7, false, false, (*CPU).asl},
	0x1F: {"SLO", AbsoluteX, 3, 7, false, true, (*CPU).slo},
	0x20: {"JSR", Absolute, 3, 6, false, false, (*CPU).jsr},
	0x21: {"AND", IndirectX, 2, 6, false, false, (*CPU).and_},
	0x22: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x23: {"RLA", IndirectX, 2, 8, false, true, (*CPU).rla},
	0x24: {"BIT", ZeroPage, 2, 3, false, false, (*CPU).bit},
	0x25: {"AND", ZeroPage, 2, 3, false, false, (*CPU).and_},
	0x26: {"ROL", ZeroPage, 2, 5, false, false, (*CPU).rol},
	0x27: {"RLA", ZeroPage, 2, 5, false, true, (*CPU).rla},
	0x28: {"PLP", Implicit, 1, 4, false, false, (*CPU).plp},
	0x29: {"AND", Immediate, 2, 2, false, false, (*CPU).and_},
	0x2A: {"ROL", Accumulator, 1, 2, false, false, (*CPU).rol},
	0x2B: {"ANC", Immediate, 2, 2, false, true, (*CPU).anc},
	0x2C: {"BIT", Absolute, 3, 4, false, false, (*CPU).bit},
	0x2D: {"AND", Absolute, 3, 4, false, false, (*CPU).and_},
	0x2E: {"ROL", Absolute, 3, 6, false, false, (*CPU).rol},
	0x2F: {"RLA", Absolute, 3, 6, false, true, (*CPU).rla},
	0x30: {"BMI", Relative, 2, 2, false, false, (*CPU).bmi},
	0x31: {"AND", IndirectY, 2, 5, true, false, (*CPU).and_},
	0x32: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x33: {"RLA", IndirectY, 2, 8, false, true, (*CPU).rla},
	0x34: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0x35: {"AND", ZeroPageX, 2, 4, false, false, (*CPU).and_},
	0x36: {"ROL", ZeroPageX, 2, 6, false, false, (*CPU).rol},
	0x37: {"RLA", ZeroPageX, 2, 6, false, true, (*CPU).rla},
	0x38: {"SEC", Implicit, 1, 2, false, false, (*CPU).sec},
	0x39: {"AND", AbsoluteY, 3, 4, true, false, (*CPU).and_},
	0x3A: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0x3B: {"RLA", AbsoluteY, 3, 7, false, true, (*CPU).rla},
	0x3C: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0x3D: {"AND", AbsoluteX, 3, 4, true, false, (*CPU).and_},
	0x3E: {"ROL", AbsoluteX, 3, 7, false, false, (*CPU).rol},
	0x3F: {"RLA", AbsoluteX, 3, 7, false, true, (*CPU).rla},
	0x40: {"RTI", Implicit, 1, 6, false, false, (*CPU).rti},
	0x41: {"EOR", IndirectX, 2, 6, false, false, (*CPU).eor},
	0x42: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x43: {"SRE", IndirectX, 2, 8, false, true, (*CPU).sre},
	0x44: {"NOP", ZeroPage, 2, 3, false, true, (*CPU).nop},
	0x45: {"EOR", ZeroPage, 2, 3, false, false, (*CPU).eor},
	0x46: {"LSR", ZeroPage, 2, 5, false, false, (*CPU).lsr},
	0x47: {"SRE", ZeroPage, 2, 5, false, true, (*CPU).sre},
	0x48: {"PHA", Implicit, 1, 3, false, false, (*CPU).pha},
	0x49: {"EOR", Immediate, 2, 2, false, false, (*CPU).eor},
	0x4A: {"LSR", Accumulator, 1, 2, false, false, (*CPU).lsr},
	0x4B: {"ALR", Immediate, 2, 2, false, true, (*CPU).alr},
	0x4C: {"JMP", Absolute, 3, 3, false, false, (*CPU).jmp},
	0x4D: {"EOR", Absolute, 3, 4, false, false, (*CPU).eor},
	0x4E: {"LSR", Absolute, 3, 6, false, false, (*CPU).lsr},
	0x4F: {"SRE", Absolute, 3, 6, false, true, (*CPU).sre},
	0x50: {"BVC", Relative, 2, 2, false, false, (*CPU).bvc},
	0x51: {"EOR", IndirectY, 2, 5, true, false, (*CPU).eor},
	0x52: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x53: {"SRE", IndirectY, 2, 8, false, true, (*CPU).sre},
	0x54: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0x55: {"EOR", ZeroPageX, 2, 4, false, false, (*CPU).eor},
	0x56: {"LSR", ZeroPageX, 2, 6, false, false, (*CPU).lsr},
	0x57: {"SRE", ZeroPageX, 2, 6, false, true, (*CPU).sre},
	0x58: {"CLI", Implicit, 1, 2, false, false, (*CPU).cli},
	0x59: {"EOR", AbsoluteY, 3, 4, true, false, (*CPU).eor},
	0x5A: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0x5B: {"SRE", AbsoluteY, 3, 7, false, true, (*CPU).sre},
	0x5C: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0x5D: {"EOR", AbsoluteX, 3, 4, true, false, (*CPU).eor},
	0x5E: {"LSR", AbsoluteX, 3, 7, false, false, (*CPU).lsr},
	0x5F: {"SRE", AbsoluteX, 3, 7, false, true, (*CPU).sre},
	0x60: {"RTS", Implicit, 1, 6, false, false, (*CPU).rts},
	0x61: {"ADC", IndirectX, 2, 6, false, false, (*CPU).adc},
	0x62: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x63: {"RRA", IndirectX, 2, 8, false, true, (*CPU).rra},
	0x64: {"NOP", ZeroPage, 2, 3, false, true, (*CPU).nop},
	0x65: {"ADC", ZeroPage, 2, 3, false, false, (*CPU).adc},
	0x66: {"ROR", ZeroPage, 2, 5, false, false, (*CPU).ror},
	0x67: {"RRA", ZeroPage, 2, 5, false, true, (*CPU).rra},
	0x68: {"PLA", Implicit, 1, 4, false, false, (*CPU).pla},
	0x69: {"ADC", Immediate, 2, 2, false, false, (*CPU).adc},
	0x6A: {"ROR", Accumulator, 1, 2, false, false, (*CPU).ror},
	0x6B: {"ARR", Immediate, 2, 2, false, true, (*CPU).arr},
	0x6C: {"JMP", Indirect, 3, 5, false, false, (*CPU).jmp},
	0x6D: {"ADC", Absolute, 3, 4, false, false, (*CPU).adc},
	0x6E: {"ROR", Absolute, 3, 6, false, false, (*CPU).ror},
	0x6F: {"RRA", Absolute, 3, 6, false, true, (*CPU).rra},
	0x70: {"BVS", Relative, 2, 2, false, false, (*CPU).bvs},
	0x71: {"ADC", IndirectY, 2, 5, true, false, (*CPU).adc},
	0x72: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x73: {"RRA", IndirectY, 2, 8, false, true, (*CPU).rra},
	0x74: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0x75: {"ADC", ZeroPageX, 2, 4, false, false, (*CPU).adc},
	0x76: {"ROR", ZeroPageX, 2, 6, false, false, (*CPU).ror},
	0x77: {"RRA", ZeroPageX, 2, 6, false, true, (*CPU).rra},
	0x78: {"SEI", Implicit, 1, 2, false, false, (*CPU).sei},
	0x79: {"ADC", AbsoluteY, 3, 4, true, false, (*CPU).adc},
	0x7A: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0x7B: {"RRA", AbsoluteY, 3, 7, false, true, (*CPU).rra},
	0x7C: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0x7D: {"ADC", AbsoluteX, 3, 4, true, false, (*CPU).adc},
	0x7E: {"ROR", AbsoluteX, 3, 7, false, false, (*CPU).ror},
	0x7F: {"RRA", AbsoluteX, 3, 7, false, true, (*CPU).rra},
	0x80: {"NOP", Immediate, 2, 2, false, true, (*CPU).nop},
	0x81: {"STA", IndirectX, 2, 6, false, false, (*CPU).sta},
	0x82: {"NOP", Immediate, 2, 2, false, true, (*CPU).nop},
	0x83: {"SAX", IndirectX, 2, 6, false, true, (*CPU).sax},
	0x84: {"STY", ZeroPage, 2, 3, false, false, (*CPU).sty},
	0x85: {"STA", ZeroPage, 2, 3, false, false, (*CPU).sta},
	0x86: {"STX", ZeroPage, 2, 3, false, false, (*CPU).stx},
	0x87: {"SAX", ZeroPage, 2, 3, false, true, (*CPU).sax},
	0x88: {"DEY", Implicit, 1, 2, false, false, (*CPU).dey},
	0x89: {"NOP", Immediate, 2, 2, false, true, (*CPU).nop},
	0x8A: {"TXA", Implicit, 1, 2, false, false, (*CPU).txa},
	0x8B: {"ANE", Immediate, 2, 2, false, true, (*CPU).ane},
	0x8C: {"STY", Absolute, 3, 4, false, false, (*CPU).sty},
	0x8D: {"STA", Absolute, 3, 4, false, false, (*CPU).sta},
	0x8E: {"STX", Absolute, 3, 4, false, false, (*CPU).stx},
	0x8F: {"SAX", Absolute, 3, 4, false, true, (*CPU).sax},
	0x90: {"BCC", Relative, 2, 2, false, false, (*CPU).bcc},
	0x91: {"STA", IndirectY, 2, 6, false, false, (*CPU).sta},
	0x92: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0x93: {"SHA", IndirectY, 2, 6, false, true, (*CPU).sha},
	0x94: {"STY", ZeroPageX, 2, 4, false, false, (*CPU).sty},
	0x95: {"STA", ZeroPageX, 2, 4, false, false, (*CPU).sta},
	0x96: {"STX", ZeroPageY, 2, 4, false, false, (*CPU).stx},
	0x97: {"SAX", ZeroPageY, 2, 4, false, true, (*CPU).sax},
	0x98: {"TYA", Implicit, 1, 2, false, false, (*CPU).tya},
	0x99: {"STA", AbsoluteY, 3, 5, false, false, (*CPU).sta},
	0x9A: {"TXS", Implicit, 1, 2, false, false, (*CPU).txs},
	0x9B: {"TAS", AbsoluteY, 3, 5, false, true, (*CPU).tas},
	0x9C: {"SHY", AbsoluteX, 3, 5, false, true, (*CPU).shy},
	0x9D: {"STA", AbsoluteX, 3, 5, false, false, (*CPU).sta},
	0x9E: {"SHX", AbsoluteY, 3, 5, false, true, (*CPU).shx},
	0x9F: {"SHA", AbsoluteY, 3, 5, false, true, (*CPU).sha},
	0xA0: {"LDY", Immediate, 2, 2, false, false, (*CPU).ldy},
	0xA1: {"LDA", IndirectX, 2, 6, false, false, (*CPU).lda},
	0xA2: {"LDX", Immediate, 2, 2, false, false, (*CPU).ldx},
	0xA3: {"LAX", IndirectX, 2, 6, false, true, (*CPU).lax},
	0xA4: {"LDY", ZeroPage, 2, 3, false, false, (*CPU).ldy},
	0xA5: {"LDA", ZeroPage, 2, 3, false, false, (*CPU).lda},
	0xA6: {"LDX", ZeroPage, 2, 3, false, false, (*CPU).ldx},
	0xA7: {"LAX", ZeroPage, 2, 3, false, true, (*CPU).lax},
	0xA8: {"TAY", Implicit, 1, 2, false, false, (*CPU).tay},
	0xA9: {"LDA", Immediate, 2, 2, false, false, (*CPU).lda},
	0xAA: {"TAX", Implicit, 1, 2, false, false, (*CPU).tax},
	0xAB: {"LXA", Immediate, 2, 2, false, true, (*CPU).lxa},
	0xAC: {"LDY", Absolute, 3, 4, false, false, (*CPU).ldy},
	0xAD: {"LDA", Absolute, 3, 4, false, false, (*CPU).lda},
	0xAE: {"LDX", Absolute, 3, 4, false, false, (*CPU).ldx},
	0xAF: {"LAX", Absolute, 3, 4, false, true, (*CPU).lax},
	0xB0: {"BCS", Relative, 2, 2, false, false, (*CPU).bcs},
	0xB1: {"LDA", IndirectY, 2, 5, true, false, (*CPU).lda},
	0xB2: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0xB3: {"LAX", IndirectY, 2, 5, true, true, (*CPU).lax},
	0xB4: {"LDY", ZeroPageX, 2, 4, false, false, (*CPU).ldy},
	0xB5: {"LDA", ZeroPageX, 2, 4, false, false, (*CPU).lda},
	0xB6: {"LDX", ZeroPageY, 2, 4, false, false, (*CPU).ldx},
	0xB7: {"LAX", ZeroPageY, 2, 4, false, true, (*CPU).lax},
	0xB8: {"CLV", Implicit, 1, 2, false, false, (*CPU).clv},
	0xB9: {"LDA", AbsoluteY, 3, 4, true, false, (*CPU).lda},
	0xBA: {"TSX", Implicit, 1, 2, false, false, (*CPU).tsx},
	0xBB: {"LAS", AbsoluteY, 3, 4, true, true, (*CPU).las},
	0xBC: {"LDY", AbsoluteX, 3, 4, true, false, (*CPU).ldy},
	0xBD: {"LDA", AbsoluteX, 3, 4, true, false, (*CPU).lda},
	0xBE: {"LDX", AbsoluteY, 3, 4, true, false, (*CPU).ldx},
	0xBF: {"LAX", AbsoluteY, 3, 4, true, true, (*CPU).lax},
	0xC0: {"CPY", Immediate, 2, 2, false, false, (*CPU).cpy},
	0xC1: {"CMP", IndirectX, 2, 6, false, false, (*CPU).cmp},
	0xC2: {"NOP", Immediate, 2, 2, false, true, (*CPU).nop},
	0xC3: {"DCP", IndirectX, 2, 8, false, true, (*CPU).dcp},
	0xC4: {"CPY", ZeroPage, 2, 3, false, false, (*CPU).cpy},
	0xC5: {"CMP", ZeroPage, 2, 3, false, false, (*CPU).cmp},
	0xC6: {"DEC", ZeroPage, 2, 5, false, false, (*CPU).dec},
	0xC7: {"DCP", ZeroPage, 2, 5, false, true, (*CPU).dcp},
	0xC8: {"INY", Implicit, 1, 2, false, false, (*CPU).iny},
	0xC9: {"CMP", Immediate, 2, 2, false, false, (*CPU).cmp},
	0xCA: {"DEX", Implicit, 1, 2, false, false, (*CPU).dex},
	0xCB: {"AXS", Immediate, 2, 2, false, true, (*CPU).axs},
	0xCC: {"CPY", Absolute, 3, 4, false, false, (*CPU).cpy},
	0xCD: {"CMP", Absolute, 3, 4, false, false, (*CPU).cmp},
	0xCE: {"DEC", Absolute, 3, 6, false, false, (*CPU).dec},
	0xCF: {"DCP", Absolute, 3, 6, false, true, (*CPU).dcp},
	0xD0: {"BNE", Relative, 2, 2, false, false, (*CPU).bne},
	0xD1: {"CMP", IndirectY, 2, 5, true, false, (*CPU).cmp},
	0xD2: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0xD3: {"DCP", IndirectY, 2, 8, false, true, (*CPU).dcp},
	0xD4: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0xD5: {"CMP", ZeroPageX, 2, 4, false, false, (*CPU).cmp},
	0xD6: {"DEC", ZeroPageX, 2, 6, false, false, (*CPU).dec},
	0xD7: {"DCP", ZeroPageX, 2, 6, false, true, (*CPU).dcp},
	0xD8: {"CLD", Implicit, 1, 2, false, false, (*CPU).cld},
	0xD9: {"CMP", AbsoluteY, 3, 4, true, false, (*CPU).cmp},
	0xDA: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0xDB: {"DCP", AbsoluteY, 3, 7, false, true, (*CPU).dcp},
	0xDC: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0xDD: {"CMP", AbsoluteX, 3, 4, true, false, (*CPU).cmp},
	0xDE: {"DEC", AbsoluteX, 3, 7, false, false, (*CPU).dec},
	0xDF: {"DCP", AbsoluteX, 3, 7, false, true, (*CPU).dcp},
	0xE0: {"CPX", Immediate, 2, 2, false, false, (*CPU).cpx},
	0xE1: {"SBC", IndirectX, 2, 6, false, false, (*CPU).sbc},
	0xE2: {"NOP", Immediate, 2, 2, false, true, (*CPU).nop},
	0xE3: {"ISB", IndirectX, 2, 8, false, true, (*CPU).isb},
	0xE4: {"CPX", ZeroPage, 2, 3, false, false, (*CPU).cpx},
	0xE5: {"SBC", ZeroPage, 2, 3, false, false, (*CPU).sbc},
	0xE6: {"INC", ZeroPage, 2, 5, false, false, (*CPU).inc},
	0xE7: {"ISB", ZeroPage, 2, 5, false, true, (*CPU).isb},
	0xE8: {"INX", Implicit, 1, 2, false, false, (*CPU).inx},
	0xE9: {"SBC", Immediate, 2, 2, false, false, (*CPU).sbc},
	0xEA: {"NOP", Implicit, 1, 2, false, false, (*CPU).nop},
	0xEB: {"SBC", Immediate, 2, 2, false, true, (*CPU).sbc},
	0xEC: {"CPX", Absolute, 3, 4, false, false, (*CPU).cpx},
	0xED: {"SBC", Absolute, 3, 4, false, false, (*CPU).sbc},
	0xEE: {"INC", Absolute, 3, 6, false, false, (*CPU).inc},
	0xEF: {"ISB", Absolute, 3, 6, false, true, (*CPU).isb},
	0xF0: {"BEQ", Relative, 2, 2, false, false, (*CPU).beq},
	0xF1: {"SBC", IndirectY, 2, 5, true, false, (*CPU).sbc},
	0xF2: {"JAM", Implicit, 1, 2, false, true, (*CPU).nop},
	0xF3: {"ISB", IndirectY, 2, 8, false, true, (*CPU).isb},
	0xF4: {"NOP", ZeroPageX, 2, 4, false, true, (*CPU).nop},
	0xF5: {"SBC", ZeroPageX, 2, 4, false, false, (*CPU).sbc},
	0xF6: {"INC", ZeroPageX, 2, 6, false, false, (*CPU).inc},
	0xF7: {"ISB", ZeroPageX, 2, 6, false, true, (*CPU).isb},
	0xF8: {"SED", Implicit, 1, 2, false, false, (*CPU).sed},
	0xF9: {"SBC", AbsoluteY, 3, 4, true, false, (*CPU).sbc},
	0xFA: {"NOP", Implicit, 1, 2, false, true, (*CPU).nop},
	0xFB: {"ISB", AbsoluteY, 3, 7, false, true, (*CPU).isb},
	0xFC: {"NOP", AbsoluteX, 3, 4, true, true, (*CPU).nop},
	0xFD: {"SBC", AbsoluteX, 3, 4, true, false, (*CPU).sbc},
	0xFE: {"INC", AbsoluteX, 3, 7, false, false, (*CPU).inc},
	0xFF: {"ISB", AbsoluteX, 3, 7, false, true, (*CPU).isb},
}

// OpcodeInfo is the disassembly-relevant subset of an opcode table
// entry, exported so the trace package can render instructions
// without reaching into CPU internals.
type OpcodeInfo struct {
	Mnemonic string
	Mode     addressingMode
	Length   uint8
	Illegal  bool
}

// Lookup returns the decoded opcode metadata for opByte, and false if
// the byte has no table entry (never happens: all 256 values are
// populated).
func Lookup(opByte uint8) (OpcodeInfo, bool) {
	op, ok := opcodes[opByte]
	if !ok {
		return OpcodeInfo{}, false
	}
	return OpcodeInfo{Mnemonic: op.mnemonic, Mode: op.mode, Length: op.length, Illegal: op.illegal}, true
}

// ModeName exposes the addressing mode's display name for formatting
// without leaking the unexported addressingMode type outside
// equality/switch use inside this package's own String() method.
func (info OpcodeInfo) ModeName() string { return info.Mode.String() }
