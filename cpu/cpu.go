// Package cpu implements the NES's 6502-derived CPU: register file,
// flags, addressing modes, official and documented-unofficial opcode
// semantics, the stack, and NMI delivery.
package cpu

import "log"

// Flag bit positions within P, LSB to MSB: Carry, Zero,
// Interrupt-disable, Decimal, Break, Unused, Overflow, Negative.
// https://www.nesdev.org/wiki/Status_flags
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

const stackPage = 0x0100

// Interrupt vectors. Only NMI is serviced by this emulator; RESET is
// read once at startup and IRQ/BRK share a vector but BRK is handled
// as a full interrupt inline (see brk in exec_official.go).
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

// Bus is everything the CPU needs from its memory-mapped world: byte
// read/write, cycle accounting (which in turn drives the PPU), and
// NMI polling. The Bus implementation owns RAM, the PPU and the
// cartridge mapper; the CPU only ever sees this narrow interface.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	Tick(cycles uint16)
	PollNMI() bool
}

// operand is the resolved effective address (or accumulator
// reference) an instruction body operates on.
type operand struct {
	addr        uint16
	accumulator bool
	pageCrossed bool
}

// CPU is the 6502-derived register file and execution engine. It
// holds a Bus reference for its entire run; no other party may
// mutate Bus state concurrently with Step.
type CPU struct {
	a, x, y uint8
	sp      uint8
	pc      uint16
	p       uint8

	bus Bus

	// unknownLogged suppresses repeat log spam for the (never, given
	// the table is complete) unknown-opcode fallback path.
	unknownLogged bool
}

// New constructs a CPU wired to bus. Reset is not called
// automatically; callers decide when the reset vector is read (the
// Bus typically does this once, after the cartridge's PRG-ROM is
// mapped in).
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset puts the CPU in its documented post-reset state: A=X=Y=0,
// SP=0xFD, P=0b00100100 (I set, U set), PC read from the reset
// vector.
func (c *CPU) Reset() {
	c.a, c.x, c.y = 0, 0, 0
	c.sp = 0xFD
	c.p = FlagInterrupt | FlagUnused
	c.pc = c.read16(vectorReset)
}

// PC returns the program counter, mainly for trace/disassembly use.
func (c *CPU) PC() uint16 { return c.pc }

// SetPC forces the program counter; used by test harnesses that load
// a program at a fixed address instead of going through the reset
// vector.
func (c *CPU) SetPC(pc uint16) { c.pc = pc }

// A, X, Y, SP and P expose the register file read-only, for tests and
// the trace package.
func (c *CPU) A() uint8  { return c.a }
func (c *CPU) X() uint8  { return c.x }
func (c *CPU) Y() uint8  { return c.y }
func (c *CPU) SP() uint8 { return c.sp }
func (c *CPU) P() uint8  { return c.p }

func (c *CPU) flagSet(mask uint8) bool {
	return c.p&mask != 0
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.p |= mask
	} else {
		c.p &^= mask
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return hi<<8 | lo
}

// read16ZeroPage fetches a 16-bit pointer from zero page, wrapping
// the high-byte fetch within page zero rather than crossing into
// page one.
func (c *CPU) read16ZeroPage(ptr uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(ptr)))
	hi := uint16(c.bus.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}

func (c *CPU) push8(v uint8) {
	c.bus.Write(stackPage|uint16(c.sp), v)
	c.sp--
}

func (c *CPU) pop8() uint8 {
	c.sp++
	return c.bus.Read(stackPage | uint16(c.sp))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return hi<<8 | lo
}

// resolveOperand computes the effective address for mode, given that
// the CPU's pc already points at the first operand byte (ptr). It
// never mutates pc; the dispatcher advances pc uniformly after the
// instruction body runs.
func (c *CPU) resolveOperand(mode addressingMode, ptr uint16) operand {
	switch mode {
	case Immediate, Relative:
		return operand{addr: ptr}
	case ZeroPage:
		return operand{addr: uint16(c.bus.Read(ptr))}
	case ZeroPageX:
		return operand{addr: uint16(c.bus.Read(ptr) + c.x)}
	case ZeroPageY:
		return operand{addr: uint16(c.bus.Read(ptr) + c.y)}
	case Absolute:
		return operand{addr: c.read16(ptr)}
	case Indirect:
		vector := c.read16(ptr)
		lo := uint16(c.bus.Read(vector))
		var hiAddr uint16
		if vector&0x00FF == 0x00FF {
			hiAddr = vector & 0xFF00
		} else {
			hiAddr = vector + 1
		}
		hi := uint16(c.bus.Read(hiAddr))
		return operand{addr: hi<<8 | lo}
	case AbsoluteX:
		base := c.read16(ptr)
		addr := base + uint16(c.x)
		return operand{addr: addr, pageCrossed: base&0xFF00 != addr&0xFF00}
	case AbsoluteY:
		base := c.read16(ptr)
		addr := base + uint16(c.y)
		return operand{addr: addr, pageCrossed: base&0xFF00 != addr&0xFF00}
	case IndirectX:
		zp := c.bus.Read(ptr) + c.x
		return operand{addr: c.read16ZeroPage(zp)}
	case IndirectY:
		zp := c.bus.Read(ptr)
		deref := c.read16ZeroPage(zp)
		addr := deref + uint16(c.y)
		return operand{addr: addr, pageCrossed: deref&0xFF00 != addr&0xFF00}
	default:
		return operand{}
	}
}

// Step polls for a pending NMI, services it if present, then fetches,
// decodes and executes exactly one instruction, charging its cycles
// to the Bus. It returns the number of CPU cycles the instruction
// (including any NMI service that preceded it) consumed.
func (c *CPU) Step() uint8 {
	var nmiCycles uint8
	if c.bus.PollNMI() {
		nmiCycles = c.serviceNMI()
	}

	opByte := c.bus.Read(c.pc)
	c.pc++

	op, ok := opcodes[opByte]
	if !ok {
		if !c.unknownLogged {
			log.Printf("cpu: unknown opcode %#02x at %#04x, treating as 1-byte NOP", opByte, c.pc-1)
			c.unknownLogged = true
		}
		c.bus.Tick(2)
		return 2 + nmiCycles
	}

	ptr := c.pc
	var am operand
	switch op.mode {
	case Implicit:
		// no operand bytes
	case Accumulator:
		am = operand{accumulator: true}
	default:
		am = c.resolveOperand(op.mode, ptr)
	}

	preExecPC := c.pc
	extra := op.exec(c, am)
	if c.pc == preExecPC {
		c.pc += uint16(op.length) - 1
	}

	cycles := op.cycles
	if op.pageCross && am.pageCrossed {
		cycles++
	}
	cycles += extra

	c.bus.Tick(uint16(cycles))
	return cycles + nmiCycles
}

// serviceNMI performs the documented NMI sequence: push PC high then
// low, push P with B cleared and U set, set I in the live P, charge
// two cycles, then load PC from the NMI vector.
func (c *CPU) serviceNMI() uint8 {
	c.push16(c.pc)
	pushed := (c.p &^ FlagBreak) | FlagUnused
	c.push8(pushed)
	c.setFlag(FlagInterrupt, true)
	c.bus.Tick(2)
	c.pc = c.read16(vectorNMI)
	return 2
}
