package cpu

import "testing"

// fakeBus is a flat 64KiB RAM used to exercise the CPU in isolation;
// it asserts an NMI only when a test sets nmi, and Tick only adds the
// charged cycles to ticked.
type fakeBus struct {
	mem    [65536]byte
	nmi    bool
	ticked uint32
}

func (b *fakeBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, v uint8) { b.mem[addr] = v }
func (b *fakeBus) Tick(cycles uint16)         { b.ticked += uint32(cycles) }
func (b *fakeBus) PollNMI() bool {
	v := b.nmi
	b.nmi = false
	return v
}

func newTestCPU(program []byte, at uint16) (*CPU, *fakeBus) {
	bus := &fakeBus{}
	copy(bus.mem[at:], program)
	bus.mem[0xFFFC] = uint8(at)
	bus.mem[0xFFFD] = uint8(at >> 8)
	c := New(bus)
	c.Reset()
	return c, bus
}

func TestResetState(t *testing.T) {
	c, _ := newTestCPU([]byte{0xEA}, 0x8000)
	if c.a != 0 || c.x != 0 || c.y != 0 {
		t.Fatalf("registers not zeroed: A=%#x X=%#x Y=%#x", c.a, c.x, c.y)
	}
	if c.sp != 0xFD {
		t.Fatalf("sp = %#x, want 0xFD", c.sp)
	}
	if !c.flagSet(FlagInterrupt) || !c.flagSet(FlagUnused) {
		t.Fatalf("p = %#08b, want I and U set", c.p)
	}
	if c.pc != 0x8000 {
		t.Fatalf("pc = %#x, want 0x8000", c.pc)
	}
}

func TestLdaTaxInxChain(t *testing.T) {
	// LDA #$C0; TAX; INX; BRK
	c, _ := newTestCPU([]byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00}, 0x0600)
	c.Step() // LDA
	c.Step() // TAX
	c.Step() // INX
	if c.a != 0xC0 {
		t.Fatalf("a = %#x, want 0xC0", c.a)
	}
	if c.x != 0xC1 {
		t.Fatalf("x = %#x, want 0xC1", c.x)
	}
	if c.flagSet(FlagZero) {
		t.Fatalf("zero flag set, want clear")
	}
	if !c.flagSet(FlagNegative) {
		t.Fatalf("negative flag clear, want set")
	}
	if c.pc != 0x0604 {
		t.Fatalf("pc = %#x, want 0x0604", c.pc)
	}
}

func TestLdaImmediateZeroSetsZeroFlag(t *testing.T) {
	c, _ := newTestCPU([]byte{0xA9, 0x00}, 0x0600)
	c.Step()
	if !c.flagSet(FlagZero) {
		t.Fatalf("zero flag not set for LDA #$00")
	}
	if c.flagSet(FlagNegative) {
		t.Fatalf("negative flag set for LDA #$00")
	}
}

func TestAdcSetsOverflowClearsCarry(t *testing.T) {
	// LDA #$7F; ADC #$01 -> overflow (pos+pos=neg), no carry
	c, _ := newTestCPU([]byte{0xA9, 0x7F, 0x69, 0x01}, 0x0600)
	c.Step()
	c.Step()
	if c.a != 0x80 {
		t.Fatalf("a = %#x, want 0x80", c.a)
	}
	if !c.flagSet(FlagOverflow) {
		t.Fatalf("overflow flag not set")
	}
	if c.flagSet(FlagCarry) {
		t.Fatalf("carry flag set, want clear")
	}
}

func TestSbcBorrowClearsCarry(t *testing.T) {
	// SEC; LDA #$00; SBC #$01 -> 0xFF, carry clear (borrow occurred)
	c, _ := newTestCPU([]byte{0x38, 0xA9, 0x00, 0xE9, 0x01}, 0x0600)
	c.Step()
	c.Step()
	c.Step()
	if c.a != 0xFF {
		t.Fatalf("a = %#x, want 0xFF", c.a)
	}
	if c.flagSet(FlagCarry) {
		t.Fatalf("carry set, want clear (borrow)")
	}
}

func TestStackPushPopRoundTrip(t *testing.T) {
	c, bus := newTestCPU([]byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68}, 0x0600)
	c.Step() // LDA #$42
	c.Step() // PHA
	if bus.mem[0x0100+int(0xFD)] != 0x42 {
		t.Fatalf("stack byte = %#x, want 0x42", bus.mem[0x0100+int(0xFD)])
	}
	c.Step() // LDA #$00
	c.Step() // PLA
	if c.a != 0x42 {
		t.Fatalf("a after PLA = %#x, want 0x42", c.a)
	}
	if c.sp != 0xFD {
		t.Fatalf("sp = %#x, want 0xFD after balanced push/pop", c.sp)
	}
}

func TestJsrRtsRoundTrip(t *testing.T) {
	// JSR $0610; (at 0610: INX; RTS); INX
	prog := make([]byte, 0x20)
	prog[0] = 0x20
	prog[1] = 0x10
	prog[2] = 0x06
	prog[3] = 0xE8 // INX after return
	c, bus := newTestCPU(prog, 0x0600)
	bus.mem[0x0610] = 0xE8 // INX
	bus.mem[0x0611] = 0x60 // RTS

	c.Step() // JSR
	if c.pc != 0x0610 {
		t.Fatalf("pc after JSR = %#x, want 0x0610", c.pc)
	}
	c.Step() // INX in subroutine
	c.Step() // RTS
	if c.pc != 0x0603 {
		t.Fatalf("pc after RTS = %#x, want 0x0603", c.pc)
	}
	c.Step() // INX after return
	if c.x != 2 {
		t.Fatalf("x = %d, want 2", c.x)
	}
}

func TestBranchTakenCrossesPageAddsCycle(t *testing.T) {
	// BNE with a -4 offset: next-instruction address 0x0602 is on page
	// 0x06, but the target 0x05FE is on page 0x05.
	bus := &fakeBus{}
	bus.mem[0x0600] = 0xD0 // BNE
	bus.mem[0x0601] = 0xFC // -4
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0x06
	c := New(bus)
	c.Reset()
	before := bus.ticked
	c.Step()
	if bus.ticked-before < 4 {
		t.Fatalf("ticked %d cycles, want >=4 for taken+page-cross branch", bus.ticked-before)
	}
	if c.pc != 0x05FE {
		t.Fatalf("pc = %#x, want 0x05FE", c.pc)
	}
}

func TestNmiServicedBeforeNextInstruction(t *testing.T) {
	c, bus := newTestCPU([]byte{0xEA}, 0x0600)
	bus.mem[0xFFFA] = 0x00
	bus.mem[0xFFFB] = 0x07
	bus.mem[0x0700] = 0xEA // NOP, so the post-NMI fetch is well-defined
	bus.nmi = true
	c.Step()
	if c.pc != 0x0701 {
		t.Fatalf("pc = %#x, want 0x0701 (NMI vector + one NOP)", c.pc)
	}
	if !c.flagSet(FlagInterrupt) {
		t.Fatalf("interrupt flag not set after NMI")
	}
}

func TestJmpIndirectPageWrapBug(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x0600] = 0x6C // JMP (Indirect)
	bus.mem[0x0601] = 0xFF
	bus.mem[0x0602] = 0x02 // pointer = $02FF
	bus.mem[0x02FF] = 0x34
	bus.mem[0x0200] = 0x12 // high byte wrongly read from $0200, not $0300
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0x06
	c := New(bus)
	c.Reset()
	c.Step()
	if c.pc != 0x1234 {
		t.Fatalf("pc = %#x, want 0x1234 (page-wrap bug)", c.pc)
	}
}

func TestLaxLoadsBothAAndX(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x0600] = 0xA7 // LAX ZeroPage
	bus.mem[0x0601] = 0x10
	bus.mem[0x0010] = 0x55
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0x06
	c := New(bus)
	c.Reset()
	c.Step()
	if c.a != 0x55 || c.x != 0x55 {
		t.Fatalf("a=%#x x=%#x, want both 0x55", c.a, c.x)
	}
}
