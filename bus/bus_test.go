package bus

import (
	"gontendo/cartridge"
	"gontendo/joypad"
	"gontendo/mappers"
	"testing"
)

func newTestCart(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	cart := &cartridge.Cartridge{
		PRG:       make([]byte, 0x4000),
		CHR:       make([]byte, 0x2000),
		Mirroring: cartridge.Horizontal,
		Mapper:    0,
	}
	return cart
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	cart := newTestCart(t)
	m, err := mappers.Get(cart)
	if err != nil {
		t.Fatalf("mappers.Get: %v", err)
	}
	return New(cart, m, nil)
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0000, 0x42)
	if got := b.Read(0x0800); got != 0x42 {
		t.Fatalf("read $0800 = %#x, want 0x42 (RAM mirror)", got)
	}
	if got := b.Read(0x1800); got != 0x42 {
		t.Fatalf("read $1800 = %#x, want 0x42 (RAM mirror)", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x2003, 0x10)  // OAMADDR = 0x10, via base address
	b.Write(0x200C, 0xAB)  // OAMDATA via the $2000-$3FFF mirror ($200C & 7 == 4)
	b.Write(0x2003, 0x10)  // reset OAMADDR back to 0x10
	if got := b.Read(0x2004); got != 0xAB {
		t.Fatalf("OAMDATA read = %#x, want 0xAB written through the mirrored address", got)
	}
}

func TestJoypadStrobeRoundTrip(t *testing.T) {
	b := newTestBus(t)
	b.Pad1().SetPressed(joypad.A, true)
	b.Write(0x4016, 1)
	b.Write(0x4016, 0)
	if got := b.Read(0x4016); got != 1 {
		t.Fatalf("first joypad read = %d, want 1 (A pressed)", got)
	}
}

func TestOAMDMACopiesRAMIntoOAM(t *testing.T) {
	b := newTestBus(t)
	b.ram[0] = 0xAA
	before := b.Cycles()
	b.Write(0x4014, 0x00) // DMA from page 0 (RAM)
	b.Write(0x2003, 0x00) // reset OAMADDR to re-read index 0
	if got := b.Read(0x2004); got != 0xAA {
		t.Fatalf("oam[0] after DMA = %#x, want 0xAA", got)
	}
	if got := b.Cycles() - before; got < 513 {
		t.Fatalf("OAM-DMA charged %d cycles, want >=513", got)
	}
}

func TestTickCouplesCPUAndPPUClocks(t *testing.T) {
	b := newTestBus(t)
	b.Tick(1)
	// One CPU cycle should step the PPU exactly three dots; verified
	// indirectly by confirming no panic and parity toggled.
	if !b.oddCycle {
		t.Fatalf("expected odd-cycle parity to flip after one Tick(1)")
	}
}
