package ppu

import (
	"gontendo/cartridge"
	"testing"
)

type fakeChrBus struct {
	chr [0x2000]uint8
}

func (b *fakeChrBus) ChrRead(addr uint16) uint8 { return b.chr[addr%0x2000] }
func (b *fakeChrBus) ChrWrite(addr uint16, val uint8) error {
	b.chr[addr%0x2000] = val
	return nil
}

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	p.status |= statusVBlank
	p.wLatch = true
	v := p.ReadRegister(RegSTATUS)
	if v&statusVBlank == 0 {
		t.Fatalf("expected vblank bit set in read value")
	}
	if p.status&statusVBlank != 0 {
		t.Fatalf("vblank bit not cleared after status read")
	}
	if p.wLatch {
		t.Fatalf("write latch not reset after status read")
	}
}

func TestScrollWriteTwoStepLatch(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	p.WriteRegister(RegSCROLL, 0x7D) // x=0x7D -> coarse=15, fine=5
	if p.x != 0x05 {
		t.Fatalf("fine x = %#x, want 0x05", p.x)
	}
	if !p.wLatch {
		t.Fatalf("latch should be high after first scroll write")
	}
	p.WriteRegister(RegSCROLL, 0x42)
	if p.wLatch {
		t.Fatalf("latch should be low after second scroll write")
	}
}

func TestAddrWriteAndDataReadBuffering(t *testing.T) {
	bus := &fakeChrBus{}
	bus.chr[0x0010] = 0xAB
	p := New(bus, cartridge.Horizontal)
	p.WriteRegister(RegADDR, 0x00)
	p.WriteRegister(RegADDR, 0x10)
	first := p.ReadRegister(RegDATA)
	if first != 0 {
		t.Fatalf("first buffered read = %#x, want 0 (stale buffer)", first)
	}
	second := p.ReadRegister(RegDATA)
	if second != 0xAB {
		t.Fatalf("second read = %#x, want 0xAB", second)
	}
}

func TestPaletteMirrorAlias(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	p.writePalette(0x3F00, 0x20)
	if got := p.readPalette(0x3F10); got != 0x20 {
		t.Fatalf("palette alias $3F10 = %#x, want 0x20", got)
	}
}

func TestNametableMirrorHorizontal(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	a := p.mirrorNametable(0x2000)
	b := p.mirrorNametable(0x2400)
	if a != b {
		t.Fatalf("horizontal mirroring: $2000 and $2400 should alias, got %#x/%#x", a, b)
	}
	c := p.mirrorNametable(0x2800)
	if a == c {
		t.Fatalf("horizontal mirroring: $2000 and $2800 should differ")
	}
}

func TestNametableMirrorVertical(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Vertical)
	a := p.mirrorNametable(0x2000)
	c := p.mirrorNametable(0x2800)
	if a != c {
		t.Fatalf("vertical mirroring: $2000 and $2800 should alias")
	}
}

func TestVBlankSetAtScanline241Dot1(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	p.ctrl |= ctrlNMIEnable
	// drive to scanline 241, dot 1, then take the step that evaluates it
	for p.scanline != vblankScanline || p.dot != 1 {
		p.Step()
	}
	p.Step()
	if p.status&statusVBlank == 0 {
		t.Fatalf("vblank flag not set at scanline 241 dot 1")
	}
	if !p.PollNMI() {
		t.Fatalf("expected NMI pending at vblank start with NMI enabled")
	}
	if !p.FrameReady() {
		t.Fatalf("expected a fresh frame at vblank start")
	}
}

func TestOAMDMAByteWriteWrapsAndAdvances(t *testing.T) {
	p := New(&fakeChrBus{}, cartridge.Horizontal)
	p.WriteRegister(RegOAMADDR, 0xFE)
	p.WriteOAMByte(0x11)
	p.WriteOAMByte(0x22)
	if p.oam[0xFE] != 0x11 || p.oam[0xFF] != 0x22 {
		t.Fatalf("oam[0xFE]=%#x oam[0xFF]=%#x, want 0x11/0x22", p.oam[0xFE], p.oam[0xFF])
	}
	if p.oamAddr != 0x00 {
		t.Fatalf("oamAddr = %#x after writing 0xFF, want wrap to 0x00", p.oamAddr)
	}
}
