package mappers

import (
	"testing"

	"gontendo/cartridge"
)

func cart16k() *cartridge.Cartridge {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB
	return &cartridge.Cartridge{PRG: prg, CHR: make([]byte, 0x2000), Mapper: 0}
}

func TestNROMMirrorsSmallPRG(t *testing.T) {
	m, err := Get(cart16k())
	if err != nil {
		t.Fatal(err)
	}
	if got := m.PrgRead(0x8000); got != 0xAA {
		t.Errorf("PrgRead(0x8000) = %02x, want 0xAA", got)
	}
	if got := m.PrgRead(0xC000); got != 0xAA {
		t.Errorf("PrgRead(0xC000) = %02x, want 0xAA (mirror of 0x8000)", got)
	}
	if got := m.PrgRead(0xFFFF); got != 0xBB {
		t.Errorf("PrgRead(0xFFFF) = %02x, want 0xBB", got)
	}
}

func TestNROMChrRAMWrite(t *testing.T) {
	cart := cart16k()
	cart.ChrIsRAM = true
	m, _ := Get(cart)
	if err := m.ChrWrite(0x0010, 0x7E); err != nil {
		t.Fatalf("ChrWrite on CHR-RAM: %v", err)
	}
	if got := m.ChrRead(0x0010); got != 0x7E {
		t.Errorf("ChrRead(0x0010) = %02x, want 0x7E", got)
	}
}

func TestNROMChrROMRejectsWrite(t *testing.T) {
	cart := cart16k()
	m, _ := Get(cart)
	if err := m.ChrWrite(0, 1); err == nil {
		t.Fatal("expected ErrReadOnlyCHR")
	}
}

func TestGetUnsupportedMapper(t *testing.T) {
	cart := cart16k()
	cart.Mapper = 4
	if _, err := Get(cart); err == nil {
		t.Fatal("expected error for unregistered mapper")
	}
}
