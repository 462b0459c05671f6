package mappers

import "gontendo/cartridge"

func init() {
	register(0, newNROM)
}

// nrom implements mapper 0: no bank switching. A 16 KiB PRG-ROM is
// mirrored across both halves of $8000-$FFFF; a 32 KiB PRG-ROM fills
// it directly. CHR is either 8 KiB of ROM or, on CHR-RAM boards, an
// 8 KiB writable bank.
type nrom struct {
	cart *cartridge.Cartridge
}

func newNROM(cart *cartridge.Cartridge) Mapper {
	return &nrom{cart: cart}
}

func (m *nrom) PrgRead(addr uint16) uint8 {
	off := addr - 0x8000
	if len(m.cart.PRG) == 0x4000 {
		off %= 0x4000
	}
	return m.cart.PRG[off]
}

func (m *nrom) PrgWrite(addr uint16, val uint8) {
	// NROM carries no PRG-RAM or bank-select registers.
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.cart.CHR[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) error {
	if !m.cart.ChrIsRAM {
		return ErrReadOnlyCHR
	}
	m.cart.CHR[addr] = val
	return nil
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.cart.Mirroring
}
