// Package mappers implements cartridge bank-switching logic. Only
// mapper 0 (NROM) is registered; the registry exists so a future
// mapper can add itself via init() without the Bus or PPU knowing its
// number ahead of time.
package mappers

import (
	"fmt"

	"gontendo/cartridge"
)

// Mapper decodes CPU and PPU addresses into cartridge PRG/CHR offsets.
// Bus and PPU hold a Mapper, never a *cartridge.Cartridge directly, so
// that a bank-switching mapper can intercept reads/writes in
// $8000-$FFFF and $0000-$1FFF transparently.
type Mapper interface {
	// PrgRead returns the byte visible to the CPU at addr, which
	// must be in [0x8000, 0xFFFF].
	PrgRead(addr uint16) uint8
	// PrgWrite handles a CPU write in [0x8000, 0xFFFF]. NROM has no
	// PRG-RAM or bank registers, so this is a no-op for mapper 0.
	PrgWrite(addr uint16, val uint8)
	// ChrRead returns the byte visible to the PPU at addr, which
	// must be in [0x0000, 0x1FFF].
	ChrRead(addr uint16) uint8
	// ChrWrite writes CHR-RAM; it returns ErrReadOnlyCHR for boards
	// with CHR-ROM.
	ChrWrite(addr uint16, val uint8) error
	// Mirroring reports the cartridge's nametable mirroring.
	Mirroring() cartridge.Mirroring
}

// ErrReadOnlyCHR is returned by ChrWrite when the cartridge's pattern
// tables are CHR-ROM rather than CHR-RAM.
var ErrReadOnlyCHR = fmt.Errorf("mappers: CHR-ROM is read-only")

type factory func(*cartridge.Cartridge) Mapper

var registry = map[uint8]factory{}

// register adds a mapper constructor under the given iNES mapper
// number. Called from each mapper's init().
func register(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mappers: mapper %d already registered", id))
	}
	registry[id] = f
}

// Get constructs the Mapper for cart's declared mapper number.
func Get(cart *cartridge.Cartridge) (Mapper, error) {
	f, ok := registry[cart.Mapper]
	if !ok {
		return nil, fmt.Errorf("mappers: no mapper registered for id %d", cart.Mapper)
	}
	return f(cart), nil
}
