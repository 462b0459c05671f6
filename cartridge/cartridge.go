// Package cartridge implements support for the iNES v1 ROM container
// format. https://www.nesdev.org/wiki/INES
package cartridge

import (
	"errors"
	"fmt"
)

const (
	headerSize    = 16
	trainerSize   = 512
	prgBlockSize  = 16384
	chrBlockSize  = 8192
	nes2Mask      = 0x0C
	nes2Marker    = 0x08
	mapperLowMask = 0xF0
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// Mirroring identifies how the PPU's two logical name-tables are
// mapped onto the console's 2 KiB of physical VRAM.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// ErrInvalidFormat is returned when the byte buffer is not a
// well-formed iNES v1 image.
var ErrInvalidFormat = errors.New("cartridge: invalid iNES format")

// ErrUnsupportedMapper is returned when the header names a mapper
// other than mapper 0 (NROM).
var ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")

// Cartridge is the immutable, parsed content of an iNES v1 image: the
// PRG-ROM and CHR-ROM byte ranges, the nametable mirroring the board
// wires up, and the mapper number. It is parsed once; afterward only
// the CHR bytes of a CHR-RAM board change, written by the mapper.
type Cartridge struct {
	PRG       []byte
	CHR       []byte
	Mirroring Mirroring
	Mapper    uint8
	HasSRAM   bool
	ChrIsRAM  bool
}

// Parse decodes an iNES v1 image from data. It fails with
// ErrInvalidFormat if the magic bytes are missing, the header claims
// iNES 2.0, or the buffer is shorter than the header declares. It
// fails with ErrUnsupportedMapper if the mapper number is not 0.
func Parse(data []byte) (*Cartridge, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: buffer shorter than header (%d bytes)", ErrInvalidFormat, len(data))
	}
	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return nil, fmt.Errorf("%w: missing \"NES\\x1A\" magic", ErrInvalidFormat)
	}

	flags6 := data[6]
	flags7 := data[7]
	if flags7&nes2Mask == nes2Marker {
		return nil, fmt.Errorf("%w: iNES 2.0 is not supported", ErrInvalidFormat)
	}

	mapper := (flags7 & mapperLowMask) | (flags6 >> 4)
	if mapper != 0 {
		return nil, fmt.Errorf("%w: mapper %d", ErrUnsupportedMapper, mapper)
	}

	prgSize := int(data[4]) * prgBlockSize
	chrSize := int(data[5]) * chrBlockSize

	hasTrainer := flags6&0x04 != 0
	offset := headerSize
	if hasTrainer {
		offset += trainerSize
	}

	need := offset + prgSize + chrSize
	if len(data) < need {
		return nil, fmt.Errorf("%w: buffer too short for declared PRG+CHR (need %d, have %d)", ErrInvalidFormat, need, len(data))
	}

	prg := make([]byte, prgSize)
	copy(prg, data[offset:offset+prgSize])
	offset += prgSize

	chrIsRAM := chrSize == 0
	chr := make([]byte, chrSize)
	if !chrIsRAM {
		copy(chr, data[offset:offset+chrSize])
	} else {
		// Boards with no CHR-ROM bank use 8 KiB of CHR-RAM instead.
		chr = make([]byte, chrBlockSize)
	}

	mirroring := Horizontal
	switch {
	case flags6&0x08 != 0:
		mirroring = FourScreen
	case flags6&0x01 != 0:
		mirroring = Vertical
	}

	return &Cartridge{
		PRG:       prg,
		CHR:       chr,
		Mirroring: mirroring,
		Mapper:    mapper,
		HasSRAM:   flags6&0x02 != 0,
		ChrIsRAM:  chrIsRAM,
	}, nil
}
