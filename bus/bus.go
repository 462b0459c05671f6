// Package bus wires the CPU, PPU, cartridge mapper and joypad into
// one NES memory map: RAM mirroring, PPU register mirroring, OAM-DMA,
// the CPU/PPU clock coupling, and NMI delivery.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"gontendo/cartridge"
	"gontendo/cpu"
	"gontendo/joypad"
	"gontendo/mappers"
	"gontendo/ppu"
)

const (
	ramSize    = 0x0800
	ramEnd     = 0x1FFF
	ppuRegEnd  = 0x3FFF
	joypad1Reg = 0x4016
	joypad2Reg = 0x4017
	oamDMAReg  = 0x4014
	apuIOEnd   = 0x401F
	cartStart  = 0x4020
)

// dmaCycles is the OAM-DMA transfer cost when the transfer starts on
// an even CPU cycle: 256 byte transfers at 2 cycles each, plus one
// alignment cycle. startOAMDMA adds one more cycle when the transfer
// starts on an odd CPU cycle. The cost does not fit in a uint8, hence
// the uint16 cycle-charging path below.
const dmaCycles uint16 = 513

// FrameSink receives a completed frame buffer once per vblank. A host
// binary implements this to present frames. OnFrame receives only the
// frame buffer; it gets no PPU or Joypad access, and button state is
// set through Pad1 instead.
type FrameSink interface {
	OnFrame(frame []uint8)
}

// Bus is the NES's memory-mapped backplane. It implements cpu.Bus and
// ppu.Bus so the CPU and PPU packages stay ignorant of each other and
// of the cartridge mapper.
type Bus struct {
	CPU *cpu.CPU
	ppu *ppu.PPU

	mapper  mappers.Mapper
	ram     [ramSize]uint8
	pad1    *joypad.Joypad
	pad2    *joypad.Joypad

	sink FrameSink

	oddCycle   bool
	cycleCount uint64
}

// New builds a fully wired Bus for cart, with pad1 as the only
// connected controller (the second port always reads open-bus 0,
// per the core's single-controller scope).
func New(cart *cartridge.Cartridge, mapper mappers.Mapper, sink FrameSink) *Bus {
	b := &Bus{
		mapper: mapper,
		pad1:   joypad.New(),
		pad2:   joypad.New(),
		sink:   sink,
	}
	b.ppu = ppu.New(b, cart.Mirroring)
	b.CPU = cpu.New(b)
	b.CPU.Reset()
	return b
}

// Pad1 exposes the connected controller so a host can report button
// state.
func (b *Bus) Pad1() *joypad.Joypad { return b.pad1 }

// ChrRead/ChrWrite satisfy ppu.Bus by delegating CHR access to the
// cartridge mapper.
func (b *Bus) ChrRead(addr uint16) uint8 { return b.mapper.ChrRead(addr) }
func (b *Bus) ChrWrite(addr uint16, val uint8) error { return b.mapper.ChrWrite(addr, val) }

// Read satisfies cpu.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&0x07FF]
	case addr <= ppuRegEnd:
		return b.ppu.ReadRegister(0x2000 + addr&0x0007)
	case addr == joypad1Reg:
		return b.pad1.Read()
	case addr == joypad2Reg:
		return 0
	case addr <= apuIOEnd:
		return 0
	case addr < 0x8000:
		// $4020-$7FFF: no cartridge RAM or expansion on NROM.
		return 0
	default:
		return b.mapper.PrgRead(addr)
	}
}

// Write satisfies cpu.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&0x07FF] = val
	case addr <= ppuRegEnd:
		b.ppu.WriteRegister(0x2000+addr&0x0007, val)
	case addr == oamDMAReg:
		b.startOAMDMA(val)
	case addr == joypad1Reg:
		b.pad1.Write(val)
		b.pad2.Write(val)
	case addr <= apuIOEnd:
		// APU registers: out of scope for this core.
	default:
		b.mapper.PrgWrite(addr, val)
	}
}

func (b *Bus) startOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
	extra := dmaCycles
	if b.oddCycle {
		extra++
	}
	b.Tick(extra)
}

// Tick satisfies cpu.Bus: it advances the PPU by 3 dots per CPU
// cycle (the NTSC clock ratio) and tracks cycle parity for OAM-DMA's
// odd-cycle stall. cpuCycles is a uint16 (rather than the per-
// instruction uint8) so a single call can charge OAM-DMA's 513-514
// cycle stall in one shot.
func (b *Bus) Tick(cpuCycles uint16) {
	for i := uint16(0); i < cpuCycles; i++ {
		b.ppu.Step()
		b.ppu.Step()
		b.ppu.Step()
		b.oddCycle = !b.oddCycle
	}
	b.cycleCount += uint64(cpuCycles)
	if b.ppu.FrameReady() && b.sink != nil {
		b.sink.OnFrame(b.ppu.Frame())
	}
}

// Cycles returns the total number of CPU cycles charged to the Bus so
// far, for tests that need to observe cycle-accounting effects (such
// as OAM-DMA's stall) that aren't otherwise externally visible.
func (b *Bus) Cycles() uint64 { return b.cycleCount }

// PollNMI satisfies cpu.Bus by forwarding the PPU's edge-triggered
// NMI request.
func (b *Bus) PollNMI() bool {
	return b.ppu.PollNMI()
}

// Step runs exactly one CPU instruction (polling/servicing NMI first)
// and returns the cycles it consumed.
func (b *Bus) Step() uint8 {
	return b.CPU.Step()
}
