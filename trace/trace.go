// Package trace renders one line of nestest-style CPU disassembly
// per executed instruction, for use by a host binary's -trace flag.
package trace

import (
	"fmt"
	"strings"

	"gontendo/cpu"
)

// Reader is the minimal bus view the tracer needs to fetch operand
// bytes for display; it never performs a side-effecting register
// read itself.
type Reader interface {
	Read(addr uint16) uint8
}

// State snapshots the CPU register file at the moment an instruction
// is about to execute, plus the PPU's current raster position for
// the nestest-log-compatible trailer.
type State struct {
	PC                 uint16
	A, X, Y, SP, P     uint8
	Cycle              uint64
	PPUDot, PPUScanline int
}

// Line formats one disassembly record for the instruction at pc,
// reading its operand bytes from r, followed by the register/cycle
// trailer.
func Line(r Reader, st State) string {
	opByte := r.Read(st.PC)
	info, ok := cpu.Lookup(opByte)
	if !ok {
		return fmt.Sprintf("%04X  %02X illegal fetch\n", st.PC, opByte)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%04X  ", st.PC)

	switch info.Length {
	case 1:
		fmt.Fprintf(&b, "%02X      ", opByte)
	case 2:
		fmt.Fprintf(&b, "%02X %02X   ", opByte, r.Read(st.PC+1))
	case 3:
		fmt.Fprintf(&b, "%02X %02X %02X", opByte, r.Read(st.PC+1), r.Read(st.PC+2))
	}

	if info.Illegal {
		b.WriteString(" *")
	} else {
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, "%s ", info.Mnemonic)

	writeOperand(&b, r, st.PC, info)

	for b.Len() < 48 {
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		st.A, st.X, st.Y, st.P, st.SP, st.PPUScanline, st.PPUDot, st.Cycle)
	return b.String()
}

func writeOperand(b *strings.Builder, r Reader, pc uint16, info cpu.OpcodeInfo) {
	switch info.ModeName() {
	case "Accumulator":
		b.WriteString("A")
	case "Implicit":
	case "Immediate":
		fmt.Fprintf(b, "#$%02X", r.Read(pc+1))
	case "ZeroPage":
		fmt.Fprintf(b, "$%02X", r.Read(pc+1))
	case "ZeroPageX":
		fmt.Fprintf(b, "$%02X,X", r.Read(pc+1))
	case "ZeroPageY":
		fmt.Fprintf(b, "$%02X,Y", r.Read(pc+1))
	case "Relative":
		offset := int8(r.Read(pc + 1))
		fmt.Fprintf(b, "$%04X", uint16(int32(pc)+2+int32(offset)))
	case "Absolute":
		fmt.Fprintf(b, "$%04X", addr16(r, pc+1))
	case "AbsoluteX":
		fmt.Fprintf(b, "$%04X,X", addr16(r, pc+1))
	case "AbsoluteY":
		fmt.Fprintf(b, "$%04X,Y", addr16(r, pc+1))
	case "Indirect":
		fmt.Fprintf(b, "($%04X)", addr16(r, pc+1))
	case "IndirectX":
		fmt.Fprintf(b, "($%02X,X)", r.Read(pc+1))
	case "IndirectY":
		fmt.Fprintf(b, "($%02X),Y", r.Read(pc+1))
	}
}

func addr16(r Reader, addr uint16) uint16 {
	return uint16(r.Read(addr)) | uint16(r.Read(addr+1))<<8
}
