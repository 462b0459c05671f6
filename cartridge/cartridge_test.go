package cartridge

import "testing"

func makeHeader(prgPages, chrPages, flags6, flags7 byte) []byte {
	h := make([]byte, headerSize)
	copy(h, magic[:])
	h[4] = prgPages
	h[5] = chrPages
	h[6] = flags6
	h[7] = flags7
	return h
}

func buildROM(prgPages, chrPages, flags6, flags7 byte, trainer bool) []byte {
	data := makeHeader(prgPages, chrPages, flags6, flags7)
	if trainer {
		data = append(data, make([]byte, trainerSize)...)
	}
	data = append(data, make([]byte, int(prgPages)*prgBlockSize)...)
	data = append(data, make([]byte, int(chrPages)*chrBlockSize)...)
	return data
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := buildROM(1, 1, 0, 0, false)
	data[0] = 'X'
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestParseRejectsShortBuffer(t *testing.T) {
	data := buildROM(2, 1, 0, 0, false)
	if _, err := Parse(data[:len(data)-10]); err == nil {
		t.Fatal("expected error for truncated buffer")
	}
}

func TestParseRejectsNES2(t *testing.T) {
	data := buildROM(1, 1, 0, 0x08, false)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for iNES 2.0 header")
	}
}

func TestParseRejectsUnsupportedMapper(t *testing.T) {
	// mapper 1 low nibble lives in the top nibble of flags6.
	data := buildROM(1, 1, 0x10, 0, false)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for mapper 1")
	}
}

func TestParseMirroring(t *testing.T) {
	cases := []struct {
		flags6 byte
		want   Mirroring
	}{
		{0x00, Horizontal},
		{0x01, Vertical},
		{0x08, FourScreen},
		{0x09, FourScreen}, // four-screen bit wins over mirroring bit
	}
	for _, c := range cases {
		data := buildROM(1, 1, c.flags6, 0, false)
		cart, err := Parse(data)
		if err != nil {
			t.Fatalf("flags6=%02x: %v", c.flags6, err)
		}
		if cart.Mirroring != c.want {
			t.Errorf("flags6=%02x: mirroring = %v, want %v", c.flags6, cart.Mirroring, c.want)
		}
	}
}

func TestParseSkipsTrainer(t *testing.T) {
	data := buildROM(1, 1, 0x04, 0, true)
	marker := byte(0x42)
	data[headerSize+trainerSize] = marker
	cart, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if cart.PRG[0] != marker {
		t.Errorf("PRG[0] = %02x, want %02x (trainer not skipped)", cart.PRG[0], marker)
	}
}

func TestParsePRGMirrorSizing(t *testing.T) {
	data := buildROM(1, 0, 0, 0, false)
	cart, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.PRG) != prgBlockSize {
		t.Errorf("len(PRG) = %d, want %d", len(cart.PRG), prgBlockSize)
	}
	if !cart.ChrIsRAM {
		t.Error("zero CHR pages should report CHR-RAM")
	}
	if len(cart.CHR) != chrBlockSize {
		t.Errorf("len(CHR) = %d, want %d (CHR-RAM default bank)", len(cart.CHR), chrBlockSize)
	}
}
