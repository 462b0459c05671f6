package ppu

// renderFrame paints the whole 256x240 buffer from the current
// nametable, pattern tables, OAM and scroll registers. Real hardware
// composites one pixel per dot as scanlines are drawn, which lets a
// game change scroll or banking mid-frame (a raster split); this
// renderer instead draws the complete frame once, at vblank, from
// whatever scroll/control state is current at that instant. Mid-frame
// raster effects are therefore not reproduced.
func (p *PPU) renderFrame() {
	if p.mask&maskShowBG != 0 {
		p.renderBackground()
	} else {
		p.clearFrame()
	}
	if p.mask&maskShowSprites != 0 {
		p.renderSprites()
	}
	p.frameReady = true
}

func (p *PPU) clearFrame() {
	bg := systemPalette[p.palette[0]&0x3F]
	for i := 0; i < Width*Height; i++ {
		p.setPixel(i%Width, i/Width, bg)
	}
}

func (p *PPU) setPixel(x, y int, c rgb) {
	i := (y*Width + x) * 3
	if i+2 >= len(p.frame) {
		return
	}
	p.frame[i] = c.r
	p.frame[i+1] = c.g
	p.frame[i+2] = c.b
}

func (p *PPU) renderBackground() {
	baseNametable := uint16(0x2000) + uint16(p.ctrl&0x03)*0x400
	bgTable := uint16(0)
	if p.ctrl&ctrlBGTable != 0 {
		bgTable = 0x1000
	}
	scrollX := int((p.v&0x1F)*8) + int(p.x)
	scrollY := int((p.v >> 5 & 0x1F) * 8)

	for screenY := 0; screenY < Height; screenY++ {
		for screenX := 0; screenX < Width; screenX++ {
			worldX := screenX + scrollX
			worldY := screenY + scrollY
			nt := baseNametable
			if (worldX/Width)%2 == 1 {
				nt ^= 0x0400
			}
			if (worldY/Height)%2 == 1 {
				nt ^= 0x0800
			}
			tileX := (worldX % Width) / 8
			tileY := (worldY % Height) / 8
			ntAddr := nt + uint16(tileY*32+tileX)
			tileIdx := p.readMemory(ntAddr)

			attrAddr := nt + 0x03C0 + uint16((tileY/4)*8+(tileX/4))
			attr := p.readMemory(attrAddr)
			shift := uint((tileY%4)/2*4 + (tileX%4)/2*2)
			paletteIdx := (attr >> shift) & 0x03

			fineX := uint8(worldX % 8)
			fineY := uint8(worldY % 8)
			lo := p.readMemory(bgTable + uint16(tileIdx)*16 + uint16(fineY))
			hi := p.readMemory(bgTable + uint16(tileIdx)*16 + uint16(fineY) + 8)
			bit := 7 - fineX
			colorIdx := ((hi>>bit)&1)<<1 | (lo>>bit)&1

			var palEntry uint8
			if colorIdx == 0 {
				palEntry = p.palette[0]
			} else {
				palEntry = p.palette[paletteIdx*4+colorIdx]
			}
			p.setPixel(screenX, screenY, systemPalette[palEntry&0x3F])
		}
	}
}

// spriteAttr mirrors one 4-byte OAM entry's layout.
type spriteAttr struct {
	y, tile, attr, x uint8
}

func (p *PPU) spriteAt(i int) spriteAttr {
	o := i * 4
	return spriteAttr{y: p.oam[o], tile: p.oam[o+1], attr: p.oam[o+2], x: p.oam[o+3]}
}

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize != 0 {
		return 16
	}
	return 8
}

func (p *PPU) renderSprites() {
	height := p.spriteHeight()
	spriteTable := uint16(0)
	if p.ctrl&ctrlSpriteTable != 0 {
		spriteTable = 0x1000
	}

	// Back to front, so sprite 0 (drawn last) wins ties as required.
	for i := 63; i >= 0; i-- {
		s := p.spriteAt(i)
		if s.y >= 0xEF {
			continue
		}
		flipH := s.attr&0x40 != 0
		flipV := s.attr&0x80 != 0
		behind := s.attr&0x20 != 0
		paletteIdx := s.attr & 0x03

		tile := uint16(s.tile)
		table := spriteTable
		if height == 16 {
			table = uint16(s.tile&0x01) * 0x1000
			tile = uint16(s.tile &^ 0x01)
		}

		for row := 0; row < height; row++ {
			sy := int(s.y) + 1 + row
			if sy < 0 || sy >= Height {
				continue
			}
			fineY := row
			if flipV {
				fineY = height - 1 - row
			}
			tileOffset := tile
			if height == 16 && fineY >= 8 {
				tileOffset++
				fineY -= 8
			}
			lo := p.readMemory(table + tileOffset*16 + uint16(fineY))
			hi := p.readMemory(table + tileOffset*16 + uint16(fineY) + 8)

			for col := 0; col < 8; col++ {
				sx := int(s.x) + col
				if sx < 0 || sx >= Width {
					continue
				}
				bitCol := col
				if flipH {
					bitCol = 7 - col
				}
				bit := 7 - bitCol
				colorIdx := ((hi>>bit)&1)<<1 | (lo>>bit)&1
				if colorIdx == 0 {
					continue
				}
				if behind && !p.backgroundIsTransparent(sx, sy) {
					continue
				}
				palEntry := p.palette[0x10+uint16(paletteIdx)*4+uint16(colorIdx)]
				p.setPixel(sx, sy, systemPalette[palEntry&0x3F])
			}
		}
	}
}

// backgroundIsTransparent is a coarse approximation used only to
// decide whether a "behind background" sprite pixel should show: it
// compares the already-rendered pixel against the universal backdrop
// color rather than re-deriving the background's color index.
func (p *PPU) backgroundIsTransparent(x, y int) bool {
	i := (y*Width + x) * 3
	if i+2 >= len(p.frame) {
		return true
	}
	bg := systemPalette[p.palette[0]&0x3F]
	return p.frame[i] == bg.r && p.frame[i+1] == bg.g && p.frame[i+2] == bg.b
}

// evaluateSprite0Hit approximates sprite-0 hit detection: rather than
// tracking exact per-dot pixel opacity during rasterization, it is
// computed once per visible scanline by checking whether sprite 0's
// bounding row falls on this scanline and both background and
// sprite rendering are enabled. This flags the scanline, not the
// exact dot, which is sufficient for the split-screen timing most
// games rely on.
func (p *PPU) evaluateSprite0Hit() {
	if p.sprite0Hit {
		return
	}
	s := p.spriteAt(0)
	height := p.spriteHeight()
	row := p.scanline - int(s.y) - 1
	if row < 0 || row >= height {
		return
	}
	if p.mask&maskShowBG == 0 || p.mask&maskShowSprites == 0 {
		return
	}
	p.status |= statusSprite0Hit
	p.sprite0Hit = true
}
