package ppu

import "nescore/internal/render"

const (
	screenTilesX = 32
	screenTilesY = 30
)

// buildImage renders one full frame into p.backend: the scrolled
// background tile grid, then every OAM sprite back-to-front so sprite 0
// (drawn last) coarsely determines sprite-0-hit.
func (p *PPU) buildImage() {
	p.sprite0Hit = false
	if p.backend == nil {
		return
	}
	p.backend.SetBackground(p.bus.ReadVideoMem(0x3F00))

	if p.bgEnabled {
		p.buildBackground()
	}
	if p.spritesEnabled {
		p.buildSprites()
	}
	p.backend.Draw()
}

// nametableBase returns the $2000-space base address of page (0-3).
func nametableBase(page uint8) uint16 {
	return 0x2000 + uint16(page)*0x400
}

// firstVisibleRow and lastVisibleRow implement the NTSC quirk where the
// topmost and bottommost background rows are never drawn. PAL draws the
// full 30 rows.
func (p *PPU) firstVisibleRow() int {
	if p.mode == NTSC {
		return 1
	}
	return 0
}

func (p *PPU) lastVisibleRow() int {
	if p.mode == NTSC {
		return screenTilesY - 2
	}
	return screenTilesY - 1
}

func (p *PPU) buildBackground() {
	scrollTileX := int(p.scrollH) / 8
	scrollTileY := int(p.scrollV) / 8

	for row := p.firstVisibleRow(); row <= p.lastVisibleRow(); row++ {
		for col := 0; col < screenTilesX; col++ {
			tileX := col + scrollTileX
			tileY := row + scrollTileY

			page := p.activePage
			if tileX >= screenTilesX {
				tileX -= screenTilesX
				page ^= 1
			}
			if tileY >= screenTilesY {
				tileY -= screenTilesY
				page ^= 2
			}

			base := nametableBase(page)
			tileIdx := p.bus.ReadVideoMem(base + uint16(tileY*screenTilesX+tileX))
			attrByte := p.bus.ReadVideoMem(base + 0x3C0 + uint16((tileY/4)*8+(tileX/4)))
			group := ((tileY%4)/2)*2 + (tileX%4)/2
			paletteGroup := (attrByte >> (group * 2)) & 0x03

			pixels := p.decodeTile(p.bgPatternBase, tileIdx, paletteGroup, false, false)
			if !p.bgLeftColumnVisible && col == 0 {
				for r := 0; r < 8; r++ {
					pixels[r*8] = 0
				}
			}
			x := col*8 - int(p.scrollH%8)
			y := row*8 - int(p.scrollV%8)
			p.backend.SetSymbol(render.LayerBackground, x, y, pixels)
		}
	}
}

// decodeTile reads an 8x8 pattern-table tile and maps it through the
// given background palette group, returning 64 palette-index bytes with
// bit 7 set where the pixel is opaque.
func (p *PPU) decodeTile(base uint16, tileIdx uint8, paletteGroup uint8, flipX, flipY bool) [64]byte {
	var out [64]byte
	addr := base + uint16(tileIdx)*16
	for row := 0; row < 8; row++ {
		srcRow := row
		if flipY {
			srcRow = 7 - row
		}
		lo := p.bus.ReadVideoMem(addr + uint16(srcRow))
		hi := p.bus.ReadVideoMem(addr + uint16(srcRow) + 8)
		for col := 0; col < 8; col++ {
			srcCol := col
			if flipX {
				srcCol = 7 - col
			}
			shift := 7 - srcCol
			bit0 := (lo >> shift) & 1
			bit1 := (hi >> shift) & 1
			colorIdx := bit1<<1 | bit0
			var px byte
			if colorIdx != 0 {
				paletteAddr := 0x3F00 + uint16(paletteGroup)*4 + uint16(colorIdx)
				px = p.bus.ReadVideoMem(paletteAddr) | 0x80
			}
			out[row*8+col] = px
		}
	}
	return out
}

// buildSprites walks OAM from index 63 down to 0 so that sprite 0,
// drawn last, is what coarsely decides sprite-0-hit: any opaque pixel in
// sprite 0's tile sets the flag, whatever the background holds there.
func (p *PPU) buildSprites() {
	p.spriteOverflow = false
	visibleCount := 0

	for i := 63; i >= 0; i-- {
		base := uint8(i * 4)
		y := p.bus.ReadSpriteMem(base)
		tileIdx := p.bus.ReadSpriteMem(base + 1)
		attr := p.bus.ReadSpriteMem(base + 2)
		x := p.bus.ReadSpriteMem(base + 3)

		if y >= 0xEF {
			continue // conventionally off-screen
		}
		visibleCount++
		if visibleCount > 8 {
			p.spriteOverflow = true
		}

		if p.bigSprites {
			if !p.warnedBigSprite {
				p.logger.Printf("ppu: 8x16 sprite mode not supported, skipping sprite %d", i)
				p.warnedBigSprite = true
			}
			continue
		}

		paletteGroup := attr & 0x03
		flipX := attr&0x40 != 0
		flipY := attr&0x80 != 0
		behind := attr&0x20 != 0

		pixels := p.decodeSpriteTile(tileIdx, paletteGroup, flipX, flipY)

		if i == 0 {
			for _, px := range pixels {
				if px&0x80 != 0 {
					p.sprite0Hit = true
					break
				}
			}
		}

		layer := render.LayerFront
		if behind {
			layer = render.LayerBehind
		}
		p.backend.SetSymbol(layer, int(x), int(y), pixels)
	}
}

func (p *PPU) decodeSpriteTile(tileIdx uint8, paletteGroup uint8, flipX, flipY bool) [64]byte {
	var out [64]byte
	addr := p.spritePatternBase + uint16(tileIdx)*16
	for row := 0; row < 8; row++ {
		srcRow := row
		if flipY {
			srcRow = 7 - row
		}
		lo := p.bus.ReadVideoMem(addr + uint16(srcRow))
		hi := p.bus.ReadVideoMem(addr + uint16(srcRow) + 8)
		for col := 0; col < 8; col++ {
			srcCol := col
			if flipX {
				srcCol = 7 - col
			}
			shift := 7 - srcCol
			bit0 := (lo >> shift) & 1
			bit1 := (hi >> shift) & 1
			colorIdx := bit1<<1 | bit0
			var px byte
			if colorIdx != 0 {
				paletteAddr := 0x3F10 + uint16(paletteGroup)*4 + uint16(colorIdx)
				px = p.bus.ReadVideoMem(paletteAddr) | 0x80
			}
			out[row*8+col] = px
		}
	}
	return out
}
