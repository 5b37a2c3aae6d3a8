package render

// nesColorPalette is the standard NTSC 2C02 64-color palette, indexed by
// the 6-bit palette RAM byte (top two bits are unused and masked off).
var nesColorPalette = [64]uint32{
	0x666666, 0x002A88, 0x1412A7, 0x3B00A4, 0x5C007E, 0x6E0040, 0x6C0600, 0x561D00,
	0x333500, 0x0B4800, 0x005200, 0x004F08, 0x00404D, 0x000000, 0x000000, 0x000000,
	0xADADAD, 0x155FD9, 0x4240FF, 0x7527FE, 0xA01ACC, 0xB71E7B, 0xB53120, 0x994E00,
	0x6B6D00, 0x388700, 0x0C9300, 0x008F32, 0x007C8D, 0x000000, 0x000000, 0x000000,
	0xFFFEFF, 0x64B0FF, 0x9290FF, 0xC676FF, 0xF36AFF, 0xFE6ECC, 0xFE8170, 0xEA9E22,
	0xBCBE00, 0x88D800, 0x5CE430, 0x45E082, 0x48CDDE, 0x4F4F4F, 0x000000, 0x000000,
	0xFFFEFF, 0xC0DFFF, 0xD3D2FF, 0xE8C8FF, 0xFBC2FF, 0xFEC4EA, 0xFECCC5, 0xF7D8A5,
	0xE4E594, 0xCFF29B, 0xBEFBB3, 0xB8F8D8, 0xB8F8F8, 0x000000, 0x000000, 0x000000,
}

// NESColorToRGB maps a 6-bit NES palette index to a 0xRRGGBB color.
func NESColorToRGB(index uint8) uint32 {
	return nesColorPalette[index&0x3F]
}

// frameBuffer is the pixel/opacity storage shared by every concrete
// Backend. bgOpaque tracks which pixels the background layer covered with
// an opaque tile pixel, so a BEHIND sprite blit can yield to it.
type frameBuffer struct {
	pixels   [256 * 240]uint32
	bgOpaque [256 * 240]bool
}

func (f *frameBuffer) setBackground(colorByte uint8) {
	rgb := NESColorToRGB(colorByte)
	for i := range f.pixels {
		f.pixels[i] = rgb
		f.bgOpaque[i] = false
	}
}

// setSymbol blits one 8x8 tile of palette-index-plus-opaqueness bytes at
// (x, y), clipping against the frame edge and skipping transparent (bit 7
// clear) pixels. BACKGROUND blits mark bgOpaque so a later BEHIND sprite
// blit knows where the background already won; BEHIND blits skip any
// pixel bgOpaque already claims; FRONT blits always win.
func (f *frameBuffer) setSymbol(layer Layer, x, y int, pixels [64]byte) {
	for row := 0; row < 8; row++ {
		py := y + row
		if py < 0 || py >= 240 {
			continue
		}
		for col := 0; col < 8; col++ {
			px := x + col
			if px < 0 || px >= 256 {
				continue
			}
			v := pixels[row*8+col]
			if v&0x80 == 0 {
				continue
			}
			i := py*256 + px
			if layer == LayerBehind && f.bgOpaque[i] {
				continue
			}
			f.pixels[i] = NESColorToRGB(v & 0x3F)
			if layer == LayerBackground {
				f.bgOpaque[i] = true
			}
		}
	}
}
