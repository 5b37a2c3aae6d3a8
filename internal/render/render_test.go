package render

import "testing"

func TestSetBackgroundFillsFrame(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	b.SetBackground(0x21) // a blue-ish palette entry

	frame := b.Frame()
	want := NESColorToRGB(0x21)
	for i, px := range frame {
		if px != want {
			t.Fatalf("frame[%d] = $%06X, want $%06X", i, px, want)
		}
	}
}

func TestSetSymbolSkipsTransparentPixels(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	var pixels [64]byte
	pixels[0] = 0x80 | 0x0F // opaque, palette index 0x0F
	// pixels[1] stays zero: transparent

	b.SetSymbol(LayerBackground, 0, 0, pixels)

	frame := b.Frame()
	if frame[0] != NESColorToRGB(0x0F) {
		t.Errorf("frame[0] = $%06X, want $%06X", frame[0], NESColorToRGB(0x0F))
	}
	if frame[1] != 0 {
		t.Errorf("frame[1] = $%06X, want $000000 (untouched by transparent pixel)", frame[1])
	}
}

func TestSetSymbolClipsOffscreen(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	var pixels [64]byte
	for i := range pixels {
		pixels[i] = 0x80 | 0x01
	}

	// Should not panic when blitting partially or fully off the 256x240
	// frame edge.
	b.SetSymbol(LayerBackground, 252, 236, pixels)
	b.SetSymbol(LayerBackground, -4, -4, pixels)
}

func TestBehindSpriteYieldsToOpaqueBackground(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	var bgPixels, sprPixels [64]byte
	bgPixels[0] = 0x80 | 0x10  // opaque background pixel
	sprPixels[0] = 0x80 | 0x21 // opaque sprite pixel, different color

	b.SetSymbol(LayerBackground, 0, 0, bgPixels)
	b.SetSymbol(LayerBehind, 0, 0, sprPixels)

	frame := b.Frame()
	if frame[0] != NESColorToRGB(0x10) {
		t.Errorf("frame[0] = $%06X, want background color $%06X (BEHIND sprite should not overwrite it)", frame[0], NESColorToRGB(0x10))
	}
}

func TestFrontSpriteOverwritesBackground(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	var bgPixels, sprPixels [64]byte
	bgPixels[0] = 0x80 | 0x10
	sprPixels[0] = 0x80 | 0x21

	b.SetSymbol(LayerBackground, 0, 0, bgPixels)
	b.SetSymbol(LayerFront, 0, 0, sprPixels)

	frame := b.Frame()
	if frame[0] != NESColorToRGB(0x21) {
		t.Errorf("frame[0] = $%06X, want sprite color $%06X (FRONT sprite should overwrite background)", frame[0], NESColorToRGB(0x21))
	}
}

func TestBehindSpriteShowsOverTransparentBackground(t *testing.T) {
	b := NewHeadlessBackend("", nil)
	var bgPixels, sprPixels [64]byte
	// bgPixels[0] stays zero: transparent background pixel
	sprPixels[0] = 0x80 | 0x21

	b.SetSymbol(LayerBackground, 0, 0, bgPixels)
	b.SetSymbol(LayerBehind, 0, 0, sprPixels)

	frame := b.Frame()
	if frame[0] != NESColorToRGB(0x21) {
		t.Errorf("frame[0] = $%06X, want sprite color $%06X (BEHIND sprite should show through transparent background)", frame[0], NESColorToRGB(0x21))
	}
}

func TestLayerString(t *testing.T) {
	cases := map[Layer]string{
		LayerBackground: "BACKGROUND",
		LayerBehind:     "BEHIND",
		LayerFront:      "FRONT",
	}
	for layer, want := range cases {
		if got := layer.String(); got != want {
			t.Errorf("Layer(%d).String() = %q, want %q", layer, got, want)
		}
	}
}
