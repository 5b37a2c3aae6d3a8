//go:build !headless
// +build !headless

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenBackend accumulates tile blits into an RGB framebuffer, same as
// HeadlessBackend, then presents it through an ebiten.Image each Draw,
// scaled and centered to fill the current window.
type EbitenBackend struct {
	frame frameBuffer

	windowImage  *ebiten.Image
	pixelBuffer  *image.RGBA
	windowWidth  int
	windowHeight int
}

// NewEbitenBackend builds an EbitenBackend. The caller is responsible for
// calling ebiten.RunGame against an ebiten.Game that calls Layout/Draw
// against this backend's WindowImage and DrawOptions.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		windowImage: ebiten.NewImage(256, 240),
		pixelBuffer: image.NewRGBA(image.Rect(0, 0, 256, 240)),
	}
}

func (b *EbitenBackend) SetBackground(colorByte uint8) {
	b.frame.setBackground(colorByte)
}

func (b *EbitenBackend) SetSymbol(layer Layer, x, y int, pixels [64]byte) {
	b.frame.setSymbol(layer, x, y, pixels)
}

// Draw pushes the accumulated framebuffer into the backing ebiten.Image.
// The caller's ebiten.Game.Draw then blits WindowImage to the screen.
func (b *EbitenBackend) Draw() {
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			px := b.frame.pixels[y*256+x]
			b.pixelBuffer.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: 255,
			})
		}
	}
	b.windowImage.WritePixels(b.pixelBuffer.Pix)
}

// WindowImage returns the backing image for a host ebiten.Game's Draw to
// blit against the screen.
func (b *EbitenBackend) WindowImage() *ebiten.Image { return b.windowImage }

// SetWindowSize tells the backend the current outer window dimensions,
// used by DrawOptions to compute the centered scale-to-fit transform.
func (b *EbitenBackend) SetWindowSize(w, h int) {
	b.windowWidth, b.windowHeight = w, h
}

// DrawOptions returns the scale-and-center transform to blit WindowImage
// (256x240) into a window of the size last given to SetWindowSize.
func (b *EbitenBackend) DrawOptions() *ebiten.DrawImageOptions {
	const nesW, nesH = 256.0, 240.0
	scaleX := float64(b.windowWidth) / nesW
	scaleY := float64(b.windowHeight) / nesH
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	offsetX := (float64(b.windowWidth) - nesW*scale) / 2
	offsetY := (float64(b.windowHeight) - nesH*scale) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	return op
}
