package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// dumpScale upscales headless frame dumps so they're visible at normal
// screen DPI without a windowed backend.
const dumpScale = 3

// HeadlessBackend accumulates tile blits into an in-memory 256x240 RGB
// framebuffer with no window, for tests and tooling. It optionally dumps
// selected frames to disk as upscaled PNGs for visual inspection.
type HeadlessBackend struct {
	frame      frameBuffer
	frameCount int
	dumpFrames map[int]bool
	outputDir  string
}

// NewHeadlessBackend builds a HeadlessBackend. dumpFrames names 1-based
// frame numbers to write to outputDir as PNG files; pass nil to dump
// nothing.
func NewHeadlessBackend(outputDir string, dumpFrames map[int]bool) *HeadlessBackend {
	return &HeadlessBackend{
		dumpFrames: dumpFrames,
		outputDir:  outputDir,
	}
}

func (b *HeadlessBackend) SetBackground(colorByte uint8) {
	b.frame.setBackground(colorByte)
}

func (b *HeadlessBackend) SetSymbol(layer Layer, x, y int, pixels [64]byte) {
	b.frame.setSymbol(layer, x, y, pixels)
}

func (b *HeadlessBackend) Draw() {
	b.frameCount++
	if b.dumpFrames == nil || !b.dumpFrames[b.frameCount] {
		return
	}
	_ = b.dumpPNG(fmt.Sprintf("%s/frame_%03d.png", b.outputDir, b.frameCount))
}

// Frame returns the backend's current 256x240 RGB framebuffer, for tests
// that want to inspect rendered pixels directly.
func (b *HeadlessBackend) Frame() [256 * 240]uint32 { return b.frame.pixels }

func (b *HeadlessBackend) dumpPNG(filename string) error {
	src := image.NewRGBA(image.Rect(0, 0, 256, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			px := b.frame.pixels[y*256+x]
			src.SetRGBA(x, y, color.RGBA{R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: 255})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, 256*dumpScale, 240*dumpScale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
