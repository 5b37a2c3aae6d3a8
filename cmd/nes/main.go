// Command nes runs the nescore NES emulation core against a ROM file,
// either windowed through Ebitengine or headless for scripted frame
// capture.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/ppu"
	"nescore/internal/render"
	"nescore/internal/version"
)

const (
	ntscCyclesPerFrame = 29780
	palCyclesPerFrame  = 33247
)

func main() {
	var (
		romFile  = flag.String("rom", "", "path to an iNES (.nes) ROM file")
		headless = flag.Bool("headless", false, "run without a window, dumping selected frames as PNG")
		dumpDir  = flag.String("dumpdir", ".", "directory for headless frame dumps")
		pal      = flag.Bool("pal", false, "use PAL timing instead of NTSC")
		frames   = flag.Int("frames", 120, "frames to run in headless mode")
		showVer  = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVer {
		version.PrintBuildInfo()
		return
	}
	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "usage: nes -rom <file.nes> [-headless] [-pal]")
		os.Exit(2)
	}

	mode := bus.NTSC
	ppuMode := ppu.NTSC
	cyclesPerFrame := ntscCyclesPerFrame
	if *pal {
		mode = bus.PAL
		ppuMode = ppu.PAL
		cyclesPerFrame = palCyclesPerFrame
	}

	cart, err := cartridge.LoadFile(*romFile)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	b := bus.New(mode)
	c := cpu.New(b)
	b.SetCPU(c)

	var backend render.Backend
	if *headless {
		backend = render.NewHeadlessBackend(*dumpDir, map[int]bool{30: true, 60: true, *frames: true})
	} else {
		backend = render.NewEbitenBackend()
	}

	p := ppu.New(b, backend, ppuMode)
	b.SetPPU(p)
	b.AttachPPURegisters(p.ReadRegister, p.WriteRegister)
	b.InjectCartridge(cart)

	b.Reset()

	if *headless {
		runHeadless(b, c, p, *frames, cyclesPerFrame)
		return
	}
	runWindowed(b, c, p, backend.(*render.EbitenBackend), cyclesPerFrame)
}

func runHeadless(b *bus.Bus, c *cpu.CPU, p *ppu.PPU, frames, cyclesPerFrame int) {
	for f := 0; f < frames; f++ {
		runFrame(c, p, cyclesPerFrame)
	}
}

func runFrame(c *cpu.CPU, p *ppu.PPU, cyclesPerFrame int) {
	remaining := cyclesPerFrame
	for remaining > 0 {
		spent := c.Run(remaining)
		remaining -= spent
		if spent == 0 {
			break
		}
	}
	p.Update()
}

type game struct {
	cpu            *cpu.CPU
	ppu            *ppu.PPU
	backend        *render.EbitenBackend
	cyclesPerFrame int
}

func (g *game) Update() error {
	runFrame(g.cpu, g.ppu, g.cyclesPerFrame)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backend.WindowImage(), g.backend.DrawOptions())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runWindowed(b *bus.Bus, c *cpu.CPU, p *ppu.PPU, backend *render.EbitenBackend, cyclesPerFrame int) {
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowSize(512, 480)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{cpu: c, ppu: p, backend: backend, cyclesPerFrame: cyclesPerFrame}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("ebiten run: %v", err)
	}
}
