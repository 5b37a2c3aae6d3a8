// Package ppu implements the NES Picture Processing Unit: an 8-register
// memory-mapped device that, once per frame, reads nametables, attribute
// tables, pattern tables, OAM, and palette RAM via the Bus and emits tile
// blits to a RenderingBackend.
//
// This PPU renders a whole frame per Update call rather than dot-by-dot;
// sub-instruction, dot-accurate PPU timing is out of scope for this core.
package ppu

import (
	"log"

	"nescore/internal/render"
)

// Mode selects NTSC or PAL timing, which affects which background rows
// Update skips.
type Mode uint8

const (
	NTSC Mode = iota
	PAL
)

// Bus is the address space the PPU reads and writes through. It never
// touches CPU RAM or cartridge PRG directly, only VRAM/palette, OAM, and
// the NMI line.
type Bus interface {
	ReadVideoMem(addr uint16) uint8
	WriteVideoMem(addr uint16, v uint8)
	ReadSpriteMem(i uint8) uint8
	WriteSpriteMem(i uint8, v uint8)
	GenerateNMI()
}

// PPU is the Picture Processing Unit. Zero value is not usable; build one
// with New.
type PPU struct {
	bus     Bus
	backend render.Backend
	mode    Mode

	// CONTROL1 ($2000 write-only)
	activePage        uint8 // 0-3, selects $2000/$2400/$2800/$2C00
	addrIncrement     uint16
	spritePatternBase uint16
	bgPatternBase     uint16
	bigSprites        bool
	nmiEnable         bool

	// CONTROL2 ($2001 write-only)
	bgLeftColumnVisible      bool
	spritesLeftColumnVisible bool
	bgEnabled                bool
	spritesEnabled           bool

	// STATE ($2002 read-only)
	writeEnable    bool
	spriteOverflow bool
	sprite0Hit     bool
	vblank         bool

	oamAddr uint8

	writeToggle bool // shared by SCROLL and VIDMEM_ADDR, per real hardware
	scrollV     uint8
	scrollH     uint8

	vramAddr       uint16
	vramAddrHi     uint8
	vramReadBuffer uint8

	warnedBigSprite bool
	logger          *log.Logger
}

// New builds a PPU against bus, driving backend, timed for mode.
func New(bus Bus, backend render.Backend, mode Mode) *PPU {
	return &PPU{
		bus:           bus,
		backend:       backend,
		mode:          mode,
		addrIncrement: 1,
		writeEnable:   true,
		logger:        log.New(discard{}, "", 0),
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the PPU's diagnostic sink.
func (p *PPU) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(discard{}, "", 0)
	}
	p.logger = l
}

// SetBackend replaces the rendering sink that later Update calls draw into.
func (p *PPU) SetBackend(backend render.Backend) { p.backend = backend }

// Reset clears PPU flags. Register-file latches (scroll, VRAM address,
// OAM address) are cleared along with it; a fresh frame should be built
// with Update before anything observes them.
func (p *PPU) Reset() {
	p.activePage = 0
	p.addrIncrement = 1
	p.spritePatternBase = 0
	p.bgPatternBase = 0
	p.bigSprites = false
	p.nmiEnable = false
	p.bgLeftColumnVisible = false
	p.spritesLeftColumnVisible = false
	p.bgEnabled = false
	p.spritesEnabled = false
	p.writeEnable = true
	p.spriteOverflow = false
	p.sprite0Hit = false
	p.vblank = false
	p.oamAddr = 0
	p.writeToggle = false
	p.scrollV = 0
	p.scrollH = 0
	p.vramAddr = 0
	p.vramAddrHi = 0
	p.vramReadBuffer = 0
	p.warnedBigSprite = false
}

// ObservableState is a read-only introspection snapshot, for a debugger
// front-end.
type ObservableState struct {
	ActivePage        uint8
	BackgroundBase    uint16
	SpritePatternBase uint16
	ScrollH, ScrollV  uint8
	BackgroundEnabled bool
	SpritesEnabled    bool
	VBlank            bool
	Sprite0Hit        bool
	SpriteOverflow    bool
}

// Snapshot returns the PPU's externally observable state.
func (p *PPU) Snapshot() ObservableState {
	return ObservableState{
		ActivePage:        p.activePage,
		BackgroundBase:    p.bgPatternBase,
		SpritePatternBase: p.spritePatternBase,
		ScrollH:           p.scrollH,
		ScrollV:           p.scrollV,
		BackgroundEnabled: p.bgEnabled,
		SpritesEnabled:    p.spritesEnabled,
		VBlank:            p.vblank,
		Sprite0Hit:        p.sprite0Hit,
		SpriteOverflow:    p.spriteOverflow,
	}
}

// Update renders one frame: clears VBlank, builds the frame into the
// backend, sets VBlank, and if NMI-on-VBlank is enabled, asks the Bus to
// raise NMI. Called once per frame by the host driver, after its CPU
// slice.
func (p *PPU) Update() {
	p.vblank = false
	p.buildImage()
	p.vblank = true
	if p.nmiEnable {
		p.bus.GenerateNMI()
	}
}
