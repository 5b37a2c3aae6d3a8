package ppu

import (
	"testing"

	"nescore/internal/render"
)

type fakeBus struct {
	vram    [0x4000]uint8
	oam     [256]uint8
	nmiHits int
}

func (b *fakeBus) ReadVideoMem(addr uint16) uint8     { return b.vram[addr&0x3FFF] }
func (b *fakeBus) WriteVideoMem(addr uint16, v uint8) { b.vram[addr&0x3FFF] = v }
func (b *fakeBus) ReadSpriteMem(i uint8) uint8        { return b.oam[i] }
func (b *fakeBus) WriteSpriteMem(i uint8, v uint8)    { b.oam[i] = v }
func (b *fakeBus) GenerateNMI()                       { b.nmiHits++ }

type fakeBackend struct {
	drawCalls int
}

func (f *fakeBackend) SetBackground(uint8)                        {}
func (f *fakeBackend) SetSymbol(render.Layer, int, int, [64]byte) {}
func (f *fakeBackend) Draw()                                       { f.drawCalls++ }

func newTestPPU() (*PPU, *fakeBus) {
	bus := &fakeBus{}
	backend := &fakeBackend{}
	return New(bus, backend, NTSC), bus
}

func TestVBlankReadClearsFlagAndToggle(t *testing.T) {
	p, _ := newTestPPU()
	p.vblank = true
	p.sprite0Hit = true
	p.writeToggle = true

	status := p.ReadRegister(2)

	if status&0x80 == 0 {
		t.Error("STATE read did not report VBlank set")
	}
	if p.vblank {
		t.Error("VBlank flag not cleared after STATE read")
	}
	if p.writeToggle {
		t.Error("write toggle not reset after STATE read")
	}
}

func TestRegisterMirroring(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(0, 0x80) // n=0 (CONTROL1): enable NMI
	if !p.nmiEnable {
		t.Fatal("CONTROL1 write via n=0 did not take effect")
	}
	p.nmiEnable = false
	p.WriteRegister(8, 0x80) // n=8 mirrors n=0
	if !p.nmiEnable {
		t.Error("CONTROL1 write via mirrored address n=8 did not take effect")
	}
}

func TestScrollWriteOrderIsVerticalThenHorizontal(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(5, 0x11) // first write -> vertical
	p.WriteRegister(5, 0x22) // second write -> horizontal

	if p.scrollV != 0x11 {
		t.Errorf("scrollV = $%02X, want $11", p.scrollV)
	}
	if p.scrollH != 0x22 {
		t.Errorf("scrollH = $%02X, want $22", p.scrollH)
	}
	if p.writeToggle {
		t.Error("write toggle should be back to first-write state")
	}
}

func TestVideoMemAddrLatchIsHighThenLow(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(6, 0x23)
	p.WriteRegister(6, 0x45)

	if p.vramAddr != 0x2345 {
		t.Errorf("vramAddr = $%04X, want $2345", p.vramAddr)
	}
}

func TestVideoMemDataReadIsDelayedOutsidePalette(t *testing.T) {
	p, bus := newTestPPU()
	bus.vram[0x2000] = 0xAB
	bus.vram[0x2001] = 0xCD
	p.WriteRegister(6, 0x20)
	p.WriteRegister(6, 0x00)

	first := p.ReadRegister(7)
	second := p.ReadRegister(7)

	if first != 0 {
		t.Errorf("first buffered read = $%02X, want $00 (stale buffer)", first)
	}
	if second != 0xAB {
		t.Errorf("second read = $%02X, want $AB", second)
	}
}

func TestVideoMemDataReadIsImmediateForPalette(t *testing.T) {
	p, bus := newTestPPU()
	bus.vram[0x3F00] = 0x0F
	p.WriteRegister(6, 0x3F)
	p.WriteRegister(6, 0x00)

	got := p.ReadRegister(7)
	if got != 0x0F {
		t.Errorf("palette read = $%02X, want $0F", got)
	}
}

func TestVideoMemDataWriteAutoIncrements(t *testing.T) {
	p, bus := newTestPPU()
	p.WriteRegister(6, 0x20)
	p.WriteRegister(6, 0x00)
	p.WriteRegister(7, 0x77)

	if bus.vram[0x2000] != 0x77 {
		t.Errorf("vram[$2000] = $%02X, want $77", bus.vram[0x2000])
	}
	if p.vramAddr != 0x2001 {
		t.Errorf("vramAddr after write = $%04X, want $2001", p.vramAddr)
	}
}

func TestUpdateRaisesNMIWhenEnabled(t *testing.T) {
	p, bus := newTestPPU()
	p.nmiEnable = true

	p.Update()

	if bus.nmiHits != 1 {
		t.Errorf("nmiHits = %d, want 1", bus.nmiHits)
	}
	if !p.vblank {
		t.Error("VBlank not set after Update")
	}
}

func TestUpdateSkipsNMIWhenDisabled(t *testing.T) {
	p, bus := newTestPPU()
	p.nmiEnable = false

	p.Update()

	if bus.nmiHits != 0 {
		t.Errorf("nmiHits = %d, want 0", bus.nmiHits)
	}
}

func TestSprite0HitClearsEveryFrameEvenWhenSpritesDisabled(t *testing.T) {
	p, _ := newTestPPU()
	p.sprite0Hit = true
	p.spritesEnabled = false

	p.Update()

	if p.sprite0Hit {
		t.Error("sprite0Hit should clear at the start of every frame, sprites enabled or not")
	}
}

func TestStateReportsWriteDisabled(t *testing.T) {
	p, _ := newTestPPU()
	p.writeEnable = false

	status := p.ReadRegister(2)

	if status&0x10 == 0 {
		t.Error("STATE read did not report bit 4 (write-disabled) set")
	}
}

func TestStateOmitsWriteDisabledWhenEnabled(t *testing.T) {
	p, _ := newTestPPU()

	status := p.ReadRegister(2)

	if status&0x10 != 0 {
		t.Error("STATE read reported write-disabled while writeEnable defaults true")
	}
}

func TestOAMAddrAutoIncrementsOnDataWrite(t *testing.T) {
	p, bus := newTestPPU()
	p.WriteRegister(3, 0x10) // SPRMEM_ADDR
	p.WriteRegister(4, 0x99) // SPRMEM_DATA

	if bus.oam[0x10] != 0x99 {
		t.Errorf("oam[$10] = $%02X, want $99", bus.oam[0x10])
	}
	if p.oamAddr != 0x11 {
		t.Errorf("oamAddr = $%02X, want $11", p.oamAddr)
	}
}
