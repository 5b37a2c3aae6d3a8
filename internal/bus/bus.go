// Package bus implements the central address decoder that routes CPU and
// PPU memory accesses and owns every RAM-like array in the system: CPU
// RAM, PPU nametable VRAM, palette RAM, and sprite OAM. The cartridge
// exclusively owns ROM/CHR banks; the Bus only forwards into its mapper.
package bus

import (
	"log"

	"nescore/internal/cartridge"
	"nescore/internal/membank"
)

// Mode selects NTSC or PAL console timing.
type Mode uint8

const (
	NTSC Mode = iota
	PAL
)

// CPU is the back-reference the Bus holds to service generate_nmi and
// reset coordination. It mirrors cpu.CPU's own Bus-facing surface.
type CPU interface {
	RequestNMI()
	Reset()
}

// PPU is the back-reference the Bus holds for reset coordination.
type PPU interface {
	Reset()
}

// Bus is the owning hub: CPU and PPU hold only a non-owning reference back
// to it through their own narrower Bus interfaces (cpu.Bus, ppu.Bus).
type Bus struct {
	ram     *membank.Bank // 2 KiB CPU RAM, mirrored x4 across $0000-$1FFF
	vram    *membank.Bank // 2 KiB PPU nametable VRAM
	palette *membank.Bank // 32 B palette RAM
	oam     *membank.Bank // 256 B sprite OAM

	cart *cartridge.Cartridge
	cpu  CPU
	ppu  PPU

	ppuRead  func(n uint8) uint8
	ppuWrite func(n uint8, v uint8)

	mode   Mode
	logger *log.Logger
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// New builds a Bus with its owned memory arrays allocated. CPU, PPU, and
// a cartridge are wired in afterward with SetCPU, SetPPU, and
// InjectCartridge, since Bus, CPU, and PPU are constructed in that order
// before any of them can reference each other.
func New(mode Mode) *Bus {
	return &Bus{
		ram:     membank.New(0x0800),
		vram:    membank.New(0x0800),
		palette: membank.New(0x20),
		oam:     membank.New(0x100),
		mode:    mode,
		logger:  log.New(discard{}, "", 0),
	}
}

// SetLogger replaces the Bus's diagnostic sink.
func (b *Bus) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(discard{}, "", 0)
	}
	b.logger = l
}

// SetCPU wires the CPU back-reference used to service NMI requests and
// reset coordination.
func (b *Bus) SetCPU(c CPU) { b.cpu = c }

// SetPPU wires the PPU back-reference used for reset coordination.
func (b *Bus) SetPPU(p PPU) { b.ppu = p }

// AttachPPURegisters wires the PPU's register read/write dispatch. Kept
// as plain function values rather than an interface so the Bus doesn't
// need to import the PPU package's register-number type.
func (b *Bus) AttachPPURegisters(read func(n uint8) uint8, write func(n uint8, v uint8)) {
	b.ppuRead = read
	b.ppuWrite = write
}

// InjectCartridge rebinds the cartridge reference. Any in-flight PPU/CPU
// state that depended on the prior cartridge's contents (bank-switch
// state, CHR RAM contents) went with the old Cartridge value; the Bus
// itself holds nothing cartridge-derived to clear.
func (b *Bus) InjectCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
}

// GetMode returns the console timing mode.
func (b *Bus) GetMode() Mode { return b.mode }

// Reset reinitializes CPU registers and clears PPU flags. It is illegal
// to call mid-instruction; the host must only reset at an instruction
// boundary between run calls.
func (b *Bus) Reset() {
	if b.cpu != nil {
		b.cpu.Reset()
	}
	if b.ppu != nil {
		b.ppu.Reset()
	}
}

// GenerateNMI forwards to the CPU, which latches it and services it at
// the next instruction boundary.
func (b *Bus) GenerateNMI() {
	if b.cpu != nil {
		b.cpu.RequestNMI()
	}
}

// ReadMem implements the CPU-visible address space $0000-$FFFF.
func (b *Bus) ReadMem(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read(int(addr) & 0x07FF)
	case addr < 0x4000:
		return b.readPPURegister(addr)
	case addr < 0x4020:
		return 0 // APU/IO region, unused in this core
	case addr < 0x6000:
		return 0 // expansion region, unused
	case addr < 0x8000:
		if b.cart == nil {
			return 0
		}
		v, err := b.cart.Mapper().ReadRAM(addr)
		if err != nil {
			b.logger.Printf("bus: cartridge RAM read at $%04X: %v", addr, err)
			return 0
		}
		return v
	default:
		if b.cart == nil {
			return 0
		}
		v, err := b.cart.Mapper().ReadROM(addr)
		if err != nil {
			b.logger.Printf("bus: ROM read at $%04X: %v", addr, err)
			return 0
		}
		return v
	}
}

// WriteMem implements the CPU-visible address space $0000-$FFFF.
func (b *Bus) WriteMem(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write(int(addr)&0x07FF, v)
	case addr < 0x4000:
		b.writePPURegister(addr, v)
	case addr < 0x4020:
		// APU/IO region, unused in this core
	case addr < 0x6000:
		// expansion region, unused
	case addr < 0x8000:
		if b.cart == nil {
			return
		}
		if err := b.cart.Mapper().WriteRAM(addr, v); err != nil {
			b.logger.Printf("bus: cartridge RAM write at $%04X: %v", addr, err)
		}
	default:
		// NROM has no bank-control registers to hit on a ROM write; the
		// CPU store is silently absorbed, matching real hardware. Mapper
		// Flash is never reached through ordinary CPU stores.
	}
}

// readPPURegister and writePPURegister dispatch through the function
// values wired by AttachPPURegisters; before the PPU is attached,
// $2000-$3FFF behaves as open bus.
func (b *Bus) readPPURegister(addr uint16) uint8 {
	if b.ppuRead == nil {
		return 0
	}
	return b.ppuRead(uint8(addr & 0x0007))
}

func (b *Bus) writePPURegister(addr uint16, v uint8) {
	if b.ppuWrite == nil {
		return
	}
	b.ppuWrite(uint8(addr&0x0007), v)
}

// ReadVideoMem and WriteVideoMem implement the PPU-visible address space:
// pattern tables via the cartridge's mapper, nametables in Bus-owned
// VRAM, and palette RAM with the $3F10/14/18/1C mirror-to-$3F00/04/08/0C
// alias.
func (b *Bus) ReadVideoMem(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if b.cart == nil {
			return 0
		}
		return b.cart.Mapper().ReadVROM(addr)
	case addr < 0x3F00:
		return b.vram.Read(b.nametableOffset(addr))
	default:
		return b.palette.Read(paletteOffset(addr))
	}
}

func (b *Bus) WriteVideoMem(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if b.cart == nil {
			return
		}
		b.cart.Mapper().WriteVROM(addr, v)
	case addr < 0x3F00:
		b.vram.Write(b.nametableOffset(addr), v)
	default:
		b.palette.Write(paletteOffset(addr), v)
	}
}

// nametableOffset maps a $2000-$3EFF address into the 2 KiB VRAM array
// according to the cartridge's mirroring mode.
func (b *Bus) nametableOffset(addr uint16) int {
	a := (addr - 0x2000) % 0x1000 // fold $3000-$3EFF mirror of $2000-$2EFF
	table := a / 0x0400
	offset := int(a % 0x0400)

	horizontal := true
	if b.cart != nil {
		horizontal = b.cart.MirrorMode() == cartridge.MirrorHorizontal
	}

	var page int
	if horizontal {
		page = int(table) / 2 // tables 0,1 -> page 0; tables 2,3 -> page 1
	} else {
		page = int(table) % 2 // tables 0,2 -> page 0; tables 1,3 -> page 1
	}
	return page*0x0400 + offset
}

// paletteOffset maps a $3F00-$3FFF address into the 32-byte palette array,
// aliasing the four sprite-palette backdrop entries onto the background
// backdrop entries per real PPU behavior.
func paletteOffset(addr uint16) int {
	a := int(addr-0x3F00) % 0x20
	switch a {
	case 0x10, 0x14, 0x18, 0x1C:
		a -= 0x10
	}
	return a
}

// ReadSpriteMem and WriteSpriteMem directly index OAM, wrapping mod 256.
func (b *Bus) ReadSpriteMem(i uint8) uint8     { return b.oam.Read(int(i)) }
func (b *Bus) WriteSpriteMem(i uint8, v uint8) { b.oam.Write(int(i), v) }
