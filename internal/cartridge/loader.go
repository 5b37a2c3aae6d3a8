package cartridge

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"nescore/internal/membank"
	"nescore/internal/nerr"
)

const (
	iNESHeaderSize = 16
	trainerSize    = 512
)

var iNESMagic = [4]byte{'N', 'E', 'S', 0x1A}

// iNESHeader is the 16-byte header at the start of every .nes file.
type iNESHeader struct {
	Magic    [4]byte
	PRGBanks uint8
	CHRBanks uint8
	Flags6   uint8
	Flags7   uint8
	_        [8]byte // PRG-RAM size, TV system, padding: unused by this core
}

// LoadFile maps filename into memory and parses it as an iNES ROM image.
// Mapping rather than slurping keeps large CHR-heavy ROMs out of the Go heap
// until their banks are actually copied into membank.Bank storage.
func LoadFile(filename string) (*Cartridge, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nerr.Wrap(nerr.IllegalArgument, err, "opening ROM file %q", filename)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nerr.Wrap(nerr.IllegalArgument, err, "stat ROM file %q", filename)
	}
	if info.Size() < iNESHeaderSize {
		return nil, nerr.New(nerr.IllegalArgument, "ROM file %q is too short to hold an iNES header", filename)
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nerr.Wrap(nerr.IllegalArgument, err, "mmap ROM file %q", filename)
	}
	defer region.Unmap()

	return Load(bytes.NewReader(region))
}

// Load parses an iNES image from r into a Cartridge.
func Load(r io.Reader) (*Cartridge, error) {
	var header iNESHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, nerr.Wrap(nerr.IllegalArgument, err, "reading iNES header")
	}
	if header.Magic != iNESMagic {
		return nil, nerr.New(nerr.IllegalArgument, "bad iNES magic %v", header.Magic)
	}
	if header.PRGBanks == 0 {
		return nil, nerr.New(nerr.IllegalArgument, "ROM declares zero PRG banks")
	}

	if header.Flags6&0x04 != 0 {
		trainer := make([]byte, trainerSize)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, nerr.Wrap(nerr.IllegalArgument, err, "reading trainer")
		}
	}

	prgBanks := make([]*membank.Bank, header.PRGBanks)
	for i := range prgBanks {
		buf := make([]byte, prgBankSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nerr.Wrap(nerr.IllegalArgument, err, "reading PRG bank %d", i)
		}
		prgBanks[i] = membank.NewFrom(buf)
	}

	var chrBank *membank.Bank
	chrIsRAM := header.CHRBanks == 0
	if chrIsRAM {
		chrBank = membank.New(chrBankSize)
	} else {
		buf := make([]byte, chrBankSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nerr.Wrap(nerr.IllegalArgument, err, "reading CHR bank")
		}
		chrBank = membank.NewFrom(buf)
		if header.CHRBanks > 1 {
			// This core's CartridgeData is scoped to zero-or-one CHR bank;
			// drain additional declared banks so the stream stays aligned
			// for any trailing data, without exposing them to the mapper.
			discard := make([]byte, int(header.CHRBanks-1)*chrBankSize)
			io.ReadFull(r, discard)
		}
	}

	mirror := MirrorHorizontal
	if header.Flags6&0x01 != 0 {
		mirror = MirrorVertical
	}

	mapperID := header.Flags6 >> 4

	return NewCartridge(prgBanks, chrBank, chrIsRAM, mirror, mapperID)
}
