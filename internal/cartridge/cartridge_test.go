package cartridge

import (
	"bytes"
	"testing"

	"nescore/internal/membank"
	"nescore/internal/nerr"
)

func newTestCartridge(t *testing.T, prgBanks int) *Cartridge {
	t.Helper()
	banks := make([]*membank.Bank, prgBanks)
	for i := range banks {
		banks[i] = membank.New(prgBankSize)
	}
	chr := membank.New(chrBankSize)
	cart, err := NewCartridge(banks, chr, true, MirrorHorizontal, 0)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	return cart
}

func TestReadROMSelectsBankByAddress(t *testing.T) {
	cart := newTestCartridge(t, 2)
	cart.PRGBank(0).Write(0, 0xAA)
	cart.PRGBank(1).Write(0, 0xBB)

	low, err := cart.Mapper().ReadROM(0x8000)
	if err != nil || low != 0xAA {
		t.Errorf("ReadROM($8000) = %#02x, %v, want $AA, nil", low, err)
	}
	high, err := cart.Mapper().ReadROM(0xC000)
	if err != nil || high != 0xBB {
		t.Errorf("ReadROM($C000) = %#02x, %v, want $BB, nil", high, err)
	}
}

func TestReadROMMirrorsSingleBank(t *testing.T) {
	cart := newTestCartridge(t, 1)
	cart.PRGBank(0).Write(0, 0x42)

	low, _ := cart.Mapper().ReadROM(0x8000)
	high, _ := cart.Mapper().ReadROM(0xC000)
	if low != 0x42 || high != 0x42 {
		t.Errorf("single-bank NROM should mirror: $8000=%#02x $C000=%#02x", low, high)
	}
}

func TestReadROMBelow8000IsIllegalArgument(t *testing.T) {
	cart := newTestCartridge(t, 1)
	_, err := cart.Mapper().ReadROM(0x7FFF)
	if !nerr.Is(err, nerr.IllegalArgument) {
		t.Errorf("ReadROM($7FFF) err = %v, want IllegalArgument", err)
	}
}

func TestRAMAccessIsIllegalOperation(t *testing.T) {
	cart := newTestCartridge(t, 1)
	if _, err := cart.Mapper().ReadRAM(0x6000); !nerr.Is(err, nerr.IllegalOperation) {
		t.Errorf("ReadRAM err = %v, want IllegalOperation", err)
	}
	if err := cart.Mapper().WriteRAM(0x6000, 0x01); !nerr.Is(err, nerr.IllegalOperation) {
		t.Errorf("WriteRAM err = %v, want IllegalOperation", err)
	}
}

func TestFlashWithinOneBank(t *testing.T) {
	cart := newTestCartridge(t, 2)
	if err := cart.Mapper().Flash(0x8000, []byte{0x01, 0x02, 0x03}); err != nil {
		t.Fatalf("Flash: %v", err)
	}
	for i, want := range []byte{0x01, 0x02, 0x03} {
		if got := cart.PRGBank(0).Read(i); got != want {
			t.Errorf("PRGBank(0)[%d] = %#02x, want %#02x", i, got, want)
		}
	}
}

func TestFlashSplitsAcross0xC000(t *testing.T) {
	cart := newTestCartridge(t, 2)
	payload := make([]byte, 8)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	// Start 5 bytes before $C000, so 5 land in bank 0 and 3 spill into bank 1.
	addr := uint16(0xC000 - 5)
	if err := cart.Mapper().Flash(addr, payload); err != nil {
		t.Fatalf("Flash: %v", err)
	}

	tailOffset := prgBankSize - 5
	for i := 0; i < 5; i++ {
		if got := cart.PRGBank(0).Read(tailOffset + i); got != payload[i] {
			t.Errorf("PRGBank(0)[%d] = %#02x, want %#02x", tailOffset+i, got, payload[i])
		}
	}
	for i := 0; i < 3; i++ {
		if got := cart.PRGBank(1).Read(i); got != payload[5+i] {
			t.Errorf("PRGBank(1)[%d] = %#02x, want %#02x", i, got, payload[5+i])
		}
	}
}

func TestFlashOverflowIsSizeOverflow(t *testing.T) {
	cart := newTestCartridge(t, 1)
	huge := make([]byte, prgBankSize+1)
	err := cart.Mapper().Flash(0xC000, huge)
	if !nerr.Is(err, nerr.SizeOverflow) {
		t.Errorf("Flash overflow err = %v, want SizeOverflow", err)
	}
}

func TestUnsupportedMapperFailsLoudly(t *testing.T) {
	banks := []*membank.Bank{membank.New(prgBankSize)}
	_, err := NewCartridge(banks, nil, false, MirrorHorizontal, 1)
	if !nerr.Is(err, nerr.UnsupportedMapper) {
		t.Errorf("NewCartridge(mapper=1) err = %v, want UnsupportedMapper", err)
	}
}

func buildINES(prgBanks, chrBanks int, flags6 uint8) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1A})
	buf.WriteByte(uint8(prgBanks))
	buf.WriteByte(uint8(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(0) // Flags7
	buf.Write(make([]byte, 8))
	buf.Write(make([]byte, prgBanks*prgBankSize))
	buf.Write(make([]byte, chrBanks*chrBankSize))
	return buf.Bytes()
}

func TestLoadParsesHeaderAndBanks(t *testing.T) {
	data := buildINES(2, 1, 0x01) // vertical mirroring
	cart, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cart.PRGBankCount() != 2 {
		t.Errorf("PRGBankCount() = %d, want 2", cart.PRGBankCount())
	}
	if cart.MirrorMode() != MirrorVertical {
		t.Errorf("MirrorMode() = %v, want MirrorVertical", cart.MirrorMode())
	}
	if cart.HasCHRRAM() {
		t.Errorf("HasCHRRAM() = true, want false (CHR banks declared)")
	}
}

func TestLoadWithZeroCHRBanksAllocatesCHRRAM(t *testing.T) {
	data := buildINES(1, 0, 0x00)
	cart, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cart.HasCHRRAM() {
		t.Errorf("HasCHRRAM() = false, want true (zero CHR banks declared)")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0)
	data[0] = 'X'
	if _, err := Load(bytes.NewReader(data)); !nerr.Is(err, nerr.IllegalArgument) {
		t.Errorf("Load with bad magic err = %v, want IllegalArgument", err)
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	data := buildINES(1, 1, 0x10) // mapper 1 in Flags6 high nibble
	if _, err := Load(bytes.NewReader(data)); !nerr.Is(err, nerr.UnsupportedMapper) {
		t.Errorf("Load with mapper 1 err = %v, want UnsupportedMapper", err)
	}
}
