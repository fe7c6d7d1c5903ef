package mappers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nesgo/nesemu/nesrom"
)

func writeTestROM(t *testing.T, prgBlocks, chrBlocks uint8, flags6 uint8, mapperID uint8) string {
	t.Helper()
	buf := make([]byte, 16+int(prgBlocks)*16384+int(chrBlocks)*8192)
	copy(buf, []byte("NES\x1A"))
	buf[4] = prgBlocks
	buf[5] = chrBlocks
	buf[6] = flags6 | (mapperID&0x0F)<<4
	buf[7] = (mapperID & 0xF0)
	for i := range buf[16:] {
		buf[16+i] = byte(i)
	}
	// Stamp a distinct marker at the start of each 16KB PRG block and 8KB
	// CHR block so bank-switch tests can tell banks apart even though the
	// fill pattern above repeats every 256 bytes.
	prgStart := 16
	for b := 0; b < int(prgBlocks); b++ {
		buf[prgStart+b*16384] = byte(0x40 + b)
	}
	chrStart := prgStart + int(prgBlocks)*16384
	for b := 0; b < int(chrBlocks); b++ {
		buf[chrStart+b*8192] = byte(0x80 + b)
	}

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing fixture ROM: %v", err)
	}
	return path
}

func loadROM(t *testing.T, prgBlocks, chrBlocks uint8, mapperID uint8) *nesrom.ROM {
	t.Helper()
	path := writeTestROM(t, prgBlocks, chrBlocks, 0, mapperID)
	r, err := nesrom.New(path)
	if err != nil {
		t.Fatalf("nesrom.New: %v", err)
	}
	return r
}

func TestGetUnknownMapper(t *testing.T) {
	r := loadROM(t, 1, 1, 200)
	if _, err := Get(r); err == nil {
		t.Fatal("Get succeeded for an unregistered mapper id, want error")
	}
}

func TestNromMirrorsSingleBank(t *testing.T) {
	r := loadROM(t, 1, 1, 0)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	lo := m.PrgRead(0x8000)
	hi := m.PrgRead(0xC000)
	if lo != hi {
		t.Fatalf("16KB NROM should mirror: PrgRead(0x8000)=%d PrgRead(0xC000)=%d", lo, hi)
	}
}

func TestUxromBankSwitch(t *testing.T) {
	r := loadROM(t, 4, 0, 2)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	before := m.PrgRead(0x8000)
	m.PrgWrite(0x8000, 1)
	after := m.PrgRead(0x8000)
	if before == after {
		t.Fatalf("UxROM bank switch had no effect: before=%d after=%d", before, after)
	}
	// $C000 is hard-wired to the last bank regardless of bank_select.
	last := m.PrgRead(0xC000)
	m.PrgWrite(0x8000, 3)
	if got := m.PrgRead(0xC000); got != last {
		t.Fatalf("UxROM $C000 changed after bank switch: got %d, want %d", got, last)
	}
}

func TestCnromChrBankSwitch(t *testing.T) {
	r := loadROM(t, 1, 4, 3)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	before := m.ChrRead(0)
	m.PrgWrite(0x8000, 2)
	after := m.ChrRead(0)
	if before == after {
		t.Fatalf("CNROM CHR bank switch had no effect: before=%d after=%d", before, after)
	}
}

func TestSxromPrgBankSwitch(t *testing.T) {
	r := loadROM(t, 8, 0, 1)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	sx := m.(*Sxrom)
	// ctrl defaults to PRG mode 3 (fix last bank, switch $8000-$BFFF), so
	// $8000 already tracks the bank register; pick values within the
	// 8-block ROM's valid range.
	writeShift(sx, 0xE000, 0x05)
	before := m.PrgRead(0x8000)
	writeShift(sx, 0xE000, 0x01)
	after := m.PrgRead(0x8000)
	if before == after {
		t.Fatalf("SxROM PRG bank switch had no effect: before=%d after=%d", before, after)
	}
}

// writeShift feeds a 5-bit value into MMC1's shift register one bit at a
// time, LSB first, as real software does.
func writeShift(m *Sxrom, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.PrgWrite(addr, (val>>i)&1)
	}
}

func TestSxromResetForcesPrgMode3(t *testing.T) {
	r := loadROM(t, 2, 0, 1)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	sx := m.(*Sxrom)
	sx.PrgWrite(0x8000, 0x80) // bit 7 set: reset
	if sx.ctrl&0x0C != 0x0C {
		t.Fatalf("ctrl = 0x%02x, want PRG-mode bits set", sx.ctrl)
	}
}

func TestTxromFixedLastBank(t *testing.T) {
	r := loadROM(t, 4, 0, 4)
	m, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.PrgWrite(0x8000, 0xFF) // bank-select write: logged and ignored
	wantOffset := uint32(3*16384 + 0x3FFF) // last 16KB page, last byte
	if got, want := m.PrgRead(0xFFFF), r.PrgRead(wantOffset); got != want {
		t.Fatalf("txrom $FFFF = %d, want %d (fixed last bank)", got, want)
	}
}
