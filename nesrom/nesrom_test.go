package nesrom

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestROM(t *testing.T, prgBlocks, chrBlocks uint8, flags6, flags7 uint8) string {
	t.Helper()
	buf := make([]byte, 16+int(prgBlocks)*PRG_BLOCK_SIZE+int(chrBlocks)*CHR_BLOCK_SIZE)
	copy(buf, []byte("NES\x1A"))
	buf[4] = prgBlocks
	buf[5] = chrBlocks
	buf[6] = flags6
	buf[7] = flags7

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing fixture ROM: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeTestROM(t, 2, 1, 0, 0)

	r, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.NumPrgBlocks() != 2 {
		t.Errorf("NumPrgBlocks = %d, want 2", r.NumPrgBlocks())
	}
	if len(r.prg) != 2*PRG_BLOCK_SIZE {
		t.Errorf("len(prg) = %d, want %d", len(r.prg), 2*PRG_BLOCK_SIZE)
	}
	if len(r.chr) != CHR_BLOCK_SIZE {
		t.Errorf("len(chr) = %d, want %d", len(r.chr), CHR_BLOCK_SIZE)
	}
}

func TestNewRejectsNES2(t *testing.T) {
	path := writeTestROM(t, 1, 1, 0, 0x08)

	if _, err := New(path); err == nil {
		t.Fatal("New succeeded on an NES 2.0 header, want error")
	}
}

func TestNewRejectsPAL(t *testing.T) {
	path := writeTestROM(t, 1, 1, 0, 0)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[9] = TV_SYSTEM
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path); err == nil {
		t.Fatal("New succeeded on a PAL header, want error")
	}
}

func TestNewRejectsBadMagic(t *testing.T) {
	path := writeTestROM(t, 1, 1, 0, 0)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	copy(raw, []byte("BAD\x00"))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path); err == nil {
		t.Fatal("New succeeded on a bad magic constant, want error")
	}
}

func TestPrgChrReadWrite(t *testing.T) {
	path := writeTestROM(t, 1, 1, 0, 0)
	r, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r.PrgWrite(0x10, 0x42)
	if got := r.PrgRead(0x10); got != 0x42 {
		t.Errorf("PrgRead = 0x%02x, want 0x42", got)
	}
	r.ChrWrite(0x20, 0x55)
	if got := r.ChrRead(0x20); got != 0x55 {
		t.Errorf("ChrRead = 0x%02x, want 0x55", got)
	}
}
