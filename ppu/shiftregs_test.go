package ppu

import "testing"

func TestBgLatchFill(t *testing.T) {
	var l bgLatch
	l.fill(0x12, 0x34)
	if l.lowTile != 0x12 || l.highTile != 0x34 {
		t.Errorf("Got %02x, %02x, want %02x, %02x", l.lowTile, l.highTile, 0x12, 0x34)
	}
}

func TestBgShiftColor(t *testing.T) {
	s := bgShift{lowTile: 0x8000, highTile: 0x0000}
	if got := s.color(15); got != 0b01 {
		t.Errorf("Got color(15) = %02b, want %02b", got, 0b01)
	}

	s = bgShift{lowTile: 0x0000, highTile: 0x8000}
	if got := s.color(15); got != 0b10 {
		t.Errorf("Got color(15) = %02b, want %02b", got, 0b10)
	}
}

func TestAtShiftColor(t *testing.T) {
	s := atShift{lowTile: 0x01, highTile: 0x01}
	if got := s.color(0b01, 0); got != 0b1101 {
		t.Errorf("Got color() = %04b, want %04b", got, 0b1101)
	}
}

func TestInternalRegsReloadAndShift(t *testing.T) {
	var r internalRegs
	r.bgLatch.fill(0xAA, 0x55)
	r.reload(0b10)
	if r.bgShift.lowTile&0x00FF != 0xAA || r.bgShift.highTile&0x00FF != 0x55 {
		t.Errorf("Got low/high shift = %04x/%04x, want 00AA/0055", r.bgShift.lowTile, r.bgShift.highTile)
	}
	if r.atLatch.lowB {
		t.Errorf("expected atLatch.lowB false for atEntry bit 0 unset")
	}
	if !r.atLatch.highB {
		t.Errorf("expected atLatch.highB true for atEntry bit 1 set")
	}

	r.shift()
	if r.atShift.lowTile != 0 || r.atShift.highTile != 1 {
		t.Errorf("Got atShift = %d/%d after one shift, want 0/1", r.atShift.lowTile, r.atShift.highTile)
	}
	if r.bgShift.lowTile != 0xAA<<1 || r.bgShift.highTile != 0x55<<1 {
		t.Errorf("Got bgShift = %04x/%04x after shift, want %04x/%04x", r.bgShift.lowTile, r.bgShift.highTile, uint16(0xAA)<<1, uint16(0x55)<<1)
	}
}
