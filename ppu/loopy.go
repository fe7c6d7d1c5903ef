package ppu

// loopy struct will store v and t (loopy registers) and allow
// extracting and setting the various components as described below:
// yyy NN YYYYY XXXXX
// ||| || ||||| +++++-- coarse X scroll
// ||| || +++++-------- coarse Y scroll
// ||| ++-------------- nametable select
// +++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

const (
	maskCoarseX = 0x001F
	maskCoarseY = 0x03E0
	maskNT      = 0x0C00
	maskFineY   = 0x7000
	maskXScroll = 0x0400 | maskCoarseX // nametable-X bit + coarse X
	maskYScroll = maskFineY | 0x0800 | maskCoarseY
)

func (l *loopy) coarseX() uint16 {
	return l.data & maskCoarseX
}

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data &^ maskCoarseX) | (n & maskCoarseX)
}

func (l *loopy) incrementCoarseX() {
	l.data = (l.data &^ maskCoarseX) | ((l.coarseX() + 1) & maskCoarseX)
}

func (l *loopy) coarseY() uint16 {
	return (l.data & maskCoarseY) >> 5
}

func (l *loopy) incrementCoarseY() {
	l.setCoarseY(l.coarseY() + 1)
}

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data &^ maskCoarseY) | ((n << 5) & maskCoarseY)
}

func (l *loopy) nametable() uint16 {
	return (l.data & maskNT) >> 10
}

func (l *loopy) setNametable(n uint16) {
	l.data = (l.data &^ maskNT) | ((n << 10) & maskNT)
}

func (l *loopy) nametableX() uint16 {
	return (l.data & 0x0400) >> 10
}

func (l *loopy) toggleNametableX() {
	l.data ^= 0x0400
}

func (l *loopy) nametableY() uint16 {
	return (l.data & 0x0800) >> 11
}

func (l *loopy) toggleNametableY() {
	l.data ^= 0x0800
}

func (l *loopy) fineY() uint16 {
	return (l.data & maskFineY) >> 12
}

func (l *loopy) incrementFineY() {
	l.setFineY(l.fineY() + 1)
}

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data &^ maskFineY) | ((n << 12) & maskFineY)
}

// address returns the 14-bit VRAM address the PPU's ADDR/DATA ports expose.
func (l *loopy) address() uint16 {
	return l.data & 0x3FFF
}

// setHighByteClearBit implements the first ADDR write: bits 13-8 from val's
// low 6 bits; bit 14 (which doesn't exist in the real 15-bit V/T) is cleared.
func (l *loopy) setHighByteClearBit(val uint8) {
	l.data = (l.data & 0x00FF) | (uint16(val&0x3F) << 8)
}

func (l *loopy) setLowByte(val uint8) {
	l.data = (l.data & 0xFF00) | uint16(val)
}

// addOffset implements PPUDATA's post-increment.
func (l *loopy) addOffset(n uint8) {
	l.data += uint16(n)
}

// scrollX implements the coarse-X increment performed at every 8-dot
// boundary during background fetches (apart from dot 256), including the
// coarse-X=31 wraparound into the next horizontal nametable.
func (l *loopy) scrollX() {
	if l.coarseX() == 31 {
		l.setCoarseX(0)
		l.toggleNametableX()
	} else {
		l.incrementCoarseX()
	}
}

// scrollY implements the fine/coarse-Y increment performed once per
// scanline at dot 256: coarse-Y 29 wraps and flips the vertical nametable
// (the last row of real tiles); coarse-Y 31 wraps without flipping (games
// that scroll into the unused attribute rows beyond 29 are expected to
// land back at 0 without toggling nametables).
func (l *loopy) scrollY() {
	if l.fineY() < 7 {
		l.incrementFineY()
		return
	}
	l.setFineY(0)
	switch l.coarseY() {
	case 29:
		l.setCoarseY(0)
		l.toggleNametableY()
	case 31:
		l.setCoarseY(0)
	default:
		l.incrementCoarseY()
	}
}

// copyX copies the X-scroll bits (coarse X and nametable-X) from src, as
// happens at dot 257 of every visible/prerender scanline.
func (l *loopy) copyX(src loopy) {
	l.data = (l.data &^ maskXScroll) | (src.data & maskXScroll)
}

// copyY copies the Y-scroll bits (fine Y, coarse Y, nametable-Y) from src,
// as happens at dots 280-304 of the prerender scanline.
func (l *loopy) copyY(src loopy) {
	l.data = (l.data &^ maskYScroll) | (src.data & maskYScroll)
}

// ntAddr returns the nametable-byte fetch address for the current tile.
func (l *loopy) ntAddr() uint16 {
	return 0x2000 | (l.data & 0x0FFF)
}

// atAddr returns the attribute-byte fetch address for the current tile: each
// byte covers a 4x4-tile (32x32 pixel) region, so coarse X/Y are divided by 4.
func (l *loopy) atAddr() uint16 {
	atIndex := (l.coarseY()/4)<<3 | (l.coarseX() / 4)
	return 0x2000 | 0x3C0 | (l.nametable() << 10) | atIndex
}
