package ppu

type priority uint8

const (
	FRONT priority = iota
	BACK
)

type oam struct {
	// Y position of top of sprite. Sprite data is delayed by one
	// scanline; you must subtract 1 from the sprite's Y
	// coordinate before writing it here. Hide a sprite by moving
	// it down offscreen, by writing any values between #$EF-#$FF
	// here. Sprites are never displayed on the first line of the
	// picture, and it is impossible to place a sprite partially
	// off the top of the screen.
	y uint8
	// For 8x8 sprites, this is the tile number of this sprite
	// within the pattern table selected in bit 3 of PPUCTRL
	// ($2000). For 8x16 sprites (bit 5 of PPUCTRL set), the PPU
	// ignores the pattern table selection and selects a pattern
	// table from bit 0 of this number.
	tileId uint8
	// See above

	palette      uint8
	renderP      priority
	flipV, flipH bool

	// X position of left side of sprite. X-scroll values of
	// $F9-FF results in parts of the sprite to be past the right
	// edge of the screen, thus invisible. It is not possible to
	// have a sprite partially visible on the left edge. Instead,
	// left-clipping through PPUMASK ($2001) can be used to
	// simulate this effect.
	x uint8

	// index is this sprite's slot (0-63) in primary OAM; index 0 is the
	// one sprite capable of triggering a sprite-0 hit.
	index uint8
	// lowByte/highByte are the pattern-table bytes fetched for this
	// sprite during the dot-321..340 prefetch window.
	lowByte, highByte uint8
}

func OAMFromBytes(in []uint8) oam {
	// 76543210 -> in[2]
	// ||||||||
	// ||||||++- Palette (4 to 7) of sprite
	// |||+++--- Unimplemented (read 0)
	// ||+------ Priority (0: in front of background; 1: behind background)
	// |+------- Flip sprite horizontally
	// +-------- Flip sprite vertically
	return oam{
		y:       in[0],
		tileId:  in[1],
		palette: (in[2] & 0x03),
		renderP: priority((in[2] & 0x20) >> 5),
		flipH:   ((in[2] & 0x40) >> 6) == 1,
		flipV:   ((in[2] & 0x80) >> 7) == 1,
		x:       in[3],
	}
}

func (o oam) attributes() uint8 {
	a := o.palette | uint8(o.renderP<<5)
	if o.flipH {
		a |= (1 << 6)
	}
	if o.flipV {
		a |= (1 << 7)
	}

	return a
}

// spriteAt builds the evaluated-sprite view of primary OAM slot index,
// used during secondary OAM evaluation (dot 257) and sprite prefetch.
func spriteAt(index uint8, primary [OAM_SIZE]uint8) oam {
	base := int(index) * 4
	o := OAMFromBytes(primary[base : base+4])
	o.index = index
	return o
}

// inBoundingBox reports whether screen column x falls within this sprite's
// 8-pixel-wide horizontal span.
func (o oam) inBoundingBox(x uint8) bool {
	return x >= o.x && uint16(x) < uint16(o.x)+8
}

// patternAddr returns the pattern-table byte address (low plane; the high
// plane is 8 bytes further) for this sprite's row on the given scanline.
// spriteSize is 8 or 16; for 8x16 sprites tileId's low bit selects the
// pattern table and its remaining bits select the tile pair.
func (o oam) patternAddr(spritePatternTable uint16, spriteSize uint16, scanline uint16) uint16 {
	var ptIndex uint16
	if spriteSize == 8 {
		ptIndex = spritePatternTable + 16*uint16(o.tileId)
	} else {
		tileNum := o.tileId &^ 1
		base := uint16(0)
		if o.tileId&1 == 1 {
			base = 0x1000
		}
		ptIndex = base + 16*uint16(tileNum)
	}

	row := scanline - uint16(o.y)
	if o.flipV {
		row = spriteSize - 1 - row
	}

	rowOffset := uint16(0)
	if row >= 8 {
		rowOffset = 8
	}

	return ptIndex + row + rowOffset
}
