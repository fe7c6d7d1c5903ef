// Package mappers implements the cartridge mapper chips that translate
// CPU/PPU addresses into offsets within a ROM's PRG and CHR banks. System
// RAM is not a mapper concern here: it belongs to the MMU, which owns the
// NES's fixed 2KB of work RAM regardless of which cartridge is plugged in.
package mappers

import (
	"fmt"

	"github.com/nesgo/nesemu/nesrom"
)

// allMappers is a global registry of mapper constructors keyed by iNES
// mapper number, populated by each variant file's init().
var allMappers = map[uint16]func() Mapper{}

func registerMapper(id uint16, ctor func() Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	allMappers[id] = ctor
}

// Get constructs and initializes the mapper named by rom's header, or
// reports an error if no mapper is registered for that id.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	ctor, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("unsupported mapper id %d", id)
	}
	m := ctor()
	m.Init(rom)
	return m, nil
}

// Mapper is the interface the console's MMU and VRAM use to reach
// cartridge-resident PRG and CHR data. PrgRead/PrgWrite take full CPU
// addresses (0x6000-0xFFFF); ChrRead/ChrWrite take full PPU pattern-table
// addresses (0x0000-0x1FFF). Each mapper slices its own ROM/RAM arrays
// using whatever bank registers its cartridge writes select.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	MirroringMode() uint8
	HasSaveRAM() bool
}

// baseMapper implements the parts of Mapper that are identical across every
// mapper chip (identity, ROM handle, mirroring/save-RAM passthrough to the
// header) so variant files only need to implement bank switching.
type baseMapper struct {
	id   uint16
	name string
	rom  *nesrom.ROM
}

func newBaseMapper(id uint16, name string) baseMapper {
	return baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16     { return bm.id }
func (bm *baseMapper) Name() string   { return bm.name }
func (bm *baseMapper) String() string { return bm.name }

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
}

func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
