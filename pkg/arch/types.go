// Package arch models the target FPGA device: the tile grid, block types
// with their physical pin placement, placed blocks, and per-axis channel
// widths. The structures here are built once per architecture/placement
// load and consumed read-only by the drawing layer.
package arch

import "fmt"

// Side identifies one of the four sides of a tile.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists the canonical sides in the order pin placement tables are
// scanned (matters for "first location of pin" lookups).
var Sides = [4]Side{Top, Right, Bottom, Left}

func (s Side) String() string {
	switch s {
	case Top:
		return "TOP"
	case Right:
		return "RIGHT"
	case Bottom:
		return "BOTTOM"
	case Left:
		return "LEFT"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Valid reports whether s is one of the four canonical sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Left
}

// BlockType describes one physical block type (CLB, IO pad, RAM, ...).
type BlockType struct {
	Name     string
	Index    int // ordinal in the device's type list, used for default colors
	Width    int // footprint in grid tiles
	Height   int
	NumPins  int
	Capacity int // sub-tile slots per location (e.g. pads per IO tile)

	outputPin []bool
	pinLoc    []bool // [width][height][side][pin], flattened
}

// NewBlockType creates a block type with empty pin placement.
func NewBlockType(name string, index, width, height, numPins, capacity int) *BlockType {
	return &BlockType{
		Name:      name,
		Index:     index,
		Width:     width,
		Height:    height,
		NumPins:   numPins,
		Capacity:  capacity,
		outputPin: make([]bool, numPins),
		pinLoc:    make([]bool, width*height*4*numPins),
	}
}

func (t *BlockType) pinLocIndex(w, h int, side Side, pin int) int {
	return ((w*t.Height+h)*4+int(side))*t.NumPins + pin
}

// SetPinLoc marks pin as physically present on the given side of sub-tile
// (w, h).
func (t *BlockType) SetPinLoc(w, h int, side Side, pin int) {
	t.pinLoc[t.pinLocIndex(w, h, side, pin)] = true
}

// PinOnSide reports whether pin is physically present on the given side of
// sub-tile (w, h). Out-of-range queries report false.
func (t *BlockType) PinOnSide(w, h int, side Side, pin int) bool {
	if w < 0 || w >= t.Width || h < 0 || h >= t.Height || !side.Valid() ||
		pin < 0 || pin >= t.NumPins {
		return false
	}
	return t.pinLoc[t.pinLocIndex(w, h, side, pin)]
}

// SetOutputPin marks pin as a driver (output) pin.
func (t *BlockType) SetOutputPin(pin int) {
	t.outputPin[pin] = true
}

// IsOutputPin reports whether pin drives nets (OPIN) rather than receiving
// them (IPIN).
func (t *BlockType) IsOutputPin(pin int) bool {
	return pin >= 0 && pin < len(t.outputPin) && t.outputPin[pin]
}

// PinsPerSubTile returns how many of the type's pins belong to each
// sub-tile slot.
func (t *BlockType) PinsPerSubTile() int {
	if t.Capacity == 0 {
		return t.NumPins
	}
	return t.NumPins / t.Capacity
}

// PinLocation finds the first sub-tile offset and side on which pin is
// placed, scanning widths, then heights, then sides in canonical order.
func (t *BlockType) PinLocation(pin int) (w, h int, side Side, ok bool) {
	for w = 0; w < t.Width; w++ {
		for h = 0; h < t.Height; h++ {
			for _, s := range Sides {
				if t.PinOnSide(w, h, s, pin) {
					return w, h, s, true
				}
			}
		}
	}
	return 0, 0, Top, false
}

// NoBlock marks an empty sub-tile slot.
const NoBlock = -1

// Tile is one grid location. Large blocks span several tiles; only the
// tile with zero offsets owns the block list.
type Tile struct {
	Type         *BlockType
	WidthOffset  int
	HeightOffset int
	Blocks       []int // block IDs per capacity slot, NoBlock if empty
}

// Block is a placed netlist block.
type Block struct {
	Name    string
	Type    *BlockType
	X, Y    int
	SubTile int
}

// ChanWidth holds per-axis channel widths: XList[y] is the width of the
// horizontal channel above row y, YList[x] the width of the vertical
// channel right of column x.
type ChanWidth struct {
	XList []int
	YList []int
}

// Max returns the largest channel width on either axis.
func (c ChanWidth) Max() int {
	m := 0
	for _, w := range c.XList {
		if w > m {
			m = w
		}
	}
	for _, w := range c.YList {
		if w > m {
			m = w
		}
	}
	return m
}
