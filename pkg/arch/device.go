package arch

import "fmt"

// Device bundles everything the viewer needs to know about one placed
// design: the grid (including the IO ring at coordinates 0 and NX+1/NY+1),
// the block type library, the placed blocks, and the channel widths.
type Device struct {
	NX, NY int // logic grid dimensions, excluding the IO ring
	Types  []*BlockType
	Blocks []Block
	Chan   ChanWidth

	tiles [][]Tile // [NX+2][NY+2]
}

// NewDevice allocates an empty nx-by-ny device. Every tile starts with a
// nil type and no blocks.
func NewDevice(nx, ny int) *Device {
	d := &Device{NX: nx, NY: ny}
	d.tiles = make([][]Tile, nx+2)
	for i := range d.tiles {
		d.tiles[i] = make([]Tile, ny+2)
	}
	d.Chan.XList = make([]int, ny+2)
	d.Chan.YList = make([]int, nx+2)
	return d
}

// Tile returns the tile at grid location (x, y). Panics on out-of-range
// coordinates; callers iterate within [0, NX+1] x [0, NY+1].
func (d *Device) Tile(x, y int) *Tile {
	return &d.tiles[x][y]
}

// InBounds reports whether (x, y) lies on the grid including the IO ring.
func (d *Device) InBounds(x, y int) bool {
	return x >= 0 && x <= d.NX+1 && y >= 0 && y <= d.NY+1
}

// PlaceBlock records a block at its tile's sub-tile slot and returns its
// ID. The tile's type must already be set and have a free matching slot.
func (d *Device) PlaceBlock(name string, x, y, subTile int) (int, error) {
	if !d.InBounds(x, y) {
		return NoBlock, fmt.Errorf("place %q: location (%d,%d) outside grid", name, x, y)
	}
	tile := d.Tile(x, y)
	if tile.Type == nil {
		return NoBlock, fmt.Errorf("place %q: tile (%d,%d) has no type", name, x, y)
	}
	if subTile < 0 || subTile >= tile.Type.Capacity {
		return NoBlock, fmt.Errorf("place %q: sub-tile %d out of range for type %s", name, subTile, tile.Type.Name)
	}
	if len(tile.Blocks) == 0 {
		tile.Blocks = make([]int, tile.Type.Capacity)
		for i := range tile.Blocks {
			tile.Blocks[i] = NoBlock
		}
	}
	if tile.Blocks[subTile] != NoBlock {
		return NoBlock, fmt.Errorf("place %q: sub-tile %d of (%d,%d) already occupied", name, subTile, x, y)
	}
	id := len(d.Blocks)
	d.Blocks = append(d.Blocks, Block{Name: name, Type: tile.Type, X: x, Y: y, SubTile: subTile})
	tile.Blocks[subTile] = id
	return id, nil
}

// MaxPins returns the largest pin count over types that have pins at all.
func (d *Device) MaxPins() int {
	m := 0
	for _, t := range d.Types {
		if t.NumPins > m {
			m = t.NumPins
		}
	}
	return m
}
