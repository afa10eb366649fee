// Package draw is the geometry core of the viewer: it turns the abstract
// routing-resource graph plus per-net traces into draw-space primitives,
// resolves clicks back to nodes, and tracks the interactive highlight
// state. Everything is expressed in continuous draw-space units; the
// renderer maps those to pixels.
package draw

import (
	"math"

	"github.com/routescope/routescope/pkg/arch"
)

// DefaultPinSize is the largest half-size a drawn pin square may take, in
// draw-space units.
const DefaultPinSize = 0.3

// Coords owns the per-axis tile position tables that map discrete grid
// coordinates to continuous draw space. Rebuilt whenever grid dimensions
// or channel widths change; any geometry derived from an old Coords is
// invalid after a rebuild.
type Coords struct {
	TileX []float64 // left edge of each tile column, [0..NX+1]
	TileY []float64 // bottom edge of each tile row, [0..NY+1]

	TileWidth float64
	PinSize   float64 // half-size of a drawn pin square
}

// NewCoords builds the tile position tables for a device. Each column
// advances by the tile width plus room for the vertical channel to its
// right (N wires need N+1 units), and symmetrically for rows.
func NewCoords(dev *arch.Device, tileWidth float64) *Coords {
	c := &Coords{
		TileX:     make([]float64, dev.NX+2),
		TileY:     make([]float64, dev.NY+2),
		TileWidth: tileWidth,
		PinSize:   DefaultPinSize,
	}

	for _, t := range dev.Types {
		if t.NumPins > 0 {
			c.PinSize = math.Min(c.PinSize, tileWidth/(4*float64(t.NumPins)))
		}
	}

	gap := 0.0
	for i := 0; i <= dev.NX; i++ {
		c.TileX[i] = float64(i)*tileWidth + gap
		gap += float64(dev.Chan.YList[i] + 1)
	}
	c.TileX[dev.NX+1] = float64(dev.NX+1)*tileWidth + gap

	gap = 0.0
	for j := 0; j <= dev.NY; j++ {
		c.TileY[j] = float64(j)*tileWidth + gap
		gap += float64(dev.Chan.XList[j] + 1)
	}
	c.TileY[dev.NY+1] = float64(dev.NY+1)*tileWidth + gap

	return c
}

// TileBBox returns the draw-space rectangle of the tile at (x, y).
func (c *Coords) TileBBox(x, y int) Rect {
	return Rect{
		Left:   c.TileX[x],
		Bottom: c.TileY[y],
		Right:  c.TileX[x] + c.TileWidth,
		Top:    c.TileY[y] + c.TileWidth,
	}
}

// WorldBounds returns the draw-space extent of the whole device,
// including the outermost channels.
func (c *Coords) WorldBounds() Rect {
	return Rect{
		Left:   0,
		Bottom: 0,
		Right:  c.TileX[len(c.TileX)-1] + c.TileWidth,
		Top:    c.TileY[len(c.TileY)-1] + c.TileWidth,
	}
}
