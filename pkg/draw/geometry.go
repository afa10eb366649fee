package draw

import (
	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// ChanBBox computes the draw-space boundary of a channel wire segment.
// Channel wires are drawn as slots stacked above (CHANX) or right of
// (CHANY) their tile row/column, offset by the track index, so one pair
// of edges coincides. Used both for drawing the wire and for hit-testing.
// Non-channel nodes yield the zero rectangle; callers must not ask for
// them.
func (c *Coords) ChanBBox(n *rrg.Node) Rect {
	switch n.Type {
	case rrg.ChanX:
		y := c.TileY[n.YLow] + c.TileWidth + 1 + float64(n.Ptc)
		return Rect{
			Left:   c.TileX[n.XLow],
			Right:  c.TileX[n.XHigh] + c.TileWidth,
			Bottom: y,
			Top:    y,
		}
	case rrg.ChanY:
		x := c.TileX[n.XLow] + c.TileWidth + 1 + float64(n.Ptc)
		return Rect{
			Left:   x,
			Right:  x,
			Bottom: c.TileY[n.YLow],
			Top:    c.TileY[n.YHigh] + c.TileWidth,
		}
	}
	return Rect{}
}

// chanBBoxAt is ChanBBox with the track index overridden, used when the
// abstracted view substitutes an allocated track for the node's own.
func (c *Coords) chanBBoxAt(n *rrg.Node, track int) Rect {
	shadow := *n
	shadow.Ptc = track
	return c.ChanBBox(&shadow)
}

// PinPoint returns the draw-space center of a pin on the given side of
// sub-tile (wOff, hOff) of the tile at (x, y). Pins and sub-tile gaps
// share the tile edge evenly so adjacent pins never overlap. A side
// outside the four canonical values is an unmapped-side failure.
func (c *Coords) PinPoint(t *arch.BlockType, node rrg.NodeID, x, y, pin int, side arch.Side, wOff, hOff int) (Point, error) {
	if !side.Valid() {
		return Point{}, &UnmappedSideError{Node: node, Pin: pin, Side: side}
	}

	xc := c.TileX[x+wOff]
	yc := c.TileY[y+hOff]

	// Pin numbers run across all sub-tiles in order, so each sub-tile
	// boundary adds one extra padding step.
	sub := pin / t.PinsPerSubTile()
	step := c.TileWidth / float64(t.NumPins+t.Capacity)
	offset := float64(pin+sub+1) * step

	switch side {
	case arch.Left:
		yc += offset
	case arch.Right:
		xc += c.TileWidth
		yc += offset
	case arch.Bottom:
		xc += offset
	case arch.Top:
		xc += offset
		yc += c.TileWidth
	}
	return Point{X: xc, Y: yc}, nil
}

// NodePinPoint resolves a pin node to its first mapped location and
// returns the draw-space center there. Fails if the pin placement table
// has no side for the pin.
func (c *Coords) NodePinPoint(dev *arch.Device, g *rrg.Graph, id rrg.NodeID) (Point, error) {
	n := g.Node(id)
	tile := dev.Tile(n.XLow, n.YLow)
	w, h, side, ok := tile.Type.PinLocation(n.Ptc)
	if !ok {
		return Point{}, &UnmappedSideError{Node: id, Pin: n.Ptc, Side: -1}
	}
	return c.PinPoint(tile.Type, id, n.XLow-tile.WidthOffset, n.YLow-tile.HeightOffset, n.Ptc, side, w, h)
}
