package draw

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// HitTolerance is how far, in draw-space units, a click may land from a
// channel wire's centerline and still select it.
const HitTolerance = 0.3

// HitTester resolves draw-space click positions to routing resources.
// It keeps a spatial index over the clickable geometry (pin squares and
// channel wire slots); SOURCE and SINK nodes have no geometry of their
// own and are never hit-testable.
type HitTester struct {
	g   *rrg.Graph
	dev *arch.Device
	c   *Coords

	index rtree.RTreeG[rrg.NodeID]
}

// NewHitTester indexes the clickable geometry of the graph. Geometry
// depends on Coords, so a rebuilt Coords needs a new HitTester.
func NewHitTester(g *rrg.Graph, dev *arch.Device, c *Coords) (*HitTester, error) {
	ht := &HitTester{g: g, dev: dev, c: c}
	for i := range g.Nodes {
		n := &g.Nodes[i]
		id := rrg.NodeID(i)
		switch {
		case n.Type.IsChan():
			bb := c.ChanBBox(n).Expand(HitTolerance)
			ht.insert(bb, id)
		case n.Type.IsPin():
			// A pin may be mapped on several sides of a large block; each
			// drawn square is independently clickable.
			if err := ht.indexPin(n, id); err != nil {
				return nil, err
			}
		}
	}
	return ht, nil
}

func (ht *HitTester) insert(r Rect, id rrg.NodeID) {
	ht.index.Insert([2]float64{r.Left, r.Bottom}, [2]float64{r.Right, r.Top}, id)
}

func (ht *HitTester) indexPin(n *rrg.Node, id rrg.NodeID) error {
	tile := ht.dev.Tile(n.XLow, n.YLow)
	t := tile.Type
	rootX := n.XLow - tile.WidthOffset
	rootY := n.YLow - tile.HeightOffset
	found := false
	for w := 0; w < t.Width; w++ {
		for h := 0; h < t.Height; h++ {
			for _, side := range arch.Sides {
				if !t.PinOnSide(w, h, side, n.Ptc) {
					continue
				}
				p, err := ht.c.PinPoint(t, id, rootX, rootY, n.Ptc, side, w, h)
				if err != nil {
					return err
				}
				ht.insert(SquareAround(p, ht.c.PinSize), id)
				found = true
			}
		}
	}
	if !found {
		return &UnmappedSideError{Node: id, Pin: n.Ptc, Side: -1}
	}
	return nil
}

// Hit resolves a click to the lowest-numbered node whose geometry
// contains the point, or NoNode. Pin squares are tested exactly;
// channel wires match within HitTolerance of their slot.
func (ht *HitTester) Hit(p Point) rrg.NodeID {
	var cands []rrg.NodeID
	ht.index.Search([2]float64{p.X, p.Y}, [2]float64{p.X, p.Y},
		func(_, _ [2]float64, id rrg.NodeID) bool {
			cands = append(cands, id)
			return true
		})
	if len(cands) == 0 {
		return rrg.NoNode
	}

	// The index returns candidates in tree order; scanning in ascending
	// node ID keeps which-node-wins deterministic when geometry overlaps.
	sort.Slice(cands, func(i, j int) bool { return cands[i] < cands[j] })
	prev := rrg.NoNode
	for _, id := range cands {
		if id == prev {
			continue
		}
		prev = id
		if ht.contains(id, p) {
			return id
		}
	}
	return rrg.NoNode
}

func (ht *HitTester) contains(id rrg.NodeID, p Point) bool {
	n := ht.g.Node(id)
	if n.Type.IsChan() {
		return ht.c.ChanBBox(n).Expand(HitTolerance).Contains(p)
	}
	tile := ht.dev.Tile(n.XLow, n.YLow)
	t := tile.Type
	rootX := n.XLow - tile.WidthOffset
	rootY := n.YLow - tile.HeightOffset
	for w := 0; w < t.Width; w++ {
		for h := 0; h < t.Height; h++ {
			for _, side := range arch.Sides {
				if !t.PinOnSide(w, h, side, n.Ptc) {
					continue
				}
				c, err := ht.c.PinPoint(t, id, rootX, rootY, n.Ptc, side, w, h)
				if err != nil {
					continue
				}
				if SquareAround(c, ht.c.PinSize).Contains(p) {
					return true
				}
			}
		}
	}
	return false
}

// HitBlock resolves a click to the placed block occupying the tile under
// the point, or arch.NoBlock. Sub-tile slots divide the tile vertically.
func (ht *HitTester) HitBlock(p Point) int {
	for x := 0; x <= ht.dev.NX+1; x++ {
		if p.X < ht.c.TileX[x] || p.X > ht.c.TileX[x]+ht.c.TileWidth {
			continue
		}
		for y := 0; y <= ht.dev.NY+1; y++ {
			bb := ht.c.TileBBox(x, y)
			if !bb.Contains(p) {
				continue
			}
			tile := ht.dev.Tile(x, y)
			if tile.Type == nil {
				return arch.NoBlock
			}
			// Large blocks record their occupants only on the root tile.
			if tile.WidthOffset != 0 || tile.HeightOffset != 0 {
				tile = ht.dev.Tile(x-tile.WidthOffset, y-tile.HeightOffset)
			}
			if len(tile.Blocks) == 0 {
				return arch.NoBlock
			}
			slot := int((p.Y - bb.Bottom) / ht.c.TileWidth * float64(len(tile.Blocks)))
			if slot >= len(tile.Blocks) {
				slot = len(tile.Blocks) - 1
			}
			return tile.Blocks[slot]
		}
	}
	return arch.NoBlock
}
