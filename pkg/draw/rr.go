package draw

import (
	"image/color"
	"strconv"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// arrowGrey is the color of the per-tile direction arrows on
// unidirectional wires.
var arrowGrey = color.NRGBA{R: 211, G: 211, B: 211, A: 255}

// DrawGrid renders the device floorplan: one rectangle per tile, filled
// with the owning block's highlight color, labeled with the block name.
// Unoccupied tiles keep their type's default fill; tiles of a large
// block other than the root are drawn without a label.
func (rp *RoutePainter) DrawGrid(dl *DrawList, blocks []arch.Block) {
	for x := 0; x <= rp.dev.NX+1; x++ {
		for y := 0; y <= rp.dev.NY+1; y++ {
			tile := rp.dev.Tile(x, y)
			bb := rp.c.TileBBox(x, y)
			if tile.Type == nil {
				dl.FillRect(bb, ColorEmpty)
				dl.Rect(bb, ColorDefault, true)
				continue
			}
			root := rp.dev.Tile(x-tile.WidthOffset, y-tile.HeightOffset)
			fill := BlockTypeColor(tile.Type.Index)
			label := ""
			for slot, id := range root.Blocks {
				if id == arch.NoBlock {
					continue
				}
				fill = rp.st.BlockColor[id]
				if tile.WidthOffset == 0 && tile.HeightOffset == 0 && slot == 0 {
					label = blocks[id].Name
				}
			}
			dl.FillRect(bb, fill)
			dl.Rect(bb, ColorDefault, false)
			if label != "" {
				dl.TextIn(bb, label, ColorText)
			}
		}
	}
}

// DrawRR renders the full routing-resource graph: every channel wire
// with its track number and direction arrows, every pin square with its
// pin number, and every switch-box and pin-to-wire edge. SOURCE and
// SINK nodes are logical only and not drawn.
func (rp *RoutePainter) DrawRR(dl *DrawList) error {
	return rp.drawRR(dl, true)
}

// DrawRRNodes renders only the wires and pins, without their edges: the
// intermediate detail level of the graph view.
func (rp *RoutePainter) DrawRRNodes(dl *DrawList) {
	rp.drawRR(dl, false)
}

func (rp *RoutePainter) drawRR(dl *DrawList, withEdges bool) error {
	for i := range rp.g.Nodes {
		id := rrg.NodeID(i)
		n := rp.g.Node(id)
		switch n.Type {
		case rrg.ChanX, rrg.ChanY:
			rp.drawChanDetail(dl, id)
		case rrg.OPin, rrg.IPin:
			rp.drawPinDetail(dl, id)
		}
		if !withEdges || (n.Type != rrg.OPin && !n.Type.IsChan()) {
			continue
		}
		if err := rp.drawNodeEdges(dl, id); err != nil {
			return err
		}
	}
	return nil
}

// drawChanDetail draws one channel wire with its track label and, for
// unidirectional wires, a direction arrow at each tile boundary.
func (rp *RoutePainter) drawChanDetail(dl *DrawList, id rrg.NodeID) {
	n := rp.g.Node(id)
	col := rp.st.NodeColor[id]
	bb := rp.c.ChanBBox(n)
	dl.Line(bb.BottomLeft(), bb.TopRight(), col)
	dl.Text(bb.Center(), strconv.Itoa(n.Ptc), col)

	if n.Dir == rrg.BiDir {
		return
	}
	from, to := bb.BottomLeft(), bb.TopRight()
	if n.Dir == rrg.DecDir {
		from, to = to, from
	}
	arrowCol := arrowGrey
	if rp.st.NodeIsHighlighted(id) {
		arrowCol = col
	}
	if n.Type == rrg.ChanX {
		for k := n.XLow + 1; k <= n.XHigh; k++ {
			x := rp.c.TileX[k]
			dl.Triangle(Point{X: x, Y: bb.Bottom}, from, to, DefaultArrowSize, arrowCol)
		}
	} else {
		for k := n.YLow + 1; k <= n.YHigh; k++ {
			y := rp.c.TileY[k]
			dl.Triangle(Point{X: bb.Left, Y: y}, from, to, DefaultArrowSize, arrowCol)
		}
	}
}

// drawPinDetail draws one pin square on each mapped side with its pin
// number beside it.
func (rp *RoutePainter) drawPinDetail(dl *DrawList, id rrg.NodeID) {
	n := rp.g.Node(id)
	col := rp.st.NodeColor[id]
	if col == ColorDefault {
		if n.Type == rrg.OPin {
			col = ColorOPin
		} else {
			col = ColorIPin
		}
	}
	tile := rp.dev.Tile(n.XLow, n.YLow)
	t := tile.Type
	rootX := n.XLow - tile.WidthOffset
	rootY := n.YLow - tile.HeightOffset
	for w := 0; w < t.Width; w++ {
		for h := 0; h < t.Height; h++ {
			for _, side := range arch.Sides {
				if !t.PinOnSide(w, h, side, n.Ptc) {
					continue
				}
				p, err := rp.c.PinPoint(t, id, rootX, rootY, n.Ptc, side, w, h)
				if err != nil {
					continue
				}
				dl.FillRect(SquareAround(p, rp.c.PinSize), col)
				dl.Text(p, strconv.Itoa(n.Ptc), ColorText)
			}
		}
	}
}

// edgeColor picks the color for a graph-view edge: a selected endpoint
// pulls the edge into the other endpoint's propagation color, otherwise
// the transition class's default applies.
func (rp *RoutePainter) edgeColor(from, to rrg.NodeID, fallback color.NRGBA) color.NRGBA {
	if rp.st.NodeColor[from] == ColorSelected {
		return rp.st.NodeColor[to]
	}
	if rp.st.NodeColor[to] == ColorSelected {
		return rp.st.NodeColor[from]
	}
	return fallback
}

// drawNodeEdges draws every outgoing edge of an OPIN or channel node.
func (rp *RoutePainter) drawNodeEdges(dl *DrawList, from rrg.NodeID) error {
	fn := rp.g.Node(from)
	for _, e := range fn.Edges {
		to := e.To
		tn := rp.g.Node(to)
		buffered := rp.g.Switch(e.Switch).Buffered

		switch fn.Type {
		case rrg.OPin:
			switch tn.Type {
			case rrg.ChanX, rrg.ChanY:
				col := rp.edgeColor(from, to, ColorOPin)
				if err := rp.pinToChan(dl, from, to, col); err != nil {
					return err
				}
			case rrg.IPin:
				col := rp.edgeColor(from, to, ColorPinToPin)
				if err := rp.pinToPin(dl, from, to, col); err != nil {
					return err
				}
			default:
				return rrg.PairError(from, to, fn.Type, tn.Type)
			}

		case rrg.ChanX:
			switch tn.Type {
			case rrg.IPin:
				if rp.skipChanToIPin(from, to) {
					continue
				}
				col := rp.edgeColor(from, to, ColorPinEdge)
				if err := rp.pinToChan(dl, to, from, col); err != nil {
					return err
				}
			case rrg.ChanX:
				col := rp.edgeColor(from, to, ColorChanEdge)
				rp.chanxToChanx(dl, fn, fn.Ptc, tn, tn.Ptc, buffered, col)
			case rrg.ChanY:
				col := rp.edgeColor(from, to, ColorChanEdge)
				rp.chanxToChany(dl, fn, fn.Ptc, tn, tn.Ptc, false, buffered, col)
			default:
				return rrg.PairError(from, to, fn.Type, tn.Type)
			}

		case rrg.ChanY:
			switch tn.Type {
			case rrg.IPin:
				if rp.skipChanToIPin(from, to) {
					continue
				}
				col := rp.edgeColor(from, to, ColorPinEdge)
				if err := rp.pinToChan(dl, to, from, col); err != nil {
					return err
				}
			case rrg.ChanX:
				col := rp.edgeColor(from, to, ColorChanEdge)
				rp.chanxToChany(dl, tn, tn.Ptc, fn, fn.Ptc, true, buffered, col)
			case rrg.ChanY:
				col := rp.edgeColor(from, to, ColorChanEdge)
				rp.chanyToChany(dl, fn, fn.Ptc, tn, tn.Ptc, buffered, col)
			default:
				return rrg.PairError(from, to, fn.Type, tn.Type)
			}
		}
	}
	return nil
}

// skipChanToIPin suppresses a wire-to-pin edge when the pin itself is
// highlighted but the wire is not: a clicked pin shows all wires fanning
// into it, while a clicked wire shows only its own connection to the pin.
func (rp *RoutePainter) skipChanToIPin(wire, pin rrg.NodeID) bool {
	return rp.st.NodeIsHighlighted(pin) && rp.st.NodeColor[wire] == ColorDefault
}
