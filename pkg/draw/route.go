package draw

import (
	"image/color"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// Switch symbol placement along a connection line, as a fraction of the
// way from source to target.
const (
	switchCircleRel  = 0.1 // pass transistor circle
	switchCircleRad  = 0.15
	arrowStraightRel = 0.9 // buffer arrow on a straight connection
	arrowTurnRel     = 0.2 // buffer arrow on a turning connection
)

// RoutePainter renders routed nets: for every adjacent pair in a
// flattened branch it classifies the transition and emits the line,
// switch symbol and wire geometry for it.
type RoutePainter struct {
	g   *rrg.Graph
	dev *arch.Device
	c   *Coords
	st  *State

	RouteType RouteType
	tracks    *TrackAllocator
}

// NewRoutePainter builds a painter over one routing solution.
func NewRoutePainter(g *rrg.Graph, dev *arch.Device, c *Coords, st *State) *RoutePainter {
	return &RoutePainter{
		g:      g,
		dev:    dev,
		c:      c,
		st:     st,
		tracks: NewTrackAllocator(dev),
	}
}

// DrawRoutes renders every routed net. Global nets carry no drawable
// routing; unrouted nets are skipped, which also allows partially
// complete routings to display. When onlyHighlighted is set, nets in
// the default color are skipped (used to redraw highlights on top of
// the full graph view).
func (rp *RoutePainter) DrawRoutes(dl *DrawList, nets []rrg.Net, onlyHighlighted bool) error {
	for i := range nets {
		net := &nets[i]
		if net.Global || !net.Routed() {
			continue
		}
		if onlyHighlighted && !rp.st.NetIsHighlighted(i) {
			continue
		}

		// A highlighted net pulls every node on its trace into the net's
		// color so the whole route reads as one object.
		if rp.st.NetIsHighlighted(i) {
			for _, step := range net.Trace {
				rp.st.NodeColor[step.Node] = rp.st.NetColor[i]
			}
		}

		for _, branch := range rrg.Flatten(net.Trace) {
			if err := rp.DrawBranch(dl, branch); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawBranch renders one flattened branch of a route: the wires of its
// channel nodes plus the connection for each adjacent pair.
func (rp *RoutePainter) DrawBranch(dl *DrawList, branch []rrg.NodeID) error {
	rp.tracks.Reset()
	for i := 1; i < len(branch); i++ {
		if err := rp.connect(dl, branch[i-1], branch[i]); err != nil {
			return err
		}
	}
	return nil
}

// connect dispatches one adjacent (prev, curr) pair to its transition
// class. A pair outside the legal transition classes means the graph
// was corrupted upstream and aborts the draw.
func (rp *RoutePainter) connect(dl *DrawList, prev, curr rrg.NodeID) error {
	pn := rp.g.Node(prev)
	cn := rp.g.Node(curr)
	col := rp.st.NodeColor[curr]

	switch cn.Type {
	case rrg.OPin:
		// SOURCE to OPIN: the source is logical, nothing physical to draw
		// for the transition, just the pin itself.
		if pn.Type != rrg.Source {
			return rp.badPair(prev, curr)
		}
		rp.drawPin(dl, curr, col)
		return nil

	case rrg.IPin:
		rp.drawPin(dl, curr, col)
		switch pn.Type {
		case rrg.OPin:
			return rp.pinToPin(dl, prev, curr, col)
		case rrg.ChanX, rrg.ChanY:
			return rp.pinToChan(dl, curr, prev, col)
		}
		return rp.badPair(prev, curr)

	case rrg.ChanX:
		track := rp.tracks.Track(rp.RouteType, curr, cn)
		rp.drawChan(dl, curr, track, col)
		sw, err := rp.g.FindSwitch(prev, curr)
		if err != nil {
			return err
		}
		buffered := rp.g.Switch(sw).Buffered
		switch pn.Type {
		case rrg.ChanX:
			prevTrack := rp.tracks.Track(rp.RouteType, prev, pn)
			rp.chanxToChanx(dl, pn, prevTrack, cn, track, buffered, col)
			return nil
		case rrg.ChanY:
			prevTrack := rp.tracks.Track(rp.RouteType, prev, pn)
			rp.chanxToChany(dl, cn, track, pn, prevTrack, false, buffered, col)
			return nil
		case rrg.OPin:
			return rp.pinToChan(dl, prev, curr, col)
		}
		return rp.badPair(prev, curr)

	case rrg.ChanY:
		track := rp.tracks.Track(rp.RouteType, curr, cn)
		rp.drawChan(dl, curr, track, col)
		sw, err := rp.g.FindSwitch(prev, curr)
		if err != nil {
			return err
		}
		buffered := rp.g.Switch(sw).Buffered
		switch pn.Type {
		case rrg.ChanX:
			prevTrack := rp.tracks.Track(rp.RouteType, prev, pn)
			rp.chanxToChany(dl, pn, prevTrack, cn, track, true, buffered, col)
			return nil
		case rrg.ChanY:
			prevTrack := rp.tracks.Track(rp.RouteType, prev, pn)
			rp.chanyToChany(dl, pn, prevTrack, cn, track, buffered, col)
			return nil
		case rrg.OPin:
			return rp.pinToChan(dl, prev, curr, col)
		}
		return rp.badPair(prev, curr)

	case rrg.Sink:
		if pn.Type == rrg.Source {
			// Degenerate direct connection inside one block: no wire, only
			// a marker at the tile center.
			dl.X(rp.c.TileBBox(cn.XLow, cn.YLow).Center(), rp.c.PinSize, col)
			return nil
		}
		if pn.Type != rrg.IPin {
			return rp.badPair(prev, curr)
		}
		return nil
	}
	return rp.badPair(prev, curr)
}

func (rp *RoutePainter) badPair(prev, curr rrg.NodeID) error {
	return rrg.PairError(prev, curr, rp.g.Node(prev).Type, rp.g.Node(curr).Type)
}

// drawChan draws a channel wire at the given display track.
func (rp *RoutePainter) drawChan(dl *DrawList, id rrg.NodeID, track int, col color.NRGBA) {
	bb := rp.c.chanBBoxAt(rp.g.Node(id), track)
	dl.Line(bb.BottomLeft(), bb.TopRight(), col)
}

// drawPin draws a pin square on every side the pin is mapped to.
func (rp *RoutePainter) drawPin(dl *DrawList, id rrg.NodeID, col color.NRGBA) {
	n := rp.g.Node(id)
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
			}
		}
	}
}

// drawSwitch draws the connection element gating an edge, nearest the
// source end: a circle for a pass transistor, a triangle for a buffer.
// Buffer arrows sit near the target on straight connections and near
// the source on turns, where they read best.
func (rp *RoutePainter) drawSwitch(dl *DrawList, from, to Point, buffered bool, col color.NRGBA) {
	if !buffered {
		cen := Point{
			X: from.X + (to.X-from.X)*switchCircleRel,
			Y: from.Y + (to.Y-from.Y)*switchCircleRel,
		}
		dl.Circle(cen, switchCircleRad, col)
		return
	}
	rel := arrowTurnRel
	if from.X == to.X || from.Y == to.Y {
		rel = arrowStraightRel
	}
	dl.TriangleAlong(from, to, rel, DefaultArrowSize, col)
}

// chanxToChanx draws the switch-box connection between two horizontal
// wires. A unidirectional target is entered at its start (leftmost for
// an increasing wire, rightmost for a decreasing one). Two overlapping
// bidirectional wires use low-coordinate tie-breaks chosen so the same
// line is produced whichever wire is traversed first.
func (rp *RoutePainter) chanxToChanx(dl *DrawList, from *rrg.Node, fromTrack int, to *rrg.Node, toTrack int, buffered bool, col color.NRGBA) {
	fromBB := rp.c.chanBBoxAt(from, fromTrack)
	toBB := rp.c.chanBBoxAt(to, toTrack)

	y1 := fromBB.Bottom
	y2 := toBB.Bottom
	var x1, x2 float64

	switch {
	case to.XHigh < from.XLow: // right to left
		x1 = fromBB.Left
		x2 = toBB.Right
	case to.XLow > from.XHigh: // left to right
		x1 = fromBB.Right
		x2 = toBB.Left
	case to.Dir != rrg.BiDir:
		// Overlapping ranges: connect at the target wire's start.
		if to.Dir == rrg.IncDir {
			x2 = toBB.Left
			x1 = rp.c.TileX[to.XLow-1] + rp.c.TileWidth
		} else {
			x2 = toBB.Right
			x1 = rp.c.TileX[to.XHigh+1]
		}
	default:
		// Both bidirectional and overlapping: pick ends so the drawing is
		// symmetric whichever wire is from and which is to.
		switch {
		case to.XLow < from.XLow:
			x1 = fromBB.Left
			x2 = rp.c.TileX[from.XLow-1] + rp.c.TileWidth
		case from.XLow < to.XLow:
			x1 = rp.c.TileX[to.XLow-1] + rp.c.TileWidth
			x2 = toBB.Left
		case to.XHigh > from.XHigh:
			x1 = fromBB.Right
			x2 = rp.c.TileX[from.XHigh+1]
		case from.XHigh > to.XHigh:
			x1 = rp.c.TileX[to.XHigh+1]
			x2 = toBB.Right
		default:
			// Complete overlap: draw outside the switch box.
			x1 = fromBB.Left
			x2 = fromBB.Left + rp.c.TileWidth
		}
	}

	p1 := Point{X: x1, Y: y1}
	p2 := Point{X: x2, Y: y2}
	dl.Line(p1, p2, col)
	rp.drawSwitch(dl, p1, p2, buffered, col)
}

// chanyToChany is the vertical-axis counterpart of chanxToChanx.
func (rp *RoutePainter) chanyToChany(dl *DrawList, from *rrg.Node, fromTrack int, to *rrg.Node, toTrack int, buffered bool, col color.NRGBA) {
	fromBB := rp.c.chanBBoxAt(from, fromTrack)
	toBB := rp.c.chanBBoxAt(to, toTrack)

	x1 := fromBB.Left
	x2 := toBB.Left
	var y1, y2 float64

	switch {
	case to.YHigh < from.YLow: // upper to lower
		y1 = fromBB.Bottom
		y2 = toBB.Top
	case to.YLow > from.YHigh: // lower to upper
		y1 = fromBB.Top
		y2 = toBB.Bottom
	case to.Dir != rrg.BiDir:
		if to.Dir == rrg.IncDir {
			y2 = toBB.Bottom
			y1 = rp.c.TileY[to.YLow-1] + rp.c.TileWidth
		} else {
			y2 = toBB.Top
			y1 = rp.c.TileY[to.YHigh+1]
		}
	default:
		switch {
		case to.YLow < from.YLow:
			y1 = fromBB.Bottom
			y2 = rp.c.TileY[from.YLow-1] + rp.c.TileWidth
		case from.YLow < to.YLow:
			y1 = rp.c.TileY[to.YLow-1] + rp.c.TileWidth
			y2 = toBB.Bottom
		case to.YHigh > from.YHigh:
			y1 = fromBB.Top
			y2 = rp.c.TileY[from.YHigh+1]
		case from.YHigh > to.YHigh:
			y1 = rp.c.TileY[to.YHigh+1]
			y2 = toBB.Top
		default:
			y1 = fromBB.Bottom
			y2 = fromBB.Bottom + rp.c.TileWidth
		}
	}

	p1 := Point{X: x1, Y: y1}
	p2 := Point{X: x2, Y: y2}
	dl.Line(p1, p2, col)
	rp.drawSwitch(dl, p1, p2, buffered, col)
}

// chanxToChany draws the switch-box connection between a horizontal and
// a vertical wire. yToX reports the traversal direction: true when the
// signal flows from the vertical wire onto the horizontal one. The
// junction on each wire sits at the interior tile boundary nearest the
// crossing when the perpendicular wire's low coordinate lies within its
// extent, else at the wire's own end.
func (rp *RoutePainter) chanxToChany(dl *DrawList, chanx *rrg.Node, chanxTrack int, chany *rrg.Node, chanyTrack int, yToX, buffered bool, col color.NRGBA) {
	xBB := rp.c.chanBBoxAt(chanx, chanxTrack)
	yBB := rp.c.chanBBoxAt(chany, chanyTrack)

	// (x1, y1) on the horizontal wire, (x2, y2) on the vertical one.
	y1 := xBB.Bottom
	x2 := yBB.Left
	var x1, y2 float64

	if chanx.XLow <= chany.XLow { // can approach the crossing from the left
		x1 = rp.c.TileX[chany.XLow] + rp.c.TileWidth
		if chanx.Dir != rrg.BiDir && !yToX && chanxTrack%2 == 1 {
			// Decreasing wire travels leftward, so the junction sits on
			// the crossing's right boundary instead.
			x1 = rp.c.TileX[chany.XLow+1]
		}
	} else {
		x1 = xBB.Left
	}

	if chany.YLow <= chanx.YLow { // can approach the crossing from below
		y2 = rp.c.TileY[chanx.YLow] + rp.c.TileWidth
		if chany.Dir != rrg.BiDir && yToX && chanyTrack%2 == 1 {
			y2 = rp.c.TileY[chanx.YLow+1]
		}
	} else {
		y2 = yBB.Bottom
	}

	p1 := Point{X: x1, Y: y1}
	p2 := Point{X: x2, Y: y2}
	dl.Line(p1, p2, col)
	if yToX {
		rp.drawSwitch(dl, p2, p1, buffered, col)
	} else {
		rp.drawSwitch(dl, p1, p2, buffered, col)
	}
}

// pinToChan draws the connection from a block pin to a channel wire. The
// line meets a directed wire at its nearest end rather than
// perpendicular, to show a single-drive connection; the junction gets an
// X for bidirectional wires and input pins, an arrow for a driven
// unidirectional wire.
func (rp *RoutePainter) pinToChan(dl *DrawList, pin, chanID rrg.NodeID, col color.NRGBA) error {
	pn := rp.g.Node(pin)
	cn := rp.g.Node(chanID)

	tile := rp.dev.Tile(pn.XLow, pn.YLow)
	t := tile.Type
	rootX := pn.XLow - tile.WidthOffset
	rootY := pn.YLow - tile.HeightOffset
	isOPin := pn.Type == rrg.OPin

	bb := rp.c.ChanBBox(cn)

	var p1 Point
	var err error
	var p2 Point

	switch cn.Type {
	case rrg.ChanX:
		// The channel runs along the top or bottom edge of the block; pick
		// the side facing it.
		var side arch.Side
		var wOff, hOff int
		var off float64
		switch {
		case rootY+t.Height-1 == cn.YLow:
			side = arch.Top
			wOff = t.Width - 1
			hOff = t.Height - 1
			off = rp.c.PinSize
		case rootY-1 == cn.YLow:
			side = arch.Bottom
			off = -rp.c.PinSize
		default:
			return &UnmappedSideError{Node: pin, Pin: pn.Ptc, Side: -1}
		}
		if !t.PinOnSide(wOff, hOff, side, pn.Ptc) {
			return &UnmappedSideError{Node: pin, Pin: pn.Ptc, Side: side}
		}
		p1, err = rp.c.PinPoint(t, pin, rootX, rootY, pn.Ptc, side, wOff, hOff)
		if err != nil {
			return err
		}
		p1.Y += off
		p2 = Point{X: p1.X, Y: bb.Bottom}
		if isOPin {
			if cn.Dir == rrg.IncDir {
				p2.X = bb.Left
			} else if cn.Dir == rrg.DecDir {
				p2.X = bb.Right
			}
		}

	case rrg.ChanY:
		var side arch.Side
		var off float64
		if rootX == cn.XLow {
			side = arch.Right
			off = rp.c.PinSize
		} else {
			side = arch.Left
			off = -rp.c.PinSize
		}
		// Tall blocks may expose the pin on any of their rows facing the
		// channel; use the first mapped one.
		wOff := 0
		if side == arch.Right {
			wOff = t.Width - 1
		}
		hOff := -1
		lo := max(cn.YLow, rootY)
		hi := min(cn.YHigh, rootY+t.Height-1)
		for yy := lo; yy <= hi; yy++ {
			if t.PinOnSide(wOff, yy-rootY, side, pn.Ptc) {
				hOff = yy - rootY
				break
			}
		}
		if hOff < 0 {
			return &UnmappedSideError{Node: pin, Pin: pn.Ptc, Side: side}
		}
		p1, err = rp.c.PinPoint(t, pin, rootX, rootY, pn.Ptc, side, wOff, hOff)
		if err != nil {
			return err
		}
		p1.X += off
		p2 = Point{X: bb.Left, Y: p1.Y}
		if isOPin {
			if cn.Dir == rrg.IncDir {
				p2.Y = bb.Bottom
			} else if cn.Dir == rrg.DecDir {
				p2.Y = bb.Top
			}
		}

	default:
		return rrg.PairError(pin, chanID, pn.Type, cn.Type)
	}

	dl.Line(p1, p2, col)
	if cn.Dir == rrg.BiDir || !isOPin {
		dl.X(p2, 0.7*rp.c.PinSize, col)
	} else {
		end := Point{
			X: p2.X + (p1.X-p2.X)/10,
			Y: p2.Y + (p1.Y-p2.Y)/10,
		}
		dl.Triangle(end, p1, p2, DefaultArrowSize, col)
	}
	return nil
}

// pinToPin draws a direct output-pin to input-pin connection, arrowed
// near the receiving pin.
func (rp *RoutePainter) pinToPin(dl *DrawList, opin, ipin rrg.NodeID, col color.NRGBA) error {
	p1, err := rp.c.NodePinPoint(rp.dev, rp.g, opin)
	if err != nil {
		return err
	}
	p2, err := rp.c.NodePinPoint(rp.dev, rp.g, ipin)
	if err != nil {
		return err
	}
	dl.Line(p1, p2, col)
	end := Point{
		X: p2.X + (p1.X-p2.X)/10,
		Y: p2.Y + (p1.Y-p2.Y)/10,
	}
	dl.Triangle(end, p1, p2, DefaultArrowSize, col)
	return nil
}
