package draw

import (
	"fmt"

	"github.com/routescope/routescope/pkg/rrg"
)

// DrawCongestion overlays every overused routing resource, colored by
// how far its occupancy exceeds capacity on the shared congestion ramp.
// Non-congested nodes are left alone so the overlay reads against the
// normal view.
func (rp *RoutePainter) DrawCongestion(dl *DrawList) {
	min, max := rp.g.CongestionRange()
	for i := range rp.g.Nodes {
		n := rp.g.Node(rrg.NodeID(i))
		if !n.Overused() {
			continue
		}
		ratio := float64(n.Occ) / float64(n.Capacity)
		col := CongestionColor(ratio, min, max)
		switch n.Type {
		case rrg.ChanX, rrg.ChanY:
			bb := rp.c.ChanBBox(n)
			dl.WideLine(bb.BottomLeft(), bb.TopRight(), col, 2*rp.c.PinSize)
		case rrg.IPin, rrg.OPin:
			rp.drawPin(dl, rrg.NodeID(i), col)
		}
	}
}

// CongestionStatus summarizes the active congestion overlay for the
// status line.
func (rp *RoutePainter) CongestionStatus() string {
	_, max := rp.g.CongestionRange()
	return fmt.Sprintf("Overuse ratio range (1.00, %.2f], %d overused nodes",
		max, rp.g.NumOverused())
}
