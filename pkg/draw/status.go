package draw

import (
	"fmt"

	"github.com/routescope/routescope/pkg/rrg"
)

// NodeStatus describes one routing resource for the status line:
// identity, extent, track/pin index, connectivity and congestion.
func NodeStatus(g *rrg.Graph, id rrg.NodeID) string {
	if id == rrg.NoNode {
		return "No routing resource selected"
	}
	n := g.Node(id)
	return fmt.Sprintf("Selected node #%d: %s (%d,%d) -> (%d,%d) track: %d, %d edges, occ: %d, capacity: %d",
		id, n.Type, n.XLow, n.YLow, n.XHigh, n.YHigh, n.Ptc, len(n.Edges), n.Occ, n.Capacity)
}

// HoverStatus gives the short description of the resource under the
// cursor, without selecting it.
func HoverStatus(g *rrg.Graph, id rrg.NodeID) string {
	n := g.Node(id)
	if n.Type.IsChan() {
		length := n.XHigh - n.XLow + n.YHigh - n.YLow + 1
		return fmt.Sprintf("Node #%d: %s length: %d track: %d", id, n.Type, length, n.Ptc)
	}
	return fmt.Sprintf("Node #%d: %s pin: %d", id, n.Type, n.Ptc)
}

// SelectionStatus describes the painter's current selection, falling
// back to the congestion summary when the overlay is what the user is
// looking at.
func (rp *RoutePainter) SelectionStatus(congestionOn bool) string {
	if rp.st.LastSelected != rrg.NoNode {
		return NodeStatus(rp.g, rp.st.LastSelected)
	}
	if congestionOn {
		return rp.CongestionStatus()
	}
	return "Click on a routing resource or block to inspect it"
}
