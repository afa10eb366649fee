package rrg

// Graph is the routing-resource graph. Nodes and switches are owned by
// the builder (parser or router import) and never mutated by the viewer.
type Graph struct {
	Nodes    []Node
	Switches []Switch
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.Nodes) }

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) *Node { return &g.Nodes[id] }

// Switch returns the switch descriptor for the given ID.
func (g *Graph) Switch(id SwitchID) *Switch { return &g.Switches[id] }

// FindSwitch returns the switch gating the edge from prev to next. A
// missing edge means the caller's node sequence does not follow graph
// edges, which is a consistency violation.
func (g *Graph) FindSwitch(prev, next NodeID) (SwitchID, error) {
	for _, e := range g.Nodes[prev].Edges {
		if e.To == next {
			return e.Switch, nil
		}
	}
	return 0, consistencyErr(prev, next, "no edge between adjacent trace nodes")
}

// FanIn collects the IDs of all nodes with an edge into id. This is a
// full scan of every node's edge list; fine for single-shot interactive
// queries at current graph sizes.
func (g *Graph) FanIn(id NodeID) []NodeID {
	var in []NodeID
	for i := range g.Nodes {
		for _, e := range g.Nodes[i].Edges {
			if e.To == id {
				in = append(in, NodeID(i))
				break
			}
		}
	}
	return in
}

// legalEdge reports whether an edge between the two node types is one of
// the transition classes the drawing layer knows how to render.
func legalEdge(from, to NodeType) bool {
	switch from {
	case Source:
		return to == OPin
	case OPin:
		return to == ChanX || to == ChanY || to == IPin
	case ChanX, ChanY:
		return to == ChanX || to == ChanY || to == IPin
	case IPin:
		return to == Sink
	}
	return false
}

// Validate checks the structural invariants the drawing layer relies on:
// channel nodes span a single row or column, edge targets and switches are
// in range, and every edge's type pair is a legal transition class.
// Occupancy above capacity is NOT an error; that is congestion.
func (g *Graph) Validate() error {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		id := NodeID(i)
		if n.XLow > n.XHigh || n.YLow > n.YHigh {
			return consistencyErr(id, NoNode, "inverted extent (%d,%d)-(%d,%d)",
				n.XLow, n.YLow, n.XHigh, n.YHigh)
		}
		switch n.Type {
		case ChanX:
			if n.YLow != n.YHigh {
				return consistencyErr(id, NoNode, "CHANX spans rows %d-%d", n.YLow, n.YHigh)
			}
			// Horizontal wires start at column 1; the drawing layer
			// indexes the tile left of a wire's low end.
			if n.XLow < 1 {
				return consistencyErr(id, NoNode, "CHANX starts at column %d", n.XLow)
			}
		case ChanY:
			if n.XLow != n.XHigh {
				return consistencyErr(id, NoNode, "CHANY spans columns %d-%d", n.XLow, n.XHigh)
			}
			if n.YLow < 1 {
				return consistencyErr(id, NoNode, "CHANY starts at row %d", n.YLow)
			}
		}
		for _, e := range n.Edges {
			if e.To < 0 || int(e.To) >= len(g.Nodes) {
				return consistencyErr(id, e.To, "edge target out of range")
			}
			if int(e.Switch) < 0 || int(e.Switch) >= len(g.Switches) {
				return consistencyErr(id, e.To, "switch %d out of range", e.Switch)
			}
			if to := g.Nodes[e.To].Type; !legalEdge(n.Type, to) {
				return consistencyErr(id, e.To, "node of type %s connects to node of type %s",
					n.Type, to)
			}
		}
	}
	return nil
}

// NumOverused counts nodes whose occupancy exceeds capacity.
func (g *Graph) NumOverused() int {
	n := 0
	for i := range g.Nodes {
		if g.Nodes[i].Overused() {
			n++
		}
	}
	return n
}

// CongestionRange returns the overuse ratio range over all nodes. The
// minimum is pinned at 1.0 (the boundary of congestion); the maximum is
// the worst occ/capacity ratio observed, never below the minimum.
func (g *Graph) CongestionRange() (min, max float64) {
	min = 1.0
	max = min
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Capacity == 0 {
			continue
		}
		if r := float64(n.Occ) / float64(n.Capacity); r > max {
			max = r
		}
	}
	return min, max
}
