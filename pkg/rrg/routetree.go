package rrg

// RouteTree is a tree reconstruction of one net's trace, used for
// sink-directed search. It is a transient scratch structure: built on
// demand from a trace, walked, and discarded within a single query.
type RouteTree struct {
	Node     NodeID
	Children []*RouteTree
}

// BuildRouteTree reconstructs the route tree of a net from its flattened
// trace. The first branch runs from the net's source to its first sink;
// every later branch must restart at a node already on the tree, from
// which it hangs as a new subtree. A restart at an unknown node means the
// trace is corrupt.
func BuildRouteTree(net *Net) (*RouteTree, error) {
	branches := Flatten(net.Trace)
	if len(branches) == 0 {
		return nil, nil
	}

	byNode := make(map[NodeID]*RouteTree)
	var root *RouteTree

	for i, branch := range branches {
		var parent *RouteTree
		rest := branch
		if i == 0 {
			root = &RouteTree{Node: branch[0]}
			byNode[branch[0]] = root
			parent = root
			rest = branch[1:]
		} else {
			var ok bool
			parent, ok = byNode[branch[0]]
			if !ok {
				return nil, consistencyErr(branch[0], NoNode,
					"trace for net %q restarts at a node not on the route tree", net.Name)
			}
			rest = branch[1:]
		}
		for _, id := range rest {
			child := &RouteTree{Node: id}
			parent.Children = append(parent.Children, child)
			byNode[id] = child
			parent = child
		}
	}
	return root, nil
}

// FindPath returns the ordered node sequence from the tree's root to the
// given sink, or false if the sink is not on the tree. Depth-first: tree
// depth is bounded by physical route length, so recursion is safe.
func (t *RouteTree) FindPath(sink NodeID) ([]NodeID, bool) {
	if t == nil {
		return nil, false
	}
	if t.Node == sink {
		return []NodeID{sink}, true
	}
	for _, child := range t.Children {
		if path, ok := child.FindPath(sink); ok {
			return append([]NodeID{t.Node}, path...), true
		}
	}
	return nil, false
}
