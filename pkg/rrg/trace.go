package rrg

// TraceStep is one entry of a net's routing trace. EndsBranch tags the
// step that terminates one branch of the route (a sink); the step after
// it, if any, restarts the next branch from a node already on the route.
type TraceStep struct {
	Node       NodeID
	EndsBranch bool
}

// Net is one routed net: its driver and sink blocks plus the flattened
// multi-branch trace recorded by the router. An empty trace means the net
// is unrouted. Global nets carry no drawable routing and are skipped by
// every rendering path.
type Net struct {
	Name   string
	Global bool
	Driver int   // driver block ID
	Sinks  []int // sink block IDs
	Trace  []TraceStep
}

// Routed reports whether the router recorded a trace for the net.
func (n *Net) Routed() bool { return len(n.Trace) > 0 }

// MarkBranchEnds sets EndsBranch on every step whose node is a SINK.
// Called once at load time so that Flatten never needs to consult node
// types.
func MarkBranchEnds(g *Graph, trace []TraceStep) {
	for i := range trace {
		trace[i].EndsBranch = g.Nodes[trace[i].Node].Type == Sink
	}
}

// Flatten splits a net's trace into independently drawable node
// sequences, one per branch. Each returned sequence ends with the step
// that closed it (the sink); a trailing unterminated branch, as occurs in
// partially complete routings, is returned as-is. An empty trace yields
// no sequences.
func Flatten(trace []TraceStep) [][]NodeID {
	var seqs [][]NodeID
	var cur []NodeID
	for _, step := range trace {
		cur = append(cur, step.Node)
		if step.EndsBranch {
			seqs = append(seqs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		seqs = append(seqs, cur)
	}
	return seqs
}
