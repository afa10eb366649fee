package rrg

import "fmt"

// GraphConsistencyError reports an edge or extent that violates the graph
// invariants: the upstream graph builder produced a corrupt graph, so the
// current draw or query must be aborted rather than papered over.
type GraphConsistencyError struct {
	From, To NodeID // To is NoNode for single-node violations
	Detail   string
}

func (e *GraphConsistencyError) Error() string {
	if e.To == NoNode {
		return fmt.Sprintf("rr graph inconsistency at node %d: %s", e.From, e.Detail)
	}
	return fmt.Sprintf("rr graph inconsistency on edge %d -> %d: %s", e.From, e.To, e.Detail)
}

func consistencyErr(from, to NodeID, format string, args ...interface{}) error {
	return &GraphConsistencyError{From: from, To: to, Detail: fmt.Sprintf(format, args...)}
}

// PairError reports an adjacent node pair whose type transition is
// outside the legal classes.
func PairError(from, to NodeID, fromType, toType NodeType) error {
	return consistencyErr(from, to, "unexpected connection from %s to %s", fromType, toType)
}
