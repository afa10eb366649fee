package rrg

import "testing"

func steps(nodes []NodeID, branchEnds ...int) []TraceStep {
	ends := make(map[int]bool, len(branchEnds))
	for _, i := range branchEnds {
		ends[i] = true
	}
	out := make([]TraceStep, len(nodes))
	for i, n := range nodes {
		out[i] = TraceStep{Node: n, EndsBranch: ends[i]}
	}
	return out
}

func TestFlattenSingleBranch(t *testing.T) {
	trace := steps([]NodeID{0, 1, 2, 4, 5}, 4)
	seqs := Flatten(trace)
	if len(seqs) != 1 {
		t.Fatalf("Flatten returned %d sequences, want 1", len(seqs))
	}
	want := []NodeID{0, 1, 2, 4, 5}
	for i, n := range want {
		if seqs[0][i] != n {
			t.Fatalf("seq[0] = %v, want %v", seqs[0], want)
		}
	}
}

func TestFlattenPartition(t *testing.T) {
	// Two sinks: one sequence per sink, each ending in its own sink, no
	// sink shared between sequences.
	trace := steps([]NodeID{0, 1, 2, 5, 2, 3, 4, 7}, 3, 7)
	seqs := Flatten(trace)
	if len(seqs) != 2 {
		t.Fatalf("Flatten returned %d sequences, want 2", len(seqs))
	}
	seen := make(map[NodeID]bool)
	for _, seq := range seqs {
		if len(seq) == 0 {
			t.Fatal("Flatten produced an empty sequence")
		}
		last := seq[len(seq)-1]
		if seen[last] {
			t.Errorf("sink %d appears in more than one sequence", last)
		}
		seen[last] = true
	}
	if !seen[5] || !seen[7] {
		t.Errorf("sequence ends = %v, want sinks 5 and 7", seen)
	}
}

func TestFlattenUnroutedNet(t *testing.T) {
	if seqs := Flatten(nil); len(seqs) != 0 {
		t.Errorf("Flatten(nil) = %v, want no sequences", seqs)
	}
}

func TestFlattenTrailingPartialBranch(t *testing.T) {
	trace := steps([]NodeID{0, 1, 5, 1, 2}, 2)
	seqs := Flatten(trace)
	if len(seqs) != 2 {
		t.Fatalf("Flatten returned %d sequences, want 2", len(seqs))
	}
	if got := seqs[1]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("trailing partial branch = %v, want [1 2]", got)
	}
}

func TestMarkBranchEnds(t *testing.T) {
	g := testGraph()
	trace := []TraceStep{{Node: 0}, {Node: 1}, {Node: 2}, {Node: 3}, {Node: 4}, {Node: 5}}
	MarkBranchEnds(g, trace)
	for i, step := range trace {
		want := g.Nodes[step.Node].Type == Sink
		if step.EndsBranch != want {
			t.Errorf("step %d EndsBranch = %v, want %v", i, step.EndsBranch, want)
		}
	}
}
