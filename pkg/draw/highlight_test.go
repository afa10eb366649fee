package draw

import (
	"image/color"
	"testing"

	"github.com/routescope/routescope/pkg/rrg"
)

func TestToggleNode(t *testing.T) {
	dev, g, _ := testFixture(t)
	st := NewState(g.NumNodes(), 1, dev.Blocks)

	st.ToggleNode(2)
	if st.NodeColor[2] != ColorSelected {
		t.Fatalf("first toggle: color = %v, want selected", st.NodeColor[2])
	}
	st.ToggleNode(2)
	if st.NodeColor[2] != ColorDeselected {
		t.Fatalf("second toggle: color = %v, want deselected", st.NodeColor[2])
	}
	st.ToggleNode(2)
	if st.NodeColor[2] != ColorSelected {
		t.Fatalf("third toggle: color = %v, want selected again", st.NodeColor[2])
	}
}

func TestPropagationSymmetry(t *testing.T) {
	dev, g, _ := testFixture(t)
	st := NewState(g.NumNodes(), 1, dev.Blocks)

	pre := append([]color.NRGBA(nil), st.NodeColor...)

	// Select node 2, check the one-hop neighborhood took color.
	st.ClickNode(g, 2)
	if st.NodeColor[3] != ColorFanOut || st.NodeColor[4] != ColorFanOut {
		t.Errorf("fan-out colors = %v, %v, want %v", st.NodeColor[3], st.NodeColor[4], ColorFanOut)
	}
	if st.NodeColor[1] != ColorFanIn {
		t.Errorf("fan-in color = %v, want %v", st.NodeColor[1], ColorFanIn)
	}
	// Propagation is exactly one hop: the SINK behind IPIN 4 stays put.
	if st.NodeColor[5] != ColorDefault {
		t.Errorf("two-hop node colored %v, want default", st.NodeColor[5])
	}

	// Deselecting restores every neighbor.
	st.ClickNode(g, 2)
	for i := range g.Nodes {
		if i == 2 {
			continue // the node itself is in the transient deselected state
		}
		if st.NodeColor[i] != pre[i] {
			t.Errorf("node %d color = %v, want pre-toggle %v", i, st.NodeColor[i], pre[i])
		}
	}
	if st.NodeColor[2] != ColorDeselected {
		t.Errorf("node 2 color = %v, want deselected", st.NodeColor[2])
	}
}

func TestPropagationOverwritesNeighbors(t *testing.T) {
	dev, g, _ := testFixture(t)
	st := NewState(g.NumNodes(), 1, dev.Blocks)

	// Selecting the wire recolors the whole one-hop neighborhood,
	// including the IPIN that was itself selected a click earlier.
	st.ClickNode(g, 4)
	st.ClickNode(g, 2)
	if st.NodeColor[4] != ColorFanOut {
		t.Errorf("neighbor color = %v, want fan-out", st.NodeColor[4])
	}
	if st.NodeColor[1] != ColorFanIn {
		t.Errorf("fan-in color = %v, want %v", st.NodeColor[1], ColorFanIn)
	}
}

func TestHighlightNets(t *testing.T) {
	dev, g, _ := testFixture(t)

	nets := []rrg.Net{{
		Name:   "n0",
		Driver: 0,
		Sinks:  []int{1},
		Trace: []rrg.TraceStep{
			{Node: 0}, {Node: 1}, {Node: 2}, {Node: 4}, {Node: 5, EndsBranch: true},
		},
	}}
	st := NewState(g.NumNodes(), len(nets), dev.Blocks)

	st.ClickNode(g, 2)
	st.HighlightNets(g, nets)
	if st.NetColor[0] != ColorSelected {
		t.Fatalf("net color = %v, want selected", st.NetColor[0])
	}

	// Fan-in/fan-out colors never spread to nets: with only node 1 blue
	// on the trace, the net stays plain.
	st.DeselectAll(dev.Blocks)
	st.NodeColor[1] = ColorFanIn
	st.HighlightNets(g, nets)
	if st.NetColor[0] != ColorDefault {
		t.Errorf("net color = %v, want default with only fan colors", st.NetColor[0])
	}

	// A selected node further along the trace still highlights it; the
	// earlier fan-colored step is passed over.
	st.NodeColor[2] = ColorSelected
	st.HighlightNets(g, nets)
	if st.NetColor[0] != ColorSelected {
		t.Errorf("net color = %v, want selected past fan-colored step", st.NetColor[0])
	}

	// A transient deselect anywhere before the first highlight reverts
	// the whole net.
	st.DeselectAll(dev.Blocks)
	st.NodeColor[1] = ColorDeselected
	st.NodeColor[2] = ColorSelected
	st.HighlightNets(g, nets)
	if st.NetColor[0] != ColorDefault {
		t.Errorf("net color = %v, want default after transient deselect", st.NetColor[0])
	}

	// Unrouted nets never change color.
	nets = append(nets, rrg.Net{Name: "n1", Driver: 0})
	st = NewState(g.NumNodes(), len(nets), dev.Blocks)
	st.ClickNode(g, 2)
	st.HighlightNets(g, nets)
	if st.NetColor[1] != ColorDefault {
		t.Errorf("unrouted net colored %v", st.NetColor[1])
	}
}

func TestClickBlock(t *testing.T) {
	dev, g, _ := testFixture(t)
	st := NewState(g.NumNodes(), 0, dev.Blocks)
	def := st.BlockColor[0]

	st.ClickBlock(dev.Blocks, 0)
	if st.SelectedBlock != 0 || st.BlockColor[0] != ColorSelected {
		t.Fatalf("block 0 not selected: %d, %v", st.SelectedBlock, st.BlockColor[0])
	}
	st.ClickBlock(dev.Blocks, 1)
	if st.SelectedBlock != 1 || st.BlockColor[0] != def {
		t.Fatalf("selection did not move: %d, %v", st.SelectedBlock, st.BlockColor[0])
	}
	st.ClickBlock(dev.Blocks, 1)
	if st.SelectedBlock != -1 || st.BlockColor[1] != def {
		t.Fatalf("reclick did not deselect: %d, %v", st.SelectedBlock, st.BlockColor[1])
	}
}

func TestToggleBlockAccumulates(t *testing.T) {
	dev, g, _ := testFixture(t)
	st := NewState(g.NumNodes(), 0, dev.Blocks)
	def := st.BlockColor[0]

	st.ToggleBlock(dev.Blocks, 0)
	st.ToggleBlock(dev.Blocks, 1)
	if st.BlockColor[0] != ColorSelected || st.BlockColor[1] != ColorSelected {
		t.Fatalf("both blocks should stay selected: %v, %v", st.BlockColor[0], st.BlockColor[1])
	}
	st.ToggleBlock(dev.Blocks, 0)
	if st.BlockColor[0] != def || st.BlockColor[1] != ColorSelected {
		t.Fatalf("toggle off touched the wrong block: %v, %v", st.BlockColor[0], st.BlockColor[1])
	}
}
