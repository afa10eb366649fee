package draw

import (
	"errors"
	"strings"
	"testing"

	"github.com/routescope/routescope/pkg/rrg"
)

func testPainter(t *testing.T) (*RoutePainter, *rrg.Graph) {
	t.Helper()
	dev, g, c := testFixture(t)
	st := NewState(g.NumNodes(), 1, dev.Blocks)
	return NewRoutePainter(g, dev, c, st), g
}

// countOps tallies the draw list by primitive kind.
func countOps(dl *DrawList) (lines, rects, polys, circles, texts int) {
	for _, op := range dl.Ops {
		switch op.(type) {
		case LineOp:
			lines++
		case RectOp:
			rects++
		case PolyOp:
			polys++
		case CircleOp:
			circles++
		case TextOp:
			texts++
		}
	}
	return
}

func TestDrawBranchFullRoute(t *testing.T) {
	rp, _ := testPainter(t)
	var dl DrawList

	if err := rp.DrawBranch(&dl, []rrg.NodeID{0, 1, 2, 4, 5}); err != nil {
		t.Fatalf("DrawBranch: %v", err)
	}
	if len(dl.Ops) == 0 {
		t.Fatal("DrawBranch drew nothing")
	}
	// The OPIN drives an increasing wire: the single-drive connection
	// gets an arrow, and nothing on this branch is a pass transistor.
	_, _, polys, circles, _ := countOps(&dl)
	if polys == 0 {
		t.Error("no arrow drawn for the driven unidirectional wire")
	}
	if circles != 0 {
		t.Errorf("unexpected pass-transistor circles: %d", circles)
	}
}

func TestDrawBranchDegenerate(t *testing.T) {
	rp, _ := testPainter(t)

	// A SOURCE feeding a SINK in the same block has no physical wire:
	// only the connection marker appears.
	var dl DrawList
	if err := rp.DrawBranch(&dl, []rrg.NodeID{6, 7}); err != nil {
		t.Fatalf("DrawBranch: %v", err)
	}
	lines, rects, polys, circles, texts := countOps(&dl)
	if lines != 2 || rects != 0 || polys != 0 || circles != 0 || texts != 0 {
		t.Errorf("degenerate connection drew %d lines, %d rects, %d polys, %d circles, %d texts; want the 2-line marker only",
			lines, rects, polys, circles, texts)
	}
}

func TestDrawBranchIllegalPair(t *testing.T) {
	rp, _ := testPainter(t)

	// OPIN directly into SINK is outside the legal transition classes.
	var dl DrawList
	err := rp.DrawBranch(&dl, []rrg.NodeID{1, 5})
	var gce *rrg.GraphConsistencyError
	if !errors.As(err, &gce) {
		t.Fatalf("DrawBranch error = %v, want GraphConsistencyError", err)
	}
}

func TestDrawBranchMissingEdge(t *testing.T) {
	rp, _ := testPainter(t)

	// CHANY 3 has no edge back to CHANX 2; the switch lookup must fail.
	var dl DrawList
	err := rp.DrawBranch(&dl, []rrg.NodeID{3, 2})
	var gce *rrg.GraphConsistencyError
	if !errors.As(err, &gce) {
		t.Fatalf("DrawBranch error = %v, want GraphConsistencyError", err)
	}
}

func TestTrackAllocator(t *testing.T) {
	rp, g := testPainter(t)
	ta := rp.tracks

	// Detailed view bypasses allocation entirely.
	if got := ta.Track(Detailed, 2, g.Node(2)); got != g.Node(2).Ptc {
		t.Errorf("detailed track = %d, want node's own %d", got, g.Node(2).Ptc)
	}

	// Two wires sharing a channel location get distinct tracks; asking
	// again returns the same assignment.
	other := *g.Node(2)
	g.Nodes = append(g.Nodes, other)
	id2 := rrg.NodeID(len(g.Nodes) - 1)

	ta.Reset()
	t0 := ta.Track(Global, 2, g.Node(2))
	t1 := ta.Track(Global, id2, g.Node(id2))
	if t0 == t1 {
		t.Errorf("co-located wires share track %d", t0)
	}
	if again := ta.Track(Global, 2, g.Node(2)); again != t0 {
		t.Errorf("track reassigned: %d then %d", t0, again)
	}

	// Reset starts the cycle over.
	ta.Reset()
	if got := ta.Track(Global, 2, g.Node(2)); got != 0 {
		t.Errorf("track after reset = %d, want 0", got)
	}
}

func TestDrawRoutesHighlighted(t *testing.T) {
	rp, g := testPainter(t)

	nets := []rrg.Net{{
		Name:   "n0",
		Driver: 0,
		Sinks:  []int{1},
		Trace: []rrg.TraceStep{
			{Node: 0}, {Node: 1}, {Node: 2}, {Node: 4}, {Node: 5, EndsBranch: true},
		},
	}}

	var dl DrawList
	if err := rp.DrawRoutes(&dl, nets, true); err != nil {
		t.Fatalf("DrawRoutes: %v", err)
	}
	if len(dl.Ops) != 0 {
		t.Fatalf("non-highlighted net drawn in highlight-only pass: %d ops", len(dl.Ops))
	}

	rp.st.ClickNode(g, 2)
	rp.st.HighlightNets(g, nets)
	if err := rp.DrawRoutes(&dl, nets, true); err != nil {
		t.Fatalf("DrawRoutes: %v", err)
	}
	if len(dl.Ops) == 0 {
		t.Fatal("highlighted net not drawn")
	}
	// The whole trace was pulled into the net color.
	for _, step := range nets[0].Trace {
		if rp.st.NodeColor[step.Node] != rp.st.NetColor[0] {
			t.Errorf("node %d color %v, want net color %v",
				step.Node, rp.st.NodeColor[step.Node], rp.st.NetColor[0])
		}
	}
}

func TestDrawNetsSkipsGlobals(t *testing.T) {
	dev, g, c := testFixture(t)
	nets := []rrg.Net{
		{Name: "n0", Driver: 0, Sinks: []int{1}},
		{Name: "clk", Global: true, Driver: 0, Sinks: []int{1}},
	}
	st := NewState(g.NumNodes(), len(nets), dev.Blocks)
	rp := NewRoutePainter(g, dev, c, st)

	var dl DrawList
	rp.DrawNets(&dl, nets, dev.Blocks)
	lines, _, _, _, _ := countOps(&dl)
	if lines != 1 {
		t.Fatalf("fly-lines = %d, want 1 (global net draws none)", lines)
	}
}

func TestDrawRR(t *testing.T) {
	rp, _ := testPainter(t)
	var dl DrawList
	if err := rp.DrawRR(&dl); err != nil {
		t.Fatalf("DrawRR: %v", err)
	}
	lines, rects, _, circles, texts := countOps(&dl)
	if lines == 0 || rects == 0 || texts == 0 {
		t.Errorf("DrawRR incomplete: %d lines, %d rects, %d texts", lines, rects, texts)
	}
	// CHANX 2 -> CHANY 3 goes through the pass transistor.
	if circles == 0 {
		t.Error("no pass-transistor circle drawn")
	}
}

func TestCongestion(t *testing.T) {
	rp, g := testPainter(t)

	var dl DrawList
	rp.DrawCongestion(&dl)
	if len(dl.Ops) != 0 {
		t.Fatalf("congestion overlay drew %d ops with nothing overused", len(dl.Ops))
	}

	g.Nodes[2].Occ = 3
	rp.DrawCongestion(&dl)
	if len(dl.Ops) == 0 {
		t.Fatal("overused wire not drawn")
	}
	if s := rp.CongestionStatus(); !strings.Contains(s, "3.00") {
		t.Errorf("status %q does not report the worst ratio", s)
	}
}

func TestSelectionStatus(t *testing.T) {
	rp, g := testPainter(t)

	if s := rp.SelectionStatus(false); !strings.Contains(s, "Click") {
		t.Errorf("idle status = %q", s)
	}
	rp.st.ClickNode(g, 2)
	s := rp.SelectionStatus(false)
	for _, want := range []string{"#2", "CHANX", "(1,1)", "(2,1)", "track: 0", "2 edges"} {
		if !strings.Contains(s, want) {
			t.Errorf("status %q missing %q", s, want)
		}
	}
}

func TestHoverStatus(t *testing.T) {
	_, g := testPainter(t)

	s := HoverStatus(g, 2)
	for _, want := range []string{"#2", "CHANX", "length: 2", "track: 0"} {
		if !strings.Contains(s, want) {
			t.Errorf("chan hover %q missing %q", s, want)
		}
	}
	if s := HoverStatus(g, 4); !strings.Contains(s, "pin: 1") {
		t.Errorf("pin hover = %q", s)
	}
}

func TestCritPathFallback(t *testing.T) {
	rp, _ := testPainter(t)

	nets := []rrg.Net{{
		Name:   "n0",
		Driver: 0,
		Sinks:  []int{1},
		Trace: []rrg.TraceStep{
			{Node: 0}, {Node: 1}, {Node: 2}, {Node: 4}, {Node: 5, EndsBranch: true},
		},
	}}
	path := []TimingElem{
		{Block: 0, Net: NoNet, Sink: rrg.NoNode, Arrival: 0},
		{Block: 1, Net: 0, Sink: 5, Arrival: 1.5},
	}

	// Routed mode follows the physical path.
	var dl DrawList
	if err := rp.DrawCritPath(&dl, CritPathRouted, path, nets, rp.dev.Blocks); err != nil {
		t.Fatalf("DrawCritPath: %v", err)
	}
	lines, _, _, _, _ := countOps(&dl)
	if lines < 2 {
		t.Errorf("routed crit path drew %d lines, want the physical route", lines)
	}

	// A sink that never made it onto the route falls back to a fly-line.
	path[1].Sink = 7
	dl.Reset()
	if err := rp.DrawCritPath(&dl, CritPathRoutedDelays, path, nets, rp.dev.Blocks); err != nil {
		t.Fatalf("DrawCritPath: %v", err)
	}
	lines, _, _, _, texts := countOps(&dl)
	if lines != 1 {
		t.Errorf("fallback drew %d lines, want 1 fly-line", lines)
	}
	if texts != 1 {
		t.Errorf("delay mode drew %d labels, want 1", texts)
	}

	// Off mode draws nothing.
	dl.Reset()
	if err := rp.DrawCritPath(&dl, CritPathOff, path, nets, rp.dev.Blocks); err != nil {
		t.Fatalf("DrawCritPath: %v", err)
	}
	if len(dl.Ops) != 0 {
		t.Errorf("off mode drew %d ops", len(dl.Ops))
	}
}
