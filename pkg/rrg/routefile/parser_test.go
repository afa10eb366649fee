package routefile

import (
	"strings"
	"testing"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

const sampleDesign = `
# minimal placed-and-routed design: one net from b0 to b1
device 2 2
chanwidth x 2 2 2 2
chanwidth y 2 2 2 2

blocktype clb index 3 size 1 1 pins 2 capacity 1 {
    pin 0 output on 0 0 top
    pin 1 on 0 0 top
    pin 1 on 0 0 right
}

tile 1 1 clb
tile 2 1 clb
tile 1 2 clb
tile 2 2 clb

block b0 at 1 1 0
block b1 at 2 1 0

switch 0 mux buffered
switch 1 pt pass

node 0 SOURCE 1 1 1 1 ptc 0 cap 1
node 1 OPIN 1 1 1 1 ptc 0 cap 1
node 2 CHANX 1 1 2 1 ptc 0 dir INC cap 1 occ 1
node 3 CHANY 1 1 1 2 ptc 1 dir BI cap 1
node 4 IPIN 2 1 2 1 ptc 1 cap 1
node 5 SINK 2 1 2 1 ptc 1 cap 1

edge 0 1 switch 0
edge 1 2 switch 0
edge 2 3 switch 1
edge 2 4 switch 0
edge 4 5 switch 0

net n0 driver b0 sinks b1 {
    route 0 1 2 4 5
}
global net clk driver b0 sinks b1 {
}
`

func mustParse(t *testing.T, input string) *File {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	f, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return f
}

func TestParseSample(t *testing.T) {
	f := mustParse(t, sampleDesign)

	counts := map[string]int{}
	for _, s := range f.Statements {
		switch {
		case s.Device != nil:
			counts["device"]++
		case s.ChanWidth != nil:
			counts["chanwidth"]++
		case s.BlockType != nil:
			counts["blocktype"]++
		case s.Tile != nil:
			counts["tile"]++
		case s.Block != nil:
			counts["block"]++
		case s.Switch != nil:
			counts["switch"]++
		case s.Node != nil:
			counts["node"]++
		case s.Edge != nil:
			counts["edge"]++
		case s.Net != nil:
			counts["net"]++
		}
	}
	want := map[string]int{
		"device": 1, "chanwidth": 2, "blocktype": 1, "tile": 4,
		"block": 2, "switch": 2, "node": 6, "edge": 5, "net": 2,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s statements = %d, want %d", k, counts[k], n)
		}
	}
}

func TestBuildSample(t *testing.T) {
	d, err := Build(mustParse(t, sampleDesign))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if d.Device.NX != 2 || d.Device.NY != 2 {
		t.Errorf("grid = %dx%d, want 2x2", d.Device.NX, d.Device.NY)
	}
	if got := d.Device.Tile(1, 1).Type; got == nil || got.Name != "clb" {
		t.Errorf("tile (1,1) type = %v, want clb", got)
	}
	if len(d.Device.Blocks) != 2 || d.Device.Blocks[1].Name != "b1" {
		t.Fatalf("blocks = %+v", d.Device.Blocks)
	}

	if d.Graph.NumNodes() != 6 {
		t.Fatalf("nodes = %d, want 6", d.Graph.NumNodes())
	}
	n := d.Graph.Node(2)
	if n.Type != rrg.ChanX || n.Dir != rrg.IncDir || n.Occ != 1 || len(n.Edges) != 2 {
		t.Errorf("node 2 = %+v", n)
	}
	if !d.Graph.Switch(0).Buffered || d.Graph.Switch(1).Buffered {
		t.Errorf("switch flags wrong: %+v", d.Graph.Switches)
	}

	clb := d.Device.Types[0]
	if !clb.IsOutputPin(0) || clb.IsOutputPin(1) {
		t.Errorf("output pin flags wrong")
	}
	if !clb.PinOnSide(0, 0, arch.Right, 1) || clb.PinOnSide(0, 0, arch.Right, 0) {
		t.Errorf("pin placement wrong")
	}

	if len(d.Nets) != 2 {
		t.Fatalf("nets = %d, want 2", len(d.Nets))
	}
	n0 := d.Nets[0]
	if n0.Name != "n0" || n0.Driver != 0 || len(n0.Sinks) != 1 || n0.Sinks[0] != 1 {
		t.Errorf("net n0 = %+v", n0)
	}
	// Branch ends were marked from node types during build.
	if !n0.Trace[4].EndsBranch {
		t.Error("SINK step not marked as branch end")
	}
	for i := 0; i < 4; i++ {
		if n0.Trace[i].EndsBranch {
			t.Errorf("step %d wrongly marked as branch end", i)
		}
	}
	if !d.Nets[1].Global || d.Nets[1].Routed() {
		t.Errorf("net clk = %+v, want unrouted global", d.Nets[1])
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"no device",
			`switch 0 mux buffered`,
			"missing device",
		},
		{
			"chanwidth length",
			"device 2 2\nchanwidth x 2 2",
			"want 4",
		},
		{
			"unknown blocktype",
			"device 2 2\ntile 1 1 clb",
			"unknown blocktype",
		},
		{
			"node out of order",
			"device 2 2\nnode 1 SOURCE 1 1 1 1 ptc 0 cap 1",
			"out of order",
		},
		{
			"edge to undeclared node",
			"device 2 2\nswitch 0 mux buffered\nnode 0 SOURCE 1 1 1 1 ptc 0 cap 1\nedge 0 9 switch 0",
			"out of range",
		},
		{
			"illegal edge pair",
			"device 2 2\nswitch 0 mux buffered\n" +
				"node 0 SOURCE 1 1 1 1 ptc 0 cap 1\nnode 1 SINK 1 1 1 1 ptc 0 cap 1\n" +
				"edge 0 1 switch 0",
			"SOURCE",
		},
		{
			"unknown net driver",
			"device 2 2\nnet n0 driver nope sinks nope {\n}",
			"unknown driver",
		},
	}
	for _, tt := range tests {
		_, err := Build(mustParse(t, tt.input))
		if err == nil {
			t.Errorf("%s: Build succeeded, want error containing %q", tt.name, tt.want)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not contain %q", tt.name, err, tt.want)
		}
	}
}
