package routefile

import (
	"fmt"
	"strings"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// Design is everything one interchange file describes.
type Design struct {
	Device *arch.Device
	Graph  *rrg.Graph
	Nets   []rrg.Net
}

var sideNames = map[string]arch.Side{
	"top":    arch.Top,
	"right":  arch.Right,
	"bottom": arch.Bottom,
	"left":   arch.Left,
}

var nodeTypeNames = map[string]rrg.NodeType{
	"SOURCE": rrg.Source,
	"SINK":   rrg.Sink,
	"OPIN":   rrg.OPin,
	"IPIN":   rrg.IPin,
	"CHANX":  rrg.ChanX,
	"CHANY":  rrg.ChanY,
}

var dirNames = map[string]rrg.Direction{
	"BI":  rrg.BiDir,
	"INC": rrg.IncDir,
	"DEC": rrg.DecDir,
}

// Build turns a parsed file into a validated design. Statement kinds may
// interleave, but a statement may only refer to things already declared:
// types before tiles, tiles before blocks, nodes before edges and
// traces.
func Build(f *File) (*Design, error) {
	var dev *arch.Device
	types := map[string]*arch.BlockType{}
	blocks := map[string]int{}
	g := &rrg.Graph{}
	var nets []rrg.Net

	for _, stmt := range f.Statements {
		switch {
		case stmt.Device != nil:
			if dev != nil {
				return nil, fmt.Errorf("duplicate device statement")
			}
			dev = arch.NewDevice(stmt.Device.NX, stmt.Device.NY)

		case stmt.ChanWidth != nil:
			s := stmt.ChanWidth
			if dev == nil {
				return nil, fmt.Errorf("chanwidth before device")
			}
			var list []int
			switch s.Axis {
			case "x":
				list = dev.Chan.XList
			case "y":
				list = dev.Chan.YList
			default:
				return nil, fmt.Errorf("chanwidth axis %q: want x or y", s.Axis)
			}
			if len(s.Widths) != len(list) {
				return nil, fmt.Errorf("chanwidth %s: %d widths, want %d", s.Axis, len(s.Widths), len(list))
			}
			copy(list, s.Widths)

		case stmt.BlockType != nil:
			s := stmt.BlockType
			if _, dup := types[s.Name]; dup {
				return nil, fmt.Errorf("duplicate blocktype %q", s.Name)
			}
			t := arch.NewBlockType(s.Name, s.Index, s.Width, s.Height, s.NumPins, s.Capacity)
			for _, p := range s.Pins {
				side, ok := sideNames[strings.ToLower(p.Side)]
				if !ok {
					return nil, fmt.Errorf("blocktype %q pin %d: unknown side %q", s.Name, p.Num, p.Side)
				}
				if p.Num < 0 || p.Num >= s.NumPins {
					return nil, fmt.Errorf("blocktype %q: pin %d out of range", s.Name, p.Num)
				}
				t.SetPinLoc(p.W, p.H, side, p.Num)
				if p.Output {
					t.SetOutputPin(p.Num)
				}
			}
			types[s.Name] = t
			if dev == nil {
				return nil, fmt.Errorf("blocktype before device")
			}
			dev.Types = append(dev.Types, t)

		case stmt.Tile != nil:
			s := stmt.Tile
			if dev == nil {
				return nil, fmt.Errorf("tile before device")
			}
			t, ok := types[s.Type]
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d): unknown blocktype %q", s.X, s.Y, s.Type)
			}
			if !dev.InBounds(s.X, s.Y) {
				return nil, fmt.Errorf("tile (%d,%d) outside grid", s.X, s.Y)
			}
			tile := dev.Tile(s.X, s.Y)
			tile.Type = t
			if s.Offset != nil {
				tile.WidthOffset = s.Offset.W
				tile.HeightOffset = s.Offset.H
			}

		case stmt.Block != nil:
			s := stmt.Block
			if dev == nil {
				return nil, fmt.Errorf("block before device")
			}
			id, err := dev.PlaceBlock(s.Name, s.X, s.Y, s.SubTile)
			if err != nil {
				return nil, err
			}
			if _, dup := blocks[s.Name]; dup {
				return nil, fmt.Errorf("duplicate block %q", s.Name)
			}
			blocks[s.Name] = id

		case stmt.Switch != nil:
			s := stmt.Switch
			if s.ID != len(g.Switches) {
				return nil, fmt.Errorf("switch %d out of order, want %d", s.ID, len(g.Switches))
			}
			g.Switches = append(g.Switches, rrg.Switch{
				Name:     s.Name,
				Buffered: s.Kind == "buffered",
			})

		case stmt.Node != nil:
			s := stmt.Node
			if s.ID != len(g.Nodes) {
				return nil, fmt.Errorf("node %d out of order, want %d", s.ID, len(g.Nodes))
			}
			nt, ok := nodeTypeNames[s.Type]
			if !ok {
				return nil, fmt.Errorf("node %d: unknown type %q", s.ID, s.Type)
			}
			n := rrg.Node{
				Type: nt,
				XLow: s.XLow, YLow: s.YLow, XHigh: s.XHigh, YHigh: s.YHigh,
				Ptc:      s.Ptc,
				Capacity: s.Cap,
			}
			if s.Dir != "" {
				d, ok := dirNames[s.Dir]
				if !ok {
					return nil, fmt.Errorf("node %d: unknown direction %q", s.ID, s.Dir)
				}
				n.Dir = d
			}
			if s.Occ != nil {
				n.Occ = *s.Occ
			}
			g.Nodes = append(g.Nodes, n)

		case stmt.Edge != nil:
			s := stmt.Edge
			if s.From < 0 || s.From >= len(g.Nodes) {
				return nil, fmt.Errorf("edge %d -> %d: source node undeclared", s.From, s.To)
			}
			g.Nodes[s.From].Edges = append(g.Nodes[s.From].Edges, rrg.Edge{
				To:     rrg.NodeID(s.To),
				Switch: rrg.SwitchID(s.Switch),
			})

		case stmt.Net != nil:
			s := stmt.Net
			driver, ok := blocks[s.Driver]
			if !ok {
				return nil, fmt.Errorf("net %q: unknown driver block %q", s.Name, s.Driver)
			}
			net := rrg.Net{Name: s.Name, Global: s.Global, Driver: driver}
			for _, sink := range s.Sinks {
				id, ok := blocks[sink]
				if !ok {
					return nil, fmt.Errorf("net %q: unknown sink block %q", s.Name, sink)
				}
				net.Sinks = append(net.Sinks, id)
			}
			for _, id := range s.Route {
				if id < 0 || id >= len(g.Nodes) {
					return nil, fmt.Errorf("net %q: trace node %d undeclared", s.Name, id)
				}
				net.Trace = append(net.Trace, rrg.TraceStep{Node: rrg.NodeID(id)})
			}
			nets = append(nets, net)
		}
	}

	if dev == nil {
		return nil, fmt.Errorf("missing device statement")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("routing graph: %w", err)
	}
	for i := range nets {
		rrg.MarkBranchEnds(g, nets[i].Trace)
	}
	return &Design{Device: dev, Graph: g, Nets: nets}, nil
}

// Load parses and builds a design from a file path.
func Load(path string) (*Design, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}
