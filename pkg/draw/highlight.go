package draw

import (
	"image/color"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// State holds the interactive highlight colors for every node, net and
// block. It is the only mutable piece of the drawing layer; everything
// else recomputes from the graph on each redraw.
type State struct {
	NodeColor []color.NRGBA
	NetColor  []color.NRGBA

	BlockColor    []color.NRGBA
	SelectedBlock int // block ID, or arch.NoBlock

	// LastSelected is the most recently clicked node, for the status
	// line. NoNode when the last click selected nothing.
	LastSelected rrg.NodeID
}

// NewState allocates highlight state for a graph with the given node,
// net and block counts, with everything deselected.
func NewState(numNodes, numNets int, blocks []arch.Block) *State {
	st := &State{
		NodeColor:     make([]color.NRGBA, numNodes),
		NetColor:      make([]color.NRGBA, numNets),
		BlockColor:    make([]color.NRGBA, len(blocks)),
		SelectedBlock: arch.NoBlock,
		LastSelected:  rrg.NoNode,
	}
	st.DeselectAll(blocks)
	return st
}

// DeselectAll returns every node, net and block to its default color.
func (st *State) DeselectAll(blocks []arch.Block) {
	for i := range st.NodeColor {
		st.NodeColor[i] = ColorDefault
	}
	for i := range st.NetColor {
		st.NetColor[i] = ColorDefault
	}
	for i := range blocks {
		st.BlockColor[i] = BlockTypeColor(blocks[i].Type.Index)
	}
	st.SelectedBlock = arch.NoBlock
	st.LastSelected = rrg.NoNode
}

// NodeIsHighlighted reports whether the node carries any color other
// than the default.
func (st *State) NodeIsHighlighted(id rrg.NodeID) bool {
	return st.NodeColor[id] != ColorDefault
}

// ToggleNode flips a node between selected and the transient deselected
// state. A node in any other color (fan-in, fan-out, net highlight)
// becomes selected.
func (st *State) ToggleNode(id rrg.NodeID) {
	if st.NodeColor[id] == ColorSelected {
		st.NodeColor[id] = ColorDeselected
	} else {
		st.NodeColor[id] = ColorSelected
	}
}

// PropagateFanInOut colors the one-hop neighborhood of id: everything it
// drives in the fan-out color, everything driving it in the fan-in
// color, overwriting whatever color the neighbors held. When id was
// just deselected the neighborhood reverts to the default instead.
func (st *State) PropagateFanInOut(g *rrg.Graph, id rrg.NodeID) {
	out := ColorFanOut
	in := ColorFanIn
	if st.NodeColor[id] == ColorDeselected {
		out = ColorDefault
		in = ColorDefault
	}
	for _, e := range g.Node(id).Edges {
		st.NodeColor[e.To] = out
	}
	for _, from := range g.FanIn(id) {
		st.NodeColor[from] = in
	}
}

// ClickNode is the full response to a click resolving to a routing
// resource: toggle the node, recolor its neighborhood, and remember it
// for the status line.
func (st *State) ClickNode(g *rrg.Graph, id rrg.NodeID) {
	st.ToggleNode(id)
	st.PropagateFanInOut(g, id)
	st.LastSelected = id
}

// HighlightNets recolors every routed net according to the highlight
// state of the nodes on its trace. Only a selected node highlights the
// net; fan-in/fan-out colors do not spread. The scan stops at the first
// selected or transient-deselected step, so whichever appears first in
// trace order governs.
func (st *State) HighlightNets(g *rrg.Graph, nets []rrg.Net) {
	for i := range nets {
		net := &nets[i]
		st.NetColor[i] = ColorDefault
		if net.Global || !net.Routed() {
			continue
		}
		for _, step := range net.Trace {
			switch st.NodeColor[step.Node] {
			case ColorSelected:
				st.NetColor[i] = ColorSelected
			case ColorDeselected:
				// A freshly deselected node reverts the net to plain
				// routing, regardless of what else lies on the trace.
				st.NetColor[i] = ColorDefault
			default:
				continue
			}
			break
		}
	}
}

// NetIsHighlighted reports whether the net carries a non-default color.
func (st *State) NetIsHighlighted(i int) bool {
	return st.NetColor[i] != ColorDefault
}

// ClickBlock toggles block selection: clicking the selected block
// deselects it, clicking another moves the selection. The previously
// selected block reverts to its type's default fill.
func (st *State) ClickBlock(blocks []arch.Block, id int) {
	if st.SelectedBlock != arch.NoBlock {
		prev := st.SelectedBlock
		st.BlockColor[prev] = BlockTypeColor(blocks[prev].Type.Index)
	}
	if st.SelectedBlock == id {
		st.SelectedBlock = arch.NoBlock
		return
	}
	st.SelectedBlock = id
	st.BlockColor[id] = ColorSelected
}

// ToggleBlock flips one block's selection without touching any other
// highlight, for accumulating selections with a modifier key held.
func (st *State) ToggleBlock(blocks []arch.Block, id int) {
	if st.BlockColor[id] == ColorSelected {
		st.BlockColor[id] = BlockTypeColor(blocks[id].Type.Index)
		if st.SelectedBlock == id {
			st.SelectedBlock = arch.NoBlock
		}
		return
	}
	st.BlockColor[id] = ColorSelected
	st.SelectedBlock = id
}
