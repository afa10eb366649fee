package draw

import (
	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// RouteType distinguishes the two routing views. Detailed routings carry
// real track assignments on their channel nodes; global (abstracted)
// routings only name channels, so drawing must invent a track per wire
// to keep nets visually separable.
type RouteType uint8

const (
	Detailed RouteType = iota
	Global
)

// TrackAllocator hands out display tracks for globally-routed wires. One
// counter per channel segment; each wire gets the next free track in the
// channel it starts in and keeps it for the session.
type TrackAllocator struct {
	chanX [][]int // next track above row y at column x
	chanY [][]int // next track right of column x at row y

	assigned map[rrg.NodeID]int
}

// NewTrackAllocator sizes the per-channel counters for a device.
func NewTrackAllocator(dev *arch.Device) *TrackAllocator {
	ta := &TrackAllocator{
		chanX:    make([][]int, dev.NX+2),
		chanY:    make([][]int, dev.NX+2),
		assigned: make(map[rrg.NodeID]int),
	}
	for x := range ta.chanX {
		ta.chanX[x] = make([]int, dev.NY+2)
		ta.chanY[x] = make([]int, dev.NY+2)
	}
	return ta
}

// Reset forgets every assignment, ready for a fresh redraw of all nets.
func (ta *TrackAllocator) Reset() {
	for x := range ta.chanX {
		for y := range ta.chanX[x] {
			ta.chanX[x][y] = 0
			ta.chanY[x][y] = 0
		}
	}
	ta.assigned = make(map[rrg.NodeID]int)
}

// Track returns the display track for a channel node: the node's own
// track index for detailed routings, an allocated one for global. Wires
// sharing a channel segment in a global routing get distinct tracks in
// allocation order.
func (ta *TrackAllocator) Track(rt RouteType, id rrg.NodeID, n *rrg.Node) int {
	if rt == Detailed {
		return n.Ptc
	}
	if t, ok := ta.assigned[id]; ok {
		return t
	}
	var t int
	switch n.Type {
	case rrg.ChanX:
		t = ta.chanX[n.XLow][n.YLow]
		ta.chanX[n.XLow][n.YLow]++
	case rrg.ChanY:
		t = ta.chanY[n.XLow][n.YLow]
		ta.chanY[n.XLow][n.YLow]++
	}
	ta.assigned[id] = t
	return t
}
