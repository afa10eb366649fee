// Package rrg models the routing-resource graph of a placed-and-routed
// FPGA design: nodes (wires, pins, logical sources/sinks), switched edges
// between them, and the per-net routing traces chosen by the router. The
// graph is built once per routing solution and consumed read-only; node
// IDs are stable for the lifetime of that solution.
package rrg

import "fmt"

// NodeID indexes a node in the graph.
type NodeID int32

// NoNode is the explicit "no result" node ID.
const NoNode NodeID = -1

// NodeType classifies a routing resource.
type NodeType uint8

const (
	Source NodeType = iota // logical net source inside a block
	Sink                   // logical net sink inside a block
	OPin                   // output pin on the block boundary
	IPin                   // input pin on the block boundary
	ChanX                  // horizontal channel wire segment
	ChanY                  // vertical channel wire segment
)

var nodeTypeNames = [...]string{"SOURCE", "SINK", "OPIN", "IPIN", "CHANX", "CHANY"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// IsPin reports whether t is an IPIN or OPIN.
func (t NodeType) IsPin() bool { return t == IPin || t == OPin }

// IsChan reports whether t is a channel wire type.
func (t NodeType) IsChan() bool { return t == ChanX || t == ChanY }

// Direction is the signal direction of a channel wire.
type Direction uint8

const (
	BiDir Direction = iota // bidirectional wire
	IncDir                 // driven at the low end, signal travels up
	DecDir                 // driven at the high end, signal travels down
)

func (d Direction) String() string {
	switch d {
	case BiDir:
		return "BI"
	case IncDir:
		return "INC"
	case DecDir:
		return "DEC"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// SwitchID indexes a switch descriptor in the graph.
type SwitchID int16

// Switch is the connection element gating one edge. Only the buffered flag
// matters for drawing: buffered switches are drawn as triangles, pass
// transistors as circles.
type Switch struct {
	Name     string
	Buffered bool
}

// Edge is one outgoing connection of a node.
type Edge struct {
	To     NodeID
	Switch SwitchID
}

// Node is one routing resource. The geometric extent spans
// (XLow,YLow)-(XHigh,YHigh) in grid coordinates; channel nodes occupy a
// single row or column. Ptc is the track index for channel nodes and the
// pin index for pin nodes.
type Node struct {
	Type                     NodeType
	XLow, XHigh, YLow, YHigh int
	Ptc                      int
	Occ, Capacity            int
	Dir                      Direction
	Edges                    []Edge
}

// Length returns the number of tiles the node spans along its axis.
func (n *Node) Length() int {
	return (n.XHigh - n.XLow) + (n.YHigh - n.YLow) + 1
}

// Overused reports whether the router left more nets on this resource
// than it has capacity for.
func (n *Node) Overused() bool {
	return n.Occ > n.Capacity
}
