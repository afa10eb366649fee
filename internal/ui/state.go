package ui

import (
	"github.com/routescope/routescope/pkg/draw"
)

// RRLevel selects how much of the routing-resource graph is drawn
// behind the routed nets.
type RRLevel uint8

const (
	RROff   RRLevel = iota // floorplan and routes only
	RRNodes                // wires and pins
	RRFull                 // wires, pins and switch/pin edges
)

func (l RRLevel) String() string {
	switch l {
	case RROff:
		return "off"
	case RRNodes:
		return "nodes"
	case RRFull:
		return "full"
	}
	return "?"
}

// Next cycles to the following detail level.
func (l RRLevel) Next() RRLevel {
	if l == RRFull {
		return RROff
	}
	return l + 1
}

// ViewState holds the toggle state of the viewer. All fields are read
// and written from the frame loop only.
type ViewState struct {
	ShowNets   bool
	RRLevel    RRLevel
	Congestion bool
	CritPath   draw.CritPathMode
	RouteType  draw.RouteType
}

func (v *ViewState) ToggleNets()       { v.ShowNets = !v.ShowNets }
func (v *ViewState) CycleRR()          { v.RRLevel = v.RRLevel.Next() }
func (v *ViewState) ToggleCongestion() { v.Congestion = !v.Congestion }
func (v *ViewState) CycleCritPath()    { v.CritPath = v.CritPath.Next() }

// ToggleRouteType flips between the detailed and global route views.
func (v *ViewState) ToggleRouteType() {
	if v.RouteType == draw.Detailed {
		v.RouteType = draw.Global
	} else {
		v.RouteType = draw.Detailed
	}
}

func (v *ViewState) RouteTypeLabel() string {
	if v.RouteType == draw.Global {
		return "Routes: global"
	}
	return "Routes: detailed"
}

func (v *ViewState) NetsLabel() string {
	if v.ShowNets {
		return "Nets: on"
	}
	return "Nets: off"
}

func (v *ViewState) RRLabel() string {
	return "Graph: " + v.RRLevel.String()
}

func (v *ViewState) CongestionLabel() string {
	if v.Congestion {
		return "Congestion: on"
	}
	return "Congestion: off"
}

func (v *ViewState) CritPathLabel() string {
	return "Crit path: " + v.CritPath.String()
}
