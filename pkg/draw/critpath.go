package draw

import (
	"fmt"
	"image/color"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// CritPathMode selects how the critical timing path is overlaid.
type CritPathMode uint8

const (
	CritPathOff CritPathMode = iota
	CritPathFlylines
	CritPathFlylinesDelays
	CritPathRouted
	CritPathRoutedDelays
)

func (m CritPathMode) String() string {
	switch m {
	case CritPathOff:
		return "off"
	case CritPathFlylines:
		return "flylines"
	case CritPathFlylinesDelays:
		return "flylines with delays"
	case CritPathRouted:
		return "routed"
	case CritPathRoutedDelays:
		return "routed with delays"
	}
	return fmt.Sprintf("CritPathMode(%d)", int(m))
}

// Next cycles to the following overlay mode.
func (m CritPathMode) Next() CritPathMode {
	if m == CritPathRoutedDelays {
		return CritPathOff
	}
	return m + 1
}

// TimingElem is one point of the critical path, as reported by the
// timing analyzer: a block the path passes through, the net that carries
// the signal into it (NoNet for the path's start), the SINK node
// terminating that net's branch here, and the arrival time in ns.
type TimingElem struct {
	Block   int
	Net     int
	Sink    rrg.NodeID
	Arrival float64
}

// NoNet marks a timing element with no incoming net.
const NoNet = -1

// DrawCritPath overlays the critical timing path. Each path edge gets
// its own maximum-contrast color so edges stay tellable apart where the
// path doubles back. In the routed modes the edge follows the net's
// physical routing from the route tree; an edge whose sink was never
// connected (incomplete routing) falls back to a straight fly-line.
func (rp *RoutePainter) DrawCritPath(dl *DrawList, mode CritPathMode, path []TimingElem, nets []rrg.Net, blocks []arch.Block) error {
	if mode == CritPathOff || len(path) == 0 {
		return nil
	}
	delays := mode == CritPathFlylinesDelays || mode == CritPathRoutedDelays
	routed := mode == CritPathRouted || mode == CritPathRoutedDelays

	for i := 1; i < len(path); i++ {
		elem := &path[i]
		col := KellyColor(i - 1)
		from := rp.blockCenter(&blocks[path[i-1].Block])
		to := rp.blockCenter(&blocks[elem.Block])

		drawn := false
		if routed && elem.Net != NoNet && elem.Sink != rrg.NoNode {
			net := &nets[elem.Net]
			if !net.Global && net.Routed() {
				tree, err := rrg.BuildRouteTree(net)
				if err != nil {
					return err
				}
				if branch, ok := tree.FindPath(elem.Sink); ok {
					if err := rp.drawColoredBranch(dl, branch, col); err != nil {
						return err
					}
					drawn = true
				}
			}
		}
		if !drawn {
			dl.WideLine(from, to, col, 2*rp.c.PinSize)
		}

		if delays {
			mid := Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
			dl.Text(mid, fmt.Sprintf("%.3g ns", elem.Arrival-path[i-1].Arrival), col)
		}
	}
	return nil
}

// drawColoredBranch renders one branch with every node forced into the
// given color, restoring the highlight state afterwards.
func (rp *RoutePainter) drawColoredBranch(dl *DrawList, branch []rrg.NodeID, col color.NRGBA) error {
	saved := make([]color.NRGBA, len(branch))
	for i, id := range branch {
		saved[i] = rp.st.NodeColor[id]
		rp.st.NodeColor[id] = col
	}
	err := rp.DrawBranch(dl, branch)
	for i, id := range branch {
		rp.st.NodeColor[id] = saved[i]
	}
	return err
}
