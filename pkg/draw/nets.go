package draw

import (
	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// blockCenter returns the draw-space center of a placed block's root
// tile.
func (rp *RoutePainter) blockCenter(b *arch.Block) Point {
	return rp.c.TileBBox(b.X, b.Y).Center()
}

// DrawNets renders the logical netlist as fly-line stars: one straight
// line from each net's driver block to each of its sink blocks, in the
// net's highlight color. Global nets are skipped.
func (rp *RoutePainter) DrawNets(dl *DrawList, nets []rrg.Net, blocks []arch.Block) {
	for i := range nets {
		net := &nets[i]
		if net.Global {
			continue
		}
		driver := rp.blockCenter(&blocks[net.Driver])
		for _, sink := range net.Sinks {
			dl.Line(driver, rp.blockCenter(&blocks[sink]), rp.st.NetColor[i])
		}
	}
}
