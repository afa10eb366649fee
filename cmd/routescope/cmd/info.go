package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routescope/routescope/pkg/rrg"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

var infoCmd = &cobra.Command{
	Use:   "info <route_file>",
	Short: "Show design summary",
	Long: `Display a summary of a placed-and-routed design: grid size, block
types, placed blocks, routing-resource counts, net counts, and the
congestion picture.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	design, err := routefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	dev, g := design.Device, design.Graph

	fmt.Printf("Design: %s\n", args[0])
	fmt.Printf("Grid: %dx%d logic tiles, max channel width %d\n", dev.NX, dev.NY, dev.Chan.Max())
	fmt.Printf("Block types: %d, placed blocks: %d\n", len(dev.Types), len(dev.Blocks))

	edges := 0
	byType := map[rrg.NodeType]int{}
	for i := range g.Nodes {
		byType[g.Nodes[i].Type]++
		edges += len(g.Nodes[i].Edges)
	}
	fmt.Printf("Routing resources: %d nodes, %d edges\n", g.NumNodes(), edges)
	for _, t := range []rrg.NodeType{rrg.Source, rrg.Sink, rrg.OPin, rrg.IPin, rrg.ChanX, rrg.ChanY} {
		if byType[t] > 0 {
			fmt.Printf("  %-6s %d\n", t, byType[t])
		}
	}

	routed, global := 0, 0
	for i := range design.Nets {
		if design.Nets[i].Global {
			global++
		} else if design.Nets[i].Routed() {
			routed++
		}
	}
	fmt.Printf("Nets: %d (%d routed, %d global)\n", len(design.Nets), routed, global)

	if n := g.NumOverused(); n > 0 {
		_, max := g.CongestionRange()
		fmt.Printf("Congestion: %d overused nodes, worst ratio %.2f\n", n, max)
	} else {
		fmt.Println("Congestion: none")
	}

	if verbose {
		for i := range dev.Blocks {
			b := &dev.Blocks[i]
			fmt.Printf("  block %-12s %s at (%d,%d) sub-tile %d\n", b.Name, b.Type.Name, b.X, b.Y, b.SubTile)
		}
	}
	return nil
}
