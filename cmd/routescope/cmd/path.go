package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/routescope/routescope/pkg/rrg"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

var pathCmd = &cobra.Command{
	Use:   "path <route_file> <net> <sink_node>",
	Short: "Print the driver-to-sink path within a net",
	Long: `Rebuild the route tree of one net and print the unique path from the
net's driver down to the given sink node.`,
	Args: cobra.ExactArgs(3),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	design, err := routefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	net, err := findNet(design, args[1])
	if err != nil {
		return err
	}
	sink, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("sink node %q: %w", args[2], err)
	}

	tree, err := rrg.BuildRouteTree(net)
	if err != nil {
		return fmt.Errorf("net %s: %w", net.Name, err)
	}
	path, ok := tree.FindPath(rrg.NodeID(sink))
	if !ok {
		return fmt.Errorf("net %s does not reach node %d", net.Name, sink)
	}

	fmt.Printf("Net %s, %d hops to node %d:\n", net.Name, len(path)-1, sink)
	for _, id := range path {
		n := design.Graph.Node(id)
		fmt.Printf("  #%-4d %-6s (%d,%d) -> (%d,%d) ptc %d\n",
			id, n.Type, n.XLow, n.YLow, n.XHigh, n.YHigh, n.Ptc)
	}
	return nil
}
