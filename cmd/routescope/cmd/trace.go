package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routescope/routescope/pkg/rrg"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

var traceCmd = &cobra.Command{
	Use:   "trace <route_file> <net>",
	Short: "Print a net's routing trace",
	Long: `Print the routing trace of one net, branch by branch. Each branch
runs from a node already on the route down to one sink.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func findNet(design *routefile.Design, name string) (*rrg.Net, error) {
	for i := range design.Nets {
		if design.Nets[i].Name == name {
			return &design.Nets[i], nil
		}
	}
	return nil, fmt.Errorf("no net named %q", name)
}

func runTrace(cmd *cobra.Command, args []string) error {
	design, err := routefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	net, err := findNet(design, args[1])
	if err != nil {
		return err
	}
	if net.Global {
		fmt.Printf("Net %s is global and carries no routing\n", net.Name)
		return nil
	}
	if !net.Routed() {
		fmt.Printf("Net %s is unrouted\n", net.Name)
		return nil
	}

	fmt.Printf("Net %s: driver %s, %d sinks\n", net.Name,
		design.Device.Blocks[net.Driver].Name, len(net.Sinks))
	for i, branch := range rrg.Flatten(net.Trace) {
		fmt.Printf("branch %d:\n", i)
		for _, id := range branch {
			n := design.Graph.Node(id)
			fmt.Printf("  #%-4d %-6s (%d,%d) -> (%d,%d) ptc %d\n",
				id, n.Type, n.XLow, n.YLow, n.XHigh, n.YHigh, n.Ptc)
		}
	}
	return nil
}
