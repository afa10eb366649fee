package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routescope/routescope/pkg/draw"
)

var (
	// Global flags
	verbose   bool
	tileWidth float64
	routeView string
)

var rootCmd = &cobra.Command{
	Use:   "routescope",
	Short: "RouteScope - FPGA place-and-route visualization tools",
	Long: `RouteScope inspects placed-and-routed FPGA designs: the device
floorplan, the routing-resource graph, routed nets, and congestion.

Examples:
  routescope view design.route             # Launch interactive viewer
  routescope info design.route             # Show design summary
  routescope trace design.route net_a      # Print a net's routing trace
  routescope path design.route net_a 41    # Print the driver-to-sink path`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Float64Var(&tileWidth, "tile-width", 3.0, "draw-space width of one tile")
	rootCmd.PersistentFlags().StringVar(&routeView, "routes", "detailed", "route view: detailed or global")
}

func routeType() (draw.RouteType, error) {
	switch routeView {
	case "detailed":
		return draw.Detailed, nil
	case "global":
		return draw.Global, nil
	}
	return draw.Detailed, fmt.Errorf("unknown route view %q (want detailed or global)", routeView)
}
