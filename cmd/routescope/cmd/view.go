package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appui "github.com/routescope/routescope/internal/ui"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

var viewCmd = &cobra.Command{
	Use:   "view <route_file>",
	Short: "Launch the interactive viewer",
	Long: `Open a placed-and-routed design in the graphical viewer. Click on
routing resources or blocks to inspect and highlight them; toolbar
buttons toggle net fly-lines, graph detail, and the congestion overlay.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		design, err := routefile.Load(args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		rt, err := routeType()
		if err != nil {
			return err
		}
		view := appui.ViewState{RouteType: rt}
		return appui.Run(design, tileWidth, view, nil)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
