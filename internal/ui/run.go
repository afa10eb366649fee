package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/routescope/routescope/pkg/draw"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

// Run launches the Gio viewer over one design and blocks until the
// window closes.
func Run(design *routefile.Design, tileWidth float64, view ViewState, critPath []draw.TimingElem) error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("RouteScope"), app.Size(unit.Dp(1024), unit.Dp(768)))
		a, err := New(w, design, tileWidth)
		if err != nil {
			log.Printf("ui: %v", err)
			os.Exit(1)
		}
		a.View = view
		a.SetCritPath(critPath)
		if err := a.Run(); err != nil {
			log.Printf("ui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
