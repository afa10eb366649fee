package ui

import (
	"image/color"
	"log"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/routescope/routescope/pkg/draw"
	"github.com/routescope/routescope/pkg/render"
	"github.com/routescope/routescope/pkg/rrg"
	"github.com/routescope/routescope/pkg/rrg/routefile"
)

// App drives the Gio-based routing viewer over one placed-and-routed
// design.
type App struct {
	Window *app.Window
	Theme  *material.Theme
	View   ViewState

	design  *routefile.Design
	coords  *draw.Coords
	state   *draw.State
	painter *draw.RoutePainter
	hits    *draw.HitTester

	camera   *render.Camera
	renderer *render.Renderer
	list     draw.DrawList

	// Critical timing path, empty when no timing info was loaded.
	critPath []draw.TimingElem

	ops    op.Ops
	fitted bool
	status string
	hover  rrg.NodeID

	netsBtn       widget.Clickable
	rrBtn         widget.Clickable
	congestionBtn widget.Clickable
	critBtn       widget.Clickable
	routeTypeBtn  widget.Clickable
	fitBtn        widget.Clickable
	fitIcon       *widget.Icon

	canvas canvasInput
}

// New wires the window, theme, and drawing pipeline together for one
// design. tileWidth sets the draw-space size of a tile.
func New(window *app.Window, design *routefile.Design, tileWidth float64) (*App, error) {
	coords := draw.NewCoords(design.Device, tileWidth)
	state := draw.NewState(design.Graph.NumNodes(), len(design.Nets), design.Device.Blocks)
	painter := draw.NewRoutePainter(design.Graph, design.Device, coords, state)
	hits, err := draw.NewHitTester(design.Graph, design.Device, coords)
	if err != nil {
		return nil, err
	}

	theme := material.NewTheme()
	theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	a := &App{
		Window:   window,
		Theme:    theme,
		design:   design,
		coords:   coords,
		state:    state,
		painter:  painter,
		hits:     hits,
		camera:   render.NewCamera(800, 600),
		renderer: render.NewRenderer(),
		status:   "Click on a routing resource or block to inspect it",
		hover:    rrg.NoNode,
	}
	if icon, err := widget.NewIcon(icons.MapsZoomOutMap); err == nil {
		a.fitIcon = icon
	} else {
		log.Printf("ui: failed to load zoom icon: %v", err)
	}
	return a, nil
}

// SetCritPath installs the critical timing path shown by the crit-path
// overlay modes.
func (a *App) SetCritPath(path []draw.TimingElem) {
	a.critPath = path
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, color.NRGBA{R: 238, G: 241, B: 251, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutToolbar(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutViewport(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatus(gtx)
		}),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	for a.netsBtn.Clicked(gtx) {
		a.View.ToggleNets()
	}
	for a.rrBtn.Clicked(gtx) {
		a.View.CycleRR()
	}
	for a.congestionBtn.Clicked(gtx) {
		a.View.ToggleCongestion()
	}
	for a.critBtn.Clicked(gtx) {
		a.View.CycleCritPath()
	}
	for a.routeTypeBtn.Clicked(gtx) {
		a.View.ToggleRouteType()
	}
	for a.fitBtn.Clicked(gtx) {
		a.camera.Fit(a.coords.WorldBounds())
	}

	button := func(clk *widget.Clickable, label string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(a.Theme, clk, label)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			return btn.Layout(gtx)
		})
	}
	spacer := layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout)

	return layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			button(&a.netsBtn, a.View.NetsLabel()),
			spacer,
			button(&a.rrBtn, a.View.RRLabel()),
			spacer,
			button(&a.congestionBtn, a.View.CongestionLabel()),
			spacer,
			button(&a.critBtn, a.View.CritPathLabel()),
			spacer,
			button(&a.routeTypeBtn, a.View.RouteTypeLabel()),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.fitIcon == nil {
					btn := material.Button(a.Theme, &a.fitBtn, "Fit")
					btn.Inset = layout.UniformInset(unit.Dp(6))
					return btn.Layout(gtx)
				}
				btn := material.IconButton(a.Theme, &a.fitBtn, a.fitIcon, "Fit view")
				btn.Size = unit.Dp(20)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, color.NRGBA{R: 230, G: 234, B: 244, A: 255}, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			inset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}
			return inset.Layout(gtx, material.Body2(a.Theme, a.status).Layout)
		}),
	)
}

// buildFrame recomputes the draw list for the current view state.
func (a *App) buildFrame() {
	a.list.Reset()
	a.painter.RouteType = a.View.RouteType

	a.painter.DrawGrid(&a.list, a.design.Device.Blocks)

	switch a.View.RRLevel {
	case RRNodes:
		a.painter.DrawRRNodes(&a.list)
	case RRFull:
		if err := a.painter.DrawRR(&a.list); err != nil {
			a.status = err.Error()
		}
	}

	if a.View.Congestion {
		a.painter.DrawCongestion(&a.list)
	}

	// With the graph shown, only highlighted routes are redrawn on top
	// of it; otherwise all routed nets are visible.
	onlyHighlighted := a.View.RRLevel != RROff
	if err := a.painter.DrawRoutes(&a.list, a.design.Nets, onlyHighlighted); err != nil {
		a.status = err.Error()
	}

	if a.View.ShowNets {
		a.painter.DrawNets(&a.list, a.design.Nets, a.design.Device.Blocks)
	}

	if a.View.CritPath != draw.CritPathOff && len(a.critPath) > 0 {
		err := a.painter.DrawCritPath(&a.list, a.View.CritPath, a.critPath, a.design.Nets, a.design.Device.Blocks)
		if err != nil {
			a.status = err.Error()
		}
	}
}
