package ui

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/draw"
	"github.com/routescope/routescope/pkg/rrg"
)

// clickSlop is how far the pointer may move between press and release
// for the gesture to still count as a click rather than a pan.
const clickSlop = 4.0

// canvasInput tracks the in-flight pointer gesture on the canvas. Its
// address doubles as the event routing tag.
type canvasInput struct {
	dragging bool
	last     f32.Point
	moved    float64
}

func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.camera.Resize(size.X, size.Y)
	if !a.fitted {
		a.camera.Fit(a.coords.WorldBounds())
		a.fitted = true
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.canvas,
			Kinds:   pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pev.Kind {
		case pointer.Press:
			if pev.Buttons == pointer.ButtonPrimary {
				a.canvas.dragging = true
				a.canvas.last = pev.Position
				a.canvas.moved = 0
			}

		case pointer.Drag:
			if a.canvas.dragging {
				dx := float64(pev.Position.X - a.canvas.last.X)
				dy := float64(pev.Position.Y - a.canvas.last.Y)
				a.camera.Pan(dx, dy)
				a.canvas.moved += math.Hypot(dx, dy)
				a.canvas.last = pev.Position
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Release:
			if a.canvas.dragging && a.canvas.moved < clickSlop {
				a.click(pev.Position, pev.Modifiers)
			}
			a.canvas.dragging = false
			gtx.Execute(op.InvalidateCmd{})

		case pointer.Move:
			world := a.camera.ScreenToWorld(float64(pev.Position.X), float64(pev.Position.Y))
			if id := a.hits.Hit(world); id != a.hover {
				a.hover = id
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Cancel:
			a.canvas.dragging = false

		case pointer.Scroll:
			factor := 1.0 - float64(pev.Scroll.Y)*0.002
			if factor < 0.5 {
				factor = 0.5
			} else if factor > 2.0 {
				factor = 2.0
			}
			a.camera.ZoomAt(float64(pev.Position.X), float64(pev.Position.Y), factor)
			gtx.Execute(op.InvalidateCmd{})
		}
	}

	a.status = a.painter.SelectionStatus(a.View.Congestion)
	if a.state.LastSelected == rrg.NoNode && a.hover != rrg.NoNode {
		a.status = draw.HoverStatus(a.design.Graph, a.hover)
	}
	a.buildFrame()

	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			area := clip.Rect{Max: size}.Push(gtx.Ops)
			a.renderer.Render(gtx, a.camera, &a.list)
			area.Pop()
			return layout.Dimensions{Size: size}
		}),
		// Input layer on top for events.
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			area := clip.Rect{Max: size}.Push(gtx.Ops)
			event.Op(gtx.Ops, &a.canvas)
			area.Pop()
			return layout.Dimensions{Size: size}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Caption(a.Theme, "Drag to pan | Scroll to zoom | Click to inspect")
				label.Color = a.Theme.Palette.Fg
				label.Color.A = 128
				return label.Layout(gtx)
			})
		}),
	)
}

// click resolves a primary click on the canvas: a routing resource
// first, then a block, and otherwise clears every highlight. Holding
// ctrl accumulates block selections instead of moving them.
func (a *App) click(pos f32.Point, mods key.Modifiers) {
	world := a.camera.ScreenToWorld(float64(pos.X), float64(pos.Y))

	if id := a.hits.Hit(world); id != rrg.NoNode {
		a.state.ClickNode(a.design.Graph, id)
		a.state.HighlightNets(a.design.Graph, a.design.Nets)
		return
	}
	if b := a.hits.HitBlock(world); b != arch.NoBlock {
		if mods.Contain(key.ModCtrl) {
			a.state.ToggleBlock(a.design.Device.Blocks, b)
		} else {
			a.state.ClickBlock(a.design.Device.Blocks, b)
		}
		return
	}
	a.state.DeselectAll(a.design.Device.Blocks)
}
