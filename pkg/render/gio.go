package render

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/routescope/routescope/pkg/draw"
)

// minTextZoom is the zoom below which labels are dropped; unreadable
// sub-pixel text only costs shaping time.
const minTextZoom = 12.0

// Renderer replays a draw list onto Gio ops through a camera.
type Renderer struct {
	shaper *text.Shaper
}

// NewRenderer builds a renderer with the default font collection.
func NewRenderer() *Renderer {
	return &Renderer{
		shaper: text.NewShaper(text.WithCollection(gofont.Collection())),
	}
}

// Render replays every primitive of the draw list.
func (r *Renderer) Render(gtx layout.Context, cam *Camera, dl *draw.DrawList) {
	for _, o := range dl.Ops {
		switch p := o.(type) {
		case draw.LineOp:
			r.line(gtx, cam, p)
		case draw.RectOp:
			r.rect(gtx, cam, p)
		case draw.PolyOp:
			r.poly(gtx, cam, p)
		case draw.CircleOp:
			r.circle(gtx, cam, p)
		case draw.TextOp:
			r.text(gtx, cam, p)
		}
	}
}

func (r *Renderer) strokeWidth(cam *Camera, w float64) float32 {
	px := w * cam.Zoom
	if px < 1.0 {
		px = 1.0
	}
	return float32(px)
}

func (r *Renderer) line(gtx layout.Context, cam *Camera, p draw.LineOp) {
	x1, y1 := cam.WorldToScreen(p.From)
	x2, y2 := cam.WorldToScreen(p.To)

	if p.Dashed {
		r.dashedLine(gtx, x1, y1, x2, y2, r.strokeWidth(cam, p.Width), p)
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))
	stroke := clip.Stroke{
		Path:  path.End(),
		Width: r.strokeWidth(cam, p.Width),
	}
	paint.FillShape(gtx.Ops, p.Color, stroke.Op())
}

func (r *Renderer) dashedLine(gtx layout.Context, x1, y1, x2, y2 float64, width float32, p draw.LineOp) {
	const dash = 6.0
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	var path clip.Path
	path.Begin(gtx.Ops)
	for at := 0.0; at < length; at += 2 * dash {
		end := math.Min(at+dash, length)
		path.MoveTo(f32.Pt(float32(x1+ux*at), float32(y1+uy*at)))
		path.LineTo(f32.Pt(float32(x1+ux*end), float32(y1+uy*end)))
	}
	stroke := clip.Stroke{Path: path.End(), Width: width}
	paint.FillShape(gtx.Ops, p.Color, stroke.Op())
}

func (r *Renderer) rect(gtx layout.Context, cam *Camera, p draw.RectOp) {
	// Top-left on screen is the rect's top-left in draw space.
	x1, y1 := cam.WorldToScreen(draw.Point{X: p.R.Left, Y: p.R.Top})
	x2, y2 := cam.WorldToScreen(draw.Point{X: p.R.Right, Y: p.R.Bottom})

	if p.Fill {
		rect := image.Rect(int(x1), int(y1), int(x2), int(y2))
		paint.FillShape(gtx.Ops, p.Color, clip.Rect(rect).Op())
		return
	}

	if p.Dashed {
		w := r.strokeWidth(cam, 0)
		r.dashedLine(gtx, x1, y1, x2, y1, w, draw.LineOp{Color: p.Color})
		r.dashedLine(gtx, x2, y1, x2, y2, w, draw.LineOp{Color: p.Color})
		r.dashedLine(gtx, x2, y2, x1, y2, w, draw.LineOp{Color: p.Color})
		r.dashedLine(gtx, x1, y2, x1, y1, w, draw.LineOp{Color: p.Color})
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))
	path.LineTo(f32.Pt(float32(x1), float32(y2)))
	path.Close()
	stroke := clip.Stroke{Path: path.End(), Width: r.strokeWidth(cam, 0)}
	paint.FillShape(gtx.Ops, p.Color, stroke.Op())
}

func (r *Renderer) poly(gtx layout.Context, cam *Camera, p draw.PolyOp) {
	if len(p.Points) < 3 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	x, y := cam.WorldToScreen(p.Points[0])
	path.MoveTo(f32.Pt(float32(x), float32(y)))
	for _, pt := range p.Points[1:] {
		x, y = cam.WorldToScreen(pt)
		path.LineTo(f32.Pt(float32(x), float32(y)))
	}
	path.Close()
	paint.FillShape(gtx.Ops, p.Color, clip.Outline{Path: path.End()}.Op())
}

func (r *Renderer) circle(gtx layout.Context, cam *Camera, p draw.CircleOp) {
	x, y := cam.WorldToScreen(p.Center)
	rad := p.Radius * cam.Zoom
	if rad < 1.5 {
		rad = 1.5
	}
	rect := image.Rect(int(x-rad), int(y-rad), int(x+rad), int(y+rad))

	stroke := clip.Stroke{
		Path:  clip.Ellipse(rect).Path(gtx.Ops),
		Width: r.strokeWidth(cam, 0),
	}
	paint.FillShape(gtx.Ops, p.Color, stroke.Op())
}

func (r *Renderer) text(gtx layout.Context, cam *Camera, p draw.TextOp) {
	if cam.Zoom < minTextZoom {
		return
	}
	x, y := cam.WorldToScreen(p.At)

	fontSize := 0.4 * cam.Zoom
	if fontSize > 24.0 {
		fontSize = 24.0
	}

	macro := op.Record(gtx.Ops)
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)

	paint.ColorOp{Color: p.Color}.Add(gtx.Ops)
	label := widget.Label{
		Alignment: text.Middle,
		MaxLines:  1,
	}
	label.Layout(gtx, r.shaper, font.Font{}, unit.Sp(fontSize), p.Text, op.CallOp{})

	stack.Pop()
	call := macro.Stop()
	call.Add(gtx.Ops)
}
