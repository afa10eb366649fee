package draw

import (
	"image/color"
	"math"
)

// The core never touches a window: it appends primitive commands to a
// DrawList in draw-space coordinates, and the renderer replays them.

// Op is one primitive draw command.
type Op interface {
	isOp()
}

// LineOp draws a straight line segment.
type LineOp struct {
	From, To Point
	Color    color.NRGBA
	Width    float64 // 0 means hairline
	Dashed   bool
}

// RectOp draws a rectangle outline or fill.
type RectOp struct {
	R      Rect
	Color  color.NRGBA
	Fill   bool
	Dashed bool
}

// PolyOp draws a filled polygon.
type PolyOp struct {
	Points []Point
	Color  color.NRGBA
}

// CircleOp draws a circle outline.
type CircleOp struct {
	Center Point
	Radius float64
	Color  color.NRGBA
}

// TextOp draws a label centered at a point, clipped to Bound when
// Bound is non-zero.
type TextOp struct {
	At    Point
	Text  string
	Color color.NRGBA
	Bound Rect
}

func (LineOp) isOp()   {}
func (RectOp) isOp()   {}
func (PolyOp) isOp()   {}
func (CircleOp) isOp() {}
func (TextOp) isOp()   {}

// DrawList accumulates primitive commands for one redraw.
type DrawList struct {
	Ops []Op
}

// Reset clears the list, retaining capacity across redraws.
func (dl *DrawList) Reset() {
	dl.Ops = dl.Ops[:0]
}

// Line appends a hairline segment.
func (dl *DrawList) Line(from, to Point, col color.NRGBA) {
	dl.Ops = append(dl.Ops, LineOp{From: from, To: to, Color: col})
}

// WideLine appends a segment with explicit width.
func (dl *DrawList) WideLine(from, to Point, col color.NRGBA, width float64) {
	dl.Ops = append(dl.Ops, LineOp{From: from, To: to, Color: col, Width: width})
}

// DashedLine appends a dashed hairline segment.
func (dl *DrawList) DashedLine(from, to Point, col color.NRGBA, width float64) {
	dl.Ops = append(dl.Ops, LineOp{From: from, To: to, Color: col, Width: width, Dashed: true})
}

// Rect appends a rectangle outline.
func (dl *DrawList) Rect(r Rect, col color.NRGBA, dashed bool) {
	dl.Ops = append(dl.Ops, RectOp{R: r, Color: col, Dashed: dashed})
}

// FillRect appends a filled rectangle.
func (dl *DrawList) FillRect(r Rect, col color.NRGBA) {
	dl.Ops = append(dl.Ops, RectOp{R: r, Color: col, Fill: true})
}

// FillPoly appends a filled polygon.
func (dl *DrawList) FillPoly(pts []Point, col color.NRGBA) {
	dl.Ops = append(dl.Ops, PolyOp{Points: pts, Color: col})
}

// Circle appends a circle outline.
func (dl *DrawList) Circle(center Point, radius float64, col color.NRGBA) {
	dl.Ops = append(dl.Ops, CircleOp{Center: center, Radius: radius, Color: col})
}

// Text appends a label centered at a point.
func (dl *DrawList) Text(at Point, s string, col color.NRGBA) {
	dl.Ops = append(dl.Ops, TextOp{At: at, Text: s, Color: col})
}

// TextIn appends a label centered in and clipped to a rectangle.
func (dl *DrawList) TextIn(r Rect, s string, col color.NRGBA) {
	dl.Ops = append(dl.Ops, TextOp{At: r.Center(), Text: s, Color: col, Bound: r})
}

// X appends an X marker centered at (p), with arms of the given size.
func (dl *DrawList) X(p Point, size float64, col color.NRGBA) {
	dl.Line(Point{X: p.X - size, Y: p.Y + size}, Point{X: p.X + size, Y: p.Y - size}, col)
	dl.Line(Point{X: p.X - size, Y: p.Y - size}, Point{X: p.X + size, Y: p.Y + size}, col)
}

// DefaultArrowSize is the side length of direction/switch triangles in
// draw-space units.
const DefaultArrowSize = 0.3

// Triangle appends a triangle centered at end, sized arrowSize, rotated
// to point along the directed segment from -> to.
func (dl *DrawList) Triangle(end, from, to Point, arrowSize float64, col color.NRGBA) {
	rad := arrowSize / 2
	dx := to.X - from.X
	dy := to.Y - from.Y
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return
	}
	ux, uy := dx/mag, dy/mag

	tip := Point{X: end.X + ux*rad, Y: end.Y + uy*rad}
	baseX, baseY := end.X-ux*rad, end.Y-uy*rad
	dl.FillPoly([]Point{
		tip,
		{X: baseX + uy*rad, Y: baseY - ux*rad},
		{X: baseX - uy*rad, Y: baseY + ux*rad},
	}, col)
}

// TriangleAlong places a triangle along the segment from -> to at a
// relative position in [0, 1]: 0 centers it at from, 1 at to.
func (dl *DrawList) TriangleAlong(from, to Point, rel, arrowSize float64, col color.NRGBA) {
	at := Point{
		X: from.X + (to.X-from.X)*rel,
		Y: from.Y + (to.Y-from.Y)*rel,
	}
	dl.Triangle(at, from, to, arrowSize, col)
}
