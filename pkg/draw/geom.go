package draw

// Point is a draw-space coordinate.
type Point struct {
	X, Y float64
}

// Rect is a draw-space bounding box. For degenerate channel boxes one
// pair of edges coincides: CHANX wires have Bottom == Top, CHANY wires
// have Left == Right.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Contains reports whether the point lies inside the rectangle,
// boundaries included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{Left: r.Left - d, Bottom: r.Bottom - d, Right: r.Right + d, Top: r.Top + d}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Bottom + r.Top) / 2}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.Left, Y: r.Bottom} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.Right, Y: r.Top} }

// SquareAround returns the square of the given half-size centered on p.
func SquareAround(p Point, half float64) Rect {
	return Rect{Left: p.X - half, Bottom: p.Y - half, Right: p.X + half, Top: p.Y + half}
}
