// Package render maps the viewer's draw-space primitives onto a Gio
// window: a pan/zoom camera plus a draw-list replayer.
package render

import (
	"github.com/routescope/routescope/pkg/draw"
)

// Camera is the viewport onto draw space. Draw space has Y increasing
// upward; the screen has Y increasing downward, so every transform flips
// the vertical axis.
type Camera struct {
	// Center position in draw-space units
	CenterX float64
	CenterY float64

	// Zoom level (pixels per draw-space unit)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera with a neutral zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         20.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts a draw-space point to screen pixels.
func (c *Camera) WorldToScreen(p draw.Point) (float64, float64) {
	x := (p.X - c.CenterX) * c.Zoom
	y := (p.Y - c.CenterY) * c.Zoom

	x += float64(c.ScreenWidth) / 2.0
	y += float64(c.ScreenHeight) / 2.0

	return x, float64(c.ScreenHeight) - y
}

// ScreenToWorld converts screen pixels back to a draw-space point.
func (c *Camera) ScreenToWorld(screenX, screenY float64) draw.Point {
	y := float64(c.ScreenHeight) - screenY

	x := screenX - float64(c.ScreenWidth)/2.0
	y = y - float64(c.ScreenHeight)/2.0

	x /= c.Zoom
	y /= c.Zoom

	return draw.Point{X: x + c.CenterX, Y: y + c.CenterY}
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY += deltaY / c.Zoom
}

// ZoomAt zooms at a screen position, keeping the point under the cursor
// stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.5 {
		c.Zoom = 0.5
	}
	if c.Zoom > 2000.0 {
		c.Zoom = 2000.0
	}

	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit centers the camera on a draw-space rectangle and picks the zoom
// that shows all of it with a small margin.
func (c *Camera) Fit(r draw.Rect) {
	width := r.Right - r.Left
	height := r.Top - r.Bottom
	if width <= 0 || height <= 0 {
		return
	}

	c.CenterX = (r.Left + r.Right) / 2.0
	c.CenterY = (r.Bottom + r.Top) / 2.0

	zx := float64(c.ScreenWidth) / width
	zy := float64(c.ScreenHeight) / height
	c.Zoom = zx
	if zy < zx {
		c.Zoom = zy
	}
	c.Zoom *= 0.95
}

// Resize updates the screen dimensions.
func (c *Camera) Resize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
