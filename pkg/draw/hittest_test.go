package draw

import (
	"testing"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

func TestHitPin(t *testing.T) {
	dev, g, c := testFixture(t)
	ht, err := NewHitTester(g, dev, c)
	if err != nil {
		t.Fatalf("NewHitTester: %v", err)
	}

	// Points strictly inside a pin's drawn square resolve to that pin.
	center := Point{X: 14, Y: 9} // IPIN 4, pin 1 on TOP of (2,1)
	for _, p := range []Point{
		center,
		{X: center.X - c.PinSize/2, Y: center.Y - c.PinSize/2},
		{X: center.X + c.PinSize/2, Y: center.Y + c.PinSize/2},
	} {
		if got := ht.Hit(p); got != 4 {
			t.Errorf("Hit(%+v) = %d, want 4", p, got)
		}
	}

	// The same pin is also mapped on RIGHT and clickable there too.
	if got := ht.Hit(Point{X: 15, Y: 8}); got != 4 {
		t.Errorf("Hit on RIGHT mapping = %d, want 4", got)
	}
}

func TestHitChan(t *testing.T) {
	dev, g, c := testFixture(t)
	ht, err := NewHitTester(g, dev, c)
	if err != nil {
		t.Fatalf("NewHitTester: %v", err)
	}

	tests := []struct {
		name string
		p    Point
		want rrg.NodeID
	}{
		{"on the wire", Point{X: 8, Y: 10}, 2},
		{"within tolerance", Point{X: 8, Y: 10.25}, 2},
		{"outside tolerance", Point{X: 8, Y: 10.5}, rrg.NoNode},
		{"vertical wire", Point{X: 11.2, Y: 12}, 3},
		{"empty space", Point{X: 1, Y: 1}, rrg.NoNode},
	}
	for _, tt := range tests {
		if got := ht.Hit(tt.p); got != tt.want {
			t.Errorf("%s: Hit(%+v) = %d, want %d", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestHitNeverReturnsSourceOrSink(t *testing.T) {
	dev, g, c := testFixture(t)
	ht, err := NewHitTester(g, dev, c)
	if err != nil {
		t.Fatalf("NewHitTester: %v", err)
	}

	// Clicks over the SOURCE/SINK tiles resolve to nothing, never to the
	// logical nodes themselves.
	p := c.TileBBox(2, 2).Center()
	if got := ht.Hit(p); got != rrg.NoNode {
		t.Errorf("Hit over SOURCE/SINK tile = %d, want NoNode", got)
	}
}

func TestHitBlock(t *testing.T) {
	dev, g, c := testFixture(t)
	ht, err := NewHitTester(g, dev, c)
	if err != nil {
		t.Fatalf("NewHitTester: %v", err)
	}

	if got := ht.HitBlock(c.TileBBox(1, 1).Center()); got != 0 {
		t.Errorf("HitBlock over b0 = %d, want 0", got)
	}
	if got := ht.HitBlock(c.TileBBox(2, 1).Center()); got != 1 {
		t.Errorf("HitBlock over b1 = %d, want 1", got)
	}
	if got := ht.HitBlock(c.TileBBox(0, 0).Center()); got != arch.NoBlock {
		t.Errorf("HitBlock over empty tile = %d, want NoBlock", got)
	}
}
