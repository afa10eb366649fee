package draw

import "image/color"

// Highlight and type-default colors. The selection state machine only
// compares against ColorSelected and ColorDeselected, so those two must
// not collide with any other palette entry.
var (
	ColorDefault    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}       // black
	ColorSelected   = color.NRGBA{R: 255, G: 0, B: 255, A: 255}   // magenta
	ColorDeselected = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // white, transient
	ColorFanOut     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}     // red: driven by the selection
	ColorFanIn      = color.NRGBA{R: 0, G: 0, B: 255, A: 255}     // blue: drives the selection

	ColorOPin     = color.NRGBA{R: 255, G: 192, B: 203, A: 255} // pink
	ColorIPin     = color.NRGBA{R: 135, G: 206, B: 250, A: 255} // light sky blue
	ColorChanEdge = color.NRGBA{R: 0, G: 100, B: 0, A: 255}     // dark green
	ColorPinEdge  = color.NRGBA{R: 135, G: 206, B: 250, A: 255} // light sky blue
	ColorPinToPin = color.NRGBA{R: 147, G: 112, B: 219, A: 255} // medium purple

	ColorUsed    = color.NRGBA{R: 0, G: 0, B: 255, A: 255}     // non-congested but occupied
	ColorText    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}       // labels
	ColorFlyline = color.NRGBA{R: 0, G: 0, B: 255, A: 255}     // timing fly-lines
	ColorEmpty   = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // empty IO-ring tiles
	ColorGrey    = color.NRGBA{R: 211, G: 211, B: 211, A: 255} // default block fill
)

// kellyColors is Kelly's maximum-contrast sequence (white omitted: it does
// not read against the light background). Used to distinguish routed
// timing-path edges; long paths wrap around.
var kellyColors = []color.NRGBA{
	{R: 34, G: 34, B: 34, A: 255},    // black
	{R: 243, G: 195, B: 0, A: 255},   // yellow
	{R: 135, G: 86, B: 146, A: 255},  // purple
	{R: 243, G: 132, B: 0, A: 255},   // orange
	{R: 161, G: 202, B: 241, A: 255}, // light blue
	{R: 190, G: 0, B: 50, A: 255},    // red
	{R: 194, G: 178, B: 128, A: 255}, // buff
	{R: 132, G: 132, B: 130, A: 255}, // gray
	{R: 0, G: 136, B: 86, A: 255},    // green
	{R: 230, G: 143, B: 172, A: 255}, // purplish pink
	{R: 0, G: 103, B: 165, A: 255},   // blue
	{R: 249, G: 147, B: 121, A: 255}, // yellowish pink
	{R: 96, G: 78, B: 151, A: 255},   // violet
	{R: 246, G: 166, B: 0, A: 255},   // orange yellow
	{R: 179, G: 68, B: 108, A: 255},  // purplish red
	{R: 220, G: 211, B: 0, A: 255},   // greenish yellow
	{R: 136, G: 45, B: 23, A: 255},   // reddish brown
	{R: 141, G: 182, B: 0, A: 255},   // yellow green
	{R: 101, G: 69, B: 34, A: 255},   // yellowish brown
	{R: 226, G: 88, B: 34, A: 255},   // reddish orange
	{R: 43, G: 61, B: 38, A: 255},    // olive green
}

// KellyColor returns the i'th maximum-contrast color, wrapping for long
// sequences.
func KellyColor(i int) color.NRGBA {
	return kellyColors[i%len(kellyColors)]
}

// blockPalette is the ramp used for per-type default block fills.
var blockPalette = []color.NRGBA{
	{R: 255, G: 228, B: 196, A: 255}, // bisque
	{R: 255, G: 218, B: 185, A: 255}, // peach puff
	{R: 250, G: 235, B: 215, A: 255}, // antique white
	{R: 245, G: 222, B: 179, A: 255}, // wheat
	{R: 255, G: 239, B: 213, A: 255}, // papaya whip
	{R: 255, G: 235, B: 205, A: 255}, // blanched almond
	{R: 255, G: 222, B: 173, A: 255}, // navajo white
	{R: 250, G: 250, B: 210, A: 255}, // light goldenrod
}

// BlockTypeColor returns the default fill for blocks of the given type
// index. The first few type indices (empty, IO) stay light grey; the rest
// walk the bisque ramp.
func BlockTypeColor(typeIndex int) color.NRGBA {
	if typeIndex < 3 {
		return ColorGrey
	}
	i := typeIndex - 3
	if i >= len(blockPalette) {
		i = len(blockPalette) - 1
	}
	return blockPalette[i]
}

// plasmaAnchors approximates the plasma color ramp used for the
// congestion overlay.
var plasmaAnchors = []color.NRGBA{
	{R: 13, G: 8, B: 135, A: 255},
	{R: 126, G: 3, B: 168, A: 255},
	{R: 204, G: 71, B: 120, A: 255},
	{R: 248, G: 149, B: 64, A: 255},
	{R: 240, G: 249, B: 33, A: 255},
}

// CongestionColor maps an overuse ratio onto the plasma ramp over
// [min, max]. Ratios at or below min take the coolest color.
func CongestionColor(ratio, min, max float64) color.NRGBA {
	if max <= min {
		return plasmaAnchors[len(plasmaAnchors)-1]
	}
	t := (ratio - min) / (max - min)
	if t <= 0 {
		return plasmaAnchors[0]
	}
	if t >= 1 {
		return plasmaAnchors[len(plasmaAnchors)-1]
	}
	scaled := t * float64(len(plasmaAnchors)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	a, b := plasmaAnchors[i], plasmaAnchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
