package tilt

import (
	"math"
	"strconv"
)

// Background parallax range. The background layer moves over a damped window
// of its full travel.
const (
	backgroundMin = 35.0
	backgroundMax = 65.0

	// rotateDivisor maps the signed center offset (-50..50) to degrees.
	rotateDivisor = 6.0
)

// Params is the derived display parameter set for one frame. All values are
// computed from the smoothed pointer position and the surface size.
type Params struct {
	PercentX, PercentY float64 // pointer position as a percentage of the surface, [0, 100]
	CenterX, CenterY   float64 // signed offset from the center, [-50, 50]

	// PointerFromCenter is the normalized radial distance from the center,
	// [0, 1]. Drives glow intensity.
	PointerFromCenter float64

	PointerFromLeft float64 // PercentX / 100
	PointerFromTop  float64 // PercentY / 100

	BackgroundX, BackgroundY float64 // damped parallax offset, [35, 65]

	RotateX float64 // degrees; negative tilts the top edge away
	RotateY float64 // degrees
}

// ComputeParams derives the display parameters for a pointer at (x, y) in
// surface-local coordinates. A width or height that is not positive is
// treated as 1, so unmeasured surfaces produce extreme but finite values.
func ComputeParams(x, y, width, height float64) Params {
	if !(width > 0) {
		width = 1
	}
	if !(height > 0) {
		height = 1
	}

	px := clamp((100/width)*x, 0, 100)
	py := clamp((100/height)*y, 0, 100)
	cx := px - 50
	cy := py - 50

	return Params{
		PercentX:          px,
		PercentY:          py,
		CenterX:           cx,
		CenterY:           cy,
		PointerFromCenter: clamp(math.Hypot(cy, cx)/50, 0, 1),
		PointerFromLeft:   px / 100,
		PointerFromTop:    py / 100,
		BackgroundX:       remap(px, 0, 100, backgroundMin, backgroundMax),
		BackgroundY:       remap(py, 0, 100, backgroundMin, backgroundMax),
		RotateX:           round3(-cy / rotateDivisor),
		RotateY:           round3(cx / rotateDivisor),
	}
}

// Var is one named display parameter in custom-property form.
type Var struct {
	Name, Value string
}

// Vars renders the parameter set as named custom properties, in a fixed
// order. Hosts that style through string properties consume this directly.
func (p Params) Vars() []Var {
	return []Var{
		{"--pointer-x", pct(p.PercentX)},
		{"--pointer-y", pct(p.PercentY)},
		{"--pointer-from-center", num(p.PointerFromCenter)},
		{"--pointer-from-top", num(p.PointerFromTop)},
		{"--pointer-from-left", num(p.PointerFromLeft)},
		{"--rotate-x", deg(p.RotateX)},
		{"--rotate-y", deg(p.RotateY)},
		{"--background-x", pct(p.BackgroundX)},
		{"--background-y", pct(p.BackgroundY)},
	}
}

func clamp(v, lo, hi float64) float64 {
	// NaN collapses to lo.
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func remap(v, fromMin, fromMax, toMin, toMax float64) float64 {
	return toMin + (toMax-toMin)*(v-fromMin)/(fromMax-fromMin)
}

func round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
func pct(v float64) string { return num(v) + "%" }
func deg(v float64) string { return num(v) + "deg" }
