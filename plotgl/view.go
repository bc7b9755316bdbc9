package plotgl

import "math"

// View is the visible x/y range of the plot plus its interaction rules
// (pan, zoom, fit). It does not depend on any input system.
type View struct {
	XMin, XMax float64
	YMin, YMax float64

	MinSpan float64
	MaxSpan float64
}

// DefaultView is the initial graphing range.
func DefaultView() View {
	return View{
		XMin: -10, XMax: 10,
		YMin: -10, YMax: 10,
		MinSpan: 1e-6,
		MaxSpan: 1e9,
	}
}

func (v *View) XSpan() float64 { return v.XMax - v.XMin }
func (v *View) YSpan() float64 { return v.YMax - v.YMin }

// Valid reports whether both ranges are non-empty and finite.
func (v *View) Valid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMin < v.XMax && v.YMin < v.YMax
}

// ToScreen maps a plot-space point into a w×h pixel area. The boolean is
// false when the point is outside the view.
func (v *View) ToScreen(x, y float64, w, h int) (sx, sy int, ok bool) {
	if !v.Valid() || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	fx := (x - v.XMin) / v.XSpan()
	fy := (y - v.YMin) / v.YSpan()
	sx = int(fx*float64(w-1) + 0.5)
	sy = int((1-fy)*float64(h-1) + 0.5)
	ok = fx >= 0 && fx <= 1 && fy >= 0 && fy <= 1
	return sx, sy, ok
}

// Pan shifts the view by fractions of the current spans.
func (v *View) Pan(dxFrac, dyFrac float64) {
	dx := v.XSpan() * dxFrac
	dy := v.YSpan() * dyFrac
	v.XMin += dx
	v.XMax += dx
	v.YMin += dy
	v.YMax += dy
}

// Zoom scales both spans around the view center. factor < 1 zooms in.
func (v *View) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	cx := (v.XMin + v.XMax) / 2
	cy := (v.YMin + v.YMax) / 2
	hx := v.XSpan() / 2 * factor
	hy := v.YSpan() / 2 * factor

	hx = v.clampHalfSpan(hx)
	hy = v.clampHalfSpan(hy)

	v.XMin, v.XMax = cx-hx, cx+hx
	v.YMin, v.YMax = cy-hy, cy+hy
}

func (v *View) clampHalfSpan(half float64) float64 {
	if v.MinSpan > 0 && half*2 < v.MinSpan {
		return v.MinSpan / 2
	}
	if v.MaxSpan > 0 && half*2 > v.MaxSpan {
		return v.MaxSpan / 2
	}
	return half
}

// FitY adjusts the y range to the spread of the defined samples, with a 5%
// margin. Flat curves get a unit band so the trace stays visible. The x
// range is left alone.
func (v *View) FitY(pts []Point) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range pts {
		if !p.Defined {
			continue
		}
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	if lo > hi {
		return // nothing defined
	}
	if hi-lo < 1e-12 {
		lo -= 0.5
		hi += 0.5
	}
	margin := (hi - lo) * 0.05
	v.YMin = lo - margin
	v.YMax = hi + margin
}
