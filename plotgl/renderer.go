package plotgl

import "math"

// Point is one sample of a trace. Undefined points lift the pen.
type Point struct {
	X, Y    float64
	Defined bool
}

// Renderer draws a grid, axes and traces into a Target.
//
// Create it once and reuse it; it holds only colors.
type Renderer struct {
	Background Color
	Grid       Color
	Axis       Color
}

// NewRenderer returns a renderer with the calculator's dark theme.
func NewRenderer() *Renderer {
	return &Renderer{
		Background: RGB(0x08, 0x08, 0x08),
		Grid:       RGB(0x24, 0x24, 0x24),
		Axis:       RGB(0x88, 0x88, 0x88),
	}
}

// RenderFrame clears the target and draws grid lines at nice steps plus the
// x=0 and y=0 axes.
func (r *Renderer) RenderFrame(t Target, v View) {
	if t == nil || !v.Valid() {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.Background)

	xStep := niceStep(v.XSpan())
	for x := math.Ceil(v.XMin/xStep) * xStep; x <= v.XMax; x += xStep {
		sx, _, _ := v.ToScreen(x, v.YMin, w, h)
		drawVLine(t, sx, 0, h-1, r.Grid)
	}
	yStep := niceStep(v.YSpan())
	for y := math.Ceil(v.YMin/yStep) * yStep; y <= v.YMax; y += yStep {
		_, sy, _ := v.ToScreen(v.XMin, y, w, h)
		drawHLine(t, 0, w-1, sy, r.Grid)
	}

	if v.XMin <= 0 && v.XMax >= 0 {
		sx, _, _ := v.ToScreen(0, v.YMin, w, h)
		drawVLine(t, sx, 0, h-1, r.Axis)
	}
	if v.YMin <= 0 && v.YMax >= 0 {
		_, sy, _ := v.ToScreen(v.XMin, 0, w, h)
		drawHLine(t, 0, w-1, sy, r.Axis)
	}
}

// RenderTrace draws a polyline through the defined points. The pen lifts at
// undefined samples and across segments that leave the view vertically, so
// asymptotes do not draw as walls.
func (r *Renderer) RenderTrace(t Target, v View, pts []Point, c Color) {
	if t == nil || !v.Valid() {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	penUp := true
	var px, py int
	for _, p := range pts {
		if !p.Defined {
			penUp = true
			continue
		}
		sx, sy, in := v.ToScreen(p.X, p.Y, w, h)
		if !in {
			penUp = true
			continue
		}
		if penUp {
			t.SetPixel(sx, sy, c)
		} else {
			drawLine(t, px, py, sx, sy, c)
		}
		px, py = sx, sy
		penUp = false
	}
}

// drawLine is a Bresenham segment rasterizer.
func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawHLine(t Target, x0, x1, y int, c Color) {
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

func drawVLine(t Target, x, y0, y1 int, c Color) {
	for y := y0; y <= y1; y++ {
		t.SetPixel(x, y, c)
	}
}

// niceStep picks a 1/2/5×10^k grid step giving 4-10 lines per span.
func niceStep(span float64) float64 {
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}
	raw := span / 8
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm < 1.5:
		return mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
