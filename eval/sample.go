package eval

import "math"

// Point is one sample of a plotted expression. Undefined samples (domain
// failures such as ln of a non-positive x) keep their X and clear Defined.
type Point struct {
	X, Y    float64
	Defined bool
}

// Series samples an expression of the free variable x over [min, max].
//
// The expression is parsed once, up front; per-sample failures do not abort
// the series. A Series is finite and restartable: Reset rewinds it and an
// identical Series replays identical points.
type Series struct {
	prog  node
	mode  AngleMode
	ans   float64
	min   float64
	step  float64
	count int
	next  int
	vars  map[string]float64
}

// Sample prepares a series of count points for an expression in x, using the
// session's current angle mode and ANS value. Parse failures, count < 2 and
// reversed ranges are reported synchronously.
func (s *Session) Sample(expr string, min, max float64, count int) (*Series, error) {
	return NewSeries(expr, s.mode, s.ans, min, max, count)
}

// NewSeries is the session-free form of Sample.
func NewSeries(expr string, mode AngleMode, ans float64, min, max float64, count int) (*Series, error) {
	prog, err := parse(expr)
	if err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, errDomain("sample count %d too small", count)
	}
	if !(min < max) {
		return nil, errDomain("empty sample range [%g, %g]", min, max)
	}
	return &Series{
		prog:  prog,
		mode:  mode,
		ans:   ans,
		min:   min,
		step:  (max - min) / float64(count-1),
		count: count,
		vars:  map[string]float64{"x": 0},
	}, nil
}

// Count returns the total number of samples, defined or not.
func (sr *Series) Count() int { return sr.count }

// Reset rewinds the series to its first sample.
func (sr *Series) Reset() { sr.next = 0 }

// Next yields the next sample. The second return is false once the series
// is exhausted.
func (sr *Series) Next() (Point, bool) {
	if sr.next >= sr.count {
		return Point{}, false
	}
	x := sr.min + float64(sr.next)*sr.step
	sr.next++

	sr.vars["x"] = x
	y, err := sr.prog.eval(&env{mode: sr.mode, ans: sr.ans, vars: sr.vars})
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{X: x}, true
	}
	return Point{X: x, Y: y, Defined: true}, true
}

// Points restarts the series and collects every defined sample.
func (sr *Series) Points() []Point {
	sr.Reset()
	out := make([]Point, 0, sr.count)
	for {
		p, ok := sr.Next()
		if !ok {
			break
		}
		if p.Defined {
			out = append(out, p)
		}
	}
	return out
}
