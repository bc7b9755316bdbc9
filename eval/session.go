package eval

import "math"

// AngleMode selects degree or radian interpretation for trig functions.
type AngleMode uint8

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// Evaluate computes an expression as a pure function of its inputs: two
// calls with the same expression, mode and ANS value return the same result.
func Evaluate(expr string, mode AngleMode, ans float64) (float64, error) {
	n, err := parse(expr)
	if err != nil {
		return 0, err
	}
	v, err := n.eval(&env{mode: mode, ans: ans})
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errDomain("result is not finite")
	}
	return v, nil
}

// Session holds the calculator state the engine retains between calls: the
// angle mode and the last successful result (the ANS value). Sessions are
// independent of each other; there is no process-wide state.
type Session struct {
	mode AngleMode
	ans  float64
}

// NewSession returns a session in Degrees mode with ANS cleared to zero.
func NewSession() *Session {
	return &Session{mode: Degrees}
}

func (s *Session) Mode() AngleMode     { return s.mode }
func (s *Session) SetMode(m AngleMode) { s.mode = m }
func (s *Session) LastAnswer() float64 { return s.ans }

// ToggleMode flips between Degrees and Radians and returns the new mode.
func (s *Session) ToggleMode() AngleMode {
	if s.mode == Degrees {
		s.mode = Radians
	} else {
		s.mode = Degrees
	}
	return s.mode
}

// Evaluate computes one expression. On success the result becomes the new
// ANS value; on failure the session is left untouched.
func (s *Session) Evaluate(expr string) (float64, error) {
	v, err := Evaluate(expr, s.mode, s.ans)
	if err != nil {
		return 0, err
	}
	s.ans = v
	return v, nil
}
