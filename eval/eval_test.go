package eval

import (
	"math"
	"testing"
)

func evalOrFatal(t *testing.T, s *Session, expr string) float64 {
	t.Helper()
	v, err := s.Evaluate(expr)
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", expr, err)
	}
	return v
}

func TestArithmeticPrecedence(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"20/5/2", 2},
		{"7%4", 3},
		{"2^10", 1024},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"(-2)^2", 4},
		{"2^-2", 0.25},
		{"-(3+4)", -7},
		{"1.5*2", 3},
		{"1.5e2+1", 151},
		{".5+.5", 1},
		{"5!", 120},
		{"3!!", 720},
		{"2^3!", 64},
		{"2 + 2", 4},
	}
	for _, c := range cases {
		s := NewSession()
		got := evalOrFatal(t, s, c.expr)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("%q = %g, want %g", c.expr, got, c.want)
		}
	}
}

func TestTrigAngleModes(t *testing.T) {
	deg, err := Evaluate("sin(90)", Degrees, 0)
	if err != nil {
		t.Fatalf("sin(90) deg: %v", err)
	}
	rad, err := Evaluate("sin(pi/2)", Radians, 0)
	if err != nil {
		t.Fatalf("sin(pi/2) rad: %v", err)
	}
	if math.Abs(deg-rad) > 1e-12 || math.Abs(deg-1) > 1e-12 {
		t.Fatalf("sin mismatch: deg=%g rad=%g", deg, rad)
	}

	v, err := Evaluate("cos(180)", Degrees, 0)
	if err != nil {
		t.Fatalf("cos(180): %v", err)
	}
	if math.Abs(v+1) > 1e-12 {
		t.Fatalf("cos(180) = %g, want -1", v)
	}

	// π lexes as the pi constant.
	v, err = Evaluate("sin(π/2)", Radians, 0)
	if err != nil {
		t.Fatalf("sin(π/2): %v", err)
	}
	if math.Abs(v-1) > 1e-12 {
		t.Fatalf("sin(π/2) = %g, want 1", v)
	}
}

func TestReciprocalTrig(t *testing.T) {
	v, err := Evaluate("sec(60)", Degrees, 0)
	if err != nil {
		t.Fatalf("sec(60): %v", err)
	}
	if math.Abs(v-2) > 1e-9 {
		t.Fatalf("sec(60) = %g, want 2", v)
	}

	if _, err := Evaluate("csc(0)", Radians, 0); KindOf(err) != KindDomain {
		t.Fatalf("csc(0): got %v, want domain error", err)
	}
}

func TestAnsFlow(t *testing.T) {
	s := NewSession()
	if got := evalOrFatal(t, s, "2+2"); got != 4 {
		t.Fatalf("2+2 = %g", got)
	}
	if got := evalOrFatal(t, s, "ANS+1"); got != 5 {
		t.Fatalf("ANS+1 = %g, want 5", got)
	}
	if s.LastAnswer() != 5 {
		t.Fatalf("LastAnswer = %g, want 5", s.LastAnswer())
	}
}

func TestAnsClearedAtSessionStart(t *testing.T) {
	s := NewSession()
	if got := evalOrFatal(t, s, "ANS"); got != 0 {
		t.Fatalf("fresh ANS = %g, want 0", got)
	}
}

func TestFactorialDomain(t *testing.T) {
	s := NewSession()
	if got := evalOrFatal(t, s, "5!"); got != 120 {
		t.Fatalf("5! = %g, want 120", got)
	}
	if got := evalOrFatal(t, s, "factorial(5)"); got != 120 {
		t.Fatalf("factorial(5) = %g, want 120", got)
	}
	for _, expr := range []string{"(-1)!", "2.5!", "171!"} {
		if _, err := s.Evaluate(expr); KindOf(err) != KindDomain {
			t.Fatalf("%q: got %v, want domain error", expr, err)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	s := NewSession()
	evalOrFatal(t, s, "6*7")

	for _, expr := range []string{"1/0", "1%0", "mod(1, 0)"} {
		_, err := s.Evaluate(expr)
		if KindOf(err) != KindDivisionByZero {
			t.Fatalf("%q: got %v, want division by zero", expr, err)
		}
		if s.LastAnswer() != 42 {
			t.Fatalf("LastAnswer changed after failed %q: %g", expr, s.LastAnswer())
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"1+",
		"(1+2",
		"1+2)",
		"sin(",
		"sin 90",
		"1 2",
		"min()",
		"mod(1)",
		"2e",
	}
	for _, expr := range cases {
		if _, err := Evaluate(expr, Degrees, 0); KindOf(err) != KindSyntax {
			t.Fatalf("%q: got %v, want syntax error", expr, err)
		}
	}
}

func TestUnknownTokens(t *testing.T) {
	cases := []string{"2$2", "foo(1)", "bar", "x+1", "1&2"}
	for _, expr := range cases {
		if _, err := Evaluate(expr, Degrees, 0); KindOf(err) != KindUnknownToken {
			t.Fatalf("%q: got %v, want unknown token", expr, err)
		}
	}
}

func TestDomainFunctions(t *testing.T) {
	bad := []string{"ln(0)", "ln(-2)", "log(0)", "log(8, 1)", "sqrt(-1)", "0^-1"}
	for _, expr := range bad {
		if _, err := Evaluate(expr, Degrees, 0); KindOf(err) != KindDomain {
			t.Fatalf("%q: got %v, want domain error", expr, err)
		}
	}

	good := []struct {
		expr string
		want float64
	}{
		{"ln(e)", 1},
		{"log(1000)", 3},
		{"log(8, 2)", 3},
		{"sqrt(16)", 4},
		{"abs(-3)", 3},
		{"round(2.6)", 3},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"mean(1, 2, 3)", 2},
		{"median(1, 2, 3, 4)", 2.5},
		{"variance(2, 4, 4, 4, 5, 5, 7, 9)", 4.571428571428571},
		{"stdev(2, 2)", 0},
		{"mod(7, 4)", 3},
	}
	for _, c := range good {
		v, err := Evaluate(c.expr, Degrees, 0)
		if err != nil {
			t.Fatalf("%q: %v", c.expr, err)
		}
		if math.Abs(v-c.want) > 1e-9 {
			t.Fatalf("%q = %g, want %g", c.expr, v, c.want)
		}
	}
}

func TestIdempotence(t *testing.T) {
	exprs := []string{"sin(45)+ln(10)", "2^10/3", "mean(1, 2, 3)*ANS"}
	for _, expr := range exprs {
		a, err := Evaluate(expr, Degrees, 7)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		b, err := Evaluate(expr, Degrees, 7)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if a != b {
			t.Fatalf("%q not idempotent: %g vs %g", expr, a, b)
		}
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := map[Kind]string{
		KindSyntax:         "syntax_error",
		KindUnknownToken:   "unknown_token",
		KindDomain:         "domain_error",
		KindDivisionByZero: "division_by_zero",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
