package eval

import (
	"math"
	"sort"
)

// maxFactorial is the largest n with n! representable as a float64.
const maxFactorial = 170

// function is one entry in the fixed call table. maxArgs < 0 means variadic.
type function struct {
	name    string
	minArgs int
	maxArgs int
	apply   func(e *env, args []float64) (float64, error)
}

var functions = map[string]*function{}

func register(name string, minArgs, maxArgs int, apply func(e *env, args []float64) (float64, error)) {
	functions[name] = &function{name: name, minArgs: minArgs, maxArgs: maxArgs, apply: apply}
}

func init() {
	trig := func(name string, f func(float64) float64) {
		register(name, 1, 1, func(e *env, args []float64) (float64, error) {
			return f(e.angle(args[0])), nil
		})
	}
	trig("sin", math.Sin)
	trig("cos", math.Cos)
	trig("tan", math.Tan)

	recip := func(name string, f func(float64) float64) {
		register(name, 1, 1, func(e *env, args []float64) (float64, error) {
			v := f(e.angle(args[0]))
			if v == 0 {
				return 0, errDomain("%s undefined at this angle", name)
			}
			return 1 / v, nil
		})
	}
	recip("sec", math.Cos)
	recip("csc", math.Sin)
	recip("cot", math.Tan)

	register("ln", 1, 1, func(_ *env, args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, errDomain("ln of non-positive value %g", args[0])
		}
		return math.Log(args[0]), nil
	})
	register("log", 1, 2, func(_ *env, args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, errDomain("log of non-positive value %g", args[0])
		}
		if len(args) == 1 {
			return math.Log10(args[0]), nil
		}
		base := args[1]
		if base <= 0 || base == 1 {
			return 0, errDomain("log base %g", base)
		}
		return math.Log(args[0]) / math.Log(base), nil
	})
	register("sqrt", 1, 1, func(_ *env, args []float64) (float64, error) {
		if args[0] < 0 {
			return 0, errDomain("sqrt of negative value %g", args[0])
		}
		return math.Sqrt(args[0]), nil
	})
	register("abs", 1, 1, func(_ *env, args []float64) (float64, error) {
		return math.Abs(args[0]), nil
	})
	register("round", 1, 1, func(_ *env, args []float64) (float64, error) {
		return math.Round(args[0]), nil
	})
	register("factorial", 1, 1, func(_ *env, args []float64) (float64, error) {
		return factorial(args[0])
	})
	register("mod", 2, 2, func(_ *env, args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, errDivisionByZero("modulus by zero")
		}
		return math.Mod(args[0], args[1]), nil
	})

	register("min", 1, -1, func(_ *env, args []float64) (float64, error) {
		v := args[0]
		for _, a := range args[1:] {
			if a < v {
				v = a
			}
		}
		return v, nil
	})
	register("max", 1, -1, func(_ *env, args []float64) (float64, error) {
		v := args[0]
		for _, a := range args[1:] {
			if a > v {
				v = a
			}
		}
		return v, nil
	})
	register("mean", 1, -1, func(_ *env, args []float64) (float64, error) {
		return mean(args), nil
	})
	register("median", 1, -1, func(_ *env, args []float64) (float64, error) {
		s := append([]float64(nil), args...)
		sort.Float64s(s)
		n := len(s)
		if n%2 == 1 {
			return s[n/2], nil
		}
		return (s[n/2-1] + s[n/2]) / 2, nil
	})
	variance := func(_ *env, args []float64) (float64, error) {
		if len(args) < 2 {
			return 0, errDomain("variance needs at least 2 values")
		}
		m := mean(args)
		var sum float64
		for _, a := range args {
			d := a - m
			sum += d * d
		}
		return sum / float64(len(args)-1), nil
	}
	register("variance", 2, -1, variance)
	stdev := func(e *env, args []float64) (float64, error) {
		if len(args) < 2 {
			return 0, errDomain("stdev needs at least 2 values")
		}
		v, err := variance(e, args)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	}
	register("stdev", 2, -1, stdev)
	register("std", 2, -1, stdev)
}

func mean(args []float64) float64 {
	var sum float64
	for _, a := range args {
		sum += a
	}
	return sum / float64(len(args))
}

// angle converts a trig argument to radians under Degrees mode.
func (e *env) angle(v float64) float64 {
	if e.mode == Degrees {
		return v * math.Pi / 180
	}
	return v
}

// factorial accepts non-negative values within 1e-9 of an integer.
func factorial(v float64) (float64, error) {
	if v < 0 {
		return 0, errDomain("factorial of negative value %g", v)
	}
	r := math.Round(v)
	if math.Abs(v-r) > 1e-9 {
		return 0, errDomain("factorial of non-integer %g", v)
	}
	n := int(r)
	if n > maxFactorial {
		return 0, errDomain("factorial of %d overflows", n)
	}
	out := 1.0
	for i := 2; i <= n; i++ {
		out *= float64(i)
	}
	return out, nil
}
