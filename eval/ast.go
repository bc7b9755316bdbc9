package eval

import "math"

// env carries everything an evaluation may read: the angle mode, the ANS
// value and the sampling variable binding. It is immutable during a walk.
type env struct {
	mode AngleMode
	ans  float64
	vars map[string]float64
}

type node interface {
	eval(e *env) (float64, error)
}

type numberNode float64

func (n numberNode) eval(*env) (float64, error) { return float64(n), nil }

type ansNode struct{}

func (ansNode) eval(e *env) (float64, error) { return e.ans, nil }

type varNode string

func (v varNode) eval(e *env) (float64, error) {
	if e.vars != nil {
		if val, ok := e.vars[string(v)]; ok {
			return val, nil
		}
	}
	return 0, errUnknownToken("unknown name %q", string(v))
}

type unaryNode struct {
	op      rune
	operand node
}

func (n *unaryNode) eval(e *env) (float64, error) {
	v, err := n.operand.eval(e)
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op          rune
	left, right node
}

func (n *binaryNode) eval(e *env) (float64, error) {
	x, err := n.left.eval(e)
	if err != nil {
		return 0, err
	}
	y, err := n.right.eval(e)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return x + y, nil
	case '-':
		return x - y, nil
	case '*':
		return x * y, nil
	case '/':
		if y == 0 {
			return 0, errDivisionByZero("division by zero")
		}
		return x / y, nil
	case '%':
		if y == 0 {
			return 0, errDivisionByZero("modulus by zero")
		}
		return math.Mod(x, y), nil
	case '^':
		v := math.Pow(x, y)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errDomain("%g^%g is not a finite number", x, y)
		}
		return v, nil
	}
	return 0, errSyntax("bad operator %q", string(n.op))
}

type factorialNode struct {
	operand node
}

func (n *factorialNode) eval(e *env) (float64, error) {
	v, err := n.operand.eval(e)
	if err != nil {
		return 0, err
	}
	return factorial(v)
}

type callNode struct {
	fn   *function
	args []node
}

func (n *callNode) eval(e *env) (float64, error) {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(e)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return n.fn.apply(e, args)
}
