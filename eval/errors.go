package eval

import "fmt"

// Kind is the failure classification for an evaluation.
type Kind uint8

const (
	KindSyntax Kind = iota + 1
	KindUnknownToken
	KindDomain
	KindDivisionByZero
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax_error"
	case KindUnknownToken:
		return "unknown_token"
	case KindDomain:
		return "domain_error"
	case KindDivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// Error is a classified evaluation failure.
//
// The engine recovers all failures locally; callers get a Kind plus a
// display message and prior state stays intact.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSyntax:
		return "syntax error: " + e.Detail
	case KindUnknownToken:
		return "unknown token: " + e.Detail
	case KindDomain:
		return "domain error: " + e.Detail
	case KindDivisionByZero:
		return "division by zero: " + e.Detail
	default:
		return e.Detail
	}
}

func errSyntax(format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Detail: fmt.Sprintf(format, args...)}
}

func errUnknownToken(format string, args ...any) *Error {
	return &Error{Kind: KindUnknownToken, Detail: fmt.Sprintf(format, args...)}
}

func errDomain(format string, args ...any) *Error {
	return &Error{Kind: KindDomain, Detail: fmt.Sprintf(format, args...)}
}

func errDivisionByZero(detail string) *Error {
	return &Error{Kind: KindDivisionByZero, Detail: detail}
}

// KindOf returns the classification of err, or 0 for a non-engine error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}
