package eval

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokBang
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	val  float64
	pos  int
}

// lexer walks an expression rune by rune. It is by-hand rather than
// text/scanner-based so that π lexes as an identifier and any unsupported
// rune comes back as a classified unknown-token failure.
type lexer struct {
	src []rune
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src)}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	r := l.src[l.pos]
	switch r {
	case '+':
		l.pos++
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case '-':
		l.pos++
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case '*':
		l.pos++
		return token{kind: tokStar, text: "*", pos: start}, nil
	case '/':
		l.pos++
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case '%':
		l.pos++
		return token{kind: tokPercent, text: "%", pos: start}, nil
	case '^':
		l.pos++
		return token{kind: tokCaret, text: "^", pos: start}, nil
	case '!':
		l.pos++
		return token{kind: tokBang, text: "!", pos: start}, nil
	case '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case 'π':
		l.pos++
		return token{kind: tokIdent, text: "pi", pos: start}, nil
	}

	if unicode.IsDigit(r) || (r == '.' && l.pos+1 < len(l.src) && unicode.IsDigit(l.src[l.pos+1])) {
		return l.readNumber(start)
	}
	if unicode.IsLetter(r) {
		for l.pos < len(l.src) && (unicode.IsLetter(l.src[l.pos]) || unicode.IsDigit(l.src[l.pos])) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos]), pos: start}, nil
	}

	return token{}, errUnknownToken("unsupported symbol %q", string(r))
}

func (l *lexer) readNumber(start int) (token, error) {
	for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.peek() == '.' {
		l.pos++
		for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	// Exponent only when the suffix is a complete e[+-]digits form; a bare
	// trailing "e" stays with the next token so "2e" is a syntax error and
	// "2*e" still reaches the constant.
	if l.peek() == 'e' || l.peek() == 'E' {
		mark := l.pos
		l.pos++
		if l.peek() == '+' || l.peek() == '-' {
			l.pos++
		}
		if l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
			for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = mark
		}
	}

	text := string(l.src[start:l.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, errSyntax("bad number %q", text)
	}
	return token{kind: tokNumber, text: text, val: v, pos: start}, nil
}
