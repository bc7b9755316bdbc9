package eval

import (
	"math"
	"strings"
)

// parser is a recursive-descent parser over the fixed calculator grammar:
//
//	expression := additive
//	additive   := multiplicative (('+'|'-') multiplicative)*
//	multiplicative := unary (('*'|'/'|'%') unary)*
//	unary      := ('+'|'-') unary | power
//	power      := postfix ('^' unary)?        right-associative
//	postfix    := primary '!'*
//	primary    := number | constant | ANS | name | name '(' args ')' | '(' expression ')'
type parser struct {
	lex *lexer
	tok token
}

// parse turns an expression string into an AST or a classified failure.
func parse(src string) (node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errSyntax("empty expression")
	}
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, errSyntax("unexpected %q", p.tok.text)
	}
	return n, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expression() (node, error) {
	return p.additive()
}

func (p *parser) additive() (node, error) {
	n, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := '+'
		if p.tok.kind == tokMinus {
			op = '-'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		n = &binaryNode{op: op, left: n, right: right}
	}
	return n, nil
}

func (p *parser) multiplicative() (node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op rune
		switch p.tok.kind {
		case tokStar:
			op = '*'
		case tokSlash:
			op = '/'
		case tokPercent:
			op = '%'
		default:
			return n, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		n = &binaryNode{op: op, left: n, right: right}
	}
}

func (p *parser) unary() (node, error) {
	switch p.tok.kind {
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.unary()
	case tokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: '-', operand: n}, nil
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokCaret {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	// The exponent re-enters unary so 2^-3 parses and 2^3^2 nests rightward.
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) postfix() (node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokBang {
		if err := p.advance(); err != nil {
			return nil, err
		}
		n = &factorialNode{operand: n}
	}
	return n, nil
}

func (p *parser) primary() (node, error) {
	switch p.tok.kind {
	case tokNumber:
		n := numberNode(p.tok.val)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, errSyntax("missing closing parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokIdent:
		return p.name()

	case tokEOF:
		return nil, errSyntax("unexpected end of expression")
	}
	return nil, errSyntax("unexpected %q", p.tok.text)
}

func (p *parser) name() (node, error) {
	ident := strings.ToLower(p.tok.text)
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.kind == tokLParen {
		fn, ok := functions[ident]
		if !ok {
			return nil, errUnknownToken("unknown function %q", ident)
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		if len(args) < fn.minArgs || (fn.maxArgs >= 0 && len(args) > fn.maxArgs) {
			return nil, errSyntax("wrong number of arguments for %s", ident)
		}
		return &callNode{fn: fn, args: args}, nil
	}

	switch ident {
	case "pi":
		return numberNode(math.Pi), nil
	case "e":
		return numberNode(math.E), nil
	case "ans":
		return ansNode{}, nil
	case "x":
		return varNode("x"), nil
	}
	if _, ok := functions[ident]; ok {
		return nil, errSyntax("expected ( after %s", ident)
	}
	return nil, errUnknownToken("unknown name %q", ident)
}

func (p *parser) arguments() ([]node, error) {
	// Caller sits on '('.
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokRParen {
		return nil, p.advance()
	}
	var args []node
	for {
		a, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch p.tok.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokRParen:
			return args, p.advance()
		default:
			return nil, errSyntax("missing closing parenthesis")
		}
	}
}
