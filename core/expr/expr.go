package expr

import (
	"math"
	"strings"
)

const (
	// MaxInputLength is the longest expression accepted, in bytes.
	MaxInputLength = 1024
	// MaxDepth bounds nesting of parentheses and unary operators.
	MaxDepth = 64
)

// Eval parses and evaluates an arithmetic expression.
//
// Supported: numeric literals, binary + - * / %, right-associative **,
// unary + and -, parentheses. Nothing else is accepted, so no input can
// reach identifiers, calls or any process state.
func Eval(input string) (float64, error) {
	if len(input) > MaxInputLength {
		return 0, rangeErr(-1, "expression longer than %d bytes", MaxInputLength)
	}
	if strings.TrimSpace(input) == "" {
		return 0, syntaxErr(0, "unexpected end of input")
	}

	tokens, err := tokenize(input)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	v, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return 0, unexpected(tok)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, rangeErr(-1, "result is not a finite number")
	}
	return v, nil
}

type parser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) enter(tok token) error {
	p.depth++
	if p.depth > MaxDepth {
		return rangeErr(tok.pos, "expression nested deeper than %d levels", MaxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// additive := multiplicative (('+' | '-') multiplicative)*
func (p *parser) parseAdditive() (float64, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokPlus && op.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return 0, err
		}
		if op.kind == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
}

// multiplicative := unary (('*' | '/' | '%') unary)*
func (p *parser) parseMultiplicative() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokStar && op.kind != tokSlash && op.kind != tokPercent {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op.kind {
		case tokStar:
			left *= right
		case tokSlash:
			if right == 0 {
				return 0, rangeErr(op.pos, "division by zero")
			}
			left /= right
		case tokPercent:
			if right == 0 {
				return 0, rangeErr(op.pos, "modulo by zero")
			}
			left = math.Mod(left, right)
		}
	}
}

// unary := ('+' | '-') unary | power
func (p *parser) parseUnary() (float64, error) {
	tok := p.peek()
	if tok.kind != tokPlus && tok.kind != tokMinus {
		return p.parsePower()
	}
	p.next()
	if err := p.enter(tok); err != nil {
		return 0, err
	}
	defer p.leave()

	// Binds looser than **: -2 ** 2 is -(2 ** 2).
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if tok.kind == tokMinus {
		return -v, nil
	}
	return v, nil
}

// power := primary ('**' unary)?
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	op := p.next()
	if err := p.enter(op); err != nil {
		return 0, err
	}
	defer p.leave()

	exp, err := p.parsePowerOperand()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

// parsePowerOperand accepts a unary-prefixed operand on the right of ** (2 ** -1).
func (p *parser) parsePowerOperand() (float64, error) {
	tok := p.peek()
	if tok.kind != tokPlus && tok.kind != tokMinus {
		return p.parsePower()
	}
	p.next()
	if err := p.enter(tok); err != nil {
		return 0, err
	}
	defer p.leave()

	v, err := p.parsePowerOperand()
	if err != nil {
		return 0, err
	}
	if tok.kind == tokMinus {
		return -v, nil
	}
	return v, nil
}

// primary := number | '(' additive ')'
func (p *parser) parsePrimary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return tok.num, nil
	case tokLParen:
		if err := p.enter(tok); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, unexpected(closing)
		}
		return v, nil
	default:
		return 0, unexpected(tok)
	}
}

func unexpected(tok token) error {
	if tok.kind == tokEOF {
		return syntaxErr(tok.pos, "unexpected end of input")
	}
	return syntaxErr(tok.pos, "unexpected token '%s' at position %d", tok.text, tok.pos)
}
