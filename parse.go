package polyroot

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenVariable
	tokenOperator
)

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the input
}

// tokenize splits an equation into numbers, the variable x and
// the operators + - * / ^ =.
func tokenize(s string) ([]token, error) {
	var tokens []token
	for pos := 0; pos < len(s); {
		c := s[pos]
		switch {
		case c == ' ' || c == '\t':
			pos++
		case '0' <= c && c <= '9':
			end := pos
			for end < len(s) && '0' <= s[end] && s[end] <= '9' {
				end++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: s[pos:end], pos: pos})
			pos = end
		case c == 'x':
			tokens = append(tokens, token{kind: tokenVariable, text: "x", pos: pos})
			pos++
		case strings.IndexByte("+-*/^=", c) >= 0:
			tokens = append(tokens, token{kind: tokenOperator, text: s[pos : pos+1], pos: pos})
			pos++
		default:
			return nil, fmt.Errorf("unexpected character %q at position %v: %w", c, pos, ErrSyntax)
		}
	}
	return tokens, nil
}

// parser turns tokens into polynomial coefficients.
// Terms to the right of '=' are moved to the left with the sign flipped.
type parser struct {
	tokens []token
	pos    int
	coeffs map[int]Rat
	side   Rat // 1 on the left of '=', -1 on the right
	equals bool
	terms  int
}

// ParsePolynomial converts an equation in x into the polynomial P such
// that the equation is equivalent to P(x) = 0.
// Like terms are collected, so the following are equivalent:
//
//	x^2 - 3x - 5x = x^2 + 2x + 3
//	-10x - 3 = 0
//	-10x - 3
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits      ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' { digits }
//	sign        ::= '+' | '-' { sign }
//	coefficient ::= digits [ '/' digits ]
//	power       ::= 'x' [ '^' digits ]
//	term        ::= coefficient [ [ '*' ] power ] | power
//	expression  ::= [ sign ] term { sign term }
//	equation    ::= expression [ '=' expression ]
//
// Spaces and tabs between tokens are ignored.
//
// ParsePolynomial returns an error if the input is malformed, if an exponent
// is negative or fractional, or if a coefficient has a zero denominator.
func ParsePolynomial(s string) (Polynomial, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	p := parser{
		tokens: tokens,
		coeffs: make(map[int]Rat),
		side:   ratOne,
	}
	if err := p.parse(); err != nil {
		return Polynomial{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return newPolynomial(p.coeffs), nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

// accept consumes the next token if it is the given operator.
func (p *parser) accept(op string) bool {
	t, ok := p.peek()
	if !ok || t.kind != tokenOperator || t.text != op {
		return false
	}
	p.pos++
	return true
}

func (p *parser) parse() error {
	for p.pos < len(p.tokens) {
		if p.accept("=") {
			if p.equals {
				return fmt.Errorf("second '=': %w", ErrSyntax)
			}
			if p.terms == 0 {
				return fmt.Errorf("no terms before '=': %w", ErrSyntax)
			}
			p.equals = true
			p.side = ratOne.Neg()
			p.terms = 0
			continue
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	if p.terms == 0 {
		return fmt.Errorf("no terms: %w", ErrSyntax)
	}
	return nil
}

// parseTerm parses a signed term and adds it to the coefficients.
func (p *parser) parseTerm() error {
	sign := p.side
	signs := 0
	for {
		if p.accept("-") {
			sign = sign.Neg()
		} else if !p.accept("+") {
			break
		}
		signs++
	}
	if signs == 0 && p.terms > 0 {
		t, _ := p.peek()
		return fmt.Errorf("unexpected %q at position %v, expected '+' or '-': %w", t.text, t.pos, ErrSyntax)
	}

	coef, hasCoef, err := p.parseCoefficient()
	if err != nil {
		return err
	}
	exp, hasPower, err := p.parsePower(hasCoef)
	if err != nil {
		return err
	}
	if !hasCoef && !hasPower {
		if t, ok := p.peek(); ok {
			return fmt.Errorf("unexpected %q at position %v, expected a term: %w", t.text, t.pos, ErrSyntax)
		}
		return fmt.Errorf("unexpected end of input, expected a term: %w", ErrSyntax)
	}
	p.coeffs[exp] = p.coeffs[exp].Add(coef.Mul(sign))
	p.terms++
	return nil
}

// parseCoefficient parses an optional coefficient.
// If there is none, the coefficient is 1.
func (p *parser) parseCoefficient() (Rat, bool, error) {
	t, ok := p.peek()
	if !ok || t.kind != tokenNumber {
		return ratOne, false, nil
	}
	p.pos++
	num, err := ParseInt(t.text)
	if err != nil {
		return Rat{}, false, err
	}
	if !p.accept("/") {
		return NewRatFromInt(num), true, nil
	}
	d, ok := p.peek()
	if !ok || d.kind != tokenNumber {
		return Rat{}, false, fmt.Errorf("expected denominator after '/' at position %v: %w", t.pos, ErrSyntax)
	}
	p.pos++
	den, err := ParseInt(d.text)
	if err != nil {
		return Rat{}, false, err
	}
	coef, err := newRat(num, den)
	if err != nil {
		return Rat{}, false, fmt.Errorf("coefficient at position %v: %w", t.pos, err)
	}
	return coef, true, nil
}

// parsePower parses an optional power of x and returns its exponent.
// Without a power the exponent is 0.
func (p *parser) parsePower(hasCoef bool) (int, bool, error) {
	star := hasCoef && p.accept("*")
	t, ok := p.peek()
	if !ok || t.kind != tokenVariable {
		if star {
			return 0, false, fmt.Errorf("expected 'x' after '*': %w", ErrSyntax)
		}
		return 0, false, nil
	}
	p.pos++
	if !p.accept("^") {
		return 1, true, nil
	}
	e, ok := p.peek()
	switch {
	case ok && e.kind == tokenOperator && e.text == "-":
		return 0, false, fmt.Errorf("exponent at position %v: %w", e.pos, ErrNegativeExponent)
	case !ok || e.kind != tokenNumber:
		return 0, false, fmt.Errorf("expected exponent after '^' at position %v: %w", t.pos, ErrSyntax)
	}
	p.pos++
	if p.accept("/") {
		return 0, false, fmt.Errorf("fractional exponent at position %v: %w", e.pos, ErrNegativeExponent)
	}
	n, err := ParseInt(e.text)
	if err != nil {
		return 0, false, err
	}
	exp, ok := n.Int64()
	if !ok || exp > maxExponent {
		return 0, false, fmt.Errorf("exponent %v at position %v is too large: %w", n, e.pos, ErrSyntax)
	}
	return int(exp), true, nil
}

// maxExponent bounds exponents accepted by the parser.
const maxExponent = 1 << 16
