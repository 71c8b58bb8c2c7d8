package polyroot

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Polynomial is an immutable univariate polynomial with rational
// coefficients, stored as a sparse mapping from exponent to coefficient.
// The zero value is the zero polynomial.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Terms with zero coefficients are never stored, except for the zero
// polynomial, which is a single zero term of degree 0.
// Hence the degree is the largest stored exponent and the leading
// coefficient is non-zero unless the polynomial is zero.
type Polynomial struct {
	coeffs map[int]Rat
	degree int
}

// newPolynomial takes ownership of coeffs.
func newPolynomial(coeffs map[int]Rat) Polynomial {
	maps.DeleteFunc(coeffs, func(_ int, c Rat) bool { return c.IsZero() })
	if len(coeffs) == 0 {
		return Polynomial{coeffs: map[int]Rat{0: ratZero}}
	}
	return Polynomial{coeffs: coeffs, degree: slices.Max(maps.Keys(coeffs))}
}

// NewPolynomial returns a polynomial with the given coefficients,
// where coeffs[e] is the coefficient of x^e.
// Zero coefficients are dropped, and an empty mapping yields
// the zero polynomial.
//
// NewPolynomial returns an error if any exponent is negative.
func NewPolynomial(coeffs map[int]Rat) (Polynomial, error) {
	for e := range coeffs {
		if e < 0 {
			return Polynomial{}, fmt.Errorf("creating polynomial with term x^%v: %w", e, ErrNegativeExponent)
		}
	}
	return newPolynomial(maps.Clone(coeffs)), nil
}

// Degree returns the largest exponent of p.
// The degree of a constant, including the zero polynomial, is 0.
func (p Polynomial) Degree() int {
	return p.degree
}

// Get returns the coefficient of x^e, which is 0 if p has no such term.
func (p Polynomial) Get(e int) Rat {
	c, ok := p.coeffs[e]
	if !ok {
		return ratZero
	}
	return c
}

// Lead returns the coefficient of the term with the largest exponent.
func (p Polynomial) Lead() Rat {
	return p.Get(p.degree)
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.degree == 0 && p.Get(0).IsZero()
}

// Exponents returns the exponents of the terms of p in ascending order.
func (p Polynomial) Exponents() []int {
	if len(p.coeffs) == 0 {
		return []int{0}
	}
	exps := maps.Keys(p.coeffs)
	slices.Sort(exps)
	return exps
}

// Coefficients returns a copy of the mapping from exponent to coefficient.
func (p Polynomial) Coefficients() map[int]Rat {
	if len(p.coeffs) == 0 {
		return map[int]Rat{0: ratZero}
	}
	return maps.Clone(p.coeffs)
}

// Eval returns the value of p at x.
// The terms are summed directly, so the cost depends on the number
// of terms rather than on the degree.
func (p Polynomial) Eval(x Rat) Rat {
	y := ratZero
	for _, e := range p.Exponents() {
		y = y.Add(p.Get(e).Mul(x.Pow(uint(e))))
	}
	return y
}

// Diff returns the formal derivative of p.
// The derivative of a constant is the zero polynomial.
func (p Polynomial) Diff() Polynomial {
	coeffs := make(map[int]Rat, len(p.coeffs))
	for e, c := range p.coeffs {
		if e == 0 {
			continue
		}
		coeffs[e-1] = c.Mul(NewRatFromInt(NewInt(int64(e))))
	}
	return newPolynomial(coeffs)
}

// Neg returns p with every coefficient negated.
func (p Polynomial) Neg() Polynomial {
	coeffs := make(map[int]Rat, len(p.coeffs))
	for e, c := range p.coeffs {
		coeffs[e] = c.Neg()
	}
	return newPolynomial(coeffs)
}

// Add returns the sum of p and q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	coeffs := maps.Clone(p.coeffs)
	if coeffs == nil {
		coeffs = make(map[int]Rat, len(q.coeffs))
	}
	for e, c := range q.coeffs {
		coeffs[e] = coeffs[e].Add(c)
	}
	return newPolynomial(coeffs)
}

// Sub returns the difference of p and q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Mul returns the product of p and q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	coeffs := make(map[int]Rat, len(p.coeffs)+len(q.coeffs))
	for e, c := range p.coeffs {
		for f, d := range q.coeffs {
			coeffs[e+f] = coeffs[e+f].Add(c.Mul(d))
		}
	}
	return newPolynomial(coeffs)
}

// Scale returns p with every coefficient multiplied by r.
func (p Polynomial) Scale(r Rat) Polynomial {
	coeffs := make(map[int]Rat, len(p.coeffs))
	for e, c := range p.coeffs {
		coeffs[e] = c.Mul(r)
	}
	return newPolynomial(coeffs)
}

// Integral returns a polynomial with the same roots as p and coprime
// integer coefficients.
// It is obtained by multiplying p by the least common multiple of
// the denominators and dividing it by the greatest common divisor of
// the numerators.
func (p Polynomial) Integral() Polynomial {
	if p.IsZero() {
		return p
	}
	m, g := intOne, intZero
	for _, c := range p.coeffs {
		m = lcm(m, c.Denom())
		g = gcd(g, c.Num())
	}
	r, _ := newRat(m, g) // g is positive for a non-zero polynomial
	return p.Scale(r)
}

// isIntegral returns true if every coefficient of p is an integer.
func (p Polynomial) isIntegral() bool {
	for _, c := range p.coeffs {
		if !c.IsInt() {
			return false
		}
	}
	return true
}

// lowest returns the smallest exponent with a non-zero coefficient.
// For the zero polynomial it returns 0.
func (p Polynomial) lowest() int {
	return p.Exponents()[0]
}

// Equal returns true if p and q have the same coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	if p.degree != q.degree || len(p.Exponents()) != len(q.Exponents()) {
		return false
	}
	for _, e := range p.Exponents() {
		if !p.Get(e).Equal(q.Get(e)) {
			return false
		}
	}
	return true
}

// String implements the [fmt.Stringer] interface and returns
// p in descending order of exponents, for example:
//
//	x^3 + 5x^2 - 25x - 125
//	-1/2x + 3
//
// The output can be parsed back with [ParsePolynomial].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	exps := p.Exponents()
	var b strings.Builder
	for i := len(exps) - 1; i >= 0; i-- {
		e := exps[i]
		c := p.Get(e)

		// Sign
		switch {
		case i == len(exps)-1 && c.Sign() < 0:
			b.WriteString("-")
		case i != len(exps)-1 && c.Sign() < 0:
			b.WriteString(" - ")
		case i != len(exps)-1:
			b.WriteString(" + ")
		}

		// Coefficient
		a := c.Abs()
		if e == 0 || !a.Equal(ratOne) {
			b.WriteString(a.String())
		}

		// Variable
		switch {
		case e == 1:
			b.WriteString("x")
		case e > 1:
			fmt.Fprintf(&b, "x^%v", e)
		}
	}
	return b.String()
}
