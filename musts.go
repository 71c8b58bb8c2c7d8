package polyroot

import "fmt"

// MustParseInt is like [ParseInt] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q) failed: %v", s, err))
	}
	return x
}

// MustNewRat is like [NewRat] but panics if the denominator is zero.
func MustNewRat(num, den int64) Rat {
	r, err := NewRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// MustParseRat is like [ParseRat] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParseRat(s string) Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRat(%q) failed: %v", s, err))
	}
	return r
}

// MustNewPolynomial is like [NewPolynomial] but panics if an exponent
// is negative.
func MustNewPolynomial(coeffs map[int]Rat) Polynomial {
	p, err := NewPolynomial(coeffs)
	if err != nil {
		panic(fmt.Sprintf("MustNewPolynomial(%v) failed: %v", coeffs, err))
	}
	return p
}

// MustParsePolynomial is like [ParsePolynomial] but panics if the string
// cannot be parsed.
func MustParsePolynomial(s string) Polynomial {
	p, err := ParsePolynomial(s)
	if err != nil {
		panic(fmt.Sprintf("MustParsePolynomial(%q) failed: %v", s, err))
	}
	return p
}

// MustQuo is like [Rat.Quo] but panics if computing error.
func (r Rat) MustQuo(e Rat) Rat {
	q, err := r.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return q
}

// MustInv is like [Rat.Inv] but panics if computing error.
func (r Rat) MustInv() Rat {
	q, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return q
}

// MustSqrt is like [Rat.Sqrt] but panics if computing error.
func (r Rat) MustSqrt() Rat {
	q, err := r.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return q
}

// MustCbrt is like [Rat.Cbrt] but panics if computing error.
func (r Rat) MustCbrt() Rat {
	q, err := r.Cbrt()
	if err != nil {
		panic(fmt.Sprintf("MustCbrt() failed: %v", err))
	}
	return q
}
