package polyroot

import (
	"fmt"
	"strings"
)

// Rat is an immutable exact rational number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational number is always kept in its canonical form:
//
//   - Denominator: a positive integer.
//   - Numerator: an integer carrying the sign, coprime with the denominator.
//
// Consequently, two rational numbers are equal if and only if [Rat.Num]
// and [Rat.Denom] are equal.
// The zero value stores no denominator, so compare values with [Rat.Equal]
// or [Rat.Cmp] rather than with ==.
type Rat struct {
	num Int // the numerator, carries the sign
	den Int // the denominator, positive; zero in the zero value stands for 1
}

var (
	ratZero = NewRatFromInt(intZero)
	ratOne  = NewRatFromInt(intOne)
)

// newRat returns the canonical form of num / den.
func newRat(num, den Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, fmt.Errorf("creating fraction %v/%v: %w", num, den, ErrDivisionByZero)
	}
	if den.IsNeg() {
		num, den = num.Neg(), den.Neg()
	}
	g := gcd(num, den)
	if g.Cmp(intOne) != 0 {
		num, _ = num.quoRem(g)
		den, _ = den.quoRem(g)
	}
	return Rat{num: num, den: den}, nil
}

// NewRat returns a rational number equal to num / den.
//
// NewRat returns an error if den is zero.
func NewRat(num, den int64) (Rat, error) {
	return newRat(NewInt(num), NewInt(den))
}

// NewRatFromInts is like [NewRat] but accepts arbitrary-precision integers.
func NewRatFromInts(num, den Int) (Rat, error) {
	return newRat(num, den)
}

// NewRatFromInt returns a rational number equal to x.
func NewRatFromInt(x Int) Rat {
	return Rat{num: x, den: intOne}
}

// ParseRat converts a string to a rational number.
// The input string must be in one of the following formats:
//
//	-5
//	3/4
//	+10/-4
//
// Numerator and denominator are parsed with [ParseInt].
//
// ParseRat returns an error if the string is malformed or if the
// denominator is zero.
func ParseRat(s string) (Rat, error) {
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := ParseInt(numStr)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing fraction %q: %w", s, err)
	}
	if !found {
		return NewRatFromInt(num), nil
	}
	den, err := ParseInt(denStr)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing fraction %q: %w", s, err)
	}
	return newRat(num, den)
}

// Num returns the numerator of r.
func (r Rat) Num() Int {
	return r.num
}

// Denom returns the denominator of r, which is always positive.
func (r Rat) Denom() Int {
	if r.den.IsZero() {
		return intOne
	}
	return r.den
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsZero returns true if r == 0.
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.Denom().Cmp(intOne) == 0
}

// Int returns the numerator of r if r is an integer.
// Otherwise the result is (0, false).
func (r Rat) Int() (Int, bool) {
	if !r.IsInt() {
		return Int{}, false
	}
	return r.num, true
}

// Neg returns r with opposite sign.
func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.Denom()}
}

// Abs returns absolute value of r.
func (r Rat) Abs() Rat {
	return Rat{num: r.num.Abs(), den: r.Denom()}
}

// Add returns the sum of r and e.
func (r Rat) Add(e Rat) Rat {
	num := r.num.Mul(e.Denom()).Add(r.Denom().Mul(e.num))
	den := r.Denom().Mul(e.Denom())
	s, _ := newRat(num, den) // den is positive
	return s
}

// Sub returns the difference of r and e.
func (r Rat) Sub(e Rat) Rat {
	return r.Add(e.Neg())
}

// Mul returns the product of r and e.
func (r Rat) Mul(e Rat) Rat {
	p, _ := newRat(r.num.Mul(e.num), r.Denom().Mul(e.Denom())) // den is positive
	return p
}

// Inv returns the reciprocal of r.
//
// Inv returns an error if r is zero.
func (r Rat) Inv() (Rat, error) {
	if r.IsZero() {
		return Rat{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrDivisionByZero)
	}
	return newRat(r.Denom(), r.num)
}

// Quo returns the quotient of r and e, calculated as r * (1 / e).
//
// Quo returns an error if e is zero.
func (r Rat) Quo(e Rat) (Rat, error) {
	if e.IsZero() {
		return Rat{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrDivisionByZero)
	}
	inv, err := e.Inv()
	if err != nil {
		return Rat{}, err
	}
	return r.Mul(inv), nil
}

// Pow returns r raised to the power of n.
// Numerator and denominator are raised independently, which keeps
// the result canonical.
func (r Rat) Pow(n uint) Rat {
	return Rat{num: r.num.Pow(n), den: r.Denom().Pow(n)}
}

// Sqrt returns the exact square root of r.
// The root is extracted independently from the numerator and
// the denominator.
//
// Sqrt returns an error if r is negative or if the root is irrational.
func (r Rat) Sqrt() (Rat, error) {
	if r.Sign() < 0 {
		return Rat{}, fmt.Errorf("computing sqrt(%v): square root of negative number: %w", r, ErrIrrationalResult)
	}
	num, ok := isqrt(r.num)
	if !ok {
		return Rat{}, fmt.Errorf("computing sqrt(%v): %w", r, ErrIrrationalResult)
	}
	den, ok := isqrt(r.Denom())
	if !ok {
		return Rat{}, fmt.Errorf("computing sqrt(%v): %w", r, ErrIrrationalResult)
	}
	return Rat{num: num, den: den}, nil
}

// Cbrt returns the exact cube root of r.
// The root is extracted independently from the numerator and
// the denominator.
//
// Cbrt returns an error if the root is irrational.
func (r Rat) Cbrt() (Rat, error) {
	num, ok := icbrt(r.num)
	if !ok {
		return Rat{}, fmt.Errorf("computing cbrt(%v): %w", r, ErrIrrationalResult)
	}
	den, ok := icbrt(r.Denom())
	if !ok {
		return Rat{}, fmt.Errorf("computing cbrt(%v): %w", r, ErrIrrationalResult)
	}
	return Rat{num: num, den: den}, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
func (r Rat) Cmp(e Rat) int {
	// Both denominators are positive, so cross multiplication
	// preserves the order.
	return r.num.Mul(e.Denom()).Cmp(r.Denom().Mul(e.num))
}

// Equal returns true if r == e.
func (r Rat) Equal(e Rat) bool {
	return r.Cmp(e) == 0
}

// String implements the [fmt.Stringer] interface and returns
// "n" if r is an integer and "n/d" otherwise.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.Denom().String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseRat].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rat) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRat(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rat.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
