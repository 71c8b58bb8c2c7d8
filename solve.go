package polyroot

import (
	"fmt"
	"slices"
)

// Solve returns the real rational roots of the equation p(x) = 0,
// in ascending order, with every root repeated according to its
// multiplicity.
//
// The method depends on the degree of p:
//
//   - 0: a non-zero constant has no roots, see [ErrIndeterminate] for
//     the zero polynomial.
//   - 1: see [SolveLinear].
//   - 2: see [SolveQuadratic].
//   - 3 and above: see [SolveRational].
//     Roots that are not rational are not found.
//
// Solve returns an error if the zero polynomial is given, or if one of
// the methods above fails.
func Solve(p Polynomial) ([]Rat, error) {
	switch p.Degree() {
	case 0:
		if p.IsZero() {
			return nil, fmt.Errorf("solving 0 = 0: %w", ErrIndeterminate)
		}
		return nil, nil
	case 1:
		return SolveLinear(p)
	case 2:
		return SolveQuadratic(p)
	default:
		return SolveRational(p)
	}
}

// SolveLinear returns the root -b/a of a·x + b = 0.
//
// SolveLinear returns an error if p is not of degree 1.
func SolveLinear(p Polynomial) ([]Rat, error) {
	if p.Degree() != 1 {
		return nil, fmt.Errorf("solving %v = 0 as linear: degree %v: %w", p, p.Degree(), ErrUnsupportedDegree)
	}
	a, b := p.Get(1), p.Get(0)
	x, err := b.Neg().Quo(a)
	if err != nil {
		return nil, fmt.Errorf("solving %v = 0: %w", p, err)
	}
	return []Rat{x}, nil
}

// SolveQuadratic returns the roots of a·x² + b·x + c = 0
// using the discriminant D = b² - 4ac:
//
//   - D > 0: two roots (-b ± √D) / 2a.
//   - D = 0: the double root -b / 2a, returned twice.
//   - D < 0: no real roots.
//
// SolveQuadratic returns an error if p is not of degree 2, or if D is
// positive but not the square of a rational number.
func SolveQuadratic(p Polynomial) ([]Rat, error) {
	if p.Degree() != 2 {
		return nil, fmt.Errorf("solving %v = 0 as quadratic: degree %v: %w", p, p.Degree(), ErrUnsupportedDegree)
	}
	a, b, c := p.Get(2), p.Get(1), p.Get(0)
	four := NewRatFromInt(NewInt(4))
	two := NewRatFromInt(intTwo)

	d := b.Mul(b).Sub(four.Mul(a).Mul(c))
	switch d.Sign() {
	case -1:
		return nil, nil
	case 0:
		x, err := b.Neg().Quo(two.Mul(a))
		if err != nil {
			return nil, fmt.Errorf("solving %v = 0: %w", p, err)
		}
		return []Rat{x, x}, nil
	}

	s, err := d.Sqrt()
	if err != nil {
		return nil, fmt.Errorf("solving %v = 0: discriminant %v: %w", p, d, err)
	}
	x1, err := b.Neg().Sub(s).Quo(two.Mul(a))
	if err != nil {
		return nil, fmt.Errorf("solving %v = 0: %w", p, err)
	}
	x2, err := b.Neg().Add(s).Quo(two.Mul(a))
	if err != nil {
		return nil, fmt.Errorf("solving %v = 0: %w", p, err)
	}
	if x2.Cmp(x1) < 0 {
		x1, x2 = x2, x1
	}
	return []Rat{x1, x2}, nil
}

// SolveRational returns the rational roots of p(x) = 0 using the
// rational root theorem: every root p/q in lowest terms has p dividing
// the constant term and q dividing the leading coefficient.
// If the constant term is zero, the lowest non-zero term takes its place
// and 0 is a root.
// Fractional coefficients between the extreme ones are allowed: the search
// runs on [Polynomial.Integral] of p, which has the same roots.
//
// The multiplicity of a root is the number of successive derivatives of p,
// starting from p itself, that vanish at it.
// Irrational roots are not found, so the result may be shorter than
// the degree of p or even empty.
//
// SolveRational returns an error if p is constant, or if the leading
// coefficient or the lowest non-zero coefficient is not an integer.
func SolveRational(p Polynomial) ([]Rat, error) {
	if p.Degree() < 1 {
		return nil, fmt.Errorf("solving %v = 0 by rational root search: degree %v: %w", p, p.Degree(), ErrUnsupportedDegree)
	}
	low := p.lowest()
	constant, ok := p.Get(low).Int()
	if !ok {
		return nil, fmt.Errorf("solving %v = 0: coefficient %v of x^%v is not an integer: %w", p, p.Get(low), low, ErrNotNormalized)
	}
	lead, ok := p.Lead().Int()
	if !ok {
		return nil, fmt.Errorf("solving %v = 0: leading coefficient %v is not an integer: %w", p, p.Lead(), ErrNotNormalized)
	}

	// Inner coefficients
	if !p.isIntegral() {
		p = p.Integral()
		constant, _ = p.Get(low).Int()
		lead, _ = p.Lead().Int()
	}

	var roots []Rat
	if low > 0 {
		roots = appendRoot(roots, p, ratZero)
	}

	qs := divisors(lead)
	seen := make(map[string]struct{})
	for _, n := range divisors(constant) {
		for _, d := range qs {
			for _, num := range [...]Int{n, n.Neg()} {
				x, err := newRat(num, d)
				if err != nil {
					return nil, fmt.Errorf("solving %v = 0: %w", p, err)
				}
				key := x.String()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				if p.Eval(x).IsZero() {
					roots = appendRoot(roots, p, x)
				}
			}
		}
	}

	slices.SortFunc(roots, Rat.Cmp)
	return roots, nil
}

// appendRoot appends the root x of p to roots as many times as its
// multiplicity.
func appendRoot(roots []Rat, p Polynomial, x Rat) []Rat {
	m := multiplicity(p, x)
	for i := 0; i < m; i++ {
		roots = append(roots, x)
	}
	return roots
}

// multiplicity returns the order of the root x of p.
// It starts at 1 and grows by one for every successive derivative of p
// that also vanishes at x.
func multiplicity(p Polynomial, x Rat) int {
	m := 1
	d := p.Diff()
	for m < p.Degree() && d.Eval(x).IsZero() {
		m++
		d = d.Diff()
	}
	return m
}
