/*
Package polyroot implements exact arithmetic on integers, fractions, and
univariate polynomials, and finds the real rational roots of polynomial
equations without any floating-point approximation.

# Representation

[Int] is an arbitrary-precision signed integer.
Its magnitude is a sequence of base 2^64 limbs, least significant first,
and its sign is a separate flag.
Both signs of zero compare equal.

[Rat] is a fraction of two [Int] values kept in canonical form:

  - the denominator is positive;
  - the numerator carries the sign;
  - numerator and denominator are coprime.

Hence every rational value has exactly one representation, and
the numerical value of a [Rat] is Numerator / Denominator.

[Polynomial] is a sparse mapping from non-negative exponents to
[Rat] coefficients.
Zero coefficients are not stored, so the degree of a polynomial is
its largest stored exponent.
The zero polynomial is a single zero term of degree 0.

All types are immutable values: every operation returns a new value
and none of them modifies its operands.

# Operations

Integer and rational arithmetic is exact and never overflows:

  - [Int.Add], [Int.Sub], [Int.Mul], [Int.Pow], [Int.QuoRem].
  - [Rat.Add], [Rat.Sub], [Rat.Mul], [Rat.Quo], [Rat.Inv], [Rat.Pow].
  - [Rat.Sqrt] and [Rat.Cbrt] extract exact roots of the numerator and
    the denominator separately.

Polynomials support evaluation ([Polynomial.Eval]), formal
differentiation ([Polynomial.Diff]), ring operations, and normalization
to integer coefficients ([Polynomial.Integral]).

# Solving

[Solve] returns the real rational roots of P(x) = 0, in ascending order,
each repeated according to its multiplicity:

  - degree 1 and 2 are solved in closed form, see [SolveLinear] and
    [SolveQuadratic];
  - degree 3 and above use the rational root theorem, see [SolveRational].
    Irrational roots are not found.

Equations can be written as text and converted with [ParsePolynomial]:

	x^3 + 5x^2 - 25x - 125 = 0

# Errors

All functions are panic-free, except for the Must variants.
Errors are returned in the following cases:

  - Division by Zero.
    [Rat.Quo], [Rat.Inv], [Int.QuoRem] and fractions with zero denominators
    return [ErrDivisionByZero].

  - Irrational Result.
    [Rat.Sqrt] and [Rat.Cbrt] return [ErrIrrationalResult] if the exact root
    is not rational, and so does [SolveQuadratic] for a positive discriminant
    that is not a square.

  - Not Normalized.
    [SolveRational] returns [ErrNotNormalized] if the leading coefficient or
    the lowest non-zero coefficient is not an integer.
    Use [Polynomial.Integral] to normalize a polynomial first.

  - Unsupported Degree and Indeterminate.
    Solvers applied to a polynomial of the wrong degree return
    [ErrUnsupportedDegree].
    Solving the zero polynomial, for which every value is a root, returns
    [ErrIndeterminate].

  - Syntax.
    Parsing functions return [ErrSyntax] for malformed input and
    [ErrNegativeExponent] for a negative or fractional exponent.
*/
package polyroot
