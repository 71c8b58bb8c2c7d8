package polyroot

import (
	"fmt"
	"math/bits"
)

// nat is the magnitude of an integer, a sequence of base 2^64 limbs
// stored least significant first.
// Functions operating on nat never modify their arguments.
type nat []uint64

// maxChunk is the largest power of 10 that fits into a single limb,
// and chunkDigits is its number of zeros.
const (
	maxChunk    = 10_000_000_000_000_000_000
	chunkDigits = 19
)

// norm returns x without the most significant zero limbs.
// The result always has at least one limb.
func (x nat) norm() nat {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return x[:i]
}

func (x nat) isZero() bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

// bit returns the i-th bit of x.
func (x nat) bit(i int) uint64 {
	j := i / 64
	if j >= len(x) {
		return 0
	}
	return (x[j] >> (i % 64)) & 1
}

// shiftLeftByLimbs calculates x * 2^(64 * k) by inserting k zero limbs
// at the least significant end.
func (x nat) shiftLeftByLimbs(k int) nat {
	if k <= 0 {
		return x
	}
	z := make(nat, k+len(x))
	copy(z[k:], x)
	return z
}

// shl1 calculates x * 2 + b, where b is 0 or 1.
func (x nat) shl1(b uint64) nat {
	z := make(nat, len(x)+1)
	carry := b
	for i, v := range x {
		z[i] = v<<1 | carry
		carry = v >> 63
	}
	z[len(x)] = carry
	return z.norm()
}

// shr1 calculates ⌊x / 2⌋.
func (x nat) shr1() nat {
	z := make(nat, len(x))
	for i := range x {
		z[i] = x[i] >> 1
		if i+1 < len(x) {
			z[i] |= x[i+1] << 63
		}
	}
	return z.norm()
}

// cmpAbs compares magnitudes x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func cmpAbs(x, y nat) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case y[i] < x[i]:
			return 1
		}
	}
	return 0
}

// addAbs calculates x + y.
// The carry is propagated limb by limb, and one more limb is appended
// only if it escapes the most significant limb.
func addAbs(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x), len(x)+1)
	var carry uint64
	for i := range x {
		var v uint64
		if i < len(y) {
			v = y[i]
		}
		z[i], carry = bits.Add64(x[i], v, carry)
	}
	if carry != 0 {
		z = append(z, carry)
	}
	return z.norm()
}

// subAbs calculates |x - y|.
// The smaller magnitude is always subtracted from the larger one,
// neg reports whether y was the larger one.
func subAbs(x, y nat) (z nat, neg bool) {
	if cmpAbs(x, y) < 0 {
		x, y = y, x
		neg = true
	}
	z = make(nat, len(x))
	var borrow uint64
	for i := range x {
		var v uint64
		if i < len(y) {
			v = y[i]
		}
		z[i], borrow = bits.Sub64(x[i], v, borrow)
	}
	return z.norm(), neg
}

// mulWord calculates x * y.
// Every limb product is computed in 128 bits, the high half is carried
// into the next limb.
func mulWord(x nat, y uint64) nat {
	z := make(nat, len(x)+1)
	var carry uint64
	for i, v := range x {
		hi, lo := bits.Mul64(v, y)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c // hi <= 2^64 - 2, no overflow
	}
	z[len(x)] = carry
	return z.norm()
}

// mulAbs calculates x * y using schoolbook multiplication.
// The partial product of every limb of x is positioned with
// shiftLeftByLimbs and accumulated into the running result.
func mulAbs(x, y nat) nat {
	z := nat{0}
	for i, v := range x {
		if v == 0 {
			continue
		}
		z = addAbs(z, mulWord(y, v).shiftLeftByLimbs(i))
	}
	return z
}

// quoRemWord calculates q = ⌊x / y⌋, r = x - y * q for a single limb y.
// If y is zero, the result is undefined.
func quoRemWord(x nat, y uint64) (q nat, r uint64) {
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], y)
	}
	return q.norm(), r
}

// quoRemAbs calculates q = ⌊x / y⌋, r = x - y * q.
// If y is zero, the result is undefined.
func quoRemAbs(x, y nat) (q, r nat) {
	x, y = x.norm(), y.norm()

	// Special cases
	switch {
	case cmpAbs(x, y) < 0:
		return nat{0}, x
	case len(y) == 1:
		z, w := quoRemWord(x, y[0])
		return z, nat{w}
	}

	// General case: binary long division
	q = make(nat, len(x))
	r = nat{0}
	for i := len(x)*64 - 1; i >= 0; i-- {
		r = r.shl1(x.bit(i))
		if cmpAbs(r, y) >= 0 {
			r, _ = subAbs(r, y)
			q[i/64] |= 1 << (i % 64)
		}
	}
	return q.norm(), r
}

// Int is an immutable arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// The magnitude is a sequence of base 2^64 limbs, least significant first.
// Every operation returns a new Int and never modifies its operands.
type Int struct {
	neg   bool // indicates whether the integer is negative
	limbs nat  // the magnitude of the integer
}

var (
	intZero = NewInt(0)
	intOne  = NewInt(1)
	intTwo  = NewInt(2)
)

func newInt(neg bool, mag nat) Int {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, limbs: mag}
}

// NewInt returns an integer equal to x.
func NewInt(x int64) Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = -u
	}
	return newInt(neg, nat{u})
}

// NewIntFromUint64 returns an integer equal to x.
func NewIntFromUint64(x uint64) Int {
	return newInt(false, nat{x})
}

// ParseInt converts a string to an integer.
// The input string must be a sequence of decimal digits,
// optionally preceded by '+' or '-'.
func ParseInt(s string) (Int, error) {
	var (
		pos   int
		neg   bool
		mag   = nat{0}
		chunk uint64
		width int
	)
	if s == "" {
		return Int{}, fmt.Errorf("parsing integer %q: %w", s, ErrSyntax)
	}

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}
	if pos == len(s) {
		return Int{}, fmt.Errorf("parsing integer %q: no digits: %w", s, ErrSyntax)
	}

	// Digits
	for ; pos < len(s); pos++ {
		c := s[pos]
		if c < '0' || '9' < c {
			return Int{}, fmt.Errorf("parsing integer %q: unexpected character %q: %w", s, c, ErrSyntax)
		}
		chunk = chunk*10 + uint64(c-'0')
		width++
		if width == chunkDigits {
			mag = addAbs(mulWord(mag, maxChunk), nat{chunk})
			chunk, width = 0, 0
		}
	}
	if width > 0 {
		mag = addAbs(mulWord(mag, pow10Word(width)), nat{chunk})
	}
	return newInt(neg, mag), nil
}

// pow10Word returns 10^n for n <= chunkDigits.
func pow10Word(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// mag returns the normalized magnitude of x.
func (x Int) mag() nat {
	if len(x.limbs) == 0 {
		return nat{0}
	}
	return x.limbs.norm()
}

// shiftLeftByLimbs calculates x * 2^(64 * k).
func (x Int) shiftLeftByLimbs(k int) Int {
	return newInt(x.neg, x.mag().shiftLeftByLimbs(k))
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.mag().isZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.Sign() < 0
}

// Neg returns x with opposite sign.
// The negation of zero is still equal to zero.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag())
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return newInt(false, x.mag())
}

// Add returns the sum of x and y.
func (x Int) Add(y Int) Int {
	xm, ym := x.mag(), y.mag()
	switch {
	case !x.neg && !y.neg:
		return newInt(false, addAbs(xm, ym))
	case !x.neg && y.neg:
		z, neg := subAbs(xm, ym)
		return newInt(neg, z)
	case x.neg && !y.neg:
		z, neg := subAbs(ym, xm)
		return newInt(neg, z)
	default:
		return newInt(true, addAbs(xm, ym))
	}
}

// Sub returns the difference of x and y.
func (x Int) Sub(y Int) Int {
	xm, ym := x.mag(), y.mag()
	switch {
	case !x.neg && !y.neg:
		z, neg := subAbs(xm, ym)
		return newInt(neg, z)
	case !x.neg && y.neg:
		return newInt(false, addAbs(xm, ym))
	case x.neg && !y.neg:
		return newInt(true, addAbs(xm, ym))
	default:
		z, neg := subAbs(ym, xm)
		return newInt(neg, z)
	}
}

// Mul returns the product of x and y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, mulAbs(x.mag(), y.mag()))
}

// Pow returns x raised to the power of n.
func (x Int) Pow(n uint) Int {
	z := intOne
	b := x
	for n > 0 {
		if n&1 == 1 {
			z = z.Mul(b)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b)
		}
	}
	return z
}

// QuoRem returns the quotient q and remainder r of x and y such that
// x = q * y + r, where q is truncated towards zero and r has the sign of x.
//
// QuoRem returns an error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	q, r = x.quoRem(y)
	return q, r, nil
}

// Quo returns the quotient of x and y truncated towards zero.
//
// Quo returns an error if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x and y, which has the sign of x.
//
// Rem returns an error if y is zero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// quoRem is like [Int.QuoRem] but does not check for division by zero.
func (x Int) quoRem(y Int) (q, r Int) {
	qm, rm := quoRemAbs(x.mag(), y.mag())
	return newInt(x.neg != y.neg, qm), newInt(x.neg, rm)
}

// half calculates ⌊x / 2⌋ for a non-negative x.
func (x Int) half() Int {
	return newInt(x.neg, x.mag().shr1())
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both signs of zero compare equal.
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case ys < xs:
		return 1
	case xs == 0:
		return 0
	}

	// General case
	c := cmpAbs(x.mag(), y.mag())
	if xs < 0 {
		return -c
	}
	return c
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Int64 returns x as int64.
// If x cannot be represented as int64, the result is (0, false).
func (x Int) Int64() (int64, bool) {
	m := x.mag()
	if len(m) != 1 {
		return 0, false
	}
	u := m[0]
	switch {
	case x.neg && u <= 1<<63:
		return int64(-u), true
	case !x.neg && u < 1<<63:
		return int64(u), true
	}
	return 0, false
}

// String implements the [fmt.Stringer] interface and returns
// the decimal representation of x.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	m := x.mag()

	// Special case
	if len(m) == 1 {
		if x.IsNeg() {
			return fmt.Sprintf("-%d", m[0])
		}
		return fmt.Sprintf("%d", m[0])
	}

	// General case
	var chunks []uint64
	for !m.isZero() {
		var r uint64
		m, r = quoRemWord(m, maxChunk)
		chunks = append(chunks, r)
	}
	buf := make([]byte, 0, len(chunks)*chunkDigits+1)
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	buf = fmt.Appendf(buf, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		buf = fmt.Appendf(buf, "%019d", chunks[i])
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseInt(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
