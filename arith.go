package polyroot

// gcd calculates the greatest common divisor of |x| and |y|
// using the Euclidean algorithm.
// gcd(0, 0) is 0.
func gcd(x, y Int) Int {
	x, y = x.Abs(), y.Abs()
	for !y.IsZero() {
		_, r := x.quoRem(y)
		x, y = y, r
	}
	return x
}

// lcm calculates the least common multiple of |x| and |y|.
// If either is zero, the result is zero.
func lcm(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return intZero
	}
	q, _ := x.Abs().quoRem(gcd(x, y))
	return q.Mul(y.Abs())
}

// isqrt calculates ⌊√x⌋ using binary search over [0, x + 1)
// and reports whether the root is exact.
// For negative x the result is (0, false).
func isqrt(x Int) (Int, bool) {
	if x.IsNeg() {
		return intZero, false
	}
	low, high := intZero, x.Add(intOne)
	for low.Add(intOne).Cmp(high) != 0 {
		mid := low.Add(high).half()
		if mid.Mul(mid).Cmp(x) <= 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return low, low.Mul(low).Cmp(x) == 0
}

// icbrt calculates the integer cube root of x and reports whether it is
// exact.
// The cube root is odd, so the search runs over [0, |x| + 1)
// and the sign of x is reattached afterwards.
func icbrt(x Int) (Int, bool) {
	a := x.Abs()
	low, high := intZero, a.Add(intOne)
	for low.Add(intOne).Cmp(high) != 0 {
		mid := low.Add(high).half()
		if mid.Pow(3).Cmp(a) <= 0 {
			low = mid
		} else {
			high = mid
		}
	}
	if x.IsNeg() {
		return low.Neg(), low.Pow(3).Cmp(a) == 0
	}
	return low, low.Pow(3).Cmp(a) == 0
}

// divisors returns the positive divisors of |x| in ascending order.
// Zero has no finite set of divisors, so the result is empty.
func divisors(x Int) []Int {
	x = x.Abs()
	if x.IsZero() {
		return nil
	}

	// Special case: single limb
	if m := x.mag(); len(m) == 1 {
		ds := divisorsWord(m[0])
		z := make([]Int, len(ds))
		for i, d := range ds {
			z[i] = NewIntFromUint64(d)
		}
		return z
	}

	// General case
	return divisorsInt(x)
}

// divisorsInt is like divisors but works on a positive x of any size.
func divisorsInt(x Int) []Int {
	var small, large []Int
	for d := intOne; d.Mul(d).Cmp(x) <= 0; d = d.Add(intOne) {
		q, r := x.quoRem(d)
		if !r.IsZero() {
			continue
		}
		small = append(small, d)
		if q.Cmp(d) != 0 {
			large = append(large, q)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

// divisorsWord is like divisors but works on a single non-zero limb.
func divisorsWord(x uint64) []uint64 {
	var small, large []uint64
	for d := uint64(1); d <= x/d; d++ {
		if x%d != 0 {
			continue
		}
		small = append(small, d)
		if q := x / d; q != d {
			large = append(large, q)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}
