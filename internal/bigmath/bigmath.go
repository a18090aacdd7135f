package bigmath

import (
	"fmt"
	"sync"
)

// Shared small constants. These are never mutated; every helper that needs
// one reads it without copying.
var (
	zero = NewInt(0)
	one  = NewInt(1)
	two  = NewInt(2)
)

// commonPool recycles scratch integers across the hot helpers below. The
// sampler and period pipeline call GCD and PowMod millions of times per
// search, so avoiding three allocations per call is measurable.
var commonPool = sync.Pool{
	New: func() any { return new(Int) },
}

// ParseDecimal converts a base-10 string to an Int.
//
// Returns:
//   - *Int: The parsed value.
//   - error: An error if s is not a valid decimal integer.
func ParseDecimal(s string) (*Int, error) {
	v, ok := new(Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bigmath: invalid decimal integer %q", s)
	}
	return v, nil
}

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. By definition GCD(x, 0) = x, which terminates the
// loop. The inputs are not modified; negative inputs are treated by
// absolute value.
func GCD(a, b *Int) *Int {
	n1 := new(Int).Abs(a)
	n2 := new(Int).Abs(b)
	for n2.Sign() != 0 {
		n1, n2 = n2, n1.Mod(n1, n2)
	}
	return n1
}

// Isqrt returns the floor of the square root of x by binary search over
// [1, x/2], maintaining the invariant Isqrt(x)^2 <= x < (Isqrt(x)+1)^2.
// Isqrt(0) = 0 and Isqrt of any x < 4 below a perfect square floors
// correctly (Isqrt(2) = Isqrt(3) = 1).
func Isqrt(x *Int) *Int {
	if x.Cmp(two) < 0 {
		return new(Int).Set(x)
	}
	start := NewInt(1)
	end := new(Int).Rsh(x, 1)
	ans := NewInt(1)
	mid := new(Int)
	sqr := new(Int)
	for start.Cmp(end) <= 0 {
		mid.Add(start, end)
		mid.Rsh(mid, 1)
		sqr.Mul(mid, mid)
		switch sqr.Cmp(x) {
		case 0:
			return new(Int).Set(mid)
		case -1:
			start.Add(mid, one)
			ans.Set(mid)
		default:
			end.Sub(mid, one)
		}
	}
	return ans
}

// IntLog returns floor(log_base(arg)) by repeated division. It is exact for
// every input this module feeds it (base >= 2, arg >= 1).
func IntLog(base, arg *Int) *Int {
	x := new(Int).Set(arg)
	result := NewInt(0)
	for x.Cmp(base) >= 0 {
		x.Div(x, base)
		result.Add(result, one)
	}
	return result
}

// Log2 returns floor(log2(n)) for n > 0, i.e. the index of the most
// significant set bit.
func Log2(n *Int) uint {
	if n.Sign() <= 0 {
		return 0
	}
	return uint(n.BitLen() - 1)
}

// IsPowerOfTwo reports whether x is an exact power of two. It relies only
// on the shift/compare surface of the backend: x is a power of two exactly
// when x == 1 << (BitLen(x)-1).
func IsPowerOfTwo(x *Int) bool {
	if x.Sign() <= 0 {
		return false
	}
	p := new(Int).Lsh(one, uint(x.BitLen()-1))
	return p.Cmp(x) == 0
}

// BitWidth returns the width in bits of the search problem for n: log2(n),
// plus one when n is not a power of two. This matches the register size a
// period-finding circuit would need for n.
func BitWidth(n *Int) uint {
	w := Log2(n)
	if !IsPowerOfTwo(n) {
		w++
	}
	return w
}

// PowMod returns base^exp mod m by binary exponentiation, using only the
// multiply/divide/shift surface of the backend. m must be nonzero.
func PowMod(base, exp, m *Int) *Int {
	result := NewInt(1)
	b := commonPool.Get().(*Int)
	e := commonPool.Get().(*Int)
	r := commonPool.Get().(*Int)
	defer func() {
		commonPool.Put(b)
		commonPool.Put(e)
		commonPool.Put(r)
	}()

	b.Mod(base, m)
	e.Set(exp)
	for e.Sign() > 0 {
		if r.Mod(e, two).Sign() != 0 {
			result.Mod(result.Mul(result, b), m)
		}
		e.Rsh(e, 1)
		b.Mod(b.Mul(b, b), m)
	}
	return result
}
