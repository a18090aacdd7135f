// Package primes generates ordered prime tables by wheel-optimized trial
// division and calibrates the trial-division level used by the factor-search
// wheel.
//
// The generator is the exact inverse of a Sieve of Eratosthenes: instead of
// marking composites in an O(n) boolean array, it enumerates candidates
// coprime to 2 and 3 through a repeating stride-10 pattern and trial-divides
// each one by the primes already found, up to its integer square root. The
// working memory beyond the output list is O(log n), which is the design
// rationale for preferring trial division at large bounds.
package primes

import "math"

// Generate returns the ordered list of primes less than or equal to n, with
// no duplicates. The list is seeded with {2, 3, 5}; for n < 7 the
// appropriate prefix of the seed is returned.
func Generate(n uint64) []uint64 {
	seed := []uint64{2, 3, 5}
	switch {
	case n < 2:
		return nil
	case n < 3:
		return seed[:1]
	case n < 5:
		return seed[:2]
	case n < 7:
		return seed[:3]
	}

	known := make([]uint64, len(seed), approxCount(n))
	copy(known, seed)

	// Counter offsets o+1..o+6 and o+8..o+9 map through Forward onto every
	// residue coprime to 6, so multiples of 2 and 3 are never even
	// generated.
	for o := uint64(2); ; o += 10 {
		for _, i := range wheelOffsets {
			p := Forward(o + i)
			if p > n {
				return known
			}
			if isTimeMultiple(p, known) {
				continue
			}
			known = append(known, p)
		}
	}
}

// wheelOffsets are the in-stride counter offsets that survive the 2,3 wheel.
var wheelOffsets = [8]uint64{1, 2, 3, 4, 5, 6, 8, 9}

// Forward maps an index in the space compressed by removing multiples of 2
// and 3 back into the integer domain.
func Forward(i uint64) uint64 {
	i += i >> 1
	return (i << 1) - 1
}

// Backward is the inverse of Forward.
func Backward(p uint64) uint64 {
	p = (p + 1) >> 1
	return ((p + 1) << 1) / 3
}

// isTimeMultiple reports whether p is divisible by any known prime up to and
// including Isqrt(p). Multiples of 2, 3, and 5 never reach this check, so
// the scan starts past them.
func isTimeMultiple(p uint64, known []uint64) bool {
	sqrtP := Isqrt(p)
	for _, i := range known[3:] {
		if i > sqrtP {
			return false
		}
		if p%i == 0 {
			return true
		}
	}
	return false
}

// Isqrt returns the floor of the square root of x by binary search,
// maintaining Isqrt(x)^2 <= x < (Isqrt(x)+1)^2.
func Isqrt(x uint64) uint64 {
	if x < 2 {
		return x
	}
	var ans uint64
	start, end := uint64(1), x>>1
	for start <= end {
		mid := (start + end) >> 1
		if mid > math.MaxUint32 {
			// mid*mid would overflow; the true root is below.
			end = mid - 1
			continue
		}
		sqr := mid * mid
		switch {
		case sqr == x:
			return mid
		case sqr < x:
			start = mid + 1
			ans = mid
		default:
			end = mid - 1
		}
	}
	return ans
}

// approxCount over-estimates pi(n) for slice pre-allocation.
func approxCount(n uint64) int {
	if n < 17 {
		return 8
	}
	return int(float64(n) / (math.Log(float64(n)) - 1.1))
}

// NextAfter returns the smallest prime strictly greater than n. The scan
// walks the 2,3 wheel forward from n, so it stays cheap even when n sits in
// a prime gap.
func NextAfter(n uint64) uint64 {
	if n < 2 {
		return 2
	}
	if n < 3 {
		return 3
	}
	for i := Backward(n); ; i++ {
		p := Forward(i)
		if p <= n {
			continue
		}
		if !isComposite(p) {
			return p
		}
	}
}

func isComposite(p uint64) bool {
	if p%2 == 0 || p%3 == 0 {
		return p > 3
	}
	sqrtP := Isqrt(p)
	for d := uint64(5); d <= sqrtP; d += 6 {
		if p%d == 0 || p%(d+2) == 0 {
			return true
		}
	}
	return false
}
