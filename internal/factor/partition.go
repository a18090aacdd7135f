package factor

import (
	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/primes"
)

// Range is a half-open interval of candidate bases owned by exactly one
// worker on one node. Min is already aligned for the sampler's wheel
// transform: sequentially floored to a multiple of each wheel prime, forced
// odd, then stepped past the alignment point.
type Range struct {
	Min    *bigmath.Int
	Max    *bigmath.Int
	Node   int
	Worker int
}

// Width returns Max - (Min + 1), the sampler's raw draw bound.
func (r Range) Width() *bigmath.Int {
	w := new(bigmath.Int).Sub(r.Max, r.Min)
	w.Sub(w, one)
	if w.Sign() <= 0 {
		return bigmath.NewInt(1)
	}
	return w
}

// knownFactorBounds maps the expected bit width of each ~equal-size factor
// of an RSA-style semiprime to a calibrated [min, max] candidate interval,
// for the handful of widths the interval has been measured for.
var knownFactorBounds = map[uint][2]uint64{
	16: {16411, 131071},
	28: {67108879, 536870909},
	32: {1073741827, 8589934583},
}

// fullBounds computes the full candidate-base interval [min, max] for the
// whole search, before density correction and node/worker splitting.
//
// For the semiprime fast path the bounds derive from the expected bit width
// of each factor; for the general path they span from the first prime above
// the trial-division level up to n divided by that prime.
func fullBounds(n *bigmath.Int, bits uint, level uint64, semiprime bool) (*bigmath.Int, *bigmath.Int) {
	if semiprime {
		primeBits := (bits + 1) >> 1
		if primeBits < 2 {
			primeBits = 2
		}
		if b, ok := knownFactorBounds[primeBits]; ok {
			return new(bigmath.Int).SetUint64(b[0]), new(bigmath.Int).SetUint64(b[1])
		}
		min := new(bigmath.Int).Lsh(one, primeBits-2)
		min.Add(min, one) // 2^(b-2) is even, so |1 is +1
		max := new(bigmath.Int).Lsh(one, primeBits+1)
		max.Sub(max, one)
		return min, max
	}

	next := new(bigmath.Int).SetUint64(primes.NextAfter(level))
	max := new(bigmath.Int).Div(n, next)
	if max.Cmp(next) < 0 {
		max.Set(next)
	}
	return next, max
}

// correctedWidth applies the Euler-totient-style density correction to the
// full interval width: the wheel removes every multiple of each prime
// p <= level from consideration, shrinking the effective search space by
// (p-1)/p per prime. The multiply-then-divide order (with truncation) is
// deliberate.
func correctedWidth(min, max *bigmath.Int, wheel []uint64) *bigmath.Int {
	width := new(bigmath.Int).Sub(max, min)
	width.Add(width, one)
	pm1 := new(bigmath.Int)
	p := new(bigmath.Int)
	for _, wp := range wheel {
		pm1.SetUint64(wp - 1)
		p.SetUint64(wp)
		width.Mul(width, pm1)
		width.Div(width, p)
	}
	if width.Sign() <= 0 {
		width.Set(one)
	}
	return width
}

// alignMin aligns a worker's lower bound for the sampler: sequentially
// floored to a multiple of each wheel prime in ascending order, forced odd,
// then advanced by two. This keeps the wheel-exclusion transform consistent
// with the partition boundary.
func alignMin(tm *bigmath.Int, wheel []uint64) *bigmath.Int {
	aligned := new(bigmath.Int).Set(tm)
	p := new(bigmath.Int)
	for _, wp := range wheel {
		p.SetUint64(wp)
		aligned.Div(aligned, p)
		aligned.Mul(aligned, p)
	}
	oddify(aligned)
	return aligned.Add(aligned, two)
}

// oddify forces v odd in place.
func oddify(v *bigmath.Int) *bigmath.Int {
	if new(bigmath.Int).Mod(v, two).Sign() == 0 {
		v.Add(v, one)
	}
	return v
}

// Partition splits the corrected candidate interval for n into one Range per
// worker on the given node. The corrected width is divided evenly across
// nodeCount, then this node's slice evenly across workers; each worker's
// lower bound is then wheel-aligned.
func Partition(n *bigmath.Int, bits uint, level uint64, wheel []uint64, semiprime bool, opts Options) []Range {
	fullMin, fullMax := fullBounds(n, bits, level, semiprime)
	width := correctedWidth(fullMin, fullMax, wheel)

	nodeCount := bigmath.NewInt(int64(opts.NodeCount))
	nodeRange := new(bigmath.Int).Add(width, nodeCount)
	nodeRange.Sub(nodeRange, one)
	nodeRange.Div(nodeRange, nodeCount)

	nodeMin := new(bigmath.Int).Mul(nodeRange, bigmath.NewInt(int64(opts.NodeID)))
	nodeMin.Add(nodeMin, fullMin)
	nodeMax := new(bigmath.Int).Add(nodeMin, nodeRange)

	workers := bigmath.NewInt(int64(opts.Workers))
	threadRange := new(bigmath.Int).Sub(nodeMax, nodeMin)
	threadRange.Add(threadRange, one)
	threadRange.Add(threadRange, workers)
	threadRange.Div(threadRange, workers)

	ranges := make([]Range, opts.Workers)
	for cpu := 0; cpu < opts.Workers; cpu++ {
		tm := new(bigmath.Int).Mul(threadRange, bigmath.NewInt(int64(cpu)))
		tm.Add(tm, nodeMin)
		oddify(tm)
		min := alignMin(tm, wheel)
		// Sequential flooring can undershoot by up to the sum of the wheel
		// primes; near the bottom of the interval that would leak below the
		// search floor, so keep the unaligned odd minimum instead.
		if min.Cmp(fullMin) < 0 {
			min = new(bigmath.Int).Set(tm)
		}
		ranges[cpu] = Range{
			Min:    min,
			Max:    new(bigmath.Int).Add(min, threadRange),
			Node:   opts.NodeID,
			Worker: cpu,
		}
	}
	return ranges
}

var (
	one = bigmath.NewInt(1)
	two = bigmath.NewInt(2)
)
