package factor

import (
	"math"
	"math/rand"

	"github.com/agbru/factorcalc/internal/bigmath"
)

// Sampler produces independent, uniformly distributed candidate bases inside
// one worker's Range, transformed so that no emitted candidate is a multiple
// of any wheel prime. The transform is constructive — there is no rejection
// resampling — so every draw costs O(len(wheel)) regardless of luck.
type Sampler struct {
	rng   *rand.Rand
	limbs []uint64 // MSW-first per-limb draw bounds of the range width
	min   *bigmath.Int
	wheel []uint64
}

// NewSampler builds a sampler for r using the given wheel primes (ascending,
// starting at 2) and a worker-private random generator.
func NewSampler(r Range, wheel []uint64, rng *rand.Rand) *Sampler {
	return &Sampler{
		rng:   rng,
		limbs: decompose(r.Width()),
		min:   r.Min,
		wheel: wheel,
	}
}

// decompose splits a bound into 64-bit limb bounds, most significant first.
func decompose(bound *bigmath.Int) []uint64 {
	limbMod := new(bigmath.Int).Lsh(one, rngLimbBits)
	rest := new(bigmath.Int).Set(bound)
	part := new(bigmath.Int)
	var limbs []uint64
	for rest.Sign() > 0 {
		part.Mod(rest, limbMod)
		limbs = append(limbs, part.Uint64())
		rest.Rsh(rest, rngLimbBits)
	}
	if len(limbs) == 0 {
		limbs = []uint64{1}
	}
	// Reverse to most-significant-first order.
	for i, j := 0, len(limbs)-1; i < j; i, j = i+1, j-1 {
		limbs[i], limbs[j] = limbs[j], limbs[i]
	}
	return limbs
}

// uniform64 draws uniformly from [0, bound].
func uniform64(rng *rand.Rand, bound uint64) uint64 {
	if bound == math.MaxUint64 {
		return rng.Uint64()
	}
	// Rejection sampling: 2^64 mod n residues would otherwise be drawn
	// one extra time each. thresh is 2^64 mod n, so the accepted span
	// [thresh, 2^64) is an exact multiple of n.
	n := bound + 1
	thresh := -n % n
	for {
		v := rng.Uint64()
		if v >= thresh {
			return v % n
		}
	}
}

// compose reconstitutes a full-width uniform value from per-limb draws,
// most significant chunk first, by shift-and-add concatenation.
func compose(rng *rand.Rand, limbs []uint64) *bigmath.Int {
	v := new(bigmath.Int).SetUint64(uniform64(rng, limbs[0]))
	chunk := new(bigmath.Int)
	for _, bound := range limbs[1:] {
		v.Lsh(v, rngLimbBits)
		chunk.SetUint64(uniform64(rng, bound))
		v.Add(v, chunk)
	}
	return v
}

// drawBounded draws a uniform value in [0, bound] via limb composition.
// Used by the period-estimation pipeline, whose bounds are full-width.
func drawBounded(rng *rand.Rand, bound *bigmath.Int) *bigmath.Int {
	return compose(rng, decompose(bound))
}

// Next returns a fresh candidate base: a uniform draw over the range width,
// pushed away from multiples of each wheel prime in descending order, then
// cleared of multiples of 5, 3, and 2 in the combined tail steps, offset by
// the worker's aligned lower bound, and finally swept onto the nearest odd
// value coprime to the whole wheel.
func (s *Sampler) Next() *bigmath.Int {
	base := compose(s.rng, s.limbs)
	t := new(bigmath.Int)

	// Push away from each wheel prime above 5, largest first: adding
	// base/(p-1) + 1 maps [m(p-1), (m+1)(p-1)) onto (mp, (m+1)p), skipping
	// every multiple of p.
	pm1 := new(bigmath.Int)
	for i := len(s.wheel) - 1; i > 2; i-- {
		pm1.SetUint64(s.wheel[i] - 1)
		t.Div(base, pm1)
		base.Add(base, t)
		base.Add(base, one)
	}

	// The same step for 5, as a shift.
	t.Rsh(base, 2)
	base.Add(base, t)
	base.Add(base, one)

	// Combined 2-and-3 step: triple, force even, then the odd aligned
	// minimum makes the sum odd.
	t.Lsh(base, 1)
	base.Add(base, t)
	if new(bigmath.Int).Mod(base, two).Sign() != 0 {
		base.Sub(base, one)
	}
	base.Add(base, s.min)

	// Two cases force a repair pass. The stacked push-away steps interact,
	// so a later step can re-land on a multiple of an earlier prime. And
	// Partition keeps an unaligned odd minimum when flooring the worker
	// minimum to the wheel primes would cross the search floor, so s.min
	// itself may carry wheel factors into the sum above. Sweep forward
	// over odd values until the candidate is coprime to every wheel
	// prime; the gap to the next wheel-coprime odd value is bounded by
	// the wheel's Jacobsthal gap, a few steps for any practical level.
	p := new(bigmath.Int)
	for changed := true; changed; {
		changed = false
		for _, wp := range s.wheel[1:] {
			p.SetUint64(wp)
			for t.Mod(base, p).Sign() == 0 {
				base.Add(base, two)
				changed = true
			}
		}
	}
	return base
}
