package factor

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/primes"
)

// TestSamplerWheelExclusion_PropertyBased verifies the central sampler
// guarantee over random seeds and range positions: no emitted candidate is
// ever a multiple of a wheel prime, whatever the range or wheel size.
func TestSamplerWheelExclusion_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("candidates are coprime to every wheel prime", prop.ForAll(
		func(seed int64, minOffset uint32, levelPick uint8) bool {
			levels := []uint64{7, 11, 13, 17, 19, 23}
			level := levels[int(levelPick)%len(levels)]
			wheel := primes.Generate(level)

			min := bigmath.NewInt(int64(minOffset) + 3)
			oddify(min)
			r := Range{Min: min, Max: new(bigmath.Int).Add(min, bigmath.NewInt(1<<20))}
			s := NewSampler(r, wheel, rand.New(rand.NewSource(seed)))

			rem := new(bigmath.Int)
			p := new(bigmath.Int)
			for i := 0; i < 50; i++ {
				base := s.Next()
				for _, wp := range wheel {
					p.SetUint64(wp)
					if rem.Mod(base, p).Sign() == 0 {
						t.Logf("seed %d level %d: candidate %s divisible by %d",
							seed, level, base.String(), wp)
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.UInt32(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestPartitionCoversWorkers_PropertyBased verifies that partitioning always
// yields one well-formed range per worker: odd aligned minima, each below
// its maximum, for any worker and node count.
func TestPartitionCoversWorkers_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	wheel := primes.Generate(17)

	properties.Property("one ordered odd-aligned range per worker", prop.ForAll(
		func(workers uint8, nodeCount uint8, target uint32) bool {
			w := int(workers%8) + 1
			nc := int(nodeCount%4) + 1
			n := bigmath.NewInt(int64(target) + 100)
			bits := bigmath.BitWidth(n)

			for nodeID := 0; nodeID < nc; nodeID++ {
				opts := Options{NodeCount: nc, NodeID: nodeID, Workers: w,
					BatchSize: DefaultBatchSize, MaxAttempts: DefaultMaxAttempts}
				ranges := Partition(n, bits, 17, wheel, true, opts)
				if len(ranges) != w {
					return false
				}
				rem := new(bigmath.Int)
				for i, r := range ranges {
					if r.Worker != i {
						return false
					}
					if r.Min.Cmp(r.Max) >= 0 {
						return false
					}
					if rem.Mod(r.Min, two).Sign() == 0 {
						return false
					}
				}
			}
			return true
		},
		gen.UInt8(),
		gen.UInt8(),
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
