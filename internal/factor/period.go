package factor

import (
	"math/rand"

	"github.com/agbru/factorcalc/internal/bigmath"
)

// PeriodEstimator implements the classical post-processing stage of quantum
// period finding, with a uniformly random guess standing in for the quantum
// measurement outcome. Each attempt succeeds with bounded, nontrivial
// probability; a miss is the expected result and simply triggers a fresh
// base.
type PeriodEstimator struct {
	target     *bigmath.Int
	qubitCount uint
	qubitPower *bigmath.Int // 2^qubitCount
	rng        *rand.Rand
}

// NewPeriodEstimator builds an estimator for n. qubitCount is the register
// width a period-finding circuit for n would need (bigmath.BitWidth).
func NewPeriodEstimator(n *bigmath.Int, qubitCount uint, rng *rand.Rand) *PeriodEstimator {
	return &PeriodEstimator{
		target:     n,
		qubitCount: qubitCount,
		qubitPower: new(bigmath.Int).Lsh(one, qubitCount),
		rng:        rng,
	}
}

// EstimateFactor runs one full attempt for the given base: guess a
// measurement value, recover a period candidate through continued-fraction
// expansion, and try to split the target with it.
func (e *PeriodEstimator) EstimateFactor(base *bigmath.Int) (*Result, bool) {
	if base.Cmp(two) < 0 || base.Cmp(e.target) >= 0 {
		return nil, false
	}

	// The period of base^x mod N cannot be shorter than log_base(N).
	minR := bigmath.IntLog(base, e.target)

	// y approximates c * 2^q / r for the unknown period r and some c >= 1.
	// c and rGuess are drawn independently over the same limb bounds.
	yRange := new(bigmath.Int).Sub(e.qubitPower, minR)
	if yRange.Sign() <= 0 {
		return nil, false
	}
	rGuess := drawBounded(e.rng, yRange)
	rGuess.Add(rGuess, minR)
	c := drawBounded(e.rng, yRange)
	c.Add(c, one)

	y := new(bigmath.Int).Mul(c, e.qubitPower)
	y.Div(y, rGuess)
	if y.Sign() == 0 {
		return nil, false
	}

	r := e.recoverPeriod(y)
	if r.Sign() == 0 {
		return nil, false
	}

	// Force r even so r/2 is an integer exponent.
	if new(bigmath.Int).Mod(r, two).Sign() != 0 {
		r.Lsh(r, 1)
	}
	halfR := new(bigmath.Int).Rsh(r, 1)
	apowrhalf := bigmath.PowMod(base, halfR, e.target)

	f1 := bigmath.GCD(new(bigmath.Int).Add(apowrhalf, one), e.target)
	f2 := bigmath.GCD(new(bigmath.Int).Sub(apowrhalf, one), e.target)

	// If one side absorbed a duplicate factor the product can be a proper
	// divisor of N; fold the product back into f1 until it either matches
	// N or stops dividing it.
	prod := new(bigmath.Int).Mul(f1, f2)
	rem := new(bigmath.Int)
	for prod.Cmp(e.target) != 0 && prod.Cmp(one) > 0 && rem.Mod(e.target, prod).Sign() == 0 {
		f1 = new(bigmath.Int).Set(prod)
		f2 = new(bigmath.Int).Div(e.target, prod)
		prod.Mul(f1, f2)
	}

	if prod.Cmp(e.target) == 0 && f1.Cmp(one) > 0 && f2.Cmp(one) > 0 {
		return &Result{F1: f1, F2: f2}, true
	}
	return nil, false
}

// recoverPeriod expands 2^qubitCount / y as a continued fraction and returns
// the denominator of the best rational approximation whose denominator stays
// below the target — the period candidate. When the expansion yields no
// usable intermediate convergent, y itself is the candidate.
func (e *PeriodEstimator) recoverPeriod(y *bigmath.Int) *bigmath.Int {
	num := new(bigmath.Int).Set(e.qubitPower)
	den := new(bigmath.Int).Set(y)

	var terms []*bigmath.Int
	intPart := new(bigmath.Int)
	rem := new(bigmath.Int)
	for {
		intPart.DivMod(num, den, rem)
		terms = append(terms, new(bigmath.Int).Set(intPart))
		num.Set(den)
		den.Set(rem)

		_, convergentDen := reduceConvergents(terms)
		if den.Sign() <= 0 || convergentDen.Cmp(e.target) >= 0 {
			break
		}
	}

	// The term that crossed the target (or ended the expansion) is
	// discarded.
	terms = terms[:len(terms)-1]
	if len(terms) == 0 {
		return new(bigmath.Int).Set(y)
	}
	_, r := reduceConvergents(terms)
	return r
}

// reduceConvergents collapses a continued-fraction term list back to a
// single rational approximation via the backward recurrence
// h_i = a_i * h_{i-1} + h_{i-2}.
func reduceConvergents(terms []*bigmath.Int) (*bigmath.Int, *bigmath.Int) {
	approxNumer := bigmath.NewInt(1)
	approxDenom := new(bigmath.Int).Set(terms[len(terms)-1])
	tmp := new(bigmath.Int)
	for i := len(terms) - 2; i > 0; i-- {
		tmp.Mul(terms[i], approxDenom)
		tmp.Add(tmp, approxNumer)
		approxNumer.Set(approxDenom)
		approxDenom, tmp = new(bigmath.Int).Set(tmp), approxDenom
	}
	return approxNumer, approxDenom
}
