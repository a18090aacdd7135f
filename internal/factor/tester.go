package factor

import "github.com/agbru/factorcalc/internal/bigmath"

// Tester evaluates a single candidate base against the target. A miss
// carries no information: the caller simply discards the candidate and
// draws another.
type Tester struct {
	target    *bigmath.Int
	semiprime bool
}

// NewTester creates a tester for n. In semiprime mode the test is a direct
// modular division; otherwise a GCD extracts any shared factor.
func NewTester(n *bigmath.Int, semiprime bool) *Tester {
	return &Tester{target: n, semiprime: semiprime}
}

// Test returns a nontrivial factor pair if base exposes one, or (nil, false)
// on a miss. Candidates outside (1, N) can never produce a nontrivial pair
// and are rejected outright.
func (t *Tester) Test(base *bigmath.Int) (*Result, bool) {
	if base.Cmp(one) <= 0 || base.Cmp(t.target) >= 0 {
		return nil, false
	}

	if t.semiprime {
		if new(bigmath.Int).Mod(t.target, base).Sign() != 0 {
			return nil, false
		}
		return &Result{
			F1: new(bigmath.Int).Set(base),
			F2: new(bigmath.Int).Div(t.target, base),
		}, true
	}

	g := bigmath.GCD(t.target, base)
	if g.Cmp(one) == 0 {
		return nil, false
	}
	return &Result{
		F1: g,
		F2: new(bigmath.Int).Div(t.target, g),
	}, true
}
