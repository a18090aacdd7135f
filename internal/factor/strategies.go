package factor

import (
	"context"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/logging"
)

// SemiprimeSearch is the fast path for targets known to be a product of two
// primes of similar size. Every candidate is tested by a single modular
// division and the search runs until a worker succeeds or the context is
// canceled.
type SemiprimeSearch struct {
	Log logging.Logger
}

// Name returns the display name of the semiprime strategy.
func (s *SemiprimeSearch) Name() string {
	return "Semiprime (Direct Division)"
}

// SearchCore runs a coordinated semiprime search over n.
func (s *SemiprimeSearch) SearchCore(ctx context.Context, reporter ProgressReporter, n *bigmath.Int, opts Options) (*Result, error) {
	return NewCoordinator(ModeSemiprime, s.Log).Search(ctx, reporter, n, opts)
}

// GeneralSearch handles arbitrary composite targets. Candidates are tested by
// GCD against the target, so any shared prime below the candidate yields a
// factorization. Each worker's draw budget is bounded by Options.MaxAttempts.
type GeneralSearch struct {
	Log logging.Logger
}

// Name returns the display name of the general strategy.
func (s *GeneralSearch) Name() string {
	return "General (GCD)"
}

// SearchCore runs a coordinated GCD search over n.
func (s *GeneralSearch) SearchCore(ctx context.Context, reporter ProgressReporter, n *bigmath.Int, opts Options) (*Result, error) {
	return NewCoordinator(ModeGeneral, s.Log).Search(ctx, reporter, n, opts)
}

// PeriodSearch extends the general search with Monte-Carlo period estimation:
// candidates that fail the GCD test are fed through a randomized
// continued-fraction pipeline that can recover a factor pair from a lucky
// period guess.
type PeriodSearch struct {
	Log logging.Logger
}

// Name returns the display name of the period-estimation strategy.
func (s *PeriodSearch) Name() string {
	return "Period Estimation (Monte-Carlo)"
}

// SearchCore runs a coordinated period-estimation search over n.
func (s *PeriodSearch) SearchCore(ctx context.Context, reporter ProgressReporter, n *bigmath.Int, opts Options) (*Result, error) {
	return NewCoordinator(ModePeriod, s.Log).Search(ctx, reporter, n, opts)
}
