// Package factor implements the randomized, embarrassingly parallel
// factor-search engine. It exposes a `Factorizer` interface that abstracts
// the underlying search strategy, allowing the semiprime fast path, the
// general GCD path, and the Monte-Carlo period-estimation path to be used
// interchangeably. The package integrates deterministic range partitioning
// across nodes and worker goroutines, wheel-coprime candidate sampling, and
// a cooperative atomic termination protocol.
package factor

//go:generate mockgen -source=factor.go -destination=mocks/mock_factor.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	// ErrInvalidTarget is returned when the number to factor is below 2.
	ErrInvalidTarget = errors.New("factor: target must be >= 2")

	// ErrRangeExhausted is returned by a bounded search that consumed its
	// whole range without finding a factor.
	ErrRangeExhausted = errors.New("factor: search range exhausted without a factor")
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factor_searches_total",
			Help: "The total number of factor searches processed",
		},
		[]string{"algorithm", "status"},
	)
	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "factor_search_duration_seconds",
			Help: "The duration of factor searches in seconds",
		},
		[]string{"algorithm"},
	)
	candidatesTested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factor_candidates_tested_total",
			Help: "The total number of candidate bases evaluated across all workers",
		},
	)
)

// Result is a nontrivial factorization of the target: F1 * F2 == N with
// 1 < F1 <= F2 < N.
type Result struct {
	F1 *bigmath.Int
	F2 *bigmath.Int
}

// normalize orders the pair so that F1 <= F2.
func (r *Result) normalize() *Result {
	if r.F1.Cmp(r.F2) > 0 {
		r.F1, r.F2 = r.F2, r.F1
	}
	return r
}

// Product returns F1 * F2.
func (r *Result) Product() *bigmath.Int {
	return new(bigmath.Int).Mul(r.F1, r.F2)
}

// Factorizer defines the public interface for a factor search.
// It is the primary abstraction used by the orchestration layer to interact
// with the different search strategies.
type Factorizer interface {
	// Factor searches for a nontrivial factor pair of n. It is designed for
	// safe concurrent execution and supports cancellation through the
	// provided context. Worker activity is reported asynchronously through
	// the subject's observers, if any.
	Factor(ctx context.Context, subject *ProgressSubject, n *bigmath.Int, opts Options) (*Result, error)

	// Name returns the display name of the search strategy.
	Name() string
}

// searchCore defines the internal interface for a pure search strategy.
type searchCore interface {
	SearchCore(ctx context.Context, reporter ProgressReporter, n *bigmath.Int, opts Options) (*Result, error)
	Name() string
}

// FactorSearch is an implementation of the Factorizer interface that wraps a
// searchCore to add cross-cutting concerns: input validation, metrics,
// tracing, and observer plumbing.
type FactorSearch struct {
	core searchCore
}

// NewFactorizer constructs a FactorSearch around the given search core. It
// panics if the core is nil.
func NewFactorizer(core searchCore) Factorizer {
	if core == nil {
		panic("factor: the `searchCore` implementation cannot be nil")
	}
	return &FactorSearch{core: core}
}

// Name returns the name of the encapsulated search core.
func (f *FactorSearch) Name() string {
	return f.core.Name()
}

// Factor validates the target, then delegates to the wrapped core while
// recording metrics and a trace span around the whole search.
func (f *FactorSearch) Factor(ctx context.Context, subject *ProgressSubject, n *bigmath.Int, opts Options) (result *Result, err error) {
	if n == nil || n.Cmp(bigmath.NewInt(2)) < 0 {
		return nil, ErrInvalidTarget
	}

	tracer := otel.Tracer("factor")
	ctx, span := tracer.Start(ctx, "Factor")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := f.core.Name()
		searchesTotal.WithLabelValues(algoName, status).Inc()
		searchDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Str("n", n.String()).
			Float64("duration", duration).
			Str("status", status).
			Msg("factor search completed")
	}()

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter()
	} else {
		reporter = func(int, uint64) {}
	}

	result, err = f.core.SearchCore(ctx, reporter, n, opts)
	if result != nil {
		result.normalize()
	}
	return result, err
}
