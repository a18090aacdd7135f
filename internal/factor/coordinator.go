package factor

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync/atomic"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/logging"
	"github.com/agbru/factorcalc/internal/parallel"
	"github.com/agbru/factorcalc/internal/primes"
	"golang.org/x/sync/errgroup"
)

// Mode selects the candidate test a Coordinator's workers apply.
type Mode int

const (
	// ModeSemiprime tests candidates by direct modular division. Unbounded:
	// the search runs until the termination flag fires.
	ModeSemiprime Mode = iota
	// ModeGeneral tests candidates by GCD, with a bounded per-worker
	// candidate budget.
	ModeGeneral
	// ModePeriod runs the GCD test and, on a miss, the full Monte-Carlo
	// period-estimation pipeline. Bounded like ModeGeneral.
	ModePeriod
)

// State describes where a Coordinator is in its lifecycle.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateFound
	StateExhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Coordinator owns the shared termination signal, spawns one worker per
// assigned CPU, and joins all workers on completion. The termination flag is
// the only mutable state shared between workers, read at batch boundaries
// only; everything else a worker touches it owns exclusively or is
// immutable.
type Coordinator struct {
	mode  Mode
	log   logging.Logger
	state atomic.Int32
}

// NewCoordinator creates an idle coordinator. A nil logger disables logging.
func NewCoordinator(mode Mode, log logging.Logger) *Coordinator {
	if log == nil {
		log = logging.Nop()
	}
	return &Coordinator{mode: mode, log: log}
}

// State returns the coordinator's current lifecycle state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

func (c *Coordinator) setState(s State) {
	c.state.Store(int32(s))
}

// Search partitions the candidate space for n, races the workers, and
// returns the first nontrivial factor pair found. Bounded modes return
// ErrRangeExhausted when every worker consumes its budget without success.
func (c *Coordinator) Search(ctx context.Context, reporter ProgressReporter, n *bigmath.Int, opts Options) (*Result, error) {
	opts = normalizeOptions(opts)
	if reporter == nil {
		reporter = func(int, uint64) {}
	}

	bits := bigmath.BitWidth(n)
	level := primes.PickTrialDivisionLevel(bits, opts.TrialDivisionLevel)
	wheel := primes.Generate(level)

	// Outside the semiprime fast path, the wheel primes double as a
	// trial-division pre-filter: an exact hit ends the search before any
	// worker spawns.
	if c.mode != ModeSemiprime {
		if res := trialDivide(n, wheel); res != nil {
			c.setState(StateFound)
			return res, nil
		}
	}

	semiprime := c.mode == ModeSemiprime
	ranges := Partition(n, bits, level, wheel, semiprime, opts)

	isFinished := &atomic.Bool{}
	var results parallel.ResultCollector[*Result]
	var errs parallel.ErrorCollector

	c.setState(StateRunning)
	c.log.Debug("search started",
		logging.Int("workers", opts.Workers),
		logging.Int("node", opts.NodeID),
		logging.Uint64("trial_division_level", level),
		logging.Int("bits", int(bits)),
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range ranges {
		r := ranges[i]
		rng := newWorkerRNG(opts.Seed, r.Worker)
		g.Go(func() error {
			err := c.worker(ctx, n, bits, r, wheel, rng, opts, isFinished, &results, reporter)
			errs.SetError(err)
			return err
		})
	}

	// The only blocking operation in the whole search: join every worker
	// before reporting anything. The collector holds the first worker
	// error; a late factor from another worker still wins.
	c.log.Debug("waiting for workers to join")
	_ = g.Wait()

	if res, ok := results.Get(); ok {
		c.setState(StateFound)
		return res, nil
	}
	if err := errs.Err(); err != nil {
		c.setState(StateExhausted)
		return nil, err
	}
	c.setState(StateExhausted)
	return nil, ErrRangeExhausted
}

// worker runs one tight batch loop to completion or signal.
func (c *Coordinator) worker(ctx context.Context, n *bigmath.Int, bits uint, r Range, wheel []uint64, rng *rand.Rand, opts Options, isFinished *atomic.Bool, results *parallel.ResultCollector[*Result], reporter ProgressReporter) error {
	sampler := NewSampler(r, wheel, rng)
	tester := NewTester(n, c.mode == ModeSemiprime)
	var estimator *PeriodEstimator
	if c.mode == ModePeriod {
		estimator = NewPeriodEstimator(n, bits, rng)
	}
	bounded := c.mode != ModeSemiprime

	var tested uint64
	for {
		for i := 0; i < opts.BatchSize; i++ {
			base := sampler.Next()
			res, ok := tester.Test(base)
			if !ok && estimator != nil {
				res, ok = estimator.EstimateFactor(base)
			}
			tested++
			if ok {
				results.Offer(res)
				isFinished.Store(true)
				c.log.Info("worker found factor pair",
					logging.Int("worker", r.Worker),
					logging.Uint64("candidates", tested),
					logging.String("f1", res.F1.String()),
					logging.String("f2", res.F2.String()),
				)
				return nil
			}
		}

		// Between batches only: poll the shared flag, report activity,
		// honor cancellation and the bounded budget.
		candidatesTested.Add(float64(opts.BatchSize))
		reporter(r.Worker, tested)
		if isFinished.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if bounded && tested >= opts.MaxAttempts {
			c.log.Debug("worker exhausted its candidate budget",
				logging.Int("worker", r.Worker),
				logging.Uint64("candidates", tested),
			)
			return nil
		}
	}
}

// trialDivide checks n against each wheel prime directly. Hits where the
// cofactor is 1 (n itself prime and small) are not a factorization and are
// skipped.
func trialDivide(n *bigmath.Int, wheel []uint64) *Result {
	p := new(bigmath.Int)
	rem := new(bigmath.Int)
	for _, wp := range wheel {
		p.SetUint64(wp)
		if rem.Mod(n, p).Sign() == 0 {
			f2 := new(bigmath.Int).Div(n, p)
			if f2.Cmp(one) <= 0 {
				continue
			}
			return &Result{F1: new(bigmath.Int).Set(p), F2: f2}
		}
	}
	return nil
}

// newWorkerRNG builds a worker-private generator. A zero seed draws entropy
// from the system source; a nonzero seed is offset by the worker index so
// runs are reproducible yet workers stay decorrelated.
func newWorkerRNG(seed int64, worker int) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = int64(worker + 1)
		}
		if seed == 0 {
			seed = 1
		}
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(seed + int64(worker)))
}
