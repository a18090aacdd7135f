// Package factor implements the randomized concurrent factor-search engine.
package factor

// ─────────────────────────────────────────────────────────────────────────────
// Search Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control the batch loop and the bounded general-path search.

const (
	// DefaultBatchSize is the number of candidate bases a worker evaluates
	// between polls of the shared termination flag. Batching keeps the
	// atomic load off the hot per-candidate path, bounding synchronization
	// overhead to O(1/batchSize) of total work. 2^16 matches the batch size
	// the search was originally tuned with.
	DefaultBatchSize = 1 << 16

	// DefaultMaxAttempts is the per-worker candidate budget for bounded
	// (non-semiprime) searches. The semiprime fast path ignores it and runs
	// until the termination flag fires: any single random draw succeeds
	// with bounded low probability, so its retry loop is intentionally
	// unbounded. 2^24 draws keeps a fruitless general search under a few
	// minutes per worker on current hardware.
	DefaultMaxAttempts = 1 << 24

	// rngLimbBits is the width of one uniform draw composed into a
	// full-width candidate. Candidate widths routinely exceed a machine
	// word, so draws are concatenated most-significant limb first.
	rngLimbBits = 64
)
