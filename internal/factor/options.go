// Package factor implements the randomized concurrent factor-search engine.
// This file contains configuration options for factor searches.
package factor

import "runtime"

// Options configures a factor search.
type Options struct {
	// NodeCount is the number of independent, non-networked compute nodes
	// the search space is split across. If 0, a single node is assumed.
	NodeCount int
	// NodeID identifies this node, in [0, NodeCount).
	NodeID int
	// Workers is the number of worker goroutines to spawn on this node.
	// If 0, one worker per logical CPU is used.
	Workers int
	// BatchSize is the number of candidates evaluated between termination
	// polls. If 0, DefaultBatchSize is used.
	BatchSize int
	// TrialDivisionLevel overrides the calibrated wheel cutoff prime.
	// If 0, the level is derived from the target's bit width.
	TrialDivisionLevel uint64
	// Seed seeds the per-worker random generators deterministically
	// (worker i uses Seed + i). If 0, each worker is seeded from the
	// system entropy source. Nonzero seeds exist for reproducible tests.
	Seed int64
	// MaxAttempts is the per-worker candidate budget for bounded searches.
	// If 0, DefaultMaxAttempts is used. Ignored by the semiprime path.
	MaxAttempts uint64
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, ensuring consistent handling across all search strategies.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.NodeCount <= 0 {
		normalized.NodeCount = 1
	}
	if normalized.Workers <= 0 {
		normalized.Workers = runtime.NumCPU()
	}
	if normalized.BatchSize <= 0 {
		normalized.BatchSize = DefaultBatchSize
	}
	if normalized.MaxAttempts == 0 {
		normalized.MaxAttempts = DefaultMaxAttempts
	}
	return normalized
}
