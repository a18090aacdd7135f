package factor

import (
	"runtime"
	"testing"
)

func TestNormalizeOptionsDefaults(t *testing.T) {
	t.Parallel()

	got := normalizeOptions(Options{})
	if got.NodeCount != 1 {
		t.Errorf("NodeCount = %d, want 1", got.NodeCount)
	}
	if got.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", got.Workers, runtime.NumCPU())
	}
	if got.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", got.BatchSize, DefaultBatchSize)
	}
	if got.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want %d", got.MaxAttempts, DefaultMaxAttempts)
	}
}

func TestNormalizeOptionsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	in := Options{
		NodeCount:   4,
		NodeID:      2,
		Workers:     3,
		BatchSize:   512,
		Seed:        99,
		MaxAttempts: 1000,
	}
	got := normalizeOptions(in)
	if got != in {
		t.Errorf("normalizeOptions(%+v) = %+v", in, got)
	}
}
