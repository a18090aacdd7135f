package cli

import (
	"strings"
	"testing"
	"time"
)

func TestProgressStateTotal(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(3)
	ps.Update(0, 100)
	ps.Update(1, 250)
	ps.Update(2, 50)
	if got := ps.Total(); got != 400 {
		t.Errorf("Total() = %d; want 400", got)
	}

	// Cumulative counts replace, not accumulate.
	ps.Update(1, 300)
	if got := ps.Total(); got != 450 {
		t.Errorf("Total() after update = %d; want 450", got)
	}
}

func TestProgressStateIgnoresInvalidIndex(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(2)
	ps.Update(-1, 100)
	ps.Update(2, 100)
	if got := ps.Total(); got != 0 {
		t.Errorf("Total() = %d; want 0 after out-of-range updates", got)
	}
}

func TestUpdateWithRateSmoothing(t *testing.T) {
	t.Parallel()
	p := NewProgressWithRate(1, 0)
	// Pretend the search has been running for a while.
	p.startTime = time.Now().Add(-2 * time.Second)
	p.lastUpdate = time.Now().Add(-time.Second)

	total, rate := p.UpdateWithRate(0, 1000)
	if total != 1000 {
		t.Errorf("total = %d; want 1000", total)
	}
	if rate <= 0 {
		t.Errorf("rate = %f; want a positive rate after elapsed time", rate)
	}
}

func TestUpdateWithRateEarlySamples(t *testing.T) {
	t.Parallel()
	p := NewProgressWithRate(1, 0)
	_, rate := p.UpdateWithRate(0, 10)
	if rate != 0 {
		t.Errorf("rate = %f; want 0 before enough time has elapsed", rate)
	}
}

func TestGetETA(t *testing.T) {
	t.Parallel()

	t.Run("unbounded search has no ETA", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithRate(1, 0)
		p.rate = 100
		p.Update(0, 50)
		if got := p.GetETA(); got != 0 {
			t.Errorf("GetETA() = %v; want 0", got)
		}
	})

	t.Run("derived from rate and remaining budget", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithRate(1, 1000)
		p.rate = 100
		p.Update(0, 500)
		got := p.GetETA()
		if got < 4*time.Second || got > 6*time.Second {
			t.Errorf("GetETA() = %v; want about 5s", got)
		}
	})

	t.Run("consumed budget", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithRate(1, 100)
		p.rate = 10
		p.Update(0, 100)
		if got := p.GetETA(); got != 0 {
			t.Errorf("GetETA() = %v; want 0", got)
		}
	})
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	t.Run("bounded shows progress bar", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithRate(1, 1000)
		p.Update(0, 500)
		line := p.StatusLine()
		if !strings.Contains(line, "Progress:") || !strings.Contains(line, "50.00%") {
			t.Errorf("StatusLine() = %q; want a 50%% progress bar", line)
		}
	})

	t.Run("unbounded shows count and rate", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithRate(1, 0)
		p.Update(0, 12345)
		line := p.StatusLine()
		if !strings.Contains(line, "Tested: 12,345 candidates") {
			t.Errorf("StatusLine() = %q; want the cumulative count", line)
		}
	})
}

func TestFormatRate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rate     float64
		expected string
	}{
		{0, "measuring..."},
		{-1, "measuring..."},
		{850, "850/s"},
		{1500, "1.5k/s"},
		{2_500_000, "2.5M/s"},
	}

	for _, tt := range tests {
		if got := FormatRate(tt.rate); got != tt.expected {
			t.Errorf("FormatRate(%f) = %s; want %s", tt.rate, got, tt.expected)
		}
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta      time.Duration
		expected string
	}{
		{0, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{30 * time.Second, "30s"},
		{150 * time.Second, "2m30s"},
		{2 * time.Minute, "2m"},
		{75 * time.Minute, "1h15m"},
		{2 * time.Hour, "2h"},
	}

	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.expected {
			t.Errorf("FormatETA(%v) = %s; want %s", tt.eta, got, tt.expected)
		}
	}
}
