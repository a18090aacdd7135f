// Package cli provides search activity tracking with rate and ETA estimation.
package cli

import (
	"fmt"
	"time"
)

// ProgressState encapsulates the aggregated activity of concurrent workers.
// It maintains the individual cumulative candidate count of each worker and
// computes the total, which is essential for providing a consolidated
// activity view when multiple workers are drawing candidates in parallel.
type ProgressState struct {
	counts     []uint64
	numWorkers int
}

// NewProgressState creates and initializes a new ProgressState.
// It sets up the internal storage for tracking the activity of a specified
// number of workers.
//
// Parameters:
//   - numWorkers: The number of workers to track.
//
// Returns:
//   - *ProgressState: A pointer to the new progress state object.
func NewProgressState(numWorkers int) *ProgressState {
	return &ProgressState{
		counts:     make([]uint64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records a new cumulative candidate count for a specific worker.
// The method ensures that updates are only applied for valid worker indices.
//
// Parameters:
//   - index: The index of the worker (0 to numWorkers-1).
//   - candidates: The worker's cumulative evaluated-candidate count.
func (ps *ProgressState) Update(index int, candidates uint64) {
	if index >= 0 && index < len(ps.counts) {
		ps.counts[index] = candidates
	}
}

// Total returns the sum of candidate counts across all tracked workers.
// This is used to display a single, consolidated activity line to the user,
// representing the overall throughput of the search.
//
// Returns:
//   - uint64: The total number of evaluated candidates.
func (ps *ProgressState) Total() uint64 {
	var total uint64
	for _, c := range ps.counts {
		total += c
	}
	return total
}

// ProgressWithRate extends ProgressState with throughput estimation.
// It tracks activity samples and calculates a smoothed candidates-per-second
// rate; for bounded searches it additionally derives the estimated time
// remaining from the candidate budget.
type ProgressWithRate struct {
	*ProgressState
	budget     uint64 // total candidate budget, 0 if unbounded
	startTime  time.Time
	lastUpdate time.Time
	lastTotal  uint64
	rate       float64 // smoothed testing rate (candidates per second)
}

// NewProgressWithRate creates a new activity tracker with rate estimation.
//
// Parameters:
//   - numWorkers: The number of workers being tracked.
//   - budget: The total candidate budget across all workers, 0 if unbounded.
//
// Returns:
//   - *ProgressWithRate: A new activity tracker with rate support.
func NewProgressWithRate(numWorkers int, budget uint64) *ProgressWithRate {
	now := time.Now()
	return &ProgressWithRate{
		ProgressState: NewProgressState(numWorkers),
		budget:        budget,
		startTime:     now,
		lastUpdate:    now,
		lastTotal:     0,
		rate:          0,
	}
}

// UpdateWithRate records a worker sample and refreshes the smoothed rate.
// It uses exponential smoothing to provide stable estimates even with
// variable sample arrival.
//
// Parameters:
//   - index: The index of the worker (0 to numWorkers-1).
//   - candidates: The worker's cumulative evaluated-candidate count.
//
// Returns:
//   - total: The current total of evaluated candidates.
//   - rate: The smoothed testing rate in candidates per second.
func (p *ProgressWithRate) UpdateWithRate(index int, candidates uint64) (total uint64, rate float64) {
	p.Update(index, candidates)
	total = p.Total()

	now := time.Now()
	elapsed := now.Sub(p.startTime)

	// Need some elapsed time and activity to make meaningful estimates
	if elapsed < 100*time.Millisecond || total == 0 {
		p.lastUpdate = now
		p.lastTotal = total
		return total, p.rate
	}

	// Calculate instantaneous rate if enough time has passed
	timeSinceUpdate := now.Sub(p.lastUpdate).Seconds()
	if timeSinceUpdate > 0.05 { // At least 50ms between samples
		delta := total - p.lastTotal
		if delta > 0 {
			instantRate := float64(delta) / timeSinceUpdate

			// Exponential smoothing: 70% old rate, 30% new rate
			if p.rate > 0 {
				p.rate = 0.7*p.rate + 0.3*instantRate
			} else {
				// First meaningful rate calculation - use simple estimation
				p.rate = float64(total) / elapsed.Seconds()
			}
		}

		p.lastUpdate = now
		p.lastTotal = total
	}

	return total, p.rate
}

// Rate returns the current smoothed testing rate in candidates per second.
func (p *ProgressWithRate) Rate() float64 {
	return p.rate
}

// GetETA calculates the estimated time remaining for a bounded search.
// It returns 0 when the search is unbounded, the rate is not yet known, or
// the budget is already consumed.
//
// Returns:
//   - eta: The estimated time remaining based on the current testing rate.
func (p *ProgressWithRate) GetETA() time.Duration {
	if p.budget == 0 || p.rate <= 0 {
		return 0
	}
	total := p.Total()
	if total >= p.budget {
		return 0
	}

	remaining := float64(p.budget - total)
	etaSeconds := remaining / p.rate
	eta := time.Duration(etaSeconds * float64(time.Second))

	if eta > 24*time.Hour {
		eta = 24 * time.Hour
	}

	return eta
}

// StatusLine renders the current activity as a single display line.
// Bounded searches get a progress bar over the candidate budget with an ETA;
// unbounded searches get the cumulative count and the testing rate.
//
// Returns:
//   - string: The formatted activity line.
func (p *ProgressWithRate) StatusLine() string {
	total := p.Total()
	if p.budget > 0 {
		fraction := float64(total) / float64(p.budget)
		bar := progressBar(fraction, ProgressBarWidth)
		return fmt.Sprintf("Progress: %6.2f%% [%s] ETA: %s",
			fraction*100, bar, FormatETA(p.GetETA()))
	}
	return fmt.Sprintf("Tested: %s candidates (%s)",
		formatNumberString(fmt.Sprintf("%d", total)), FormatRate(p.rate))
}

// FormatRate formats a candidates-per-second rate for display.
//
// Parameters:
//   - rate: The testing rate in candidates per second.
//
// Returns:
//   - string: A formatted string like "measuring...", "850/s", "1.2M/s".
func FormatRate(rate float64) string {
	if rate <= 0 {
		return "measuring..."
	}
	switch {
	case rate >= 1e6:
		return fmt.Sprintf("%.1fM/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1fk/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f/s", rate)
	}
}

// FormatETA formats a duration into a human-readable ETA string.
// It adapts the format based on the magnitude of the duration.
//
// Parameters:
//   - eta: The duration to format.
//
// Returns:
//   - string: A formatted string like "< 1s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}

	if eta < time.Second {
		return "< 1s"
	}

	if eta < time.Minute {
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	}

	if eta < time.Hour {
		minutes := int(eta.Minutes())
		seconds := int(eta.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := int(eta.Hours())
	minutes := int(eta.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
