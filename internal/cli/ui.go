// The cli package provides functions for building a command-line interface
// (CLI) for the factor-search application. It handles the asynchronous
// display of search activity and formats the results for a clear and
// readable presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/agbru/factorcalc/internal/factor"
	"github.com/agbru/factorcalc/internal/ui"
	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// ProgressRefreshRate defines the refresh frequency of the activity
	// display. Optimized to 200ms to reduce updates and improve performance.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar
	// shown for bounded searches.
	ProgressBarWidth = 40
	// ProgressChannelDepth is the buffer size of the activity channel feeding
	// the display goroutine. Workers never block on a slow terminal; updates
	// that do not fit are dropped.
	ProgressChannelDepth = 256
)

// Color functions return ANSI escape codes from the current theme.
// They delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return ui.GetCurrentTheme().Primary }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code from the current theme.
func ColorUnderline() string { return ui.GetCurrentTheme().Underline }

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the DisplayProgress function to be decoupled from a specific
// spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressUpdate carries one worker activity sample from the search engine to
// the display goroutine.
type ProgressUpdate struct {
	// Worker is the worker goroutine identifier.
	Worker int
	// Candidates is that worker's cumulative evaluated-candidate count.
	Candidates uint64
}

// ChannelObserver adapts a factor.ProgressObserver to a channel feeding the
// display goroutine. Sends are non-blocking; when the display cannot keep up,
// samples are dropped rather than stalling the workers.
type ChannelObserver struct {
	ch chan ProgressUpdate
}

// Compile-time check that ChannelObserver satisfies the observer interface.
var _ factor.ProgressObserver = (*ChannelObserver)(nil)

// NewChannelObserver creates an observer with a buffered activity channel.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan ProgressUpdate, ProgressChannelDepth)}
}

// Update implements factor.ProgressObserver.
func (c *ChannelObserver) Update(workerIndex int, candidates uint64) {
	select {
	case c.ch <- ProgressUpdate{Worker: workerIndex, Candidates: candidates}:
	default:
	}
}

// Updates returns the receive side of the activity channel.
func (c *ChannelObserver) Updates() <-chan ProgressUpdate {
	return c.ch
}

// Close closes the activity channel, signaling the display goroutine to
// finish. Call it only after the search has returned.
func (c *ChannelObserver) Close() {
	close(c.ch)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress manages the asynchronous display of a spinner and the
// search activity line. It is designed to run in a dedicated goroutine and
// orchestrates the UI updates for the duration of the search.
//
// For bounded searches (budget > 0) it renders a progress bar over the total
// candidate budget together with an ETA. For unbounded searches it renders
// the cumulative candidate count and the smoothed testing rate.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - progressChan: The channel receiving worker activity samples.
//   - numWorkers: The number of workers contributing samples.
//   - budget: The total candidate budget across all workers, 0 if unbounded.
//   - out: The io.Writer to which the activity line is rendered.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numWorkers int, budget uint64, out io.Writer) {
	defer wg.Done()
	if numWorkers <= 0 {
		for range progressChan { // Drain the channel
		}
		return
	}

	state := NewProgressWithRate(numWorkers, budget)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				// Stop the spinner first to free the line
				if !spinnerStopped {
					s.Stop()
					spinnerStopped = true
				}

				// Print a final, persistent activity line.
				fmt.Fprintf(out, "Tested %s candidates.\n",
					formatNumberString(fmt.Sprintf("%d", state.Total())))
				return
			}
			state.UpdateWithRate(update.Worker, update.Candidates)
		case <-ticker.C:
			s.UpdateSuffix(" " + state.StatusLine())
		}
	}
}
