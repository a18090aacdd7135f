package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/cli"
	"github.com/agbru/factorcalc/internal/config"
	apperrors "github.com/agbru/factorcalc/internal/errors"
	"github.com/agbru/factorcalc/internal/factor"
	"github.com/agbru/factorcalc/internal/logging"
	"github.com/agbru/factorcalc/internal/primes"
	"github.com/agbru/factorcalc/internal/service"
	"github.com/agbru/factorcalc/internal/ui"
)

// Application represents the factorcalc application instance.
// It encapsulates the configuration and provides methods to run the
// application in its various modes (search, prime listing, interactive).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides access to the search strategy implementations.
	// Uses the interface type for better testability and dependency injection.
	Factory factor.FactorizerFactory
	// InReader is the input stream for interactive prompts (typically os.Stdin).
	InReader io.Reader
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := factor.GlobalFactory()
	availableAlgos := factory.List()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "factorcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		InReader:  os.Stdin,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the prime-listing mode or the factor search, completing
// missing inputs interactively first.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects -no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Prime-listing mode
	if a.Config.PrimesUpTo > 0 {
		return a.runPrimes(out)
	}

	// Complete missing inputs from the terminal
	if a.Config.N == "" || a.Config.Interactive {
		in := a.InReader
		if in == nil {
			in = os.Stdin
		}
		if err := cli.ApplyInteractive(&a.Config, in, out); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error reading input: %v\n", err)
			return apperrors.ExitErrorConfig
		}
	}

	return a.runSearch(ctx, out)
}

// runPrimes generates and prints the primes up to the configured bound.
func (a *Application) runPrimes(out io.Writer) int {
	cli.PrintPrimes(out, primes.Generate(a.Config.PrimesUpTo))
	return apperrors.ExitSuccess
}

// runSearch orchestrates the execution of the factor search.
func (a *Application) runSearch(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	log := logging.NewDefaultLogger(a.Config.Verbose)

	n, err := bigmath.ParseDecimal(a.Config.N)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %q is not a decimal integer.\n", a.Config.N)
		return apperrors.ExitErrorConfig
	}
	bits := bigmath.BitWidth(n)

	strategy, err := a.Factory.Get(a.Config.Algo)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Skip verbose output in quiet and JSON modes
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, bits, out)
		cli.PrintExecutionMode(strategy.Name(), out)
	}

	log.Debug("starting search",
		logging.String("backend", bigmath.BackendName),
		logging.String("cpu", bigmath.GetCPUFeatures().String()),
		logging.Uint64("bits", uint64(bits)))

	// Wire the activity display between the workers and the terminal
	subject := factor.NewProgressSubject()
	observer := cli.NewChannelObserver()
	subject.Register(observer)

	progressOut := io.Writer(out)
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	workers := a.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var budget uint64
	if a.Config.Algo != "semiprime" {
		budget = a.Config.MaxAttempts * uint64(workers)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, observer.Updates(), workers, budget, progressOut)

	svc := service.NewFactorService(a.Factory, a.Config, 0)

	start := time.Now()
	result, searchErr := svc.Factor(ctx, a.Config.Algo, a.Config.N, subject)
	duration := time.Since(start)

	observer.Close()
	wg.Wait()

	if searchErr != nil {
		return a.handleSearchError(searchErr, duration, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		HexOutput:  a.Config.HexOutput,
		JSONOutput: a.Config.JSONOutput,
		Quiet:      a.Config.Quiet,
	}
	if err := cli.DisplayResultWithConfig(out, result, duration, a.Config.Algo, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// handleSearchError maps a failed search onto an exit code and a message.
func (a *Application) handleSearchError(err error, duration time.Duration, out io.Writer) int {
	switch {
	case errors.Is(err, factor.ErrRangeExhausted):
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%sNo factor found within the attempt budget (%s).%s\n",
				cli.ColorYellow(), cli.FormatExecutionDuration(duration), cli.ColorReset())
			fmt.Fprintf(out, "Increase -max-attempts or retry with a different -seed.\n")
		}
		return apperrors.ExitErrorNoFactor
	case errors.Is(err, service.ErrTargetTooSmall),
		errors.Is(err, service.ErrMaxBitsExceeded):
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	default:
		return apperrors.HandleSearchError(err, duration, a.ErrWriter, cli.CLIColorProvider{})
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
