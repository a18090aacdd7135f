// Package config provides the configuration management for the factorcalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/factorcalc/internal/errors"
	"github.com/agbru/factorcalc/internal/factor"
)

const (
	// EnvPrefix is the prefix for all environment variables used by
	// factorcalc. Environment variables provide an alternative to CLI flags
	// for configuration, following the 12-Factor App methodology.
	EnvPrefix = "FACTORCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default search timeout.
	DefaultTimeout = 10 * time.Minute
	// DefaultAlgo is the default search strategy.
	DefaultAlgo = "semiprime"
	// DefaultNodeCount is the default number of cooperating nodes.
	DefaultNodeCount = 1
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the number to factor to the distribution of the search
// across nodes and workers.
type AppConfig struct {
	// N is the decimal representation of the number to factor.
	// An empty value triggers an interactive prompt.
	N string
	// Algo specifies the search strategy ("semiprime", "general", "period").
	Algo string
	// NodeCount is the number of cooperating nodes sharing the search space.
	NodeCount int
	// NodeID identifies this node within [0, NodeCount).
	NodeID int
	// Workers is the number of worker goroutines; 0 means one per CPU.
	Workers int
	// BatchSize is the number of candidates a worker tests between
	// termination-flag polls.
	BatchSize int
	// TrialDivisionLevel overrides the automatic wheel sizing when nonzero.
	TrialDivisionLevel uint64
	// Seed makes candidate draws reproducible when nonzero.
	Seed int64
	// MaxAttempts bounds each worker's candidate budget on bounded
	// strategies.
	MaxAttempts uint64
	// Timeout sets the maximum duration for the search.
	Timeout time.Duration
	// PrimesUpTo, when nonzero, switches the application to prime-listing
	// mode: print all primes up to the given bound and exit.
	PrimesUpTo uint64
	// Verbose, if true, enables debug-level logging.
	Verbose bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// HexOutput, if true, displays the factors in hexadecimal format.
	HexOutput bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Interactive, if true, prompts for the number and the node layout
	// instead of failing on missing flags.
	Interactive bool
}

// ToSearchOptions converts the application configuration into factor.Options
// for use by the search strategies.
func (c AppConfig) ToSearchOptions() factor.Options {
	return factor.Options{
		NodeCount:          c.NodeCount,
		NodeID:             c.NodeID,
		Workers:            c.Workers,
		BatchSize:          c.BatchSize,
		TrialDivisionLevel: c.TrialDivisionLevel,
		Seed:               c.Seed,
		MaxAttempts:        c.MaxAttempts,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen strategy is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid strategy names
//     (e.g., ["semiprime", "general", "period"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.NodeCount < 1 {
		return apperrors.NewConfigError("node count must be at least 1: %d", c.NodeCount)
	}
	if c.NodeID < 0 || c.NodeID >= c.NodeCount {
		return apperrors.NewConfigError("node id %d outside [0, %d)", c.NodeID, c.NodeCount)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if c.BatchSize < 1 {
		return apperrors.NewConfigError("batch size must be at least 1: %d", c.BatchSize)
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized strategy: '%s'. Valid strategies are: [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it performs validation on
// the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableAlgos: A slice of valid strategy names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Search strategy: one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.N, "n", "", "Number to factor, in decimal. Prompts when omitted.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&config.NodeCount, "nodes", DefaultNodeCount, "Number of cooperating nodes sharing the search space.")
	fs.IntVar(&config.NodeID, "node-id", 0, "This node's index within the node count.")
	fs.IntVar(&config.Workers, "workers", 0, "Worker goroutines to spawn (0 = one per CPU).")
	fs.IntVar(&config.BatchSize, "batch-size", factor.DefaultBatchSize, "Candidates tested per worker between termination checks.")
	fs.Uint64Var(&config.TrialDivisionLevel, "trial-division", 0, "Wheel prime ceiling override (0 = automatic).")
	fs.Int64Var(&config.Seed, "seed", 0, "Random seed for reproducible runs (0 = system entropy).")
	fs.Uint64Var(&config.MaxAttempts, "max-attempts", factor.DefaultMaxAttempts, "Per-worker candidate budget for bounded strategies.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the search.")
	fs.Uint64Var(&config.PrimesUpTo, "primes-up-to", 0, "List all primes up to the bound and exit (0 = disabled).")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug-level logging.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.HexOutput, "hex", false, "Display factors in hexadecimal format.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Prompt for missing inputs instead of failing.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
