// Package cli provides output utilities for presenting and exporting search
// results.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/factor"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// HexOutput displays the factors in hexadecimal format.
	HexOutput bool
	// JSONOutput renders the result as a single JSON object.
	JSONOutput bool
	// Quiet mode suppresses verbose output.
	Quiet bool
}

// DisplayResult formats and prints a successful factorization.
// It shows the factor identity, the binary sizes of both factors, and the
// search duration.
//
// Parameters:
//   - result: The factor pair found by the search.
//   - duration: The time taken by the search.
//   - out: The io.Writer for the output.
func DisplayResult(result *factor.Result, duration time.Duration, out io.Writer) {
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}

	fmt.Fprintf(out, "\n%s--- Factors found ---%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(out, "%s%s%s * %s%s%s = %s%s%s\n",
		ColorGreen(), formatNumberString(result.F1.String()), ColorReset(),
		ColorGreen(), formatNumberString(result.F2.String()), ColorReset(),
		ColorCyan(), formatNumberString(result.Product().String()), ColorReset())
	fmt.Fprintf(out, "Factor sizes          : %s%d%s and %s%d%s bits\n",
		ColorCyan(), bigmath.BitWidth(result.F1), ColorReset(),
		ColorCyan(), bigmath.BitWidth(result.F2), ColorReset())
	fmt.Fprintf(out, "Search time           : %s%s%s\n",
		ColorGreen(), durationStr, ColorReset())
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line "f1 f2" pair suitable for scripting.
//
// Parameters:
//   - result: The factor pair found by the search.
//   - hexOutput: Whether to format the factors as hexadecimal.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(result *factor.Result, hexOutput bool) string {
	if hexOutput {
		return fmt.Sprintf("0x%x 0x%x", result.F1, result.F2)
	}
	return fmt.Sprintf("%s %s", result.F1.String(), result.F2.String())
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - result: The factor pair found by the search.
//   - hexOutput: Whether to format the factors as hexadecimal.
func DisplayQuietResult(out io.Writer, result *factor.Result, hexOutput bool) {
	fmt.Fprintln(out, FormatQuietResult(result, hexOutput))
}

// jsonResult is the wire shape of a JSON-rendered factorization.
type jsonResult struct {
	N         string `json:"n"`
	F1        string `json:"f1"`
	F2        string `json:"f2"`
	Algorithm string `json:"algorithm"`
	Duration  string `json:"duration"`
}

// DisplayJSONResult renders a successful factorization as one JSON object.
//
// Parameters:
//   - out: The output writer.
//   - result: The factor pair found by the search.
//   - algo: The strategy name used.
//   - duration: The search duration.
//
// Returns:
//   - error: An error if encoding fails.
func DisplayJSONResult(out io.Writer, result *factor.Result, algo string, duration time.Duration) error {
	enc := json.NewEncoder(out)
	return enc.Encode(jsonResult{
		N:         result.Product().String(),
		F1:        result.F1.String(),
		F2:        result.F2.String(),
		Algorithm: algo,
		Duration:  duration.String(),
	})
}

// WriteResultToFile writes a factorization result to a file.
//
// Parameters:
//   - result: The factor pair found by the search.
//   - duration: The search duration.
//   - algo: The strategy name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *factor.Result, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	product := result.Product()

	// Write header
	fmt.Fprintf(file, "# Factor Search Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N bits: %d\n", bigmath.BitWidth(product))
	fmt.Fprintf(file, "\n")

	// Write result
	if config.HexOutput {
		fmt.Fprintf(file, "0x%x * 0x%x = 0x%x\n", result.F1, result.F2, product)
	} else {
		fmt.Fprintf(file, "%s * %s = %s\n", result.F1.String(), result.F2.String(), product.String())
	}

	return nil
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The factor pair found by the search.
//   - duration: The search duration.
//   - algo: The strategy name.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if JSON encoding or file output fails.
func DisplayResultWithConfig(out io.Writer, result *factor.Result, duration time.Duration, algo string, config OutputConfig) error {
	switch {
	case config.JSONOutput:
		if err := DisplayJSONResult(out, result, algo, duration); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietResult(out, result, config.HexOutput)
	default:
		DisplayResult(result, duration, out)

		// Show hex format if requested
		if config.HexOutput {
			fmt.Fprintf(out, "\n%sHexadecimal format:%s\n", ColorBold(), ColorReset())
			fmt.Fprintf(out, "%s0x%x * 0x%x%s\n", ColorGreen(), result.F1, result.F2, ColorReset())
		}
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSONOutput {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), config.OutputFile, ColorReset())
		}
	}

	return nil
}

// PrintPrimes writes a space-separated list of primes followed by a newline.
// It is the output path of the prime-listing mode.
//
// Parameters:
//   - out: The output writer.
//   - primes: The primes to print, in ascending order.
func PrintPrimes(out io.Writer, primes []uint64) {
	var builder strings.Builder
	for i, p := range primes {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%d", p)
	}
	builder.WriteByte('\n')
	io.WriteString(out, builder.String())
}

// formatNumberString inserts thousand separators into a numeric string.
// Optimized to reduce memory allocations
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	// Precise calculation of the required capacity to avoid reallocations
	numSeparators := (n - 1) / 3
	capacity := len(prefix) + n + numSeparators
	var builder strings.Builder
	builder.Grow(capacity)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
