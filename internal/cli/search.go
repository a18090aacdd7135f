package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/factorcalc/internal/config"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the size of the target number, the timeout, the node layout,
// and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - bits: The bit width of the number to factor.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, bits uint, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Factoring a %s%d%s-bit number with a timeout of %s%s%s.\n",
		ColorMagenta(), bits, ColorReset(), ColorYellow(), cfg.Timeout, ColorReset())
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	writeOut(out, "Node %s%d%s of %s%d%s, %s%d%s workers per node.\n",
		ColorCyan(), cfg.NodeID, ColorReset(),
		ColorCyan(), cfg.NodeCount, ColorReset(),
		ColorCyan(), workers, ColorReset())
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
}

// PrintExecutionMode displays the selected search strategy.
//
// Parameters:
//   - strategyName: The human-readable name of the strategy that will run.
//   - out: The writer for standard output.
func PrintExecutionMode(strategyName string, out io.Writer) {
	writeOut(out, "Search strategy: %s%s%s.\n", ColorGreen(), strategyName, ColorReset())
	writeOut(out, "\n--- Starting Search ---\n")
}

// writeOut writes a formatted string to the output writer.
//
// Parameters:
//   - out: The destination writer.
//   - format: The format string (see fmt.Printf).
//   - a: Arguments for the format string.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
