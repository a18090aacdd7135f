// Package cli provides interactive prompting for the search inputs.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/config"
)

// Prompter reads search inputs interactively, re-prompting until the user
// supplies a valid value. It is deliberately writer/reader based so tests can
// drive it with buffers.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
//
// Parameters:
//   - in: The input stream, typically os.Stdin.
//   - out: The prompt destination, typically os.Stdout.
//
// Returns:
//   - *Prompter: A new prompter instance.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next trimmed input line, or an error at end of input.
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// PromptTarget asks for the number to factor until a valid decimal integer
// of at least 2 is entered.
//
// Returns:
//   - string: The validated decimal representation.
//   - error: An error when the input stream ends before a valid entry.
func (p *Prompter) PromptTarget() (string, error) {
	for {
		fmt.Fprintf(p.out, "Number to factor: ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		n, err := bigmath.ParseDecimal(line)
		if err != nil {
			fmt.Fprintf(p.out, "%sPlease enter a decimal integer.%s\n", ColorYellow(), ColorReset())
			continue
		}
		if n.Cmp(bigmath.NewInt(2)) < 0 {
			fmt.Fprintf(p.out, "%sThe number must be at least 2.%s\n", ColorYellow(), ColorReset())
			continue
		}
		return line, nil
	}
}

// PromptNodeCount asks how many nodes share the search space. An empty entry
// selects the default of 1.
//
// Returns:
//   - int: The validated node count (>= 1).
//   - error: An error when the input stream ends before a valid entry.
func (p *Prompter) PromptNodeCount() (int, error) {
	for {
		fmt.Fprintf(p.out, "Number of nodes [1]: ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 1, nil
		}
		count, err := strconv.Atoi(line)
		if err != nil || count < 1 {
			fmt.Fprintf(p.out, "%sPlease enter a positive integer.%s\n", ColorYellow(), ColorReset())
			continue
		}
		return count, nil
	}
}

// PromptNodeID asks for this node's identifier within [0, nodeCount). An
// empty entry selects 0. With a single node the prompt is skipped entirely.
//
// Parameters:
//   - nodeCount: The number of cooperating nodes.
//
// Returns:
//   - int: The validated node identifier.
//   - error: An error when the input stream ends before a valid entry.
func (p *Prompter) PromptNodeID(nodeCount int) (int, error) {
	if nodeCount <= 1 {
		return 0, nil
	}
	for {
		fmt.Fprintf(p.out, "Node ID (0-%d) [0]: ", nodeCount-1)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, nil
		}
		id, err := strconv.Atoi(line)
		if err != nil || id < 0 || id >= nodeCount {
			fmt.Fprintf(p.out, "%sPlease enter an integer between 0 and %d.%s\n",
				ColorYellow(), nodeCount-1, ColorReset())
			continue
		}
		return id, nil
	}
}

// ApplyInteractive fills the missing search inputs of cfg by prompting. The
// target is always requested when absent; the node layout is requested only
// in interactive mode so scripted runs keep their flag values.
//
// Parameters:
//   - cfg: The configuration to complete in place.
//   - in: The input stream.
//   - out: The prompt destination.
//
// Returns:
//   - error: An error when the input stream ends before valid entries.
func ApplyInteractive(cfg *config.AppConfig, in io.Reader, out io.Writer) error {
	p := NewPrompter(in, out)

	if cfg.N == "" {
		target, err := p.PromptTarget()
		if err != nil {
			return err
		}
		cfg.N = target
	}

	if cfg.Interactive {
		count, err := p.PromptNodeCount()
		if err != nil {
			return err
		}
		cfg.NodeCount = count

		id, err := p.PromptNodeID(count)
		if err != nil {
			return err
		}
		cfg.NodeID = id
	}

	return nil
}
