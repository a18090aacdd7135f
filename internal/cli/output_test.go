package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/factor"
	"github.com/agbru/factorcalc/internal/ui"
)

func testResult() *factor.Result {
	return &factor.Result{F1: bigmath.NewInt(53), F2: bigmath.NewInt(61)}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hex      bool
		expected string
	}{
		{"decimal", false, "53 61"},
		{"hexadecimal", true, "0x35 0x3d"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatQuietResult(testResult(), tt.hex); got != tt.expected {
				t.Errorf("FormatQuietResult(hex=%v) = %q; want %q", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, testResult(), false)
	if got := buf.String(); got != "53 61\n" {
		t.Errorf("DisplayQuietResult wrote %q; want %q", got, "53 61\n")
	}
}

func TestDisplayJSONResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := DisplayJSONResult(&buf, testResult(), "semiprime", 42*time.Millisecond); err != nil {
		t.Fatalf("DisplayJSONResult returned error: %v", err)
	}

	var got jsonResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := jsonResult{N: "3233", F1: "53", F2: "61", Algorithm: "semiprime", Duration: "42ms"}
	if got != want {
		t.Errorf("JSON result = %+v; want %+v", got, want)
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()

	t.Run("writes decimal identity with header", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out", "result.txt")
		cfg := OutputConfig{OutputFile: path}
		if err := WriteResultToFile(testResult(), time.Second, "semiprime", cfg); err != nil {
			t.Fatalf("WriteResultToFile returned error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result file: %v", err)
		}
		content := string(data)
		for _, want := range []string{"# Factor Search Result", "# Strategy: semiprime", "53 * 61 = 3233"} {
			if !strings.Contains(content, want) {
				t.Errorf("result file missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("hex output", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "result.txt")
		cfg := OutputConfig{OutputFile: path, HexOutput: true}
		if err := WriteResultToFile(testResult(), time.Second, "semiprime", cfg); err != nil {
			t.Fatalf("WriteResultToFile returned error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result file: %v", err)
		}
		if !strings.Contains(string(data), "0x35 * 0x3d = 0xca1") {
			t.Errorf("result file missing hex identity:\n%s", string(data))
		}
	})

	t.Run("no-op without a path", func(t *testing.T) {
		t.Parallel()
		if err := WriteResultToFile(testResult(), time.Second, "semiprime", OutputConfig{}); err != nil {
			t.Errorf("WriteResultToFile without a path returned error: %v", err)
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	ui.InitTheme(true)

	t.Run("standard mode", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultWithConfig(&buf, testResult(), time.Second, "semiprime", OutputConfig{})
		if err != nil {
			t.Fatalf("DisplayResultWithConfig returned error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Factors found", "53 * 61 = 3,233", "Search time"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("quiet mode", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultWithConfig(&buf, testResult(), time.Second, "semiprime", OutputConfig{Quiet: true})
		if err != nil {
			t.Fatalf("DisplayResultWithConfig returned error: %v", err)
		}
		if got := buf.String(); got != "53 61\n" {
			t.Errorf("quiet output = %q; want %q", got, "53 61\n")
		}
	})

	t.Run("json mode wins over quiet", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := OutputConfig{JSONOutput: true, Quiet: true}
		err := DisplayResultWithConfig(&buf, testResult(), time.Second, "semiprime", cfg)
		if err != nil {
			t.Fatalf("DisplayResultWithConfig returned error: %v", err)
		}
		var got jsonResult
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
		}
	})

	t.Run("hex section", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultWithConfig(&buf, testResult(), time.Second, "semiprime", OutputConfig{HexOutput: true})
		if err != nil {
			t.Fatalf("DisplayResultWithConfig returned error: %v", err)
		}
		if !strings.Contains(buf.String(), "0x35 * 0x3d") {
			t.Errorf("output missing hex section:\n%s", buf.String())
		}
	})

	t.Run("file save confirmation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")
		var buf bytes.Buffer
		cfg := OutputConfig{OutputFile: path}
		err := DisplayResultWithConfig(&buf, testResult(), time.Second, "semiprime", cfg)
		if err != nil {
			t.Fatalf("DisplayResultWithConfig returned error: %v", err)
		}
		if !strings.Contains(buf.String(), "Result saved to") {
			t.Errorf("output missing save confirmation:\n%s", buf.String())
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("result file was not written: %v", err)
		}
	})
}

func TestPrintPrimes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintPrimes(&buf, []uint64{2, 3, 5, 7, 11})
	if got := buf.String(); got != "2 3 5 7 11\n" {
		t.Errorf("PrintPrimes wrote %q; want %q", got, "2 3 5 7 11\n")
	}

	buf.Reset()
	PrintPrimes(&buf, nil)
	if got := buf.String(); got != "\n" {
		t.Errorf("PrintPrimes with no primes wrote %q; want a bare newline", got)
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"5", "5"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"-1234567", "-1,234,567"},
	}

	for _, tt := range tests {
		tt := tt
		if got := formatNumberString(tt.in); got != tt.expected {
			t.Errorf("formatNumberString(%q) = %q; want %q", tt.in, got, tt.expected)
		}
	}
}
