package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/factorcalc/internal/errors"
	"github.com/agbru/factorcalc/internal/factor"
	"github.com/agbru/factorcalc/internal/service"
)

// fastSearchArgs returns flags that keep the search on small targets quick
// and reproducible.
func fastSearchArgs(extra ...string) []string {
	args := []string{"factorcalc-test",
		"-workers", "2",
		"-batch-size", "256",
		"-seed", "1",
		"-trial-division", "7",
		"-timeout", "60s",
		"-quiet",
	}
	return append(args, extra...)
}

func TestNew(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		var errBuf bytes.Buffer
		a, err := New([]string{"factorcalc", "-n", "3233"}, &errBuf)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if a.Config.N != "3233" {
			t.Errorf("Config.N = %q; want %q", a.Config.N, "3233")
		}
		if a.Factory == nil {
			t.Error("Factory is nil")
		}
	})

	t.Run("invalid strategy", func(t *testing.T) {
		var errBuf bytes.Buffer
		if _, err := New([]string{"factorcalc", "-algo", "nope"}, &errBuf); err == nil {
			t.Error("expected an error for an unknown strategy")
		}
	})
}

func TestRunPrimesMode(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New([]string{"factorcalc", "-primes-up-to", "30"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d; want %d", code, apperrors.ExitSuccess)
	}
	want := "2 3 5 7 11 13 17 19 23 29\n"
	if out.String() != want {
		t.Errorf("primes output = %q; want %q", out.String(), want)
	}
}

func TestRunSemiprimeSearch(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New(fastSearchArgs("-n", "3233"), &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d; want %d (stderr: %s)", code, apperrors.ExitSuccess, errBuf.String())
	}
	if !strings.Contains(out.String(), "53 61") {
		t.Errorf("output = %q; want the factor pair 53 61", out.String())
	}
}

func TestRunInteractiveTarget(t *testing.T) {
	var out, errBuf bytes.Buffer
	a, err := New(fastSearchArgs(), &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	a.InReader = strings.NewReader("3233\n")

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d; want %d (stderr: %s)", code, apperrors.ExitSuccess, errBuf.String())
	}
	if !strings.Contains(out.String(), "53 61") {
		t.Errorf("output = %q; want the factor pair 53 61", out.String())
	}
}

func TestRunExhaustedBudget(t *testing.T) {
	var out, errBuf bytes.Buffer
	args := fastSearchArgs("-n", "104729", "-algo", "general",
		"-batch-size", "128", "-max-attempts", "512")
	a, err := New(args, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorNoFactor {
		t.Fatalf("Run returned %d; want %d", code, apperrors.ExitErrorNoFactor)
	}
}

func TestHandleSearchError(t *testing.T) {
	a := &Application{ErrWriter: &bytes.Buffer{}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exhausted budget", factor.ErrRangeExhausted, apperrors.ExitErrorNoFactor},
		{"target too small", service.ErrTargetTooSmall, apperrors.ExitErrorConfig},
		{"bit cap exceeded", service.ErrMaxBitsExceeded, apperrors.ExitErrorConfig},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a.Config.Quiet = true
			if got := a.handleSearchError(tt.err, time.Second, &out); got != tt.want {
				t.Errorf("handleSearchError(%v) = %d; want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsHelpError(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	_, err := New([]string{"factorcalc", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false; want true", err)
	}
	if IsHelpError(nil) {
		t.Error("IsHelpError(nil) = true; want false")
	}
}
