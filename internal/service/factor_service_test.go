package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/config"
	"github.com/agbru/factorcalc/internal/factor"
)

func newTestService(fz factor.Factorizer, maxBits uint) *FactorService {
	factory := factor.NewTestFactory(map[string]factor.Factorizer{"mock": fz})
	return NewFactorService(factory, config.AppConfig{NodeCount: 1}, maxBits)
}

func TestNewFactorService(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{}, 1024)
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
	if svc.factory == nil {
		t.Error("factory should not be nil")
	}
	if svc.maxBits != 1024 {
		t.Errorf("maxBits = %d, want 1024", svc.maxBits)
	}
}

func TestFactorServiceSuccess(t *testing.T) {
	want := &factor.Result{F1: bigmath.NewInt(53), F2: bigmath.NewInt(61)}
	svc := newTestService(&factor.MockFactorizer{Result: want}, 0)

	got, err := svc.Factor(context.Background(), "mock", "3233", nil)
	if err != nil {
		t.Fatalf("Factor: %v", err)
	}
	if got.F1.Cmp(want.F1) != 0 || got.F2.Cmp(want.F2) != 0 {
		t.Errorf("got (%s, %s), want (53, 61)", got.F1.String(), got.F2.String())
	}
}

func TestFactorServiceRejectsMalformedTarget(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{}, 0)

	for _, target := range []string{"", "abc", "12x3", "3.14"} {
		if _, err := svc.Factor(context.Background(), "mock", target, nil); err == nil {
			t.Errorf("target %q should be rejected", target)
		}
	}
}

func TestFactorServiceRejectsSmallTargets(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{}, 0)

	for _, target := range []string{"0", "1"} {
		if _, err := svc.Factor(context.Background(), "mock", target, nil); !errors.Is(err, ErrTargetTooSmall) {
			t.Errorf("target %q: err = %v, want ErrTargetTooSmall", target, err)
		}
	}
}

func TestFactorServiceEnforcesMaxBits(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{}, 8)

	// 9-bit target against an 8-bit cap.
	if _, err := svc.Factor(context.Background(), "mock", "257", nil); !errors.Is(err, ErrMaxBitsExceeded) {
		t.Errorf("err = %v, want ErrMaxBitsExceeded", err)
	}

	// At the cap is allowed.
	svcOK := newTestService(&factor.MockFactorizer{
		Result: &factor.Result{F1: bigmath.NewInt(5), F2: bigmath.NewInt(51)},
	}, 8)
	if _, err := svcOK.Factor(context.Background(), "mock", "255", nil); err != nil {
		t.Errorf("8-bit target should pass: %v", err)
	}
}

func TestFactorServiceUnknownStrategy(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{}, 0)
	if _, err := svc.Factor(context.Background(), "absent", "3233", nil); err == nil {
		t.Error("unknown strategy should fail")
	}
}

func TestFactorServicePropagatesSearchErrors(t *testing.T) {
	svc := newTestService(&factor.MockFactorizer{Err: factor.ErrRangeExhausted}, 0)
	if _, err := svc.Factor(context.Background(), "mock", "104729", nil); !errors.Is(err, factor.ErrRangeExhausted) {
		t.Errorf("err = %v, want ErrRangeExhausted", err)
	}
}
