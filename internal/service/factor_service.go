package service

//go:generate mockgen -source=factor_service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"

	"github.com/agbru/factorcalc/internal/bigmath"
	"github.com/agbru/factorcalc/internal/config"
	"github.com/agbru/factorcalc/internal/factor"
)

var (
	// ErrMaxBitsExceeded is returned when the target exceeds the configured
	// maximum bit width.
	ErrMaxBitsExceeded = errors.New("maximum target bit width exceeded")

	// ErrTargetTooSmall is returned for targets below 2, which have no
	// nontrivial factorization.
	ErrTargetTooSmall = errors.New("target must be at least 2")
)

// Service defines the interface for factor-search services.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Factor parses and validates the decimal target, then runs the named
	// search strategy against it.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - algoName: The name of the strategy to use.
	//   - target: The number to factor, in decimal.
	//   - subject: Optional observer subject for worker activity updates.
	//
	// Returns:
	//   - *factor.Result: The factor pair.
	//   - error: An error if validation or the search fails.
	Factor(ctx context.Context, algoName, target string, subject *factor.ProgressSubject) (*factor.Result, error)
}

// FactorService handles the core logic for running factor searches.
// It centralizes input validation, strategy retrieval, and search options.
// Implements the Service interface.
type FactorService struct {
	factory factor.FactorizerFactory
	config  config.AppConfig
	maxBits uint
}

// Ensure FactorService implements Service interface.
var _ Service = (*FactorService)(nil)

// NewFactorService creates a new instance of FactorService.
//
// Parameters:
//   - factory: The factory to retrieve search strategies from.
//   - cfg: The application configuration.
//   - maxBits: The maximum allowed target bit width (0 for no limit).
func NewFactorService(factory factor.FactorizerFactory, cfg config.AppConfig, maxBits uint) *FactorService {
	return &FactorService{
		factory: factory,
		config:  cfg,
		maxBits: maxBits,
	}
}

// Factor validates the target, retrieves the requested strategy, and executes
// the search with the configured options.
func (s *FactorService) Factor(ctx context.Context, algoName, target string, subject *factor.ProgressSubject) (*factor.Result, error) {
	n, err := bigmath.ParseDecimal(target)
	if err != nil {
		return nil, err
	}
	if n.Cmp(bigmath.NewInt(2)) < 0 {
		return nil, ErrTargetTooSmall
	}
	if s.maxBits > 0 && bigmath.BitWidth(n) > s.maxBits {
		return nil, ErrMaxBitsExceeded
	}

	fz, err := s.factory.Get(algoName)
	if err != nil {
		return nil, err
	}

	return fz.Factor(ctx, subject, n, s.config.ToSearchOptions())
}
