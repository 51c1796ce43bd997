// Package report is the entry point callers use to obtain analytics. It
// loads a fresh ledger snapshot on every call, stamps it with the injected
// clock and hands it to the analyzer pipelines.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blackwell-systems/menuwise/internal/analyzer"
	"github.com/blackwell-systems/menuwise/internal/clock"
	"github.com/blackwell-systems/menuwise/internal/sales"
)

const (
	// DefaultTrendDays is the trend window the CLI asks for unless told otherwise.
	DefaultTrendDays = 30
	// DefaultForecastDays is the forecast horizon the CLI asks for unless told
	// otherwise.
	DefaultForecastDays = 7
)

// ErrInvalidPeriod is returned for negative day counts.
var ErrInvalidPeriod = errors.New("period must not be negative")

// Source hands out ledger snapshots. Failures must wrap
// sales.ErrDataUnavailable.
type Source interface {
	LoadLedger(ctx context.Context) (sales.Ledger, error)
}

// Service exposes the analytics operations over a Source.
type Service struct {
	src    Source
	clock  clock.Clock
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(src Source, clk clock.Clock, logger *zap.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, clock: clk, logger: logger}
}

// Now returns the reference instant reports are computed against.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

func (s *Service) load(ctx context.Context, op string) (sales.Ledger, error) {
	ledger, err := s.src.LoadLedger(ctx)
	if err != nil {
		if !errors.Is(err, sales.ErrDataUnavailable) {
			err = fmt.Errorf("%w: %w", sales.ErrDataUnavailable, err)
		}
		s.logger.Error("failed to load ledger", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("loaded ledger", zap.String("op", op), zap.Int("records", len(ledger)))
	return ledger, nil
}

func (s *Service) noteSkipped(op string, skipped int) {
	if skipped > 0 {
		s.logger.Warn("skipped malformed records", zap.String("op", op), zap.Int("skipped", skipped))
	}
}

func checkPeriod(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPeriod, days)
	}
	return nil
}

// SalesTrends returns daily totals over the last periodDays days. A zero
// period covers today only.
func (s *Service) SalesTrends(ctx context.Context, periodDays int) (analyzer.TrendResult, error) {
	if err := checkPeriod(periodDays); err != nil {
		return analyzer.TrendResult{}, err
	}
	ledger, err := s.load(ctx, "trends")
	if err != nil {
		return analyzer.TrendResult{}, err
	}
	res := analyzer.SalesTrend(ledger, s.clock.Now(), periodDays)
	s.noteSkipped("trends", res.Skipped)
	return res, nil
}

// MenuPerformance ranks menu items by profitability.
func (s *Service) MenuPerformance(ctx context.Context) (analyzer.PerformanceResult, error) {
	ledger, err := s.load(ctx, "menu")
	if err != nil {
		return analyzer.PerformanceResult{}, err
	}
	res := analyzer.MenuPerformance(ledger)
	s.noteSkipped("menu", res.Skipped)
	return res, nil
}

// DailyPatterns returns per-weekday means, Monday first.
func (s *Service) DailyPatterns(ctx context.Context) (analyzer.PatternResult, error) {
	ledger, err := s.load(ctx, "patterns")
	if err != nil {
		return analyzer.PatternResult{}, err
	}
	res := analyzer.DailyPatterns(ledger)
	s.noteSkipped("patterns", res.Skipped)
	return res, nil
}

// ForecastDemand projects total demand for the next days days. A zero
// horizon yields no rows.
func (s *Service) ForecastDemand(ctx context.Context, days int) (analyzer.ForecastResult, error) {
	if err := checkPeriod(days); err != nil {
		return analyzer.ForecastResult{}, err
	}
	ledger, err := s.load(ctx, "forecast")
	if err != nil {
		return analyzer.ForecastResult{}, err
	}
	res := analyzer.ForecastDemand(ledger, s.clock.Now(), days)
	s.noteSkipped("forecast", res.Skipped)
	return res, nil
}

// WasteAnalysis ranks menu items by waste cost.
func (s *Service) WasteAnalysis(ctx context.Context) (analyzer.WasteResult, error) {
	ledger, err := s.load(ctx, "waste")
	if err != nil {
		return analyzer.WasteResult{}, err
	}
	res := analyzer.WasteAnalysis(ledger)
	s.noteSkipped("waste", res.Skipped)
	return res, nil
}

// Recommendations evaluates the rule engine over a fresh snapshot.
func (s *Service) Recommendations(ctx context.Context) (analyzer.RecommendationResult, error) {
	ledger, err := s.load(ctx, "recommend")
	if err != nil {
		return analyzer.RecommendationResult{}, err
	}
	res := analyzer.GenerateRecommendations(ledger)
	s.noteSkipped("recommend", res.Skipped)
	return res, nil
}

// Summary returns headline figures for [from, to]. A zero bound is open.
func (s *Service) Summary(ctx context.Context, from, to time.Time) (analyzer.Summary, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return analyzer.Summary{}, fmt.Errorf("%w: --to %s is before --from %s",
			ErrInvalidPeriod, to.Format(sales.DateLayout), from.Format(sales.DateLayout))
	}
	ledger, err := s.load(ctx, "summary")
	if err != nil {
		return analyzer.Summary{}, err
	}
	res := analyzer.Summarize(ledger, from, to)
	s.noteSkipped("summary", res.Skipped)
	return res, nil
}
