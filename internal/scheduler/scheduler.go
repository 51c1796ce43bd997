// Package scheduler runs the recommendation digest on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/blackwell-systems/menuwise/internal/analyzer"
	"github.com/blackwell-systems/menuwise/internal/config"
)

// digestTimeout bounds a single digest run.
const digestTimeout = 2 * time.Minute

// Reporter is the subset of the reporting service the digest needs.
type Reporter interface {
	Recommendations(ctx context.Context) (analyzer.RecommendationResult, error)
	ForecastDemand(ctx context.Context, days int) (analyzer.ForecastResult, error)
}

// Digest is the output of one scheduled run.
type Digest struct {
	GeneratedAt     time.Time
	Recommendations analyzer.RecommendationResult
	Forecast        analyzer.ForecastResult
}

// Sink receives each digest. Returning an error only logs it.
type Sink func(Digest) error

// Scheduler manages the digest cron job.
type Scheduler struct {
	cron         *cron.Cron
	reporter     Reporter
	sink         Sink
	forecastDays int
	logger       *zap.Logger
	now          func() time.Time
}

// New parses the schedule and timezone in cfg and registers the digest job.
// A nil sink logs digests instead.
func New(cfg config.DigestConfig, reporter Reporter, sink Sink, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid digest timezone %q: %w", cfg.Timezone, err)
	}

	days := cfg.ForecastDays
	if days <= 0 {
		days = 7
	}

	s := &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reporter:     reporter,
		sink:         sink,
		forecastDays: days,
		logger:       logger,
		now:          time.Now,
	}
	if s.sink == nil {
		s.sink = s.logDigest
	}

	// Standard five-field cron expressions plus descriptors like @daily.
	if _, err := s.cron.AddFunc(cfg.Schedule, s.runScheduled); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start starts the scheduler in the background.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.Time("next_run", s.Next()))
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Next returns the next scheduled run, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(s.now())
}

func (s *Scheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("failed to generate digest", zap.Error(err))
	}
}

// RunOnce builds a digest immediately and hands it to the sink.
func (s *Scheduler) RunOnce(ctx context.Context) (Digest, error) {
	s.logger.Info("generating digest")

	recs, err := s.reporter.Recommendations(ctx)
	if err != nil {
		return Digest{}, fmt.Errorf("failed to compute recommendations: %w", err)
	}
	forecast, err := s.reporter.ForecastDemand(ctx, s.forecastDays)
	if err != nil {
		return Digest{}, fmt.Errorf("failed to compute forecast: %w", err)
	}

	d := Digest{
		GeneratedAt:     s.now(),
		Recommendations: recs,
		Forecast:        forecast,
	}

	if err := s.sink(d); err != nil {
		s.logger.Error("failed to deliver digest", zap.Error(err))
	}
	return d, nil
}

func (s *Scheduler) logDigest(d Digest) error {
	for _, r := range d.Recommendations.Items {
		s.logger.Info("recommendation",
			zap.String("severity", string(r.Severity)),
			zap.String("message", r.Message),
			zap.String("action", r.Action))
	}
	demand := 0
	if len(d.Forecast.Days) > 0 {
		demand = d.Forecast.Days[0].Demand
	}
	s.logger.Info("digest complete",
		zap.Int("recommendations", len(d.Recommendations.Items)),
		zap.Int("forecast_daily_demand", demand),
		zap.Int("forecast_days", len(d.Forecast.Days)))
	return nil
}
