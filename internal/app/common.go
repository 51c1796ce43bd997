package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/menuwise/internal/clock"
	"github.com/blackwell-systems/menuwise/internal/config"
	"github.com/blackwell-systems/menuwise/internal/logger"
	"github.com/blackwell-systems/menuwise/internal/report"
	"github.com/blackwell-systems/menuwise/internal/sales"
	"github.com/blackwell-systems/menuwise/internal/store"
)

// env bundles what a command needs once configuration is resolved.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	clock  clock.Clock
	svc    *report.Service
	dbPath string
}

// setup loads configuration, opens the database and wires the reporting
// service. Callers must Close the returned env.
func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	clk, err := clockFromFlag(nowFlag)
	if err != nil {
		return nil, err
	}

	path, err := getDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	if err := seedCatalog(ctx, st, cfg.Catalog); err != nil {
		st.Close()
		return nil, err
	}

	log.Debug("opened database", zap.String("path", path))

	return &env{
		cfg:    cfg,
		log:    log,
		store:  st,
		clock:  clk,
		svc:    report.NewService(st, clk, logger.Named(log, "report")),
		dbPath: path,
	}, nil
}

// Close releases the database and flushes the logger.
func (e *env) Close() {
	e.store.Close()
	_ = e.log.Sync()
}

// seedCatalog fills an empty catalog from configuration. An existing catalog
// is never touched so edits made with 'menuwise catalog' survive.
func seedCatalog(ctx context.Context, st *store.Store, items []config.CatalogConfig) error {
	existing, err := st.ListMenuItems(ctx, true)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, it := range items {
		price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
		if err != nil {
			return fmt.Errorf("catalog item %s: invalid price %q: %w", it.Name, it.Price, err)
		}
		err = st.UpsertMenuItem(ctx, store.MenuItem{
			Name:     strings.TrimSpace(it.Name),
			Category: it.Category,
			Price:    price,
			Active:   true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// clockFromFlag returns the system clock, or a fixed clock when --now is set.
func clockFromFlag(value string) (clock.Clock, error) {
	if value == "" {
		return clock.System{}, nil
	}
	t, err := sales.ParseDay(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --now: %w", err)
	}
	return clock.NewFake(t), nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag; empty yields zero time.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := sales.ParseDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}

// friendlyError rewrites store errors into something actionable.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, store.ErrUnknownMenuItem):
		return fmt.Errorf("%w (run 'menuwise catalog list' to see the menu)", err)
	case errors.Is(err, sales.ErrDataUnavailable):
		return fmt.Errorf("cannot read sales data: %w", err)
	}
	return err
}

// withEnv adapts a command body that needs an env into a cobra RunE.
func withEnv(run func(cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
			cmd.SetContext(ctx)
		}
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.Close()
		return friendlyError(run(cmd, e, args))
	}
}
