// Package app wires configuration, logging, storage, and services together
// and owns the process lifecycle.
package app

import (
	"context"
	"log/slog"

	"github.com/condoview/condoview-backend/internal/adapter/postgres"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/condominium"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/resident"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/unit"
	"github.com/condoview/condoview-backend/internal/config"
	"github.com/condoview/condoview-backend/internal/service/occupancy"
)

// Deps holds the wired application components for use by a transport
// layer or an operational command.
type Deps struct {
	Config       *config.Config
	Logger       *slog.Logger
	Occupancy    *occupancy.Service
	Condominiums *condominium.Repo
}

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, wires the occupancy service, and
// blocks until the context is cancelled.
func Run(ctx context.Context) error {
	deps, cleanup, err := Setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	deps.Logger.Info("application started",
		slog.String("version", BuildVersion()),
		slog.String("log_level", deps.Config.Log.Level),
	)

	<-ctx.Done()
	deps.Logger.Info("shutting down")
	return nil
}

// Setup builds the full dependency graph. The returned cleanup closes
// the database pool and must be called when the application stops.
func Setup(ctx context.Context) (*Deps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	txManager := postgres.NewTxManager(pool)
	unitRepo := unit.New(pool)
	residentRepo := resident.New(pool)
	historyRepo := history.New(pool)
	condoRepo := condominium.New(pool)

	svc := occupancy.NewService(logger, unitRepo, residentRepo, historyRepo, txManager, cfg.Occupancy)

	deps := &Deps{
		Config:       cfg,
		Logger:       logger,
		Occupancy:    svc,
		Condominiums: condoRepo,
	}
	return deps, pool.Close, nil
}
