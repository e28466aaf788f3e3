// Package occupancy implements the occupancy coordinator: the only
// component allowed to mutate units, residents, and billing configuration.
// Every mutation runs in a single transaction with the matching history
// entries, so a partial failure leaves no visible state change.
package occupancy

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/config"
	"github.com/condoview/condoview-backend/internal/domain"
	"github.com/condoview/condoview-backend/pkg/ctxutil"
)

type unitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Unit, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Unit, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UnitUpdateParams) (domain.Unit, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error
	ListAutoBilling(ctx context.Context) ([]domain.Unit, error)
}

type residentRepo interface {
	Create(ctx context.Context, res domain.Resident) (domain.Resident, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Resident, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ResidentUpdateParams) (domain.Resident, error)
	SetMainResident(ctx context.Context, unitID, residentID uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID, moveOutDate time.Time) error
	ListByUnit(ctx context.Context, unitID uuid.UUID, activeOnly bool) ([]domain.Resident, error)
	CountActiveByUnit(ctx context.Context, unitID uuid.UUID) (int, error)
}

type historyRepo interface {
	Create(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	ListByUnit(ctx context.Context, unitID uuid.UUID, filter history.Filter) ([]domain.HistoryEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides occupancy coordination operations.
type Service struct {
	units     unitRepo
	residents residentRepo
	history   historyRepo
	tx        txManager
	cfg       config.OccupancyConfig
	log       *slog.Logger
}

// NewService creates a new occupancy Service.
func NewService(
	log *slog.Logger,
	units unitRepo,
	residents residentRepo,
	hist historyRepo,
	tx txManager,
	cfg config.OccupancyConfig,
) *Service {
	return &Service{
		units:     units,
		residents: residents,
		history:   hist,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "occupancy"),
	}
}

// actorPtr returns the acting user's ID from the context, or nil for
// system-initiated changes.
func actorPtr(ctx context.Context) *uuid.UUID {
	if id, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}
