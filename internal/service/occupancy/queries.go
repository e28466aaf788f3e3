package occupancy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/domain"
)

// GetUnit returns a unit by ID.
func (s *Service) GetUnit(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	unit, err := s.units.GetByID(ctx, id)
	if err != nil {
		return domain.Unit{}, fmt.Errorf("occupancy.GetUnit: %w", err)
	}
	return unit, nil
}

// GetResident returns a resident by ID, active or not.
func (s *Service) GetResident(ctx context.Context, id uuid.UUID) (domain.Resident, error) {
	res, err := s.residents.GetByID(ctx, id)
	if err != nil {
		return domain.Resident{}, fmt.Errorf("occupancy.GetResident: %w", err)
	}
	return res, nil
}

// ListResidents returns the residents of a unit, optionally only the
// active ones.
func (s *Service) ListResidents(ctx context.Context, unitID uuid.UUID, activeOnly bool) ([]domain.Resident, error) {
	residents, err := s.residents.ListByUnit(ctx, unitID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("occupancy.ListResidents: %w", err)
	}
	return residents, nil
}

// ListHistory returns a unit's audit trail in chronological order,
// narrowed by the given filter. The page size is clamped to the
// configured maximum.
func (s *Service) ListHistory(ctx context.Context, unitID uuid.UUID, filter history.Filter) ([]domain.HistoryEntry, error) {
	if max := s.cfg.HistoryPageSize; max > 0 && (filter.Limit <= 0 || filter.Limit > max) {
		filter.Limit = max
	}
	entries, err := s.history.ListByUnit(ctx, unitID, filter)
	if err != nil {
		return nil, fmt.Errorf("occupancy.ListHistory: %w", err)
	}
	return entries, nil
}
