package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// RecordMaintenanceEvent appends one step of a maintenance request's
// lifecycle to the unit's history. Maintenance state itself lives in an
// external system; only the audit trail is kept here.
func (s *Service) RecordMaintenanceEvent(ctx context.Context, input MaintenanceEventInput) (domain.HistoryEntry, error) {
	const op = "occupancy.RecordMaintenanceEvent"

	if err := input.Validate(); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)
	var entry domain.HistoryEntry

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unit, err := s.units.GetByID(ctx, input.UnitID)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}

		if input.ResidentID != nil {
			res, err := s.residents.GetByID(ctx, *input.ResidentID)
			if err != nil {
				return fmt.Errorf("get resident: %w", err)
			}
			if res.UnitID != unit.ID {
				return fmt.Errorf("resident belongs to another unit: %w", domain.ErrConflict)
			}
		}

		entry, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          unit.ID,
			ResidentID:      input.ResidentID,
			ActionType:      input.ActionType,
			Description:     input.Description,
			Metadata:        input.Metadata,
			ChangedByUserID: actor,
		})
		if err != nil {
			return fmt.Errorf("record history: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "maintenance event recorded",
		"unit_id", input.UnitID,
		"action", input.ActionType,
	)
	return entry, nil
}
