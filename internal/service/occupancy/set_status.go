package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// SetUnitStatus changes a unit's occupancy status. Setting the status a
// unit already has is a no-op and writes no history.
func (s *Service) SetUnitStatus(ctx context.Context, input SetUnitStatusInput) error {
	const op = "occupancy.SetUnitStatus"

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unit, err := s.units.GetByIDForUpdate(ctx, input.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}
		if unit.Status == input.Status {
			return nil
		}

		if err := s.units.SetStatus(ctx, unit.ID, input.Status); err != nil {
			return fmt.Errorf("set unit status: %w", err)
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          unit.ID,
			ActionType:      domain.ActionStatusChanged,
			Description:     fmt.Sprintf("Unit %s status changed from %s to %s", unit.Number, unit.Status, input.Status),
			OldValues:       domain.Changes{"status": unit.Status},
			NewValues:       domain.Changes{"status": input.Status},
			ChangedByUserID: actor,
		})
		if err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "unit status set", "unit_id", input.UnitID, "status", input.Status)
	return nil
}
