package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// SetMainResident designates the unit's single main resident, demoting
// any previous holder of the flag in the same transaction.
func (s *Service) SetMainResident(ctx context.Context, input SetMainResidentInput) error {
	const op = "occupancy.SetMainResident"

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unit, err := s.units.GetByIDForUpdate(ctx, input.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		res, err := s.residents.GetByID(ctx, input.ResidentID)
		if err != nil {
			return fmt.Errorf("get resident: %w", err)
		}
		if res.UnitID != unit.ID {
			return fmt.Errorf("resident belongs to another unit: %w", domain.ErrConflict)
		}
		if !res.IsActive {
			return fmt.Errorf("resident is not active: %w", domain.ErrConflict)
		}
		if res.IsMainResident {
			return nil
		}

		if err := s.residents.SetMainResident(ctx, unit.ID, res.ID); err != nil {
			return fmt.Errorf("set main resident: %w", err)
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          unit.ID,
			ResidentID:      &res.ID,
			ActionType:      domain.ActionResidentUpdated,
			Description:     fmt.Sprintf("Resident %s designated as main resident of unit %s", res.Name, unit.Number),
			OldValues:       domain.Changes{"is_main_resident": false},
			NewValues:       domain.Changes{"is_main_resident": true},
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

	s.log.InfoContext(ctx, "main resident set",
		"unit_id", input.UnitID,
		"resident_id", input.ResidentID,
	)
	return nil
}
