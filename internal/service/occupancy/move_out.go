package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/condoview/condoview-backend/internal/domain"
)

// MoveOutResident deactivates a resident. If they were the last active
// resident on the unit, the unit flips back to vacant with its own
// status_changed entry in the same transaction.
func (s *Service) MoveOutResident(ctx context.Context, input MoveOutInput) error {
	const op = "occupancy.MoveOutResident"

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res, err := s.residents.GetByID(ctx, input.ResidentID)
		if err != nil {
			return fmt.Errorf("get resident: %w", err)
		}
		if !res.IsActive {
			return fmt.Errorf("resident already moved out: %w", domain.ErrConflict)
		}

		unit, err := s.units.GetByIDForUpdate(ctx, res.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		if err := s.residents.Deactivate(ctx, res.ID, input.MoveOutDate); err != nil {
			return fmt.Errorf("deactivate resident: %w", err)
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:      unit.ID,
			ResidentID:  &res.ID,
			ActionType:  domain.ActionResidentRemoved,
			Description: fmt.Sprintf("Resident %s moved out of unit %s", res.Name, unit.Number),
			OldValues: domain.Changes{
				"name":             res.Name,
				"cpf":              res.CPF,
				"relationship":     res.Relationship,
				"is_main_resident": res.IsMainResident,
				"is_active":        true,
			},
			NewValues: domain.Changes{
				"is_active":     false,
				"move_out_date": input.MoveOutDate.Format(time.DateOnly),
			},
			ChangedByUserID: actor,
		})
		if err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		remaining, err := s.residents.CountActiveByUnit(ctx, unit.ID)
		if err != nil {
			return fmt.Errorf("count active residents: %w", err)
		}

		if remaining == 0 && unit.Status != domain.UnitStatusVacant {
			if err := s.units.SetStatus(ctx, unit.ID, domain.UnitStatusVacant); err != nil {
				return fmt.Errorf("set unit status: %w", err)
			}
			_, err = s.history.Create(ctx, domain.HistoryEntry{
				UnitID:          unit.ID,
				ActionType:      domain.ActionStatusChanged,
				Description:     fmt.Sprintf("Unit %s status changed from %s to vacant", unit.Number, unit.Status),
				OldValues:       domain.Changes{"status": unit.Status},
				NewValues:       domain.Changes{"status": domain.UnitStatusVacant},
				ChangedByUserID: actor,
			})
			if err != nil {
				return fmt.Errorf("record status history: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "resident moved out", "resident_id", input.ResidentID)
	return nil
}
