package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// UpdateUnit applies a partial update to a unit and records the
// field-level diff. The billing invariant is validated against the
// merged state before anything is written. The history action type is
// derived from which fields actually changed.
func (s *Service) UpdateUnit(ctx context.Context, input UpdateUnitInput) (domain.Unit, error) {
	const op = "occupancy.UpdateUnit"

	if err := input.Validate(); err != nil {
		return domain.Unit{}, fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)
	var updated domain.Unit

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.units.GetByIDForUpdate(ctx, input.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		if err := validateMergedBilling(before, input.Params); err != nil {
			return err
		}

		updated, err = s.units.Update(ctx, before.ID, input.Params)
		if err != nil {
			return fmt.Errorf("update unit: %w", err)
		}

		oldVals, newVals := unitDiff(before, updated)
		if len(newVals) == 0 {
			return nil
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          before.ID,
			ActionType:      classifyUnitChange(newVals),
			Description:     fmt.Sprintf("Unit %s updated", updated.Number),
			OldValues:       oldVals,
			NewValues:       newVals,
			ChangedByUserID: actor,
		})
		if err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Unit{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "unit updated", "unit_id", input.UnitID)
	return updated, nil
}

// validateMergedBilling checks the billing invariant on the state the
// unit would have after applying params.
func validateMergedBilling(current domain.Unit, params domain.UnitUpdateParams) error {
	amount := current.MonthlyAmount
	if params.MonthlyAmount != nil {
		amount = params.MonthlyAmount
	}
	dueDay := current.PaymentDueDay
	if params.PaymentDueDay != nil {
		dueDay = params.PaymentDueDay
	}
	enabled := current.AutoBillingEnabled
	if params.AutoBillingEnabled != nil {
		enabled = *params.AutoBillingEnabled
	}
	return domain.ValidateBillingConfig(amount, dueDay, enabled)
}
