package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// UpdateBillingConfig changes a unit's billing configuration and records
// a fee_changed entry with the old and new billing fields.
func (s *Service) UpdateBillingConfig(ctx context.Context, input UpdateBillingInput) (domain.Unit, error) {
	const op = "occupancy.UpdateBillingConfig"

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

		params := domain.UnitUpdateParams{
			MonthlyAmount:      input.MonthlyAmount,
			PaymentDueDay:      input.PaymentDueDay,
			AutoBillingEnabled: input.AutoBillingEnabled,
		}
		if err := validateMergedBilling(before, params); err != nil {
			return err
		}

		updated, err = s.units.Update(ctx, before.ID, params)
		if err != nil {
			return fmt.Errorf("update billing: %w", err)
		}

		oldVals, newVals := unitDiff(before, updated)
		if len(newVals) == 0 {
			return nil
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          before.ID,
			ActionType:      domain.ActionFeeChanged,
			Description:     fmt.Sprintf("Billing configuration of unit %s changed", updated.Number),
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

	s.log.InfoContext(ctx, "billing config updated", "unit_id", input.UnitID)
	return updated, nil
}
