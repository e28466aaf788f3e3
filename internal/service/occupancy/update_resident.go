package occupancy

import (
	"context"
	"fmt"

	"github.com/condoview/condoview-backend/internal/domain"
)

// UpdateResident applies a partial update to a resident's profile and
// records the field-level diff. A relationship change to or from tenant
// is recorded as tenant_changed, everything else as resident_updated.
func (s *Service) UpdateResident(ctx context.Context, input UpdateResidentInput) (domain.Resident, error) {
	const op = "occupancy.UpdateResident"

	if err := input.Validate(); err != nil {
		return domain.Resident{}, fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)
	var updated domain.Resident

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.residents.GetByID(ctx, input.ResidentID)
		if err != nil {
			return fmt.Errorf("get resident: %w", err)
		}

		if _, err := s.units.GetByIDForUpdate(ctx, before.UnitID); err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		updated, err = s.residents.Update(ctx, before.ID, input.Params)
		if err != nil {
			return fmt.Errorf("update resident: %w", err)
		}

		oldVals, newVals := residentDiff(before, updated)
		if len(newVals) == 0 {
			return nil
		}

		action := domain.ActionResidentUpdated
		if input.Params.Relationship != nil &&
			(before.Relationship == domain.RelationshipTenant || updated.Relationship == domain.RelationshipTenant) &&
			before.Relationship != updated.Relationship {
			action = domain.ActionTenantChanged
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          before.UnitID,
			ResidentID:      &before.ID,
			ActionType:      action,
			Description:     fmt.Sprintf("Resident %s updated", updated.Name),
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
		return domain.Resident{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "resident updated", "resident_id", input.ResidentID)
	return updated, nil
}
