package occupancy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/domain"
)

// MoveInResident registers a new resident on a unit. The resident row,
// the resident_added history entry, and the optional vacant->occupied
// status flip with its own status_changed entry all commit together.
func (s *Service) MoveInResident(ctx context.Context, input MoveInInput) (domain.Resident, error) {
	const op = "occupancy.MoveInResident"

	if err := input.Validate(); err != nil {
		return domain.Resident{}, fmt.Errorf("%s: %w", op, err)
	}

	actor := actorPtr(ctx)
	var created domain.Resident

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unit, err := s.units.GetByIDForUpdate(ctx, input.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		if s.cfg.MaxResidentsPerUnit > 0 {
			active, err := s.residents.CountActiveByUnit(ctx, unit.ID)
			if err != nil {
				return fmt.Errorf("count active residents: %w", err)
			}
			if active >= s.cfg.MaxResidentsPerUnit {
				return fmt.Errorf("unit has reached the resident limit (%d): %w",
					s.cfg.MaxResidentsPerUnit, domain.ErrConflict)
			}
		}

		res := domain.Resident{
			ID:                    uuid.New(),
			UnitID:                unit.ID,
			CPF:                   domain.NormalizeCPF(input.CPF),
			Name:                  input.Name,
			RG:                    input.RG,
			Email:                 input.Email,
			Phone:                 input.Phone,
			BirthDate:             input.BirthDate,
			Relationship:          input.Relationship,
			IsMainResident:        false,
			EmergencyContactName:  input.EmergencyContactName,
			EmergencyContactPhone: input.EmergencyContactPhone,
			MoveInDate:            input.MoveInDate,
			IsActive:              true,
			UserID:                input.UserID,
		}

		created, err = s.residents.Create(ctx, res)
		if err != nil {
			return fmt.Errorf("create resident: %w", err)
		}

		if input.IsMainResident {
			if err := s.residents.SetMainResident(ctx, unit.ID, created.ID); err != nil {
				return fmt.Errorf("set main resident: %w", err)
			}
			created.IsMainResident = true
		}

		_, err = s.history.Create(ctx, domain.HistoryEntry{
			UnitID:          unit.ID,
			ResidentID:      &created.ID,
			ActionType:      domain.ActionResidentAdded,
			Description:     fmt.Sprintf("Resident %s moved into unit %s", created.Name, unit.Number),
			NewValues:       residentSnapshot(created),
			ChangedByUserID: actor,
		})
		if err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		if unit.Status == domain.UnitStatusVacant {
			if err := s.units.SetStatus(ctx, unit.ID, domain.UnitStatusOccupied); err != nil {
				return fmt.Errorf("set unit status: %w", err)
			}
			_, err = s.history.Create(ctx, domain.HistoryEntry{
				UnitID:          unit.ID,
				ActionType:      domain.ActionStatusChanged,
				Description:     fmt.Sprintf("Unit %s status changed from vacant to occupied", unit.Number),
				OldValues:       domain.Changes{"status": domain.UnitStatusVacant},
				NewValues:       domain.Changes{"status": domain.UnitStatusOccupied},
				ChangedByUserID: actor,
			})
			if err != nil {
				return fmt.Errorf("record status history: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.Resident{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "resident moved in",
		"unit_id", input.UnitID,
		"resident_id", created.ID,
		"main", created.IsMainResident,
	)
	return created, nil
}
