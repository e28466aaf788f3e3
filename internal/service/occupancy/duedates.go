package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/domain"
)

// DueDate pairs an auto-billed unit with its next payment due date.
type DueDate struct {
	UnitID        uuid.UUID
	UnitNumber    string
	CondominiumID uuid.UUID
	MonthlyAmount float64
	DueDay        int
	NextDueDate   time.Time
}

// UpcomingDueDates computes the next payment due date for every unit
// with auto-billing enabled, relative to ref. Units whose billing
// configuration is incomplete are skipped.
func (s *Service) UpcomingDueDates(ctx context.Context, ref time.Time) ([]DueDate, error) {
	const op = "occupancy.UpcomingDueDates"

	units, err := s.units.ListAutoBilling(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dues := make([]DueDate, 0, len(units))
	for _, u := range units {
		if u.MonthlyAmount == nil || u.PaymentDueDay == nil {
			s.log.WarnContext(ctx, "auto-billed unit with incomplete billing config",
				"unit_id", u.ID)
			continue
		}
		dues = append(dues, DueDate{
			UnitID:        u.ID,
			UnitNumber:    u.Number,
			CondominiumID: u.CondominiumID,
			MonthlyAmount: *u.MonthlyAmount,
			DueDay:        *u.PaymentDueDay,
			NextDueDate:   domain.NextDueDate(*u.PaymentDueDay, ref),
		})
	}
	return dues, nil
}
