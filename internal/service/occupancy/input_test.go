package occupancy

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/domain"
)

func fieldErrors(t *testing.T, err error) []domain.FieldError {
	t.Helper()
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	return vErr.Errors
}

func TestMoveInInput_Validate(t *testing.T) {
	t.Parallel()

	valid := MoveInInput{
		UnitID:       uuid.New(),
		CPF:          "123.456.789-01",
		Name:         "Maria Silva",
		Relationship: domain.RelationshipTenant,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	// Every broken field must be reported, not just the first.
	broken := MoveInInput{CPF: "12", Relationship: "neighbor"}
	errs := fieldErrors(t, broken.Validate())
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}
}

func TestMoveInInput_Validate_CPFWithPunctuation(t *testing.T) {
	t.Parallel()

	input := MoveInInput{
		UnitID:       uuid.New(),
		CPF:          "529.982.247-25",
		Name:         "José",
		Relationship: domain.RelationshipOwner,
	}
	if err := input.Validate(); err != nil {
		t.Fatalf("punctuated CPF rejected: %v", err)
	}
}

func TestMoveOutInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (MoveOutInput{ResidentID: uuid.New(), MoveOutDate: time.Now()}).Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	errs := fieldErrors(t, MoveOutInput{}.Validate())
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(errs))
	}
}

func TestUpdateUnitInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   UpdateUnitInput
		wantErr bool
	}{
		{
			name:    "empty params",
			input:   UpdateUnitInput{UnitID: uuid.New()},
			wantErr: true,
		},
		{
			name: "blank number",
			input: UpdateUnitInput{
				UnitID: uuid.New(),
				Params: domain.UnitUpdateParams{Number: ptrString("  ")},
			},
			wantErr: true,
		},
		{
			name: "due day out of range",
			input: UpdateUnitInput{
				UnitID: uuid.New(),
				Params: domain.UnitUpdateParams{PaymentDueDay: ptrInt(0)},
			},
			wantErr: true,
		},
		{
			name: "valid partial",
			input: UpdateUnitInput{
				UnitID: uuid.New(),
				Params: domain.UnitUpdateParams{Bedrooms: ptrInt(3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMaintenanceEventInput_Validate(t *testing.T) {
	t.Parallel()

	valid := MaintenanceEventInput{
		UnitID:      uuid.New(),
		ActionType:  domain.ActionMaintenanceRequestApproved,
		Description: "Approved by the building manager",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	wrongAction := valid
	wrongAction.ActionType = domain.ActionFeeChanged
	if err := wrongAction.Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
