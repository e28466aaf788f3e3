package occupancy

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/domain"
)

// MoveInInput holds the parameters for moving a resident into a unit.
type MoveInInput struct {
	UnitID         uuid.UUID
	CPF            string
	Name           string
	RG             *string
	Email          *string
	Phone          *string
	BirthDate      *time.Time
	Relationship   domain.Relationship
	IsMainResident bool

	EmergencyContactName  *string
	EmergencyContactPhone *string

	MoveInDate *time.Time
	UserID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MoveInInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if err := domain.ValidateCPF(domain.NormalizeCPF(i.CPF)); err != nil {
		errs = append(errs, domain.FieldError{Field: "cpf", Message: "must be exactly 11 digits"})
	}
	if !i.Relationship.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship", Message: "unknown relationship"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveOutInput holds the parameters for moving a resident out.
type MoveOutInput struct {
	ResidentID  uuid.UUID
	MoveOutDate time.Time
}

// Validate checks all fields and collects all errors.
func (i MoveOutInput) Validate() error {
	var errs []domain.FieldError

	if i.ResidentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "resident_id", Message: "required"})
	}
	if i.MoveOutDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "move_out_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetMainResidentInput designates a unit's main resident.
type SetMainResidentInput struct {
	UnitID     uuid.UUID
	ResidentID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SetMainResidentInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if i.ResidentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "resident_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateResidentInput holds a partial update of a resident's profile.
type UpdateResidentInput struct {
	ResidentID uuid.UUID
	Params     domain.ResidentUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateResidentInput) Validate() error {
	var errs []domain.FieldError

	if i.ResidentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "resident_id", Message: "required"})
	}
	if i.Params.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Params.Name != nil && strings.TrimSpace(*i.Params.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Params.Relationship != nil && !i.Params.Relationship.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship", Message: "unknown relationship"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetUnitStatusInput changes a unit's occupancy status.
type SetUnitStatusInput struct {
	UnitID uuid.UUID
	Status domain.UnitStatus
}

// Validate checks all fields and collects all errors.
func (i SetUnitStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUnitInput holds a partial update of a unit.
type UpdateUnitInput struct {
	UnitID uuid.UUID
	Params domain.UnitUpdateParams
}

// Validate checks all fields and collects all errors.
// The billing invariant is checked against the merged state inside the
// transaction, since it depends on current values.
func (i UpdateUnitInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if i.Params.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Params.Number != nil && strings.TrimSpace(*i.Params.Number) == "" {
		errs = append(errs, domain.FieldError{Field: "number", Message: "required"})
	}
	if i.Params.UnitType != nil && !i.Params.UnitType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "unit_type", Message: "unknown unit type"})
	}
	if i.Params.ContractType != nil && !i.Params.ContractType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contract_type", Message: "unknown contract type"})
	}
	if i.Params.PaymentDueDay != nil && !domain.ValidDueDay(*i.Params.PaymentDueDay) {
		errs = append(errs, domain.FieldError{Field: "payment_due_day", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBillingInput holds a partial update of a unit's billing configuration.
type UpdateBillingInput struct {
	UnitID             uuid.UUID
	MonthlyAmount      *float64
	PaymentDueDay      *int
	AutoBillingEnabled *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateBillingInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if i.MonthlyAmount == nil && i.PaymentDueDay == nil && i.AutoBillingEnabled == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.PaymentDueDay != nil && !domain.ValidDueDay(*i.PaymentDueDay) {
		errs = append(errs, domain.FieldError{Field: "payment_due_day", Message: "must be between 1 and 31"})
	}
	if i.MonthlyAmount != nil && *i.MonthlyAmount < 0 {
		errs = append(errs, domain.FieldError{Field: "monthly_amount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MaintenanceEventInput records one step of a maintenance request's
// lifecycle in the unit's history.
type MaintenanceEventInput struct {
	UnitID      uuid.UUID
	ResidentID  *uuid.UUID
	ActionType  domain.ActionType
	Description string
	Metadata    domain.Changes
}

// Validate checks all fields and collects all errors.
func (i MaintenanceEventInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	switch i.ActionType {
	case domain.ActionMaintenanceRequestCreated, domain.ActionMaintenanceRequestApproved,
		domain.ActionMaintenanceRequestCompleted, domain.ActionMaintenanceRequestRejected:
	default:
		errs = append(errs, domain.FieldError{Field: "action_type", Message: "must be a maintenance action"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
