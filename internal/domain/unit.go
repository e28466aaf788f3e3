package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a single rentable/ownable space within a condominium.
// ResidentUserID optionally links the unit to an authenticated account;
// the link is managed by the external account layer and is never cleared
// automatically by occupancy operations.
type Unit struct {
	ID            uuid.UUID
	CondominiumID uuid.UUID
	Number        string
	Block         *string
	Floor         *int
	UnitType      UnitType
	Bedrooms      int
	Bathrooms     int
	Area          *float64
	Status        UnitStatus

	CondominiumFee float64
	OwnerName      *string
	OwnerEmail     *string
	OwnerPhone     *string
	ResidentUserID *uuid.UUID

	// Billing configuration. AutoBillingEnabled requires both
	// MonthlyAmount and PaymentDueDay to be set.
	MonthlyAmount      *float64
	PaymentDueDay      *int
	AutoBillingEnabled bool

	// Contract terms.
	ContractStartDate  *time.Time
	ContractEndDate    *time.Time
	ContractType       *ContractType
	DepositAmount      *float64
	GuarantorName      *string
	GuarantorCPF       *string
	GuarantorPhone     *string
	AutoRenewal        bool
	ParkingSpots       int
	Furnished          bool
	PetAllowed         bool
	Balcony            bool
	LastRenovationDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitUpdateParams holds the partial-update fields for a unit.
// nil means "leave unchanged".
type UnitUpdateParams struct {
	Number         *string
	Block          *string
	Floor          *int
	UnitType       *UnitType
	Bedrooms       *int
	Bathrooms      *int
	Area           *float64
	CondominiumFee *float64
	OwnerName      *string
	OwnerEmail     *string
	OwnerPhone     *string
	ResidentUserID *uuid.UUID

	MonthlyAmount      *float64
	PaymentDueDay      *int
	AutoBillingEnabled *bool

	ContractStartDate  *time.Time
	ContractEndDate    *time.Time
	ContractType       *ContractType
	DepositAmount      *float64
	GuarantorName      *string
	GuarantorCPF       *string
	GuarantorPhone     *string
	AutoRenewal        *bool
	ParkingSpots       *int
	Furnished          *bool
	PetAllowed         *bool
	Balcony            *bool
	LastRenovationDate *time.Time
}

// IsEmpty returns true if no field is set.
func (p UnitUpdateParams) IsEmpty() bool {
	return p == (UnitUpdateParams{})
}

// ValidDueDay reports whether d is a calendar day usable as a payment due day.
func ValidDueDay(d int) bool {
	return d >= 1 && d <= 31
}

// ValidateBillingConfig checks the billing invariant on the merged state of
// a unit: payment_due_day in [1,31] when present, and auto-billing enabled
// only with both monthly_amount and payment_due_day set.
func ValidateBillingConfig(monthlyAmount *float64, paymentDueDay *int, autoBillingEnabled bool) error {
	var errs []FieldError

	if paymentDueDay != nil && !ValidDueDay(*paymentDueDay) {
		errs = append(errs, FieldError{Field: "payment_due_day", Message: "must be between 1 and 31"})
	}
	if monthlyAmount != nil && *monthlyAmount < 0 {
		errs = append(errs, FieldError{Field: "monthly_amount", Message: "must not be negative"})
	}
	if autoBillingEnabled {
		if monthlyAmount == nil {
			errs = append(errs, FieldError{Field: "monthly_amount", Message: "required when auto billing is enabled"})
		}
		if paymentDueDay == nil {
			errs = append(errs, FieldError{Field: "payment_due_day", Message: "required when auto billing is enabled"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
