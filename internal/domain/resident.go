package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resident is a natural person associated with a unit.
// CPF is unique across the entire system, including deactivated residents:
// one person cannot be registered twice. Residents are deactivated on
// move-out, never hard-deleted, so history keeps a valid back-reference.
type Resident struct {
	ID           uuid.UUID
	UnitID       uuid.UUID
	CPF          string
	Name         string
	RG           *string
	Email        *string
	Phone        *string
	BirthDate    *time.Time
	Relationship Relationship

	IsMainResident bool

	EmergencyContactName  *string
	EmergencyContactPhone *string

	MoveInDate  *time.Time
	MoveOutDate *time.Time
	IsActive    bool

	UserID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResidentUpdateParams holds the partial-update fields for a resident.
// nil means "leave unchanged". Membership (UnitID), activity, and the
// main-resident flag are changed through dedicated operations, not here.
type ResidentUpdateParams struct {
	Name                  *string
	RG                    *string
	Email                 *string
	Phone                 *string
	BirthDate             *time.Time
	Relationship          *Relationship
	EmergencyContactName  *string
	EmergencyContactPhone *string
	UserID                *uuid.UUID
}

// IsEmpty returns true if no field is set.
func (p ResidentUpdateParams) IsEmpty() bool {
	return p == (ResidentUpdateParams{})
}

// NormalizeCPF strips the usual punctuation ("123.456.789-01") leaving
// only digits.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF checks that a normalized CPF is exactly 11 digits.
func ValidateCPF(cpf string) error {
	if len(cpf) != 11 {
		return NewValidationError("cpf", "must be exactly 11 digits")
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return NewValidationError("cpf", "must contain only digits")
		}
	}
	return nil
}
