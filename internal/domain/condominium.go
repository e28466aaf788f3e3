package domain

import (
	"time"

	"github.com/google/uuid"
)

// Condominium is a managed property containing multiple units.
type Condominium struct {
	ID        uuid.UUID
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	CNPJ      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
