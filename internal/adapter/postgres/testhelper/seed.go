package testhelper

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoview/condoview-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCPF returns a random 11-digit CPF unique enough for test runs.
func UniqueCPF() string {
	return fmt.Sprintf("%011d", rand.Int63n(100_000_000_000))
}

// SeedUser creates an account row (owned by the external auth layer in
// production). Returns the user ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		id, "testuser-"+suffix+"@example.com", "Test User "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedCondominium creates a condominium. Returns the filled record.
func SeedCondominium(t *testing.T, pool *pgxpool.Pool) domain.Condominium {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	condo := domain.Condominium{
		ID:        uuid.New(),
		Name:      "Residencial " + suffix,
		Address:   "Rua das Flores " + suffix,
		City:      "São Paulo",
		State:     "SP",
		ZipCode:   "01000-000",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO condominiums (id, name, address, city, state, zip_code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		condo.ID, condo.Name, condo.Address, condo.City, condo.State, condo.ZipCode,
		condo.CreatedAt, condo.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCondominium: %v", err)
	}
	return condo
}

// SeedUnit creates a vacant apartment unit under a fresh condominium.
// Returns the filled record.
func SeedUnit(t *testing.T, pool *pgxpool.Pool) domain.Unit {
	t.Helper()
	condo := SeedCondominium(t, pool)
	return SeedUnitIn(t, pool, condo.ID)
}

// SeedUnitIn creates a vacant apartment unit under the given condominium.
func SeedUnitIn(t *testing.T, pool *pgxpool.Pool, condominiumID uuid.UUID) domain.Unit {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.Unit{
		ID:             uuid.New(),
		CondominiumID:  condominiumID,
		Number:         "U-" + suffix,
		UnitType:       domain.UnitTypeApartment,
		Bedrooms:       2,
		Bathrooms:      1,
		Status:         domain.UnitStatusVacant,
		CondominiumFee: 450,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO units (id, condominium_id, number, unit_type, bedrooms, bathrooms,
		                    status, condominium_fee, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.CondominiumID, u.Number, u.UnitType, u.Bedrooms, u.Bathrooms,
		u.Status, u.CondominiumFee, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUnitIn: %v", err)
	}
	return u
}

// SeedResident creates an active resident on the given unit.
func SeedResident(t *testing.T, pool *pgxpool.Pool, unitID uuid.UUID) domain.Resident {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	res := domain.Resident{
		ID:           uuid.New(),
		UnitID:       unitID,
		CPF:          UniqueCPF(),
		Name:         "Resident " + suffix,
		Relationship: domain.RelationshipTenant,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO residents (id, unit_id, cpf, name, relationship, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID, res.UnitID, res.CPF, res.Name, res.Relationship, res.IsActive,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResident: %v", err)
	}
	return res
}
