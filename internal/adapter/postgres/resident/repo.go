// Package resident implements the Resident Record Store using PostgreSQL.
// Residents are never hard-deleted; move-out deactivates the row so that
// unit history keeps a valid back-reference.
package resident

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/condoview/condoview-backend/internal/adapter/postgres"
	"github.com/condoview/condoview-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides resident persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new resident repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const residentColumns = `id, unit_id, cpf, name, rg, email, phone, birth_date, relationship,
	is_main_resident, emergency_contact_name, emergency_contact_phone,
	move_in_date, move_out_date, is_active, user_id, created_at, updated_at`

const createResidentSQL = `
INSERT INTO residents (id, unit_id, cpf, name, rg, email, phone, birth_date, relationship,
	is_main_resident, emergency_contact_name, emergency_contact_phone,
	move_in_date, move_out_date, is_active, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
RETURNING ` + residentColumns

const getResidentByIDSQL = `
SELECT ` + residentColumns + `
FROM residents
WHERE id = $1`

const getResidentByCPFSQL = `
SELECT ` + residentColumns + `
FROM residents
WHERE cpf = $1`

const listResidentsByUnitSQL = `
SELECT ` + residentColumns + `
FROM residents
WHERE unit_id = $1
ORDER BY created_at ASC`

const listActiveResidentsByUnitSQL = `
SELECT ` + residentColumns + `
FROM residents
WHERE unit_id = $1 AND is_active
ORDER BY created_at ASC`

const countActiveByUnitSQL = `
SELECT count(*) FROM residents
WHERE unit_id = $1 AND is_active`

const clearMainResidentSQL = `
UPDATE residents
SET is_main_resident = false, updated_at = $2
WHERE unit_id = $1 AND is_active AND is_main_resident`

const setMainResidentSQL = `
UPDATE residents
SET is_main_resident = true, updated_at = $3
WHERE id = $1 AND unit_id = $2 AND is_active`

const deactivateResidentSQL = `
UPDATE residents
SET is_active = false, is_main_resident = false, move_out_date = $2, updated_at = $3
WHERE id = $1 AND is_active`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a resident by primary key.
// Returns domain.ErrNotFound if the resident does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Resident, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	res, err := scanResident(querier.QueryRow(ctx, getResidentByIDSQL, id))
	if err != nil {
		return domain.Resident{}, postgres.MapError(err, "resident", id)
	}
	return res, nil
}

// GetByCPF returns a resident by CPF (normalized, 11 digits), active or not.
// Returns domain.ErrNotFound if no resident carries that CPF.
func (r *Repo) GetByCPF(ctx context.Context, cpf string) (domain.Resident, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	res, err := scanResident(querier.QueryRow(ctx, getResidentByCPFSQL, cpf))
	if err != nil {
		return domain.Resident{}, postgres.MapError(err, "resident", uuid.Nil)
	}
	return res, nil
}

// ListByUnit returns residents of a unit ordered by creation time.
// activeOnly restricts the result to is_active rows.
func (r *Repo) ListByUnit(ctx context.Context, unitID uuid.UUID, activeOnly bool) ([]domain.Resident, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listResidentsByUnitSQL
	if activeOnly {
		sql = listActiveResidentsByUnitSQL
	}

	rows, err := querier.Query(ctx, sql, unitID)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer rows.Close()

	return scanResidents(rows)
}

// CountActiveByUnit returns the number of active residents on a unit.
func (r *Repo) CountActiveByUnit(ctx context.Context, unitID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countActiveByUnitSQL, unitID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active residents: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new resident and returns the persisted domain.Resident.
// A CPF already registered anywhere in the system (active or not) results
// in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, res domain.Resident) (domain.Resident, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.CreatedAt = now
	res.UpdatedAt = now

	row := querier.QueryRow(ctx, createResidentSQL,
		res.ID, res.UnitID, res.CPF, res.Name, res.RG, res.Email, res.Phone, res.BirthDate,
		res.Relationship, res.IsMainResident, res.EmergencyContactName, res.EmergencyContactPhone,
		res.MoveInDate, res.MoveOutDate, res.IsActive, res.UserID, res.CreatedAt, res.UpdatedAt,
	)

	created, err := scanResident(row)
	if err != nil {
		return domain.Resident{}, postgres.MapError(err, "resident", res.ID)
	}
	return created, nil
}

// Update applies a partial update and returns the updated resident.
// Only non-nil params are written.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ResidentUpdateParams) (domain.Resident, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := psql.Update("residents").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + residentColumns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.RG != nil {
		b = b.Set("rg", *params.RG)
	}
	if params.Email != nil {
		b = b.Set("email", *params.Email)
	}
	if params.Phone != nil {
		b = b.Set("phone", *params.Phone)
	}
	if params.BirthDate != nil {
		b = b.Set("birth_date", *params.BirthDate)
	}
	if params.Relationship != nil {
		b = b.Set("relationship", *params.Relationship)
	}
	if params.EmergencyContactName != nil {
		b = b.Set("emergency_contact_name", *params.EmergencyContactName)
	}
	if params.EmergencyContactPhone != nil {
		b = b.Set("emergency_contact_phone", *params.EmergencyContactPhone)
	}
	if params.UserID != nil {
		b = b.Set("user_id", *params.UserID)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Resident{}, fmt.Errorf("build resident update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	res, err := scanResident(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Resident{}, postgres.MapError(err, "resident", id)
	}
	return res, nil
}

// SetMainResident makes residentID the single main resident of unitID.
// The flag is cleared on every other active resident of the unit before
// being set on the target, so the single-main-resident invariant holds at
// every observable point. Both statements must run inside the caller's
// transaction. Returns domain.ErrNotFound if the target is not an active
// resident of that unit.
func (r *Repo) SetMainResident(ctx context.Context, unitID, residentID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, clearMainResidentSQL, unitID, now); err != nil {
		return postgres.MapError(err, "resident", residentID)
	}

	tag, err := querier.Exec(ctx, setMainResidentSQL, residentID, unitID, now)
	if err != nil {
		return postgres.MapError(err, "resident", residentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resident %s: %w", residentID, domain.ErrNotFound)
	}
	return nil
}

// Deactivate marks a resident as moved out: is_active=false, move_out_date
// set, and the main-resident flag dropped. The store does not auto-promote
// another resident; reassigning main is the coordinator's decision.
// Returns domain.ErrConflict if the resident is already inactive.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID, moveOutDate time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deactivateResidentSQL, id, moveOutDate,
		time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "resident", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resident %s already inactive or missing: %w", id, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanResident scans one row in residentColumns order.
func scanResident(row pgx.Row) (domain.Resident, error) {
	var res domain.Resident
	err := row.Scan(
		&res.ID, &res.UnitID, &res.CPF, &res.Name, &res.RG, &res.Email, &res.Phone, &res.BirthDate,
		&res.Relationship, &res.IsMainResident, &res.EmergencyContactName, &res.EmergencyContactPhone,
		&res.MoveInDate, &res.MoveOutDate, &res.IsActive, &res.UserID, &res.CreatedAt, &res.UpdatedAt,
	)
	return res, err
}

// scanResidents scans all rows into a slice.
func scanResidents(rows pgx.Rows) ([]domain.Resident, error) {
	residents := []domain.Resident{}
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resident: %w", err)
		}
		residents = append(residents, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate residents: %w", err)
	}
	return residents, nil
}
