// Package unit implements the Unit Record Store using PostgreSQL.
// The store owns unit identity, occupancy status, and contract/billing
// configuration. It never writes history: the occupancy coordinator reads
// the before-image inside the same transaction and records the diff.
package unit

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

// Repo provides unit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new unit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const unitColumns = `id, condominium_id, number, block, floor, unit_type, bedrooms, bathrooms, area,
	status, condominium_fee, owner_name, owner_email, owner_phone, resident_user_id,
	monthly_amount, payment_due_day, auto_billing_enabled,
	contract_start_date, contract_end_date, contract_type, deposit_amount,
	guarantor_name, guarantor_cpf, guarantor_phone, auto_renewal, parking_spots,
	furnished, pet_allowed, balcony, last_renovation_date, created_at, updated_at`

const createUnitSQL = `
INSERT INTO units (id, condominium_id, number, block, floor, unit_type, bedrooms, bathrooms, area,
	status, condominium_fee, owner_name, owner_email, owner_phone, resident_user_id,
	monthly_amount, payment_due_day, auto_billing_enabled,
	contract_start_date, contract_end_date, contract_type, deposit_amount,
	guarantor_name, guarantor_cpf, guarantor_phone, auto_renewal, parking_spots,
	furnished, pet_allowed, balcony, last_renovation_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
	$19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)
RETURNING ` + unitColumns

const getUnitByIDSQL = `
SELECT ` + unitColumns + `
FROM units
WHERE id = $1`

// FOR UPDATE serializes same-unit compound operations (spec: per-unit
// transaction granularity).
const getUnitByIDForUpdateSQL = getUnitByIDSQL + `
FOR UPDATE`

const listUnitsByCondominiumSQL = `
SELECT ` + unitColumns + `
FROM units
WHERE condominium_id = $1
ORDER BY number ASC`

const setUnitStatusSQL = `
UPDATE units
SET status = $2, updated_at = $3
WHERE id = $1`

const listAutoBillingSQL = `
SELECT ` + unitColumns + `
FROM units
WHERE auto_billing_enabled
ORDER BY payment_due_day ASC, number ASC`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a unit by primary key.
// Returns domain.ErrNotFound if the unit does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUnit(querier.QueryRow(ctx, getUnitByIDSQL, id))
	if err != nil {
		return domain.Unit{}, postgres.MapError(err, "unit", id)
	}
	return u, nil
}

// GetByIDForUpdate returns a unit by primary key, locking its row for the
// duration of the surrounding transaction. Callers must be inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUnit(querier.QueryRow(ctx, getUnitByIDForUpdateSQL, id))
	if err != nil {
		return domain.Unit{}, postgres.MapError(err, "unit", id)
	}
	return u, nil
}

// ListByCondominium returns all units of a condominium ordered by number.
func (r *Repo) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listUnitsByCondominiumSQL, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	return scanUnits(rows)
}

// ListAutoBilling returns every unit with auto billing enabled, ordered by
// due day. Used by the due-dates maintenance binary.
func (r *Repo) ListAutoBilling(ctx context.Context) ([]domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAutoBillingSQL)
	if err != nil {
		return nil, fmt.Errorf("list auto-billing units: %w", err)
	}
	defer rows.Close()

	return scanUnits(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new unit and returns the persisted domain.Unit.
func (r *Repo) Create(ctx context.Context, u domain.Unit) (domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	row := querier.QueryRow(ctx, createUnitSQL,
		u.ID, u.CondominiumID, u.Number, u.Block, u.Floor, u.UnitType, u.Bedrooms, u.Bathrooms, u.Area,
		u.Status, u.CondominiumFee, u.OwnerName, u.OwnerEmail, u.OwnerPhone, u.ResidentUserID,
		u.MonthlyAmount, u.PaymentDueDay, u.AutoBillingEnabled,
		u.ContractStartDate, u.ContractEndDate, u.ContractType, u.DepositAmount,
		u.GuarantorName, u.GuarantorCPF, u.GuarantorPhone, u.AutoRenewal, u.ParkingSpots,
		u.Furnished, u.PetAllowed, u.Balcony, u.LastRenovationDate, u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUnit(row)
	if err != nil {
		return domain.Unit{}, postgres.MapError(err, "unit", u.ID)
	}
	return created, nil
}

// Update applies a partial update and returns the updated unit.
// Only non-nil params are written. Returns domain.ErrNotFound if the unit
// does not exist, and the unit unchanged if params is empty.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UnitUpdateParams) (domain.Unit, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := psql.Update("units").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + unitColumns)

	b = applyUnitParams(b, params)

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Unit{}, fmt.Errorf("build unit update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUnit(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Unit{}, postgres.MapError(err, "unit", id)
	}
	return u, nil
}

// SetStatus changes the occupancy status of a unit.
// Returns domain.ErrNotFound if the unit does not exist.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setUnitStatusSQL, id, status, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "unit", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// applyUnitParams adds a SET clause for every non-nil param.
func applyUnitParams(b squirrel.UpdateBuilder, p domain.UnitUpdateParams) squirrel.UpdateBuilder {
	if p.Number != nil {
		b = b.Set("number", *p.Number)
	}
	if p.Block != nil {
		b = b.Set("block", *p.Block)
	}
	if p.Floor != nil {
		b = b.Set("floor", *p.Floor)
	}
	if p.UnitType != nil {
		b = b.Set("unit_type", *p.UnitType)
	}
	if p.Bedrooms != nil {
		b = b.Set("bedrooms", *p.Bedrooms)
	}
	if p.Bathrooms != nil {
		b = b.Set("bathrooms", *p.Bathrooms)
	}
	if p.Area != nil {
		b = b.Set("area", *p.Area)
	}
	if p.CondominiumFee != nil {
		b = b.Set("condominium_fee", *p.CondominiumFee)
	}
	if p.OwnerName != nil {
		b = b.Set("owner_name", *p.OwnerName)
	}
	if p.OwnerEmail != nil {
		b = b.Set("owner_email", *p.OwnerEmail)
	}
	if p.OwnerPhone != nil {
		b = b.Set("owner_phone", *p.OwnerPhone)
	}
	if p.ResidentUserID != nil {
		b = b.Set("resident_user_id", *p.ResidentUserID)
	}
	if p.MonthlyAmount != nil {
		b = b.Set("monthly_amount", *p.MonthlyAmount)
	}
	if p.PaymentDueDay != nil {
		b = b.Set("payment_due_day", *p.PaymentDueDay)
	}
	if p.AutoBillingEnabled != nil {
		b = b.Set("auto_billing_enabled", *p.AutoBillingEnabled)
	}
	if p.ContractStartDate != nil {
		b = b.Set("contract_start_date", *p.ContractStartDate)
	}
	if p.ContractEndDate != nil {
		b = b.Set("contract_end_date", *p.ContractEndDate)
	}
	if p.ContractType != nil {
		b = b.Set("contract_type", *p.ContractType)
	}
	if p.DepositAmount != nil {
		b = b.Set("deposit_amount", *p.DepositAmount)
	}
	if p.GuarantorName != nil {
		b = b.Set("guarantor_name", *p.GuarantorName)
	}
	if p.GuarantorCPF != nil {
		b = b.Set("guarantor_cpf", *p.GuarantorCPF)
	}
	if p.GuarantorPhone != nil {
		b = b.Set("guarantor_phone", *p.GuarantorPhone)
	}
	if p.AutoRenewal != nil {
		b = b.Set("auto_renewal", *p.AutoRenewal)
	}
	if p.ParkingSpots != nil {
		b = b.Set("parking_spots", *p.ParkingSpots)
	}
	if p.Furnished != nil {
		b = b.Set("furnished", *p.Furnished)
	}
	if p.PetAllowed != nil {
		b = b.Set("pet_allowed", *p.PetAllowed)
	}
	if p.Balcony != nil {
		b = b.Set("balcony", *p.Balcony)
	}
	if p.LastRenovationDate != nil {
		b = b.Set("last_renovation_date", *p.LastRenovationDate)
	}
	return b
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanUnit scans one row in unitColumns order.
func scanUnit(row pgx.Row) (domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(
		&u.ID, &u.CondominiumID, &u.Number, &u.Block, &u.Floor, &u.UnitType,
		&u.Bedrooms, &u.Bathrooms, &u.Area,
		&u.Status, &u.CondominiumFee, &u.OwnerName, &u.OwnerEmail, &u.OwnerPhone, &u.ResidentUserID,
		&u.MonthlyAmount, &u.PaymentDueDay, &u.AutoBillingEnabled,
		&u.ContractStartDate, &u.ContractEndDate, &u.ContractType, &u.DepositAmount,
		&u.GuarantorName, &u.GuarantorCPF, &u.GuarantorPhone, &u.AutoRenewal, &u.ParkingSpots,
		&u.Furnished, &u.PetAllowed, &u.Balcony, &u.LastRenovationDate, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// scanUnits scans all rows into a slice.
func scanUnits(rows pgx.Rows) ([]domain.Unit, error) {
	units := []domain.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return units, nil
}
