// Package condominium implements the Condominium repository using PostgreSQL.
package condominium

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/condoview/condoview-backend/internal/adapter/postgres"
	"github.com/condoview/condoview-backend/internal/domain"
)

// Repo provides condominium persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new condominium repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const condominiumColumns = `id, name, address, city, state, zip_code, cnpj, created_at, updated_at`

const createCondominiumSQL = `
INSERT INTO condominiums (id, name, address, city, state, zip_code, cnpj, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + condominiumColumns

const getCondominiumByIDSQL = `
SELECT ` + condominiumColumns + `
FROM condominiums
WHERE id = $1`

const listCondominiumsSQL = `
SELECT ` + condominiumColumns + `
FROM condominiums
ORDER BY name ASC`

// Create inserts a new condominium and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c domain.Condominium) (domain.Condominium, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	row := querier.QueryRow(ctx, createCondominiumSQL,
		c.ID, c.Name, c.Address, c.City, c.State, c.ZipCode, c.CNPJ, c.CreatedAt, c.UpdatedAt,
	)

	created, err := scanCondominium(row)
	if err != nil {
		return domain.Condominium{}, postgres.MapError(err, "condominium", c.ID)
	}
	return created, nil
}

// GetByID returns a condominium by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Condominium, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCondominium(querier.QueryRow(ctx, getCondominiumByIDSQL, id))
	if err != nil {
		return domain.Condominium{}, postgres.MapError(err, "condominium", id)
	}
	return c, nil
}

// List returns all condominiums ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Condominium, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCondominiumsSQL)
	if err != nil {
		return nil, fmt.Errorf("list condominiums: %w", err)
	}
	defer rows.Close()

	condos := []domain.Condominium{}
	for rows.Next() {
		c, err := scanCondominium(rows)
		if err != nil {
			return nil, fmt.Errorf("scan condominium: %w", err)
		}
		condos = append(condos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate condominiums: %w", err)
	}

	return condos, nil
}

// scanCondominium scans one row in condominiumColumns order.
func scanCondominium(row pgx.Row) (domain.Condominium, error) {
	var c domain.Condominium
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.ZipCode, &c.CNPJ,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
