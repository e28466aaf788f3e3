// Package history implements the History Recorder using PostgreSQL.
// It provides append-only operations for unit history records: entries are
// never updated or deleted by normal operation.
package history

import (
	"context"
	"encoding/json"
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

// Repo provides unit history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Filter narrows a history listing. Zero values mean "no constraint".
type Filter struct {
	ActionType *domain.ActionType
	ResidentID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

const historyColumns = `id, unit_id, resident_id, action_type, description,
	old_values, new_values, changed_by_user_id, metadata, created_at`

const createHistorySQL = `
INSERT INTO unit_history (id, unit_id, resident_id, action_type, description,
	old_values, new_values, changed_by_user_id, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + historyColumns

// Create appends a history entry and returns the persisted record.
// Pure append: it never fails except on storage-layer faults.
func (r *Repo) Create(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	oldJSON, err := marshalChanges(entry.OldValues)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry marshal old_values: %w", err)
	}
	newJSON, err := marshalChanges(entry.NewValues)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry marshal new_values: %w", err)
	}
	metaJSON, err := marshalChanges(entry.Metadata)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry marshal metadata: %w", err)
	}

	row := querier.QueryRow(ctx, createHistorySQL,
		entry.ID, entry.UnitID, entry.ResidentID, entry.ActionType, entry.Description,
		oldJSON, newJSON, entry.ChangedByUserID, metaJSON, entry.CreatedAt,
	)

	created, err := scanHistoryEntry(row)
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "history_entry", entry.ID)
	}
	return created, nil
}

// ListByUnit returns the history of a unit ordered by created_at ascending.
// The result is finite and restartable: re-running the same query yields the
// same sequence as long as no new entries were recorded in between.
func (r *Repo) ListByUnit(ctx context.Context, unitID uuid.UUID, filter Filter) ([]domain.HistoryEntry, error) {
	b := psql.Select(
		"id", "unit_id", "resident_id", "action_type", "description",
		"old_values", "new_values", "changed_by_user_id", "metadata", "created_at",
	).
		From("unit_history").
		Where(squirrel.Eq{"unit_id": unitID}).
		OrderBy("created_at ASC", "id ASC")

	if filter.ActionType != nil {
		b = b.Where(squirrel.Eq{"action_type": *filter.ActionType})
	}
	if filter.ResidentID != nil {
		b = b.Where(squirrel.Eq{"resident_id": *filter.ResidentID})
	}
	if filter.From != nil {
		b = b.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		b = b.Where(squirrel.LtOrEq{"created_at": *filter.To})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

// CountByUnit returns the number of history entries recorded for a unit.
func (r *Repo) CountByUnit(ctx context.Context, unitID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, `SELECT count(*) FROM unit_history WHERE unit_id = $1`, unitID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// JSONB helpers
// ---------------------------------------------------------------------------

// marshalChanges serializes a diff map; nil and empty maps become SQL NULL.
func marshalChanges(c domain.Changes) ([]byte, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// scanHistoryEntry scans one row in historyColumns order.
func scanHistoryEntry(row pgx.Row) (domain.HistoryEntry, error) {
	var (
		entry    domain.HistoryEntry
		oldJSON  []byte
		newJSON  []byte
		metaJSON []byte
	)

	err := row.Scan(
		&entry.ID, &entry.UnitID, &entry.ResidentID, &entry.ActionType, &entry.Description,
		&oldJSON, &newJSON, &entry.ChangedByUserID, &metaJSON, &entry.CreatedAt,
	)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	if entry.OldValues, err = unmarshalChanges(oldJSON); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry %s unmarshal old_values: %w", entry.ID, err)
	}
	if entry.NewValues, err = unmarshalChanges(newJSON); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry %s unmarshal new_values: %w", entry.ID, err)
	}
	if entry.Metadata, err = unmarshalChanges(metaJSON); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry %s unmarshal metadata: %w", entry.ID, err)
	}

	return entry, nil
}

func unmarshalChanges(raw []byte) (domain.Changes, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	changes := make(domain.Changes)
	if err := json.Unmarshal(raw, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
