package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/testhelper"
	"github.com/condoview/condoview-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*history.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return history.New(pool), pool
}

func seedEntry(t *testing.T, repo *history.Repo, unitID uuid.UUID, action domain.ActionType, at time.Time) domain.HistoryEntry {
	t.Helper()
	entry, err := repo.Create(context.Background(), domain.HistoryEntry{
		UnitID:      unitID,
		ActionType:  action,
		Description: string(action),
		CreatedAt:   at,
	})
	if err != nil {
		t.Fatalf("seed history entry: %v", err)
	}
	return entry
}

func TestRepo_Create_RoundTripsJSONB(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)
	res := testhelper.SeedResident(t, pool, unit.ID)
	actor := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, domain.HistoryEntry{
		UnitID:          unit.ID,
		ResidentID:      &res.ID,
		ActionType:      domain.ActionFeeChanged,
		Description:     "Billing configuration changed",
		OldValues:       domain.Changes{"monthly_amount": nil, "payment_due_day": nil},
		NewValues:       domain.Changes{"monthly_amount": 1200.5, "payment_due_day": 10},
		ChangedByUserID: &actor,
		Metadata:        domain.Changes{"source": "admin-panel"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create should assign an ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("Create should set CreatedAt")
	}

	if created.NewValues["monthly_amount"] != 1200.5 {
		t.Errorf("monthly_amount = %v, want 1200.5", created.NewValues["monthly_amount"])
	}
	// JSON numbers come back as float64.
	if created.NewValues["payment_due_day"] != float64(10) {
		t.Errorf("payment_due_day = %v (%T), want 10", created.NewValues["payment_due_day"], created.NewValues["payment_due_day"])
	}
	if created.Metadata["source"] != "admin-panel" {
		t.Errorf("metadata source = %v", created.Metadata["source"])
	}
	if created.ResidentID == nil || *created.ResidentID != res.ID {
		t.Errorf("ResidentID = %v, want %s", created.ResidentID, res.ID)
	}
	if created.ChangedByUserID == nil || *created.ChangedByUserID != actor {
		t.Errorf("ChangedByUserID = %v, want %s", created.ChangedByUserID, actor)
	}
}

func TestRepo_Create_EmptyChangesStoredAsNull(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)

	created, err := repo.Create(ctx, domain.HistoryEntry{
		UnitID:      unit.ID,
		ActionType:  domain.ActionGeneralUpdate,
		Description: "no diff recorded",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.OldValues != nil || created.NewValues != nil || created.Metadata != nil {
		t.Errorf("empty maps should round-trip as nil: old=%v new=%v meta=%v",
			created.OldValues, created.NewValues, created.Metadata)
	}
}

func TestRepo_ListByUnit_ChronologicalOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	third := seedEntry(t, repo, unit.ID, domain.ActionStatusChanged, base.Add(2*time.Hour))
	first := seedEntry(t, repo, unit.ID, domain.ActionResidentAdded, base)
	second := seedEntry(t, repo, unit.ID, domain.ActionResidentUpdated, base.Add(time.Hour))

	entries, err := repo.ListByUnit(ctx, unit.ID, history.Filter{})
	if err != nil {
		t.Fatalf("ListByUnit: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	want := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %s, want %s", i, entries[i].ID, id)
		}
	}
}

func TestRepo_ListByUnit_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)
	res := testhelper.SeedResident(t, pool, unit.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedEntry(t, repo, unit.ID, domain.ActionStatusChanged, base)
	withResident, err := repo.Create(ctx, domain.HistoryEntry{
		UnitID:      unit.ID,
		ResidentID:  &res.ID,
		ActionType:  domain.ActionResidentAdded,
		Description: "moved in",
		CreatedAt:   base.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	late := seedEntry(t, repo, unit.ID, domain.ActionFeeChanged, base.Add(48*time.Hour))

	// By action type.
	action := domain.ActionFeeChanged
	got, err := repo.ListByUnit(ctx, unit.ID, history.Filter{ActionType: &action})
	if err != nil {
		t.Fatalf("ListByUnit(action): %v", err)
	}
	if len(got) != 1 || got[0].ID != late.ID {
		t.Fatalf("action filter wrong: %v", got)
	}

	// By resident.
	got, err = repo.ListByUnit(ctx, unit.ID, history.Filter{ResidentID: &res.ID})
	if err != nil {
		t.Fatalf("ListByUnit(resident): %v", err)
	}
	if len(got) != 1 || got[0].ID != withResident.ID {
		t.Fatalf("resident filter wrong: %v", got)
	}

	// By time window.
	from := base.Add(30 * time.Minute)
	to := base.Add(2 * time.Hour)
	got, err = repo.ListByUnit(ctx, unit.ID, history.Filter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListByUnit(window): %v", err)
	}
	if len(got) != 1 || got[0].ID != withResident.ID {
		t.Fatalf("time window filter wrong: %v", got)
	}

	// Limit + offset.
	got, err = repo.ListByUnit(ctx, unit.ID, history.Filter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListByUnit(page): %v", err)
	}
	if len(got) != 2 || got[0].ID != withResident.ID || got[1].ID != late.ID {
		t.Fatalf("pagination wrong: %v", got)
	}
}

func TestRepo_CountByUnit(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedEntry(t, repo, unit.ID, domain.ActionStatusChanged, base)
	seedEntry(t, repo, unit.ID, domain.ActionGeneralUpdate, base.Add(time.Minute))

	count, err := repo.CountByUnit(ctx, unit.ID)
	if err != nil {
		t.Fatalf("CountByUnit: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestRepo_ResidentDeletion_NullsReference(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)
	res := testhelper.SeedResident(t, pool, unit.ID)

	created, err := repo.Create(ctx, domain.HistoryEntry{
		UnitID:      unit.ID,
		ResidentID:  &res.ID,
		ActionType:  domain.ActionResidentAdded,
		Description: "moved in",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Administrative hard delete outside the normal flow; history survives
	// with the reference nulled.
	if _, err := pool.Exec(ctx, `DELETE FROM residents WHERE id = $1`, res.ID); err != nil {
		t.Fatalf("delete resident: %v", err)
	}

	entries, err := repo.ListByUnit(ctx, unit.ID, history.Filter{})
	if err != nil {
		t.Fatalf("ListByUnit: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != created.ID {
		t.Fatalf("history entry should survive resident deletion: %v", entries)
	}
	if entries[0].ResidentID != nil {
		t.Errorf("ResidentID should be nulled, got %v", entries[0].ResidentID)
	}
}

func TestRepo_UnitDeletion_CascadesHistory(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	unit := testhelper.SeedUnit(t, pool)
	seedEntry(t, repo, unit.ID, domain.ActionGeneralUpdate, time.Now().UTC())

	if _, err := pool.Exec(ctx, `DELETE FROM units WHERE id = $1`, unit.ID); err != nil {
		t.Fatalf("delete unit: %v", err)
	}

	count, err := repo.CountByUnit(ctx, unit.ID)
	if err != nil {
		t.Fatalf("CountByUnit: %v", err)
	}
	if count != 0 {
		t.Errorf("history should cascade with its unit, %d rows remain", count)
	}
}
