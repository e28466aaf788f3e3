package occupancy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/domain"
)

// Manual mocks (moq-style with func fields).

type mockUnitRepo struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Unit, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Unit, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.UnitUpdateParams) (domain.Unit, error)
	SetStatusFunc        func(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error
	ListAutoBillingFunc  func(ctx context.Context) ([]domain.Unit, error)

	mu             sync.Mutex
	setStatusCalls []domain.UnitStatus
}

func (m *mockUnitRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Unit{}, domain.ErrNotFound
}

func (m *mockUnitRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return domain.Unit{}, domain.ErrNotFound
}

func (m *mockUnitRepo) Update(ctx context.Context, id uuid.UUID, params domain.UnitUpdateParams) (domain.Unit, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return domain.Unit{}, domain.ErrNotFound
}

func (m *mockUnitRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.UnitStatus) error {
	m.mu.Lock()
	m.setStatusCalls = append(m.setStatusCalls, status)
	m.mu.Unlock()
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockUnitRepo) ListAutoBilling(ctx context.Context) ([]domain.Unit, error) {
	if m.ListAutoBillingFunc != nil {
		return m.ListAutoBillingFunc(ctx)
	}
	return nil, nil
}

func (m *mockUnitRepo) SetStatusCalls() []domain.UnitStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setStatusCalls
}

type mockResidentRepo struct {
	CreateFunc            func(ctx context.Context, res domain.Resident) (domain.Resident, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (domain.Resident, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, params domain.ResidentUpdateParams) (domain.Resident, error)
	SetMainResidentFunc   func(ctx context.Context, unitID, residentID uuid.UUID) error
	DeactivateFunc        func(ctx context.Context, id uuid.UUID, moveOutDate time.Time) error
	ListByUnitFunc        func(ctx context.Context, unitID uuid.UUID, activeOnly bool) ([]domain.Resident, error)
	CountActiveByUnitFunc func(ctx context.Context, unitID uuid.UUID) (int, error)
}

func (m *mockResidentRepo) Create(ctx context.Context, res domain.Resident) (domain.Resident, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, res)
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	return res, nil
}

func (m *mockResidentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Resident, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Resident{}, domain.ErrNotFound
}

func (m *mockResidentRepo) Update(ctx context.Context, id uuid.UUID, params domain.ResidentUpdateParams) (domain.Resident, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return domain.Resident{}, domain.ErrNotFound
}

func (m *mockResidentRepo) SetMainResident(ctx context.Context, unitID, residentID uuid.UUID) error {
	if m.SetMainResidentFunc != nil {
		return m.SetMainResidentFunc(ctx, unitID, residentID)
	}
	return nil
}

func (m *mockResidentRepo) Deactivate(ctx context.Context, id uuid.UUID, moveOutDate time.Time) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, moveOutDate)
	}
	return nil
}

func (m *mockResidentRepo) ListByUnit(ctx context.Context, unitID uuid.UUID, activeOnly bool) ([]domain.Resident, error) {
	if m.ListByUnitFunc != nil {
		return m.ListByUnitFunc(ctx, unitID, activeOnly)
	}
	return nil, nil
}

func (m *mockResidentRepo) CountActiveByUnit(ctx context.Context, unitID uuid.UUID) (int, error) {
	if m.CountActiveByUnitFunc != nil {
		return m.CountActiveByUnitFunc(ctx, unitID)
	}
	return 0, nil
}

// mockHistoryRepo records every created entry so tests can assert on the
// exact audit trail an operation produced.
type mockHistoryRepo struct {
	CreateFunc     func(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	ListByUnitFunc func(ctx context.Context, unitID uuid.UUID, filter history.Filter) ([]domain.HistoryEntry, error)

	mu      sync.Mutex
	created []domain.HistoryEntry
}

func (m *mockHistoryRepo) Create(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()
	m.mu.Lock()
	m.created = append(m.created, entry)
	m.mu.Unlock()
	return entry, nil
}

func (m *mockHistoryRepo) ListByUnit(ctx context.Context, unitID uuid.UUID, filter history.Filter) ([]domain.HistoryEntry, error) {
	if m.ListByUnitFunc != nil {
		return m.ListByUnitFunc(ctx, unitID, filter)
	}
	return nil, nil
}

func (m *mockHistoryRepo) Created() []domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
