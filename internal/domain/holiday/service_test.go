package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepository struct {
	byBank   map[string][]*Holiday
	byBranch map[string][]*Holiday
}

func newFakeHolidayRepository() *fakeHolidayRepository {
	return &fakeHolidayRepository{
		byBank:   make(map[string][]*Holiday),
		byBranch: make(map[string][]*Holiday),
	}
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h *Holiday) error {
	if h.BankID != nil {
		f.byBank[*h.BankID] = append(f.byBank[*h.BankID], h)
	} else if h.BranchID != nil {
		f.byBranch[*h.BranchID] = append(f.byBranch[*h.BranchID], h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindByID(ctx context.Context, id string) (*Holiday, error) {
	return nil, ErrNotFound
}

func (f *fakeHolidayRepository) ListActiveByBank(ctx context.Context, bankID string) ([]*Holiday, error) {
	return f.byBank[bankID], nil
}

func (f *fakeHolidayRepository) ListActiveByBranch(ctx context.Context, branchID string) ([]*Holiday, error) {
	return f.byBranch[branchID], nil
}

func (f *fakeHolidayRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*Holiday, error) {
	return f.byBank[bankID], nil
}

func (f *fakeHolidayRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	return len(f.byBank[bankID]), nil
}

func (f *fakeHolidayRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	return nil
}

type fixedOwner struct {
	bankID string
}

func (f fixedOwner) BranchBank(ctx context.Context, branchID string) (string, error) {
	return f.bankID, nil
}

func TestIsBankHoliday(t *testing.T) {
	repo := newFakeHolidayRepository()

	h, err := NewBankHoliday("bank-1", "BR", time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC), "Natal", true, "user-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), h))

	svc := NewService(repo, fixedOwner{bankID: "bank-1"})

	is, err := svc.IsBankHoliday(context.Background(), "bank-1", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, is)

	is, err = svc.IsBankHoliday(context.Background(), "bank-1", time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, is)

	// Banco sem feriados cadastrados
	is, err = svc.IsBankHoliday(context.Background(), "bank-2", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, is)
}

func TestIsBranchHolidayOwnScope(t *testing.T) {
	repo := newFakeHolidayRepository()

	h, err := NewBranchHoliday("branch-1", "BR", time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), "Aniversário da cidade", false, "user-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), h))

	svc := NewService(repo, fixedOwner{bankID: "bank-1"})

	is, err := svc.IsBranchHoliday(context.Background(), "branch-1", time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, is)

	// O feriado é só da agência, não do banco
	is, err = svc.IsBankHoliday(context.Background(), "bank-1", time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, is)
}

func TestIsBranchHolidayFallsBackToBank(t *testing.T) {
	repo := newFakeHolidayRepository()

	h, err := NewBankHoliday("bank-1", "BR", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), "Independência", false, "user-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), h))

	svc := NewService(repo, fixedOwner{bankID: "bank-1"})

	// A agência não tem feriado próprio na data; vale o feriado do banco
	is, err := svc.IsBranchHoliday(context.Background(), "branch-1", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, is)

	is, err = svc.IsBranchHoliday(context.Background(), "branch-1", time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, is)
}
