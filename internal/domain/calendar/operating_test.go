package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/holiday"
	"github.com/hugohenrick/banking-org/internal/domain/hours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hoursRepoStub struct {
	byDay map[hours.DayOfWeek]*hours.BranchHours
}

func (s *hoursRepoStub) Upsert(ctx context.Context, h *hours.BranchHours) error {
	s.byDay[h.DayOfWeek] = h
	return nil
}

func (s *hoursRepoStub) FindByBranchAndDay(ctx context.Context, branchID string, day hours.DayOfWeek) (*hours.BranchHours, error) {
	if h, ok := s.byDay[day]; ok {
		return h, nil
	}
	return nil, hours.ErrNotFound
}

func (s *hoursRepoStub) ListByBranch(ctx context.Context, branchID string) ([]*hours.BranchHours, error) {
	return nil, nil
}

type utcLocator struct{}

func (utcLocator) BranchLocation(ctx context.Context, branchID string) (*time.Location, error) {
	return time.UTC, nil
}

type holidayRepoStub struct {
	byBranch []*holiday.Holiday
	byBank   []*holiday.Holiday
}

func (s *holidayRepoStub) Create(ctx context.Context, h *holiday.Holiday) error { return nil }

func (s *holidayRepoStub) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	return nil, holiday.ErrNotFound
}

func (s *holidayRepoStub) ListActiveByBank(ctx context.Context, bankID string) ([]*holiday.Holiday, error) {
	return s.byBank, nil
}

func (s *holidayRepoStub) ListActiveByBranch(ctx context.Context, branchID string) ([]*holiday.Holiday, error) {
	return s.byBranch, nil
}

func (s *holidayRepoStub) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*holiday.Holiday, error) {
	return s.byBank, nil
}

func (s *holidayRepoStub) CountByBank(ctx context.Context, bankID string) (int, error) {
	return len(s.byBank), nil
}

func (s *holidayRepoStub) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	return nil
}

type bankOwnerStub struct{}

func (bankOwnerStub) BranchBank(ctx context.Context, branchID string) (string, error) {
	return "bank-1", nil
}

func newOperatingFixture(t *testing.T, holidays *holidayRepoStub) (*OperatingService, *fakeCalendarRepository, *fakeAssignmentRepository) {
	t.Helper()

	weekday, err := hours.NewBranchHours("branch-1", hours.Monday, "09:00", "17:00", false, "user-1")
	require.NoError(t, err)

	hoursRepo := &hoursRepoStub{byDay: map[hours.DayOfWeek]*hours.BranchHours{
		hours.Monday: weekday,
	}}

	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()

	svc := NewOperatingService(
		NewResolver(calendars, assignments, testHierarchy()),
		hours.NewService(hoursRepo, utcLocator{}),
		holiday.NewService(holidays, bankOwnerStub{}),
	)

	return svc, calendars, assignments
}

func TestIsOperatingOpenWeekday(t *testing.T) {
	svc, _, _ := newOperatingFixture(t, &holidayRepoStub{})

	// 2026-03-02 é uma segunda-feira
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	operating, err := svc.IsOperating(context.Background(), "branch-1", at)
	require.NoError(t, err)
	assert.True(t, operating)
}

func TestIsOperatingHolidayPrevails(t *testing.T) {
	h, err := holiday.NewBankHoliday("bank-1", "BR", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "Feriado bancário", false, "user-1")
	require.NoError(t, err)

	svc, _, _ := newOperatingFixture(t, &holidayRepoStub{byBank: []*holiday.Holiday{h}})

	// Segunda-feira dentro do horário, mas feriado do banco
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	operating, err := svc.IsOperating(context.Background(), "branch-1", at)
	require.NoError(t, err)
	assert.False(t, operating)
}

func TestIsOperatingOutsideHours(t *testing.T) {
	svc, _, _ := newOperatingFixture(t, &holidayRepoStub{})

	at := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	operating, err := svc.IsOperating(context.Background(), "branch-1", at)
	require.NoError(t, err)
	assert.False(t, operating)
}

func TestStatusAt(t *testing.T) {
	h, err := holiday.NewBranchHoliday("branch-1", "BR", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "Aniversário da cidade", false, "user-1")
	require.NoError(t, err)

	svc, calendars, _ := newOperatingFixture(t, &holidayRepoStub{byBranch: []*holiday.Holiday{h}})

	defaultCal := mustCalendar(t, "bank-1", "Expediente padrão", true)
	require.NoError(t, calendars.Create(context.Background(), defaultCal))

	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	status, err := svc.StatusAt(context.Background(), "branch-1", at)
	require.NoError(t, err)

	assert.False(t, status.Operating)
	assert.True(t, status.Holiday)
	assert.False(t, status.Open)
	require.NotNil(t, status.Calendar)
	assert.Equal(t, defaultCal.ID, status.Calendar.ID)
}

func TestStatusAtWithoutResolvedCalendar(t *testing.T) {
	svc, _, _ := newOperatingFixture(t, &holidayRepoStub{})

	// Calendário indeterminado não impede a resposta
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	status, err := svc.StatusAt(context.Background(), "branch-1", at)
	require.NoError(t, err)

	assert.True(t, status.Operating)
	assert.False(t, status.Holiday)
	assert.True(t, status.Open)
	assert.Nil(t, status.Calendar)
}
