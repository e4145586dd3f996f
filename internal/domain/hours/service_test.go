package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHoursRepository struct {
	byDay map[DayOfWeek]*BranchHours
}

func (f *fakeHoursRepository) Upsert(ctx context.Context, h *BranchHours) error {
	f.byDay[h.DayOfWeek] = h
	return nil
}

func (f *fakeHoursRepository) FindByBranchAndDay(ctx context.Context, branchID string, day DayOfWeek) (*BranchHours, error) {
	if h, ok := f.byDay[day]; ok {
		return h, nil
	}
	return nil, ErrNotFound
}

func (f *fakeHoursRepository) ListByBranch(ctx context.Context, branchID string) ([]*BranchHours, error) {
	list := make([]*BranchHours, 0, len(f.byDay))
	for _, h := range f.byDay {
		list = append(list, h)
	}
	return list, nil
}

type fixedLocator struct {
	loc *time.Location
}

func (f fixedLocator) BranchLocation(ctx context.Context, branchID string) (*time.Location, error) {
	return f.loc, nil
}

func newTestService(t *testing.T, entries ...*BranchHours) *Service {
	t.Helper()

	repo := &fakeHoursRepository{byDay: make(map[DayOfWeek]*BranchHours)}
	for _, h := range entries {
		repo.byDay[h.DayOfWeek] = h
	}

	return NewService(repo, fixedLocator{loc: time.UTC})
}

func mustHours(t *testing.T, day DayOfWeek, open, close string, isClosed bool) *BranchHours {
	t.Helper()

	h, err := NewBranchHours("branch-1", day, open, close, isClosed, "user-1")
	require.NoError(t, err)
	return h
}

func TestIsOpenAtRegularWindow(t *testing.T) {
	svc := newTestService(t, mustHours(t, Monday, "09:00", "17:00", false))

	// 2026-03-02 é uma segunda-feira
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	}

	open, err := svc.IsOpenAt(context.Background(), "branch-1", monday(10, 0))
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.IsOpenAt(context.Background(), "branch-1", monday(8, 59))
	require.NoError(t, err)
	assert.False(t, open)

	open, err = svc.IsOpenAt(context.Background(), "branch-1", monday(17, 0))
	require.NoError(t, err)
	assert.False(t, open)

	// Terça-feira sem registro
	open, err = svc.IsOpenAt(context.Background(), "branch-1", time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsOpenAtOvernightWindow(t *testing.T) {
	// Sexta-feira 22:00 às 02:00 de sábado
	svc := newTestService(t, mustHours(t, Friday, "22:00", "02:00", false))

	// 2026-03-06 é uma sexta-feira
	friday := time.Date(2026, 3, 6, 23, 30, 0, 0, time.UTC)
	open, err := svc.IsOpenAt(context.Background(), "branch-1", friday)
	require.NoError(t, err)
	assert.True(t, open)

	// Madrugada de sábado coberta pela janela de sexta
	saturdayEarly := time.Date(2026, 3, 7, 1, 0, 0, 0, time.UTC)
	open, err = svc.IsOpenAt(context.Background(), "branch-1", saturdayEarly)
	require.NoError(t, err)
	assert.True(t, open)

	// Após o fechamento da madrugada
	saturdayLate := time.Date(2026, 3, 7, 3, 0, 0, 0, time.UTC)
	open, err = svc.IsOpenAt(context.Background(), "branch-1", saturdayLate)
	require.NoError(t, err)
	assert.False(t, open)

	// Antes da abertura de sexta
	fridayEarly := time.Date(2026, 3, 6, 21, 0, 0, 0, time.UTC)
	open, err = svc.IsOpenAt(context.Background(), "branch-1", fridayEarly)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsOpenAtClosedDay(t *testing.T) {
	svc := newTestService(t, mustHours(t, Sunday, "", "", true))

	sunday := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	open, err := svc.IsOpenAt(context.Background(), "branch-1", sunday)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsOpenAtUsesBankTimeZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	repo := &fakeHoursRepository{byDay: map[DayOfWeek]*BranchHours{
		Monday: mustHours(t, Monday, "09:00", "17:00", false),
	}}
	svc := NewService(repo, fixedLocator{loc: loc})

	// 2026-03-02 13:00 UTC é 10:00 em São Paulo (UTC-3), segunda-feira
	at := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	open, err := svc.IsOpenAt(context.Background(), "branch-1", at)
	require.NoError(t, err)
	assert.True(t, open)

	// 2026-03-03 01:00 UTC ainda é segunda-feira 22:00 em São Paulo
	at = time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	open, err = svc.IsOpenAt(context.Background(), "branch-1", at)
	require.NoError(t, err)
	assert.False(t, open)
}
