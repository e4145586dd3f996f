package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendarRepository struct {
	byID          map[string]*WorkingCalendar
	defaultByBank map[string]*WorkingCalendar
}

func newFakeCalendarRepository() *fakeCalendarRepository {
	return &fakeCalendarRepository{
		byID:          make(map[string]*WorkingCalendar),
		defaultByBank: make(map[string]*WorkingCalendar),
	}
}

func (f *fakeCalendarRepository) Create(ctx context.Context, c *WorkingCalendar) error {
	f.byID[c.ID] = c
	if c.IsDefault {
		f.defaultByBank[c.BankID] = c
	}
	return nil
}

func (f *fakeCalendarRepository) FindByID(ctx context.Context, id string) (*WorkingCalendar, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, ErrNotFound
}

func (f *fakeCalendarRepository) FindDefaultByBank(ctx context.Context, bankID string) (*WorkingCalendar, error) {
	if c, ok := f.defaultByBank[bankID]; ok {
		return c, nil
	}
	return nil, ErrNoDefault
}

func (f *fakeCalendarRepository) Update(ctx context.Context, c *WorkingCalendar) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCalendarRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*WorkingCalendar, error) {
	var list []*WorkingCalendar
	for _, c := range f.byID {
		if c.BankID == bankID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (f *fakeCalendarRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	list, _ := f.ListByBank(ctx, bankID, 0, 0)
	return len(list), nil
}

func (f *fakeCalendarRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	return nil
}

type targetKey struct {
	targetType TargetType
	targetID   string
}

type fakeAssignmentRepository struct {
	byTarget map[targetKey][]*Assignment
}

func newFakeAssignmentRepository() *fakeAssignmentRepository {
	return &fakeAssignmentRepository{byTarget: make(map[targetKey][]*Assignment)}
}

func (f *fakeAssignmentRepository) Create(ctx context.Context, a *Assignment) error {
	key := targetKey{targetType: a.TargetType(), targetID: a.TargetID()}
	for _, existing := range f.byTarget[key] {
		if existing.IsActive && existing.Overlaps(a.EffectiveFrom, a.EffectiveTo) {
			return ErrAssignmentOverlap
		}
	}
	f.byTarget[key] = append(f.byTarget[key], a)
	return nil
}

func (f *fakeAssignmentRepository) FindByID(ctx context.Context, id string) (*Assignment, error) {
	for _, list := range f.byTarget {
		for _, a := range list {
			if a.ID == id {
				return a, nil
			}
		}
	}
	return nil, ErrAssignmentNotFound
}

func (f *fakeAssignmentRepository) FindActiveAt(ctx context.Context, targetType TargetType, targetID string, at time.Time) ([]*Assignment, error) {
	var active []*Assignment
	for _, a := range f.byTarget[targetKey{targetType: targetType, targetID: targetID}] {
		if a.IsActive && a.Covers(at) {
			active = append(active, a)
		}
	}
	return active, nil
}

func (f *fakeAssignmentRepository) ListByTarget(ctx context.Context, targetType TargetType, targetID string) ([]*Assignment, error) {
	return f.byTarget[targetKey{targetType: targetType, targetID: targetID}], nil
}

func (f *fakeAssignmentRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	a, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.IsActive = isActive
	return nil
}

type fakeHierarchy struct {
	positionDepartment map[string]string
	departmentBranch   map[string]string
	branchBank         map[string]string
}

func (f *fakeHierarchy) PositionDepartment(ctx context.Context, positionID string) (string, error) {
	return f.positionDepartment[positionID], nil
}

func (f *fakeHierarchy) DepartmentBranch(ctx context.Context, departmentID string) (string, error) {
	return f.departmentBranch[departmentID], nil
}

func (f *fakeHierarchy) BranchBank(ctx context.Context, branchID string) (string, error) {
	return f.branchBank[branchID], nil
}

func testHierarchy() *fakeHierarchy {
	return &fakeHierarchy{
		positionDepartment: map[string]string{"position-1": "department-1"},
		departmentBranch:   map[string]string{"department-1": "branch-1"},
		branchBank:         map[string]string{"branch-1": "bank-1"},
	}
}

func mustCalendar(t *testing.T, bankID, name string, isDefault bool) *WorkingCalendar {
	t.Helper()

	c, err := NewWorkingCalendar(bankID, name, "", isDefault, "", "user-1")
	require.NoError(t, err)
	return c
}

func TestResolveDirectAssignment(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	cal := mustCalendar(t, "bank-1", "Plantão", false)
	require.NoError(t, calendars.Create(context.Background(), cal))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewAssignment(cal.ID, TargetPosition, "position-1", from, nil, "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), a))

	resolved, err := resolver.Resolve(context.Background(), TargetPosition, "position-1", from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, cal.ID, resolved.ID)
}

func TestResolveAscendsHierarchy(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	branchCal := mustCalendar(t, "bank-1", "Expediente da agência", false)
	require.NoError(t, calendars.Create(context.Background(), branchCal))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewAssignment(branchCal.ID, TargetBranch, "branch-1", from, nil, "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), a))

	// O cargo não tem vínculo próprio nem o departamento; vale o da agência
	resolved, err := resolver.Resolve(context.Background(), TargetPosition, "position-1", from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, branchCal.ID, resolved.ID)
}

func TestResolveClosestLevelWins(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	branchCal := mustCalendar(t, "bank-1", "Expediente da agência", false)
	positionCal := mustCalendar(t, "bank-1", "Plantão noturno", false)
	require.NoError(t, calendars.Create(context.Background(), branchCal))
	require.NoError(t, calendars.Create(context.Background(), positionCal))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	branchAssignment, err := NewAssignment(branchCal.ID, TargetBranch, "branch-1", from, nil, "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), branchAssignment))

	positionAssignment, err := NewAssignment(positionCal.ID, TargetPosition, "position-1", from, nil, "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), positionAssignment))

	// O vínculo do próprio cargo prevalece sobre o da agência
	resolved, err := resolver.Resolve(context.Background(), TargetPosition, "position-1", from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, positionCal.ID, resolved.ID)
}

func TestResolveFallsBackToBankDefault(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	defaultCal := mustCalendar(t, "bank-1", "Expediente padrão", true)
	require.NoError(t, calendars.Create(context.Background(), defaultCal))

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	resolved, err := resolver.Resolve(context.Background(), TargetPosition, "position-1", at)
	require.NoError(t, err)
	assert.Equal(t, defaultCal.ID, resolved.ID)
}

func TestResolveNoCalendarResolved(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := resolver.Resolve(context.Background(), TargetBranch, "branch-1", at)
	assert.ErrorIs(t, err, ErrNoCalendarResolved)
}

func TestResolveIgnoresExpiredWindow(t *testing.T) {
	calendars := newFakeCalendarRepository()
	assignments := newFakeAssignmentRepository()
	resolver := NewResolver(calendars, assignments, testHierarchy())

	cal := mustCalendar(t, "bank-1", "Calendário temporário", false)
	require.NoError(t, calendars.Create(context.Background(), cal))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewAssignment(cal.ID, TargetBranch, "branch-1", from, timePtr(to), "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), a))

	// Dentro da vigência
	resolved, err := resolver.Resolve(context.Background(), TargetBranch, "branch-1", from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, cal.ID, resolved.ID)

	// Após a vigência, sem calendário padrão
	_, err = resolver.Resolve(context.Background(), TargetBranch, "branch-1", to.AddDate(0, 1, 0))
	assert.ErrorIs(t, err, ErrNoCalendarResolved)
}

func TestPickWinner(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, nil, "user-1")
	require.NoError(t, err)

	newer, err := NewAssignment("cal-2", TargetBranch, "branch-1", from.AddDate(0, 1, 0), nil, "user-1")
	require.NoError(t, err)

	// Vence a vigência inicial mais recente
	assert.Equal(t, newer, pickWinner([]*Assignment{older, newer}))
	assert.Equal(t, newer, pickWinner([]*Assignment{newer, older}))

	// Empate na vigência inicial: vence o criado por último
	tied, err := NewAssignment("cal-3", TargetBranch, "branch-1", from.AddDate(0, 1, 0), nil, "user-1")
	require.NoError(t, err)
	tied.CreatedAt = newer.CreatedAt.Add(time.Second)

	assert.Equal(t, tied, pickWinner([]*Assignment{older, newer, tied}))
}

func TestFakeAssignmentCreateRejectsOverlap(t *testing.T) {
	assignments := newFakeAssignmentRepository()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, nil, "user-1")
	require.NoError(t, err)
	require.NoError(t, assignments.Create(context.Background(), a))

	b, err := NewAssignment("cal-2", TargetBranch, "branch-1", from.AddDate(0, 6, 0), nil, "user-1")
	require.NoError(t, err)
	assert.ErrorIs(t, assignments.Create(context.Background(), b), ErrAssignmentOverlap)

	// Alvo diferente não conflita
	c, err := NewAssignment("cal-2", TargetDepartment, "department-1", from, nil, "user-1")
	require.NoError(t, err)
	assert.NoError(t, assignments.Create(context.Background(), c))
}
