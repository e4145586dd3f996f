package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewAssignment(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("válido com vigência fechada", func(t *testing.T) {
		a, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, timePtr(to), "user-1")
		require.NoError(t, err)
		assert.Equal(t, TargetBranch, a.TargetType())
		assert.Equal(t, "branch-1", a.TargetID())
		require.NotNil(t, a.BranchID)
		assert.Nil(t, a.DepartmentID)
		assert.Nil(t, a.PositionID)
	})

	t.Run("válido com vigência em aberto", func(t *testing.T) {
		a, err := NewAssignment("cal-1", TargetPosition, "position-1", from, nil, "user-1")
		require.NoError(t, err)
		assert.Equal(t, TargetPosition, a.TargetType())
		assert.Nil(t, a.EffectiveTo)
	})

	t.Run("calendário vazio", func(t *testing.T) {
		_, err := NewAssignment("", TargetBranch, "branch-1", from, nil, "user-1")
		assert.ErrorIs(t, err, ErrEmptyCalendarID)
	})

	t.Run("tipo de alvo inválido", func(t *testing.T) {
		_, err := NewAssignment("cal-1", TargetType("bank"), "bank-1", from, nil, "user-1")
		assert.ErrorIs(t, err, ErrInvalidTargetType)
	})

	t.Run("alvo vazio", func(t *testing.T) {
		_, err := NewAssignment("cal-1", TargetDepartment, "", from, nil, "user-1")
		assert.ErrorIs(t, err, ErrEmptyTargetID)
	})

	t.Run("vigência invertida", func(t *testing.T) {
		_, err := NewAssignment("cal-1", TargetBranch, "branch-1", to, timePtr(from), "user-1")
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("vigência de duração zero", func(t *testing.T) {
		_, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, timePtr(from), "user-1")
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestAssignmentCovers(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	closed, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, timePtr(to), "user-1")
	require.NoError(t, err)

	assert.False(t, closed.Covers(from.Add(-time.Second)))
	assert.True(t, closed.Covers(from)) // início inclusivo
	assert.True(t, closed.Covers(from.AddDate(0, 2, 0)))
	assert.False(t, closed.Covers(to)) // fim exclusivo

	open, err := NewAssignment("cal-1", TargetBranch, "branch-1", from, nil, "user-1")
	require.NoError(t, err)

	assert.True(t, open.Covers(to.AddDate(10, 0, 0)))
	assert.False(t, open.Covers(from.Add(-time.Second)))
}

func TestAssignmentOverlaps(t *testing.T) {
	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing, err := NewAssignment("cal-1", TargetBranch, "branch-1", mar, timePtr(jun), "user-1")
	require.NoError(t, err)

	// Janela inteiramente antes
	assert.False(t, existing.Overlaps(jan, timePtr(mar)))

	// Janela inteiramente depois
	assert.False(t, existing.Overlaps(jun, timePtr(sep)))

	// Sobreposição parcial
	assert.True(t, existing.Overlaps(jan, timePtr(mar.AddDate(0, 1, 0))))
	assert.True(t, existing.Overlaps(jun.AddDate(0, -1, 0), timePtr(sep)))

	// Janela nova em aberto começando antes do fim do vínculo
	assert.True(t, existing.Overlaps(jan, nil))

	// Janela nova em aberto começando após o fim do vínculo
	assert.False(t, existing.Overlaps(jun, nil))

	openEnded, err := NewAssignment("cal-1", TargetBranch, "branch-1", mar, nil, "user-1")
	require.NoError(t, err)

	// Vigência em aberto se estende indefinidamente
	assert.True(t, openEnded.Overlaps(sep, nil))
	assert.True(t, openEnded.Overlaps(jun, timePtr(sep)))
	assert.False(t, openEnded.Overlaps(jan, timePtr(mar)))
}
