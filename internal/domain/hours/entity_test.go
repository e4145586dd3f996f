package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minute, err := MinuteOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minute)
		})
	}
}

func TestNewBranchHours(t *testing.T) {
	t.Run("válido", func(t *testing.T) {
		h, err := NewBranchHours("branch-1", Monday, "09:00", "17:00", false, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "branch-1", h.BranchID)
		assert.Equal(t, Monday, h.DayOfWeek)
		assert.False(t, h.IsOvernight())
	})

	t.Run("agência vazia", func(t *testing.T) {
		_, err := NewBranchHours("", Monday, "09:00", "17:00", false, "user-1")
		assert.ErrorIs(t, err, ErrEmptyBranchID)
	})

	t.Run("dia inválido", func(t *testing.T) {
		_, err := NewBranchHours("branch-1", DayOfWeek("someday"), "09:00", "17:00", false, "user-1")
		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
	})

	t.Run("horários obrigatórios quando aberto", func(t *testing.T) {
		_, err := NewBranchHours("branch-1", Monday, "", "17:00", false, "user-1")
		assert.ErrorIs(t, err, ErrMissingTimes)
	})

	t.Run("horário inválido", func(t *testing.T) {
		_, err := NewBranchHours("branch-1", Monday, "25:00", "17:00", false, "user-1")
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("fechado ignora horários", func(t *testing.T) {
		h, err := NewBranchHours("branch-1", Sunday, "09:00", "17:00", true, "user-1")
		require.NoError(t, err)
		assert.True(t, h.IsClosed)
		assert.Empty(t, h.OpenTime)
		assert.Empty(t, h.CloseTime)
	})
}

func TestIsOvernight(t *testing.T) {
	overnight, err := NewBranchHours("branch-1", Friday, "22:00", "02:00", false, "user-1")
	require.NoError(t, err)
	assert.True(t, overnight.IsOvernight())

	regular, err := NewBranchHours("branch-1", Friday, "09:00", "17:00", false, "user-1")
	require.NoError(t, err)
	assert.False(t, regular.IsOvernight())

	closed, err := NewBranchHours("branch-1", Friday, "", "", true, "user-1")
	require.NoError(t, err)
	assert.False(t, closed.IsOvernight())
}

func TestCoversMinute(t *testing.T) {
	regular, err := NewBranchHours("branch-1", Monday, "09:00", "17:00", false, "user-1")
	require.NoError(t, err)

	assert.False(t, regular.CoversMinute(8*60+59))
	assert.True(t, regular.CoversMinute(9*60))       // abertura inclusiva
	assert.True(t, regular.CoversMinute(12*60))
	assert.False(t, regular.CoversMinute(17*60))     // fechamento exclusivo
	assert.False(t, regular.CoversMinute(23*60))

	overnight, err := NewBranchHours("branch-1", Friday, "22:00", "02:00", false, "user-1")
	require.NoError(t, err)

	// A janela noturna cobre apenas o trecho do próprio dia
	assert.False(t, overnight.CoversMinute(21*60))
	assert.True(t, overnight.CoversMinute(22*60))
	assert.True(t, overnight.CoversMinute(23*60+30))
	assert.False(t, overnight.CoversMinute(1*60))
}

func TestCoversSpillMinute(t *testing.T) {
	overnight, err := NewBranchHours("branch-1", Friday, "22:00", "02:00", false, "user-1")
	require.NoError(t, err)

	// O trecho da madrugada pertence ao registro do dia anterior
	assert.True(t, overnight.CoversSpillMinute(0))
	assert.True(t, overnight.CoversSpillMinute(1*60+59))
	assert.False(t, overnight.CoversSpillMinute(2*60)) // fechamento exclusivo
	assert.False(t, overnight.CoversSpillMinute(12*60))

	regular, err := NewBranchHours("branch-1", Monday, "09:00", "17:00", false, "user-1")
	require.NoError(t, err)
	assert.False(t, regular.CoversSpillMinute(0))
}

func TestDayOfWeekPrevious(t *testing.T) {
	assert.Equal(t, Sunday, Monday.Previous())
	assert.Equal(t, Saturday, Sunday.Previous())
	assert.Equal(t, Thursday, Friday.Previous())
}
