package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankHoliday(t *testing.T) {
	date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)

	h, err := NewBankHoliday("bank-1", "BR", date, "Natal", true, "user-1")
	require.NoError(t, err)
	require.NotNil(t, h.BankID)
	assert.Equal(t, "bank-1", *h.BankID)
	assert.Nil(t, h.BranchID)
	assert.True(t, h.IsActive)

	_, err = NewBankHoliday("", "BR", date, "Natal", true, "user-1")
	assert.ErrorIs(t, err, ErrEmptyScope)

	_, err = NewBankHoliday("bank-1", "BR", date, "", true, "user-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewBankHoliday("bank-1", "BR", time.Time{}, "Natal", true, "user-1")
	assert.ErrorIs(t, err, ErrZeroDate)
}

func TestNewBranchHoliday(t *testing.T) {
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	h, err := NewBranchHoliday("branch-1", "BR", date, "Aniversário da cidade", false, "user-1")
	require.NoError(t, err)
	require.NotNil(t, h.BranchID)
	assert.Equal(t, "branch-1", *h.BranchID)
	assert.Nil(t, h.BankID)

	_, err = NewBranchHoliday("", "BR", date, "Aniversário da cidade", false, "user-1")
	assert.ErrorIs(t, err, ErrEmptyScope)
}

func TestMatchesExactDate(t *testing.T) {
	h, err := NewBankHoliday("bank-1", "BR", time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC), "Tiradentes", false, "user-1")
	require.NoError(t, err)

	assert.True(t, h.Matches(time.Date(2026, 4, 21, 15, 30, 0, 0, time.UTC)))
	assert.False(t, h.Matches(time.Date(2027, 4, 21, 0, 0, 0, 0, time.UTC))) // outro ano, não recorrente
	assert.False(t, h.Matches(time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC)))
}

func TestMatchesRecurring(t *testing.T) {
	h, err := NewBankHoliday("bank-1", "BR", time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC), "Natal", true, "user-1")
	require.NoError(t, err)

	// Recorrente incide no mesmo mês e dia em qualquer ano
	assert.True(t, h.Matches(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, h.Matches(time.Date(2030, 12, 25, 8, 0, 0, 0, time.UTC)))
	assert.False(t, h.Matches(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.Matches(time.Date(2026, 11, 25, 0, 0, 0, 0, time.UTC)))
}

func TestDeactivate(t *testing.T) {
	h, err := NewBankHoliday("bank-1", "BR", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "Natal", true, "user-1")
	require.NoError(t, err)

	h.Deactivate("user-2")
	assert.False(t, h.IsActive)
	assert.Equal(t, "user-2", h.UpdatedBy)
}
