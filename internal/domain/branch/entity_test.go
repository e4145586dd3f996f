package branch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBranch(t *testing.T) *Branch {
	t.Helper()

	b, err := NewBranch("bank-1", nil, "AG-0001", "Agência Centro", -23.55, -46.63,
		Address{City: "São Paulo", State: "SP"}, "11 4002-8922", "centro@banco.example",
		time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), "user-1")
	require.NoError(t, err)
	return b
}

func TestNewBranch(t *testing.T) {
	b := validBranch(t)
	assert.True(t, b.IsActive)
	assert.Nil(t, b.RegionID)
	assert.Nil(t, b.ClosedAt)

	_, err := NewBranch("", nil, "AG-0001", "Agência Centro", 0, 0, Address{}, "", "", time.Now(), "user-1")
	assert.ErrorIs(t, err, ErrEmptyBankID)

	_, err = NewBranch("bank-1", nil, "", "Agência Centro", 0, 0, Address{}, "", "", time.Now(), "user-1")
	assert.ErrorIs(t, err, ErrEmptyCode)

	_, err = NewBranch("bank-1", nil, "AG-0001", "", 0, 0, Address{}, "", "", time.Now(), "user-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewBranch("bank-1", nil, "AG-0001", "Agência Centro", 91, 0, Address{}, "", "", time.Now(), "user-1")
	assert.ErrorIs(t, err, ErrInvalidLatitude)

	_, err = NewBranch("bank-1", nil, "AG-0001", "Agência Centro", 0, -181, Address{}, "", "", time.Now(), "user-1")
	assert.ErrorIs(t, err, ErrInvalidLongitude)
}

func TestBranchClose(t *testing.T) {
	b := validBranch(t)

	closedAt := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.Close(closedAt, "user-2"))

	assert.False(t, b.IsActive)
	require.NotNil(t, b.ClosedAt)
	assert.Equal(t, closedAt, *b.ClosedAt)
	assert.Equal(t, "user-2", b.UpdatedBy)
}

func TestBranchCloseBeforeOpen(t *testing.T) {
	b := validBranch(t)

	err := b.Close(b.OpenedAt.AddDate(-1, 0, 0), "user-2")
	assert.ErrorIs(t, err, ErrClosedBeforeOpen)
	assert.True(t, b.IsActive)
	assert.Nil(t, b.ClosedAt)
}

func TestBranchUpdate(t *testing.T) {
	b := validBranch(t)

	regionID := "region-1"
	require.NoError(t, b.Update(&regionID, "AG-0002", "Agência Paulista", -23.56, -46.65,
		Address{City: "São Paulo"}, "", "", "user-2"))

	assert.Equal(t, "AG-0002", b.Code)
	require.NotNil(t, b.RegionID)
	assert.Equal(t, "region-1", *b.RegionID)

	assert.ErrorIs(t, b.Update(nil, "", "Agência Paulista", 0, 0, Address{}, "", "", "user-2"), ErrEmptyCode)
}
