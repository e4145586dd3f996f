package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkingCalendar(t *testing.T) {
	cal, err := NewWorkingCalendar("bank-1", "Calendário Padrão", "Expediente bancário", true, "America/Sao_Paulo", "user-1")
	require.NoError(t, err)
	assert.True(t, cal.IsDefault)
	assert.True(t, cal.IsActive)
	assert.Equal(t, "America/Sao_Paulo", cal.TimeZoneID)

	_, err = NewWorkingCalendar("", "Calendário Padrão", "", false, "", "user-1")
	assert.ErrorIs(t, err, ErrEmptyBankID)

	_, err = NewWorkingCalendar("bank-1", "", "", false, "", "user-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewWorkingCalendar("bank-1", "Calendário Padrão", "", false, "Marte/Olympus", "user-1")
	assert.ErrorIs(t, err, ErrInvalidTimeZone)
}

func TestWorkingCalendarUpdate(t *testing.T) {
	cal, err := NewWorkingCalendar("bank-1", "Calendário Padrão", "", false, "", "user-1")
	require.NoError(t, err)

	require.NoError(t, cal.Update("Calendário Estendido", "Com horário noturno", true, "America/Manaus", "user-2"))
	assert.Equal(t, "Calendário Estendido", cal.Name)
	assert.True(t, cal.IsDefault)
	assert.Equal(t, "user-2", cal.UpdatedBy)

	assert.ErrorIs(t, cal.Update("", "", false, "", "user-2"), ErrEmptyName)
	assert.ErrorIs(t, cal.Update("Calendário", "", false, "Fuso/Inexistente", "user-2"), ErrInvalidTimeZone)
}
