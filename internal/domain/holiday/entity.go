package holiday

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyScope  = errors.New("feriado deve pertencer a um banco ou a uma agência")
	ErrDoubleScope = errors.New("feriado não pode pertencer a um banco e a uma agência ao mesmo tempo")
	ErrEmptyName   = errors.New("nome do feriado não pode ser vazio")
	ErrZeroDate    = errors.New("data do feriado não pode ser vazia")
)

// Holiday representa uma exceção de calendário de um banco ou de uma agência.
// Feriados de agência têm precedência sobre feriados do banco na mesma data.
type Holiday struct {
	ID          string    `json:"id"`
	BankID      *string   `json:"bank_id,omitempty"`
	BranchID    *string   `json:"branch_id,omitempty"`
	CountryID   string    `json:"country_id,omitempty"`
	Date        time.Time `json:"date"` // Somente a parte de data é considerada
	Name        string    `json:"name"`
	IsRecurring bool      `json:"is_recurring"` // Recorrente anualmente (mês e dia)
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// NewBankHoliday cria um feriado no escopo de um banco
func NewBankHoliday(bankID, countryID string, date time.Time, name string, isRecurring bool, createdBy string) (*Holiday, error) {
	if bankID == "" {
		return nil, ErrEmptyScope
	}

	return newHoliday(&bankID, nil, countryID, date, name, isRecurring, createdBy)
}

// NewBranchHoliday cria um feriado no escopo de uma agência
func NewBranchHoliday(branchID, countryID string, date time.Time, name string, isRecurring bool, createdBy string) (*Holiday, error) {
	if branchID == "" {
		return nil, ErrEmptyScope
	}

	return newHoliday(nil, &branchID, countryID, date, name, isRecurring, createdBy)
}

func newHoliday(bankID, branchID *string, countryID string, date time.Time, name string, isRecurring bool, createdBy string) (*Holiday, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if date.IsZero() {
		return nil, ErrZeroDate
	}

	now := time.Now()
	return &Holiday{
		ID:          uuid.New().String(),
		BankID:      bankID,
		BranchID:    branchID,
		CountryID:   countryID,
		Date:        date,
		Name:        name,
		IsRecurring: isRecurring,
		IsActive:    true,
		CreatedAt:   now,
		CreatedBy:   createdBy,
		UpdatedAt:   now,
		UpdatedBy:   createdBy,
	}, nil
}

// Matches informa se o feriado incide sobre a data consultada.
// Feriados recorrentes comparam apenas mês e dia; os demais exigem a data exata.
func (h *Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}

	y1, m1, d1 := h.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Deactivate desativa o feriado (soft delete)
func (h *Holiday) Deactivate(updatedBy string) {
	h.IsActive = false
	h.UpdatedAt = time.Now()
	h.UpdatedBy = updatedBy
}
