package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBankID     = errors.New("ID do banco não pode ser vazio")
	ErrEmptyName       = errors.New("nome do calendário não pode ser vazio")
	ErrInvalidTimeZone = errors.New("fuso horário do calendário é inválido")

	// ErrNotFound é retornado quando o calendário não existe
	ErrNotFound = errors.New("calendário de trabalho não encontrado")

	// ErrNoDefault é retornado quando o banco não possui calendário padrão
	ErrNoDefault = errors.New("banco não possui calendário de trabalho padrão")
)

// WorkingCalendar representa um calendário de trabalho nomeado de um banco.
// O calendário é um rótulo com fuso horário; as regras de horário permanecem
// nos horários de funcionamento de cada agência.
type WorkingCalendar struct {
	ID          string    `json:"id"`
	BankID      string    `json:"bank_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"` // No máximo um calendário padrão por banco
	TimeZoneID  string    `json:"time_zone_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// NewWorkingCalendar cria um novo calendário de trabalho
func NewWorkingCalendar(bankID, name, description string, isDefault bool, timeZoneID, createdBy string) (*WorkingCalendar, error) {
	if bankID == "" {
		return nil, ErrEmptyBankID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if timeZoneID != "" {
		if _, err := time.LoadLocation(timeZoneID); err != nil {
			return nil, ErrInvalidTimeZone
		}
	}

	now := time.Now()
	return &WorkingCalendar{
		ID:          uuid.New().String(),
		BankID:      bankID,
		Name:        name,
		Description: description,
		IsDefault:   isDefault,
		TimeZoneID:  timeZoneID,
		IsActive:    true,
		CreatedAt:   now,
		CreatedBy:   createdBy,
		UpdatedAt:   now,
		UpdatedBy:   createdBy,
	}, nil
}

// Update atualiza os dados do calendário
func (c *WorkingCalendar) Update(name, description string, isDefault bool, timeZoneID, updatedBy string) error {
	if name == "" {
		return ErrEmptyName
	}

	if timeZoneID != "" {
		if _, err := time.LoadLocation(timeZoneID); err != nil {
			return ErrInvalidTimeZone
		}
	}

	c.Name = name
	c.Description = description
	c.IsDefault = isDefault
	c.TimeZoneID = timeZoneID
	c.UpdatedAt = time.Now()
	c.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa o calendário (soft delete)
func (c *WorkingCalendar) Deactivate(updatedBy string) {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.UpdatedBy = updatedBy
}
