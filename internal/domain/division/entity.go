package division

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBankID = errors.New("ID do banco não pode ser vazio")
	ErrEmptyCode   = errors.New("código da diretoria não pode ser vazio")
	ErrEmptyName   = errors.New("nome da diretoria não pode ser vazio")
)

// Division representa uma diretoria do banco (primeiro nível abaixo da instituição)
type Division struct {
	ID        string    `json:"id"`
	BankID    string    `json:"bank_id"`
	Code      string    `json:"code"` // Único dentro do banco
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// NewDivision cria uma nova diretoria
func NewDivision(bankID, code, name, createdBy string) (*Division, error) {
	if bankID == "" {
		return nil, ErrEmptyBankID
	}

	if code == "" {
		return nil, ErrEmptyCode
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Division{
		ID:        uuid.New().String(),
		BankID:    bankID,
		Code:      code,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}, nil
}

// Update atualiza os dados da diretoria
func (d *Division) Update(code, name, updatedBy string) error {
	if code == "" {
		return ErrEmptyCode
	}

	if name == "" {
		return ErrEmptyName
	}

	d.Code = code
	d.Name = name
	d.UpdatedAt = time.Now()
	d.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa a diretoria (soft delete)
func (d *Division) Deactivate(updatedBy string) {
	d.IsActive = false
	d.UpdatedAt = time.Now()
	d.UpdatedBy = updatedBy
}
