package region

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDivisionID = errors.New("ID da diretoria não pode ser vazio")
	ErrEmptyCode       = errors.New("código da regional não pode ser vazio")
	ErrEmptyName       = errors.New("nome da regional não pode ser vazio")
)

// Region representa uma regional, agrupamento de agências dentro de uma diretoria
type Region struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"division_id"`
	Code       string    `json:"code"` // Único dentro da diretoria
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedBy  string    `json:"updated_by"`
}

// NewRegion cria uma nova regional
func NewRegion(divisionID, code, name, createdBy string) (*Region, error) {
	if divisionID == "" {
		return nil, ErrEmptyDivisionID
	}

	if code == "" {
		return nil, ErrEmptyCode
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Region{
		ID:         uuid.New().String(),
		DivisionID: divisionID,
		Code:       code,
		Name:       name,
		IsActive:   true,
		CreatedAt:  now,
		CreatedBy:  createdBy,
		UpdatedAt:  now,
		UpdatedBy:  createdBy,
	}, nil
}

// Update atualiza os dados da regional
func (r *Region) Update(code, name, updatedBy string) error {
	if code == "" {
		return ErrEmptyCode
	}

	if name == "" {
		return ErrEmptyName
	}

	r.Code = code
	r.Name = name
	r.UpdatedAt = time.Now()
	r.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa a regional (soft delete)
func (r *Region) Deactivate(updatedBy string) {
	r.IsActive = false
	r.UpdatedAt = time.Now()
	r.UpdatedBy = updatedBy
}
