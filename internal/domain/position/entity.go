package position

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDepartmentID = errors.New("ID do departamento não pode ser vazio")
	ErrEmptyTitle        = errors.New("título do cargo não pode ser vazio")
)

// Position representa um cargo dentro de um departamento
type Position struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Title        string    `json:"title"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedBy    string    `json:"updated_by"`
}

// NewPosition cria um novo cargo
func NewPosition(departmentID, title, createdBy string) (*Position, error) {
	if departmentID == "" {
		return nil, ErrEmptyDepartmentID
	}

	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now()
	return &Position{
		ID:           uuid.New().String(),
		DepartmentID: departmentID,
		Title:        title,
		IsActive:     true,
		CreatedAt:    now,
		CreatedBy:    createdBy,
		UpdatedAt:    now,
		UpdatedBy:    createdBy,
	}, nil
}

// Update atualiza os dados do cargo
func (p *Position) Update(title, updatedBy string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	p.Title = title
	p.UpdatedAt = time.Now()
	p.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa o cargo (soft delete)
func (p *Position) Deactivate(updatedBy string) {
	p.IsActive = false
	p.UpdatedAt = time.Now()
	p.UpdatedBy = updatedBy
}
