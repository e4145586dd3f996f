package department

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBranchID = errors.New("ID da agência não pode ser vazio")
	ErrEmptyName     = errors.New("nome do departamento não pode ser vazio")
)

// Department representa um departamento dentro de uma agência
type Department struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// NewDepartment cria um novo departamento
func NewDepartment(branchID, name, createdBy string) (*Department, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Department{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}, nil
}

// Update atualiza os dados do departamento
func (d *Department) Update(name, updatedBy string) error {
	if name == "" {
		return ErrEmptyName
	}

	d.Name = name
	d.UpdatedAt = time.Now()
	d.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa o departamento (soft delete)
func (d *Department) Deactivate(updatedBy string) {
	d.IsActive = false
	d.UpdatedAt = time.Now()
	d.UpdatedBy = updatedBy
}
