package department

import (
	"context"
)

// Repository define as operações de persistência para departamentos
type Repository interface {
	// Create persiste um novo departamento
	Create(ctx context.Context, department *Department) error

	// FindByID busca um departamento pelo ID
	FindByID(ctx context.Context, id string) (*Department, error)

	// Update atualiza um departamento existente
	Update(ctx context.Context, department *Department) error

	// ListByBranch retorna os departamentos de uma agência em ordem de inserção
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Department, error)

	// CountByBranch retorna o número total de departamentos de uma agência
	CountByBranch(ctx context.Context, branchID string) (int, error)

	// UpdateStatus ativa ou desativa um departamento
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
