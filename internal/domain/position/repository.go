package position

import (
	"context"
)

// Repository define as operações de persistência para cargos
type Repository interface {
	// Create persiste um novo cargo
	Create(ctx context.Context, position *Position) error

	// FindByID busca um cargo pelo ID
	FindByID(ctx context.Context, id string) (*Position, error)

	// Update atualiza um cargo existente
	Update(ctx context.Context, position *Position) error

	// ListByDepartment retorna os cargos de um departamento em ordem de inserção
	ListByDepartment(ctx context.Context, departmentID string, limit, offset int) ([]*Position, error)

	// CountByDepartment retorna o número total de cargos de um departamento
	CountByDepartment(ctx context.Context, departmentID string) (int, error)

	// UpdateStatus ativa ou desativa um cargo
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
