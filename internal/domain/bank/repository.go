package bank

import (
	"context"
)

// Repository define as operações de persistência para bancos
type Repository interface {
	// Create persiste um novo banco
	Create(ctx context.Context, bank *Bank) error

	// FindByID busca um banco pelo ID
	FindByID(ctx context.Context, id string) (*Bank, error)

	// FindByCode busca um banco pelo código (comparação exata, sensível a maiúsculas)
	FindByCode(ctx context.Context, code string) (*Bank, error)

	// Update atualiza um banco existente (substituição completa do registro)
	Update(ctx context.Context, bank *Bank) error

	// List retorna uma lista paginada de bancos
	List(ctx context.Context, limit, offset int) ([]*Bank, error)

	// Count retorna o número total de bancos
	Count(ctx context.Context) (int, error)

	// UpdateStatus ativa ou desativa um banco
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error

	// Exists verifica se um banco existe pelo ID
	Exists(ctx context.Context, id string) (bool, error)
}
