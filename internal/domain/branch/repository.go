package branch

import (
	"context"
)

// Repository define as operações de persistência para agências
type Repository interface {
	// Create persiste uma nova agência
	Create(ctx context.Context, branch *Branch) error

	// FindByID busca uma agência pelo ID
	FindByID(ctx context.Context, id string) (*Branch, error)

	// FindByBankAndCode busca uma agência pelo código dentro de um banco
	FindByBankAndCode(ctx context.Context, bankID, code string) (*Branch, error)

	// Update atualiza uma agência existente
	Update(ctx context.Context, branch *Branch) error

	// ListByBank retorna as agências de um banco em ordem de inserção
	ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*Branch, error)

	// ListByRegion retorna as agências de uma regional em ordem de inserção
	ListByRegion(ctx context.Context, regionID string, limit, offset int) ([]*Branch, error)

	// CountByBank retorna o número total de agências de um banco
	CountByBank(ctx context.Context, bankID string) (int, error)

	// UpdateStatus ativa ou desativa uma agência
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error

	// Exists verifica se uma agência existe pelo ID
	Exists(ctx context.Context, id string) (bool, error)
}
