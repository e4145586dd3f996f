package division

import (
	"context"
)

// Repository define as operações de persistência para diretorias
type Repository interface {
	// Create persiste uma nova diretoria
	Create(ctx context.Context, division *Division) error

	// FindByID busca uma diretoria pelo ID
	FindByID(ctx context.Context, id string) (*Division, error)

	// FindByBankAndCode busca uma diretoria pelo código dentro de um banco
	FindByBankAndCode(ctx context.Context, bankID, code string) (*Division, error)

	// Update atualiza uma diretoria existente
	Update(ctx context.Context, division *Division) error

	// ListByBank retorna as diretorias de um banco em ordem de inserção
	ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*Division, error)

	// CountByBank retorna o número total de diretorias de um banco
	CountByBank(ctx context.Context, bankID string) (int, error)

	// UpdateStatus ativa ou desativa uma diretoria
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
