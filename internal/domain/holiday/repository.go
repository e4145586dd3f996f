package holiday

import (
	"context"
	"errors"
)

// ErrNotFound é retornado quando o feriado não existe
var ErrNotFound = errors.New("feriado não encontrado")

// Repository define as operações de persistência para feriados
type Repository interface {
	// Create persiste um novo feriado
	Create(ctx context.Context, holiday *Holiday) error

	// FindByID busca um feriado pelo ID
	FindByID(ctx context.Context, id string) (*Holiday, error)

	// ListActiveByBank retorna os feriados ativos no escopo de um banco
	ListActiveByBank(ctx context.Context, bankID string) ([]*Holiday, error)

	// ListActiveByBranch retorna os feriados ativos no escopo de uma agência
	ListActiveByBranch(ctx context.Context, branchID string) ([]*Holiday, error)

	// ListByBank retorna uma lista paginada de feriados do banco, incluindo os de agências
	ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*Holiday, error)

	// CountByBank retorna o número total de feriados do banco
	CountByBank(ctx context.Context, bankID string) (int, error)

	// UpdateStatus ativa ou desativa um feriado
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
