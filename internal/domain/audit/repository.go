package audit

import (
	"context"
	"time"
)

// Repository define as operações de persistência para a trilha de auditoria.
// Não há atualização nem exclusão: a trilha é somente de acréscimo.
type Repository interface {
	// Record insere um novo registro na trilha
	Record(ctx context.Context, log *Log) error

	// ListByBank retorna os registros do escopo de um banco, opcionalmente
	// filtrados por intervalo de datas, do mais recente para o mais antigo
	ListByBank(ctx context.Context, bankID string, from, to *time.Time, limit, offset int) ([]*Log, error)

	// ListByBranch retorna os registros do escopo de uma agência, opcionalmente
	// filtrados por intervalo de datas, do mais recente para o mais antigo
	ListByBranch(ctx context.Context, branchID string, from, to *time.Time, limit, offset int) ([]*Log, error)

	// CountByBank retorna o número de registros do escopo de um banco
	CountByBank(ctx context.Context, bankID string, from, to *time.Time) (int, error)

	// CountByBranch retorna o número de registros do escopo de uma agência
	CountByBranch(ctx context.Context, branchID string, from, to *time.Time) (int, error)
}
