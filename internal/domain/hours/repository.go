package hours

import (
	"context"
)

// Repository define as operações de persistência para horários de funcionamento
type Repository interface {
	// Upsert substitui o registro do par (agência, dia). Nunca acumula
	// registros para o mesmo dia.
	Upsert(ctx context.Context, hours *BranchHours) error

	// FindByBranchAndDay busca o horário de uma agência em um dia da semana
	FindByBranchAndDay(ctx context.Context, branchID string, day DayOfWeek) (*BranchHours, error)

	// ListByBranch retorna todos os horários cadastrados de uma agência
	ListByBranch(ctx context.Context, branchID string) ([]*BranchHours, error)
}
