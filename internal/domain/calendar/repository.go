package calendar

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDefaultAlreadyExists é retornado ao marcar um segundo calendário como padrão do banco
	ErrDefaultAlreadyExists = errors.New("banco já possui um calendário de trabalho padrão")

	// ErrAssignmentNotFound é retornado quando o vínculo não existe
	ErrAssignmentNotFound = errors.New("vínculo de calendário não encontrado")

	// ErrAssignmentOverlap é retornado quando a vigência do novo vínculo
	// se sobrepõe à de um vínculo ativo do mesmo alvo
	ErrAssignmentOverlap = errors.New("vigência se sobrepõe a um vínculo ativo do mesmo alvo")
)

// Repository define as operações de persistência para calendários de trabalho
type Repository interface {
	// Create persiste um novo calendário
	Create(ctx context.Context, calendar *WorkingCalendar) error

	// FindByID busca um calendário pelo ID
	FindByID(ctx context.Context, id string) (*WorkingCalendar, error)

	// FindDefaultByBank busca o calendário padrão do banco.
	// Retorna ErrNoDefault quando o banco não tem calendário padrão ativo.
	FindDefaultByBank(ctx context.Context, bankID string) (*WorkingCalendar, error)

	// Update atualiza um calendário existente
	Update(ctx context.Context, calendar *WorkingCalendar) error

	// ListByBank retorna os calendários de um banco em ordem de inserção
	ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*WorkingCalendar, error)

	// CountByBank retorna o número total de calendários de um banco
	CountByBank(ctx context.Context, bankID string) (int, error)

	// UpdateStatus ativa ou desativa um calendário
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}

// AssignmentRepository define as operações de persistência para vínculos de calendário
type AssignmentRepository interface {
	// Create persiste um novo vínculo. A verificação de sobreposição de
	// vigência com vínculos ativos do mesmo alvo é feita na mesma transação
	// serializável; sobreposição retorna ErrAssignmentOverlap.
	Create(ctx context.Context, assignment *Assignment) error

	// FindByID busca um vínculo pelo ID
	FindByID(ctx context.Context, id string) (*Assignment, error)

	// FindActiveAt retorna os vínculos ativos de um alvo cuja vigência cobre o instante
	FindActiveAt(ctx context.Context, targetType TargetType, targetID string, at time.Time) ([]*Assignment, error)

	// ListByTarget retorna todos os vínculos de um alvo em ordem de inserção
	ListByTarget(ctx context.Context, targetType TargetType, targetID string) ([]*Assignment, error)

	// UpdateStatus ativa ou desativa um vínculo
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
