package user

import (
	"context"
	"time"
)

// Repository define as operações de persistência para usuários
type Repository interface {
	// Create persiste um novo usuário
	Create(ctx context.Context, user *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo e-mail
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ListByBank retorna os usuários de um banco em ordem de inserção
	ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*User, error)

	// UpdateLastLogin registra o instante do último login do usuário
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// UpdateStatus ativa ou desativa um usuário
	UpdateStatus(ctx context.Context, id string, isActive bool) error
}
