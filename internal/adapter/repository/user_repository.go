package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/user"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo e-mail já existe")
)

// PostgresUserRepository implementa a interface user.Repository usando PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository cria uma nova instância de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if err := requireActiveParent(ctx, conn, "banks", u.BankID); err != nil {
		return err
	}

	query := `
		INSERT INTO users (
			id, bank_id, name, email, password, role, is_active,
			last_login_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10
		)
	`

	_, err = conn.Exec(ctx, query,
		u.ID,
		u.BankID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Role),
		u.IsActive,
		u.LastLoginAt,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return ErrUserDuplicateKey
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findUserByQuery(ctx, conn, selectUserQuery+" WHERE id = $1", id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findUserByQuery(ctx, conn, selectUserQuery+" WHERE email = $1", email)
}

const selectUserQuery = `
	SELECT
		id, bank_id, name, email, password, role, is_active,
		last_login_at, created_at, updated_at
	FROM users
`

func (r *PostgresUserRepository) findUserByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*user.User, error) {
	u := &user.User{}
	var role string

	err := conn.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.BankID,
		&u.Name,
		&u.Email,
		&u.Password,
		&role,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	u.Role = user.Role(role)

	return u, nil
}

// ListByBank implementa user.Repository.ListByBank
func (r *PostgresUserRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectUserQuery+" WHERE bank_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		bankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u := &user.User{}
		var role string

		err := rows.Scan(
			&u.ID,
			&u.BankID,
			&u.Name,
			&u.Email,
			&u.Password,
			&role,
			&u.IsActive,
			&u.LastLoginAt,
			&u.CreatedAt,
			&u.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}

		u.Role = user.Role(role)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return users, nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE users SET last_login_at = $1, updated_at = $2 WHERE id = $3",
		at, time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao registrar último login: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateStatus implementa user.Repository.UpdateStatus
func (r *PostgresUserRepository) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3",
		isActive, time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
