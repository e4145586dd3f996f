package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/division"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrDivisionNotFound     = errors.New("diretoria não encontrada")
	ErrDivisionDuplicateKey = errors.New("diretoria com mesmo código já existe para este banco")
)

// PostgresDivisionRepository implementa a interface division.Repository usando PostgreSQL
type PostgresDivisionRepository struct {
	db *database.PostgresDB
}

// NewPostgresDivisionRepository cria uma nova instância de PostgresDivisionRepository
func NewPostgresDivisionRepository(db *database.PostgresDB) *PostgresDivisionRepository {
	return &PostgresDivisionRepository{
		db: db,
	}
}

// Create implementa division.Repository.Create
func (r *PostgresDivisionRepository) Create(ctx context.Context, d *division.Division) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// O banco pai precisa existir e estar ativo
	if err := requireActiveParent(ctx, conn, "banks", d.BankID); err != nil {
		return err
	}

	query := `
		INSERT INTO bank_divisions (
			id, bank_id, code, name, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9
		)
	`

	_, err = conn.Exec(ctx, query,
		d.ID,
		d.BankID,
		d.Code,
		d.Name,
		d.IsActive,
		d.CreatedAt,
		d.CreatedBy,
		d.UpdatedAt,
		d.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return ErrDivisionDuplicateKey
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
		}
		return fmt.Errorf("falha ao inserir diretoria: %w", err)
	}

	return nil
}

// FindByID implementa division.Repository.FindByID
func (r *PostgresDivisionRepository) FindByID(ctx context.Context, id string) (*division.Division, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findDivisionByQuery(ctx, conn, selectDivisionQuery+" WHERE id = $1", id)
}

// FindByBankAndCode implementa division.Repository.FindByBankAndCode
func (r *PostgresDivisionRepository) FindByBankAndCode(ctx context.Context, bankID, code string) (*division.Division, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findDivisionByQuery(ctx, conn, selectDivisionQuery+" WHERE bank_id = $1 AND code = $2", bankID, code)
}

const selectDivisionQuery = `
	SELECT
		id, bank_id, code, name, is_active,
		created_at, created_by, updated_at, updated_by
	FROM bank_divisions
`

func (r *PostgresDivisionRepository) findDivisionByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*division.Division, error) {
	d := &division.Division{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&d.ID,
		&d.BankID,
		&d.Code,
		&d.Name,
		&d.IsActive,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.UpdatedAt,
		&d.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDivisionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar diretoria: %w", err)
	}

	return d, nil
}

// Update implementa division.Repository.Update
func (r *PostgresDivisionRepository) Update(ctx context.Context, d *division.Division) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE bank_divisions
		SET
			code = $1,
			name = $2,
			updated_at = $3,
			updated_by = $4
		WHERE
			id = $5
	`

	result, err := conn.Exec(ctx, query,
		d.Code,
		d.Name,
		time.Now(),
		d.UpdatedBy,
		d.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrDivisionDuplicateKey
		}
		return fmt.Errorf("falha ao atualizar diretoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDivisionNotFound
	}

	return nil
}

// ListByBank implementa division.Repository.ListByBank
func (r *PostgresDivisionRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*division.Division, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectDivisionQuery+" WHERE bank_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		bankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar diretorias: %w", err)
	}
	defer rows.Close()

	var divisions []*division.Division

	for rows.Next() {
		d := &division.Division{}

		err := rows.Scan(
			&d.ID,
			&d.BankID,
			&d.Code,
			&d.Name,
			&d.IsActive,
			&d.CreatedAt,
			&d.CreatedBy,
			&d.UpdatedAt,
			&d.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler diretoria: %w", err)
		}

		divisions = append(divisions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return divisions, nil
}

// CountByBank implementa division.Repository.CountByBank
func (r *PostgresDivisionRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM bank_divisions WHERE bank_id = $1", bankID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar diretorias: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa division.Repository.UpdateStatus
func (r *PostgresDivisionRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE bank_divisions SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da diretoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDivisionNotFound
	}

	return nil
}

// requireActiveParent verifica se a entidade pai existe e está ativa
func requireActiveParent(ctx context.Context, conn *pgxpool.Conn, table, id string) error {
	var isActive bool
	err := conn.QueryRow(ctx, fmt.Sprintf("SELECT is_active FROM %s WHERE id = $1", table), id).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidParent
		}
		return fmt.Errorf("falha ao verificar entidade pai: %w", err)
	}

	if !isActive {
		return ErrInvalidParent
	}

	return nil
}
