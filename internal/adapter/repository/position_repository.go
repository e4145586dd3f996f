package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/position"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrPositionNotFound é retornado quando o cargo não existe
var ErrPositionNotFound = errors.New("cargo não encontrado")

// PostgresPositionRepository implementa a interface position.Repository usando PostgreSQL
type PostgresPositionRepository struct {
	db *database.PostgresDB
}

// NewPostgresPositionRepository cria uma nova instância de PostgresPositionRepository
func NewPostgresPositionRepository(db *database.PostgresDB) *PostgresPositionRepository {
	return &PostgresPositionRepository{
		db: db,
	}
}

// Create implementa position.Repository.Create
func (r *PostgresPositionRepository) Create(ctx context.Context, p *position.Position) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// O departamento pai precisa existir e estar ativo
	if err := requireActiveParent(ctx, conn, "branch_departments", p.DepartmentID); err != nil {
		return err
	}

	query := `
		INSERT INTO branch_positions (
			id, department_id, title, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8
		)
	`

	_, err = conn.Exec(ctx, query,
		p.ID,
		p.DepartmentID,
		p.Title,
		p.IsActive,
		p.CreatedAt,
		p.CreatedBy,
		p.UpdatedAt,
		p.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return ErrInvalidParent
		}
		return fmt.Errorf("falha ao inserir cargo: %w", err)
	}

	return nil
}

// FindByID implementa position.Repository.FindByID
func (r *PostgresPositionRepository) FindByID(ctx context.Context, id string) (*position.Position, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	p := &position.Position{}

	err = conn.QueryRow(ctx, selectPositionQuery+" WHERE id = $1", id).Scan(
		&p.ID,
		&p.DepartmentID,
		&p.Title,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.UpdatedAt,
		&p.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar cargo: %w", err)
	}

	return p, nil
}

const selectPositionQuery = `
	SELECT
		id, department_id, title, is_active,
		created_at, created_by, updated_at, updated_by
	FROM branch_positions
`

// Update implementa position.Repository.Update
func (r *PostgresPositionRepository) Update(ctx context.Context, p *position.Position) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branch_positions SET title = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		p.Title, time.Now(), p.UpdatedBy, p.ID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar cargo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPositionNotFound
	}

	return nil
}

// ListByDepartment implementa position.Repository.ListByDepartment
func (r *PostgresPositionRepository) ListByDepartment(ctx context.Context, departmentID string, limit, offset int) ([]*position.Position, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectPositionQuery+" WHERE department_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		departmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cargos: %w", err)
	}
	defer rows.Close()

	var positions []*position.Position

	for rows.Next() {
		p := &position.Position{}

		err := rows.Scan(
			&p.ID,
			&p.DepartmentID,
			&p.Title,
			&p.IsActive,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.UpdatedAt,
			&p.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler cargo: %w", err)
		}

		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return positions, nil
}

// CountByDepartment implementa position.Repository.CountByDepartment
func (r *PostgresPositionRepository) CountByDepartment(ctx context.Context, departmentID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM branch_positions WHERE department_id = $1", departmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar cargos: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa position.Repository.UpdateStatus
func (r *PostgresPositionRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branch_positions SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do cargo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPositionNotFound
	}

	return nil
}
