package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/department"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDepartmentNotFound é retornado quando o departamento não existe
var ErrDepartmentNotFound = errors.New("departamento não encontrado")

// PostgresDepartmentRepository implementa a interface department.Repository usando PostgreSQL
type PostgresDepartmentRepository struct {
	db *database.PostgresDB
}

// NewPostgresDepartmentRepository cria uma nova instância de PostgresDepartmentRepository
func NewPostgresDepartmentRepository(db *database.PostgresDB) *PostgresDepartmentRepository {
	return &PostgresDepartmentRepository{
		db: db,
	}
}

// Create implementa department.Repository.Create
func (r *PostgresDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// A agência pai precisa existir e estar ativa
	if err := requireActiveParent(ctx, conn, "branches", d.BranchID); err != nil {
		return err
	}

	query := `
		INSERT INTO branch_departments (
			id, branch_id, name, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8
		)
	`

	_, err = conn.Exec(ctx, query,
		d.ID,
		d.BranchID,
		d.Name,
		d.IsActive,
		d.CreatedAt,
		d.CreatedBy,
		d.UpdatedAt,
		d.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return ErrInvalidParent
		}
		return fmt.Errorf("falha ao inserir departamento: %w", err)
	}

	return nil
}

// FindByID implementa department.Repository.FindByID
func (r *PostgresDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	d := &department.Department{}

	err = conn.QueryRow(ctx, selectDepartmentQuery+" WHERE id = $1", id).Scan(
		&d.ID,
		&d.BranchID,
		&d.Name,
		&d.IsActive,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.UpdatedAt,
		&d.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("falha ao buscar departamento: %w", err)
	}

	return d, nil
}

const selectDepartmentQuery = `
	SELECT
		id, branch_id, name, is_active,
		created_at, created_by, updated_at, updated_by
	FROM branch_departments
`

// Update implementa department.Repository.Update
func (r *PostgresDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branch_departments SET name = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		d.Name, time.Now(), d.UpdatedBy, d.ID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar departamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

// ListByBranch implementa department.Repository.ListByBranch
func (r *PostgresDepartmentRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*department.Department, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectDepartmentQuery+" WHERE branch_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar departamentos: %w", err)
	}
	defer rows.Close()

	var departments []*department.Department

	for rows.Next() {
		d := &department.Department{}

		err := rows.Scan(
			&d.ID,
			&d.BranchID,
			&d.Name,
			&d.IsActive,
			&d.CreatedAt,
			&d.CreatedBy,
			&d.UpdatedAt,
			&d.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler departamento: %w", err)
		}

		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return departments, nil
}

// CountByBranch implementa department.Repository.CountByBranch
func (r *PostgresDepartmentRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM branch_departments WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar departamentos: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa department.Repository.UpdateStatus
func (r *PostgresDepartmentRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branch_departments SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do departamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}
