package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/calendar"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresAssignmentRepository implementa a interface calendar.AssignmentRepository usando PostgreSQL
type PostgresAssignmentRepository struct {
	db *database.PostgresDB
}

// NewPostgresAssignmentRepository cria uma nova instância de PostgresAssignmentRepository
func NewPostgresAssignmentRepository(db *database.PostgresDB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{
		db: db,
	}
}

// targetColumn retorna a coluna de calendar_assignments que referencia o alvo
func targetColumn(targetType calendar.TargetType) (string, error) {
	switch targetType {
	case calendar.TargetBranch:
		return "branch_id", nil
	case calendar.TargetDepartment:
		return "department_id", nil
	case calendar.TargetPosition:
		return "position_id", nil
	}
	return "", calendar.ErrInvalidTargetType
}

// Create implementa calendar.AssignmentRepository.Create. A verificação de
// sobreposição e a inserção ocorrem na mesma transação serializável; duas
// chamadas concorrentes para o mesmo alvo não conseguem ambas confirmar
// vigências sobrepostas.
func (r *PostgresAssignmentRepository) Create(ctx context.Context, a *calendar.Assignment) error {
	column, err := targetColumn(a.TargetType())
	if err != nil {
		return err
	}

	return r.db.SerializableTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		overlapQuery := fmt.Sprintf(`
			SELECT EXISTS (
				SELECT 1 FROM calendar_assignments
				WHERE %s = $1
					AND is_active = true
					AND effective_from < COALESCE($3::timestamptz, 'infinity'::timestamptz)
					AND COALESCE(effective_to, 'infinity'::timestamptz) > $2
			)
		`, column)

		err := tx.QueryRow(ctx, overlapQuery, a.TargetID(), a.EffectiveFrom, a.EffectiveTo).Scan(&exists)
		if err != nil {
			return fmt.Errorf("falha ao verificar sobreposição de vigência: %w", err)
		}

		if exists {
			return calendar.ErrAssignmentOverlap
		}

		query := `
			INSERT INTO calendar_assignments (
				id, calendar_id, branch_id, department_id, position_id,
				effective_from, effective_to, is_active,
				created_at, created_by, updated_at, updated_by
			) VALUES (
				$1, $2, $3, $4, $5,
				$6, $7, $8,
				$9, $10, $11, $12
			)
		`

		_, err = tx.Exec(ctx, query,
			a.ID,
			a.CalendarID,
			a.BranchID,
			a.DepartmentID,
			a.PositionID,
			a.EffectiveFrom,
			a.EffectiveTo,
			a.IsActive,
			a.CreatedAt,
			a.CreatedBy,
			a.UpdatedAt,
			a.UpdatedBy,
		)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
			return fmt.Errorf("falha ao inserir vínculo de calendário: %w", err)
		}

		return nil
	})
}

// FindByID implementa calendar.AssignmentRepository.FindByID
func (r *PostgresAssignmentRepository) FindByID(ctx context.Context, id string) (*calendar.Assignment, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	a := &calendar.Assignment{}

	err = conn.QueryRow(ctx, selectAssignmentQuery+" WHERE id = $1", id).Scan(
		&a.ID,
		&a.CalendarID,
		&a.BranchID,
		&a.DepartmentID,
		&a.PositionID,
		&a.EffectiveFrom,
		&a.EffectiveTo,
		&a.IsActive,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.UpdatedAt,
		&a.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("falha ao buscar vínculo de calendário: %w", err)
	}

	return a, nil
}

const selectAssignmentQuery = `
	SELECT
		id, calendar_id, branch_id, department_id, position_id,
		effective_from, effective_to, is_active,
		created_at, created_by, updated_at, updated_by
	FROM calendar_assignments
`

// FindActiveAt implementa calendar.AssignmentRepository.FindActiveAt
func (r *PostgresAssignmentRepository) FindActiveAt(ctx context.Context, targetType calendar.TargetType, targetID string, at time.Time) ([]*calendar.Assignment, error) {
	column, err := targetColumn(targetType)
	if err != nil {
		return nil, err
	}

	query := selectAssignmentQuery + fmt.Sprintf(`
		WHERE %s = $1
			AND is_active = true
			AND effective_from <= $2
			AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from ASC
	`, column)

	return r.listAssignments(ctx, query, targetID, at)
}

// ListByTarget implementa calendar.AssignmentRepository.ListByTarget
func (r *PostgresAssignmentRepository) ListByTarget(ctx context.Context, targetType calendar.TargetType, targetID string) ([]*calendar.Assignment, error) {
	column, err := targetColumn(targetType)
	if err != nil {
		return nil, err
	}

	query := selectAssignmentQuery + fmt.Sprintf(" WHERE %s = $1 ORDER BY created_at ASC", column)

	return r.listAssignments(ctx, query, targetID)
}

func (r *PostgresAssignmentRepository) listAssignments(ctx context.Context, query string, args ...interface{}) ([]*calendar.Assignment, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar vínculos de calendário: %w", err)
	}
	defer rows.Close()

	var assignments []*calendar.Assignment

	for rows.Next() {
		a := &calendar.Assignment{}

		err := rows.Scan(
			&a.ID,
			&a.CalendarID,
			&a.BranchID,
			&a.DepartmentID,
			&a.PositionID,
			&a.EffectiveFrom,
			&a.EffectiveTo,
			&a.IsActive,
			&a.CreatedAt,
			&a.CreatedBy,
			&a.UpdatedAt,
			&a.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler vínculo de calendário: %w", err)
		}

		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return assignments, nil
}

// UpdateStatus implementa calendar.AssignmentRepository.UpdateStatus
func (r *PostgresAssignmentRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE calendar_assignments SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do vínculo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return calendar.ErrAssignmentNotFound
	}

	return nil
}
