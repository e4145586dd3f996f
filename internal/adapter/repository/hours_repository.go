package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/banking-org/internal/domain/hours"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresHoursRepository implementa a interface hours.Repository usando PostgreSQL
type PostgresHoursRepository struct {
	db *database.PostgresDB
}

// NewPostgresHoursRepository cria uma nova instância de PostgresHoursRepository
func NewPostgresHoursRepository(db *database.PostgresDB) *PostgresHoursRepository {
	return &PostgresHoursRepository{
		db: db,
	}
}

// Upsert implementa hours.Repository.Upsert. O índice único em
// (branch_id, day_of_week) garante no máximo um registro por par; o conflito
// substitui o registro existente em vez de acumular.
func (r *PostgresHoursRepository) Upsert(ctx context.Context, h *hours.BranchHours) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// A agência precisa existir e estar ativa
	if err := requireActiveParent(ctx, conn, "branches", h.BranchID); err != nil {
		return err
	}

	query := `
		INSERT INTO branch_hours (
			id, branch_id, day_of_week, open_time, close_time, is_closed,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10
		)
		ON CONFLICT (branch_id, day_of_week) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			is_closed = EXCLUDED.is_closed,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
	`

	_, err = conn.Exec(ctx, query,
		h.ID,
		h.BranchID,
		string(h.DayOfWeek),
		h.OpenTime,
		h.CloseTime,
		h.IsClosed,
		h.CreatedAt,
		h.CreatedBy,
		h.UpdatedAt,
		h.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return ErrInvalidParent
		}
		return fmt.Errorf("falha ao gravar horário de funcionamento: %w", err)
	}

	return nil
}

// FindByBranchAndDay implementa hours.Repository.FindByBranchAndDay
func (r *PostgresHoursRepository) FindByBranchAndDay(ctx context.Context, branchID string, day hours.DayOfWeek) (*hours.BranchHours, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	h := &hours.BranchHours{}
	var dayOfWeek string

	err = conn.QueryRow(ctx,
		selectHoursQuery+" WHERE branch_id = $1 AND day_of_week = $2",
		branchID, string(day)).Scan(
		&h.ID,
		&h.BranchID,
		&dayOfWeek,
		&h.OpenTime,
		&h.CloseTime,
		&h.IsClosed,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.UpdatedAt,
		&h.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hours.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar horário de funcionamento: %w", err)
	}

	h.DayOfWeek = hours.DayOfWeek(dayOfWeek)

	return h, nil
}

const selectHoursQuery = `
	SELECT
		id, branch_id, day_of_week, open_time, close_time, is_closed,
		created_at, created_by, updated_at, updated_by
	FROM branch_hours
`

// ListByBranch implementa hours.Repository.ListByBranch
func (r *PostgresHoursRepository) ListByBranch(ctx context.Context, branchID string) ([]*hours.BranchHours, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, selectHoursQuery+" WHERE branch_id = $1 ORDER BY created_at ASC", branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar horários de funcionamento: %w", err)
	}
	defer rows.Close()

	var result []*hours.BranchHours

	for rows.Next() {
		h := &hours.BranchHours{}
		var dayOfWeek string

		err := rows.Scan(
			&h.ID,
			&h.BranchID,
			&dayOfWeek,
			&h.OpenTime,
			&h.CloseTime,
			&h.IsClosed,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.UpdatedAt,
			&h.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler horário de funcionamento: %w", err)
		}

		h.DayOfWeek = hours.DayOfWeek(dayOfWeek)
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return result, nil
}
