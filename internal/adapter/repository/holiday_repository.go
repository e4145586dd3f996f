package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/holiday"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresHolidayRepository implementa a interface holiday.Repository usando PostgreSQL
type PostgresHolidayRepository struct {
	db *database.PostgresDB
}

// NewPostgresHolidayRepository cria uma nova instância de PostgresHolidayRepository
func NewPostgresHolidayRepository(db *database.PostgresDB) *PostgresHolidayRepository {
	return &PostgresHolidayRepository{
		db: db,
	}
}

// Create implementa holiday.Repository.Create
func (r *PostgresHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if h.BankID != nil {
		if err := requireActiveParent(ctx, conn, "banks", *h.BankID); err != nil {
			return err
		}
	}

	if h.BranchID != nil {
		if err := requireActiveParent(ctx, conn, "branches", *h.BranchID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO bank_holidays (
			id, bank_id, branch_id, country_id, date, name, is_recurring, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12
		)
	`

	_, err = conn.Exec(ctx, query,
		h.ID,
		h.BankID,
		h.BranchID,
		h.CountryID,
		h.Date,
		h.Name,
		h.IsRecurring,
		h.IsActive,
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
		return fmt.Errorf("falha ao inserir feriado: %w", err)
	}

	return nil
}

// FindByID implementa holiday.Repository.FindByID
func (r *PostgresHolidayRepository) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	h := &holiday.Holiday{}

	err = conn.QueryRow(ctx, selectHolidayQuery+" WHERE id = $1", id).Scan(
		&h.ID,
		&h.BankID,
		&h.BranchID,
		&h.CountryID,
		&h.Date,
		&h.Name,
		&h.IsRecurring,
		&h.IsActive,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.UpdatedAt,
		&h.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar feriado: %w", err)
	}

	return h, nil
}

const selectHolidayQuery = `
	SELECT
		id, bank_id, branch_id, country_id, date, name, is_recurring, is_active,
		created_at, created_by, updated_at, updated_by
	FROM bank_holidays
`

// ListActiveByBank implementa holiday.Repository.ListActiveByBank
func (r *PostgresHolidayRepository) ListActiveByBank(ctx context.Context, bankID string) ([]*holiday.Holiday, error) {
	return r.listHolidays(ctx, selectHolidayQuery+" WHERE bank_id = $1 AND is_active = true ORDER BY date ASC", bankID)
}

// ListActiveByBranch implementa holiday.Repository.ListActiveByBranch
func (r *PostgresHolidayRepository) ListActiveByBranch(ctx context.Context, branchID string) ([]*holiday.Holiday, error) {
	return r.listHolidays(ctx, selectHolidayQuery+" WHERE branch_id = $1 AND is_active = true ORDER BY date ASC", branchID)
}

// ListByBank implementa holiday.Repository.ListByBank: inclui os feriados
// das agências do banco
func (r *PostgresHolidayRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*holiday.Holiday, error) {
	query := selectHolidayQuery + `
		WHERE bank_id = $1
			OR branch_id IN (SELECT id FROM branches WHERE bank_id = $1)
		ORDER BY date ASC
		LIMIT $2 OFFSET $3
	`
	return r.listHolidays(ctx, query, bankID, limit, offset)
}

func (r *PostgresHolidayRepository) listHolidays(ctx context.Context, query string, args ...interface{}) ([]*holiday.Holiday, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanHolidays(ctx, conn, query, args...)
}

func scanHolidays(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) ([]*holiday.Holiday, error) {
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar feriados: %w", err)
	}
	defer rows.Close()

	var holidays []*holiday.Holiday

	for rows.Next() {
		h := &holiday.Holiday{}

		err := rows.Scan(
			&h.ID,
			&h.BankID,
			&h.BranchID,
			&h.CountryID,
			&h.Date,
			&h.Name,
			&h.IsRecurring,
			&h.IsActive,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.UpdatedAt,
			&h.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler feriado: %w", err)
		}

		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return holidays, nil
}

// CountByBank implementa holiday.Repository.CountByBank
func (r *PostgresHolidayRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM bank_holidays
		WHERE bank_id = $1
			OR branch_id IN (SELECT id FROM branches WHERE bank_id = $1)
	`, bankID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar feriados: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa holiday.Repository.UpdateStatus
func (r *PostgresHolidayRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE bank_holidays SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do feriado: %w", err)
	}

	if result.RowsAffected() == 0 {
		return holiday.ErrNotFound
	}

	return nil
}
