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
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCalendarRepository implementa a interface calendar.Repository usando PostgreSQL
type PostgresCalendarRepository struct {
	db *database.PostgresDB
}

// NewPostgresCalendarRepository cria uma nova instância de PostgresCalendarRepository
func NewPostgresCalendarRepository(db *database.PostgresDB) *PostgresCalendarRepository {
	return &PostgresCalendarRepository{
		db: db,
	}
}

// Create implementa calendar.Repository.Create. O índice único parcial em
// (bank_id) WHERE is_default garante no máximo um calendário padrão por banco.
func (r *PostgresCalendarRepository) Create(ctx context.Context, c *calendar.WorkingCalendar) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// O banco precisa existir e estar ativo
	if err := requireActiveParent(ctx, conn, "banks", c.BankID); err != nil {
		return err
	}

	query := `
		INSERT INTO working_calendars (
			id, bank_id, name, description, is_default, time_zone_id, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11
		)
	`

	_, err = conn.Exec(ctx, query,
		c.ID,
		c.BankID,
		c.Name,
		c.Description,
		c.IsDefault,
		c.TimeZoneID,
		c.IsActive,
		c.CreatedAt,
		c.CreatedBy,
		c.UpdatedAt,
		c.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return calendar.ErrDefaultAlreadyExists
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
		}
		return fmt.Errorf("falha ao inserir calendário: %w", err)
	}

	return nil
}

// FindByID implementa calendar.Repository.FindByID
func (r *PostgresCalendarRepository) FindByID(ctx context.Context, id string) (*calendar.WorkingCalendar, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findCalendarByQuery(ctx, conn, selectCalendarQuery+" WHERE id = $1", id)
}

// FindDefaultByBank implementa calendar.Repository.FindDefaultByBank
func (r *PostgresCalendarRepository) FindDefaultByBank(ctx context.Context, bankID string) (*calendar.WorkingCalendar, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	c, err := r.findCalendarByQuery(ctx, conn,
		selectCalendarQuery+" WHERE bank_id = $1 AND is_default = true AND is_active = true", bankID)
	if err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			return nil, calendar.ErrNoDefault
		}
		return nil, err
	}

	return c, nil
}

const selectCalendarQuery = `
	SELECT
		id, bank_id, name, description, is_default, time_zone_id, is_active,
		created_at, created_by, updated_at, updated_by
	FROM working_calendars
`

func (r *PostgresCalendarRepository) findCalendarByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*calendar.WorkingCalendar, error) {
	c := &calendar.WorkingCalendar{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&c.ID,
		&c.BankID,
		&c.Name,
		&c.Description,
		&c.IsDefault,
		&c.TimeZoneID,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.UpdatedAt,
		&c.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar calendário: %w", err)
	}

	return c, nil
}

// Update implementa calendar.Repository.Update
func (r *PostgresCalendarRepository) Update(ctx context.Context, c *calendar.WorkingCalendar) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE working_calendars
		SET
			name = $1,
			description = $2,
			is_default = $3,
			time_zone_id = $4,
			updated_at = $5,
			updated_by = $6
		WHERE
			id = $7
	`

	result, err := conn.Exec(ctx, query,
		c.Name,
		c.Description,
		c.IsDefault,
		c.TimeZoneID,
		time.Now(),
		c.UpdatedBy,
		c.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return calendar.ErrDefaultAlreadyExists
		}
		return fmt.Errorf("falha ao atualizar calendário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return calendar.ErrNotFound
	}

	return nil
}

// ListByBank implementa calendar.Repository.ListByBank
func (r *PostgresCalendarRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*calendar.WorkingCalendar, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectCalendarQuery+" WHERE bank_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		bankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar calendários: %w", err)
	}
	defer rows.Close()

	var calendars []*calendar.WorkingCalendar

	for rows.Next() {
		c := &calendar.WorkingCalendar{}

		err := rows.Scan(
			&c.ID,
			&c.BankID,
			&c.Name,
			&c.Description,
			&c.IsDefault,
			&c.TimeZoneID,
			&c.IsActive,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.UpdatedAt,
			&c.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler calendário: %w", err)
		}

		calendars = append(calendars, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return calendars, nil
}

// CountByBank implementa calendar.Repository.CountByBank
func (r *PostgresCalendarRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM working_calendars WHERE bank_id = $1", bankID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar calendários: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa calendar.Repository.UpdateStatus
func (r *PostgresCalendarRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE working_calendars SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do calendário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return calendar.ErrNotFound
	}

	return nil
}
