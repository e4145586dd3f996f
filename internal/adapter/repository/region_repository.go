package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/region"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrRegionNotFound     = errors.New("regional não encontrada")
	ErrRegionDuplicateKey = errors.New("regional com mesmo código já existe para esta diretoria")
)

// PostgresRegionRepository implementa a interface region.Repository usando PostgreSQL
type PostgresRegionRepository struct {
	db *database.PostgresDB
}

// NewPostgresRegionRepository cria uma nova instância de PostgresRegionRepository
func NewPostgresRegionRepository(db *database.PostgresDB) *PostgresRegionRepository {
	return &PostgresRegionRepository{
		db: db,
	}
}

// Create implementa region.Repository.Create
func (r *PostgresRegionRepository) Create(ctx context.Context, reg *region.Region) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// A diretoria pai precisa existir e estar ativa
	if err := requireActiveParent(ctx, conn, "bank_divisions", reg.DivisionID); err != nil {
		return err
	}

	query := `
		INSERT INTO bank_regions (
			id, division_id, code, name, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9
		)
	`

	_, err = conn.Exec(ctx, query,
		reg.ID,
		reg.DivisionID,
		reg.Code,
		reg.Name,
		reg.IsActive,
		reg.CreatedAt,
		reg.CreatedBy,
		reg.UpdatedAt,
		reg.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return ErrRegionDuplicateKey
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
		}
		return fmt.Errorf("falha ao inserir regional: %w", err)
	}

	return nil
}

// FindByID implementa region.Repository.FindByID
func (r *PostgresRegionRepository) FindByID(ctx context.Context, id string) (*region.Region, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findRegionByQuery(ctx, conn, selectRegionQuery+" WHERE id = $1", id)
}

// FindByDivisionAndCode implementa region.Repository.FindByDivisionAndCode
func (r *PostgresRegionRepository) FindByDivisionAndCode(ctx context.Context, divisionID, code string) (*region.Region, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findRegionByQuery(ctx, conn, selectRegionQuery+" WHERE division_id = $1 AND code = $2", divisionID, code)
}

const selectRegionQuery = `
	SELECT
		id, division_id, code, name, is_active,
		created_at, created_by, updated_at, updated_by
	FROM bank_regions
`

func (r *PostgresRegionRepository) findRegionByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*region.Region, error) {
	reg := &region.Region{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&reg.ID,
		&reg.DivisionID,
		&reg.Code,
		&reg.Name,
		&reg.IsActive,
		&reg.CreatedAt,
		&reg.CreatedBy,
		&reg.UpdatedAt,
		&reg.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRegionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar regional: %w", err)
	}

	return reg, nil
}

// Update implementa region.Repository.Update
func (r *PostgresRegionRepository) Update(ctx context.Context, reg *region.Region) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE bank_regions
		SET
			code = $1,
			name = $2,
			updated_at = $3,
			updated_by = $4
		WHERE
			id = $5
	`

	result, err := conn.Exec(ctx, query,
		reg.Code,
		reg.Name,
		time.Now(),
		reg.UpdatedBy,
		reg.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrRegionDuplicateKey
		}
		return fmt.Errorf("falha ao atualizar regional: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRegionNotFound
	}

	return nil
}

// ListByDivision implementa region.Repository.ListByDivision
func (r *PostgresRegionRepository) ListByDivision(ctx context.Context, divisionID string, limit, offset int) ([]*region.Region, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		selectRegionQuery+" WHERE division_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3",
		divisionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regionais: %w", err)
	}
	defer rows.Close()

	var regions []*region.Region

	for rows.Next() {
		reg := &region.Region{}

		err := rows.Scan(
			&reg.ID,
			&reg.DivisionID,
			&reg.Code,
			&reg.Name,
			&reg.IsActive,
			&reg.CreatedAt,
			&reg.CreatedBy,
			&reg.UpdatedAt,
			&reg.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler regional: %w", err)
		}

		regions = append(regions, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return regions, nil
}

// CountByDivision implementa region.Repository.CountByDivision
func (r *PostgresRegionRepository) CountByDivision(ctx context.Context, divisionID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM bank_regions WHERE division_id = $1", divisionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar regionais: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa region.Repository.UpdateStatus
func (r *PostgresRegionRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE bank_regions SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da regional: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRegionNotFound
	}

	return nil
}
