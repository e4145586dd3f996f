package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/branch"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrBranchNotFound     = errors.New("agência não encontrada")
	ErrBranchDuplicateKey = errors.New("agência com mesmo código já existe para este banco")
)

// PostgresBranchRepository implementa a interface branch.Repository usando PostgreSQL
type PostgresBranchRepository struct {
	db *database.PostgresDB
}

// NewPostgresBranchRepository cria uma nova instância de PostgresBranchRepository
func NewPostgresBranchRepository(db *database.PostgresDB) *PostgresBranchRepository {
	return &PostgresBranchRepository{
		db: db,
	}
}

// Create implementa branch.Repository.Create
func (r *PostgresBranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// O banco pai precisa existir e estar ativo
	if err := requireActiveParent(ctx, conn, "banks", b.BankID); err != nil {
		return err
	}

	// A regional, quando informada, também precisa estar ativa
	if b.RegionID != nil {
		if err := requireActiveParent(ctx, conn, "bank_regions", *b.RegionID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO branches (
			id, bank_id, region_id, code, name, latitude, longitude,
			street, number, complement, district, city, state, zip_code, country,
			phone, email, opened_at, closed_at, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22, $23, $24
		)
	`

	_, err = conn.Exec(ctx, query,
		b.ID,
		b.BankID,
		b.RegionID,
		b.Code,
		b.Name,
		b.Latitude,
		b.Longitude,
		b.Address.Street,
		b.Address.Number,
		b.Address.Complement,
		b.Address.District,
		b.Address.City,
		b.Address.State,
		b.Address.ZipCode,
		b.Address.Country,
		b.Phone,
		b.Email,
		b.OpenedAt,
		b.ClosedAt,
		b.IsActive,
		b.CreatedAt,
		b.CreatedBy,
		b.UpdatedAt,
		b.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return ErrBranchDuplicateKey
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return ErrInvalidParent
			}
		}
		return fmt.Errorf("falha ao inserir agência: %w", err)
	}

	return nil
}

// FindByID implementa branch.Repository.FindByID
func (r *PostgresBranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findBranchByQuery(ctx, conn, selectBranchQuery+" WHERE id = $1", id)
}

// FindByBankAndCode implementa branch.Repository.FindByBankAndCode
func (r *PostgresBranchRepository) FindByBankAndCode(ctx context.Context, bankID, code string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findBranchByQuery(ctx, conn, selectBranchQuery+" WHERE bank_id = $1 AND code = $2", bankID, code)
}

const selectBranchQuery = `
	SELECT
		id, bank_id, region_id, code, name, latitude, longitude,
		street, number, complement, district, city, state, zip_code, country,
		phone, email, opened_at, closed_at, is_active,
		created_at, created_by, updated_at, updated_by
	FROM branches
`

// findBranchByQuery é um método auxiliar para executar queries de busca de agência
func (r *PostgresBranchRepository) findBranchByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*branch.Branch, error) {
	b := &branch.Branch{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&b.ID,
		&b.BankID,
		&b.RegionID,
		&b.Code,
		&b.Name,
		&b.Latitude,
		&b.Longitude,
		&b.Address.Street,
		&b.Address.Number,
		&b.Address.Complement,
		&b.Address.District,
		&b.Address.City,
		&b.Address.State,
		&b.Address.ZipCode,
		&b.Address.Country,
		&b.Phone,
		&b.Email,
		&b.OpenedAt,
		&b.ClosedAt,
		&b.IsActive,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.UpdatedAt,
		&b.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("falha ao buscar agência: %w", err)
	}

	return b, nil
}

// Update implementa branch.Repository.Update
func (r *PostgresBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE branches
		SET
			region_id = $1,
			code = $2,
			name = $3,
			latitude = $4,
			longitude = $5,
			street = $6,
			number = $7,
			complement = $8,
			district = $9,
			city = $10,
			state = $11,
			zip_code = $12,
			country = $13,
			phone = $14,
			email = $15,
			closed_at = $16,
			updated_at = $17,
			updated_by = $18
		WHERE
			id = $19 AND bank_id = $20
	`

	result, err := conn.Exec(ctx, query,
		b.RegionID,
		b.Code,
		b.Name,
		b.Latitude,
		b.Longitude,
		b.Address.Street,
		b.Address.Number,
		b.Address.Complement,
		b.Address.District,
		b.Address.City,
		b.Address.State,
		b.Address.ZipCode,
		b.Address.Country,
		b.Phone,
		b.Email,
		b.ClosedAt,
		time.Now(),
		b.UpdatedBy,
		b.ID,
		b.BankID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrBranchDuplicateKey
		}
		return fmt.Errorf("falha ao atualizar agência: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// ListByBank implementa branch.Repository.ListByBank
func (r *PostgresBranchRepository) ListByBank(ctx context.Context, bankID string, limit, offset int) ([]*branch.Branch, error) {
	return r.listBranches(ctx, selectBranchQuery+" WHERE bank_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3", bankID, limit, offset)
}

// ListByRegion implementa branch.Repository.ListByRegion
func (r *PostgresBranchRepository) ListByRegion(ctx context.Context, regionID string, limit, offset int) ([]*branch.Branch, error) {
	return r.listBranches(ctx, selectBranchQuery+" WHERE region_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3", regionID, limit, offset)
}

func (r *PostgresBranchRepository) listBranches(ctx context.Context, query string, args ...interface{}) ([]*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar agências: %w", err)
	}
	defer rows.Close()

	var branches []*branch.Branch

	for rows.Next() {
		b := &branch.Branch{}

		err := rows.Scan(
			&b.ID,
			&b.BankID,
			&b.RegionID,
			&b.Code,
			&b.Name,
			&b.Latitude,
			&b.Longitude,
			&b.Address.Street,
			&b.Address.Number,
			&b.Address.Complement,
			&b.Address.District,
			&b.Address.City,
			&b.Address.State,
			&b.Address.ZipCode,
			&b.Address.Country,
			&b.Phone,
			&b.Email,
			&b.OpenedAt,
			&b.ClosedAt,
			&b.IsActive,
			&b.CreatedAt,
			&b.CreatedBy,
			&b.UpdatedAt,
			&b.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler agência: %w", err)
		}

		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return branches, nil
}

// CountByBank implementa branch.Repository.CountByBank
func (r *PostgresBranchRepository) CountByBank(ctx context.Context, bankID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM branches WHERE bank_id = $1", bankID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar agências: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa branch.Repository.UpdateStatus
func (r *PostgresBranchRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branches SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da agência: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Exists implementa branch.Repository.Exists
func (r *PostgresBranchRepository) Exists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM branches WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência da agência: %w", err)
	}

	return exists, nil
}
