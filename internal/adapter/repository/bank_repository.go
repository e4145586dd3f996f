package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/bank"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrBankNotFound     = errors.New("banco não encontrado")
	ErrBankDuplicateKey = errors.New("banco com mesmo código já existe")

	// ErrInvalidParent é retornado quando a entidade pai referenciada
	// não existe ou está inativa
	ErrInvalidParent = errors.New("entidade pai não existe ou está inativa")
)

// PostgresBankRepository implementa a interface bank.Repository usando PostgreSQL
type PostgresBankRepository struct {
	db *database.PostgresDB
}

// NewPostgresBankRepository cria uma nova instância de PostgresBankRepository
func NewPostgresBankRepository(db *database.PostgresDB) *PostgresBankRepository {
	return &PostgresBankRepository{
		db: db,
	}
}

// Create implementa bank.Repository.Create
func (r *PostgresBankRepository) Create(ctx context.Context, b *bank.Bank) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO banks (
			id, code, name, legal_name,
			street, number, complement, district, city, state, zip_code, country,
			logo_url, theme_color, country_id, time_zone_id, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21
		)
	`

	_, err = conn.Exec(ctx, query,
		b.ID,
		b.Code,
		b.Name,
		b.LegalName,
		b.Address.Street,
		b.Address.Number,
		b.Address.Complement,
		b.Address.District,
		b.Address.City,
		b.Address.State,
		b.Address.ZipCode,
		b.Address.Country,
		b.LogoURL,
		b.ThemeColor,
		b.CountryID,
		b.TimeZoneID,
		b.IsActive,
		b.CreatedAt,
		b.CreatedBy,
		b.UpdatedAt,
		b.UpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrBankDuplicateKey
		}
		return fmt.Errorf("falha ao inserir banco: %w", err)
	}

	return nil
}

// FindByID implementa bank.Repository.FindByID
func (r *PostgresBankRepository) FindByID(ctx context.Context, id string) (*bank.Bank, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return r.findBankByQuery(ctx, conn, selectBankQuery+" WHERE id = $1", id)
}

// FindByCode implementa bank.Repository.FindByCode
func (r *PostgresBankRepository) FindByCode(ctx context.Context, code string) (*bank.Bank, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	// Comparação exata, sensível a maiúsculas
	return r.findBankByQuery(ctx, conn, selectBankQuery+" WHERE code = $1", code)
}

const selectBankQuery = `
	SELECT
		id, code, name, legal_name,
		street, number, complement, district, city, state, zip_code, country,
		logo_url, theme_color, country_id, time_zone_id, is_active,
		created_at, created_by, updated_at, updated_by
	FROM banks
`

// findBankByQuery é um método auxiliar para executar queries de busca de banco
func (r *PostgresBankRepository) findBankByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*bank.Bank, error) {
	b := &bank.Bank{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&b.ID,
		&b.Code,
		&b.Name,
		&b.LegalName,
		&b.Address.Street,
		&b.Address.Number,
		&b.Address.Complement,
		&b.Address.District,
		&b.Address.City,
		&b.Address.State,
		&b.Address.ZipCode,
		&b.Address.Country,
		&b.LogoURL,
		&b.ThemeColor,
		&b.CountryID,
		&b.TimeZoneID,
		&b.IsActive,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.UpdatedAt,
		&b.UpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("falha ao buscar banco: %w", err)
	}

	return b, nil
}

// Update implementa bank.Repository.Update
func (r *PostgresBankRepository) Update(ctx context.Context, b *bank.Bank) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE banks
		SET
			name = $1,
			legal_name = $2,
			street = $3,
			number = $4,
			complement = $5,
			district = $6,
			city = $7,
			state = $8,
			zip_code = $9,
			country = $10,
			logo_url = $11,
			theme_color = $12,
			country_id = $13,
			time_zone_id = $14,
			updated_at = $15,
			updated_by = $16
		WHERE
			id = $17
	`

	result, err := conn.Exec(ctx, query,
		b.Name,
		b.LegalName,
		b.Address.Street,
		b.Address.Number,
		b.Address.Complement,
		b.Address.District,
		b.Address.City,
		b.Address.State,
		b.Address.ZipCode,
		b.Address.Country,
		b.LogoURL,
		b.ThemeColor,
		b.CountryID,
		b.TimeZoneID,
		time.Now(),
		b.UpdatedBy,
		b.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrBankDuplicateKey
		}
		return fmt.Errorf("falha ao atualizar banco: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBankNotFound
	}

	return nil
}

// List implementa bank.Repository.List
func (r *PostgresBankRepository) List(ctx context.Context, limit, offset int) ([]*bank.Bank, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, selectBankQuery+" ORDER BY created_at ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar bancos: %w", err)
	}
	defer rows.Close()

	var banks []*bank.Bank

	for rows.Next() {
		b := &bank.Bank{}

		err := rows.Scan(
			&b.ID,
			&b.Code,
			&b.Name,
			&b.LegalName,
			&b.Address.Street,
			&b.Address.Number,
			&b.Address.Complement,
			&b.Address.District,
			&b.Address.City,
			&b.Address.State,
			&b.Address.ZipCode,
			&b.Address.Country,
			&b.LogoURL,
			&b.ThemeColor,
			&b.CountryID,
			&b.TimeZoneID,
			&b.IsActive,
			&b.CreatedAt,
			&b.CreatedBy,
			&b.UpdatedAt,
			&b.UpdatedBy,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler banco: %w", err)
		}

		banks = append(banks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return banks, nil
}

// Count implementa bank.Repository.Count
func (r *PostgresBankRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM banks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar bancos: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa bank.Repository.UpdateStatus
func (r *PostgresBankRepository) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE banks SET is_active = $1, updated_at = $2, updated_by = $3 WHERE id = $4",
		isActive, time.Now(), updatedBy, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do banco: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBankNotFound
	}

	return nil
}

// Exists implementa bank.Repository.Exists
func (r *PostgresBankRepository) Exists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM banks WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência do banco: %w", err)
	}

	return exists, nil
}
