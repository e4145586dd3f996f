package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresAuditRepository implementa a interface audit.Repository usando PostgreSQL.
// Os registros de banco e de agência vivem em tabelas separadas, ambas somente
// de acréscimo.
type PostgresAuditRepository struct {
	db *database.PostgresDB
}

// NewPostgresAuditRepository cria uma nova instância de PostgresAuditRepository
func NewPostgresAuditRepository(db *database.PostgresDB) *PostgresAuditRepository {
	return &PostgresAuditRepository{
		db: db,
	}
}

// Record implementa audit.Repository.Record. O instante do registro é sempre
// atribuído aqui, nunca herdado do chamador.
func (r *PostgresAuditRepository) Record(ctx context.Context, l *audit.Log) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	var metadata []byte
	if l.Metadata != nil {
		metadata, err = json.Marshal(l.Metadata)
		if err != nil {
			return fmt.Errorf("falha ao serializar metadados de auditoria: %w", err)
		}
	}

	l.CreatedAt = time.Now()

	var query string
	var scopeID string
	if l.BankID != nil {
		scopeID = *l.BankID
		query = `
			INSERT INTO bank_audit_logs (
				id, bank_id, action, entity_name, entity_id, metadata,
				ip_address, user_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6,
				$7, $8, $9
			)
		`
	} else {
		scopeID = *l.BranchID
		query = `
			INSERT INTO branch_audit_logs (
				id, branch_id, action, entity_name, entity_id, metadata,
				ip_address, user_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6,
				$7, $8, $9
			)
		`
	}

	_, err = conn.Exec(ctx, query,
		l.ID,
		scopeID,
		string(l.Action),
		l.EntityName,
		l.EntityID,
		metadata,
		l.IPAddress,
		l.UserID,
		l.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return ErrInvalidParent
		}
		return fmt.Errorf("falha ao inserir registro de auditoria: %w", err)
	}

	return nil
}

// ListByBank implementa audit.Repository.ListByBank
func (r *PostgresAuditRepository) ListByBank(ctx context.Context, bankID string, from, to *time.Time, limit, offset int) ([]*audit.Log, error) {
	query := `
		SELECT
			id, bank_id, NULL, action, entity_name, entity_id, metadata,
			ip_address, user_id, created_at
		FROM bank_audit_logs
		WHERE bank_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`
	return r.listLogs(ctx, query, bankID, from, to, limit, offset)
}

// ListByBranch implementa audit.Repository.ListByBranch
func (r *PostgresAuditRepository) ListByBranch(ctx context.Context, branchID string, from, to *time.Time, limit, offset int) ([]*audit.Log, error) {
	query := `
		SELECT
			id, NULL, branch_id, action, entity_name, entity_id, metadata,
			ip_address, user_id, created_at
		FROM branch_audit_logs
		WHERE branch_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`
	return r.listLogs(ctx, query, branchID, from, to, limit, offset)
}

func (r *PostgresAuditRepository) listLogs(ctx context.Context, query string, args ...interface{}) ([]*audit.Log, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar registros de auditoria: %w", err)
	}
	defer rows.Close()

	var logs []*audit.Log

	for rows.Next() {
		l := &audit.Log{}
		var action string
		var metadata []byte

		err := rows.Scan(
			&l.ID,
			&l.BankID,
			&l.BranchID,
			&action,
			&l.EntityName,
			&l.EntityID,
			&metadata,
			&l.IPAddress,
			&l.UserID,
			&l.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler registro de auditoria: %w", err)
		}

		l.Action = audit.Action(action)

		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &l.Metadata); err != nil {
				return nil, fmt.Errorf("falha ao desserializar metadados de auditoria: %w", err)
			}
		}

		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return logs, nil
}

// CountByBank implementa audit.Repository.CountByBank
func (r *PostgresAuditRepository) CountByBank(ctx context.Context, bankID string, from, to *time.Time) (int, error) {
	return r.countLogs(ctx, `
		SELECT COUNT(*) FROM bank_audit_logs
		WHERE bank_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
	`, bankID, from, to)
}

// CountByBranch implementa audit.Repository.CountByBranch
func (r *PostgresAuditRepository) CountByBranch(ctx context.Context, branchID string, from, to *time.Time) (int, error) {
	return r.countLogs(ctx, `
		SELECT COUNT(*) FROM branch_audit_logs
		WHERE branch_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
	`, branchID, from, to)
}

func (r *PostgresAuditRepository) countLogs(ctx context.Context, query string, args ...interface{}) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar registros de auditoria: %w", err)
	}

	return count, nil
}
