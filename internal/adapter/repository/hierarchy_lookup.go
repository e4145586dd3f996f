package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// PostgresHierarchyLookup resolve os vínculos de propriedade entre os nós da
// hierarquia direto no banco de dados. Implementa calendar.HierarchyLookup,
// holiday.BranchOwnerLookup e hours.BranchLocator.
type PostgresHierarchyLookup struct {
	db *database.PostgresDB
}

// NewPostgresHierarchyLookup cria uma nova instância de PostgresHierarchyLookup
func NewPostgresHierarchyLookup(db *database.PostgresDB) *PostgresHierarchyLookup {
	return &PostgresHierarchyLookup{
		db: db,
	}
}

// PositionDepartment retorna o departamento ao qual o cargo pertence
func (l *PostgresHierarchyLookup) PositionDepartment(ctx context.Context, positionID string) (string, error) {
	return l.lookupParent(ctx,
		"SELECT department_id FROM branch_positions WHERE id = $1",
		positionID, ErrPositionNotFound)
}

// DepartmentBranch retorna a agência à qual o departamento pertence
func (l *PostgresHierarchyLookup) DepartmentBranch(ctx context.Context, departmentID string) (string, error) {
	return l.lookupParent(ctx,
		"SELECT branch_id FROM branch_departments WHERE id = $1",
		departmentID, ErrDepartmentNotFound)
}

// BranchBank retorna o banco ao qual a agência pertence
func (l *PostgresHierarchyLookup) BranchBank(ctx context.Context, branchID string) (string, error) {
	return l.lookupParent(ctx,
		"SELECT bank_id FROM branches WHERE id = $1",
		branchID, ErrBranchNotFound)
}

func (l *PostgresHierarchyLookup) lookupParent(ctx context.Context, query, id string, notFound error) (string, error) {
	conn, err := l.db.GetConnection(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	var parentID string
	err = conn.QueryRow(ctx, query, id).Scan(&parentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notFound
		}
		return "", fmt.Errorf("falha ao resolver hierarquia: %w", err)
	}

	return parentID, nil
}

// BranchLocation retorna o fuso horário do banco ao qual a agência pertence
func (l *PostgresHierarchyLookup) BranchLocation(ctx context.Context, branchID string) (*time.Location, error) {
	conn, err := l.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var timeZoneID string
	err = conn.QueryRow(ctx, `
		SELECT b.time_zone_id
		FROM branches br
		JOIN banks b ON b.id = br.bank_id
		WHERE br.id = $1
	`, branchID).Scan(&timeZoneID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("falha ao resolver fuso horário da agência: %w", err)
	}

	loc, err := time.LoadLocation(timeZoneID)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido cadastrado para o banco: %w", err)
	}

	return loc, nil
}
