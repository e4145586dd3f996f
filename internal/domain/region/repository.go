package region

import (
	"context"
)

// Repository define as operações de persistência para regionais
type Repository interface {
	// Create persiste uma nova regional
	Create(ctx context.Context, region *Region) error

	// FindByID busca uma regional pelo ID
	FindByID(ctx context.Context, id string) (*Region, error)

	// FindByDivisionAndCode busca uma regional pelo código dentro de uma diretoria
	FindByDivisionAndCode(ctx context.Context, divisionID, code string) (*Region, error)

	// Update atualiza uma regional existente
	Update(ctx context.Context, region *Region) error

	// ListByDivision retorna as regionais de uma diretoria em ordem de inserção
	ListByDivision(ctx context.Context, divisionID string, limit, offset int) ([]*Region, error)

	// CountByDivision retorna o número total de regionais de uma diretoria
	CountByDivision(ctx context.Context, divisionID string) (int, error)

	// UpdateStatus ativa ou desativa uma regional
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
}
