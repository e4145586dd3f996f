package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/region"
)

// RegionRequest representa a estrutura de dados para criação/atualização de regional
type RegionRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// RegionResponse representa a estrutura de resposta para regional
type RegionResponse struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"division_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RegionListResponse representa a resposta de listagem de regionais
type RegionListResponse struct {
	Regions    []RegionResponse `json:"regions"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToRegionResponse converte um modelo de domínio em uma resposta DTO
func ToRegionResponse(r *region.Region) RegionResponse {
	return RegionResponse{
		ID:         r.ID,
		DivisionID: r.DivisionID,
		Code:       r.Code,
		Name:       r.Name,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ToRegionListResponse converte uma lista de regionais para o formato de resposta
func ToRegionListResponse(regions []*region.Region, totalCount, page, pageSize int) RegionListResponse {
	response := RegionListResponse{
		Regions:    make([]RegionResponse, len(regions)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, r := range regions {
		response.Regions[i] = ToRegionResponse(r)
	}

	return response
}
