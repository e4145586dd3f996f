package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/position"
)

// PositionRequest representa a estrutura de dados para criação/atualização de cargo
type PositionRequest struct {
	Title string `json:"title" binding:"required"`
}

// PositionResponse representa a estrutura de resposta para cargo
type PositionResponse struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Title        string    `json:"title"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PositionListResponse representa a resposta de listagem de cargos
type PositionListResponse struct {
	Positions  []PositionResponse `json:"positions"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToPositionResponse converte um modelo de domínio em uma resposta DTO
func ToPositionResponse(p *position.Position) PositionResponse {
	return PositionResponse{
		ID:           p.ID,
		DepartmentID: p.DepartmentID,
		Title:        p.Title,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPositionListResponse converte uma lista de cargos para o formato de resposta
func ToPositionListResponse(positions []*position.Position, totalCount, page, pageSize int) PositionListResponse {
	response := PositionListResponse{
		Positions:  make([]PositionResponse, len(positions)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, p := range positions {
		response.Positions[i] = ToPositionResponse(p)
	}

	return response
}
