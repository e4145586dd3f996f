package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/division"
)

// DivisionRequest representa a estrutura de dados para criação/atualização de diretoria
type DivisionRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DivisionResponse representa a estrutura de resposta para diretoria
type DivisionResponse struct {
	ID        string    `json:"id"`
	BankID    string    `json:"bank_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DivisionListResponse representa a resposta de listagem de diretorias
type DivisionListResponse struct {
	Divisions  []DivisionResponse `json:"divisions"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToDivisionResponse converte um modelo de domínio em uma resposta DTO
func ToDivisionResponse(d *division.Division) DivisionResponse {
	return DivisionResponse{
		ID:        d.ID,
		BankID:    d.BankID,
		Code:      d.Code,
		Name:      d.Name,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDivisionListResponse converte uma lista de diretorias para o formato de resposta
func ToDivisionListResponse(divisions []*division.Division, totalCount, page, pageSize int) DivisionListResponse {
	response := DivisionListResponse{
		Divisions:  make([]DivisionResponse, len(divisions)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, d := range divisions {
		response.Divisions[i] = ToDivisionResponse(d)
	}

	return response
}
