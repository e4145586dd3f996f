package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/department"
)

// DepartmentRequest representa a estrutura de dados para criação/atualização de departamento
type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// DepartmentResponse representa a estrutura de resposta para departamento
type DepartmentResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepartmentListResponse representa a resposta de listagem de departamentos
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	TotalCount  int                  `json:"total_count"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
	TotalPages  int                  `json:"total_pages"`
}

// ToDepartmentResponse converte um modelo de domínio em uma resposta DTO
func ToDepartmentResponse(d *department.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		BranchID:  d.BranchID,
		Name:      d.Name,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDepartmentListResponse converte uma lista de departamentos para o formato de resposta
func ToDepartmentListResponse(departments []*department.Department, totalCount, page, pageSize int) DepartmentListResponse {
	response := DepartmentListResponse{
		Departments: make([]DepartmentResponse, len(departments)),
		TotalCount:  totalCount,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  calculateTotalPages(totalCount, pageSize),
	}

	for i, d := range departments {
		response.Departments[i] = ToDepartmentResponse(d)
	}

	return response
}
