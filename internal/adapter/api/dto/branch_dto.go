package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/branch"
)

// BranchRequest representa a estrutura de dados para criação/atualização de agência
type BranchRequest struct {
	RegionID  *string        `json:"region_id"`
	Code      string         `json:"code" binding:"required"`
	Name      string         `json:"name" binding:"required"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Address   AddressRequest `json:"address"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	OpenedAt  time.Time      `json:"opened_at"`
}

// BranchCloseRequest representa a estrutura de dados para encerramento de agência
type BranchCloseRequest struct {
	ClosedAt time.Time `json:"closed_at" binding:"required"`
}

// BranchResponse representa a estrutura de resposta para agência
type BranchResponse struct {
	ID        string          `json:"id"`
	BankID    string          `json:"bank_id"`
	RegionID  *string         `json:"region_id,omitempty"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Address   AddressResponse `json:"address"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	OpenedAt  time.Time       `json:"opened_at"`
	ClosedAt  *time.Time      `json:"closed_at,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BranchListResponse representa a resposta de listagem de agências
type BranchListResponse struct {
	Branches   []BranchResponse `json:"branches"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToBranchAddress converte o DTO de endereço para o modelo de domínio
func (a AddressRequest) ToBranchAddress() branch.Address {
	return branch.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Country:    a.Country,
	}
}

// ToBranchResponse converte um modelo de domínio em uma resposta DTO
func ToBranchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		BankID:    b.BankID,
		RegionID:  b.RegionID,
		Code:      b.Code,
		Name:      b.Name,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Address: AddressResponse{
			Street:     b.Address.Street,
			Number:     b.Address.Number,
			Complement: b.Address.Complement,
			District:   b.Address.District,
			City:       b.Address.City,
			State:      b.Address.State,
			ZipCode:    b.Address.ZipCode,
			Country:    b.Address.Country,
		},
		Phone:     b.Phone,
		Email:     b.Email,
		OpenedAt:  b.OpenedAt,
		ClosedAt:  b.ClosedAt,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBranchListResponse converte uma lista de agências para o formato de resposta
func ToBranchListResponse(branches []*branch.Branch, totalCount, page, pageSize int) BranchListResponse {
	response := BranchListResponse{
		Branches:   make([]BranchResponse, len(branches)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, b := range branches {
		response.Branches[i] = ToBranchResponse(b)
	}

	return response
}
