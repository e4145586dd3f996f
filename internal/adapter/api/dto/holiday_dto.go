package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/holiday"
)

// HolidayRequest representa a estrutura de dados para criação de feriado.
// BranchID preenchido cria um feriado no escopo da agência; vazio, no escopo
// do banco da requisição.
type HolidayRequest struct {
	BranchID    *string   `json:"branch_id"`
	CountryID   string    `json:"country_id"`
	Date        time.Time `json:"date" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	IsRecurring bool      `json:"is_recurring"`
}

// HolidayResponse representa a estrutura de resposta para feriado
type HolidayResponse struct {
	ID          string    `json:"id"`
	BankID      *string   `json:"bank_id,omitempty"`
	BranchID    *string   `json:"branch_id,omitempty"`
	CountryID   string    `json:"country_id,omitempty"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	IsRecurring bool      `json:"is_recurring"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HolidayListResponse representa a resposta de listagem de feriados
type HolidayListResponse struct {
	Holidays   []HolidayResponse `json:"holidays"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// HolidayCheckResponse representa a resposta da consulta de feriado em uma data
type HolidayCheckResponse struct {
	Date    time.Time `json:"date"`
	Holiday bool      `json:"holiday"`
}

// ToHolidayResponse converte um modelo de domínio em uma resposta DTO
func ToHolidayResponse(h *holiday.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		BankID:      h.BankID,
		BranchID:    h.BranchID,
		CountryID:   h.CountryID,
		Date:        h.Date,
		Name:        h.Name,
		IsRecurring: h.IsRecurring,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// ToHolidayListResponse converte uma lista de feriados para o formato de resposta
func ToHolidayListResponse(holidays []*holiday.Holiday, totalCount, page, pageSize int) HolidayListResponse {
	response := HolidayListResponse{
		Holidays:   make([]HolidayResponse, len(holidays)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, h := range holidays {
		response.Holidays[i] = ToHolidayResponse(h)
	}

	return response
}
