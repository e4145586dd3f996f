package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/hours"
)

// HoursRequest representa a estrutura de dados para gravação de horário de funcionamento
type HoursRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

// HoursResponse representa a estrutura de resposta para horário de funcionamento
type HoursResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	DayOfWeek string    `json:"day_of_week"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	IsClosed  bool      `json:"is_closed"`
	Overnight bool      `json:"overnight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoursListResponse representa a resposta de listagem de horários de funcionamento
type HoursListResponse struct {
	Hours      []HoursResponse `json:"hours"`
	TotalCount int             `json:"total_count"`
}

// OpenStatusResponse representa a resposta da consulta de abertura de agência
type OpenStatusResponse struct {
	BranchID string    `json:"branch_id"`
	At       time.Time `json:"at"`
	Open     bool      `json:"open"`
}

// ToHoursResponse converte um modelo de domínio em uma resposta DTO
func ToHoursResponse(h *hours.BranchHours) HoursResponse {
	return HoursResponse{
		ID:        h.ID,
		BranchID:  h.BranchID,
		DayOfWeek: string(h.DayOfWeek),
		OpenTime:  h.OpenTime,
		CloseTime: h.CloseTime,
		IsClosed:  h.IsClosed,
		Overnight: h.IsOvernight(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// ToHoursListResponse converte uma lista de horários para o formato de resposta
func ToHoursListResponse(list []*hours.BranchHours) HoursListResponse {
	response := HoursListResponse{
		Hours:      make([]HoursResponse, len(list)),
		TotalCount: len(list),
	}

	for i, h := range list {
		response.Hours[i] = ToHoursResponse(h)
	}

	return response
}
