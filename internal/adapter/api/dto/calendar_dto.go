package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/calendar"
)

// CalendarRequest representa a estrutura de dados para criação/atualização de calendário
type CalendarRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
	TimeZoneID  string `json:"time_zone_id"`
}

// CalendarResponse representa a estrutura de resposta para calendário de trabalho
type CalendarResponse struct {
	ID          string    `json:"id"`
	BankID      string    `json:"bank_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	TimeZoneID  string    `json:"time_zone_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CalendarListResponse representa a resposta de listagem de calendários
type CalendarListResponse struct {
	Calendars  []CalendarResponse `json:"calendars"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// AssignmentRequest representa a estrutura de dados para criação de vínculo de calendário
type AssignmentRequest struct {
	CalendarID    string     `json:"calendar_id" binding:"required"`
	TargetType    string     `json:"target_type" binding:"required"`
	TargetID      string     `json:"target_id" binding:"required"`
	EffectiveFrom time.Time  `json:"effective_from" binding:"required"`
	EffectiveTo   *time.Time `json:"effective_to"`
}

// AssignmentResponse representa a estrutura de resposta para vínculo de calendário
type AssignmentResponse struct {
	ID            string     `json:"id"`
	CalendarID    string     `json:"calendar_id"`
	TargetType    string     `json:"target_type"`
	TargetID      string     `json:"target_id"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AssignmentListResponse representa a resposta de listagem de vínculos
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalCount  int                  `json:"total_count"`
}

// ResolutionResponse representa a resposta da resolução de calendário para um alvo
type ResolutionResponse struct {
	TargetType string           `json:"target_type"`
	TargetID   string           `json:"target_id"`
	At         time.Time        `json:"at"`
	Calendar   CalendarResponse `json:"calendar"`
}

// OperatingStatusResponse representa a resposta da situação operacional de uma agência
type OperatingStatusResponse struct {
	BranchID  string            `json:"branch_id"`
	At        time.Time         `json:"at"`
	Operating bool              `json:"operating"`
	Holiday   bool              `json:"holiday"`
	Open      bool              `json:"open"`
	Calendar  *CalendarResponse `json:"calendar,omitempty"`
}

// ToCalendarResponse converte um modelo de domínio em uma resposta DTO
func ToCalendarResponse(c *calendar.WorkingCalendar) CalendarResponse {
	return CalendarResponse{
		ID:          c.ID,
		BankID:      c.BankID,
		Name:        c.Name,
		Description: c.Description,
		IsDefault:   c.IsDefault,
		TimeZoneID:  c.TimeZoneID,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCalendarListResponse converte uma lista de calendários para o formato de resposta
func ToCalendarListResponse(calendars []*calendar.WorkingCalendar, totalCount, page, pageSize int) CalendarListResponse {
	response := CalendarListResponse{
		Calendars:  make([]CalendarResponse, len(calendars)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, c := range calendars {
		response.Calendars[i] = ToCalendarResponse(c)
	}

	return response
}

// ToAssignmentResponse converte um modelo de domínio em uma resposta DTO
func ToAssignmentResponse(a *calendar.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		CalendarID:    a.CalendarID,
		TargetType:    string(a.TargetType()),
		TargetID:      a.TargetID(),
		EffectiveFrom: a.EffectiveFrom,
		EffectiveTo:   a.EffectiveTo,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToAssignmentListResponse converte uma lista de vínculos para o formato de resposta
func ToAssignmentListResponse(assignments []*calendar.Assignment) AssignmentListResponse {
	response := AssignmentListResponse{
		Assignments: make([]AssignmentResponse, len(assignments)),
		TotalCount:  len(assignments),
	}

	for i, a := range assignments {
		response.Assignments[i] = ToAssignmentResponse(a)
	}

	return response
}

// ToOperatingStatusResponse converte a situação operacional para o formato de resposta
func ToOperatingStatusResponse(branchID string, at time.Time, status *calendar.OperatingStatus) OperatingStatusResponse {
	response := OperatingStatusResponse{
		BranchID:  branchID,
		At:        at,
		Operating: status.Operating,
		Holiday:   status.Holiday,
		Open:      status.Open,
	}

	if status.Calendar != nil {
		cal := ToCalendarResponse(status.Calendar)
		response.Calendar = &cal
	}

	return response
}
