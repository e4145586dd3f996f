package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/audit"
)

// AuditLogResponse representa a estrutura de resposta para registro de auditoria
type AuditLogResponse struct {
	ID         string                 `json:"id"`
	BankID     *string                `json:"bank_id,omitempty"`
	BranchID   *string                `json:"branch_id,omitempty"`
	Action     string                 `json:"action"`
	EntityName string                 `json:"entity_name"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	IPAddress  string                 `json:"ip_address"`
	UserID     string                 `json:"user_id"`
	CreatedAt  time.Time              `json:"created_at"`
}

// AuditLogListResponse representa a resposta de listagem de registros de auditoria
type AuditLogListResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToAuditLogResponse converte um modelo de domínio em uma resposta DTO
func ToAuditLogResponse(l *audit.Log) AuditLogResponse {
	return AuditLogResponse{
		ID:         l.ID,
		BankID:     l.BankID,
		BranchID:   l.BranchID,
		Action:     string(l.Action),
		EntityName: l.EntityName,
		EntityID:   l.EntityID,
		Metadata:   l.Metadata,
		IPAddress:  l.IPAddress,
		UserID:     l.UserID,
		CreatedAt:  l.CreatedAt,
	}
}

// ToAuditLogListResponse converte uma lista de registros para o formato de resposta
func ToAuditLogListResponse(logs []*audit.Log, totalCount, page, pageSize int) AuditLogListResponse {
	response := AuditLogListResponse{
		Logs:       make([]AuditLogResponse, len(logs)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, l := range logs {
		response.Logs[i] = ToAuditLogResponse(l)
	}

	return response
}
