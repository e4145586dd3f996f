package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// AuditController gerencia as consultas à trilha de auditoria
type AuditController struct {
	auditRepository audit.Repository
}

// NewAuditController cria uma nova instância de AuditController
func NewAuditController(auditRepository audit.Repository) *AuditController {
	return &AuditController{
		auditRepository: auditRepository,
	}
}

// ListByBank lista os registros de auditoria do banco
// @Summary Lista a trilha de auditoria do banco
// @Description Lista os registros de auditoria do banco da requisição, do mais recente para o mais antigo, com filtro opcional por intervalo de datas
// @Tags audit
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param from query string false "Início do intervalo (RFC 3339)"
// @Param to query string false "Fim do intervalo (RFC 3339)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.AuditLogListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /audit-logs [get]
func (c *AuditController) ListByBank(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	from, to, err := queryTimeRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Intervalo de datas inválido", "use o formato RFC 3339"))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	logs, err := c.auditRepository.ListByBank(ctx, bankID, from, to, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar trilha de auditoria", err.Error()))
		return
	}

	totalCount, err := c.auditRepository.CountByBank(ctx, bankID, from, to)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar trilha de auditoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditLogListResponse(logs, totalCount, pagination.Page, pagination.PageSize))
}

// ListByBranch lista os registros de auditoria de uma agência
// @Summary Lista a trilha de auditoria de uma agência
// @Description Lista os registros de auditoria da agência, do mais recente para o mais antigo, com filtro opcional por intervalo de datas
// @Tags audit
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param from query string false "Início do intervalo (RFC 3339)"
// @Param to query string false "Fim do intervalo (RFC 3339)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.AuditLogListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/audit-logs [get]
func (c *AuditController) ListByBranch(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	from, to, err := queryTimeRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Intervalo de datas inválido", "use o formato RFC 3339"))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	logs, err := c.auditRepository.ListByBranch(ctx, branchID, from, to, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar trilha de auditoria", err.Error()))
		return
	}

	totalCount, err := c.auditRepository.CountByBranch(ctx, branchID, from, to)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar trilha de auditoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditLogListResponse(logs, totalCount, pagination.Page, pagination.PageSize))
}

// queryTimeRange lê os parâmetros opcionais from e to no formato RFC 3339
func queryTimeRange(ctx *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := ctx.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}

	if raw := ctx.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}

	return from, to, nil
}
