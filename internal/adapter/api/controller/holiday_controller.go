package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/holiday"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// HolidayController gerencia as requisições relacionadas a feriados
type HolidayController struct {
	holidayRepository holiday.Repository
	holidayService    *holiday.Service
	recorder          *audit.Recorder
}

// NewHolidayController cria uma nova instância de HolidayController
func NewHolidayController(holidayRepository holiday.Repository, holidayService *holiday.Service, recorder *audit.Recorder) *HolidayController {
	return &HolidayController{
		holidayRepository: holidayRepository,
		holidayService:    holidayService,
		recorder:          recorder,
	}
}

// Create cria um novo feriado
// @Summary Cria um novo feriado
// @Description Cria um feriado no escopo do banco da requisição ou, quando branch_id é informado, no escopo da agência
// @Tags holidays
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param holiday body dto.HolidayRequest true "Dados do feriado"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holidays [post]
func (c *HolidayController) Create(ctx *gin.Context) {
	var request dto.HolidayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	var h *holiday.Holiday
	var err error

	if request.BranchID != nil && *request.BranchID != "" {
		h, err = holiday.NewBranchHoliday(*request.BranchID, request.CountryID, request.Date, request.Name, request.IsRecurring, auth.UserID(ctx))
	} else {
		h, err = holiday.NewBankHoliday(bankID, request.CountryID, request.Date, request.Name, request.IsRecurring, auth.UserID(ctx))
	}

	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do feriado inválidos", err.Error()))
		return
	}

	if err := c.holidayRepository.Create(ctx, h); err != nil {
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Banco ou agência inexistente ou inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar feriado", err.Error()))
		return
	}

	if h.BranchID != nil {
		c.recorder.RecordBranch(ctx, *h.BranchID, audit.ActionCreate, "holiday", h.ID, nil, ctx.ClientIP(), auth.UserID(ctx))
	} else {
		c.recorder.RecordBank(ctx, bankID, audit.ActionCreate, "holiday", h.ID, nil, ctx.ClientIP(), auth.UserID(ctx))
	}

	ctx.JSON(http.StatusCreated, dto.ToHolidayResponse(h))
}

// GetByID busca um feriado pelo ID
// @Summary Busca um feriado pelo ID
// @Description Busca um feriado pelo seu ID
// @Tags holidays
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do feriado"
// @Success 200 {object} dto.HolidayResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holidays/{id} [get]
func (c *HolidayController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	h, err := c.holidayRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, holiday.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Feriado não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar feriado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHolidayResponse(h))
}

// List lista os feriados do banco com paginação
// @Summary Lista os feriados
// @Description Lista os feriados do banco da requisição, incluindo os de suas agências, com paginação
// @Tags holidays
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.HolidayListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holidays [get]
func (c *HolidayController) List(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	holidays, err := c.holidayRepository.ListByBank(ctx, bankID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar feriados", err.Error()))
		return
	}

	totalCount, err := c.holidayRepository.CountByBank(ctx, bankID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar feriados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHolidayListResponse(holidays, totalCount, pagination.Page, pagination.PageSize))
}

// Check consulta se uma data é feriado
// @Summary Consulta se uma data é feriado
// @Description Informa se a data é feriado no escopo do banco ou, quando branch_id é informado, no escopo da agência (que prevalece sobre o banco)
// @Tags holidays
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param date query string true "Data da consulta (YYYY-MM-DD)"
// @Param branch_id query string false "ID da agência"
// @Success 200 {object} dto.HolidayCheckResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holidays/check [get]
func (c *HolidayController) Check(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data inválida", "use o formato YYYY-MM-DD"))
		return
	}

	var isHoliday bool
	if branchID := ctx.Query("branch_id"); branchID != "" {
		isHoliday, err = c.holidayService.IsBranchHoliday(ctx, branchID, date)
	} else {
		isHoliday, err = c.holidayService.IsBankHoliday(ctx, bankID, date)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar feriado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.HolidayCheckResponse{
		Date:    date,
		Holiday: isHoliday,
	})
}

// UpdateStatus ativa ou desativa um feriado
// @Summary Ativa ou desativa um feriado
// @Description Altera o status de um feriado (activate ou deactivate)
// @Tags holidays
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do feriado"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holidays/{id}/status/{status} [patch]
func (c *HolidayController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	h, err := c.holidayRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, holiday.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Feriado não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar feriado", err.Error()))
		return
	}

	if err := c.holidayRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, holiday.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Feriado não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do feriado", err.Error()))
		return
	}

	if h.BranchID != nil {
		c.recorder.RecordBranch(ctx, *h.BranchID, action, "holiday", id, nil, ctx.ClientIP(), auth.UserID(ctx))
	} else {
		c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "holiday", id, nil, ctx.ClientIP(), auth.UserID(ctx))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do feriado atualizado", nil))
}
