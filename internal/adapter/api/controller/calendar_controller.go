package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/calendar"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// CalendarController gerencia as requisições relacionadas a calendários de trabalho
type CalendarController struct {
	calendarRepository calendar.Repository
	recorder           *audit.Recorder
}

// NewCalendarController cria uma nova instância de CalendarController
func NewCalendarController(calendarRepository calendar.Repository, recorder *audit.Recorder) *CalendarController {
	return &CalendarController{
		calendarRepository: calendarRepository,
		recorder:           recorder,
	}
}

// Create cria um novo calendário de trabalho
// @Summary Cria um novo calendário de trabalho
// @Description Cria um novo calendário de trabalho no banco da requisição; no máximo um calendário padrão por banco
// @Tags calendars
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param calendar body dto.CalendarRequest true "Dados do calendário"
// @Success 201 {object} dto.CalendarResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars [post]
func (c *CalendarController) Create(ctx *gin.Context) {
	var request dto.CalendarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	cal, err := calendar.NewWorkingCalendar(bankID, request.Name, request.Description, request.IsDefault, request.TimeZoneID, auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do calendário inválidos", err.Error()))
		return
	}

	if err := c.calendarRepository.Create(ctx, cal); err != nil {
		if errors.Is(err, calendar.ErrDefaultAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Banco já possui um calendário de trabalho padrão", ""))
			return
		}
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Banco inexistente ou inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar calendário", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankID, audit.ActionCreate, "working_calendar", cal.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToCalendarResponse(cal))
}

// GetByID busca um calendário pelo ID
// @Summary Busca um calendário pelo ID
// @Description Busca um calendário de trabalho pelo seu ID
// @Tags calendars
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do calendário"
// @Success 200 {object} dto.CalendarResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars/{id} [get]
func (c *CalendarController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	cal, err := c.calendarRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Calendário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar calendário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(cal))
}

// GetDefault busca o calendário padrão do banco
// @Summary Busca o calendário padrão
// @Description Busca o calendário de trabalho padrão do banco da requisição
// @Tags calendars
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Success 200 {object} dto.CalendarResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars/default [get]
func (c *CalendarController) GetDefault(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	cal, err := c.calendarRepository.FindDefaultByBank(ctx, bankID)
	if err != nil {
		if errors.Is(err, calendar.ErrNoDefault) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não possui calendário de trabalho padrão", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar calendário padrão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(cal))
}

// List lista os calendários do banco com paginação
// @Summary Lista os calendários
// @Description Lista os calendários de trabalho do banco da requisição com paginação
// @Tags calendars
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.CalendarListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars [get]
func (c *CalendarController) List(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	calendars, err := c.calendarRepository.ListByBank(ctx, bankID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar calendários", err.Error()))
		return
	}

	totalCount, err := c.calendarRepository.CountByBank(ctx, bankID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar calendários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarListResponse(calendars, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um calendário
// @Summary Atualiza um calendário
// @Description Atualiza os dados de um calendário de trabalho
// @Tags calendars
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do calendário"
// @Param calendar body dto.CalendarRequest true "Dados do calendário"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars/{id} [put]
func (c *CalendarController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.CalendarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cal, err := c.calendarRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Calendário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar calendário", err.Error()))
		return
	}

	if err := cal.Update(request.Name, request.Description, request.IsDefault, request.TimeZoneID, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do calendário inválidos", err.Error()))
		return
	}

	if err := c.calendarRepository.Update(ctx, cal); err != nil {
		if errors.Is(err, calendar.ErrDefaultAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Banco já possui um calendário de trabalho padrão", ""))
			return
		}
		if errors.Is(err, calendar.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Calendário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar calendário", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, cal.BankID, audit.ActionUpdate, "working_calendar", cal.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(cal))
}

// UpdateStatus ativa ou desativa um calendário
// @Summary Ativa ou desativa um calendário
// @Description Altera o status de um calendário de trabalho (activate ou deactivate)
// @Tags calendars
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do calendário"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendars/{id}/status/{status} [patch]
func (c *CalendarController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.calendarRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Calendário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do calendário", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "working_calendar", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do calendário atualizado", nil))
}
