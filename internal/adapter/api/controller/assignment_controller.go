package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/calendar"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// AssignmentController gerencia as requisições relacionadas a vínculos de calendário
type AssignmentController struct {
	assignmentRepository calendar.AssignmentRepository
	resolver             *calendar.Resolver
	recorder             *audit.Recorder
}

// NewAssignmentController cria uma nova instância de AssignmentController
func NewAssignmentController(assignmentRepository calendar.AssignmentRepository, resolver *calendar.Resolver, recorder *audit.Recorder) *AssignmentController {
	return &AssignmentController{
		assignmentRepository: assignmentRepository,
		resolver:             resolver,
		recorder:             recorder,
	}
}

// Create cria um novo vínculo de calendário
// @Summary Vincula um calendário a um nó da hierarquia
// @Description Vincula um calendário de trabalho a uma agência, departamento ou cargo por uma janela de vigência; vigências sobrepostas para o mesmo alvo são rejeitadas
// @Tags assignments
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param assignment body dto.AssignmentRequest true "Dados do vínculo"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar-assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var request dto.AssignmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	a, err := calendar.NewAssignment(
		request.CalendarID,
		calendar.TargetType(request.TargetType),
		request.TargetID,
		request.EffectiveFrom,
		request.EffectiveTo,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do vínculo inválidos", err.Error()))
		return
	}

	if err := c.assignmentRepository.Create(ctx, a); err != nil {
		if errors.Is(err, calendar.ErrAssignmentOverlap) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Vigência se sobrepõe a um vínculo ativo do mesmo alvo", ""))
			return
		}
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Calendário ou alvo inexistente", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar vínculo de calendário", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), audit.ActionAssign, "calendar_assignment", a.ID,
		map[string]interface{}{
			"calendar_id": a.CalendarID,
			"target_type": string(a.TargetType()),
			"target_id":   a.TargetID(),
		}, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToAssignmentResponse(a))
}

// GetByID busca um vínculo pelo ID
// @Summary Busca um vínculo pelo ID
// @Description Busca um vínculo de calendário pelo seu ID
// @Tags assignments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do vínculo"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar-assignments/{id} [get]
func (c *AssignmentController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	a, err := c.assignmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrAssignmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Vínculo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar vínculo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssignmentResponse(a))
}

// ListByTarget lista os vínculos de um alvo da hierarquia
// @Summary Lista os vínculos de um alvo
// @Description Lista todos os vínculos de calendário de uma agência, departamento ou cargo
// @Tags assignments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param target_type query string true "Tipo do alvo (branch, department ou position)"
// @Param target_id query string true "ID do alvo"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar-assignments [get]
func (c *AssignmentController) ListByTarget(ctx *gin.Context) {
	targetType := calendar.TargetType(ctx.Query("target_type"))
	targetID := ctx.Query("target_id")

	if !targetType.Valid() || targetID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Alvo inválido", "informe target_type (branch, department ou position) e target_id"))
		return
	}

	assignments, err := c.assignmentRepository.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vínculos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssignmentListResponse(assignments))
}

// Resolve determina o calendário vigente para um alvo em um instante
// @Summary Resolve o calendário vigente de um alvo
// @Description Determina o calendário de trabalho vigente para o alvo no instante, subindo cargo, departamento e agência e recorrendo ao calendário padrão do banco
// @Tags assignments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param target_type query string true "Tipo do alvo (branch, department ou position)"
// @Param target_id query string true "ID do alvo"
// @Param at query string false "Instante da consulta (RFC 3339); padrão é o instante atual"
// @Success 200 {object} dto.ResolutionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar-assignments/resolve [get]
func (c *AssignmentController) Resolve(ctx *gin.Context) {
	targetType := calendar.TargetType(ctx.Query("target_type"))
	targetID := ctx.Query("target_id")

	if !targetType.Valid() || targetID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Alvo inválido", "informe target_type (branch, department ou position) e target_id"))
		return
	}

	at, err := queryInstant(ctx, "at")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Instante inválido", "use o formato RFC 3339"))
		return
	}

	cal, err := c.resolver.Resolve(ctx, targetType, targetID, at)
	if err != nil {
		if errors.Is(err, calendar.ErrNoCalendarResolved) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Nenhum calendário de trabalho resolvido para o alvo", ""))
			return
		}
		if errors.Is(err, repository.ErrPositionNotFound) || errors.Is(err, repository.ErrDepartmentNotFound) || errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Alvo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao resolver calendário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ResolutionResponse{
		TargetType: string(targetType),
		TargetID:   targetID,
		At:         at,
		Calendar:   dto.ToCalendarResponse(cal),
	})
}

// UpdateStatus ativa ou desativa um vínculo
// @Summary Ativa ou desativa um vínculo
// @Description Altera o status de um vínculo de calendário (activate ou deactivate)
// @Tags assignments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do vínculo"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar-assignments/{id}/status/{status} [patch]
func (c *AssignmentController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.assignmentRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, calendar.ErrAssignmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Vínculo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do vínculo", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "calendar_assignment", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do vínculo atualizado", nil))
}
