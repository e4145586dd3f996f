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
	"github.com/hugohenrick/banking-org/internal/domain/branch"
	"github.com/hugohenrick/banking-org/internal/domain/calendar"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// BranchController gerencia as requisições relacionadas a agências
type BranchController struct {
	branchRepository branch.Repository
	operating        *calendar.OperatingService
	recorder         *audit.Recorder
}

// NewBranchController cria uma nova instância de BranchController
func NewBranchController(branchRepository branch.Repository, operating *calendar.OperatingService, recorder *audit.Recorder) *BranchController {
	return &BranchController{
		branchRepository: branchRepository,
		operating:        operating,
		recorder:         recorder,
	}
}

// Create cria uma nova agência
// @Summary Cria uma nova agência
// @Description Cria uma nova agência no banco da requisição
// @Tags branches
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param branch body dto.BranchRequest true "Dados da agência"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	openedAt := request.OpenedAt
	if openedAt.IsZero() {
		openedAt = time.Now()
	}

	b, err := branch.NewBranch(
		bankID,
		request.RegionID,
		request.Code,
		request.Name,
		request.Latitude,
		request.Longitude,
		request.Address.ToBranchAddress(),
		request.Phone,
		request.Email,
		openedAt,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da agência inválidos", err.Error()))
		return
	}

	if err := c.branchRepository.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBranchDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Agência com mesmo código já existe para este banco", ""))
			return
		}
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Banco ou regional inexistente ou inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar agência", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankID, audit.ActionCreate, "branch", b.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(b))
}

// GetByID busca uma agência pelo ID
// @Summary Busca uma agência pelo ID
// @Description Busca uma agência pelo seu ID
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [get]
func (c *BranchController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	b, err := c.branchRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agência", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// GetByCode busca uma agência pelo código dentro do banco da requisição
// @Summary Busca uma agência pelo código
// @Description Busca uma agência pelo seu código dentro do banco da requisição
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param code path string true "Código da agência"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/code/{code} [get]
func (c *BranchController) GetByCode(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Código não fornecido", ""))
		return
	}

	b, err := c.branchRepository.FindByBankAndCode(ctx, bankctx.GetBankID(ctx), code)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agência", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// List lista as agências do banco com paginação
// @Summary Lista as agências
// @Description Lista as agências do banco da requisição com paginação
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.BranchListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [get]
func (c *BranchController) List(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	branches, err := c.branchRepository.ListByBank(ctx, bankID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar agências", err.Error()))
		return
	}

	totalCount, err := c.branchRepository.CountByBank(ctx, bankID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar agências", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(branches, totalCount, pagination.Page, pagination.PageSize))
}

// ListByRegion lista as agências de uma regional com paginação
// @Summary Lista as agências de uma regional
// @Description Lista as agências da regional informada com paginação
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da regional"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.BranchListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /regions/{id}/branches [get]
func (c *BranchController) ListByRegion(ctx *gin.Context) {
	regionID := ctx.Param("id")
	if regionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da regional não fornecido", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	branches, err := c.branchRepository.ListByRegion(ctx, regionID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar agências", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(branches, len(branches), pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de uma agência
// @Summary Atualiza uma agência
// @Description Atualiza os dados de uma agência
// @Tags branches
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param branch body dto.BranchRequest true "Dados da agência"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [put]
func (c *BranchController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.branchRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agência", err.Error()))
		return
	}

	err = b.Update(
		request.RegionID,
		request.Code,
		request.Name,
		request.Latitude,
		request.Longitude,
		request.Address.ToBranchAddress(),
		request.Phone,
		request.Email,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da agência inválidos", err.Error()))
		return
	}

	if err := c.branchRepository.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBranchDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Agência com mesmo código já existe para este banco", ""))
			return
		}
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar agência", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, b.BankID, audit.ActionUpdate, "branch", b.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// Close registra o encerramento de uma agência
// @Summary Encerra uma agência
// @Description Registra a data de encerramento da agência e a desativa
// @Tags branches
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param close body dto.BranchCloseRequest true "Data de encerramento"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/close [patch]
func (c *BranchController) Close(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.BranchCloseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.branchRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agência", err.Error()))
		return
	}

	if err := b.Close(request.ClosedAt, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de encerramento inválida", err.Error()))
		return
	}

	if err := c.branchRepository.Update(ctx, b); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao encerrar agência", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, b.BankID, audit.ActionDeactivate, "branch", b.ID,
		map[string]interface{}{"closed_at": request.ClosedAt}, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// UpdateStatus ativa ou desativa uma agência
// @Summary Ativa ou desativa uma agência
// @Description Altera o status de uma agência (activate ou deactivate)
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/status/{status} [patch]
func (c *BranchController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.branchRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status da agência", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "branch", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status da agência atualizado", nil))
}

// OperatingStatus consulta a situação operacional de uma agência em um instante
// @Summary Consulta a situação operacional de uma agência
// @Description Informa se a agência está operando no instante, considerando feriados, horário de funcionamento e o calendário de trabalho resolvido
// @Tags branches
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param at query string false "Instante da consulta (RFC 3339); padrão é o instante atual"
// @Success 200 {object} dto.OperatingStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/operating-status [get]
func (c *BranchController) OperatingStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	at, err := queryInstant(ctx, "at")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Instante inválido", "use o formato RFC 3339"))
		return
	}

	status, err := c.operating.StatusAt(ctx, id, at)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar situação operacional", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOperatingStatusResponse(id, at, status))
}

// queryInstant lê um instante RFC 3339 da query string; ausente, usa o instante atual
func queryInstant(ctx *gin.Context, name string) (time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Now(), nil
	}

	return time.Parse(time.RFC3339, raw)
}
