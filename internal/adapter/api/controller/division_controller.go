package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/division"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// DivisionController gerencia as requisições relacionadas a diretorias
type DivisionController struct {
	divisionRepository division.Repository
	recorder           *audit.Recorder
}

// NewDivisionController cria uma nova instância de DivisionController
func NewDivisionController(divisionRepository division.Repository, recorder *audit.Recorder) *DivisionController {
	return &DivisionController{
		divisionRepository: divisionRepository,
		recorder:           recorder,
	}
}

// Create cria uma nova diretoria
// @Summary Cria uma nova diretoria
// @Description Cria uma nova diretoria no banco da requisição
// @Tags divisions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param division body dto.DivisionRequest true "Dados da diretoria"
// @Success 201 {object} dto.DivisionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions [post]
func (c *DivisionController) Create(ctx *gin.Context) {
	var request dto.DivisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	d, err := division.NewDivision(bankID, request.Code, request.Name, auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da diretoria inválidos", err.Error()))
		return
	}

	if err := c.divisionRepository.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDivisionDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Diretoria com mesmo código já existe para este banco", ""))
			return
		}
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Banco inexistente ou inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar diretoria", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankID, audit.ActionCreate, "division", d.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToDivisionResponse(d))
}

// GetByID busca uma diretoria pelo ID
// @Summary Busca uma diretoria pelo ID
// @Description Busca uma diretoria pelo seu ID
// @Tags divisions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da diretoria"
// @Success 200 {object} dto.DivisionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions/{id} [get]
func (c *DivisionController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	d, err := c.divisionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDivisionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Diretoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar diretoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDivisionResponse(d))
}

// List lista as diretorias do banco com paginação
// @Summary Lista as diretorias
// @Description Lista as diretorias do banco da requisição com paginação
// @Tags divisions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.DivisionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions [get]
func (c *DivisionController) List(ctx *gin.Context) {
	bankID := bankctx.GetBankID(ctx)
	if bankID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do banco não encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	divisions, err := c.divisionRepository.ListByBank(ctx, bankID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar diretorias", err.Error()))
		return
	}

	totalCount, err := c.divisionRepository.CountByBank(ctx, bankID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar diretorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDivisionListResponse(divisions, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de uma diretoria
// @Summary Atualiza uma diretoria
// @Description Atualiza os dados de uma diretoria
// @Tags divisions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da diretoria"
// @Param division body dto.DivisionRequest true "Dados da diretoria"
// @Success 200 {object} dto.DivisionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions/{id} [put]
func (c *DivisionController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.DivisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	d, err := c.divisionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDivisionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Diretoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar diretoria", err.Error()))
		return
	}

	if err := d.Update(request.Code, request.Name, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da diretoria inválidos", err.Error()))
		return
	}

	if err := c.divisionRepository.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDivisionDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Diretoria com mesmo código já existe para este banco", ""))
			return
		}
		if errors.Is(err, repository.ErrDivisionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Diretoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar diretoria", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, d.BankID, audit.ActionUpdate, "division", d.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToDivisionResponse(d))
}

// UpdateStatus ativa ou desativa uma diretoria
// @Summary Ativa ou desativa uma diretoria
// @Description Altera o status de uma diretoria (activate ou deactivate)
// @Tags divisions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da diretoria"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions/{id}/status/{status} [patch]
func (c *DivisionController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.divisionRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrDivisionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Diretoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status da diretoria", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "division", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status da diretoria atualizado", nil))
}
