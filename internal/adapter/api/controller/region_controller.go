package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/region"
	"github.com/hugohenrick/banking-org/pkg/auth"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// RegionController gerencia as requisições relacionadas a regionais
type RegionController struct {
	regionRepository region.Repository
	recorder         *audit.Recorder
}

// NewRegionController cria uma nova instância de RegionController
func NewRegionController(regionRepository region.Repository, recorder *audit.Recorder) *RegionController {
	return &RegionController{
		regionRepository: regionRepository,
		recorder:         recorder,
	}
}

// Create cria uma nova regional dentro de uma diretoria
// @Summary Cria uma nova regional
// @Description Cria uma nova regional dentro da diretoria informada
// @Tags regions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da diretoria"
// @Param region body dto.RegionRequest true "Dados da regional"
// @Success 201 {object} dto.RegionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions/{id}/regions [post]
func (c *RegionController) Create(ctx *gin.Context) {
	divisionID := ctx.Param("id")
	if divisionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da diretoria não fornecido", ""))
		return
	}

	var request dto.RegionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	r, err := region.NewRegion(divisionID, request.Code, request.Name, auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da regional inválidos", err.Error()))
		return
	}

	if err := c.regionRepository.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrRegionDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Regional com mesmo código já existe para esta diretoria", ""))
			return
		}
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Diretoria inexistente ou inativa", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar regional", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), audit.ActionCreate, "region", r.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToRegionResponse(r))
}

// GetByID busca uma regional pelo ID
// @Summary Busca uma regional pelo ID
// @Description Busca uma regional pelo seu ID
// @Tags regions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da regional"
// @Success 200 {object} dto.RegionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /regions/{id} [get]
func (c *RegionController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	r, err := c.regionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Regional não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar regional", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegionResponse(r))
}

// ListByDivision lista as regionais de uma diretoria com paginação
// @Summary Lista as regionais de uma diretoria
// @Description Lista as regionais da diretoria informada com paginação
// @Tags regions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da diretoria"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.RegionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /divisions/{id}/regions [get]
func (c *RegionController) ListByDivision(ctx *gin.Context) {
	divisionID := ctx.Param("id")
	if divisionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da diretoria não fornecido", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	regions, err := c.regionRepository.ListByDivision(ctx, divisionID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar regionais", err.Error()))
		return
	}

	totalCount, err := c.regionRepository.CountByDivision(ctx, divisionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar regionais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegionListResponse(regions, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de uma regional
// @Summary Atualiza uma regional
// @Description Atualiza os dados de uma regional
// @Tags regions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da regional"
// @Param region body dto.RegionRequest true "Dados da regional"
// @Success 200 {object} dto.RegionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /regions/{id} [put]
func (c *RegionController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.RegionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	r, err := c.regionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Regional não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar regional", err.Error()))
		return
	}

	if err := r.Update(request.Code, request.Name, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da regional inválidos", err.Error()))
		return
	}

	if err := c.regionRepository.Update(ctx, r); err != nil {
		if errors.Is(err, repository.ErrRegionDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Regional com mesmo código já existe para esta diretoria", ""))
			return
		}
		if errors.Is(err, repository.ErrRegionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Regional não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar regional", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), audit.ActionUpdate, "region", r.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToRegionResponse(r))
}

// UpdateStatus ativa ou desativa uma regional
// @Summary Ativa ou desativa uma regional
// @Description Altera o status de uma regional (activate ou deactivate)
// @Tags regions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da regional"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /regions/{id}/status/{status} [patch]
func (c *RegionController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.regionRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Regional não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status da regional", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, bankctx.GetBankID(ctx), action, "region", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status da regional atualizado", nil))
}
