package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/department"
	"github.com/hugohenrick/banking-org/internal/domain/position"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// PositionController gerencia as requisições relacionadas a cargos
type PositionController struct {
	positionRepository   position.Repository
	departmentRepository department.Repository
	recorder             *audit.Recorder
}

// NewPositionController cria uma nova instância de PositionController
func NewPositionController(positionRepository position.Repository, departmentRepository department.Repository, recorder *audit.Recorder) *PositionController {
	return &PositionController{
		positionRepository:   positionRepository,
		departmentRepository: departmentRepository,
		recorder:             recorder,
	}
}

// Create cria um novo cargo dentro de um departamento
// @Summary Cria um novo cargo
// @Description Cria um novo cargo dentro do departamento informado
// @Tags positions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do departamento"
// @Param position body dto.PositionRequest true "Dados do cargo"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments/{id}/positions [post]
func (c *PositionController) Create(ctx *gin.Context) {
	departmentID := ctx.Param("id")
	if departmentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do departamento não fornecido", ""))
		return
	}

	var request dto.PositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := position.NewPosition(departmentID, request.Title, auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do cargo inválidos", err.Error()))
		return
	}

	if err := c.positionRepository.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Departamento inexistente ou inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cargo", err.Error()))
		return
	}

	c.recordPosition(ctx, departmentID, audit.ActionCreate, p.ID)

	ctx.JSON(http.StatusCreated, dto.ToPositionResponse(p))
}

// GetByID busca um cargo pelo ID
// @Summary Busca um cargo pelo ID
// @Description Busca um cargo pelo seu ID
// @Tags positions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do cargo"
// @Success 200 {object} dto.PositionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id} [get]
func (c *PositionController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	p, err := c.positionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cargo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cargo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPositionResponse(p))
}

// ListByDepartment lista os cargos de um departamento com paginação
// @Summary Lista os cargos de um departamento
// @Description Lista os cargos do departamento informado com paginação
// @Tags positions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do departamento"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.PositionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments/{id}/positions [get]
func (c *PositionController) ListByDepartment(ctx *gin.Context) {
	departmentID := ctx.Param("id")
	if departmentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID do departamento não fornecido", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	positions, err := c.positionRepository.ListByDepartment(ctx, departmentID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar cargos", err.Error()))
		return
	}

	totalCount, err := c.positionRepository.CountByDepartment(ctx, departmentID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar cargos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPositionListResponse(positions, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um cargo
// @Summary Atualiza um cargo
// @Description Atualiza os dados de um cargo
// @Tags positions
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do cargo"
// @Param position body dto.PositionRequest true "Dados do cargo"
// @Success 200 {object} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id} [put]
func (c *PositionController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.PositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.positionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cargo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cargo", err.Error()))
		return
	}

	if err := p.Update(request.Title, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do cargo inválidos", err.Error()))
		return
	}

	if err := c.positionRepository.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cargo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cargo", err.Error()))
		return
	}

	c.recordPosition(ctx, p.DepartmentID, audit.ActionUpdate, p.ID)

	ctx.JSON(http.StatusOK, dto.ToPositionResponse(p))
}

// UpdateStatus ativa ou desativa um cargo
// @Summary Ativa ou desativa um cargo
// @Description Altera o status de um cargo (activate ou deactivate)
// @Tags positions
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do cargo"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id}/status/{status} [patch]
func (c *PositionController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	p, err := c.positionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cargo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cargo", err.Error()))
		return
	}

	if err := c.positionRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cargo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do cargo", err.Error()))
		return
	}

	c.recordPosition(ctx, p.DepartmentID, action, id)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do cargo atualizado", nil))
}

// recordPosition registra a auditoria de cargo no escopo da agência dona do departamento
func (c *PositionController) recordPosition(ctx *gin.Context, departmentID string, action audit.Action, positionID string) {
	d, err := c.departmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return
	}

	c.recorder.RecordBranch(ctx, d.BranchID, action, "position", positionID, nil, ctx.ClientIP(), auth.UserID(ctx))
}
