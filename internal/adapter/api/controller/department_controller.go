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
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// DepartmentController gerencia as requisições relacionadas a departamentos
type DepartmentController struct {
	departmentRepository department.Repository
	recorder             *audit.Recorder
}

// NewDepartmentController cria uma nova instância de DepartmentController
func NewDepartmentController(departmentRepository department.Repository, recorder *audit.Recorder) *DepartmentController {
	return &DepartmentController{
		departmentRepository: departmentRepository,
		recorder:             recorder,
	}
}

// Create cria um novo departamento dentro de uma agência
// @Summary Cria um novo departamento
// @Description Cria um novo departamento dentro da agência informada
// @Tags departments
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param department body dto.DepartmentRequest true "Dados do departamento"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	var request dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	d, err := department.NewDepartment(branchID, request.Name, auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do departamento inválidos", err.Error()))
		return
	}

	if err := c.departmentRepository.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Agência inexistente ou inativa", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar departamento", err.Error()))
		return
	}

	c.recorder.RecordBranch(ctx, branchID, audit.ActionCreate, "department", d.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToDepartmentResponse(d))
}

// GetByID busca um departamento pelo ID
// @Summary Busca um departamento pelo ID
// @Description Busca um departamento pelo seu ID
// @Tags departments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do departamento"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments/{id} [get]
func (c *DepartmentController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	d, err := c.departmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Departamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar departamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDepartmentResponse(d))
}

// ListByBranch lista os departamentos de uma agência com paginação
// @Summary Lista os departamentos de uma agência
// @Description Lista os departamentos da agência informada com paginação
// @Tags departments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.DepartmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/departments [get]
func (c *DepartmentController) ListByBranch(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	departments, err := c.departmentRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar departamentos", err.Error()))
		return
	}

	totalCount, err := c.departmentRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar departamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDepartmentListResponse(departments, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um departamento
// @Summary Atualiza um departamento
// @Description Atualiza os dados de um departamento
// @Tags departments
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do departamento"
// @Param department body dto.DepartmentRequest true "Dados do departamento"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	d, err := c.departmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Departamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar departamento", err.Error()))
		return
	}

	if err := d.Update(request.Name, auth.UserID(ctx)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do departamento inválidos", err.Error()))
		return
	}

	if err := c.departmentRepository.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Departamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar departamento", err.Error()))
		return
	}

	c.recorder.RecordBranch(ctx, d.BranchID, audit.ActionUpdate, "department", d.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToDepartmentResponse(d))
}

// UpdateStatus ativa ou desativa um departamento
// @Summary Ativa ou desativa um departamento
// @Description Altera o status de um departamento (activate ou deactivate)
// @Tags departments
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID do departamento"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments/{id}/status/{status} [patch]
func (c *DepartmentController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	d, err := c.departmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Departamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar departamento", err.Error()))
		return
	}

	if err := c.departmentRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Departamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do departamento", err.Error()))
		return
	}

	c.recorder.RecordBranch(ctx, d.BranchID, action, "department", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do departamento atualizado", nil))
}
