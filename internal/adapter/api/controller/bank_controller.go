package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/bank"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// BankController gerencia as requisições relacionadas a bancos
type BankController struct {
	bankRepository bank.Repository
	recorder       *audit.Recorder
}

// NewBankController cria uma nova instância de BankController
func NewBankController(bankRepository bank.Repository, recorder *audit.Recorder) *BankController {
	return &BankController{
		bankRepository: bankRepository,
		recorder:       recorder,
	}
}

// Create cria um novo banco
// @Summary Cria um novo banco
// @Description Cria uma nova instituição bancária, raiz da hierarquia organizacional
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body dto.BankRequest true "Dados do banco"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks [post]
func (c *BankController) Create(ctx *gin.Context) {
	var request dto.BankRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := bank.NewBank(
		request.Code,
		request.Name,
		request.LegalName,
		request.Address.ToBankAddress(),
		request.LogoURL,
		request.ThemeColor,
		request.CountryID,
		request.TimeZoneID,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do banco inválidos", err.Error()))
		return
	}

	if err := c.bankRepository.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBankDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Banco com mesmo código já existe", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar banco", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, b.ID, audit.ActionCreate, "bank", b.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusCreated, dto.ToBankResponse(b))
}

// GetByID busca um banco pelo ID
// @Summary Busca um banco pelo ID
// @Description Busca um banco pelo seu ID
// @Tags banks
// @Produce json
// @Param id path string true "ID do banco"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks/{id} [get]
func (c *BankController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	b, err := c.bankRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBankNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar banco", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankResponse(b))
}

// GetByCode busca um banco pelo código
// @Summary Busca um banco pelo código
// @Description Busca um banco pelo seu código institucional (comparação exata)
// @Tags banks
// @Produce json
// @Param code path string true "Código do banco"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks/code/{code} [get]
func (c *BankController) GetByCode(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Código não fornecido", ""))
		return
	}

	b, err := c.bankRepository.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrBankNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar banco", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankResponse(b))
}

// List lista os bancos com paginação
// @Summary Lista os bancos
// @Description Lista os bancos cadastrados com paginação
// @Tags banks
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.BankListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks [get]
func (c *BankController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	pagination := dto.GetPagination(page, pageSize)
	offset := (pagination.Page - 1) * pagination.PageSize

	banks, err := c.bankRepository.List(ctx, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar bancos", err.Error()))
		return
	}

	totalCount, err := c.bankRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar bancos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankListResponse(banks, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um banco
// @Summary Atualiza um banco
// @Description Atualiza os dados cadastrais de um banco
// @Tags banks
// @Accept json
// @Produce json
// @Param id path string true "ID do banco"
// @Param bank body dto.BankRequest true "Dados do banco"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks/{id} [put]
func (c *BankController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.BankRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.bankRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBankNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar banco", err.Error()))
		return
	}

	err = b.Update(
		request.Name,
		request.LegalName,
		request.Address.ToBankAddress(),
		request.LogoURL,
		request.ThemeColor,
		request.CountryID,
		request.TimeZoneID,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados do banco inválidos", err.Error()))
		return
	}

	if err := c.bankRepository.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBankNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar banco", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, b.ID, audit.ActionUpdate, "bank", b.ID, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToBankResponse(b))
}

// UpdateStatus ativa ou desativa um banco
// @Summary Ativa ou desativa um banco
// @Description Altera o status de um banco (activate ou deactivate)
// @Tags banks
// @Produce json
// @Param id path string true "ID do banco"
// @Param status path string true "Novo status (activate ou deactivate)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /banks/{id}/status/{status} [patch]
func (c *BankController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Param("status")

	isActive, action, ok := parseStatusAction(status)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "use 'activate' ou 'deactivate'"))
		return
	}

	if err := c.bankRepository.UpdateStatus(ctx, id, isActive, auth.UserID(ctx)); err != nil {
		if errors.Is(err, repository.ErrBankNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Banco não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status do banco", err.Error()))
		return
	}

	c.recorder.RecordBank(ctx, id, action, "bank", id, nil, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do banco atualizado", nil))
}

// parseStatusAction traduz o parâmetro de status da rota para o flag de
// ativação e a ação de auditoria correspondente
func parseStatusAction(status string) (bool, audit.Action, bool) {
	switch status {
	case "activate":
		return true, audit.ActionActivate, true
	case "deactivate":
		return false, audit.ActionDeactivate, true
	}
	return false, "", false
}
