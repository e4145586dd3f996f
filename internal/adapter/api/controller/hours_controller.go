package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/hours"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// HoursController gerencia as requisições relacionadas a horários de funcionamento
type HoursController struct {
	hoursRepository hours.Repository
	hoursService    *hours.Service
	recorder        *audit.Recorder
}

// NewHoursController cria uma nova instância de HoursController
func NewHoursController(hoursRepository hours.Repository, hoursService *hours.Service, recorder *audit.Recorder) *HoursController {
	return &HoursController{
		hoursRepository: hoursRepository,
		hoursService:    hoursService,
		recorder:        recorder,
	}
}

// Upsert grava o horário de funcionamento de uma agência para um dia da semana
// @Summary Grava o horário de funcionamento de um dia
// @Description Grava o horário de funcionamento da agência para o dia informado, substituindo o registro existente do mesmo dia
// @Tags hours
// @Accept json
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param hours body dto.HoursRequest true "Horário de funcionamento"
// @Success 200 {object} dto.HoursResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/hours [put]
func (c *HoursController) Upsert(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	var request dto.HoursRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	h, err := hours.NewBranchHours(
		branchID,
		hours.DayOfWeek(request.DayOfWeek),
		request.OpenTime,
		request.CloseTime,
		request.IsClosed,
		auth.UserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Horário de funcionamento inválido", err.Error()))
		return
	}

	if err := c.hoursRepository.Upsert(ctx, h); err != nil {
		if errors.Is(err, repository.ErrInvalidParent) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Agência inexistente ou inativa", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar horário de funcionamento", err.Error()))
		return
	}

	c.recorder.RecordBranch(ctx, branchID, audit.ActionUpdate, "branch_hours", h.ID,
		map[string]interface{}{"day_of_week": request.DayOfWeek}, ctx.ClientIP(), auth.UserID(ctx))

	ctx.JSON(http.StatusOK, dto.ToHoursResponse(h))
}

// ListByBranch lista os horários de funcionamento de uma agência
// @Summary Lista os horários de funcionamento
// @Description Lista os horários de funcionamento da agência por dia da semana
// @Tags hours
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Success 200 {object} dto.HoursListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/hours [get]
func (c *HoursController) ListByBranch(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	list, err := c.hoursRepository.ListByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar horários de funcionamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHoursListResponse(list))
}

// IsOpen consulta se a agência está aberta em um instante
// @Summary Consulta se a agência está aberta
// @Description Informa se a agência está aberta no instante, no fuso horário do banco, considerando janelas que atravessam a meia-noite
// @Tags hours
// @Produce json
// @Param bank-id header string true "ID do banco"
// @Param id path string true "ID da agência"
// @Param at query string false "Instante da consulta (RFC 3339); padrão é o instante atual"
// @Success 200 {object} dto.OpenStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/hours/open [get]
func (c *HoursController) IsOpen(ctx *gin.Context) {
	branchID := ctx.Param("id")
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da agência não fornecido", ""))
		return
	}

	at, err := queryInstant(ctx, "at")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Instante inválido", "use o formato RFC 3339"))
		return
	}

	open, err := c.hoursService.IsOpenAt(ctx, branchID, at)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agência não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar horário de funcionamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OpenStatusResponse{
		BranchID: branchID,
		At:       at,
		Open:     open,
	})
}
