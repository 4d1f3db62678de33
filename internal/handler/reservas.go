package handler

import (
	"net/http"
	"time"

	"comanda/internal/dto"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservaHandler struct{ svc service.ReservaService }

func NewReservaHandler(svc service.ReservaService) *ReservaHandler {
	return &ReservaHandler{svc: svc}
}

// Criar godoc
// @Summary Cria uma reserva de mesa
// @Tags reservas
// @Accept json
// @Produce json
// @Param body body dto.CriarReservaRequest true "Dados da reserva"
// @Success 201 {object} dto.ReservaResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/reservas [post]
func (h *ReservaHandler) Criar(c *gin.Context) {
	var req dto.CriarReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar godoc
// @Summary Atualiza uma reserva (horário, pessoas, status)
// @Tags reservas
// @Accept json
// @Produce json
// @Param id path string true "ID da reserva"
// @Param body body dto.AtualizarReservaRequest true "Campos a atualizar"
// @Success 200 {object} dto.ReservaResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/reservas/{id} [patch]
func (h *ReservaHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary Cancela uma reserva (idempotente)
// @Tags reservas
// @Produce json
// @Param id path string true "ID da reserva"
// @Success 200 {object} dto.ReservaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/reservas/{id}/cancelar [post]
func (h *ReservaHandler) Cancelar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID returns a single reservation.
func (h *ReservaHandler) ObterPorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar returns reservations filtered by data, status and mesa.
func (h *ReservaHandler) Listar(c *gin.Context) {
	f := dto.ReservaFilter{
		Data:   c.Query("data"),
		Status: c.Query("status"),
		MesaID: c.Query("mesa_id"),
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Varrer godoc
// @Summary Finaliza manualmente as reservas cujo horário já passou
// @Tags reservas
// @Produce json
// @Success 200 {object} map[string]int
// @Router /v1/reservas/varrer [post]
func (h *ReservaHandler) Varrer(c *gin.Context) {
	n, err := h.svc.VarrerPassadas(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finalizadas": n})
}
