package handler

import (
	"net/http"

	"comanda/internal/dto"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type MesaHandler struct{ svc service.MesaService }

func NewMesaHandler(svc service.MesaService) *MesaHandler { return &MesaHandler{svc: svc} }

// Criar godoc
// @Summary Cadastra uma mesa
// @Tags mesas
// @Accept json
// @Produce json
// @Param body body dto.CriarMesaRequest true "Dados da mesa"
// @Success 201 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/mesas [post]
func (h *MesaHandler) Criar(c *gin.Context) {
	var req dto.CriarMesaRequest
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

// Atualizar updates número, capacidade or localização.
func (h *MesaHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarMesaRequest
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

// AtualizarStatus flips a mesa between disponivel / ocupada / reservada.
func (h *MesaHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarStatusMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID returns a single mesa.
func (h *MesaHandler) ObterPorID(c *gin.Context) {
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

// Listar returns every mesa ordered by número.
func (h *MesaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Unir godoc
// @Summary Une mesas disponíveis em uma mesa principal
// @Tags mesas
// @Accept json
// @Produce json
// @Param body body dto.UnirMesasRequest true "Mesas a unir"
// @Success 200 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/mesas/unir [post]
func (h *MesaHandler) Unir(c *gin.Context) {
	var req dto.UnirMesasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Unir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Separar godoc
// @Summary Desfaz a união, restaurando a capacidade original
// @Tags mesas
// @Produce json
// @Param id path string true "ID da mesa principal"
// @Success 200 {array} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/mesas/{id}/separar [post]
func (h *MesaHandler) Separar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Separar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
