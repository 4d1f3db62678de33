package handler

import (
	"net/http"

	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Abrir godoc
// @Summary Abre uma nova sessão de caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.AbrirCaixaRequest true "Dados de abertura"
// @Success 201 {object} dto.CaixaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Fechar godoc
// @Summary Fecha a sessão de caixa e calcula a diferença de saldo
// @Tags caixa
// @Accept json
// @Produce json
// @Param id path string true "ID do caixa"
// @Param body body dto.FecharCaixaRequest true "Declaração de fechamento"
// @Success 200 {object} dto.CaixaResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/caixa/{id}/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Aberto godoc
// @Summary Retorna a sessão de caixa aberta, se houver
// @Tags caixa
// @Produce json
// @Success 200 {object} dto.CaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/aberto [get]
func (h *CaixaHandler) Aberto(c *gin.Context) {
	resp, err := h.svc.CaixaAberto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Nenhum caixa aberto"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarTransacao godoc
// @Summary Registra uma transação manual no caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.TransacaoRequest true "Transação"
// @Success 201 {object} dto.TransacaoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/transacoes [post]
func (h *CaixaHandler) RegistrarTransacao(c *gin.Context) {
	var req dto.TransacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarTransacao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarTransacao godoc
// @Summary Atualiza valor, descrição ou forma de pagamento de uma transação
// @Tags caixa
// @Accept json
// @Produce json
// @Param id path string true "ID da transação"
// @Param body body dto.AtualizarTransacaoRequest true "Campos a atualizar"
// @Success 200 {object} dto.TransacaoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/transacoes/{id} [patch]
func (h *CaixaHandler) AtualizarTransacao(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarTransacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarTransacao(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoverTransacao godoc
// @Summary Remove uma transação do livro
// @Tags caixa
// @Param id path string true "ID da transação"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/transacoes/{id} [delete]
func (h *CaixaHandler) RemoverTransacao(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoverTransacao(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Relatorio godoc
// @Summary Relatório de uma sessão de caixa com totais por tipo
// @Tags caixa
// @Produce json
// @Param id path string true "ID do caixa"
// @Success 200 {object} dto.RelatorioCaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/{id}/relatorio [get]
func (h *CaixaHandler) Relatorio(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Relatorio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResumoPeriodo godoc
// @Summary Resumo financeiro de um período (lucro e fluxo líquidos)
// @Tags caixa
// @Produce json
// @Param data_de query string true "Data inicial (2006-01-02)"
// @Param data_ate query string true "Data final (2006-01-02)"
// @Success 200 {object} dto.ResumoPeriodoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/resumo [get]
func (h *CaixaHandler) ResumoPeriodo(c *gin.Context) {
	resp, err := h.svc.ResumoPeriodo(c.Request.Context(), c.Query("data_de"), c.Query("data_ate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarCaixas returns past and current sessions, newest first.
func (h *CaixaHandler) ListarCaixas(c *gin.Context) {
	f := dto.CaixaFilter{
		Status:  c.Query("status"),
		DataDe:  c.Query("data_de"),
		DataAte: c.Query("data_ate"),
	}
	resp, err := h.svc.ListarCaixas(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListarTransacoes returns ledger entries in chronological order.
func (h *CaixaHandler) ListarTransacoes(c *gin.Context) {
	f := dto.TransacaoFilter{
		Tipo:    c.Query("tipo"),
		DataDe:  c.Query("data_de"),
		DataAte: c.Query("data_ate"),
		CaixaID: c.Query("caixa_id"),
	}
	resp, err := h.svc.ListarTransacoes(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
