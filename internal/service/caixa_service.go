package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Fechar(ctx context.Context, id uuid.UUID, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error)
	// CaixaAberto returns (nil, nil) when no session is open.
	CaixaAberto(ctx context.Context) (*dto.CaixaResponse, error)
	RegistrarTransacao(ctx context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error)
	AtualizarTransacao(ctx context.Context, id uuid.UUID, req dto.AtualizarTransacaoRequest) (*dto.TransacaoResponse, error)
	RemoverTransacao(ctx context.Context, id uuid.UUID) error
	// VendaDePedido settles an order as a venda. Auto-opens a zero-balance
	// caixa when none is open.
	VendaDePedido(ctx context.Context, req dto.VendaPedidoRequest) (*dto.TransacaoResponse, error)
	Relatorio(ctx context.Context, id uuid.UUID) (*dto.RelatorioCaixaResponse, error)
	ResumoPeriodo(ctx context.Context, dataDe, dataAte string) (*dto.ResumoPeriodoResponse, error)
	ListarCaixas(ctx context.Context, f dto.CaixaFilter) ([]dto.CaixaResponse, error)
	ListarTransacoes(ctx context.Context, f dto.TransacaoFilter) ([]dto.TransacaoResponse, error)
}

type caixaService struct {
	repo repository.CaixaRepository
	// dispatcher and resumoEmail drive the closing-summary email; both are
	// optional so unit tests run without Redis.
	dispatcher  *worker.Dispatcher
	resumoEmail string
	// mu serializes every check-then-act sequence (single open caixa,
	// venda duplicada) across concurrent requests.
	mu sync.Mutex
}

func NewCaixaService(repo repository.CaixaRepository, dispatcher *worker.Dispatcher, resumoEmail string) CaixaService {
	return &caixaService{repo: repo, dispatcher: dispatcher, resumoEmail: resumoEmail}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abrir(ctx, req)
}

func (s *caixaService) abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	aberto, err := s.repo.FindCaixaAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto != nil {
		return nil, ErrCaixaJaAberto
	}

	caixa := &model.Caixa{
		SaldoInicial: req.SaldoInicial,
		Status:       "aberto",
		AbertoPor:    req.AbertoPor,
		Observacoes:  req.Observacoes,
		OpenedAt:     time.Now(),
	}
	if err := s.repo.CreateCaixa(ctx, caixa); err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────
// Terminal mutation: a closed caixa is never reopened or changed again.

func (s *caixaService) Fechar(ctx context.Context, id uuid.UUID, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixa, err := s.repo.FindCaixaByID(ctx, id)
	if err != nil {
		return nil, ErrCaixaNaoEncontrado
	}
	if caixa.Status != "aberto" {
		return nil, ErrCaixaJaFechado
	}

	esperado := saldoEsperado(caixa.SaldoInicial, caixa.Transacoes)
	diferenca := req.SaldoInformado.Sub(esperado)
	informado := req.SaldoInformado
	agora := time.Now()

	caixa.SaldoEsperado = &esperado
	caixa.SaldoInformado = &informado
	caixa.Diferenca = &diferenca
	caixa.Status = "fechado"
	caixa.FechadoPor = &req.FechadoPor
	caixa.ClosedAt = &agora

	// Closing notes are appended, never replace the opening notes.
	if req.Observacoes != nil && *req.Observacoes != "" {
		if caixa.Observacoes != nil && *caixa.Observacoes != "" {
			juntas := *caixa.Observacoes + "\n" + *req.Observacoes
			caixa.Observacoes = &juntas
		} else {
			caixa.Observacoes = req.Observacoes
		}
	}

	if err := s.repo.UpdateCaixa(ctx, caixa); err != nil {
		return nil, err
	}

	s.enviarResumoFechamento(ctx, caixa, esperado, informado, diferenca)

	return caixaToResponse(caixa), nil
}

// enviarResumoFechamento emails the closing summary to the configured
// address. Best effort: a queue failure never blocks the close.
func (s *caixaService) enviarResumoFechamento(ctx context.Context, caixa *model.Caixa, esperado, informado, diferenca decimal.Decimal) {
	if s.dispatcher == nil || s.resumoEmail == "" {
		return
	}
	body := fmt.Sprintf(
		"Caixa fechado por %s em %s.\n\nSaldo inicial: R$ %s\nSaldo esperado: R$ %s\nSaldo informado: R$ %s\nDiferença: R$ %s\nTransações: %d\n",
		*caixa.FechadoPor, caixa.ClosedAt.Format("02/01/2006 15:04"),
		caixa.SaldoInicial.StringFixed(2), esperado.StringFixed(2),
		informado.StringFixed(2), diferenca.StringFixed(2), len(caixa.Transacoes))
	err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJob{
		To:      s.resumoEmail,
		Subject: fmt.Sprintf("Fechamento de caixa — %s", caixa.ClosedAt.Format("02/01/2006")),
		Body:    body,
	})
	if err != nil {
		log.Error().Err(err).Str("caixa_id", caixa.ID.String()).
			Msg("falha ao enfileirar resumo de fechamento")
	}
}

// ── CaixaAberto ───────────────────────────────────────────────────────────────

func (s *caixaService) CaixaAberto(ctx context.Context) (*dto.CaixaResponse, error) {
	aberto, err := s.repo.FindCaixaAberto(ctx)
	if err != nil || aberto == nil {
		return nil, err
	}
	completo, err := s.repo.FindCaixaByID(ctx, aberto.ID)
	if err != nil {
		return nil, err
	}
	return caixaToResponse(completo), nil
}

// ── RegistrarTransacao ────────────────────────────────────────────────────────
// Attaches to the open caixa when none is given. A transaction with no open
// caixa is stored unattached — back-office entries are never blocked.

func (s *caixaService) RegistrarTransacao(ctx context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registrarTransacao(ctx, req)
}

func (s *caixaService) registrarTransacao(ctx context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	var caixaID *uuid.UUID
	if req.CaixaID != "" {
		id, err := uuid.Parse(req.CaixaID)
		if err != nil {
			return nil, fmt.Errorf("%w: caixa_id %q", ErrEntradaInvalida, req.CaixaID)
		}
		if _, err := s.repo.FindCaixaByID(ctx, id); err != nil {
			return nil, ErrCaixaNaoEncontrado
		}
		caixaID = &id
	} else {
		aberto, err := s.repo.FindCaixaAberto(ctx)
		if err != nil {
			return nil, err
		}
		if aberto != nil {
			caixaID = &aberto.ID
		} else {
			log.Warn().Str("tipo", req.Tipo).Msg("transação registrada sem caixa aberto")
		}
	}

	var pedidoID *uuid.UUID
	if req.PedidoID != "" {
		id, err := uuid.Parse(req.PedidoID)
		if err != nil {
			return nil, fmt.Errorf("%w: pedido_id %q", ErrEntradaInvalida, req.PedidoID)
		}
		pedidoID = &id
	}

	var forma *string
	if req.FormaPagamento != "" {
		f := req.FormaPagamento
		forma = &f
	}

	agora := time.Now()
	tx := &model.TransacaoCaixa{
		CaixaID:        caixaID,
		Tipo:           req.Tipo,
		FormaPagamento: forma,
		Valor:          req.Valor,
		Descricao:      req.Descricao,
		PedidoID:       pedidoID,
		RegistradoPor:  req.RegistradoPor,
		OcorridoEm:     agora,
		CreatedAt:      agora,
	}
	if err := s.repo.CreateTransacao(ctx, tx); err != nil {
		return nil, err
	}
	return transacaoToResponse(tx), nil
}

// ── AtualizarTransacao / RemoverTransacao ────────────────────────────────────

func (s *caixaService) AtualizarTransacao(ctx context.Context, id uuid.UUID, req dto.AtualizarTransacaoRequest) (*dto.TransacaoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.FindTransacaoByID(ctx, id)
	if err != nil {
		return nil, ErrTransacaoNaoEncontrada
	}
	if req.Valor != nil {
		tx.Valor = *req.Valor
	}
	if req.Descricao != nil {
		tx.Descricao = *req.Descricao
	}
	if req.FormaPagamento != nil {
		tx.FormaPagamento = req.FormaPagamento
	}
	if err := s.repo.UpdateTransacao(ctx, tx); err != nil {
		return nil, err
	}
	return transacaoToResponse(tx), nil
}

func (s *caixaService) RemoverTransacao(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindTransacaoByID(ctx, id); err != nil {
		return ErrTransacaoNaoEncontrada
	}
	return s.repo.DeleteTransacao(ctx, id)
}

// ── VendaDePedido ─────────────────────────────────────────────────────────────
// An order is billed at most once. When no caixa is open a zero-balance
// session is opened automatically so the sale is never lost at the counter.

func (s *caixaService) VendaDePedido(ctx context.Context, req dto.VendaPedidoRequest) (*dto.TransacaoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, fmt.Errorf("%w: pedido_id %q", ErrEntradaInvalida, req.PedidoID)
	}

	existente, err := s.repo.FindVendaPorPedido(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrVendaDuplicada
	}

	aberto, err := s.repo.FindCaixaAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto == nil {
		obs := "caixa aberto automaticamente ao registrar venda"
		if _, err := s.abrir(ctx, dto.AbrirCaixaRequest{
			SaldoInicial: decimal.Zero,
			AbertoPor:    req.RegistradoPor,
			Observacoes:  &obs,
		}); err != nil {
			log.Error().Err(err).Msg("falha ao abrir caixa automaticamente")
			return nil, ErrCaixaIndisponivel
		}
		log.Info().Str("pedido_id", req.PedidoID).Msg("caixa aberto automaticamente para venda")
	}

	return s.registrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:           "venda",
		FormaPagamento: req.FormaPagamento,
		Valor:          req.Valor,
		Descricao:      "Venda do pedido " + req.PedidoID,
		PedidoID:       req.PedidoID,
		RegistradoPor:  req.RegistradoPor,
	})
}

// ── Relatorio ─────────────────────────────────────────────────────────────────
// Recomputes the expected balance from the linked transactions, so the
// report is consistent whether the caixa is open or already closed.

func (s *caixaService) Relatorio(ctx context.Context, id uuid.UUID) (*dto.RelatorioCaixaResponse, error) {
	caixa, err := s.repo.FindCaixaByID(ctx, id)
	if err != nil {
		return nil, ErrCaixaNaoEncontrado
	}

	totais := somarPorTipo(caixa.Transacoes)
	esperado := caixa.SaldoInicial.
		Add(totais["venda"]).Add(totais["suprimento"]).
		Sub(totais["despesa"]).Sub(totais["sangria"])

	return &dto.RelatorioCaixaResponse{
		CaixaID:          caixa.ID.String(),
		Status:           caixa.Status,
		SaldoInicial:     caixa.SaldoInicial,
		TotalVendas:      totais["venda"],
		TotalDespesas:    totais["despesa"],
		TotalSuprimentos: totais["suprimento"],
		TotalSangrias:    totais["sangria"],
		SaldoEsperado:    esperado,
		SaldoInformado:   caixa.SaldoInformado,
		Diferenca:        caixa.Diferenca,
		QtdTransacoes:    len(caixa.Transacoes),
	}, nil
}

// ── ResumoPeriodo ─────────────────────────────────────────────────────────────
// Aggregates every transaction in [dataDe, end of dataAte], regardless of
// which caixa (if any) it was attached to.

func (s *caixaService) ResumoPeriodo(ctx context.Context, dataDe, dataAte string) (*dto.ResumoPeriodoResponse, error) {
	for _, d := range []string{dataDe, dataAte} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("%w: data %q", ErrEntradaInvalida, d)
		}
	}

	transacoes, err := s.repo.ListTransacoes(ctx, dto.TransacaoFilter{DataDe: dataDe, DataAte: dataAte})
	if err != nil {
		return nil, err
	}

	totais := somarPorTipo(transacoes)
	return &dto.ResumoPeriodoResponse{
		DataDe:           dataDe,
		DataAte:          dataAte,
		TotalVendas:      totais["venda"],
		TotalDespesas:    totais["despesa"],
		TotalSuprimentos: totais["suprimento"],
		TotalSangrias:    totais["sangria"],
		LucroLiquido:     totais["venda"].Sub(totais["despesa"]),
		FluxoLiquido:     totais["venda"].Add(totais["suprimento"]).Sub(totais["despesa"]).Sub(totais["sangria"]),
		QtdTransacoes:    len(transacoes),
	}, nil
}

// ── Listagens ─────────────────────────────────────────────────────────────────

func (s *caixaService) ListarCaixas(ctx context.Context, f dto.CaixaFilter) ([]dto.CaixaResponse, error) {
	caixas, err := s.repo.ListCaixas(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CaixaResponse, 0, len(caixas))
	for i := range caixas {
		result = append(result, *caixaToResponse(&caixas[i]))
	}
	return result, nil
}

func (s *caixaService) ListarTransacoes(ctx context.Context, f dto.TransacaoFilter) ([]dto.TransacaoResponse, error) {
	transacoes, err := s.repo.ListTransacoes(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TransacaoResponse, 0, len(transacoes))
	for i := range transacoes {
		result = append(result, *transacaoToResponse(&transacoes[i]))
	}
	return result, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// saldoEsperado folds the ledger: venda/suprimento add, despesa/sangria
// subtract. Valor is always positive; Tipo carries the sign.
func saldoEsperado(inicial decimal.Decimal, transacoes []model.TransacaoCaixa) decimal.Decimal {
	saldo := inicial
	for _, t := range transacoes {
		switch t.Tipo {
		case "venda", "suprimento":
			saldo = saldo.Add(t.Valor)
		case "despesa", "sangria":
			saldo = saldo.Sub(t.Valor)
		}
	}
	return saldo
}

func somarPorTipo(transacoes []model.TransacaoCaixa) map[string]decimal.Decimal {
	totais := map[string]decimal.Decimal{
		"venda":      decimal.Zero,
		"despesa":    decimal.Zero,
		"suprimento": decimal.Zero,
		"sangria":    decimal.Zero,
	}
	for _, t := range transacoes {
		totais[t.Tipo] = totais[t.Tipo].Add(t.Valor)
	}
	return totais
}

func caixaToResponse(c *model.Caixa) *dto.CaixaResponse {
	resp := &dto.CaixaResponse{
		ID:             c.ID.String(),
		SaldoInicial:   c.SaldoInicial,
		SaldoEsperado:  c.SaldoEsperado,
		SaldoInformado: c.SaldoInformado,
		Diferenca:      c.Diferenca,
		Status:         c.Status,
		AbertoPor:      c.AbertoPor,
		FechadoPor:     c.FechadoPor,
		Observacoes:    c.Observacoes,
		AbertoEm:       c.OpenedAt.Format(time.RFC3339),
		QtdTransacoes:  len(c.Transacoes),
	}
	if c.ClosedAt != nil {
		t := c.ClosedAt.Format(time.RFC3339)
		resp.FechadoEm = &t
	}
	return resp
}

func transacaoToResponse(t *model.TransacaoCaixa) *dto.TransacaoResponse {
	resp := &dto.TransacaoResponse{
		ID:             t.ID.String(),
		Tipo:           t.Tipo,
		FormaPagamento: t.FormaPagamento,
		Valor:          t.Valor,
		Descricao:      t.Descricao,
		RegistradoPor:  t.RegistradoPor,
		OcorridoEm:     t.OcorridoEm.Format(time.RFC3339),
	}
	if t.CaixaID != nil {
		id := t.CaixaID.String()
		resp.CaixaID = &id
	}
	if t.PedidoID != nil {
		id := t.PedidoID.String()
		resp.PedidoID = &id
	}
	return resp
}
