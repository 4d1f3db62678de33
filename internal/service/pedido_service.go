package service

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/infra"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type PedidoService interface {
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, f dto.PedidoFilter) ([]dto.PedidoResponse, error)
	// Fechar settles the order: registers the venda in the caixa, frees
	// the mesa and enqueues the receipt job.
	Fechar(ctx context.Context, id uuid.UUID, req dto.FecharPedidoRequest) (*dto.PedidoResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo       repository.PedidoRepository
	produtos   repository.ProdutoRepository
	mesas      repository.MesaRepository
	caixa      CaixaService
	dispatcher *worker.Dispatcher // nil when running without Redis (tests)
}

func NewPedidoService(
	repo repository.PedidoRepository,
	produtos repository.ProdutoRepository,
	mesas repository.MesaRepository,
	caixa CaixaService,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:       repo,
		produtos:   produtos,
		mesas:      mesas,
		caixa:      caixa,
		dispatcher: dispatcher,
	}
}

func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido := &model.Pedido{
		Status:      "aberto",
		Observacoes: req.Observacoes,
	}

	var mesa *model.Mesa
	if req.MesaID != nil {
		mesaID, err := uuid.Parse(*req.MesaID)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		mesa, err = s.mesas.FindByID(ctx, mesaID)
		if err != nil {
			return nil, ErrMesaNaoEncontrada
		}
		if mesa.Status == "unida" {
			return nil, ErrMesaUnida
		}
		pedido.MesaID = &mesa.ID
	}
	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		pedido.ClienteID = &clienteID
	}

	// Items are priced at order time; later menu changes don't affect
	// an open pedido.
	total := decimal.Zero
	for _, item := range req.Itens {
		produtoID, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		produto, err := s.produtos.FindByID(ctx, produtoID)
		if err != nil {
			return nil, ErrProdutoNaoEncontrado
		}
		if !produto.Disponivel {
			return nil, ErrProdutoIndisponivel
		}
		subtotal := produto.Preco.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		pedido.Itens = append(pedido.Itens, model.PedidoItem{
			ProdutoID:     produto.ID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: produto.Preco,
			Subtotal:      subtotal,
			Observacao:    item.Observacao,
		})
		total = total.Add(subtotal)
	}
	pedido.Total = total

	numero, err := s.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}
	pedido.Numero = numero

	if err := s.repo.Create(ctx, pedido); err != nil {
		return nil, err
	}

	// Best effort: a failure to flag the mesa doesn't invalidate the pedido.
	if mesa != nil && mesa.Status == "disponivel" {
		if err := s.mesas.UpdateStatus(ctx, mesa.ID, "ocupada"); err != nil {
			log.Warn().Err(err).Str("mesa_id", mesa.ID.String()).
				Msg("falha ao marcar mesa como ocupada")
		}
	}

	criado, err := s.repo.FindByID(ctx, pedido.ID)
	if err != nil {
		return pedidoToResponse(pedido), nil
	}
	return pedidoToResponse(criado), nil
}

func (s *pedidoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context, f dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		result = append(result, *pedidoToResponse(&pedidos[i]))
	}
	return result, nil
}

func (s *pedidoService) Fechar(ctx context.Context, id uuid.UUID, req dto.FecharPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	if pedido.Status != "aberto" {
		return nil, ErrPedidoJaFechado
	}

	// The venda goes into the ledger first; the ledger rejects a second
	// settle of the same pedido, so the status flip below can't be doubled.
	_, err = s.caixa.VendaDePedido(ctx, dto.VendaPedidoRequest{
		PedidoID:       pedido.ID.String(),
		Valor:          pedido.Total,
		FormaPagamento: req.FormaPagamento,
		RegistradoPor:  req.RegistradoPor,
	})
	if err != nil {
		return nil, err
	}

	pedido.Status = "fechado"
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}

	s.liberarMesa(ctx, pedido)
	s.enfileirarRecibo(ctx, pedido, req)

	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNaoEncontrado
	}
	if pedido.Status == "cancelado" {
		return pedidoToResponse(pedido), nil
	}
	if pedido.Status != "aberto" {
		return nil, ErrPedidoJaFechado
	}
	pedido.Status = "cancelado"
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	s.liberarMesa(ctx, pedido)
	return pedidoToResponse(pedido), nil
}

// liberarMesa returns the mesa to "disponivel" when no other open pedido
// holds it. Best effort.
func (s *pedidoService) liberarMesa(ctx context.Context, pedido *model.Pedido) {
	if pedido.MesaID == nil {
		return
	}
	abertos, err := s.repo.List(ctx, dto.PedidoFilter{Status: "aberto", MesaID: pedido.MesaID.String()})
	if err != nil || len(abertos) > 0 {
		return
	}
	mesa, err := s.mesas.FindByID(ctx, *pedido.MesaID)
	if err != nil || mesa.Status != "ocupada" {
		return
	}
	if err := s.mesas.UpdateStatus(ctx, mesa.ID, "disponivel"); err != nil {
		log.Warn().Err(err).Str("mesa_id", mesa.ID.String()).
			Msg("falha ao liberar mesa")
	}
}

func (s *pedidoService) enfileirarRecibo(ctx context.Context, pedido *model.Pedido, req dto.FecharPedidoRequest) {
	if s.dispatcher == nil {
		return
	}
	recibo := infra.ReciboData{
		PedidoID:       pedido.ID.String(),
		Numero:         pedido.Numero,
		Total:          pedido.Total,
		FormaPagamento: req.FormaPagamento,
		FechadoEm:      pedido.UpdatedAt,
	}
	if pedido.MesaID != nil {
		if mesa, err := s.mesas.FindByID(ctx, *pedido.MesaID); err == nil {
			recibo.Mesa = &mesa.Numero
		}
	}
	if pedido.Cliente != nil {
		recibo.Cliente = &pedido.Cliente.Nome
	}
	for _, item := range pedido.Itens {
		nome := "item"
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		recibo.Itens = append(recibo.Itens, infra.ReciboItem{
			Produto:       nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	email := req.EmailRecibo
	if email == nil && pedido.Cliente != nil && pedido.Cliente.Email != nil {
		email = pedido.Cliente.Email
	}
	if err := s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJob{Recibo: recibo, Email: email}); err != nil {
		log.Error().Err(err).Str("pedido_id", pedido.ID.String()).
			Msg("falha ao enfileirar recibo")
	}
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:          p.ID.String(),
		Numero:      p.Numero,
		Status:      p.Status,
		Total:       p.Total,
		Observacoes: p.Observacoes,
		CriadoEm:    p.CreatedAt.Format("2006-01-02 15:04:05"),
		Itens:       make([]dto.PedidoItemResponse, 0, len(p.Itens)),
	}
	if p.MesaID != nil {
		id := p.MesaID.String()
		resp.MesaID = &id
	}
	if p.ClienteID != nil {
		id := p.ClienteID.String()
		resp.ClienteID = &id
	}
	for _, item := range p.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		resp.Itens = append(resp.Itens, dto.PedidoItemResponse{
			ProdutoID:     item.ProdutoID.String(),
			Produto:       nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
			Observacao:    item.Observacao,
		})
	}
	return resp
}
