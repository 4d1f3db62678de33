package tests

import (
	"context"
	"testing"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pedidoFixture struct {
	svc      service.PedidoService
	caixa    service.CaixaService
	mesas    *fakeMesaRepo
	produtos *fakeProdutoRepo
	pedidos  *fakePedidoRepo
}

func novoPedidoFixture() *pedidoFixture {
	store := repository.NewMemStore()
	caixaSvc := service.NewCaixaService(repository.NewCaixaRepository(store), nil, "")
	mesas := newFakeMesaRepo()
	produtos := newFakeProdutoRepo()
	pedidos := newFakePedidoRepo()
	return &pedidoFixture{
		svc:      service.NewPedidoService(pedidos, produtos, mesas, caixaSvc, nil),
		caixa:    caixaSvc,
		mesas:    mesas,
		produtos: produtos,
		pedidos:  pedidos,
	}
}

func (f *pedidoFixture) addProduto(t *testing.T, nome, preco string, disponivel bool) uuid.UUID {
	t.Helper()
	p := &model.Produto{
		Nome:       nome,
		Preco:      decimal.RequireFromString(preco),
		Disponivel: disponivel,
	}
	require.NoError(t, f.produtos.Create(context.Background(), p))
	return p.ID
}

func TestCriarPedido_PrecificaItens(t *testing.T) {
	f := novoPedidoFixture()
	ctx := context.Background()

	pizzaID := f.addProduto(t, "Pizza Margherita", "45.90", true)
	sucoID := f.addProduto(t, "Suco Natural", "12.00", true)
	mesaID := f.mesas.addMesa(1, 4, "disponivel")
	mesaStr := mesaID.String()

	resp, err := f.svc.Criar(ctx, dto.CriarPedidoRequest{
		MesaID: &mesaStr,
		Itens: []dto.PedidoItemRequest{
			{ProdutoID: pizzaID.String(), Quantidade: 2},
			{ProdutoID: sucoID.String(), Quantidade: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Numero)
	assert.Equal(t, "aberto", resp.Status)
	// 2×45.90 + 3×12.00 = 127.80
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("127.80")))
	assert.Equal(t, "ocupada", f.mesas.status(mesaID))
}

func TestCriarPedido_ProdutoIndisponivel(t *testing.T) {
	f := novoPedidoFixture()
	esgotadoID := f.addProduto(t, "Pizza Especial", "60.00", false)

	_, err := f.svc.Criar(context.Background(), dto.CriarPedidoRequest{
		Itens: []dto.PedidoItemRequest{{ProdutoID: esgotadoID.String(), Quantidade: 1}},
	})
	assert.ErrorIs(t, err, service.ErrProdutoIndisponivel)
}

func TestCriarPedido_MesaUnidaRejeitada(t *testing.T) {
	f := novoPedidoFixture()
	produtoID := f.addProduto(t, "Pizza", "40.00", true)
	mesaID := f.mesas.addMesa(3, 4, "unida")
	mesaStr := mesaID.String()

	_, err := f.svc.Criar(context.Background(), dto.CriarPedidoRequest{
		MesaID: &mesaStr,
		Itens:  []dto.PedidoItemRequest{{ProdutoID: produtoID.String(), Quantidade: 1}},
	})
	assert.ErrorIs(t, err, service.ErrMesaUnida)
}

func TestFecharPedido_RegistraVendaNoCaixa(t *testing.T) {
	f := novoPedidoFixture()
	ctx := context.Background()

	produtoID := f.addProduto(t, "Pizza Calabresa", "49.90", true)
	mesaID := f.mesas.addMesa(1, 4, "disponivel")
	mesaStr := mesaID.String()

	pedido, err := f.svc.Criar(ctx, dto.CriarPedidoRequest{
		MesaID: &mesaStr,
		Itens:  []dto.PedidoItemRequest{{ProdutoID: produtoID.String(), Quantidade: 1}},
	})
	require.NoError(t, err)

	fechado, err := f.svc.Fechar(ctx, uuid.MustParse(pedido.ID), dto.FecharPedidoRequest{
		FormaPagamento: "pix",
		RegistradoPor:  "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, "fechado", fechado.Status)

	// The sale landed in the (auto-opened) caixa.
	aberto, err := f.caixa.CaixaAberto(ctx)
	require.NoError(t, err)
	require.NotNil(t, aberto)

	vendas, err := f.caixa.ListarTransacoes(ctx, dto.TransacaoFilter{Tipo: "venda"})
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.True(t, vendas[0].Valor.Equal(decimal.RequireFromString("49.90")))
	require.NotNil(t, vendas[0].PedidoID)
	assert.Equal(t, pedido.ID, *vendas[0].PedidoID)

	// Mesa released once the pedido settled.
	assert.Equal(t, "disponivel", f.mesas.status(mesaID))
}

func TestFecharPedido_SegundaVezRejeitada(t *testing.T) {
	f := novoPedidoFixture()
	ctx := context.Background()

	produtoID := f.addProduto(t, "Pizza", "40.00", true)
	pedido, err := f.svc.Criar(ctx, dto.CriarPedidoRequest{
		Itens: []dto.PedidoItemRequest{{ProdutoID: produtoID.String(), Quantidade: 1}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(pedido.ID)

	req := dto.FecharPedidoRequest{FormaPagamento: "dinheiro", RegistradoPor: "Maria"}
	_, err = f.svc.Fechar(ctx, id, req)
	require.NoError(t, err)

	_, err = f.svc.Fechar(ctx, id, req)
	assert.ErrorIs(t, err, service.ErrPedidoJaFechado)

	// Exactly one venda in the ledger.
	vendas, err := f.caixa.ListarTransacoes(ctx, dto.TransacaoFilter{Tipo: "venda"})
	require.NoError(t, err)
	assert.Len(t, vendas, 1)
}

func TestCancelarPedido_IdempotenteELiberaMesa(t *testing.T) {
	f := novoPedidoFixture()
	ctx := context.Background()

	produtoID := f.addProduto(t, "Pizza", "40.00", true)
	mesaID := f.mesas.addMesa(1, 4, "disponivel")
	mesaStr := mesaID.String()

	pedido, err := f.svc.Criar(ctx, dto.CriarPedidoRequest{
		MesaID: &mesaStr,
		Itens:  []dto.PedidoItemRequest{{ProdutoID: produtoID.String(), Quantidade: 1}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(pedido.ID)
	assert.Equal(t, "ocupada", f.mesas.status(mesaID))

	cancelado, err := f.svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cancelado", cancelado.Status)
	assert.Equal(t, "disponivel", f.mesas.status(mesaID))

	denovo, err := f.svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cancelado", denovo.Status)

	// A cancelled pedido cannot be settled.
	_, err = f.svc.Fechar(ctx, id, dto.FecharPedidoRequest{FormaPagamento: "pix", RegistradoPor: "Maria"})
	assert.ErrorIs(t, err, service.ErrPedidoJaFechado)
}

func TestFecharPedido_MesaSeguraComOutroPedidoAberto(t *testing.T) {
	f := novoPedidoFixture()
	ctx := context.Background()

	produtoID := f.addProduto(t, "Pizza", "40.00", true)
	mesaID := f.mesas.addMesa(1, 4, "disponivel")
	mesaStr := mesaID.String()

	criar := func() string {
		pedido, err := f.svc.Criar(ctx, dto.CriarPedidoRequest{
			MesaID: &mesaStr,
			Itens:  []dto.PedidoItemRequest{{ProdutoID: produtoID.String(), Quantidade: 1}},
		})
		require.NoError(t, err)
		return pedido.ID
	}
	primeiro := criar()
	criar()

	_, err := f.svc.Fechar(ctx, uuid.MustParse(primeiro), dto.FecharPedidoRequest{
		FormaPagamento: "dinheiro",
		RegistradoPor:  "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, "ocupada", f.mesas.status(mesaID))
}
