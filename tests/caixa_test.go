package tests

import (
	"context"
	"testing"
	"time"

	"comanda/internal/dto"
	"comanda/internal/repository"
	"comanda/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoCaixaService() service.CaixaService {
	store := repository.NewMemStore()
	return service.NewCaixaService(repository.NewCaixaRepository(store), nil, "")
}

func abrirCaixa(t *testing.T, svc service.CaixaService, saldo string) *dto.CaixaResponse {
	t.Helper()
	resp, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		SaldoInicial: decimal.RequireFromString(saldo),
		AbertoPor:    "Maria",
	})
	require.NoError(t, err)
	return resp
}

func TestAbrirCaixa_SegundaAberturaFalha(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	resp := abrirCaixa(t, svc, "100.00")
	assert.Equal(t, "aberto", resp.Status)
	assert.Equal(t, "Maria", resp.AbertoPor)

	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{
		SaldoInicial: decimal.RequireFromString("50.00"),
		AbertoPor:    "João",
	})
	assert.ErrorIs(t, err, service.ErrCaixaJaAberto)

	// After closing, a new session can be opened.
	id := uuid.MustParse(resp.ID)
	_, err = svc.Fechar(ctx, id, dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("100.00"),
		FechadoPor:     "Maria",
	})
	require.NoError(t, err)

	_, err = svc.Abrir(ctx, dto.AbrirCaixaRequest{
		SaldoInicial: decimal.RequireFromString("50.00"),
		AbertoPor:    "João",
	})
	assert.NoError(t, err)
}

func TestFecharCaixa_CalculaDiferenca(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	resp := abrirCaixa(t, svc, "100.00")
	id := uuid.MustParse(resp.ID)

	_, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:           "venda",
		FormaPagamento: "dinheiro",
		Valor:          decimal.RequireFromString("50.00"),
		Descricao:      "Venda balcão",
		RegistradoPor:  "Maria",
	})
	require.NoError(t, err)

	_, err = svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:          "despesa",
		Valor:         decimal.RequireFromString("20.00"),
		Descricao:     "Compra de gelo",
		RegistradoPor: "Maria",
	})
	require.NoError(t, err)

	// Expected balance: 100 + 50 - 20 = 130; counted exactly that.
	fechado, err := svc.Fechar(ctx, id, dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("130.00"),
		FechadoPor:     "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, "fechado", fechado.Status)
	require.NotNil(t, fechado.SaldoEsperado)
	assert.True(t, fechado.SaldoEsperado.Equal(decimal.RequireFromString("130.00")))
	require.NotNil(t, fechado.Diferenca)
	assert.True(t, fechado.Diferenca.IsZero(), "diferenca = %s", fechado.Diferenca)
}

func TestFecharCaixa_FaltaDeCaixaNegativa(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	resp := abrirCaixa(t, svc, "100.00")
	id := uuid.MustParse(resp.ID)

	fechado, err := svc.Fechar(ctx, id, dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("95.00"),
		FechadoPor:     "Maria",
	})
	require.NoError(t, err)
	require.NotNil(t, fechado.Diferenca)
	assert.True(t, fechado.Diferenca.Equal(decimal.RequireFromString("-5.00")))
}

func TestFecharCaixa_Terminal(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	resp := abrirCaixa(t, svc, "100.00")
	id := uuid.MustParse(resp.ID)

	_, err := svc.Fechar(ctx, id, dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("100.00"),
		FechadoPor:     "Maria",
	})
	require.NoError(t, err)

	_, err = svc.Fechar(ctx, id, dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("100.00"),
		FechadoPor:     "Maria",
	})
	assert.ErrorIs(t, err, service.ErrCaixaJaFechado)
}

func TestRegistrarTransacao_SemCaixaAbertoFicaSolta(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	tx, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:          "despesa",
		Valor:         decimal.RequireFromString("35.00"),
		Descricao:     "Conta de luz",
		RegistradoPor: "Maria",
	})
	require.NoError(t, err)
	assert.Nil(t, tx.CaixaID)

	// Unattached entries still count in period summaries.
	hoje := time.Now().Format("2006-01-02")
	resumo, err := svc.ResumoPeriodo(ctx, hoje, hoje)
	require.NoError(t, err)
	assert.True(t, resumo.TotalDespesas.Equal(decimal.RequireFromString("35.00")))
}

func TestVendaDePedido_RejeitaDuplicada(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()
	abrirCaixa(t, svc, "0")

	pedidoID := uuid.NewString()
	venda := dto.VendaPedidoRequest{
		PedidoID:       pedidoID,
		Valor:          decimal.RequireFromString("80.00"),
		FormaPagamento: "pix",
		RegistradoPor:  "Maria",
	}

	_, err := svc.VendaDePedido(ctx, venda)
	require.NoError(t, err)

	_, err = svc.VendaDePedido(ctx, venda)
	assert.ErrorIs(t, err, service.ErrVendaDuplicada)
}

func TestVendaDePedido_AbreCaixaAutomaticamente(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	tx, err := svc.VendaDePedido(ctx, dto.VendaPedidoRequest{
		PedidoID:       uuid.NewString(),
		Valor:          decimal.RequireFromString("42.00"),
		FormaPagamento: "dinheiro",
		RegistradoPor:  "João",
	})
	require.NoError(t, err)
	require.NotNil(t, tx.CaixaID)

	aberto, err := svc.CaixaAberto(ctx)
	require.NoError(t, err)
	require.NotNil(t, aberto)
	assert.Equal(t, *tx.CaixaID, aberto.ID)
	assert.True(t, aberto.SaldoInicial.IsZero())
	assert.Equal(t, "João", aberto.AbertoPor)
}

func TestRelatorio_TotaisPorTipo(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	resp := abrirCaixa(t, svc, "200.00")
	id := uuid.MustParse(resp.ID)

	registrar := func(tipo, valor string) {
		t.Helper()
		_, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
			Tipo:          tipo,
			Valor:         decimal.RequireFromString(valor),
			Descricao:     "Lançamento " + tipo,
			RegistradoPor: "Maria",
		})
		require.NoError(t, err)
	}
	registrar("venda", "150.00")
	registrar("venda", "90.00")
	registrar("suprimento", "50.00")
	registrar("despesa", "30.00")
	registrar("sangria", "100.00")

	rel, err := svc.Relatorio(ctx, id)
	require.NoError(t, err)
	assert.True(t, rel.TotalVendas.Equal(decimal.RequireFromString("240.00")))
	assert.True(t, rel.TotalSuprimentos.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, rel.TotalDespesas.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, rel.TotalSangrias.Equal(decimal.RequireFromString("100.00")))
	// 200 + 240 + 50 - 30 - 100 = 360
	assert.True(t, rel.SaldoEsperado.Equal(decimal.RequireFromString("360.00")))
	assert.Equal(t, 5, rel.QtdTransacoes)
}

func TestResumoPeriodo_LucroEFluxo(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()
	abrirCaixa(t, svc, "0")

	registrar := func(tipo, valor string) {
		t.Helper()
		_, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
			Tipo:          tipo,
			Valor:         decimal.RequireFromString(valor),
			Descricao:     "Lançamento " + tipo,
			RegistradoPor: "Maria",
		})
		require.NoError(t, err)
	}
	registrar("venda", "300.00")
	registrar("despesa", "120.00")
	registrar("suprimento", "40.00")
	registrar("sangria", "60.00")

	hoje := time.Now().Format("2006-01-02")
	resumo, err := svc.ResumoPeriodo(ctx, hoje, hoje)
	require.NoError(t, err)
	// Lucro = vendas - despesas; suprimento/sangria move cash, not profit.
	assert.True(t, resumo.LucroLiquido.Equal(decimal.RequireFromString("180.00")))
	// Fluxo = 300 + 40 - 120 - 60 = 160
	assert.True(t, resumo.FluxoLiquido.Equal(decimal.RequireFromString("160.00")))
	assert.Equal(t, 4, resumo.QtdTransacoes)
}

func TestResumoPeriodo_DataInvalida(t *testing.T) {
	svc := novoCaixaService()
	_, err := svc.ResumoPeriodo(context.Background(), "2026-13-99", "2026-01-01")
	assert.ErrorIs(t, err, service.ErrEntradaInvalida)
}

func TestAtualizarERemoverTransacao(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()
	abrirCaixa(t, svc, "0")

	tx, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:          "despesa",
		Valor:         decimal.RequireFromString("10.00"),
		Descricao:     "Valor errado",
		RegistradoPor: "Maria",
	})
	require.NoError(t, err)
	id := uuid.MustParse(tx.ID)

	novoValor := decimal.RequireFromString("15.00")
	novaDesc := "Valor corrigido"
	atualizado, err := svc.AtualizarTransacao(ctx, id, dto.AtualizarTransacaoRequest{
		Valor:     &novoValor,
		Descricao: &novaDesc,
	})
	require.NoError(t, err)
	assert.True(t, atualizado.Valor.Equal(novoValor))
	assert.Equal(t, "Valor corrigido", atualizado.Descricao)

	require.NoError(t, svc.RemoverTransacao(ctx, id))
	err = svc.RemoverTransacao(ctx, id)
	assert.ErrorIs(t, err, service.ErrTransacaoNaoEncontrada)
}

func TestListarCaixas_FiltroPorStatus(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()

	primeiro := abrirCaixa(t, svc, "10.00")
	_, err := svc.Fechar(ctx, uuid.MustParse(primeiro.ID), dto.FecharCaixaRequest{
		SaldoInformado: decimal.RequireFromString("10.00"),
		FechadoPor:     "Maria",
	})
	require.NoError(t, err)
	abrirCaixa(t, svc, "20.00")

	abertos, err := svc.ListarCaixas(ctx, dto.CaixaFilter{Status: "aberto"})
	require.NoError(t, err)
	require.Len(t, abertos, 1)
	assert.True(t, abertos[0].SaldoInicial.Equal(decimal.RequireFromString("20.00")))

	todos, err := svc.ListarCaixas(ctx, dto.CaixaFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestRegistrarTransacao_IDsMalformados(t *testing.T) {
	svc := novoCaixaService()
	ctx := context.Background()
	abrirCaixa(t, svc, "100.00")

	_, err := svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		CaixaID:       "nao-e-um-uuid",
		Tipo:          "despesa",
		Valor:         decimal.RequireFromString("10.00"),
		Descricao:     "Compra de gelo",
		RegistradoPor: "Maria",
	})
	assert.ErrorIs(t, err, service.ErrEntradaInvalida)

	_, err = svc.RegistrarTransacao(ctx, dto.TransacaoRequest{
		Tipo:           "venda",
		FormaPagamento: "pix",
		Valor:          decimal.RequireFromString("30.00"),
		Descricao:      "Venda balcão",
		PedidoID:       "nao-e-um-uuid",
		RegistradoPor:  "Maria",
	})
	assert.ErrorIs(t, err, service.ErrEntradaInvalida)

	_, err = svc.VendaDePedido(ctx, dto.VendaPedidoRequest{
		PedidoID:       "nao-e-um-uuid",
		Valor:          decimal.RequireFromString("30.00"),
		FormaPagamento: "pix",
		RegistradoPor:  "Maria",
	})
	assert.ErrorIs(t, err, service.ErrEntradaInvalida)
}
