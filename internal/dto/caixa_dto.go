package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
	AbertoPor    string          `json:"aberto_por"    validate:"required,min=2"`
	Observacoes  *string         `json:"observacoes"`
}

type FecharCaixaRequest struct {
	SaldoInformado decimal.Decimal `json:"saldo_informado" validate:"min=0"`
	FechadoPor     string          `json:"fechado_por"     validate:"required,min=2"`
	Observacoes    *string         `json:"observacoes"`
}

type TransacaoRequest struct {
	CaixaID        string          `json:"caixa_id"        validate:"omitempty,uuid"`
	Tipo           string          `json:"tipo"            validate:"required,oneof=venda despesa suprimento sangria"`
	FormaPagamento string          `json:"forma_pagamento" validate:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix outro"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	Descricao      string          `json:"descricao"       validate:"required,min=3"`
	PedidoID       string          `json:"pedido_id"       validate:"omitempty,uuid"`
	RegistradoPor  string          `json:"registrado_por"  validate:"required,min=2"`
}

type AtualizarTransacaoRequest struct {
	Valor          *decimal.Decimal `json:"valor"           validate:"omitempty,gt=0"`
	Descricao      *string          `json:"descricao"       validate:"omitempty,min=3"`
	FormaPagamento *string          `json:"forma_pagamento" validate:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix outro"`
}

// VendaPedidoRequest settles an order into the ledger as a venda.
type VendaPedidoRequest struct {
	PedidoID       string          `json:"pedido_id"       validate:"required,uuid"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	FormaPagamento string          `json:"forma_pagamento" validate:"required,oneof=dinheiro cartao_credito cartao_debito pix outro"`
	RegistradoPor  string          `json:"registrado_por"  validate:"required,min=2"`
}

// ─── Query filters ───────────────────────────────────────────────────────────

type CaixaFilter struct {
	Status  string // aberto | fechado | "" (all)
	DataDe  string // 2006-01-02
	DataAte string
}

type TransacaoFilter struct {
	Tipo    string
	DataDe  string
	DataAte string
	CaixaID string
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CaixaResponse struct {
	ID             string           `json:"id"`
	SaldoInicial   decimal.Decimal  `json:"saldo_inicial"`
	SaldoEsperado  *decimal.Decimal `json:"saldo_esperado,omitempty"`
	SaldoInformado *decimal.Decimal `json:"saldo_informado,omitempty"`
	Diferenca      *decimal.Decimal `json:"diferenca,omitempty"`
	Status         string           `json:"status"`
	AbertoPor      string           `json:"aberto_por"`
	FechadoPor     *string          `json:"fechado_por,omitempty"`
	Observacoes    *string          `json:"observacoes,omitempty"`
	AbertoEm       string           `json:"aberto_em"`
	FechadoEm      *string          `json:"fechado_em,omitempty"`
	QtdTransacoes  int              `json:"qtd_transacoes"`
}

type TransacaoResponse struct {
	ID             string          `json:"id"`
	CaixaID        *string         `json:"caixa_id,omitempty"`
	Tipo           string          `json:"tipo"`
	FormaPagamento *string         `json:"forma_pagamento,omitempty"`
	Valor          decimal.Decimal `json:"valor"`
	Descricao      string          `json:"descricao"`
	PedidoID       *string         `json:"pedido_id,omitempty"`
	RegistradoPor  string          `json:"registrado_por"`
	OcorridoEm     string          `json:"ocorrido_em"`
}

type RelatorioCaixaResponse struct {
	CaixaID          string           `json:"caixa_id"`
	Status           string           `json:"status"`
	SaldoInicial     decimal.Decimal  `json:"saldo_inicial"`
	TotalVendas      decimal.Decimal  `json:"total_vendas"`
	TotalDespesas    decimal.Decimal  `json:"total_despesas"`
	TotalSuprimentos decimal.Decimal  `json:"total_suprimentos"`
	TotalSangrias    decimal.Decimal  `json:"total_sangrias"`
	SaldoEsperado    decimal.Decimal  `json:"saldo_esperado"`
	SaldoInformado   *decimal.Decimal `json:"saldo_informado,omitempty"`
	Diferenca        *decimal.Decimal `json:"diferenca,omitempty"`
	QtdTransacoes    int              `json:"qtd_transacoes"`
}

type ResumoPeriodoResponse struct {
	DataDe           string          `json:"data_de"`
	DataAte          string          `json:"data_ate"`
	TotalVendas      decimal.Decimal `json:"total_vendas"`
	TotalDespesas    decimal.Decimal `json:"total_despesas"`
	TotalSuprimentos decimal.Decimal `json:"total_suprimentos"`
	TotalSangrias    decimal.Decimal `json:"total_sangrias"`
	LucroLiquido     decimal.Decimal `json:"lucro_liquido"`
	FluxoLiquido     decimal.Decimal `json:"fluxo_liquido"`
	QtdTransacoes    int             `json:"qtd_transacoes"`
}
