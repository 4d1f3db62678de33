package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PedidoItemRequest struct {
	ProdutoID  string  `json:"produto_id" validate:"required,uuid"`
	Quantidade int     `json:"quantidade" validate:"required,gt=0"`
	Observacao *string `json:"observacao"`
}

type CriarPedidoRequest struct {
	MesaID      *string             `json:"mesa_id"    validate:"omitempty,uuid"`
	ClienteID   *string             `json:"cliente_id" validate:"omitempty,uuid"`
	Itens       []PedidoItemRequest `json:"itens"      validate:"required,min=1,dive"`
	Observacoes *string             `json:"observacoes"`
}

// FecharPedidoRequest settles the order: registers a venda in the caixa
// and enqueues the receipt job.
type FecharPedidoRequest struct {
	FormaPagamento string  `json:"forma_pagamento" validate:"required,oneof=dinheiro cartao_credito cartao_debito pix outro"`
	RegistradoPor  string  `json:"registrado_por"  validate:"required,min=2"`
	EmailRecibo    *string `json:"email_recibo"    validate:"omitempty,email"`
}

type PedidoFilter struct {
	Status string
	MesaID string
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoItemResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Observacao    *string         `json:"observacao,omitempty"`
}

type PedidoResponse struct {
	ID          string               `json:"id"`
	Numero      int                  `json:"numero"`
	MesaID      *string              `json:"mesa_id,omitempty"`
	ClienteID   *string              `json:"cliente_id,omitempty"`
	Status      string               `json:"status"`
	Total       decimal.Decimal      `json:"total"`
	Itens       []PedidoItemResponse `json:"itens"`
	Observacoes *string              `json:"observacoes,omitempty"`
	CriadoEm    string               `json:"criado_em"`
}
