package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caixa represents a bounded cash register session.
// Status: "aberto" | "fechado"
// Invariant: at most one Caixa is "aberto" at any time.
type Caixa struct {
	ID           uuid.UUID
	SaldoInicial decimal.Decimal
	// SaldoEsperado is computed on close: SaldoInicial + sum of all linked
	// transactions (venda/suprimento add, despesa/sangria subtract).
	SaldoEsperado  *decimal.Decimal
	SaldoInformado *decimal.Decimal
	Diferenca      *decimal.Decimal
	Status         string
	AbertoPor      string
	FechadoPor     *string
	Observacoes    *string
	OpenedAt       time.Time
	ClosedAt       *time.Time

	// Transacoes is populated on reads that request the full session.
	Transacoes []TransacaoCaixa
}

// TransacaoCaixa is a single monetary movement in the cash ledger.
// Tipo: "venda" | "despesa" | "suprimento" | "sangria"
// FormaPagamento: "dinheiro" | "cartao_credito" | "cartao_debito" | "pix" | "outro"
// Valor is always stored positive — Tipo determines the sign on reconciliation.
type TransacaoCaixa struct {
	ID             uuid.UUID
	CaixaID        *uuid.UUID // nil when recorded with no open session
	Tipo           string
	FormaPagamento *string
	Valor          decimal.Decimal
	Descricao      string
	// PedidoID links a venda to the originating order. Unique among vendas:
	// an order is billed at most once.
	PedidoID      *uuid.UUID
	RegistradoPor string
	OcorridoEm    time.Time
	CreatedAt     time.Time
}
