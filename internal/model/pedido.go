package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is a customer order, either for a mesa or for takeout.
// Status: "aberto" | "fechado" | "cancelado"
// Fechar settles the order into the cash ledger as a venda.
type Pedido struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero      int       `gorm:"not null;index"`
	MesaID      *uuid.UUID `gorm:"type:uuid;index"`
	ClienteID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(20);not null;default:'aberto'"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observacoes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Itens   []PedidoItem `gorm:"foreignKey:PedidoID"`
	Cliente *Cliente     `gorm:"foreignKey:ClienteID"`
}

// PedidoItem is one line of a Pedido, priced at order time.
type PedidoItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observacao    *string

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}
