package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a menu item.
type Produto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string    `gorm:"index;not null"`
	Descricao   *string
	CategoriaID *uuid.UUID      `gorm:"type:uuid;index"`
	Preco       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Disponivel  bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

// Categoria groups menu items (pizzas, bebidas, sobremesas, …).
type Categoria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Descricao *string
	Ativa     bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}
