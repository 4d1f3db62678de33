package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer record for reservations and order history.
type Cliente struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string    `gorm:"index;not null"`
	Telefone    string    `gorm:"index;not null"`
	Email       *string
	Observacoes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
