package model

import (
	"time"

	"github.com/google/uuid"
)

// Mesa represents a physical table in the dining room.
// Status: "disponivel" | "ocupada" | "reservada" | "unida"
type Mesa struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero     int       `gorm:"uniqueIndex;not null"`
	Capacidade int       `gorm:"not null"`
	// CapacidadeOriginal preserves the pre-merge capacity while the mesa is
	// the primary of a combination, so Separar can restore it exactly.
	CapacidadeOriginal *int
	Status             string `gorm:"type:varchar(20);not null;default:'disponivel'"`
	// UnidaCom points at the primary mesa while status is "unida".
	UnidaCom    *uuid.UUID `gorm:"type:uuid"`
	Localizacao *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
