package model

import (
	"time"

	"github.com/google/uuid"
)

// Reserva is a booked time interval for a mesa.
// Status: "pendente" | "confirmada" | "cancelada" | "concluida" | "nao_compareceu"
// Reservations are never deleted, only status-transitioned.
//
// Data ("2006-01-02") and Hora ("15:04") plus DuracaoMinutos define a
// half-open interval [inicio, inicio+duracao). Two active reservations of
// the same mesa on the same date must not overlap.
type Reserva struct {
	ID              uuid.UUID
	MesaID          uuid.UUID
	NomeCliente     string
	TelefoneCliente string
	Data            string
	Hora            string
	DuracaoMinutos  int
	Pessoas         int
	Status          string
	Observacoes     *string
	CreatedAt       time.Time
}

// Ativa reports whether the reservation still holds its time slot.
func (r *Reserva) Ativa() bool {
	return r.Status == "pendente" || r.Status == "confirmada"
}

// Inicio parses Data+Hora into a wall-clock timestamp.
func (r *Reserva) Inicio() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Data+" "+r.Hora, time.Local)
}

// Fim is Inicio plus DuracaoMinutos.
func (r *Reserva) Fim() (time.Time, error) {
	inicio, err := r.Inicio()
	if err != nil {
		return time.Time{}, err
	}
	return inicio.Add(time.Duration(r.DuracaoMinutos) * time.Minute), nil
}
