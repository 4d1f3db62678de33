package repository

import (
	"sync"
	"time"

	"comanda/internal/model"

	"github.com/google/uuid"
)

// MemStore owns the in-memory collections of the cash ledger and the
// reservation book. It is constructed once in the composition root and
// shared by CaixaRepository and ReservaRepository — no module-level state.
//
// Values (not pointers) are stored and copied on the way in and out, so
// callers never alias the store's internals. The RWMutex only guards the
// collections themselves; check-then-act invariants (single open caixa,
// reservation overlap) are serialized one level up, in the services.
type MemStore struct {
	mu         sync.RWMutex
	caixas     map[uuid.UUID]model.Caixa
	transacoes []model.TransacaoCaixa
	reservas   map[uuid.UUID]model.Reserva
}

func NewMemStore() *MemStore {
	return &MemStore{
		caixas:   make(map[uuid.UUID]model.Caixa),
		reservas: make(map[uuid.UUID]model.Reserva),
	}
}

// dentroDoPeriodo reports whether t falls inside the [de, ate] date range.
// Empty bounds are open; ate is inclusive through end of day.
func dentroDoPeriodo(t time.Time, de, ate string) bool {
	if de != "" {
		inicio, err := time.ParseInLocation("2006-01-02", de, time.Local)
		if err == nil && t.Before(inicio) {
			return false
		}
	}
	if ate != "" {
		fim, err := time.ParseInLocation("2006-01-02", ate, time.Local)
		if err == nil && !t.Before(fim.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}
