package repository

import (
	"context"
	"sort"

	"comanda/internal/dto"
	"comanda/internal/model"

	"github.com/google/uuid"
)

type ReservaRepository interface {
	CreateReserva(ctx context.Context, res *model.Reserva) error
	FindReservaByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	UpdateReserva(ctx context.Context, res *model.Reserva) error
	ListReservas(ctx context.Context, f dto.ReservaFilter) ([]model.Reserva, error)
	// ListAtivasPorMesaData returns pendente/confirmada reservations of a
	// mesa on the given date — the candidates for the overlap scan.
	ListAtivasPorMesaData(ctx context.Context, mesaID uuid.UUID, data string) ([]model.Reserva, error)
	// ListAtivas returns every pendente/confirmada reservation (sweep input).
	ListAtivas(ctx context.Context) ([]model.Reserva, error)
	// ExisteAtivaParaMesa reports whether the mesa still has an active
	// reservation other than excetoID.
	ExisteAtivaParaMesa(ctx context.Context, mesaID, excetoID uuid.UUID) (bool, error)
}

type reservaRepo struct{ st *MemStore }

func NewReservaRepository(st *MemStore) ReservaRepository { return &reservaRepo{st: st} }

func (r *reservaRepo) CreateReserva(_ context.Context, res *model.Reserva) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	r.st.reservas[res.ID] = *res
	return nil
}

func (r *reservaRepo) FindReservaByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	res, ok := r.st.reservas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *reservaRepo) UpdateReserva(_ context.Context, res *model.Reserva) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.reservas[res.ID]; !ok {
		return ErrNotFound
	}
	r.st.reservas[res.ID] = *res
	return nil
}

func (r *reservaRepo) ListReservas(_ context.Context, f dto.ReservaFilter) ([]model.Reserva, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var result []model.Reserva
	for _, res := range r.st.reservas {
		if f.Data != "" && res.Data != f.Data {
			continue
		}
		if f.Status != "" && res.Status != f.Status {
			continue
		}
		if f.MesaID != "" && res.MesaID.String() != f.MesaID {
			continue
		}
		result = append(result, res)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Data != result[j].Data {
			return result[i].Data < result[j].Data
		}
		return result[i].Hora < result[j].Hora
	})
	return result, nil
}

func (r *reservaRepo) ListAtivasPorMesaData(_ context.Context, mesaID uuid.UUID, data string) ([]model.Reserva, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var result []model.Reserva
	for _, res := range r.st.reservas {
		if res.MesaID == mesaID && res.Data == data && res.Ativa() {
			result = append(result, res)
		}
	}
	return result, nil
}

func (r *reservaRepo) ListAtivas(_ context.Context) ([]model.Reserva, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var result []model.Reserva
	for _, res := range r.st.reservas {
		if res.Ativa() {
			result = append(result, res)
		}
	}
	return result, nil
}

func (r *reservaRepo) ExisteAtivaParaMesa(_ context.Context, mesaID, excetoID uuid.UUID) (bool, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, res := range r.st.reservas {
		if res.ID != excetoID && res.MesaID == mesaID && res.Ativa() {
			return true, nil
		}
	}
	return false, nil
}
