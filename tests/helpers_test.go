package tests

import (
	"context"
	"errors"

	"comanda/internal/dto"
	"comanda/internal/model"

	"github.com/google/uuid"
)

// ── In-memory MesaRepository ─────────────────────────────────────────────────

type fakeMesaRepo struct {
	mesas map[uuid.UUID]*model.Mesa
}

func newFakeMesaRepo() *fakeMesaRepo {
	return &fakeMesaRepo{mesas: make(map[uuid.UUID]*model.Mesa)}
}

// addMesa seeds a mesa and returns its id.
func (r *fakeMesaRepo) addMesa(numero, capacidade int, status string) uuid.UUID {
	m := &model.Mesa{
		ID:         uuid.New(),
		Numero:     numero,
		Capacidade: capacidade,
		Status:     status,
	}
	r.mesas[m.ID] = m
	return m.ID
}

func (r *fakeMesaRepo) Create(_ context.Context, m *model.Mesa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.mesas[m.ID] = &cp
	return nil
}

func (r *fakeMesaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMesaRepo) FindByNumero(_ context.Context, numero int) (*model.Mesa, error) {
	for _, m := range r.mesas {
		if m.Numero == numero {
			cp := *m
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeMesaRepo) Update(_ context.Context, m *model.Mesa) error {
	if _, ok := r.mesas[m.ID]; !ok {
		return errors.New("not found")
	}
	cp := *m
	r.mesas[m.ID] = &cp
	return nil
}

func (r *fakeMesaRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	m, ok := r.mesas[id]
	if !ok {
		return errors.New("not found")
	}
	m.Status = status
	return nil
}

func (r *fakeMesaRepo) List(_ context.Context) ([]model.Mesa, error) {
	result := make([]model.Mesa, 0, len(r.mesas))
	for _, m := range r.mesas {
		result = append(result, *m)
	}
	return result, nil
}

func (r *fakeMesaRepo) ListUnidasCom(_ context.Context, principalID uuid.UUID) ([]model.Mesa, error) {
	var result []model.Mesa
	for _, m := range r.mesas {
		if m.UnidaCom != nil && *m.UnidaCom == principalID {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *fakeMesaRepo) status(id uuid.UUID) string { return r.mesas[id].Status }

// ── In-memory ProdutoRepository ──────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *fakeProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) List(_ context.Context, somenteDisponiveis bool) ([]model.Produto, error) {
	var result []model.Produto
	for _, p := range r.produtos {
		if somenteDisponiveis && !p.Disponivel {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// ── In-memory PedidoRepository ───────────────────────────────────────────────

type fakePedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	proxNum int
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *fakePedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *fakePedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakePedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	if _, ok := r.pedidos[p.ID]; !ok {
		return errors.New("not found")
	}
	cp := *p
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *fakePedidoRepo) List(_ context.Context, f dto.PedidoFilter) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.MesaID != "" && (p.MesaID == nil || p.MesaID.String() != f.MesaID) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakePedidoRepo) NextNumero(_ context.Context) (int, error) {
	r.proxNum++
	return r.proxNum, nil
}
