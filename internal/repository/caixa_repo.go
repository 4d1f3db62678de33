package repository

import (
	"context"
	"sort"

	"comanda/internal/dto"
	"comanda/internal/model"

	"github.com/google/uuid"
)

type CaixaRepository interface {
	CreateCaixa(ctx context.Context, c *model.Caixa) error
	// FindCaixaAberto returns (nil, nil) when no session is open.
	FindCaixaAberto(ctx context.Context) (*model.Caixa, error)
	// FindCaixaByID returns the session with its Transacoes attached.
	FindCaixaByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	UpdateCaixa(ctx context.Context, c *model.Caixa) error
	ListCaixas(ctx context.Context, f dto.CaixaFilter) ([]model.Caixa, error)

	CreateTransacao(ctx context.Context, t *model.TransacaoCaixa) error
	FindTransacaoByID(ctx context.Context, id uuid.UUID) (*model.TransacaoCaixa, error)
	UpdateTransacao(ctx context.Context, t *model.TransacaoCaixa) error
	DeleteTransacao(ctx context.Context, id uuid.UUID) error
	ListTransacoes(ctx context.Context, f dto.TransacaoFilter) ([]model.TransacaoCaixa, error)
	// FindVendaPorPedido returns (nil, nil) when the order has no venda yet.
	FindVendaPorPedido(ctx context.Context, pedidoID uuid.UUID) (*model.TransacaoCaixa, error)
}

type caixaRepo struct{ st *MemStore }

func NewCaixaRepository(st *MemStore) CaixaRepository { return &caixaRepo{st: st} }

func (r *caixaRepo) CreateCaixa(_ context.Context, c *model.Caixa) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.st.caixas[c.ID] = *c
	return nil
}

func (r *caixaRepo) FindCaixaAberto(_ context.Context) (*model.Caixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, c := range r.st.caixas {
		if c.Status == "aberto" {
			aberto := c
			return &aberto, nil
		}
	}
	return nil, nil
}

func (r *caixaRepo) FindCaixaByID(_ context.Context, id uuid.UUID) (*model.Caixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	c, ok := r.st.caixas[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Transacoes = nil
	for _, t := range r.st.transacoes {
		if t.CaixaID != nil && *t.CaixaID == id {
			c.Transacoes = append(c.Transacoes, t)
		}
	}
	sort.Slice(c.Transacoes, func(i, j int) bool {
		return c.Transacoes[i].OcorridoEm.Before(c.Transacoes[j].OcorridoEm)
	})
	return &c, nil
}

func (r *caixaRepo) UpdateCaixa(_ context.Context, c *model.Caixa) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.caixas[c.ID]; !ok {
		return ErrNotFound
	}
	atual := *c
	atual.Transacoes = nil // transactions live in their own collection
	r.st.caixas[c.ID] = atual
	return nil
}

func (r *caixaRepo) ListCaixas(_ context.Context, f dto.CaixaFilter) ([]model.Caixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var result []model.Caixa
	for _, c := range r.st.caixas {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if !dentroDoPeriodo(c.OpenedAt, f.DataDe, f.DataAte) {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OpenedAt.After(result[j].OpenedAt)
	})
	return result, nil
}

func (r *caixaRepo) CreateTransacao(_ context.Context, t *model.TransacaoCaixa) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.st.transacoes = append(r.st.transacoes, *t)
	return nil
}

func (r *caixaRepo) FindTransacaoByID(_ context.Context, id uuid.UUID) (*model.TransacaoCaixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, t := range r.st.transacoes {
		if t.ID == id {
			achada := t
			return &achada, nil
		}
	}
	return nil, ErrNotFound
}

func (r *caixaRepo) UpdateTransacao(_ context.Context, t *model.TransacaoCaixa) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.transacoes {
		if r.st.transacoes[i].ID == t.ID {
			r.st.transacoes[i] = *t
			return nil
		}
	}
	return ErrNotFound
}

func (r *caixaRepo) DeleteTransacao(_ context.Context, id uuid.UUID) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.transacoes {
		if r.st.transacoes[i].ID == id {
			r.st.transacoes = append(r.st.transacoes[:i], r.st.transacoes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *caixaRepo) ListTransacoes(_ context.Context, f dto.TransacaoFilter) ([]model.TransacaoCaixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var result []model.TransacaoCaixa
	for _, t := range r.st.transacoes {
		if f.Tipo != "" && t.Tipo != f.Tipo {
			continue
		}
		if f.CaixaID != "" {
			if t.CaixaID == nil || t.CaixaID.String() != f.CaixaID {
				continue
			}
		}
		if !dentroDoPeriodo(t.OcorridoEm, f.DataDe, f.DataAte) {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OcorridoEm.Before(result[j].OcorridoEm)
	})
	return result, nil
}

func (r *caixaRepo) FindVendaPorPedido(_ context.Context, pedidoID uuid.UUID) (*model.TransacaoCaixa, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, t := range r.st.transacoes {
		if t.Tipo == "venda" && t.PedidoID != nil && *t.PedidoID == pedidoID {
			achada := t
			return &achada, nil
		}
	}
	return nil, nil
}
