package repository

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	List(ctx context.Context, f dto.PedidoFilter) ([]model.Pedido, error)
	NextNumero(ctx context.Context) (int, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Preload("Cliente").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) List(ctx context.Context, f dto.PedidoFilter) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Preload("Itens.Produto")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MesaID != "" {
		q = q.Where("mesa_id = ?", f.MesaID)
	}
	var pedidos []model.Pedido
	err := q.Order("created_at DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) NextNumero(ctx context.Context) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Select("COALESCE(MAX(numero), 0) + 1").Scan(&n).Error
	return n, err
}
