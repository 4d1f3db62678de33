package service

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"

	"github.com/google/uuid"
)

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria := &model.Categoria{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Ativa:     true,
	}
	if err := s.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoriaToResponse(categoria), nil
}

func (s *categoriaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoriaNaoEncontrada
	}
	categoria.Nome = req.Nome
	categoria.Descricao = req.Descricao
	if err := s.repo.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return categoriaToResponse(categoria), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		result = append(result, *categoriaToResponse(&categorias[i]))
	}
	return result, nil
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:        c.ID.String(),
		Nome:      c.Nome,
		Descricao: c.Descricao,
		Ativa:     c.Ativa,
	}
}
