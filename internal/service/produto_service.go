package service

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"

	"github.com/google/uuid"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, somenteDisponiveis bool) ([]dto.ProdutoResponse, error)
}

type produtoService struct {
	repo       repository.ProdutoRepository
	categorias repository.CategoriaRepository
}

func NewProdutoService(repo repository.ProdutoRepository, categorias repository.CategoriaRepository) ProdutoService {
	return &produtoService{repo: repo, categorias: categorias}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto := &model.Produto{
		Nome:       req.Nome,
		Descricao:  req.Descricao,
		Preco:      req.Preco,
		Disponivel: true,
	}
	if req.CategoriaID != nil {
		categoriaID, err := s.resolverCategoria(ctx, *req.CategoriaID)
		if err != nil {
			return nil, err
		}
		produto.CategoriaID = categoriaID
	}
	if err := s.repo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = req.Descricao
	}
	if req.Preco != nil {
		produto.Preco = *req.Preco
	}
	if req.Disponivel != nil {
		produto.Disponivel = *req.Disponivel
	}
	if req.CategoriaID != nil {
		categoriaID, err := s.resolverCategoria(ctx, *req.CategoriaID)
		if err != nil {
			return nil, err
		}
		produto.CategoriaID = categoriaID
		produto.Categoria = nil
	}
	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, err
	}
	atualizado, err := s.repo.FindByID(ctx, produto.ID)
	if err != nil {
		return produtoToResponse(produto), nil
	}
	return produtoToResponse(atualizado), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Listar(ctx context.Context, somenteDisponiveis bool) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, somenteDisponiveis)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		result = append(result, *produtoToResponse(&produtos[i]))
	}
	return result, nil
}

func (s *produtoService) resolverCategoria(ctx context.Context, raw string) (*uuid.UUID, error) {
	categoriaID, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrEntradaInvalida
	}
	if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
		return nil, ErrCategoriaNaoEncontrada
	}
	return &categoriaID, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	resp := &dto.ProdutoResponse{
		ID:         p.ID.String(),
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		Preco:      p.Preco,
		Disponivel: p.Disponivel,
	}
	if p.Categoria != nil {
		resp.Categoria = &p.Categoria.Nome
	}
	return resp
}
