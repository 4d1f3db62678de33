package service

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, busca string) ([]dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Observacoes: req.Observacoes,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}
	if req.Email != nil {
		cliente.Email = req.Email
	}
	if req.Observacoes != nil {
		cliente.Observacoes = req.Observacoes
	}
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, busca string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, busca)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *clienteToResponse(&clientes[i]))
	}
	return result, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID.String(),
		Nome:        c.Nome,
		Telefone:    c.Telefone,
		Email:       c.Email,
		Observacoes: c.Observacoes,
	}
}
