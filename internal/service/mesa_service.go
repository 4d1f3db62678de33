package service

import (
	"context"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type MesaService interface {
	Criar(ctx context.Context, req dto.CriarMesaRequest) (*dto.MesaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarMesaRequest) (*dto.MesaResponse, error)
	AtualizarStatus(ctx context.Context, id uuid.UUID, status string) (*dto.MesaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.MesaResponse, error)
	Listar(ctx context.Context) ([]dto.MesaResponse, error)
	// Unir merges the listed mesas into the principal: their capacities are
	// added to the principal's and they become unusable until Separar.
	Unir(ctx context.Context, req dto.UnirMesasRequest) (*dto.MesaResponse, error)
	Separar(ctx context.Context, principalID uuid.UUID) ([]dto.MesaResponse, error)
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func (s *mesaService) Criar(ctx context.Context, req dto.CriarMesaRequest) (*dto.MesaResponse, error) {
	if existente, err := s.repo.FindByNumero(ctx, req.Numero); err == nil && existente != nil && existente.ID != uuid.Nil {
		return nil, ErrNumeroMesaEmUso
	}
	mesa := &model.Mesa{
		Numero:      req.Numero,
		Capacidade:  req.Capacidade,
		Status:      "disponivel",
		Localizacao: req.Localizacao,
	}
	if err := s.repo.Create(ctx, mesa); err != nil {
		return nil, err
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarMesaRequest) (*dto.MesaResponse, error) {
	mesa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	if req.Numero != nil && *req.Numero != mesa.Numero {
		if existente, err := s.repo.FindByNumero(ctx, *req.Numero); err == nil && existente != nil && existente.ID != mesa.ID {
			return nil, ErrNumeroMesaEmUso
		}
		mesa.Numero = *req.Numero
	}
	if req.Capacidade != nil {
		mesa.Capacidade = *req.Capacidade
	}
	if req.Localizacao != nil {
		mesa.Localizacao = req.Localizacao
	}
	if err := s.repo.Update(ctx, mesa); err != nil {
		return nil, err
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) AtualizarStatus(ctx context.Context, id uuid.UUID, status string) (*dto.MesaResponse, error) {
	mesa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	if mesa.Status == "unida" {
		return nil, ErrMesaUnida
	}
	mesa.Status = status
	if err := s.repo.Update(ctx, mesa); err != nil {
		return nil, err
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.MesaResponse, error) {
	mesa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) Listar(ctx context.Context) ([]dto.MesaResponse, error) {
	mesas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MesaResponse, 0, len(mesas))
	for i := range mesas {
		result = append(result, *mesaToResponse(&mesas[i]))
	}
	return result, nil
}

// ── Unir / Separar ────────────────────────────────────────────────────────────

func (s *mesaService) Unir(ctx context.Context, req dto.UnirMesasRequest) (*dto.MesaResponse, error) {
	principalID, err := uuid.Parse(req.MesaPrincipalID)
	if err != nil {
		return nil, ErrEntradaInvalida
	}
	principal, err := s.repo.FindByID(ctx, principalID)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	if principal.Status != "disponivel" {
		return nil, ErrMesaNaoDisponivel
	}

	var secundarias []*model.Mesa
	for _, raw := range req.MesaIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		if id == principalID {
			return nil, ErrEntradaInvalida
		}
		mesa, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, ErrMesaNaoEncontrada
		}
		if mesa.Status != "disponivel" {
			return nil, ErrMesaNaoDisponivel
		}
		secundarias = append(secundarias, mesa)
	}

	// The pre-merge capacity is saved before being overwritten so Separar
	// can restore it exactly.
	original := principal.Capacidade
	principal.CapacidadeOriginal = &original
	for _, mesa := range secundarias {
		principal.Capacidade += mesa.Capacidade
	}
	if err := s.repo.Update(ctx, principal); err != nil {
		return nil, err
	}

	for _, mesa := range secundarias {
		mesa.Status = "unida"
		mesa.UnidaCom = &principal.ID
		if err := s.repo.Update(ctx, mesa); err != nil {
			log.Error().Err(err).Str("mesa_id", mesa.ID.String()).
				Msg("falha ao marcar mesa como unida")
		}
	}

	return mesaToResponse(principal), nil
}

func (s *mesaService) Separar(ctx context.Context, principalID uuid.UUID) ([]dto.MesaResponse, error) {
	principal, err := s.repo.FindByID(ctx, principalID)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	unidas, err := s.repo.ListUnidasCom(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if principal.CapacidadeOriginal == nil && len(unidas) == 0 {
		return nil, ErrMesaNaoUnida
	}

	if principal.CapacidadeOriginal != nil {
		principal.Capacidade = *principal.CapacidadeOriginal
		principal.CapacidadeOriginal = nil
	}
	if err := s.repo.Update(ctx, principal); err != nil {
		return nil, err
	}

	result := []dto.MesaResponse{*mesaToResponse(principal)}
	for i := range unidas {
		mesa := unidas[i]
		mesa.Status = "disponivel"
		mesa.UnidaCom = nil
		if err := s.repo.Update(ctx, &mesa); err != nil {
			log.Error().Err(err).Str("mesa_id", mesa.ID.String()).
				Msg("falha ao separar mesa")
			continue
		}
		result = append(result, *mesaToResponse(&mesa))
	}
	return result, nil
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	resp := &dto.MesaResponse{
		ID:                 m.ID.String(),
		Numero:             m.Numero,
		Capacidade:         m.Capacidade,
		CapacidadeOriginal: m.CapacidadeOriginal,
		Status:             m.Status,
		Localizacao:        m.Localizacao,
	}
	if m.UnidaCom != nil {
		id := m.UnidaCom.String()
		resp.UnidaCom = &id
	}
	return resp
}
