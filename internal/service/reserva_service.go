package service

import (
	"context"
	"sync"
	"time"

	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReservaService interface {
	Criar(ctx context.Context, req dto.CriarReservaRequest) (*dto.ReservaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarReservaRequest) (*dto.ReservaResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	Listar(ctx context.Context, f dto.ReservaFilter) ([]dto.ReservaResponse, error)
	// VarrerPassadas closes out reservations whose interval ended before
	// agora: confirmada → concluida, pendente → nao_compareceu. Idempotent.
	VarrerPassadas(ctx context.Context, agora time.Time) (int, error)
}

type reservaService struct {
	repo  repository.ReservaRepository
	mesas repository.MesaRepository
	// mu serializes the overlap check-then-act across concurrent requests.
	mu sync.Mutex
}

func NewReservaService(repo repository.ReservaRepository, mesas repository.MesaRepository) ReservaService {
	return &reservaService{repo: repo, mesas: mesas}
}

// intervalosConflitam compares two half-open intervals [inicio, inicio+dur).
// Back-to-back bookings share an instant boundary and do NOT conflict.
func intervalosConflitam(aInicio time.Time, aDur int, bInicio time.Time, bDur int) bool {
	aFim := aInicio.Add(time.Duration(aDur) * time.Minute)
	bFim := bInicio.Add(time.Duration(bDur) * time.Minute)
	return aInicio.Before(bFim) && bInicio.Before(aFim)
}

// ── Criar ─────────────────────────────────────────────────────────────────────

func (s *reservaService) Criar(ctx context.Context, req dto.CriarReservaRequest) (*dto.ReservaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mesaID, err := uuid.Parse(req.MesaID)
	if err != nil {
		return nil, ErrEntradaInvalida
	}
	mesa, err := s.mesas.FindByID(ctx, mesaID)
	if err != nil {
		return nil, ErrMesaNaoEncontrada
	}
	if mesa.Status == "unida" {
		return nil, ErrMesaUnida
	}
	if mesa.Capacidade < req.Pessoas {
		return nil, ErrCapacidadeExcedida
	}

	status := req.Status
	if status == "" {
		status = "pendente"
	}
	reserva := &model.Reserva{
		MesaID:          mesaID,
		NomeCliente:     req.NomeCliente,
		TelefoneCliente: req.TelefoneCliente,
		Data:            req.Data,
		Hora:            req.Hora,
		DuracaoMinutos:  req.DuracaoMinutos,
		Pessoas:         req.Pessoas,
		Status:          status,
		Observacoes:     req.Observacoes,
		CreatedAt:       time.Now(),
	}

	if err := s.verificarConflito(ctx, reserva, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.CreateReserva(ctx, reserva); err != nil {
		return nil, err
	}

	// Best-effort side effect: the reservation stands even if the mesa
	// status update fails.
	if mesa.Status == "disponivel" {
		if err := s.mesas.UpdateStatus(ctx, mesaID, "reservada"); err != nil {
			log.Warn().Err(err).Str("mesa_id", mesaID.String()).
				Msg("falha ao marcar mesa como reservada")
		}
	}

	return reservaToResponse(reserva), nil
}

// ── Atualizar ─────────────────────────────────────────────────────────────────

func (s *reservaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarReservaRequest) (*dto.ReservaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reserva, err := s.repo.FindReservaByID(ctx, id)
	if err != nil {
		return nil, ErrReservaNaoEncontrada
	}

	// Re-cancelling an already cancelled reservation is a no-op; the mesa
	// side effect must not be applied twice.
	if reserva.Status == "cancelada" && req.Status != nil && *req.Status == "cancelada" {
		return reservaToResponse(reserva), nil
	}

	horarioMudou := req.Data != nil || req.Hora != nil || req.DuracaoMinutos != nil
	eraAtiva := reserva.Ativa()

	if req.NomeCliente != nil {
		reserva.NomeCliente = *req.NomeCliente
	}
	if req.TelefoneCliente != nil {
		reserva.TelefoneCliente = *req.TelefoneCliente
	}
	if req.Data != nil {
		reserva.Data = *req.Data
	}
	if req.Hora != nil {
		reserva.Hora = *req.Hora
	}
	if req.DuracaoMinutos != nil {
		reserva.DuracaoMinutos = *req.DuracaoMinutos
	}
	if req.Pessoas != nil {
		mesa, err := s.mesas.FindByID(ctx, reserva.MesaID)
		if err != nil {
			return nil, ErrMesaNaoEncontrada
		}
		if mesa.Capacidade < *req.Pessoas {
			return nil, ErrCapacidadeExcedida
		}
		reserva.Pessoas = *req.Pessoas
	}
	if req.Observacoes != nil {
		reserva.Observacoes = req.Observacoes
	}
	if req.Status != nil {
		reserva.Status = *req.Status
	}

	// The overlap scan re-runs when the time slot changed, and also when a
	// finalized reservation is reactivated: its old slot may have been
	// rebooked while it was inactive.
	reativada := !eraAtiva && reserva.Ativa()
	if (horarioMudou || reativada) && reserva.Ativa() {
		if err := s.verificarConflito(ctx, reserva, reserva.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateReserva(ctx, reserva); err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.aplicarEfeitoMesa(ctx, reserva, *req.Status)
	}

	return reservaToResponse(reserva), nil
}

// ── Cancelar ──────────────────────────────────────────────────────────────────

func (s *reservaService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	status := "cancelada"
	return s.Atualizar(ctx, id, dto.AtualizarReservaRequest{Status: &status})
}

// ── ObterPorID / Listar ───────────────────────────────────────────────────────

func (s *reservaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	reserva, err := s.repo.FindReservaByID(ctx, id)
	if err != nil {
		return nil, ErrReservaNaoEncontrada
	}
	return reservaToResponse(reserva), nil
}

func (s *reservaService) Listar(ctx context.Context, f dto.ReservaFilter) ([]dto.ReservaResponse, error) {
	reservas, err := s.repo.ListReservas(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		result = append(result, *reservaToResponse(&reservas[i]))
	}
	return result, nil
}

// ── VarrerPassadas ────────────────────────────────────────────────────────────

func (s *reservaService) VarrerPassadas(ctx context.Context, agora time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ativas, err := s.repo.ListAtivas(ctx)
	if err != nil {
		return 0, err
	}

	varridas := 0
	for i := range ativas {
		reserva := ativas[i]
		fim, err := reserva.Fim()
		if err != nil {
			log.Warn().Str("reserva_id", reserva.ID.String()).Err(err).
				Msg("reserva com horário inválido ignorada na varredura")
			continue
		}
		if !fim.Before(agora) {
			continue
		}
		if reserva.Status == "confirmada" {
			reserva.Status = "concluida"
		} else {
			reserva.Status = "nao_compareceu"
		}
		if err := s.repo.UpdateReserva(ctx, &reserva); err != nil {
			log.Error().Err(err).Str("reserva_id", reserva.ID.String()).
				Msg("falha ao varrer reserva passada")
			continue
		}
		s.aplicarEfeitoMesa(ctx, &reserva, reserva.Status)
		varridas++
	}
	return varridas, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// verificarConflito scans active reservations of the same mesa and date,
// excluding excetoID (the reservation being updated).
func (s *reservaService) verificarConflito(ctx context.Context, reserva *model.Reserva, excetoID uuid.UUID) error {
	inicio, err := reserva.Inicio()
	if err != nil {
		return ErrEntradaInvalida
	}

	candidatas, err := s.repo.ListAtivasPorMesaData(ctx, reserva.MesaID, reserva.Data)
	if err != nil {
		return err
	}
	for _, outra := range candidatas {
		if outra.ID == excetoID {
			continue
		}
		outroInicio, err := outra.Inicio()
		if err != nil {
			continue
		}
		if intervalosConflitam(inicio, reserva.DuracaoMinutos, outroInicio, outra.DuracaoMinutos) {
			return ErrConflitoHorario
		}
	}
	return nil
}

// aplicarEfeitoMesa applies the table-status side effect of a reservation
// status change. Best-effort: failures are logged, never rolled back.
func (s *reservaService) aplicarEfeitoMesa(ctx context.Context, reserva *model.Reserva, status string) {
	switch status {
	case "confirmada":
		mesa, err := s.mesas.FindByID(ctx, reserva.MesaID)
		if err == nil && mesa.Status == "disponivel" {
			if err := s.mesas.UpdateStatus(ctx, reserva.MesaID, "reservada"); err != nil {
				log.Warn().Err(err).Str("mesa_id", reserva.MesaID.String()).
					Msg("falha ao marcar mesa como reservada")
			}
		}
	case "cancelada", "nao_compareceu", "concluida":
		resta, err := s.repo.ExisteAtivaParaMesa(ctx, reserva.MesaID, reserva.ID)
		if err != nil || resta {
			return
		}
		mesa, err := s.mesas.FindByID(ctx, reserva.MesaID)
		if err == nil && mesa.Status == "reservada" {
			if err := s.mesas.UpdateStatus(ctx, reserva.MesaID, "disponivel"); err != nil {
				log.Warn().Err(err).Str("mesa_id", reserva.MesaID.String()).
					Msg("falha ao liberar mesa")
			}
		}
	}
}

func reservaToResponse(r *model.Reserva) *dto.ReservaResponse {
	return &dto.ReservaResponse{
		ID:              r.ID.String(),
		MesaID:          r.MesaID.String(),
		NomeCliente:     r.NomeCliente,
		TelefoneCliente: r.TelefoneCliente,
		Data:            r.Data,
		Hora:            r.Hora,
		DuracaoMinutos:  r.DuracaoMinutos,
		Pessoas:         r.Pessoas,
		Status:          r.Status,
		Observacoes:     r.Observacoes,
		CriadaEm:        r.CreatedAt.Format(time.RFC3339),
	}
}
