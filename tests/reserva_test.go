package tests

import (
	"context"
	"testing"
	"time"

	"comanda/internal/dto"
	"comanda/internal/repository"
	"comanda/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoReservaService(mesas *fakeMesaRepo) service.ReservaService {
	store := repository.NewMemStore()
	return service.NewReservaService(repository.NewReservaRepository(store), mesas)
}

func reservaBase(mesaID uuid.UUID, data, hora string, duracao int) dto.CriarReservaRequest {
	return dto.CriarReservaRequest{
		MesaID:          mesaID.String(),
		NomeCliente:     "Carlos Silva",
		TelefoneCliente: "11987654321",
		Data:            data,
		Hora:            hora,
		DuracaoMinutos:  duracao,
		Pessoas:         2,
	}
}

func TestCriarReserva_MarcaMesaComoReservada(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)

	resp, err := svc.Criar(context.Background(), reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	assert.Equal(t, "pendente", resp.Status)
	assert.Equal(t, "reservada", mesas.status(mesaID))
}

func TestCriarReserva_CapacidadeExcedida(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)

	req := reservaBase(mesaID, "2026-09-10", "19:00", 60)
	req.Pessoas = 6
	_, err := svc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrCapacidadeExcedida)
}

func TestCriarReserva_MesaUnidaRejeitada(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(2, 4, "unida")
	svc := novoReservaService(mesas)

	_, err := svc.Criar(context.Background(), reservaBase(mesaID, "2026-09-10", "19:00", 60))
	assert.ErrorIs(t, err, service.ErrMesaUnida)
}

func TestCriarReserva_ConflitoDeHorario(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	_, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)

	// 19:30 starts inside [19:00, 20:00) — rejected.
	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:30", 30))
	assert.ErrorIs(t, err, service.ErrConflitoHorario)
}

func TestCriarReserva_EncostadasNaoConflitam(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	_, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)

	// [20:00, 21:00) shares only the boundary instant with [19:00, 20:00).
	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "20:00", 60))
	assert.NoError(t, err)

	// Same slot on another mesa is also fine.
	outraID := mesas.addMesa(2, 4, "disponivel")
	_, err = svc.Criar(ctx, reservaBase(outraID, "2026-09-10", "19:30", 60))
	assert.NoError(t, err)

	// And the same slot on another date.
	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-11", "19:00", 60))
	assert.NoError(t, err)
}

func TestCriarReserva_CanceladaNaoBloqueiaHorario(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	_, err = svc.Cancelar(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	assert.NoError(t, err)
}

func TestAtualizarReserva_NaoConflitaConsigoMesma(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)

	// Shifting its own slot by 15 minutes overlaps only itself.
	hora := "19:15"
	atualizada, err := svc.Atualizar(ctx, uuid.MustParse(resp.ID), dto.AtualizarReservaRequest{Hora: &hora})
	require.NoError(t, err)
	assert.Equal(t, "19:15", atualizada.Hora)
}

func TestAtualizarReserva_MudancaDeHorarioConflitante(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	_, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	segunda, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "21:00", 60))
	require.NoError(t, err)

	hora := "19:30"
	_, err = svc.Atualizar(ctx, uuid.MustParse(segunda.ID), dto.AtualizarReservaRequest{Hora: &hora})
	assert.ErrorIs(t, err, service.ErrConflitoHorario)
}

func TestAtualizarReserva_PessoasAcimaDaCapacidade(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)

	pessoas := 8
	_, err = svc.Atualizar(ctx, uuid.MustParse(resp.ID), dto.AtualizarReservaRequest{Pessoas: &pessoas})
	assert.ErrorIs(t, err, service.ErrCapacidadeExcedida)
}

func TestCancelarReserva_IdempotenteELiberaMesa(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)
	assert.Equal(t, "reservada", mesas.status(mesaID))

	cancelada, err := svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cancelada", cancelada.Status)
	assert.Equal(t, "disponivel", mesas.status(mesaID))

	// Second cancel is a no-op, even if the mesa was re-reserved meanwhile.
	mesas.mesas[mesaID].Status = "reservada"
	denovo, err := svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cancelada", denovo.Status)
	assert.Equal(t, "reservada", mesas.status(mesaID))
}

func TestCancelarReserva_NaoLiberaMesaComOutraAtiva(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	primeira, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "21:00", 60))
	require.NoError(t, err)

	_, err = svc.Cancelar(ctx, uuid.MustParse(primeira.ID))
	require.NoError(t, err)
	assert.Equal(t, "reservada", mesas.status(mesaID))
}

func TestVarrerPassadas_FinalizaEIdempotente(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	outraID := mesas.addMesa(2, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	agora := time.Now()
	passado := agora.Add(-3 * time.Hour)

	confirmada := reservaBase(mesaID, passado.Format("2006-01-02"), passado.Format("15:04"), 60)
	confirmada.Status = "confirmada"
	criada, err := svc.Criar(ctx, confirmada)
	require.NoError(t, err)

	pendente := reservaBase(outraID, passado.Format("2006-01-02"), passado.Format("15:04"), 60)
	pendCriada, err := svc.Criar(ctx, pendente)
	require.NoError(t, err)

	futura := reservaBase(mesaID, agora.Add(48*time.Hour).Format("2006-01-02"), "19:00", 60)
	futCriada, err := svc.Criar(ctx, futura)
	require.NoError(t, err)

	n, err := svc.VarrerPassadas(ctx, agora)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	concluida, err := svc.ObterPorID(ctx, uuid.MustParse(criada.ID))
	require.NoError(t, err)
	assert.Equal(t, "concluida", concluida.Status)

	faltou, err := svc.ObterPorID(ctx, uuid.MustParse(pendCriada.ID))
	require.NoError(t, err)
	assert.Equal(t, "nao_compareceu", faltou.Status)

	intacta, err := svc.ObterPorID(ctx, uuid.MustParse(futCriada.ID))
	require.NoError(t, err)
	assert.Equal(t, "pendente", intacta.Status)

	// Second sweep finds nothing left to finalize.
	n, err = svc.VarrerPassadas(ctx, agora)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAtualizarReserva_ReativacaoEmHorarioJaOcupado(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	primeira, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	id := uuid.MustParse(primeira.ID)

	_, err = svc.Cancelar(ctx, id)
	require.NoError(t, err)

	// The freed slot is rebooked by someone else.
	_, err = svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)

	// Reactivating the cancelled reservation would double-book the slot.
	status := "confirmada"
	_, err = svc.Atualizar(ctx, id, dto.AtualizarReservaRequest{Status: &status})
	assert.ErrorIs(t, err, service.ErrConflitoHorario)

	ativas, err := svc.Listar(ctx, dto.ReservaFilter{Status: "confirmada"})
	require.NoError(t, err)
	assert.Empty(t, ativas)
}

func TestAtualizarReserva_ReativacaoEmHorarioLivre(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)
	_, err = svc.Cancelar(ctx, id)
	require.NoError(t, err)

	status := "confirmada"
	reativada, err := svc.Atualizar(ctx, id, dto.AtualizarReservaRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "confirmada", reativada.Status)
}

func TestAtualizarReserva_PessoasComMesaInexistente(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	delete(mesas.mesas, mesaID)

	pessoas := 3
	_, err = svc.Atualizar(ctx, uuid.MustParse(resp.ID), dto.AtualizarReservaRequest{Pessoas: &pessoas})
	assert.ErrorIs(t, err, service.ErrMesaNaoEncontrada)
}

func TestListarReservas_FiltroPorDataEStatus(t *testing.T) {
	mesas := newFakeMesaRepo()
	mesaID := mesas.addMesa(1, 4, "disponivel")
	svc := novoReservaService(mesas)
	ctx := context.Background()

	_, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-10", "19:00", 60))
	require.NoError(t, err)
	resp, err := svc.Criar(ctx, reservaBase(mesaID, "2026-09-11", "19:00", 60))
	require.NoError(t, err)
	_, err = svc.Cancelar(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	dia10, err := svc.Listar(ctx, dto.ReservaFilter{Data: "2026-09-10"})
	require.NoError(t, err)
	assert.Len(t, dia10, 1)

	canceladas, err := svc.Listar(ctx, dto.ReservaFilter{Status: "cancelada"})
	require.NoError(t, err)
	assert.Len(t, canceladas, 1)
}
