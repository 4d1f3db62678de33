package tests

import (
	"context"
	"testing"

	"comanda/internal/dto"
	"comanda/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarMesa_NumeroDuplicado(t *testing.T) {
	mesas := newFakeMesaRepo()
	svc := service.NewMesaService(mesas)
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarMesaRequest{Numero: 1, Capacidade: 4})
	require.NoError(t, err)

	_, err = svc.Criar(ctx, dto.CriarMesaRequest{Numero: 1, Capacidade: 2})
	assert.ErrorIs(t, err, service.ErrNumeroMesaEmUso)
}

func TestUnirMesas_SomaCapacidades(t *testing.T) {
	mesas := newFakeMesaRepo()
	principalID := mesas.addMesa(1, 4, "disponivel")
	segundaID := mesas.addMesa(2, 4, "disponivel")
	terceiraID := mesas.addMesa(3, 2, "disponivel")
	svc := service.NewMesaService(mesas)
	ctx := context.Background()

	resp, err := svc.Unir(ctx, dto.UnirMesasRequest{
		MesaPrincipalID: principalID.String(),
		MesaIDs:         []string{segundaID.String(), terceiraID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Capacidade)
	require.NotNil(t, resp.CapacidadeOriginal)
	assert.Equal(t, 4, *resp.CapacidadeOriginal)
	assert.Equal(t, "unida", mesas.status(segundaID))
	assert.Equal(t, "unida", mesas.status(terceiraID))
}

func TestUnirMesas_OcupadaRejeitada(t *testing.T) {
	mesas := newFakeMesaRepo()
	principalID := mesas.addMesa(1, 4, "disponivel")
	ocupadaID := mesas.addMesa(2, 4, "ocupada")
	svc := service.NewMesaService(mesas)

	_, err := svc.Unir(context.Background(), dto.UnirMesasRequest{
		MesaPrincipalID: principalID.String(),
		MesaIDs:         []string{ocupadaID.String()},
	})
	assert.ErrorIs(t, err, service.ErrMesaNaoDisponivel)
}

func TestUnirMesas_PrincipalNaListaRejeitada(t *testing.T) {
	mesas := newFakeMesaRepo()
	principalID := mesas.addMesa(1, 4, "disponivel")
	svc := service.NewMesaService(mesas)

	_, err := svc.Unir(context.Background(), dto.UnirMesasRequest{
		MesaPrincipalID: principalID.String(),
		MesaIDs:         []string{principalID.String()},
	})
	assert.ErrorIs(t, err, service.ErrEntradaInvalida)
}

func TestSepararMesas_RestauraCapacidadeOriginal(t *testing.T) {
	mesas := newFakeMesaRepo()
	principalID := mesas.addMesa(1, 4, "disponivel")
	segundaID := mesas.addMesa(2, 6, "disponivel")
	svc := service.NewMesaService(mesas)
	ctx := context.Background()

	_, err := svc.Unir(ctx, dto.UnirMesasRequest{
		MesaPrincipalID: principalID.String(),
		MesaIDs:         []string{segundaID.String()},
	})
	require.NoError(t, err)

	result, err := svc.Separar(ctx, principalID)
	require.NoError(t, err)
	require.Len(t, result, 2)

	principal, err := svc.ObterPorID(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, 4, principal.Capacidade)
	assert.Nil(t, principal.CapacidadeOriginal)

	segunda, err := svc.ObterPorID(ctx, segundaID)
	require.NoError(t, err)
	assert.Equal(t, "disponivel", segunda.Status)
	assert.Nil(t, segunda.UnidaCom)
}

func TestSepararMesas_SemUniao(t *testing.T) {
	mesas := newFakeMesaRepo()
	soltaID := mesas.addMesa(1, 4, "disponivel")
	svc := service.NewMesaService(mesas)

	_, err := svc.Separar(context.Background(), soltaID)
	assert.ErrorIs(t, err, service.ErrMesaNaoUnida)
}

func TestAtualizarStatus_MesaUnidaBloqueada(t *testing.T) {
	mesas := newFakeMesaRepo()
	principalID := mesas.addMesa(1, 4, "disponivel")
	segundaID := mesas.addMesa(2, 4, "disponivel")
	svc := service.NewMesaService(mesas)
	ctx := context.Background()

	_, err := svc.Unir(ctx, dto.UnirMesasRequest{
		MesaPrincipalID: principalID.String(),
		MesaIDs:         []string{segundaID.String()},
	})
	require.NoError(t, err)

	_, err = svc.AtualizarStatus(ctx, segundaID, "ocupada")
	assert.ErrorIs(t, err, service.ErrMesaUnida)
}

func TestObterMesa_NaoEncontrada(t *testing.T) {
	svc := service.NewMesaService(newFakeMesaRepo())
	_, err := svc.ObterPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrMesaNaoEncontrada)
}
