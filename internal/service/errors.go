package service

import "errors"

// Closed error taxonomy of the business layer. Handlers map these to HTTP
// statuses with errors.Is; nothing else crosses the service boundary for
// expected business-rule rejections.
var (
	// Caixa
	ErrCaixaJaAberto          = errors.New("já existe um caixa aberto")
	ErrCaixaNaoEncontrado     = errors.New("caixa não encontrado")
	ErrCaixaJaFechado         = errors.New("o caixa já está fechado")
	ErrVendaDuplicada         = errors.New("já existe uma venda registrada para este pedido")
	ErrCaixaIndisponivel      = errors.New("nenhum caixa disponível para registrar a venda")
	ErrTransacaoNaoEncontrada = errors.New("transação não encontrada")

	// Reservas
	ErrMesaNaoEncontrada    = errors.New("mesa não encontrada")
	ErrCapacidadeExcedida   = errors.New("quantidade de pessoas excede a capacidade da mesa")
	ErrMesaUnida            = errors.New("mesa unida a outra não pode ser reservada individualmente")
	ErrConflitoHorario      = errors.New("já existe uma reserva para esta mesa neste horário")
	ErrReservaNaoEncontrada = errors.New("reserva não encontrada")
	ErrEntradaInvalida      = errors.New("dados inválidos")

	// Mesas
	ErrNumeroMesaEmUso   = errors.New("já existe uma mesa com este número")
	ErrMesaNaoDisponivel = errors.New("mesa não está disponível para esta operação")
	ErrMesaNaoUnida      = errors.New("mesa não possui união para separar")

	// Pedidos / catálogo
	ErrPedidoNaoEncontrado    = errors.New("pedido não encontrado")
	ErrPedidoJaFechado        = errors.New("o pedido já foi fechado ou cancelado")
	ErrProdutoNaoEncontrado   = errors.New("produto não encontrado")
	ErrProdutoIndisponivel    = errors.New("produto indisponível")
	ErrCategoriaNaoEncontrada = errors.New("categoria não encontrada")
	ErrClienteNaoEncontrado   = errors.New("cliente não encontrado")
)
