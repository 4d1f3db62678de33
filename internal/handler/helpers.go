package handler

import (
	"errors"
	"net/http"
	"reflect"

	"comanda/internal/apierror"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates the service error taxonomy into HTTP statuses.
// Unknown errors become an opaque 500 via the error middleware.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCaixaNaoEncontrado),
		errors.Is(err, service.ErrTransacaoNaoEncontrada),
		errors.Is(err, service.ErrReservaNaoEncontrada),
		errors.Is(err, service.ErrMesaNaoEncontrada),
		errors.Is(err, service.ErrPedidoNaoEncontrado),
		errors.Is(err, service.ErrProdutoNaoEncontrado),
		errors.Is(err, service.ErrCategoriaNaoEncontrada),
		errors.Is(err, service.ErrClienteNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCaixaJaAberto),
		errors.Is(err, service.ErrCaixaJaFechado),
		errors.Is(err, service.ErrVendaDuplicada),
		errors.Is(err, service.ErrCaixaIndisponivel),
		errors.Is(err, service.ErrConflitoHorario),
		errors.Is(err, service.ErrMesaUnida),
		errors.Is(err, service.ErrNumeroMesaEmUso),
		errors.Is(err, service.ErrMesaNaoDisponivel),
		errors.Is(err, service.ErrMesaNaoUnida),
		errors.Is(err, service.ErrPedidoJaFechado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCapacidadeExcedida),
		errors.Is(err, service.ErrProdutoIndisponivel):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))

	case errors.Is(err, service.ErrEntradaInvalida):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	default:
		_ = c.Error(err)
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
