package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
)

// Helpers del sobre de respuesta: éxito {success, data, message} y
// error {success, message, errors}.

func successResponse(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(dto.SuccessResponse{Success: true, Data: data, Message: message})
}

func createdResponse(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: data, Message: message})
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

func validationErrorResponse(c *fiber.Ctx, errs domain.ValidationErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		Success: false,
		Message: "errores de validación",
		Errors:  errs,
	})
}

// manejarError traduce errores de dominio al sobre y status que corresponden.
// Los errores no reconocidos salen como 500 con mensaje genérico (el detalle
// queda en el log, nunca en la respuesta).
func manejarError(c *fiber.Ctx, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return validationErrorResponse(c, verrs)
	}
	switch {
	case errors.Is(err, domain.ErrCredenciales):
		return errorResponse(c, fiber.StatusUnauthorized, "Credenciales incorrectas")
	case errors.Is(err, domain.ErrTokenInvalido):
		return errorResponse(c, fiber.StatusUnauthorized, "Token inválido")
	case errors.Is(err, domain.ErrClienteNotFound):
		return errorResponse(c, fiber.StatusNotFound, "Cliente no encontrado")
	case errors.Is(err, domain.ErrSinPerfilCliente):
		return errorResponse(c, fiber.StatusNotFound, "Usuario no tiene perfil de cliente")
	case errors.Is(err, domain.ErrClienteConVentas):
		return errorResponse(c, fiber.StatusBadRequest, "No se puede eliminar un cliente con ventas asociadas")
	case errors.Is(err, domain.ErrInvalidInput):
		return errorResponse(c, fiber.StatusBadRequest, "Entrada inválida")
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no manejado")
		return errorResponse(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
}
