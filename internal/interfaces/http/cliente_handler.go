package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/clientes"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/infrastructure/pdf"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc      *clientes.ClienteUseCase
	reporte *pdf.ReporteClientes
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *clientes.ClienteUseCase, reporte *pdf.ReporteClientes) *ClienteHandler {
	return &ClienteHandler{uc: uc, reporte: reporte}
}

// List godoc
// @Summary      Listar clientes (paginado, filtro `buscar`)
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        buscar     query  string  false  "substring sobre nombre, teléfono o email"
// @Param        order_by   query  string  false  "nombre_cliente|telefono|email|fecha_registro"
// @Param        order_dir  query  string  false  "asc|desc"
// @Param        per_page   query  int     false  "por defecto 15, máximo 100"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var in dto.ListClientesRequest
	if err := c.QueryParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Parámetros inválidos")
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "")
}

// GetByID godoc
// @Summary      Detalle de un cliente con ventas y estadísticas
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "cliente_id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetalle(c.Context(), c.Params("id"))
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "")
}

// Create godoc
// @Summary      Registrar cliente (alta directa, sin cuenta de acceso)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateClienteRequest  true  "nombre, telefono, dni?, email?, direccion?"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return manejarError(c, err)
	}
	return createdResponse(c, out, "Cliente registrado exitosamente")
}

// Update godoc
// @Summary      Actualizar cliente (parche disperso: solo campos presentes)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "cliente_id"
// @Param        body  body  dto.UpdateClienteRequest  true  "campos a modificar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "Cliente actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar cliente (rechazado si tiene ventas asociadas)
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "cliente_id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, nil, "Cliente eliminado exitosamente")
}

// BuscarPorTelefono godoc
// @Summary      Buscar cliente por teléfono (coincidencia exacta)
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        telefono  path  string  true  "teléfono"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/buscar-telefono/{telefono} [get]
func (h *ClienteHandler) BuscarPorTelefono(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorTelefono(c.Context(), c.Params("telefono"))
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "Cliente encontrado")
}

// Buscar godoc
// @Summary      Búsqueda universal (nombre, dni, teléfono o email; máximo 10)
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "término de búsqueda"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/buscar [get]
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Debe proporcionar un término de búsqueda")
	}
	out, err := h.uc.Buscar(c.Context(), q)
	if err != nil {
		return manejarError(c, err)
	}
	if len(out) == 0 {
		return errorResponse(c, fiber.StatusNotFound, "No se encontraron clientes")
	}
	return successResponse(c, out, "Clientes encontrados")
}

// Frecuentes godoc
// @Summary      Clientes frecuentes (≥3 compras completadas)
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/clientes/frecuentes [get]
func (h *ClienteHandler) Frecuentes(c *fiber.Ctx) error {
	out, err := h.uc.Frecuentes(c.Context())
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "")
}

// FrecuentesPDF godoc
// @Summary      Reporte PDF de clientes frecuentes
// @Tags         clientes
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/clientes/frecuentes/pdf [get]
func (h *ClienteHandler) FrecuentesPDF(c *fiber.Ctx) error {
	list, err := h.uc.Frecuentes(c.Context())
	if err != nil {
		return manejarError(c, err)
	}
	doc, err := h.reporte.Frecuentes(list, time.Now())
	if err != nil {
		return manejarError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes-frecuentes.pdf"`)
	return c.Send(doc)
}

// ActualizarPreferencias godoc
// @Summary      Actualizar preferencias del cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "cliente_id"
// @Param        body  body  dto.PreferenciasRequest  true  "preferencias_clie"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/preferencias [patch]
func (h *ClienteHandler) ActualizarPreferencias(c *fiber.Ctx) error {
	var in dto.PreferenciasRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.ActualizarPreferencias(c.Context(), c.Params("id"), in)
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "Preferencias actualizadas exitosamente")
}
