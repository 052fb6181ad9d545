package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/auth"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
)

// AuthHandler maneja registro, login, logout y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (crea cuenta, cliente vinculado y token)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, telefono?, rol?"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return manejarError(c, err)
	}
	return createdResponse(c, out, "Usuario registrado exitosamente")
}

// Login godoc
// @Summary      Iniciar sesión (revoca tokens anteriores y emite uno nuevo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "Login exitoso")
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token presentado)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), GetToken(c)); err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, nil, "Sesión cerrada exitosamente")
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return successResponse(c, h.uc.Me(GetUser(c)), "")
}

// Perfil godoc
// @Summary      Perfil completo (usuario + cliente vinculado)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/mi-perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(c.Context(), GetUser(c))
	if err != nil {
		return manejarError(c, err)
	}
	return successResponse(c, out, "")
}
