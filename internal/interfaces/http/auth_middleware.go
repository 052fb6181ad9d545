package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
)

// Locals keys para el usuario y token resueltos en Fiber.
const (
	LocalUser  = "current_user"
	LocalToken = "current_token"
)

// TokenResolver mapea un token bearer entrante al usuario que lo posee.
type TokenResolver interface {
	ResolveToken(ctx context.Context, plaintext string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token contra la base de tokens vigentes y
// deja el User resuelto (y el token presentado, para logout) en c.Locals.
func AuthMiddleware(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorResponse(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorResponse(c, fiber.StatusUnauthorized, "Formato esperado: Bearer <token>")
		}
		plaintext := strings.TrimSpace(parts[1])
		if plaintext == "" {
			return errorResponse(c, fiber.StatusUnauthorized, "Token vacío")
		}
		user, err := resolver.ResolveToken(c.Context(), plaintext)
		if err != nil {
			return errorResponse(c, fiber.StatusUnauthorized, "Token inválido o revocado")
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalToken, plaintext)
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado (después del middleware de auth).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetToken devuelve el token bearer presentado en la petición actual.
func GetToken(c *fiber.Ctx) string {
	t, _ := c.Locals(LocalToken).(string)
	return t
}

// RequireRol autoriza solo a usuarios con alguno de los roles indicados.
// Debe ir después de AuthMiddleware.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return errorResponse(c, fiber.StatusUnauthorized, "No autenticado")
		}
		for _, rol := range roles {
			if user.Rol == rol {
				return c.Next()
			}
		}
		return errorResponse(c, fiber.StatusForbidden, "Acceso denegado para el rol "+user.Rol)
	}
}
