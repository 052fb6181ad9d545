package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-clientes-api/pkg/logger"
)

// LoggingMiddleware registra cada petición con método, ruta, status y duración.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
