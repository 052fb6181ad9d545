package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-clientes-api/pkg/logger"
)

func loggerSilencioso() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// Sin swagger.json la app arranca igual y sigue sirviendo el resto de rutas.
func TestMontarSwagger_ArchivoInexistente(t *testing.T) {
	app := fiber.New()
	ruta := filepath.Join(t.TempDir(), "swagger.json")

	require.NotPanics(t, func() {
		montarSwagger(app, ruta, loggerSilencioso())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMontarSwagger_ArchivoPresente(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"openapi":"3.0.0","info":{"title":"api","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(ruta, []byte(spec), 0o644))

	app := fiber.New()
	require.NotPanics(t, func() {
		montarSwagger(app, ruta, loggerSilencioso())
	})
}
