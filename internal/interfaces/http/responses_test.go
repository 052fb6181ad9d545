package http

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
)

func appQueFalla(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fallo", func(c *fiber.Ctx) error {
		return manejarError(c, err)
	})
	return app
}

func TestManejarError_Mapeo(t *testing.T) {
	tests := []struct {
		nombre string
		err    error
		status int
	}{
		{"validacion", domain.ValidationErrors{"email": "inválido"}, fiber.StatusUnprocessableEntity},
		{"credenciales", domain.ErrCredenciales, fiber.StatusUnauthorized},
		{"token invalido", domain.ErrTokenInvalido, fiber.StatusUnauthorized},
		{"cliente no encontrado", domain.ErrClienteNotFound, fiber.StatusNotFound},
		{"sin perfil", domain.ErrSinPerfilCliente, fiber.StatusNotFound},
		{"cliente con ventas", domain.ErrClienteConVentas, fiber.StatusBadRequest},
		{"entrada invalida", domain.ErrInvalidInput, fiber.StatusBadRequest},
		{"desconocido", errors.New("fallo de conexión"), fiber.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			app := appQueFalla(tc.err)
			resp, err := app.Test(httptest.NewRequest("GET", "/fallo", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

// Un error no reconocido responde 500 genérico pero deja el detalle en el log.
func TestManejarError_DesconocidoQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	anterior := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	defer func() { zlog.Logger = anterior }()

	app := appQueFalla(errors.New("pgx: conexión rechazada"))
	resp, err := app.Test(httptest.NewRequest("GET", "/fallo", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "pgx: conexión rechazada", "el detalle debe loguearse")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "pgx", "el detalle nunca viaja al cliente")
}
