package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
)

func ptr(s string) *string { return &s }

// camposDe extrae el mapa de errores de validación, fallando si err no lo es.
func camposDe(t *testing.T, err error) domain.ValidationErrors {
	t.Helper()
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs), "debe ser domain.ValidationErrors, fue: %v", err)
	return verrs
}

func TestCreateClienteRequest_Validate(t *testing.T) {
	valido := dto.CreateClienteRequest{Nombre: "Ana Lopez", Telefono: "987654321"}
	assert.NoError(t, valido.Validate())

	t.Run("nombre y telefono requeridos", func(t *testing.T) {
		errs := camposDe(t, dto.CreateClienteRequest{}.Validate())
		assert.Contains(t, errs, "nombre")
		assert.Contains(t, errs, "telefono")
	})

	t.Run("telefono demasiado largo", func(t *testing.T) {
		in := valido
		in.Telefono = strings.Repeat("9", 21)
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "telefono")
	})

	t.Run("telefono de 20 caracteres es valido", func(t *testing.T) {
		in := valido
		in.Telefono = strings.Repeat("9", 20)
		assert.NoError(t, in.Validate())
	})

	t.Run("email con formato invalido", func(t *testing.T) {
		in := valido
		in.Email = "no-es-un-email"
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "email")
	})

	t.Run("email opcional vacio no falla", func(t *testing.T) {
		assert.NoError(t, valido.Validate())
	})
}

func TestUpdateClienteRequest_Validate(t *testing.T) {
	t.Run("parche vacio es valido", func(t *testing.T) {
		in := dto.UpdateClienteRequest{}
		assert.NoError(t, in.Validate())
		assert.True(t, in.Vacio())
	})

	t.Run("campos presentes se validan", func(t *testing.T) {
		in := dto.UpdateClienteRequest{Nombre: ptr(""), Telefono: ptr(strings.Repeat("1", 21))}
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "nombre")
		assert.Contains(t, errs, "telefono")
		assert.False(t, in.Vacio())
	})

	t.Run("campos ausentes no se validan", func(t *testing.T) {
		in := dto.UpdateClienteRequest{DNI: ptr("12345678")}
		assert.NoError(t, in.Validate())
	})
}

func TestRegisterRequest_Validate(t *testing.T) {
	valido := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto"}
	assert.NoError(t, valido.Validate())

	t.Run("password corto", func(t *testing.T) {
		in := valido
		in.Password = "12345"
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "password")
	})

	t.Run("rol fuera del conjunto", func(t *testing.T) {
		in := valido
		in.Rol = "superusuario"
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "rol")
	})

	t.Run("rol valido", func(t *testing.T) {
		in := valido
		in.Rol = "vendedor"
		assert.NoError(t, in.Validate())
	})

	t.Run("email requerido", func(t *testing.T) {
		in := valido
		in.Email = ""
		errs := camposDe(t, in.Validate())
		assert.Contains(t, errs, "email")
	})
}

func TestListClientesRequest_Defaults(t *testing.T) {
	in := dto.ListClientesRequest{}
	in.Defaults()
	assert.Equal(t, "fecha_registro", in.OrderBy)
	assert.Equal(t, "desc", in.OrderDir)
	assert.Equal(t, 15, in.PerPage)
	assert.Equal(t, 1, in.Page)

	grande := dto.ListClientesRequest{PerPage: 500}
	grande.Defaults()
	assert.Equal(t, 100, grande.PerPage, "per_page se limita a 100")
}
