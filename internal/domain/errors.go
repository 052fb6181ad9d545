package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrClienteNotFound   = errors.New("cliente no encontrado")
	ErrEmailYaRegistrado = errors.New("el email ya está registrado")
	ErrCredenciales      = errors.New("credenciales incorrectas")
	ErrTokenInvalido     = errors.New("token inválido")
	ErrSinPerfilCliente  = errors.New("usuario no tiene perfil de cliente")
	ErrClienteConVentas  = errors.New("no se puede eliminar un cliente con ventas asociadas")
	ErrInvalidInput      = errors.New("entrada inválida")
)

// ValidationErrors acumula mensajes de validación por campo.
// Se serializa tal cual en respuestas 422.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "errores de validación"
}

// Add registra el primer mensaje de error para un campo (los siguientes se ignoran).
func (v ValidationErrors) Add(campo, mensaje string) {
	if _, ok := v[campo]; !ok {
		v[campo] = mensaje
	}
}

// OrNil devuelve nil si no hay errores, para retornar directamente desde Validate().
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
