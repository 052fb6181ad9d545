package dto

import (
	"net/mail"

	"github.com/tu-usuario/ventas-clientes-api/internal/domain"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
)

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol"`
}

// Validate valida campo a campo; devuelve domain.ValidationErrors o nil.
func (r RegisterRequest) Validate() error {
	errs := domain.ValidationErrors{}
	if r.Name == "" {
		errs.Add("name", "el nombre es requerido")
	} else if len(r.Name) > 255 {
		errs.Add("name", "el nombre no puede exceder 255 caracteres")
	}
	validarEmail(errs, "email", r.Email, true, 255)
	if len(r.Password) < 6 {
		errs.Add("password", "la contraseña debe tener al menos 6 caracteres")
	}
	if len(r.Telefono) > 20 {
		errs.Add("telefono", "el teléfono no puede exceder 20 caracteres")
	}
	if r.Rol != "" && !entity.RolValido(r.Rol) {
		errs.Add("rol", "el rol debe ser administrador, vendedor o cliente")
	}
	return errs.OrNil()
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida presencia y formato de credenciales.
func (r LoginRequest) Validate() error {
	errs := domain.ValidationErrors{}
	validarEmail(errs, "email", r.Email, true, 255)
	if r.Password == "" {
		errs.Add("password", "la contraseña es requerida")
	}
	return errs.OrNil()
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

// AuthResponse salida de registro/login: usuario más token bearer.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
}

// PerfilResponse perfil completo: cuenta más datos de cliente vinculado.
type PerfilResponse struct {
	User    UserResponse    `json:"user"`
	Cliente ClienteResponse `json:"cliente"`
}

// validarEmail acumula errores de formato/longitud; requerido según el flag.
func validarEmail(errs domain.ValidationErrors, campo, valor string, requerido bool, max int) {
	if valor == "" {
		if requerido {
			errs.Add(campo, "el email es requerido")
		}
		return
	}
	if len(valor) > max {
		errs.Add(campo, "el email excede la longitud permitida")
		return
	}
	if _, err := mail.ParseAddress(valor); err != nil {
		errs.Add(campo, "el email no tiene un formato válido")
	}
}
