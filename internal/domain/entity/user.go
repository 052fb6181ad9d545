package entity

import "time"

// Roles válidos para User.
const (
	RolAdministrador = "administrador"
	RolVendedor      = "vendedor"
	RolCliente       = "cliente"
)

// RolValido indica si el rol pertenece al conjunto permitido.
func RolValido(rol string) bool {
	switch rol {
	case RolAdministrador, RolVendedor, RolCliente:
		return true
	}
	return false
}

// User representa una cuenta con acceso al sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // administrador, vendedor, cliente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
