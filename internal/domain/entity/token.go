package entity

import "time"

// Token es una credencial bearer opaca emitida a un User.
// Solo se persiste el hash SHA-256 del secreto; el texto plano se
// entrega una única vez en la respuesta de login/registro.
// Revocar = eliminar la fila. Sin política de expiración por defecto.
type Token struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
}
