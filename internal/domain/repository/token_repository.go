package repository

import (
	"context"

	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
)

// TokenRepository define operaciones sobre tokens de sesión.
// Las búsquedas son siempre por hash: el texto plano nunca toca la base.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error

	// GetByHash busca un token por su hash SHA-256. (nil, nil) si no existe.
	GetByHash(ctx context.Context, tokenHash string) (*entity.Token, error)

	// RevokeByHash revoca exactamente el token presentado (logout).
	RevokeByHash(ctx context.Context, tokenHash string) error

	// RevokeAllByUser revoca todos los tokens vigentes del usuario.
	// Devuelve el número de tokens revocados.
	RevokeAllByUser(ctx context.Context, userID string) (int, error)
}
