package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL (usable con pool o tx).
// La tabla solo guarda hashes; revocar un token es borrar su fila.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create persiste un token recién emitido.
func (r *TokenRepo) Create(ctx context.Context, token *entity.Token) error {
	query := `
		INSERT INTO tokens (id, user_id, token_hash, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, token.ID, token.UserID, token.TokenHash, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByHash busca un token por su hash SHA-256.
func (r *TokenRepo) GetByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	query := `
		SELECT id, user_id, token_hash, created_at
		FROM tokens WHERE token_hash = $1`
	var t entity.Token
	err := r.q.QueryRow(ctx, query, tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// RevokeByHash revoca exactamente el token presentado.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// RevokeAllByUser revoca todos los tokens vigentes del usuario.
func (r *TokenRepo) RevokeAllByUser(ctx context.Context, userID string) (int, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("revoke tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
