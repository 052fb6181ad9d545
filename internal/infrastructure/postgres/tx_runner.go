package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/auth"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/clientes"
	"github.com/tu-usuario/ventas-clientes-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner and clientes.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ clientes.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	clientesRepo repository.ClienteRepository,
	tokens repository.TokenRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	clientesRepo := NewClienteRepository(tx)
	tokens := NewTokenRepository(tx)

	if err := fn(users, clientesRepo, tokens); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
