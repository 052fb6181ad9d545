package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de restricción UNIQUE.
const codigoUniqueViolation = "23505"

// isUniqueViolation indica si err proviene de un UNIQUE ya ocupado
// (email de users o clientes, token_hash).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUniqueViolation
}
