package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalog-service/internal/domain"
)

const (
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
)

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// isSerializationFailure verifica si la escritura chocó con otra transacción concurrente (40001).
func isSerializationFailure(err error) bool {
	return hasCode(err, codeSerializationFailure)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// translate convierte un error de pgx en un error de dominio conservando el detalle.
func translate(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrReferentialViolation)
	case isSerializationFailure(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorage, err)
	}
}
