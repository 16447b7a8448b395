package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrReferentialViolation = errors.New("la categoría referenciada no existe")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrStorage              = errors.New("error de almacenamiento")
)

// IsFailure indica si err es un fallo (no una ausencia ni una entrada inválida).
func IsFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidInput)
}
