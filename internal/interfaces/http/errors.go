package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-service/internal/application/dto"
	"github.com/jhoicas/catalog-service/internal/domain"
)

// writeError traduce un error del catálogo a la respuesta HTTP:
// ausencia -> 204, entrada inválida -> 400, cualquier otro fallo -> 500 con el detalle.
func writeError(c *fiber.Ctx, err error, failMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrReferentialViolation):
		return internal(c, "REFERENTIAL_VIOLATION", failMsg+": "+err.Error())
	case errors.Is(err, domain.ErrConflict):
		return internal(c, "CONFLICT", failMsg+": "+err.Error())
	default:
		return internal(c, "INTERNAL", failMsg+": "+err.Error())
	}
}

// writeMutationError es writeError para escrituras sobre un ID concreto: ahí la ausencia es un
// fallo (500) y no puede confundirse con el 204 de éxito.
func writeMutationError(c *fiber.Ctx, err error, failMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return internal(c, "NOT_FOUND", failMsg+": "+err.Error())
	}
	return writeError(c, err, failMsg)
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func internal(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
