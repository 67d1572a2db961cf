package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
)

// writeError traduz erros de domínio para status + ErrorResponse. Erros sem categoria viram 500.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrBusinessRule):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	}

	var ce *domain.CodedError
	if errors.As(err, &ce) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: ce.Code, Message: ce.Message})
	}
	if status == fiber.StatusConflict {
		return c.Status(status).JSON(dto.ErrorResponse{Code: "CONFLITO", Message: err.Error()})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("erro não tratado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNO", Message: "erro interno"})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
