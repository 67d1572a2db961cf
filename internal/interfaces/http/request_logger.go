package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID header de correlação aceito e devolvido em toda resposta.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID chave em c.Locals com o ID da requisição.
const LocalRequestID = "request_id"

// RequestLogger registra método, rota, status e latência de cada requisição,
// e o subject/role do token quando o AuthMiddleware os preencheu.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals(LocalRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		var evt *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		if subject := GetSubject(c); subject != "" {
			evt = evt.Str("subject", subject).Str("role", GetRole(c))
		}
		evt.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("requisição HTTP")
		return err
	}
}
