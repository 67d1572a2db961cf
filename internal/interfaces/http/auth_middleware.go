package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/pkg/jwt"
)

// Locals keys preenchidas pelo AuthMiddleware.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// AuthMiddleware valida o Bearer Token JWT e coloca subject e role em c.Locals.
func AuthMiddleware(secret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_AUSENTE", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "formato: Bearer <token>"})
		}
		claims, err := jwt.Parse(secret, issuer, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalSubject, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetSubject devolve o subject do token (depois do AuthMiddleware).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetRole devolve o papel do token (depois do AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
