package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	MembershipUC    *membership.MembershipUseCase
	LedgerAccountUC *membership.LedgerAccountUseCase
	Logger          zerolog.Logger
	JWT             config.JWTConfig
	RateLimit       config.RateLimitConfig
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RateLimit(deps.RateLimit))
	if deps.JWT.Enabled() {
		api.Use(AuthMiddleware(deps.JWT.Secret, deps.JWT.Issuer))
	}

	validate := NewValidator()

	// Clientes
	clientes := api.Group("/clientes")
	membershipHandler := NewMembershipHandler(deps.MembershipUC, validate, deps.Logger)
	clientes.Post("/adesao", membershipHandler.Join)
	clientes.Post("/:clienteId/saida", membershipHandler.Cancel)
	clientes.Put("/:clienteId/valor-mensal", membershipHandler.ChangeMonthlyFee)
	clientes.Get("/", membershipHandler.ListActive)

	// Contas gráficas
	contas := api.Group("/contas-graficas")
	accountHandler := NewLedgerAccountHandler(deps.LedgerAccountUC, deps.Logger)
	contas.Get("/:id", accountHandler.GetByID)
}
