package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
)

// LedgerAccountHandler consulta de contas gráficas.
type LedgerAccountHandler struct {
	uc  *membership.LedgerAccountUseCase
	log zerolog.Logger
}

// NewLedgerAccountHandler constrói o handler.
func NewLedgerAccountHandler(uc *membership.LedgerAccountUseCase, log zerolog.Logger) *LedgerAccountHandler {
	return &LedgerAccountHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Consulta uma conta gráfica
// @Tags         contas-graficas
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID da conta gráfica"
// @Success      200  {object}  dto.LedgerAccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/contas-graficas/{id} [get]
func (h *LedgerAccountHandler) GetByID(c *fiber.Ctx) error {
	id, ok := positiveIntParam(c, "id")
	if !ok {
		return badRequest(c, "ID_INVALIDO", "id deve ser um inteiro positivo")
	}
	account, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(account)
}
