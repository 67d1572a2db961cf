package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
)

// MembershipHandler maneja as requisições de clientes (adesão, saída, valor mensal, listagem).
type MembershipHandler struct {
	uc       *membership.MembershipUseCase
	validate *Validator
	log      zerolog.Logger
}

// NewMembershipHandler constrói o handler.
func NewMembershipHandler(uc *membership.MembershipUseCase, validate *Validator, log zerolog.Logger) *MembershipHandler {
	return &MembershipHandler{uc: uc, validate: validate, log: log}
}

// Join godoc
// @Summary      Adesão de um novo cliente
// @Description  Cria o cliente ativo e provisiona a conta gráfica filhote na mesma transação. valorMensal mínimo 100,00, no máximo duas casas decimais.
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.JoinRequest  true  "nome, cpf, email, valorMensal"
// @Success      201   {object}  dto.JoinResponse
// @Header       201   {string}  Location  "/api/clientes/{clienteId}"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/clientes/adesao [post]
func (h *MembershipHandler) Join(c *fiber.Ctx) error {
	var in dto.JoinRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "CORPO_INVALIDO", "corpo da requisição inválido")
	}
	if details := h.validate.Struct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDACAO",
			Message: "dados de adesão inválidos",
			Details: details,
		})
	}
	resp, err := h.uc.Join(c.UserContext(), membership.JoinInputFromRequest(in))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/clientes/%d", resp.ClienteID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Cancel godoc
// @Summary      Encerra a adesão
// @Description  Desativa o cliente. A conta gráfica e a custódia são mantidas.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        clienteId  path      int  true  "ID do cliente"
// @Success      200        {object}  dto.CancellationResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/saida [post]
func (h *MembershipHandler) Cancel(c *fiber.Ctx) error {
	id, ok := customerIDParam(c)
	if !ok {
		return badRequest(c, "ID_INVALIDO", "clienteId deve ser um inteiro positivo")
	}
	resp, err := h.uc.Cancel(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(resp)
}

// ChangeMonthlyFee godoc
// @Summary      Altera o valor mensal
// @Description  novoValorMensal deve ser maior que 100,00, com no máximo duas casas decimais.
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        clienteId  path      int                          true  "ID do cliente"
// @Param        body       body      dto.ChangeMonthlyFeeRequest  true  "novoValorMensal"
// @Success      200        {object}  dto.ChangeMonthlyFeeResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/valor-mensal [put]
func (h *MembershipHandler) ChangeMonthlyFee(c *fiber.Ctx) error {
	id, ok := customerIDParam(c)
	if !ok {
		return badRequest(c, "ID_INVALIDO", "clienteId deve ser um inteiro positivo")
	}
	var in dto.ChangeMonthlyFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "CORPO_INVALIDO", "corpo da requisição inválido")
	}
	if !in.NovoValorMensal.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDACAO",
			Message: "novo valor mensal não pode ser nulo",
			Details: []dto.FieldDetail{{Campo: "novoValorMensal", Mensagem: "campo obrigatório"}},
		})
	}
	resp, err := h.uc.ChangeMonthlyFee(c.UserContext(), id, in.NovoValorMensal.Decimal)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(resp)
}

// ListActive godoc
// @Summary      Lista clientes ativos
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.JoinResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *MembershipHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

func customerIDParam(c *fiber.Ctx) (int64, bool) {
	return positiveIntParam(c, "clienteId")
}

func positiveIntParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
