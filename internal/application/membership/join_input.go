package membership

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
)

// JoinInput dados de adesão já validados quanto ao formato.
type JoinInput struct {
	Name       string
	CPF        string
	Email      string
	MonthlyFee decimal.Decimal
}

// JoinInputFromRequest adapta o request HTTP ao caso de uso Join.
func JoinInputFromRequest(in dto.JoinRequest) JoinInput {
	return JoinInput{
		Name:       in.Nome,
		CPF:        in.CPF,
		Email:      in.Email,
		MonthlyFee: in.ValorMensal.Decimal,
	}
}
