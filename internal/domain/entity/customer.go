package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinJoinMonthlyFee valor mensal mínimo aceito na adesão (inclusive).
// Alterações posteriores exigem valor estritamente maior.
var MinJoinMonthlyFee = decimal.NewFromInt(100)

// MaxMonthlyFee maior valor que cabe em valor_mensal NUMERIC(18, 2).
var MaxMonthlyFee = decimal.RequireFromString("9999999999999999.99")

// MonthlyFeeScale casas decimais armazenadas para o valor mensal.
const MonthlyFeeScale = 2

// IsStorableMonthlyFee indica se fee é armazenado sem arredondamento nem estouro:
// no máximo MonthlyFeeScale casas decimais e até MaxMonthlyFee.
func IsStorableMonthlyFee(fee decimal.Decimal) bool {
	return fee.Equal(fee.Truncate(MonthlyFeeScale)) && fee.LessThanOrEqual(MaxMonthlyFee)
}

// Customer representa um cliente aderido ao produto.
// É um registro imutável: as transições devolvem uma nova versão e o repositório
// persiste essa versão pelo ID.
type Customer struct {
	ID         int64 // 0 enquanto não persistido
	Name       string
	CPF        string // somente dígitos
	Email      string
	MonthlyFee decimal.Decimal
	Active     bool
	JoinedAt   time.Time
}

// NewCustomer constrói um cliente novo, ativo, com data de adesão em now.
func NewCustomer(name, cpf, email string, monthlyFee decimal.Decimal, now time.Time) Customer {
	return Customer{
		Name:       name,
		CPF:        cpf,
		Email:      email,
		MonthlyFee: monthlyFee,
		Active:     true,
		JoinedAt:   now,
	}
}

// IsNew indica que o cliente ainda não recebeu ID do repositório.
func (c Customer) IsNew() bool {
	return c.ID == 0
}

// Cancelled devolve a versão encerrada (inativa) do cliente.
func (c Customer) Cancelled() Customer {
	c.Active = false
	return c
}

// WithMonthlyFee devolve uma versão com o novo valor mensal.
func (c Customer) WithMonthlyFee(fee decimal.Decimal) Customer {
	c.MonthlyFee = fee
	return c
}
