package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JoinRequest body para POST /api/clientes/adesao.
// ValorMensal é NullDecimal para distinguir campo ausente de zero.
type JoinRequest struct {
	Nome        string              `json:"nome" validate:"required,notblank,min=1,max=200"`
	CPF         string              `json:"cpf" validate:"required,notblank,cpf"`
	Email       string              `json:"email" validate:"required,notblank,email"`
	ValorMensal decimal.NullDecimal `json:"valorMensal" validate:"required,gte=100" swaggertype:"number" example:"3000.00"`
}

// JoinResponse cliente aderido com a conta gráfica. Também usado na listagem de ativos.
type JoinResponse struct {
	ClienteID    int64                  `json:"clienteId"`
	Nome         string                 `json:"nome"`
	CPF          string                 `json:"cpf"`
	Email        string                 `json:"email"`
	ValorMensal  decimal.Decimal        `json:"valorMensal" swaggertype:"number"`
	Ativo        bool                   `json:"ativo"`
	DataAdesao   time.Time              `json:"dataAdesao"`
	ContaGrafica *LedgerAccountResponse `json:"contaGrafica"`
}

// CancellationResponse resposta de POST /api/clientes/:clienteId/saida.
type CancellationResponse struct {
	ClienteID int64     `json:"clienteId"`
	Nome      string    `json:"nome"`
	Ativo     bool      `json:"ativo"`
	DataSaida time.Time `json:"dataSaida"`
	Mensagem  string    `json:"mensagem"`
}

// ChangeMonthlyFeeRequest body para PUT /api/clientes/:clienteId/valor-mensal.
// O limite (> 100,00) é regra de negócio e é verificado no caso de uso.
type ChangeMonthlyFeeRequest struct {
	NovoValorMensal decimal.NullDecimal `json:"novoValorMensal" swaggertype:"number" example:"500.00"`
}

// ChangeMonthlyFeeResponse valores anterior e novo.
type ChangeMonthlyFeeResponse struct {
	ClienteID           int64           `json:"clienteId"`
	ValorMensalAnterior decimal.Decimal `json:"valorMensalAnterior" swaggertype:"number"`
	ValorMensalNovo     decimal.Decimal `json:"valorMensalNovo" swaggertype:"number"`
	DataAlteracao       time.Time       `json:"dataAlteracao"`
	Mensagem            string          `json:"mensagem"`
}

// LedgerAccountResponse conta gráfica em respostas.
type LedgerAccountResponse struct {
	ID          int64     `json:"id"`
	NumeroConta string    `json:"numeroConta"`
	TipoConta   string    `json:"tipoConta"`
	DataCriacao time.Time `json:"dataCriacao"`
}
