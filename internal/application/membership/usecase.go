package membership

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
	"github.com/jhoicas/gerenciamento-clientes/pkg/cpf"
)

const (
	MessageMembershipEnded = "Adesão encerrada. Sua posição em custodia foi mantida."
	MessageMonthlyFeeSet   = "Valor mensal atualizado. O novo valor será considerado a partir da próxima data de compra."
)

// MembershipUseCase ciclo de vida do cliente: adesão, saída, alteração do valor mensal e listagem.
// Cada operação roda em uma única transação.
type MembershipUseCase struct {
	tx       TxRunner
	customer repository.CustomerRepository
	accounts repository.LedgerAccountRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewMembershipUseCase constrói o caso de uso. customerRepo e accountRepo (pool) servem às leituras.
func NewMembershipUseCase(
	tx TxRunner,
	customerRepo repository.CustomerRepository,
	accountRepo repository.LedgerAccountRepository,
	log zerolog.Logger,
) *MembershipUseCase {
	return &MembershipUseCase{
		tx:       tx,
		customer: customerRepo,
		accounts: accountRepo,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Join adere um novo cliente ao produto e cria sua conta gráfica.
func (uc *MembershipUseCase) Join(ctx context.Context, in JoinInput) (*dto.JoinResponse, error) {
	uc.log.Info().Str("cpf", in.CPF).Msg("aderindo cliente ao produto")

	now := uc.now()
	customer := entity.NewCustomer(in.Name, cpf.Normalize(in.CPF), in.Email, in.MonthlyFee, now)
	if err := checkNewCustomer(customer); err != nil {
		return nil, err
	}

	var (
		saved   entity.Customer
		account entity.LedgerAccount
	)
	err := uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, accountRepo repository.LedgerAccountRepository) error {
		if err := NewCPFValidator(customerRepo, uc.log).Validate(ctx, customer); err != nil {
			return err
		}
		var err error
		saved, err = customerRepo.Create(ctx, customer)
		if err != nil {
			return err
		}
		account, err = NewAccountProvisioner(accountRepo, uc.log, func() time.Time { return now }).Provision(ctx, saved)
		return err
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("cpf", customer.CPF).Msg("adesão recusada")
		return nil, err
	}

	uc.log.Info().Int64("cliente_id", saved.ID).Str("cpf", saved.CPF).Msg("cliente aderido")
	return toJoinResponse(saved, &account), nil
}

// Cancel encerra a adesão de um cliente ativo. Cancelar duas vezes devolve ErrCustomerNotFound.
func (uc *MembershipUseCase) Cancel(ctx context.Context, customerID int64) (*dto.CancellationResponse, error) {
	var cancelled entity.Customer
	err := uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, _ repository.LedgerAccountRepository) error {
		current, err := findActive(ctx, customerRepo, customerID)
		if err != nil {
			return err
		}
		cancelled = current.Cancelled()
		return customerRepo.Update(ctx, cancelled)
	})
	if err != nil {
		uc.logFailure(err, customerID, "cancelar adesão")
		return nil, err
	}

	uc.log.Info().Int64("cliente_id", cancelled.ID).Str("cpf", cancelled.CPF).Msg("adesão encerrada")
	return &dto.CancellationResponse{
		ClienteID: cancelled.ID,
		Nome:      cancelled.Name,
		Ativo:     cancelled.Active,
		DataSaida: uc.now(),
		Mensagem:  MessageMembershipEnded,
	}, nil
}

// ChangeMonthlyFee altera o valor mensal de um cliente ativo. O novo valor deve ser > 100,00
// e armazenável (duas casas, até MaxMonthlyFee); as regras são checadas antes de qualquer
// acesso ao repositório.
func (uc *MembershipUseCase) ChangeMonthlyFee(ctx context.Context, customerID int64, newFee decimal.Decimal) (*dto.ChangeMonthlyFeeResponse, error) {
	if !entity.IsStorableMonthlyFee(newFee) || newFee.LessThanOrEqual(entity.MinJoinMonthlyFee) {
		return nil, domain.ErrInvalidMonthlyFee
	}

	var previous, updated entity.Customer
	err := uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, _ repository.LedgerAccountRepository) error {
		current, err := findActive(ctx, customerRepo, customerID)
		if err != nil {
			return err
		}
		previous = *current
		updated = current.WithMonthlyFee(newFee)
		return customerRepo.Update(ctx, updated)
	})
	if err != nil {
		uc.logFailure(err, customerID, "alterar valor mensal")
		return nil, err
	}

	uc.log.Info().
		Int64("cliente_id", customerID).
		Str("anterior", previous.MonthlyFee.String()).
		Str("novo", updated.MonthlyFee.String()).
		Msg("valor mensal alterado")
	return &dto.ChangeMonthlyFeeResponse{
		ClienteID:           customerID,
		ValorMensalAnterior: previous.MonthlyFee,
		ValorMensalNovo:     updated.MonthlyFee,
		DataAlteracao:       uc.now(),
		Mensagem:            MessageMonthlyFeeSet,
	}, nil
}

// ListActive lista os clientes ativos, cada um com a conta gráfica já existente.
func (uc *MembershipUseCase) ListActive(ctx context.Context) ([]*dto.JoinResponse, error) {
	customers, err := uc.customer.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	accounts, err := uc.accounts.ListByCustomerIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JoinResponse, 0, len(customers))
	for _, c := range customers {
		var account *entity.LedgerAccount
		if a, ok := accounts[c.ID]; ok {
			account = &a
		}
		out = append(out, toJoinResponse(c, account))
	}
	return out, nil
}

func (uc *MembershipUseCase) logFailure(err error, customerID int64, op string) {
	if domain.CodeOf(err) != "" {
		uc.log.Warn().Err(err).Int64("cliente_id", customerID).Msg(op)
		return
	}
	uc.log.Error().Err(err).Int64("cliente_id", customerID).Msg(op)
}

func findActive(ctx context.Context, repo repository.CustomerRepository, id int64) (*entity.Customer, error) {
	c, err := repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente ativo: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

// checkNewCustomer repete as regras de entrada para chamadas que não passam pela camada HTTP.
func checkNewCustomer(c entity.Customer) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || !cpf.IsValid(c.CPF) {
		return domain.ErrInvalidCustomer
	}
	if !entity.IsStorableMonthlyFee(c.MonthlyFee) || c.MonthlyFee.LessThan(entity.MinJoinMonthlyFee) {
		return domain.ErrInvalidCustomer
	}
	return nil
}

func toJoinResponse(c entity.Customer, a *entity.LedgerAccount) *dto.JoinResponse {
	resp := &dto.JoinResponse{
		ClienteID:   c.ID,
		Nome:        c.Name,
		CPF:         c.CPF,
		Email:       c.Email,
		ValorMensal: c.MonthlyFee,
		Ativo:       c.Active,
		DataAdesao:  c.JoinedAt,
	}
	if a != nil {
		resp.ContaGrafica = toLedgerAccountResponse(*a)
	}
	return resp
}

func toLedgerAccountResponse(a entity.LedgerAccount) *dto.LedgerAccountResponse {
	return &dto.LedgerAccountResponse{
		ID:          a.ID,
		NumeroConta: a.Number,
		TipoConta:   string(a.Type),
		DataCriacao: a.CreatedAt,
	}
}
