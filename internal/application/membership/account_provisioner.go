package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

const (
	accountNumberPrefix = "ITAUFL"
	accountNumberDigits = 5
)

var errCustomerNotPersisted = errors.New("cliente sem ID: persista antes de criar a conta gráfica")

// AccountNumber deriva o número da conta gráfica a partir do ID do cliente.
// IDs com mais de 5 dígitos não são truncados: o número apenas fica mais longo.
func AccountNumber(customerID int64) string {
	return fmt.Sprintf("%s%0*d", accountNumberPrefix, accountNumberDigits, customerID)
}

// AccountProvisioner cria a conta gráfica de um cliente recém-aderido.
type AccountProvisioner struct {
	repo repository.LedgerAccountRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAccountProvisioner constrói o provisionador sobre o repositório (pool ou tx).
func NewAccountProvisioner(repo repository.LedgerAccountRepository, log zerolog.Logger, now func() time.Time) *AccountProvisioner {
	if now == nil {
		now = time.Now
	}
	return &AccountProvisioner{repo: repo, log: log, now: now}
}

// Provision persiste e devolve a conta filhote do cliente. customer.ID deve estar atribuído.
func (p *AccountProvisioner) Provision(ctx context.Context, customer entity.Customer) (entity.LedgerAccount, error) {
	if customer.IsNew() {
		return entity.LedgerAccount{}, errCustomerNotPersisted
	}
	account := entity.LedgerAccount{
		CustomerID: customer.ID,
		Number:     AccountNumber(customer.ID),
		Type:       entity.AccountTypeOffspring,
		CreatedAt:  p.now(),
	}
	saved, err := p.repo.Create(ctx, account)
	if err != nil {
		return entity.LedgerAccount{}, fmt.Errorf("criar conta gráfica: %w", err)
	}
	p.log.Info().Int64("cliente_id", customer.ID).Str("numero_conta", saved.Number).Msg("conta gráfica criada")
	return saved, nil
}
