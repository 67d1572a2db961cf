package repository

import (
	"context"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
)

// LedgerAccountRepository define a porta de persistência para LedgerAccount.
type LedgerAccountRepository interface {
	Create(ctx context.Context, account entity.LedgerAccount) (entity.LedgerAccount, error)
	GetByID(ctx context.Context, id int64) (*entity.LedgerAccount, error)
	GetByCustomerID(ctx context.Context, customerID int64) (*entity.LedgerAccount, error)
	// ListByCustomerIDs devolve as contas indexadas pelo ID do cliente.
	ListByCustomerIDs(ctx context.Context, customerIDs []int64) (map[int64]entity.LedgerAccount, error)
}
