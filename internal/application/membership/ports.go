package membership

import (
	"context"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, entregando repositórios atados a ela.
// Se fn retornar erro a transação é desfeita; caso contrário, confirmada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		accountRepo repository.LedgerAccountRepository,
	) error) error
}
