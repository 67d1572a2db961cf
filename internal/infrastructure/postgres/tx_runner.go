package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ membership.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	accountRepo repository.LedgerAccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewLedgerAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("commit transaction: %w", uniqueViolationError(err))
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
