package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ repository.LedgerAccountRepository = (*LedgerAccountRepo)(nil)

const ledgerAccountColumns = `id, cliente_id, numero_conta, tipo, data_criacao`

// LedgerAccountRepo implementação de LedgerAccountRepository (usável com pool ou tx).
type LedgerAccountRepo struct {
	q Querier
}

// NewLedgerAccountRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLedgerAccountRepository(q Querier) *LedgerAccountRepo {
	return &LedgerAccountRepo{q: q}
}

// Create insere a conta gráfica e devolve a versão com o ID gerado.
func (r *LedgerAccountRepo) Create(ctx context.Context, account entity.LedgerAccount) (entity.LedgerAccount, error) {
	query := `
		INSERT INTO contas_graficas (cliente_id, numero_conta, tipo, data_criacao)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		account.CustomerID, account.Number, string(account.Type), account.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.LedgerAccount{}, fmt.Errorf("conta gráfica %s: %w", account.Number, uniqueViolationError(err))
		}
		return entity.LedgerAccount{}, fmt.Errorf("insert conta gráfica: %w", err)
	}
	return account, nil
}

// GetByID obtém uma conta gráfica por ID.
func (r *LedgerAccountRepo) GetByID(ctx context.Context, id int64) (*entity.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM contas_graficas WHERE id = $1`
	a, err := scanLedgerAccount(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta gráfica: %w", err)
	}
	return a, nil
}

// GetByCustomerID obtém a conta gráfica do cliente.
func (r *LedgerAccountRepo) GetByCustomerID(ctx context.Context, customerID int64) (*entity.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM contas_graficas WHERE cliente_id = $1`
	a, err := scanLedgerAccount(r.q.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta gráfica por cliente: %w", err)
	}
	return a, nil
}

// ListByCustomerIDs busca as contas de vários clientes em uma única consulta.
func (r *LedgerAccountRepo) ListByCustomerIDs(ctx context.Context, customerIDs []int64) (map[int64]entity.LedgerAccount, error) {
	out := make(map[int64]entity.LedgerAccount, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + ledgerAccountColumns + ` FROM contas_graficas WHERE cliente_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("list contas gráficas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conta gráfica: %w", err)
		}
		out[a.CustomerID] = *a
	}
	return out, rows.Err()
}

func scanLedgerAccount(row pgx.Row) (*entity.LedgerAccount, error) {
	var a entity.LedgerAccount
	var tipo string
	if err := row.Scan(&a.ID, &a.CustomerID, &a.Number, &tipo, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Type = entity.AccountType(tipo)
	return &a, nil
}
