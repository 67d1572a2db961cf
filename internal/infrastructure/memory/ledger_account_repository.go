package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ repository.LedgerAccountRepository = (*LedgerAccountRepo)(nil)

// LedgerAccountRepo LedgerAccountRepository em memória.
type LedgerAccountRepo struct {
	access func(write bool, f func(*state) error) error
}

func (r *LedgerAccountRepo) Create(ctx context.Context, account entity.LedgerAccount) (entity.LedgerAccount, error) {
	if err := ctx.Err(); err != nil {
		return entity.LedgerAccount{}, err
	}
	err := r.access(true, func(s *state) error {
		if _, ok := s.customers[account.CustomerID]; !ok {
			return fmt.Errorf("insert conta gráfica: cliente %d inexistente", account.CustomerID)
		}
		for _, other := range s.accounts {
			if other.CustomerID == account.CustomerID || other.Number == account.Number {
				return fmt.Errorf("conta gráfica %s: %w", account.Number, domain.ErrConflict)
			}
		}
		s.nextAccountID++
		account.ID = s.nextAccountID
		s.accounts[account.ID] = account
		return nil
	})
	if err != nil {
		return entity.LedgerAccount{}, err
	}
	return account, nil
}

func (r *LedgerAccountRepo) GetByID(ctx context.Context, id int64) (*entity.LedgerAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *entity.LedgerAccount
	_ = r.access(false, func(s *state) error {
		if a, ok := s.accounts[id]; ok {
			found = &a
		}
		return nil
	})
	return found, nil
}

func (r *LedgerAccountRepo) GetByCustomerID(ctx context.Context, customerID int64) (*entity.LedgerAccount, error) {
	accounts, err := r.ListByCustomerIDs(ctx, []int64{customerID})
	if err != nil {
		return nil, err
	}
	a, ok := accounts[customerID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *LedgerAccountRepo) ListByCustomerIDs(ctx context.Context, customerIDs []int64) (map[int64]entity.LedgerAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[int64]struct{}, len(customerIDs))
	for _, id := range customerIDs {
		want[id] = struct{}{}
	}
	out := make(map[int64]entity.LedgerAccount, len(customerIDs))
	_ = r.access(false, func(s *state) error {
		for _, a := range s.accounts {
			if _, ok := want[a.CustomerID]; ok {
				out[a.CustomerID] = a
			}
		}
		return nil
	})
	return out, nil
}
