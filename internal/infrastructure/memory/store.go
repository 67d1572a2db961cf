// Package memory implementa os repositórios em memória, com as mesmas restrições
// do schema PostgreSQL. Útil em desenvolvimento local (STORAGE_DRIVER=memory) e em testes.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/membership"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ membership.TxRunner = (*Store)(nil)

type state struct {
	customers      map[int64]entity.Customer
	accounts       map[int64]entity.LedgerAccount
	nextCustomerID int64
	nextAccountID  int64
}

func (s *state) clone() *state {
	cp := &state{
		customers:      make(map[int64]entity.Customer, len(s.customers)),
		accounts:       make(map[int64]entity.LedgerAccount, len(s.accounts)),
		nextCustomerID: s.nextCustomerID,
		nextAccountID:  s.nextAccountID,
	}
	for k, v := range s.customers {
		cp.customers[k] = v
	}
	for k, v := range s.accounts {
		cp.accounts[k] = v
	}
	return cp
}

// Store guarda o estado e serializa as transações.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore cria um store vazio.
func NewStore() *Store {
	return &Store{data: &state{
		customers: map[int64]entity.Customer{},
		accounts:  map[int64]entity.LedgerAccount{},
	}}
}

// Customers repositório de clientes fora de transação.
func (s *Store) Customers() *CustomerRepo {
	return &CustomerRepo{access: s.access}
}

// LedgerAccounts repositório de contas gráficas fora de transação.
func (s *Store) LedgerAccounts() *LedgerAccountRepo {
	return &LedgerAccountRepo{access: s.access}
}

// Run executa fn sobre uma cópia do estado, que só substitui o original se fn não falhar.
// Transações são exclusivas entre si.
func (s *Store) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	accountRepo repository.LedgerAccountRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	inTx := func(_ bool, f func(*state) error) error { return f(work) }
	if err := fn(&CustomerRepo{access: inTx}, &LedgerAccountRepo{access: inTx}); err != nil {
		return err
	}
	s.data = work
	return nil
}

// access aplica f ao estado com o lock adequado; write indica mutação.
func (s *Store) access(write bool, f func(*state) error) error {
	if write {
		s.mu.Lock()
		defer s.mu.Unlock()
		work := s.data.clone()
		if err := f(work); err != nil {
			return err
		}
		s.data = work
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return f(s.data)
}
