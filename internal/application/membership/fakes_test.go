package membership

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

// memStore simula o banco: clientes e contas com IDs sequenciais e a mesma
// restrição de unicidade parcial (cpf) WHERE ativo do schema real.
type memStore struct {
	customers     map[int64]entity.Customer
	accounts      map[int64]entity.LedgerAccount
	nextCustomer  int64
	nextAccount   int64
	calls         int
	failOnAccount error
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[int64]entity.Customer{},
		accounts:  map[int64]entity.LedgerAccount{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := *s
	cp.customers = make(map[int64]entity.Customer, len(s.customers))
	for k, v := range s.customers {
		cp.customers[k] = v
	}
	cp.accounts = make(map[int64]entity.LedgerAccount, len(s.accounts))
	for k, v := range s.accounts {
		cp.accounts[k] = v
	}
	return &cp
}

func (s *memStore) Run(ctx context.Context, fn func(repository.CustomerRepository, repository.LedgerAccountRepository) error) error {
	s.calls++
	backup := s.snapshot()
	if err := fn(customerMem{s}, accountMem{s}); err != nil {
		calls := s.calls
		*s = *backup
		s.calls = calls
		return err
	}
	return nil
}

type customerMem struct{ s *memStore }

func (r customerMem) Create(_ context.Context, c entity.Customer) (entity.Customer, error) {
	r.s.calls++
	for _, other := range r.s.customers {
		if other.Active && c.Active && other.CPF == c.CPF {
			return entity.Customer{}, domain.ErrDuplicateCPF
		}
	}
	r.s.nextCustomer++
	c.ID = r.s.nextCustomer
	r.s.customers[c.ID] = c
	return c, nil
}

func (r customerMem) Update(_ context.Context, c entity.Customer) error {
	r.s.calls++
	if _, ok := r.s.customers[c.ID]; !ok {
		return errors.New("update: cliente inexistente")
	}
	r.s.customers[c.ID] = c
	return nil
}

func (r customerMem) GetActiveByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.s.calls++
	c, ok := r.s.customers[id]
	if !ok || !c.Active {
		return nil, nil
	}
	return &c, nil
}

func (r customerMem) GetActiveByCPF(_ context.Context, cpf string) (*entity.Customer, error) {
	r.s.calls++
	for _, c := range r.s.customers {
		if c.Active && c.CPF == cpf {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r customerMem) ListActive(_ context.Context) ([]entity.Customer, error) {
	r.s.calls++
	var out []entity.Customer
	for _, c := range r.s.customers {
		if c.Active {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type accountMem struct{ s *memStore }

func (r accountMem) Create(_ context.Context, a entity.LedgerAccount) (entity.LedgerAccount, error) {
	r.s.calls++
	if r.s.failOnAccount != nil {
		return entity.LedgerAccount{}, r.s.failOnAccount
	}
	r.s.nextAccount++
	a.ID = r.s.nextAccount
	r.s.accounts[a.ID] = a
	return a, nil
}

func (r accountMem) GetByID(_ context.Context, id int64) (*entity.LedgerAccount, error) {
	r.s.calls++
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r accountMem) GetByCustomerID(_ context.Context, customerID int64) (*entity.LedgerAccount, error) {
	r.s.calls++
	for _, a := range r.s.accounts {
		if a.CustomerID == customerID {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r accountMem) ListByCustomerIDs(_ context.Context, ids []int64) (map[int64]entity.LedgerAccount, error) {
	r.s.calls++
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := map[int64]entity.LedgerAccount{}
	for _, a := range r.s.accounts {
		if want[a.CustomerID] {
			out[a.CustomerID] = a
		}
	}
	return out, nil
}
