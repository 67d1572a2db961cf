package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo CustomerRepository em memória.
type CustomerRepo struct {
	access func(write bool, f func(*state) error) error
}

// cpfTaken reproduz o índice único parcial (cpf) WHERE ativo.
func cpfTaken(s *state, c entity.Customer) bool {
	if !c.Active {
		return false
	}
	for id, other := range s.customers {
		if id != c.ID && other.Active && other.CPF == c.CPF {
			return true
		}
	}
	return false
}

func (r *CustomerRepo) Create(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return entity.Customer{}, err
	}
	err := r.access(true, func(s *state) error {
		if cpfTaken(s, customer) {
			return domain.ErrDuplicateCPF
		}
		s.nextCustomerID++
		customer.ID = s.nextCustomerID
		s.customers[customer.ID] = customer
		return nil
	})
	if err != nil {
		return entity.Customer{}, err
	}
	return customer, nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.access(true, func(s *state) error {
		current, ok := s.customers[customer.ID]
		if !ok {
			return fmt.Errorf("update cliente %d: inexistente", customer.ID)
		}
		customer.CPF = current.CPF
		customer.JoinedAt = current.JoinedAt
		if cpfTaken(s, customer) {
			return domain.ErrDuplicateCPF
		}
		s.customers[customer.ID] = customer
		return nil
	})
}

func (r *CustomerRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.findOne(ctx, func(c entity.Customer) bool { return c.ID == id })
}

func (r *CustomerRepo) GetActiveByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	return r.findOne(ctx, func(c entity.Customer) bool { return c.CPF == cpf })
}

func (r *CustomerRepo) ListActive(ctx context.Context) ([]entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []entity.Customer
	_ = r.access(false, func(s *state) error {
		for _, c := range s.customers {
			if c.Active {
				list = append(list, c)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *CustomerRepo) findOne(ctx context.Context, match func(entity.Customer) bool) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *entity.Customer
	_ = r.access(false, func(s *state) error {
		for _, c := range s.customers {
			if c.Active && match(c) {
				found = &c
				return nil
			}
		}
		return nil
	})
	return found, nil
}
