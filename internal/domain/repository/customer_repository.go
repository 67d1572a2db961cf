package repository

import (
	"context"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
)

// CustomerRepository define a porta de persistência para Customer.
// As buscas devolvem (nil, nil) quando não há registro.
type CustomerRepository interface {
	Create(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	Update(ctx context.Context, customer entity.Customer) error
	GetActiveByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetActiveByCPF(ctx context.Context, cpf string) (*entity.Customer, error)
	ListActive(ctx context.Context) ([]entity.Customer, error)
}
