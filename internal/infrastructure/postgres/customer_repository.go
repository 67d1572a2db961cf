package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, nome, cpf, email, valor_mensal, ativo, data_adesao`

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create insere o cliente e devolve a versão com o ID gerado.
// A violação do índice único parcial (cpf) WHERE ativo vira domain.ErrDuplicateCPF.
func (r *CustomerRepo) Create(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	query := `
		INSERT INTO clientes (nome, cpf, email, valor_mensal, ativo, data_adesao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.Name, customer.CPF, customer.Email, customer.MonthlyFee, customer.Active, customer.JoinedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Customer{}, uniqueViolationError(err)
		}
		return entity.Customer{}, fmt.Errorf("insert cliente: %w", err)
	}
	return customer, nil
}

// Update persiste a nova versão do cliente (valor mensal e status).
func (r *CustomerRepo) Update(ctx context.Context, customer entity.Customer) error {
	query := `
		UPDATE clientes SET nome = $2, email = $3, valor_mensal = $4, ativo = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.MonthlyFee, customer.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update cliente %d: %w", customer.ID, pgx.ErrNoRows)
	}
	return nil
}

// GetActiveByID obtém um cliente ativo por ID.
func (r *CustomerRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE id = $1 AND ativo = TRUE`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetActiveByCPF obtém o cliente ativo com o CPF informado.
func (r *CustomerRepo) GetActiveByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE cpf = $1 AND ativo = TRUE`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por cpf: %w", err)
	}
	return c, nil
}

// ListActive lista os clientes ativos em ordem de ID.
func (r *CustomerRepo) ListActive(ctx context.Context) ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE ativo = TRUE ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.MonthlyFee, &c.Active, &c.JoinedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
