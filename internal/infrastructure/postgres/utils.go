package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
)

const (
	uniqueViolationCode = "23505"
	cpfActiveIndex      = "ux_clientes_cpf_ativo"
)

// isUniqueViolation verifica se um erro é uma violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// uniqueViolationError traduz a violação para o erro de domínio correspondente ao índice.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == cpfActiveIndex {
		return domain.ErrDuplicateCPF
	}
	return domain.ErrConflict
}
