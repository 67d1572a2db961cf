package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
)

func TestUniqueViolationError(t *testing.T) {
	cpfErr := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_clientes_cpf_ativo"})
	otherErr := &pgconn.PgError{Code: "23505", ConstraintName: "contas_graficas_numero_conta_key"}

	assert.True(t, isUniqueViolation(cpfErr))
	assert.ErrorIs(t, uniqueViolationError(cpfErr), domain.ErrDuplicateCPF)

	assert.True(t, isUniqueViolation(otherErr))
	assert.ErrorIs(t, uniqueViolationError(otherErr), domain.ErrConflict)
	assert.NotErrorIs(t, uniqueViolationError(otherErr), domain.ErrDuplicateCPF)

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("qualquer")))
}
