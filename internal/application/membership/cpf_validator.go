package membership

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

// CPFValidator garante que dois clientes ativos não compartilhem o mesmo CPF.
// CPFs de clientes encerrados podem ser reutilizados.
type CPFValidator struct {
	repo repository.CustomerRepository
	log  zerolog.Logger
}

// NewCPFValidator constrói o validador sobre o repositório (pool ou tx).
func NewCPFValidator(repo repository.CustomerRepository, log zerolog.Logger) *CPFValidator {
	return &CPFValidator{repo: repo, log: log}
}

// Validate falha com domain.ErrDuplicateCPF se outro cliente ativo já usa o CPF do candidato.
// Um candidato já persistido não conflita consigo mesmo.
func (v *CPFValidator) Validate(ctx context.Context, candidate entity.Customer) error {
	existing, err := v.repo.GetActiveByCPF(ctx, candidate.CPF)
	if err != nil {
		return fmt.Errorf("buscar cliente por cpf: %w", err)
	}
	if existing == nil {
		return nil
	}
	if candidate.IsNew() || existing.ID != candidate.ID {
		v.log.Warn().Str("cpf", candidate.CPF).Int64("cliente_existente", existing.ID).Msg("cpf já cadastrado em cliente ativo")
		return domain.ErrDuplicateCPF
	}
	return nil
}
