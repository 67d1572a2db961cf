package membership

import (
	"context"
	"fmt"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/repository"
)

// LedgerAccountUseCase consulta de contas gráficas.
type LedgerAccountUseCase struct {
	repo repository.LedgerAccountRepository
}

// NewLedgerAccountUseCase constrói o caso de uso.
func NewLedgerAccountUseCase(repo repository.LedgerAccountRepository) *LedgerAccountUseCase {
	return &LedgerAccountUseCase{repo: repo}
}

// GetByID devolve a conta gráfica ou domain.ErrLedgerAccountNotFound.
func (uc *LedgerAccountUseCase) GetByID(ctx context.Context, id int64) (*dto.LedgerAccountResponse, error) {
	account, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar conta gráfica: %w", err)
	}
	if account == nil {
		return nil, domain.ErrLedgerAccountNotFound
	}
	return toLedgerAccountResponse(*account), nil
}
