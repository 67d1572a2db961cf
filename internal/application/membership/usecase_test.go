package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gerenciamento-clientes/internal/domain"
)

const (
	cpfJoao  = "52998224725"
	cpfMaria = "111.444.777-35"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*MembershipUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	uc := NewMembershipUseCase(store, customerMem{store}, accountMem{store}, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc, store
}

func joao() JoinInput {
	return JoinInput{
		Name:       "João Silva",
		CPF:        cpfJoao,
		Email:      "joao@email.com",
		MonthlyFee: decimal.RequireFromString("150.00"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Join
// ──────────────────────────────────────────────────────────────────────────────

func TestJoin_CriaClienteAtivoComContaGrafica(t *testing.T) {
	uc, store := newTestUseCase(t)

	resp, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ClienteID)
	assert.True(t, resp.Ativo)
	assert.Equal(t, fixedNow, resp.DataAdesao)
	assert.Equal(t, "João Silva", resp.Nome)
	assert.True(t, decimal.RequireFromString("150").Equal(resp.ValorMensal))
	require.NotNil(t, resp.ContaGrafica)
	assert.Equal(t, "ITAUFL00001", resp.ContaGrafica.NumeroConta)
	assert.Equal(t, "FILHOTE", resp.ContaGrafica.TipoConta)
	assert.Equal(t, fixedNow, resp.ContaGrafica.DataCriacao)

	require.Len(t, store.accounts, 1, "deve existir exatamente uma conta gráfica")
	for _, a := range store.accounts {
		assert.Equal(t, resp.ClienteID, a.CustomerID)
	}
}

func TestJoin_NormalizaCPF(t *testing.T) {
	uc, _ := newTestUseCase(t)
	in := joao()
	in.CPF = cpfMaria

	resp, err := uc.Join(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "11144477735", resp.CPF)
}

func TestJoin_CPFDuplicadoEmClienteAtivo_RetornaConflito(t *testing.T) {
	uc, store := newTestUseCase(t)
	_, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)

	in := joao()
	in.CPF = "529.982.247-25" // mesmo CPF, formatado
	_, err = uc.Join(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "CLIENTE_CPF_DUPLICADO", domain.CodeOf(err))
	assert.Len(t, store.customers, 1)
	assert.Len(t, store.accounts, 1)
}

func TestJoin_CPFDeClienteCancelado_PodeSerReutilizado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	first, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)
	_, err = uc.Cancel(context.Background(), first.ClienteID)
	require.NoError(t, err)

	second, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)
	assert.NotEqual(t, first.ClienteID, second.ClienteID)
	assert.Equal(t, "ITAUFL00002", second.ContaGrafica.NumeroConta)
}

func TestJoin_FalhaNaContaDesfazCliente(t *testing.T) {
	uc, store := newTestUseCase(t)
	store.failOnAccount = errors.New("falha de disco")

	_, err := uc.Join(context.Background(), joao())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falha de disco")
	assert.Empty(t, store.customers, "cliente não deve ser confirmado sem a conta gráfica")
	assert.Empty(t, store.accounts)
}

func TestJoin_ValorMensalLimite(t *testing.T) {
	uc, _ := newTestUseCase(t)

	in := joao()
	in.MonthlyFee = decimal.RequireFromString("100.00")
	_, err := uc.Join(context.Background(), in)
	assert.NoError(t, err, "adesão aceita valor igual a 100,00")

	in = joao()
	in.CPF = cpfMaria
	in.MonthlyFee = decimal.RequireFromString("99.99")
	_, err = uc.Join(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJoin_DadosInvalidos(t *testing.T) {
	cases := map[string]func(*JoinInput){
		"nome em branco": func(in *JoinInput) { in.Name = "   " },
		"email vazio":    func(in *JoinInput) { in.Email = "" },
		"cpf invalido":   func(in *JoinInput) { in.CPF = "52998224724" },
		"cpf repetido":   func(in *JoinInput) { in.CPF = "00000000000" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			uc, store := newTestUseCase(t)
			in := joao()
			mutate(&in)
			_, err := uc.Join(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "DADOS_INVALIDOS", domain.CodeOf(err))
			assert.Zero(t, store.calls, "validação de entrada não acessa o repositório")
		})
	}
}

func TestJoin_ValorMensalNaoArmazenavel_RetornaDadosInvalidos(t *testing.T) {
	for _, v := range []string{"150.005", "100.001", "1e20", "10000000000000000"} {
		t.Run(v, func(t *testing.T) {
			uc, store := newTestUseCase(t)
			in := joao()
			in.MonthlyFee = decimal.RequireFromString(v)

			_, err := uc.Join(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "DADOS_INVALIDOS", domain.CodeOf(err))
			assert.Zero(t, store.calls)
		})
	}
}

func TestJoin_ValorMensalComZerosFinais_Aceito(t *testing.T) {
	uc, _ := newTestUseCase(t)
	in := joao()
	in.MonthlyFee = decimal.RequireFromString("150.500")

	resp, err := uc.Join(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150.50").Equal(resp.ValorMensal))
}

func TestJoin_CamposCopiadosLiteralmente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	in := joao()
	in.Name = " João Silva "
	in.Email = "joao@email.com "

	resp, err := uc.Join(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, " João Silva ", resp.Nome)
	assert.Equal(t, "joao@email.com ", resp.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_DesativaCliente(t *testing.T) {
	uc, store := newTestUseCase(t)
	joined, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)

	resp, err := uc.Cancel(context.Background(), joined.ClienteID)
	require.NoError(t, err)

	assert.Equal(t, joined.ClienteID, resp.ClienteID)
	assert.Equal(t, "João Silva", resp.Nome)
	assert.False(t, resp.Ativo)
	assert.Equal(t, fixedNow, resp.DataSaida)
	assert.Equal(t, "Adesão encerrada. Sua posição em custodia foi mantida.", resp.Mensagem)
	assert.False(t, store.customers[joined.ClienteID].Active)
	assert.Len(t, store.accounts, 1, "conta gráfica é mantida")

	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCancel_DuasVezes_RetornaNaoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	joined, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)
	_, err = uc.Cancel(context.Background(), joined.ClienteID)
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), joined.ClienteID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "CLIENTE_NAO_ENCONTRADO", domain.CodeOf(err))
}

func TestCancel_ClienteInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeMonthlyFee
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeMonthlyFee_AtualizaValor(t *testing.T) {
	uc, store := newTestUseCase(t)
	joined, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)

	resp, err := uc.ChangeMonthlyFee(context.Background(), joined.ClienteID, decimal.RequireFromString("100.01"))
	require.NoError(t, err)

	assert.Equal(t, joined.ClienteID, resp.ClienteID)
	assert.Equal(t, "150.00", resp.ValorMensalAnterior.StringFixed(2))
	assert.Equal(t, "100.01", resp.ValorMensalNovo.StringFixed(2))
	assert.Equal(t, fixedNow, resp.DataAlteracao)
	assert.Equal(t, MessageMonthlyFeeSet, resp.Mensagem)
	assert.True(t, decimal.RequireFromString("100.01").Equal(store.customers[joined.ClienteID].MonthlyFee))
}

func TestChangeMonthlyFee_ValorAteCem_NaoAcessaRepositorio(t *testing.T) {
	for _, v := range []string{"100.00", "100", "99.99", "0", "-10", "100.001", "150.005", "1e20"} {
		t.Run(v, func(t *testing.T) {
			uc, store := newTestUseCase(t)
			_, err := uc.ChangeMonthlyFee(context.Background(), 1, decimal.RequireFromString(v))
			assert.ErrorIs(t, err, domain.ErrBusinessRule)
			assert.Equal(t, "VALOR_MENSAL_INVALIDO", domain.CodeOf(err))
			assert.Zero(t, store.calls)
		})
	}
}

func TestChangeMonthlyFee_ClienteCancelado_RetornaNaoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	joined, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)
	_, err = uc.Cancel(context.Background(), joined.ClienteID)
	require.NoError(t, err)

	_, err = uc.ChangeMonthlyFee(context.Background(), joined.ClienteID, decimal.NewFromInt(200))
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListActive
// ──────────────────────────────────────────────────────────────────────────────

func TestListActive_SomenteAtivosComConta(t *testing.T) {
	uc, store := newTestUseCase(t)
	a, err := uc.Join(context.Background(), joao())
	require.NoError(t, err)
	in := joao()
	in.Name = "Maria Souza"
	in.CPF = cpfMaria
	b, err := uc.Join(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Cancel(context.Background(), a.ClienteID)
	require.NoError(t, err)
	accountsBefore := len(store.accounts)

	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, b.ClienteID, list[0].ClienteID)
	require.NotNil(t, list[0].ContaGrafica)
	assert.Equal(t, b.ContaGrafica.NumeroConta, list[0].ContaGrafica.NumeroConta)
	assert.Equal(t, accountsBefore, len(store.accounts), "listagem não cria contas")
}

func TestListActive_ClienteSemConta(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedCustomer(store, 7, cpfJoao, true)

	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].ContaGrafica)
}
