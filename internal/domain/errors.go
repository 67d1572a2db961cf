package domain

import "errors"

// Categorias de erro de domínio (sem dependências externas).
// A camada HTTP traduz cada categoria para um status.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflito com o estado atual")
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrBusinessRule = errors.New("regra de negócio violada")
)

// CodedError é um erro com código estável legível por máquina, separado da mensagem.
// Unwrap devolve a categoria, então errors.Is(err, ErrNotFound) funciona.
type CodedError struct {
	Code    string
	Message string
	Kind    error
}

func (e *CodedError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *CodedError) Unwrap() error {
	return e.Kind
}

// Erros de negócio conhecidos.
var (
	ErrCustomerNotFound = &CodedError{
		Code:    "CLIENTE_NAO_ENCONTRADO",
		Message: "cliente ativo não encontrado",
		Kind:    ErrNotFound,
	}
	ErrDuplicateCPF = &CodedError{
		Code:    "CLIENTE_CPF_DUPLICADO",
		Message: "já existe um cliente ativo com este CPF",
		Kind:    ErrConflict,
	}
	ErrInvalidMonthlyFee = &CodedError{
		Code:    "VALOR_MENSAL_INVALIDO",
		Message: "o valor mensal deve ser maior que 100,00, com no máximo duas casas decimais",
		Kind:    ErrBusinessRule,
	}
	ErrInvalidCustomer = &CodedError{
		Code:    "DADOS_INVALIDOS",
		Message: "dados do cliente inválidos",
		Kind:    ErrInvalidInput,
	}
	ErrLedgerAccountNotFound = &CodedError{
		Code:    "CONTA_GRAFICA_NAO_ENCONTRADA",
		Message: "conta gráfica não encontrada",
		Kind:    ErrNotFound,
	}
)

// CodeOf devolve o código do primeiro CodedError na cadeia, ou "" se não houver.
func CodeOf(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
