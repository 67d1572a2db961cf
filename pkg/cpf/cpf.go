package cpf

import "fmt"

// Length é a quantidade de dígitos de um CPF (9 base + 2 verificadores).
const Length = 11

// Validate verifica o CPF (com ou sem pontos/hífen) pelo algoritmo módulo 11 da Receita Federal.
// cpf pode ser "529.982.247-25" ou "52998224725".
func Validate(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != Length {
		return fmt.Errorf("cpf: deve ter %d dígitos, encontrados %d", Length, len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cpf: sequência repetida não é válida")
	}
	first := checkDigit(digits[:9])
	if digits[9] != first {
		return fmt.Errorf("cpf: primeiro dígito verificador inválido: esperado %c, recebido %c", first, digits[9])
	}
	second := checkDigit(digits[:10])
	if digits[10] != second {
		return fmt.Errorf("cpf: segundo dígito verificador inválido: esperado %c, recebido %c", second, digits[10])
	}
	return nil
}

// IsValid atalho booleano para Validate.
func IsValid(cpf string) bool {
	return Validate(cpf) == nil
}

// Normalize remove a formatação e devolve apenas os dígitos.
func Normalize(cpf string) string {
	return string(extractDigits(cpf))
}

// checkDigit calcula o dígito verificador para a base informada (9 ou 10 dígitos).
// Os pesos começam em len(base)+1 e decrescem até 2.
func checkDigit(base []byte) byte {
	var sum int
	weight := len(base) + 1
	for _, d := range base {
		sum += int(d-'0') * weight
		weight--
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// extractDigits aceita apenas dígitos ASCII e os separadores ".", "-" e espaço;
// qualquer outro caractere invalida a entrada (devolve nil).
func extractDigits(s string) []byte {
	out := make([]byte, 0, Length)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r))
		case r == '.' || r == '-' || r == ' ':
		default:
			return nil
		}
	}
	return out
}
