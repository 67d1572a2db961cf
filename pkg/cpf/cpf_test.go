package cpf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gerenciamento-clientes/pkg/cpf"
)

func TestValidate_CPFsValidos(t *testing.T) {
	for _, in := range []string{"52998224725", "529.982.247-25", "11144477735", "111.444.777-35"} {
		assert.NoError(t, cpf.Validate(in), "CPF %q deve ser válido", in)
	}
}

func TestValidate_CPFsInvalidos(t *testing.T) {
	cases := map[string]string{
		"digito errado":      "52998224724",
		"primeiro digito":    "52998224715",
		"curto":              "5299822472",
		"longo":              "529982247250",
		"sequencia repetida": "11111111111",
		"vazio":              "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cpf.Validate(in))
			assert.False(t, cpf.IsValid(in))
		})
	}
}

func TestNormalize_RemoveFormatacao(t *testing.T) {
	assert.Equal(t, "52998224725", cpf.Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", cpf.Normalize(" 52998224725 "))
}

func TestValidate_RejeitaCaracteresEstranhos(t *testing.T) {
	assert.False(t, cpf.IsValid("abc52998224725"))
	assert.False(t, cpf.IsValid("529/982/247-25"))
	assert.False(t, cpf.IsValid("５2998224725"))
	assert.True(t, cpf.IsValid("529 982 247 25"))
}
