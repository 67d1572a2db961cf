package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/internal/domain/entity"
	"github.com/jhoicas/gerenciamento-clientes/pkg/cpf"
)

// Validator valida o formato dos bodies antes de chegarem aos casos de uso.
type Validator struct {
	v *validator.Validate
}

// NewValidator configura o validador com as tags próprias:
//   - cpf: dígitos verificadores válidos
//   - notblank: string com algum caractere não branco
//
// decimal.NullDecimal é exposto como float64 (ou nil, se ausente) para required/gte;
// a escala e o teto do valor mensal são checados no nível da struct, sobre o decimal original.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(nullDecimalValue, decimal.NullDecimal{})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpf.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterStructValidation(joinRequestFee, dto.JoinRequest{})
	return &Validator{v: v}
}

func joinRequestFee(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.JoinRequest)
	if req.ValorMensal.Valid && !entity.IsStorableMonthlyFee(req.ValorMensal.Decimal) {
		sl.ReportError(req.ValorMensal.Decimal.String(), "valorMensal", "ValorMensal", "moeda", "")
	}
}

func nullDecimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.NullDecimal)
	if !ok || !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return f
}

// Struct valida s e devolve os detalhes por campo; nil se válido.
func (val *Validator) Struct(s interface{}) []dto.FieldDetail {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldDetail{{Campo: "", Mensagem: err.Error()}}
	}
	details := make([]dto.FieldDetail, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, dto.FieldDetail{Campo: e.Field(), Mensagem: validationMessage(e)})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "notblank":
		return "não pode ser em branco"
	case "email":
		return "email deve ser válido"
	case "cpf":
		return "CPF inválido"
	case "min":
		return "deve ter no mínimo " + e.Param() + " caracteres"
	case "max":
		return "deve ter no máximo " + e.Param() + " caracteres"
	case "moeda":
		return "deve ter no máximo 2 casas decimais e caber em 9999999999999999,99"
	case "gte":
		return "deve ser no mínimo " + e.Param()
	default:
		return "valor inválido"
	}
}
