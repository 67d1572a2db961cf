package dto

// ErrorResponse corpo de erro HTTP. Code é estável; Message é para humanos.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail erro de validação de um campo da requisição.
type FieldDetail struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}
