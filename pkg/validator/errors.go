package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTaxID is returned when a CPF or CNPJ fails its check digits.
	ErrInvalidTaxID = errors.New("invalid tax identifier")
)
