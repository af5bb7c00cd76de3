package validator

func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCPF(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCNPJ(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CNPJ",
			TranslationKey: "validation.cnpj",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTaxID accepts either a CPF or a CNPJ, which is how supplier documents are captured.
func ValidTaxID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCPF(value) || IsValidCNPJ(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF or CNPJ",
			TranslationKey: "validation.tax_id",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
