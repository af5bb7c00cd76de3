package validator

// ValidEmail validates the local@domain.tld shape of an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates that a string is an absolute URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidURL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone validates a Brazilian phone number with area code (10 or 11 digits).
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number with area code",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
