package validator

import "fmt"

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsRequired(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return HasMinLength(value, min)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return HasMaxLength(value, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NumericString validates that a string contains only digits.
func NumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNumeric(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DecimalString validates plain decimal notation with a dot separator, e.g. "19.90".
func DecimalString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsDecimal(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a decimal number",
			TranslationKey: "validation.decimal_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
