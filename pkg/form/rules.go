package form

import (
	"fmt"

	"github.com/dmitrymomot/erplite/pkg/validator"
)

// Required fails for nil values, nil pointers and blank strings.
func Required() Rule {
	return func(value any) string {
		if validator.IsRequired(value) {
			return ""
		}
		return validator.Required("", "").Error.Message
	}
}

func MinLength(n int) Rule {
	return fromValidator(func(field, value string) validator.Rule {
		return validator.MinLen(field, value, n)
	})
}

func MaxLength(n int) Rule {
	return fromValidator(func(field, value string) validator.Rule {
		return validator.MaxLen(field, value, n)
	})
}

func Email() Rule   { return fromValidator(validator.ValidEmail) }
func Phone() Rule   { return fromValidator(validator.ValidPhone) }
func URL() Rule     { return fromValidator(validator.ValidURL) }
func CPF() Rule     { return fromValidator(validator.ValidCPF) }
func CNPJ() Rule    { return fromValidator(validator.ValidCNPJ) }
func TaxID() Rule   { return fromValidator(validator.ValidTaxID) }
func Numeric() Rule { return fromValidator(validator.NumericString) }
func Decimal() Rule { return fromValidator(validator.DecimalString) }

// Check adapts a string predicate into a Rule failing with msg.
func Check(pred func(string) bool, msg string) Rule {
	return func(value any) string {
		if pred(stringOf(value)) {
			return ""
		}
		return msg
	}
}

// WithMessage replaces the message of rule while keeping its verdict.
func WithMessage(rule Rule, msg string) Rule {
	return func(value any) string {
		if rule(value) == "" {
			return ""
		}
		return msg
	}
}

// Optional runs rules only when the value is present, so blank optional inputs
// (a supplier without website, for instance) are accepted.
func Optional(rules ...Rule) Rule {
	return func(value any) string {
		if !validator.IsRequired(value) {
			return ""
		}
		for _, rule := range rules {
			if msg := rule(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

func fromValidator(ctor func(field, value string) validator.Rule) Rule {
	return func(value any) string {
		rule := ctor("", stringOf(value))
		if rule.Check() {
			return ""
		}
		return rule.Error.Message
	}
}

func stringOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
