package form

import (
	"slices"

	"github.com/dmitrymomot/erplite/pkg/validator"
)

// Rule inspects a single field value and returns an error message, or "" when the
// value is acceptable. Rules must be pure and must not panic.
type Rule func(value any) string

// Rules maps a field name to the ordered chain of rules applied to it.
type Rules map[string][]Rule

// Errors maps a field name to its first failing message. A field that passed is absent.
type Errors map[string]string

// Validate evaluates every rule chain in rules against the matching value in data.
// Within a chain the first rule returning a message wins and the remaining rules
// are not called. Fields present in data but not in rules are ignored.
// Neither data nor rules is modified; a panicking rule is not recovered.
func Validate(data map[string]any, rules Rules) Errors {
	errs := make(Errors)
	for field, chain := range rules {
		value := data[field]
		for _, rule := range chain {
			if msg := rule(value); msg != "" {
				errs[field] = msg
				break
			}
		}
	}
	return errs
}

// ValidateStruct flattens v with FromStruct and validates the result.
func ValidateStruct(v any, rules Rules) Errors {
	return Validate(FromStruct(v), rules)
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the failing field names sorted alphabetically.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Err converts a non-empty error map into validator.ValidationErrors ordered by
// field name. It returns nil when there are no errors.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	rules := make([]validator.Rule, 0, len(e))
	for _, field := range e.Fields() {
		rules = append(rules, validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: e[field]},
		})
	}
	return validator.ApplyFirst(rules...)
}
