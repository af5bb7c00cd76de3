// Package validator provides pure predicates and declarative rules for validating
// user input in the back-office: e-mail addresses, Brazilian phone numbers,
// Brazilian taxpayer identifiers (CPF and CNPJ), URLs, lengths and numeric strings.
//
// Two layers are exposed:
//
//   - Predicates such as IsValidCPF, IsValidCNPJ, IsValidEmail or HasMinLength. They
//     are total over strings, never panic and have no side effects.
//   - Rule constructors such as ValidCPF or MinLen which pair a predicate with a
//     field name and translation-friendly error metadata. Rules are evaluated with
//     Apply (every failure) or ApplyFirst (first failure per field).
//
// # Tax identifiers
//
// CPF numbers have 11 digits and CNPJ numbers 14; the last two digits of each are
// mod-11 check digits computed from the preceding ones. Punctuation is stripped
// before checking and sequences of one repeated digit ("00000000000") are rejected
// even though they satisfy the arithmetic.
//
//	validator.IsValidCPF("529.982.247-25")     // true
//	validator.IsValidCNPJ("11.222.333/0001-81") // true
//	validator.FormatCNPJ("11222333000181")     // "11.222.333/0001-81"
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.Required("name", req.Name),
//	    validator.MinLen("name", req.Name, 3),
//	    validator.ValidTaxID("document", req.Document),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Get("document")
//	}
//
// The package holds no state and every function is safe for concurrent use.
package validator
