// Package sanitizer normalises user input before it is validated or sent to the
// backend API.
//
// Transforms are plain func(T) T values, so they compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveExtraWhitespace)
//	name := clean(req.Name)
//
// Domain helpers cover the identifiers the catalog stores: e-mails are lower-cased,
// phones and CPF/CNPJ documents are reduced to digits, SKUs are upper-cased without
// inner spaces and websites get an https scheme when the user omitted one.
package sanitizer
