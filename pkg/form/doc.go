// Package form applies declarative, per-field rule chains to submitted form data
// and produces a field-keyed error map for inline display.
//
// A Rules value maps each field name to an ordered slice of Rule functions. Validate
// walks every chain and records the message of the first failing rule; the rest
// of that chain is skipped, so a blank name reports "field is required" instead of
// a length complaint. Fields without rules are never validated and fields that pass
// are simply absent from the returned Errors.
//
//	rules := form.Rules{
//	    "name":     {form.Required(), form.MinLength(3)},
//	    "document": {form.Required(), form.TaxID()},
//	    "website":  {form.Optional(form.URL())},
//	}
//	errs := form.Validate(map[string]any{"name": "Al"}, rules)
//	// errs["name"] == "must be at least 3 characters long"
//	// errs["document"] == "field is required"
//
// Errors.Err converts the map into validator.ValidationErrors so HTTP handlers can
// return it directly and have it rendered as a 422 response.
//
// Rule constructors reuse the predicates and messages of package validator.
// Everything in the package is stateless and safe for concurrent use.
package form
