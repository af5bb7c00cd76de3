// Package catalog holds the ERP catalog records served by the backend API:
// products, suppliers and product price history.
//
// Every record exposes its fields by JSON name through Field, which is what the
// listview engine searches, filters and sorts on, and flattens into a map with
// ToMap so the form composer can validate it with the rule maps defined here.
//
//	errs := form.Validate(p.ToMap(), catalog.ProductRules())
//	if err := errs.Err(); err != nil {
//		return err // answered with 422 by the handler package
//	}
package catalog
