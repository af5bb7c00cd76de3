package catalog

import "github.com/dmitrymomot/erplite/pkg/form"

const (
	nameMinLength = 3
	nameMaxLength = 120
	skuMaxLength  = 32
)

// ProductRules validates a product create form.
func ProductRules() form.Rules {
	return form.Rules{
		"name":        {form.Required(), form.MinLength(nameMinLength), form.MaxLength(nameMaxLength)},
		"sku":         {form.Required(), form.MaxLength(skuMaxLength)},
		"category":    {form.Required()},
		"supplier_id": {form.Required()},
		"cost_price":  {form.Required(), form.Decimal()},
		"sale_price":  {form.Required(), form.Decimal()},
		"stock":       {form.Required(), form.Numeric()},
	}
}

// PriceRule rejects a sale price lower than cost. It reads the cost from the
// flattened product map, so it only works alongside ProductRules.
func PriceRule(data map[string]any) form.Rule {
	return func(value any) string {
		cost, okCost := data["cost_price"].(float64)
		sale, okSale := value.(float64)
		if okCost && okSale && sale < cost {
			return "must not be lower than the cost price"
		}
		return ""
	}
}

// ValidateProduct runs ProductRules plus the cost/sale price check.
func ValidateProduct(p Product) form.Errors {
	data := p.ToMap()
	rules := ProductRules()
	rules["sale_price"] = append(rules["sale_price"], PriceRule(data))
	return form.Validate(data, rules)
}

// SupplierRules validates a supplier create form.
func SupplierRules() form.Rules {
	return form.Rules{
		"name":     {form.Required(), form.MinLength(nameMinLength), form.MaxLength(nameMaxLength)},
		"document": {form.Required(), form.TaxID()},
		"email":    {form.Required(), form.Email()},
		"phone":    {form.Optional(form.Phone())},
		"website":  {form.Optional(form.URL())},
		"city":     {form.Required()},
	}
}

// LoginRules validates the sign-in form.
func LoginRules() form.Rules {
	return form.Rules{
		"email":    {form.Required(), form.Email()},
		"password": {form.Required(), form.MinLength(6)},
	}
}

// ValidateSupplier returns typed validation errors for s, or nil.
func ValidateSupplier(s Supplier) error {
	return form.Validate(s.ToMap(), SupplierRules()).Err()
}
