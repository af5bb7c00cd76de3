package catalog

import (
	"github.com/dmitrymomot/erplite/pkg/sanitizer"
)

// Product is a sellable catalog item.
type Product struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	SKU        string  `json:"sku" yaml:"sku"`
	Category   string  `json:"category" yaml:"category"`
	Brand      string  `json:"brand" yaml:"brand"`
	SupplierID string  `json:"supplier_id" yaml:"supplier_id"`
	CostPrice  float64 `json:"cost_price" yaml:"cost_price"`
	SalePrice  float64 `json:"sale_price" yaml:"sale_price"`
	Stock      int     `json:"stock" yaml:"stock"`
	Active     bool    `json:"active" yaml:"active"`
}

// Margin is the gross margin over the sale price, in percent.
func (p Product) Margin() float64 {
	return Margin(p.CostPrice, p.SalePrice)
}

// Field returns the value stored under a JSON field name. "margin" is derived.
func (p Product) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "sku":
		return p.SKU, true
	case "category":
		return p.Category, true
	case "brand":
		return p.Brand, true
	case "supplier_id":
		return p.SupplierID, true
	case "cost_price":
		return p.CostPrice, true
	case "sale_price":
		return p.SalePrice, true
	case "stock":
		return p.Stock, true
	case "active":
		return p.Active, true
	case "margin":
		return p.Margin(), true
	}
	return nil, false
}

// ToMap flattens the product for form validation.
func (p Product) ToMap() map[string]any {
	return map[string]any{
		"name":        p.Name,
		"sku":         p.SKU,
		"category":    p.Category,
		"brand":       p.Brand,
		"supplier_id": p.SupplierID,
		"cost_price":  p.CostPrice,
		"sale_price":  p.SalePrice,
		"stock":       p.Stock,
	}
}

// Normalize cleans user input in place before validation.
func (p *Product) Normalize() {
	p.Name = sanitizer.Text(p.Name)
	p.SKU = sanitizer.NormalizeSKU(p.SKU)
	p.Category = sanitizer.Text(p.Category)
	p.Brand = sanitizer.Text(p.Brand)
	p.SupplierID = sanitizer.Trim(p.SupplierID)
	p.CostPrice = sanitizer.Money(p.CostPrice)
	p.SalePrice = sanitizer.Money(p.SalePrice)
}

// Margin returns (sale-cost)/sale*100, or 0 when the sale price is not positive.
func Margin(cost, sale float64) float64 {
	if sale <= 0 {
		return 0
	}
	return (sale - cost) / sale * 100
}
