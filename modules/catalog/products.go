package catalog

import (
	"net/http"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/analytics"
	"github.com/dmitrymomot/erplite/pkg/catalog"
	"github.com/dmitrymomot/erplite/pkg/sanitizer"
)

var (
	productSearchFields = []string{"name", "sku", "brand", "category"}
	productSortFields   = []string{"name", "sku", "category", "brand", "cost_price", "sale_price", "stock", "margin"}
)

type productView struct {
	catalog.Product
	Margin float64 `json:"margin"`
}

func newProductView(p catalog.Product) productView {
	return productView{Product: p, Margin: sanitizer.Money(p.Margin())}
}

type listProductsRequest struct {
	listRequest
	Category   string `query:"category"`
	Brand      string `query:"brand"`
	SupplierID string `query:"supplier_id"`
	Active     string `query:"active"`
}

func (s *Service) listProducts(ctx handler.Context, req listProductsRequest) handler.Response {
	products, err := s.source.Products(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	p := s.params(req.listRequest, productSearchFields, productSortFields, map[string]string{
		"category":    req.Category,
		"brand":       req.Brand,
		"supplier_id": req.SupplierID,
		"active":      req.Active,
	})
	return listResponse(derive(products, p), p.PageSize, newProductView)
}

type createProductRequest struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Category   string  `json:"category"`
	Brand      string  `json:"brand"`
	SupplierID string  `json:"supplier_id"`
	CostPrice  float64 `json:"cost_price"`
	SalePrice  float64 `json:"sale_price"`
	Stock      int     `json:"stock"`
	Active     *bool   `json:"active"`
}

func (s *Service) createProduct(ctx handler.Context, req createProductRequest) handler.Response {
	p := catalog.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Category:   req.Category,
		Brand:      req.Brand,
		SupplierID: req.SupplierID,
		CostPrice:  req.CostPrice,
		SalePrice:  req.SalePrice,
		Stock:      req.Stock,
		Active:     req.Active == nil || *req.Active,
	}
	p.Normalize()
	if errs := catalog.ValidateProduct(p); !errs.IsEmpty() {
		return handler.JSONError(errs.Err())
	}

	created, err := s.source.CreateProduct(ctx, p)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(newProductView(created), handler.WithJSONStatus(http.StatusCreated))
}

type priceHistoryRequest struct {
	ProductID string `path:"id"`
}

type priceHistoryResponse struct {
	Items  []catalog.PriceEntry `json:"items"`
	Change *analytics.Change    `json:"change"`
}

func (s *Service) priceHistory(ctx handler.Context, req priceHistoryRequest) handler.Response {
	history, err := s.source.PriceHistory(ctx, req.ProductID)
	if err != nil {
		return handler.JSONError(err)
	}

	resp := priceHistoryResponse{Items: catalog.SortPriceHistory(history)}
	if change, ok := analytics.PriceChange(history); ok {
		resp.Change = &change
	}
	return handler.JSON(resp)
}
