package catalog

import (
	"net/http"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/catalog"
)

var (
	supplierSearchFields = []string{"name", "document", "email", "city"}
	supplierSortFields   = []string{"name", "city", "email", "document"}
)

type supplierView struct {
	catalog.Supplier
	DocumentKind      string `json:"document_kind"`
	FormattedDocument string `json:"formatted_document"`
}

func newSupplierView(s catalog.Supplier) supplierView {
	kind, _ := s.DocumentKind()
	return supplierView{Supplier: s, DocumentKind: kind, FormattedDocument: s.FormattedDocument()}
}

type listSuppliersRequest struct {
	listRequest
	City string `query:"city"`
}

func (s *Service) listSuppliers(ctx handler.Context, req listSuppliersRequest) handler.Response {
	suppliers, err := s.source.Suppliers(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	p := s.params(req.listRequest, supplierSearchFields, supplierSortFields, map[string]string{
		"city": req.City,
	})
	return listResponse(derive(suppliers, p), p.PageSize, newSupplierView)
}

type createSupplierRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	City     string `json:"city"`
}

func (s *Service) createSupplier(ctx handler.Context, req createSupplierRequest) handler.Response {
	sup := catalog.Supplier{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		City:     req.City,
	}
	sup.Normalize()
	if err := catalog.ValidateSupplier(sup); err != nil {
		return handler.JSONError(err)
	}

	created, err := s.source.CreateSupplier(ctx, sup)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(newSupplierView(created), handler.WithJSONStatus(http.StatusCreated))
}
