package catalog

import (
	"slices"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/listview"
)

// listRequest holds the query parameters shared by every collection endpoint.
type listRequest struct {
	Search   string `query:"q"`
	Sort     string `query:"sort"`
	Dir      string `query:"dir"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

func (s *Service) params(req listRequest, searchFields, sortFields []string, filters map[string]string) listview.Params {
	size := req.PageSize
	switch {
	case size <= 0:
		size = s.pageSize
	case size > s.maxPageSize:
		size = s.maxPageSize
	}

	p := listview.Params{
		Search:       req.Search,
		SearchFields: searchFields,
		Filters:      filters,
		SortDir:      listview.ParseDirection(req.Dir),
		Page:         req.Page,
		PageSize:     size,
	}
	if slices.Contains(sortFields, req.Sort) {
		p.SortField = req.Sort
	}
	return p
}

// derive runs the view and re-runs it when the requested page falls outside
// the result, so clients always get a populated page when one exists.
func derive[T listview.Record](items []T, p listview.Params) listview.Result[T] {
	res := listview.DeriveRecords(items, p)
	if page := listview.ClampPage(p.Page, res.TotalPages); page != p.Page {
		p.Page = page
		res = listview.DeriveRecords(items, p)
	}
	return res
}

func listResponse[T, V any](res listview.Result[T], pageSize int, view func(T) V) handler.Response {
	items := make([]V, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, view(it))
	}
	return handler.JSON(items, handler.WithJSONMeta(map[string]any{
		"total":       res.TotalCount,
		"total_pages": res.TotalPages,
		"page":        res.CurrentPage,
		"page_size":   pageSize,
	}))
}
