package catalog

import (
	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/analytics"
	"github.com/dmitrymomot/erplite/pkg/catalog"
)

func (s *Service) categoryStats(ctx handler.Context, _ struct{}) handler.Response {
	return s.groupStats(ctx, analytics.ByCategory)
}

func (s *Service) brandStats(ctx handler.Context, _ struct{}) handler.Response {
	return s.groupStats(ctx, analytics.ByBrand)
}

func (s *Service) groupStats(ctx handler.Context, group func([]catalog.Product) []analytics.Group) handler.Response {
	products, err := s.source.Products(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	groups := group(products)
	return handler.JSON(groups, handler.WithJSONMeta(map[string]any{
		"groups":   len(groups),
		"products": len(products),
	}))
}
