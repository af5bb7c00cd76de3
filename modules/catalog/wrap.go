package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/binder"
)

var (
	jsonBody    = binder.JSON()
	queryParams = binder.Query()
	pathParams  = binder.Path(chi.URLParam)
)

func wrap[R any](s *Service, h handler.HandlerFunc[R], binders ...binder.Func) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](binders...),
		handler.WithErrorHandler[R](s.errorHandler),
	)
}
