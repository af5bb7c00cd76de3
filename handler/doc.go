// Package handler provides typed JSON handlers for the BFF API.
//
// A HandlerFunc receives a bound request struct and returns a Response. Wrap
// turns it into an http.HandlerFunc that runs the binders, the decorators and
// the error handler:
//
//	func createProduct(ctx handler.Context, req createProductRequest) handler.Response {
//		p, err := svc.Create(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(p, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/products", handler.Wrap(createProduct,
//		handler.WithBinders[createProductRequest](binder.JSON()),
//		handler.WithErrorHandler[createProductRequest](errHandler),
//	))
//
// Every body uses the same envelope: {"data": ..., "meta": {...}} on success
// and {"error": {"code", "message", "details"}} on failure. Validation failures
// answer 422 with per-field details.
package handler
