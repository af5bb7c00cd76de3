package binder

import "net/http"

// Func populates v from one part of the request.
type Func func(r *http.Request, v any) error

// Bind runs binders in order and stops at the first error.
func Bind(r *http.Request, v any, binders ...Func) error {
	for _, b := range binders {
		if err := b(r, v); err != nil {
			return err
		}
	}
	return nil
}
