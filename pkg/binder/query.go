package binder

import "net/http"

// Query binds the URL query string using `query` tags.
func Query() Func {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindFields(v, "query", func(name string) []string { return q[name] }, ErrFailedToParseQuery)
	}
}
