package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrFailedToParseJSON    = errors.New("binder: failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("binder: failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("binder: failed to parse path parameters")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
)
