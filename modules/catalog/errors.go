package catalog

import (
	"net/http"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/backend"
	"github.com/dmitrymomot/erplite/pkg/ratelimiter"
	"github.com/dmitrymomot/erplite/pkg/tokenstore"
)

var (
	ErrSessionRequired    = handler.NewHTTPError(http.StatusUnauthorized, "session_required")
	ErrSessionExpired     = handler.NewHTTPError(http.StatusUnauthorized, "session_expired")
	ErrInvalidCredentials = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	ErrRejected           = handler.NewHTTPError(http.StatusUnprocessableEntity, "rejected")
)

// ErrorMappings translates backend and session store failures into API errors.
// Any other backend failure surfaces as 502 bad_gateway.
func ErrorMappings() []handler.ErrorMapping {
	return []handler.ErrorMapping{
		{Err: backend.ErrInvalidCredentials, As: ErrInvalidCredentials},
		{Err: backend.ErrUnauthorized, As: ErrSessionExpired},
		{Err: backend.ErrNotFound, As: handler.ErrNotFound},
		{Err: backend.ErrRejected, As: ErrRejected},
		{Err: backend.ErrUpstream, As: handler.ErrBadGateway},
		{Err: tokenstore.ErrNotFound, As: ErrSessionExpired},
		{Err: tokenstore.ErrEmptyKey, As: ErrSessionRequired},
		{Err: tokenstore.ErrStoreFailure, As: handler.ErrServiceUnavailable},
		{Err: ratelimiter.ErrLimitExceeded, As: handler.ErrTooManyRequests},
	}
}
