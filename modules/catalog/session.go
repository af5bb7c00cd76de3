package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/backend"
	"github.com/dmitrymomot/erplite/pkg/catalog"
	"github.com/dmitrymomot/erplite/pkg/form"
	"github.com/dmitrymomot/erplite/pkg/logger"
	"github.com/dmitrymomot/erplite/pkg/sanitizer"
	"github.com/dmitrymomot/erplite/pkg/tokenstore"
)

// SessionHeader carries the session id issued by login.
const SessionHeader = "X-Session-ID"

var sessionKey = handler.NewContextKey("session_id")

// SessionID returns the session resolved by RequireSession.
func SessionID(ctx context.Context) string {
	return handler.ContextValue[string](ctx, sessionKey)
}

// RequireSession resolves the session header to a backend token and attaches
// it to the request context.
func (s *Service) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(SessionHeader))
		if id == "" {
			s.deny(w, r, ErrSessionRequired)
			return
		}

		token, err := s.sessions.Get(r.Context(), id)
		if err != nil {
			s.deny(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, id)
		ctx = backend.WithToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string     `json:"session_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (s *Service) login(ctx handler.Context, req loginRequest) handler.Response {
	req.Email = sanitizer.NormalizeEmail(req.Email)
	if errs := form.ValidateStruct(req, catalog.LoginRules()); !errs.IsEmpty() {
		return handler.JSONError(errs.Err())
	}

	token, err := s.source.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handler.JSONError(err)
	}

	id := uuid.NewString()
	if err := s.sessions.Set(ctx, id, token, s.sessionTTL); err != nil {
		return handler.JSONError(err)
	}
	s.log.InfoContext(ctx, "user signed in", logger.SessionID(id), slog.String("email", req.Email))

	resp := loginResponse{SessionID: id}
	if s.sessionTTL > 0 {
		exp := s.now().Add(s.sessionTTL).UTC()
		resp.ExpiresAt = &exp
	}
	ctx.ResponseWriter().Header().Set(SessionHeader, id)
	return handler.JSON(resp, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	id := SessionID(ctx)
	if err := s.sessions.Delete(ctx, id); err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
		return handler.JSONError(err)
	}
	s.log.InfoContext(ctx, "user signed out", logger.SessionID(id))
	return handler.Empty()
}
