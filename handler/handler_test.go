package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/binder"
	"github.com/dmitrymomot/erplite/pkg/environment"
	"github.com/dmitrymomot/erplite/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name" query:"name"`
}

type envelope struct {
	Data  any            `json:"data"`
	Meta  map[string]any `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var errBackendDown = errors.New("backend down")

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := func(ctx handler.Context, req greetRequest) handler.Response {
		return handler.JSON(map[string]string{"hello": req.Name},
			handler.WithJSONMeta(map[string]any{"total": 1}),
		)
	}

	t.Run("binds and renders envelope", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders[greetRequest](binder.Query()))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Ana", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decode(t, rec)
		assert.Equal(t, map[string]any{"hello": "Ana"}, body.Data)
		assert.Equal(t, float64(1), body.Meta["total"])
		assert.Nil(t, body.Error)
	})

	t.Run("binder failure answers 400", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders[greetRequest](binder.JSON()))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		h(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "bad_request", body.Error.Code)
	})

	t.Run("missing content type answers 415", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders[greetRequest](binder.JSON()))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[greetRequest] {
			return func(next handler.HandlerFunc[greetRequest]) handler.HandlerFunc[greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(greet, handler.WithDecorators(mark("outer"), mark("inner")))
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("nil response is an internal error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, greetRequest) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_server_error", body.Error.Code)
		assert.Equal(t, "Internal Server Error", body.Error.Message)
	})

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, greetRequest) handler.Response { return handler.Empty() })
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("empty response with status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, greetRequest) handler.Response {
			return handler.EmptyWithStatus(http.StatusAccepted)
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("created status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, greetRequest) handler.Response {
			return handler.JSON("ok", handler.WithJSONStatus(http.StatusCreated))
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		Mappings: []handler.ErrorMapping{{Err: errBackendDown, As: handler.ErrBadGateway}},
	})

	serve := func(t *testing.T, err error, env environment.Environment) *httptest.ResponseRecorder {
		t.Helper()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.JSONError(err)
		}, handler.WithErrorHandler[struct{}](errHandler))

		r := httptest.NewRequest(http.MethodGet, "/products", nil)
		r = r.WithContext(environment.WithContext(r.Context(), env))
		rec := httptest.NewRecorder()
		h(rec, r)
		return rec
	}

	t.Run("validator errors answer 422 with details", func(t *testing.T) {
		verrs := validator.ValidationErrors{
			{Field: "name", Message: "field is required"},
			{Field: "sku", Message: "must be at most 32 characters long"},
		}
		rec := serve(t, verrs, environment.Production)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"field is required"}, body.Error.Details["name"])
		assert.Equal(t, []string{"must be at most 32 characters long"}, body.Error.Details["sku"])
	})

	t.Run("handler validation error", func(t *testing.T) {
		verr := handler.NewValidationError()
		verr.Add("price", "must not be lower than the cost price")
		rec := serve(t, fmt.Errorf("create: %w", verr), environment.Production)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"must not be lower than the cost price"}, decode(t, rec).Error.Details["price"])
	})

	t.Run("mapped error", func(t *testing.T) {
		rec := serve(t, fmt.Errorf("list products: %w", errBackendDown), environment.Production)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "bad_gateway", body.Error.Code)
		assert.Equal(t, "Bad Gateway", body.Error.Message)
	})

	t.Run("http error keeps its key", func(t *testing.T) {
		rec := serve(t, handler.ErrNotFound, environment.Production)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, "Not Found", body.Error.Message)
	})

	t.Run("internal details are hidden outside development", func(t *testing.T) {
		rec := serve(t, errors.New("pq: secret table"), environment.Production)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret table")
	})

	t.Run("internal details are shown in development", func(t *testing.T) {
		rec := serve(t, errors.New("pq: secret table"), environment.Development)
		assert.Contains(t, rec.Body.String(), "secret table")
	})

	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	assert.True(t, verr.IsEmpty())
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("sku", "field is required")
	verr.Add("name", "field is required")
	verr.Add("name", "too short")

	assert.True(t, verr.Has("name"))
	assert.Equal(t, "field is required", verr.Get("name"))
	assert.Equal(t, "validation failed: name: field is required, sku: field is required", verr.Error())
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	key := handler.NewContextKey("session")
	assert.Equal(t, "session", key.String())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key, "abc"))
	ctx := handler.NewContext(httptest.NewRecorder(), r)
	assert.Equal(t, "abc", handler.ContextValue[string](ctx, key))
	assert.Zero(t, handler.ContextValue[int](ctx, key))
}
