package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/erplite/pkg/backend"
	"github.com/dmitrymomot/erplite/pkg/catalog"
)

func newClient(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := backend.NewClient(srv.URL + "/api/")
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := backend.NewClient("localhost:8080")
	assert.Error(t, err)
	_, err = backend.NewClient("/api")
	assert.Error(t, err)
	_, err = backend.NewClient("https://erp.example.com/api")
	assert.NoError(t, err)
}

func TestClient_Products(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"p1","name":"Martelo","sale_price":39.9,"stock":3,"active":true}]`)
	})

	products, err := c.Products(backend.WithToken(context.Background(), "tok-1"))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Martelo", products[0].Name)
	assert.InDelta(t, 39.9, products[0].SalePrice, 1e-9)
	assert.True(t, products[0].Active)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[]`)
	})

	suppliers, err := c.Suppliers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestClient_PriceHistoryEscapesID(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/a%2Fb/prices", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `[{"product_id":"a/b","price":10,"recorded_at":"2024-01-01T00:00:00Z"}]`)
	})

	history, err := c.PriceHistory(context.Background(), "a/b")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2024, history[0].RecordedAt.Year())
}

func TestClient_CreateSupplier(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in catalog.Supplier
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "s9"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	created, err := c.CreateSupplier(context.Background(), catalog.Supplier{Name: "Acme", Document: "11222333000181"})
	require.NoError(t, err)
	assert.Equal(t, "s9", created.ID)
	assert.Equal(t, "Acme", created.Name)
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, backend.ErrUnauthorized},
		{http.StatusForbidden, backend.ErrUnauthorized},
		{http.StatusNotFound, backend.ErrNotFound},
		{http.StatusUnprocessableEntity, backend.ErrRejected},
		{http.StatusConflict, backend.ErrRejected},
		{http.StatusInternalServerError, backend.ErrUpstream},
		{http.StatusBadGateway, backend.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			})
			_, err := c.Products(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestClient_MalformedBody(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"not":"a list"`)
	})
	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, backend.ErrUpstream)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := backend.NewClient(url)
	require.NoError(t, err)
	_, err = c.Products(context.Background())
	assert.ErrorIs(t, err, backend.ErrUpstream)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		switch in["password"] {
		case "right":
			_, _ = io.WriteString(w, `{"token":"tok-xyz"}`)
		case "empty":
			_, _ = io.WriteString(w, `{}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})

	token, err := c.Login(context.Background(), "ana@erp.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)

	_, err = c.Login(context.Background(), "ana@erp.com", "wrong")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)

	_, err = c.Login(context.Background(), "ana@erp.com", "empty")
	assert.ErrorIs(t, err, backend.ErrUpstream)
}
