package backend

import (
	"context"

	"github.com/dmitrymomot/erplite/pkg/catalog"
)

// Source is a catalog backend.
type Source interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Suppliers(ctx context.Context) ([]catalog.Supplier, error)
	PriceHistory(ctx context.Context, productID string) ([]catalog.PriceEntry, error)
	CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	CreateSupplier(ctx context.Context, s catalog.Supplier) (catalog.Supplier, error)
	// Login exchanges credentials for an API token.
	Login(ctx context.Context, email, password string) (string, error)
}

type tokenKey struct{}

// WithToken attaches the API token used for calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the API token attached with WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
