package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/erplite/pkg/catalog"
	"github.com/dmitrymomot/erplite/pkg/logger"
)

const maxErrorBody = 1 << 10

// Client is a Source backed by the ERP REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *slog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default client, for custom transports.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.http.Timeout = d
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(cl *Client) {
		if l != nil {
			cl.log = l
		}
	}
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: parse base url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("backend: base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Suppliers(ctx context.Context) ([]catalog.Supplier, error) {
	var out []catalog.Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PriceHistory(ctx context.Context, productID string) ([]catalog.PriceEntry, error) {
	var out []catalog.PriceEntry
	path := "/products/" + url.PathEscape(productID) + "/prices"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	var out catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &out); err != nil {
		return catalog.Product{}, err
	}
	return out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, s catalog.Supplier) (catalog.Supplier, error) {
	var out catalog.Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers", s, &out); err != nil {
		return catalog.Supplier{}, err
	}
	return out, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login maps a 401 answer to ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "", ErrInvalidCredentials
	case err != nil:
		return "", err
	case out.Token == "":
		return "", fmt.Errorf("%w: empty token in login response", ErrUpstream)
	}
	return out.Token, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "backend request failed",
			logger.Component("backend"),
			slog.String("method", method),
			slog.String("path", path),
			logger.Error(err),
		)
		return errors.Join(ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "backend request",
		logger.Component("backend"),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrUpstream, fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Join(ErrUnauthorized, detail)
	case http.StatusNotFound:
		return errors.Join(ErrNotFound, detail)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return errors.Join(ErrRejected, detail)
	}
	return errors.Join(ErrUpstream, detail)
}
