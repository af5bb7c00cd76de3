package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/erplite/pkg/catalog"
)

// FixtureUser is a sign-in account served by FixtureSource.
type FixtureUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
}

type fixtureFile struct {
	Products  []catalog.Product    `yaml:"products"`
	Suppliers []catalog.Supplier   `yaml:"suppliers"`
	Prices    []catalog.PriceEntry `yaml:"prices"`
	Users     []FixtureUser        `yaml:"users"`
}

// FixtureSource serves catalog data decoded from YAML. Created records live in
// memory only.
type FixtureSource struct {
	mu   sync.RWMutex
	data fixtureFile
}

// LoadFixtures reads a fixtures file from disk.
func LoadFixtures(path string) (*FixtureSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFixtures, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeFixtures(f)
}

// DecodeFixtures decodes a fixtures document. Unknown keys are rejected and
// product ids must be unique.
func DecodeFixtures(r io.Reader) (*FixtureSource, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data fixtureFile
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidFixtures, err)
	}

	seen := make(map[string]struct{}, len(data.Products))
	for _, p := range data.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product %q has no id", ErrInvalidFixtures, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %q", ErrInvalidFixtures, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &FixtureSource{data: data}, nil
}

func (s *FixtureSource) Products(context.Context) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Products), nil
}

func (s *FixtureSource) Suppliers(context.Context) ([]catalog.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Suppliers), nil
}

func (s *FixtureSource) PriceHistory(_ context.Context, productID string) ([]catalog.PriceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !slices.ContainsFunc(s.data.Products, func(p catalog.Product) bool { return p.ID == productID }) {
		return nil, fmt.Errorf("%w: product %q", ErrNotFound, productID)
	}

	out := make([]catalog.PriceEntry, 0)
	for _, e := range s.data.Prices {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *FixtureSource) CreateProduct(_ context.Context, p catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.data.Products, func(existing catalog.Product) bool {
		return strings.EqualFold(existing.SKU, p.SKU)
	}) {
		return catalog.Product{}, fmt.Errorf("%w: sku %q already exists", ErrRejected, p.SKU)
	}

	p.ID = uuid.NewString()
	s.data.Products = append(s.data.Products, p)
	return p, nil
}

func (s *FixtureSource) CreateSupplier(_ context.Context, sup catalog.Supplier) (catalog.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.data.Suppliers, func(existing catalog.Supplier) bool {
		return existing.Document == sup.Document
	}) {
		return catalog.Supplier{}, fmt.Errorf("%w: document %q already registered", ErrRejected, sup.Document)
	}

	sup.ID = uuid.NewString()
	s.data.Suppliers = append(s.data.Suppliers, sup)
	return sup, nil
}

func (s *FixtureSource) Login(_ context.Context, email, password string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u.Token, nil
		}
	}
	return "", ErrInvalidCredentials
}
