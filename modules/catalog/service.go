package catalog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/erplite/handler"
	"github.com/dmitrymomot/erplite/pkg/backend"
	"github.com/dmitrymomot/erplite/pkg/logger"
	"github.com/dmitrymomot/erplite/pkg/ratelimiter"
	"github.com/dmitrymomot/erplite/pkg/tokenstore"
)

const (
	defaultPageSize   = 10
	defaultMaxPage    = 100
	defaultSessionTTL = 8 * time.Hour
)

// Service serves the catalog API on top of a backend Source.
type Service struct {
	source       backend.Source
	sessions     tokenstore.Store
	log          *slog.Logger
	errorHandler handler.ErrorHandler
	pageSize     int
	maxPageSize  int
	sessionTTL   time.Duration
	now          func() time.Time
	loginLimiter *ratelimiter.Bucket
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPageSize sets the default and maximum page sizes. Non-positive values are ignored.
func WithPageSize(def, maxSize int) Option {
	return func(s *Service) {
		if def > 0 {
			s.pageSize = def
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
	}
}

// WithSessionTTL sets how long a login stays valid. Zero keeps sessions until logout.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl >= 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithLoginLimiter throttles POST /auth/login per client address.
func WithLoginLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Service) { s.loginLimiter = b }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(source backend.Source, sessions tokenstore.Store, opts ...Option) *Service {
	s := &Service{
		source:      source,
		sessions:    sessions,
		log:         logger.Discard(),
		pageSize:    defaultPageSize,
		maxPageSize: defaultMaxPage,
		sessionTTL:  defaultSessionTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pageSize > s.maxPageSize {
		s.pageSize = s.maxPageSize
	}
	s.log = s.log.With(logger.Component("catalog"))
	s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{Mappings: ErrorMappings()})
	return s
}

// LoginLimitKey keys login attempts by client address under a "login" scope so
// the bucket can share a store with other limiters.
func LoginLimitKey() ratelimiter.KeyFunc {
	return ratelimiter.Composite(ratelimiter.Static("login"), ratelimiter.ByIP())
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if s.loginLimiter != nil {
			r.Use(ratelimiter.Middleware(s.loginLimiter, LoginLimitKey(), s.deny))
		}
		r.Post("/auth/login", wrap(s, s.login, jsonBody))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.RequireSession)

		r.Post("/auth/logout", wrap(s, s.logout))

		r.Get("/products", wrap(s, s.listProducts, queryParams))
		r.Post("/products", wrap(s, s.createProduct, jsonBody))
		r.Get("/products/{id}/prices", wrap(s, s.priceHistory, pathParams))

		r.Get("/suppliers", wrap(s, s.listSuppliers, queryParams))
		r.Post("/suppliers", wrap(s, s.createSupplier, jsonBody))

		r.Get("/analytics/categories", wrap(s, s.categoryStats))
		r.Get("/analytics/brands", wrap(s, s.brandStats))
	})

	return r
}

func (s *Service) deny(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), err)
}
