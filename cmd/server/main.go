// Command server runs the erplite BFF API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/erplite/modules/catalog"
	"github.com/dmitrymomot/erplite/pkg/backend"
	"github.com/dmitrymomot/erplite/pkg/clientip"
	"github.com/dmitrymomot/erplite/pkg/config"
	"github.com/dmitrymomot/erplite/pkg/environment"
	"github.com/dmitrymomot/erplite/pkg/httpserver"
	"github.com/dmitrymomot/erplite/pkg/logger"
	"github.com/dmitrymomot/erplite/pkg/ratelimiter"
	"github.com/dmitrymomot/erplite/pkg/redis"
	"github.com/dmitrymomot/erplite/pkg/requestid"
	"github.com/dmitrymomot/erplite/pkg/tokenstore"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, env environment.Environment, log *slog.Logger) error {
	src, err := newSource(cfg, log)
	if err != nil {
		return err
	}

	var checks []httpserver.Check
	var sessions tokenstore.Store = tokenstore.NewMemory()
	if cfg.TokenStore == storeRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		sessions = tokenstore.NewRedis(client, tokenstore.WithPrefix(redisCfg.KeyPrefix))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	}

	opts := []catalog.Option{
		catalog.WithLogger(log),
		catalog.WithPageSize(cfg.PageSize, cfg.MaxPageSize),
		catalog.WithSessionTTL(cfg.SessionTTL),
	}
	if cfg.LoginAttempts > 0 {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       cfg.LoginAttempts,
			RefillRate:     cfg.LoginAttempts,
			RefillInterval: cfg.LoginWindow,
		})
		if err != nil {
			return err
		}
		opts = append(opts, catalog.WithLoginLimiter(limiter))
	}
	svc := catalog.NewService(backend.NewCached(src, cfg.CacheTTL), sessions, opts...)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, environment.Middleware(env))
	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, 2*time.Second, checks...))
	r.Mount("/api", svc.Handle())

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	log.Info("starting erplite",
		slog.String("env", env.String()),
		slog.String("token_store", cfg.TokenStore),
		slog.Bool("fixtures", cfg.BackendFixtures != ""),
	)
	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

// newSource prefers the fixtures file when one is configured.
func newSource(cfg Config, log *slog.Logger) (backend.Source, error) {
	if cfg.BackendFixtures != "" {
		log.Warn("serving catalog from fixtures", slog.String("path", cfg.BackendFixtures))
		return backend.LoadFixtures(cfg.BackendFixtures)
	}
	return backend.NewClient(cfg.APIBaseURL,
		backend.WithHTTPClient(&http.Client{
			Transport: requestid.Transport(http.DefaultTransport),
			Timeout:   cfg.APITimeout,
		}),
		backend.WithLogger(log),
	)
}
