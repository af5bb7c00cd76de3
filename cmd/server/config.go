package main

import (
	"errors"
	"fmt"
	"time"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

// Config is the application level configuration. Server and redis settings
// are loaded separately from HTTP_* and REDIS_*.
type Config struct {
	AppName         string        `env:"APP_NAME" envDefault:"erplite"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	APIBaseURL      string        `env:"API_BASE_URL"`
	APITimeout      time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	BackendFixtures string        `env:"BACKEND_FIXTURES"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	TokenStore      string        `env:"TOKEN_STORE" envDefault:"memory"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"8h"`
	PageSize        int           `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int           `env:"MAX_PAGE_SIZE" envDefault:"100"`
	LoginAttempts   int           `env:"LOGIN_ATTEMPTS" envDefault:"5"`
	LoginWindow     time.Duration `env:"LOGIN_WINDOW" envDefault:"1m"`
}

func (c *Config) Validate() error {
	var errs []error
	if c.APIBaseURL == "" && c.BackendFixtures == "" {
		errs = append(errs, errors.New("either API_BASE_URL or BACKEND_FIXTURES must be set"))
	}
	if c.TokenStore != storeMemory && c.TokenStore != storeRedis {
		errs = append(errs, fmt.Errorf("TOKEN_STORE must be %q or %q, got %q", storeMemory, storeRedis, c.TokenStore))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, errors.New("API_TIMEOUT must be positive"))
	}
	if c.CacheTTL < 0 || c.SessionTTL < 0 {
		errs = append(errs, errors.New("CACHE_TTL and SESSION_TTL must not be negative"))
	}
	if c.LoginAttempts < 0 {
		errs = append(errs, errors.New("LOGIN_ATTEMPTS must not be negative"))
	}
	if c.LoginAttempts > 0 && c.LoginWindow <= 0 {
		errs = append(errs, errors.New("LOGIN_WINDOW must be positive when LOGIN_ATTEMPTS is set"))
	}
	return errors.Join(errs...)
}
