// Package config loads typed configuration from environment variables.
//
// The first Load call reads a .env file from the working directory when one
// exists; real environment variables always win over it. Each struct type is
// parsed once with github.com/caarlos0/env and cached, so packages can load
// their own section (httpserver.Config, redis.Config, ...) wherever they need
// it:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Types implementing Validator are checked right after parsing.
package config
