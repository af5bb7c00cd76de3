// Package logger builds the *slog.Logger used across the BFF.
//
// New applies functional options over JSON/INFO defaults. WithEnvironment picks
// text/DEBUG output for development and JSON/INFO elsewhere, tagging records
// with the service name and environment. Context extractors add request-scoped
// attributes such as the request id at log time:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "products listed", logger.Component("catalog"), logger.Count(len(items)))
//
// The attribute helpers keep key names consistent between packages. Helpers
// taking a possibly nil value return an empty attribute, which slog drops.
package logger
