// Package httpserver runs the BFF HTTP server with graceful shutdown and
// exposes liveness and readiness probes.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, SIGINT or SIGTERM arrives, or Shutdown is
// called. In-flight requests get ShutdownTimeout to finish.
package httpserver
