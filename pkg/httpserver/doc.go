// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the supplied context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown bounded by
// Config.ShutdownTimeout. Config carries env tags so it can be embedded in an
// application configuration loaded by pkg/config.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthHandler(log))
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// WithListener serves on an existing listener, which tests use together with
// Ready and Addr to bind an ephemeral port.
//
// # Errors
//
// Listen and serve failures are joined with ErrStart; a shutdown that misses
// its deadline is joined with ErrShutdown. Use errors.Is to tell them apart.
package httpserver
