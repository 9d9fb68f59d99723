// Package logger builds log/slog loggers for osdetect binaries.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout) and wraps the handler so that attributes can be pulled from
// the request context on every call:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "osdetect"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(api.RequestIDExtractor),
//	)
//
// Configuration usually arrives as strings; ParseLevel and ParseFormat turn
// them into option values and report ErrInvalidLevel or ErrInvalidFormat.
//
// The attr helpers (Error, Component, Source, HTTP ...) keep attribute keys
// consistent across packages.
package logger
