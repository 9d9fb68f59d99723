package httpserver

import "errors"

var (
	// ErrStart indicates that the server could not start or stopped serving
	// unexpectedly.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown indicates that graceful shutdown did not complete.
	ErrShutdown = errors.New("httpserver: failed to shut down gracefully")
	// ErrAlreadyRunning is returned by Run on a server that is already serving.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
