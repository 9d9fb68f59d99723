package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/osdetect/pkg/logger"
)

// accessLog logs one record per request once the response is written.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.HTTP(r.Method, r.URL.Path, status),
				logger.Duration(time.Since(start)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("client_ip", ClientIP(r)),
			)
		})
	}
}

// recoverer turns a handler panic into a logged internal error response.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "handler panicked",
					logger.Error(fmt.Errorf("panic: %v", rec)),
					slog.String("stack", string(debug.Stack())),
				)
				respondError(w, r, log, ErrInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
