package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/osdetect/pkg/httpserver"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dependency down") }

	tests := []struct {
		name   string
		checks []httpserver.Check
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "ready", checks: []httpserver.Check{ok, ok}, status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "not ready", checks: []httpserver.Check{ok, down}, status: http.StatusServiceUnavailable, body: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.HealthHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
