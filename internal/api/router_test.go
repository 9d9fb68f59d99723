package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrymomot/osdetect/internal/api"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetector struct {
	info  osinfo.OperatingSystem
	err   error
	calls atomic.Int32
}

func (d *stubDetector) Current(context.Context) (osinfo.OperatingSystem, error) {
	d.calls.Add(1)
	return d.info, d.err
}

type panickingDetector struct{ value any }

func (d panickingDetector) Current(context.Context) (osinfo.OperatingSystem, error) {
	panic(d.value)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newRouter(t *testing.T, d api.Detector) http.Handler {
	t.Helper()
	if d == nil {
		d = &stubDetector{info: osinfo.Classify("Windows 10", "10.0.14393", "amd64")}
	}
	return api.NewRouter(api.Options{Detector: d, CacheSize: 8})
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec, _ := do(t, newRouter(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestClassifyQuery(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	t.Run("classifies", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/classify?name=Windows+10&version=10.0&arch=amd64", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, env.Error)

		var got osinfo.Summary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		var raw map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &raw))

		assert.Equal(t, "windows", raw["family"])
		assert.Equal(t, "windows_10", got.Subtype)
		assert.Equal(t, "supported", raw["support"])
		assert.Equal(t, "amd64", raw["architecture"])
		assert.Equal(t, "10.0", got.RawVersion)
		assert.True(t, got.Desktop)
		assert.Equal(t, "Windows 10 (10.0) amd64", got.Display)

		assert.NotEmpty(t, env.Meta.RequestID)
		assert.Equal(t, rec.Header().Get(api.RequestIDHeader), env.Meta.RequestID)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/classify?version=10", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "missing_name", env.Error.Code)
		assert.Empty(t, env.Data)
	})

	t.Run("unknown family", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/classify?name=Haiku", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &raw))
		assert.Equal(t, "unknown", raw["family"])
		assert.Equal(t, "unknown", raw["support"])
		assert.NotContains(t, raw, "subtype")
	})
}

func TestClassifyBatch(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	t.Run("classifies in order", func(t *testing.T) {
		t.Parallel()
		body := `{"items":[{"name":"Ubuntu 16.04","arch":"x86_64"},{"name":"Android 7.0","version":"7.0"},{"name":"Ubuntu 16.04","arch":"x86_64"}]}`
		rec, env := do(t, h, http.MethodPost, "/v1/os/classify", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got []osinfo.Summary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 3)
		assert.Equal(t, "ubuntu_xenialXerus", got[0].Subtype)
		assert.True(t, got[0].Desktop)
		assert.Equal(t, got[0], got[2])
		assert.Equal(t, "Android 7.0", got[1].RawName)
	})

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{name: "malformed json", body: `{"items":[`, status: http.StatusBadRequest, code: "invalid_json"},
		{name: "empty body", body: "", status: http.StatusBadRequest, code: "invalid_json"},
		{name: "no items", body: `{"items":[]}`, status: http.StatusUnprocessableEntity, code: "invalid_batch"},
		{name: "too many items", body: batchOf(api.MaxBatchItems + 1), status: http.StatusUnprocessableEntity, code: "invalid_batch"},
		{name: "item without name", body: `{"items":[{"name":"Linux"},{"version":"1"}]}`, status: http.StatusUnprocessableEntity, code: "invalid_batch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodPost, "/v1/os/classify", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}

	t.Run("batch at the limit", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodPost, "/v1/os/classify", batchOf(api.MaxBatchItems))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func batchOf(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"name":"Windows %d"}`, i)
	}
	return `{"items":[` + strings.Join(items, ",") + `]}`
}

func TestClassifyUserAgent(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	const sierra = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/603.3.8 (KHTML, like Gecko) Version/10.1.2 Safari/603.3.8"

	decode := func(t *testing.T, env envelope) api.UserAgentResult {
		t.Helper()
		var got api.UserAgentResult
		require.NoError(t, json.Unmarshal(env.Data, &got))
		return got
	}

	t.Run("query parameter", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/useragent?ua="+url.QueryEscape(sierra), "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decode(t, env)
		assert.Equal(t, osinfo.Identity{Name: "Mac OS X", Version: "10.12.6", Architecture: "x86_64"}, got.Identity)
		assert.Equal(t, "sierra", got.OS.Subtype)
		assert.Equal(t, "10.12.6", got.OS.RawVersion)
	})

	t.Run("request header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/os/useragent", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 7.0; SM-G930V Build/NRD90M) AppleWebKit/537.36")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		got := decode(t, env)
		assert.Equal(t, "Android 7.0", got.Identity.Name)
		assert.Equal(t, "nougat", got.OS.Subtype)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/useragent", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "missing_user_agent", env.Error.Code)
	})

	t.Run("unrecognized", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/useragent?ua=curl%2F8.4.0", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unrecognized_user_agent", env.Error.Code)
	})
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	t.Run("detected", func(t *testing.T) {
		t.Parallel()
		d := &stubDetector{info: osinfo.Classify("Mac OS X 10.12", "10.12.6", "x86_64")}
		rec, env := do(t, newRouter(t, d), http.MethodGet, "/v1/os/current", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got osinfo.Summary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Mac OS X 10.12", got.RawName)
		assert.False(t, got.Desktop)
		assert.EqualValues(t, 1, d.calls.Load())
	})

	t.Run("detection failure", func(t *testing.T) {
		t.Parallel()
		d := &stubDetector{err: errors.New("no host info")}
		rec, env := do(t, newRouter(t, d), http.MethodGet, "/v1/os/current", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "detection_failed", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "no host info")
	})

	t.Run("handler panic", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, newRouter(t, panickingDetector{value: "boom"}), http.MethodGet, "/v1/os/current", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "internal_error", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "boom")
		assert.Empty(t, env.Data)
		assert.NotEmpty(t, env.Meta.RequestID)
		assert.Equal(t, rec.Header().Get(api.RequestIDHeader), env.Meta.RequestID)
	})

	t.Run("aborted handler keeps panicking", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, panickingDetector{value: http.ErrAbortHandler})
		req := httptest.NewRequest(http.MethodGet, "/v1/os/current", nil)
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), req)
		})
	})
}

func TestRules(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/rules", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, len(osinfo.AllRules()))
	})

	t.Run("family", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/rules/android", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, len(osinfo.Rules(osinfo.FamilyAndroid)))
		assert.Equal(t, "android", got[0]["family"])
		assert.Equal(t, "alpha", got[0]["subtype"])
		assert.EqualValues(t, 1, got[0]["api_level"])
	})

	t.Run("unknown family has no rules", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/rules/unknown", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("unrecognised family", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/v1/os/rules/beos", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_family", env.Error.Code)
	})
}

func TestRoutingErrors(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	rec, env := do(t, h, http.MethodGet, "/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, env = do(t, h, http.MethodDelete, "/v1/os/classify", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestNewRouterRequiresDetector(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { api.NewRouter(api.Options{}) })
}
