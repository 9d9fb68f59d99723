package api_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/osdetect/internal/api"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:52100",
			expected:   "203.0.113.7",
		},
		{
			name:       "cloudflare wins over forwarded-for",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.178", "X-Forwarded-For": "203.0.113.1"},
			remoteAddr: "10.0.0.1:80",
			expected:   "198.51.100.178",
		},
		{
			name:       "first valid forwarded-for entry",
			headers:    map[string]string{"X-Forwarded-For": "invalid, , 203.0.113.195, 10.0.0.1"},
			remoteAddr: "10.0.0.1:80",
			expected:   "203.0.113.195",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "192.0.2.10"},
			remoteAddr: "10.0.0.1:80",
			expected:   "192.0.2.10",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "ipv4-mapped ipv6 is unmapped",
			headers:    map[string]string{"DO-Connecting-IP": "::ffff:192.0.2.1"},
			remoteAddr: "10.0.0.1:80",
			expected:   "192.0.2.1",
		},
		{
			name:       "bare remote addr",
			remoteAddr: "192.0.2.44",
			expected:   "192.0.2.44",
		},
		{
			name:       "nothing parses",
			headers:    map[string]string{"X-Forwarded-For": "evil.com"},
			remoteAddr: "pipe",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, api.ClientIP(req))
		})
	}
}
