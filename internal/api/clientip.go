package api

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// forwardingHeaders are consulted in order before RemoteAddr.
// X-Forwarded-For may carry a list; its first valid address wins.
var forwardingHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// ClientIP returns the normalized address of the caller, preferring proxy
// headers over the connection's remote address. It returns "" when nothing
// parses.
func ClientIP(r *http.Request) string {
	for _, h := range forwardingHeaders {
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := normalizeIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return normalizeIP(host)
}

func normalizeIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || addr.Zone() != "" {
		return ""
	}
	return addr.Unmap().String()
}
