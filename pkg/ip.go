package pkg

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP returns the address of the client, preferring the X-Real-Ip and
// then the first X-Forwarded-For entry set by the reverse proxy over the
// connection address.
func ClientIP(r *http.Request) (netip.Addr, error) {
	candidate := strings.TrimSpace(r.Header.Get("X-Real-Ip"))
	if candidate == "" {
		forwarded, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		candidate = strings.TrimSpace(forwarded)
	}
	if candidate == "" {
		candidate = r.RemoteAddr
	}

	if addrPort, err := netip.ParseAddrPort(candidate); err == nil {
		return addrPort.Addr().Unmap(), nil
	}
	addr, err := netip.ParseAddr(strings.Trim(candidate, "[]"))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("client ip %q: %w", candidate, err)
	}
	return addr.Unmap(), nil
}

// ReadUserIP is ClientIP as a string, used as the rate limiting key.
func ReadUserIP(r *http.Request) (string, error) {
	addr, err := ClientIP(r)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}
