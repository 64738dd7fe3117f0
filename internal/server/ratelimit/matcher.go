package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited marks endpoints that bypass rate limiting.
var unlimited = EndpointConfig{Path: "/health", Method: http.MethodGet}

// MatchEndpoint returns the configuration governing path and method, or nil
// when the default limit applies. Exact matches win over prefix matches; a
// configured path ending in "/" matches everything beneath it.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && (method == http.MethodGet || method == http.MethodHead) {
		ec := unlimited
		return &ec
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}
