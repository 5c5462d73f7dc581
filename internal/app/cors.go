package app

import (
	"net/url"
	"strings"
)

// allowOrigins builds the CORS origin predicate from the configured
// allowed_origins patterns. A pattern matches against the origin's
// host[:port] form: exact, "*.domain" for any subdomain, "host:*" for any
// port. Matching is case-insensitive.
func allowOrigins(patterns []string) func(origin string) bool {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return func(origin string) bool {
		host := strings.ToLower(origin)
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			host = strings.ToLower(u.Host)
		}
		for _, pattern := range lowered {
			if originMatches(pattern, host) {
				return true
			}
		}
		return false
	}
}

func originMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
