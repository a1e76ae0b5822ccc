// Package requestmeta answers questions about where a request came from.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// Provenance classifies the Origin/Referer evidence of a request.
type Provenance int

const (
	// ProvenanceUnknown means the request carried neither header.
	ProvenanceUnknown Provenance = iota
	ProvenanceSameOrigin
	ProvenanceCrossOrigin
)

// Origin inspects Origin first and Referer second.
func Origin(r *http.Request) Provenance {
	if r == nil {
		return ProvenanceUnknown
	}
	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return ProvenanceUnknown
	}
	if sameOrigin(raw, r) {
		return ProvenanceSameOrigin
	}
	return ProvenanceCrossOrigin
}

// RequireSameOrigin rejects state-changing requests that prove a foreign
// origin. Requests without Origin or Referer pass, as non-browser clients
// send neither.
func RequireSameOrigin(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMutation(r.Method) && Origin(r) == ProvenanceCrossOrigin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func sameOrigin(raw string, r *http.Request) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme == "" || scheme != requestScheme(r) {
		return false
	}
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if host == "" || strings.ToLower(parsed.Hostname()) != host {
		return false
	}
	return portOrDefault(parsed.Port(), scheme) == portOrDefault(port, scheme)
}

func requestScheme(r *http.Request) string {
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}

func portOrDefault(port string, scheme string) string {
	if port != "" {
		return port
	}
	if scheme == "https" {
		return "443"
	}
	return "80"
}
