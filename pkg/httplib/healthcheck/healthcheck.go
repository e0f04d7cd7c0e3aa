package healthcheck

import (
	"fmt"
	"net/http"
)

const defaultPath = "/health"

// HealthCheck is the health check handler.
type HealthCheck struct {
	// Path overrides the probe path, defaults to /health.
	Path string
}

// Handler short circuits health check probes before the rest of the stack runs.
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if hc.isHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// isHealthCheckRequest reports whether the request targets the probe path.
func (hc HealthCheck) isHealthCheckRequest(r *http.Request) bool {
	path := hc.Path
	if path == "" {
		path = defaultPath
	}

	return r.Method == http.MethodGet && r.URL.Path == path
}
