package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs each request once it is served. htmx requests carry the
// id of the element they are about to swap, which is logged as the target.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			fields := log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
			}
			if r.Header.Get("HX-Request") == "true" {
				fields["hx_target"] = r.Header.Get("HX-Target")
			}
			entry := log.WithFields(fields)
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn("request served with error status")
				return
			}
			entry.Debug("request served")
		})
	}
}
