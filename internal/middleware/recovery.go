package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/ironlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// htmx drops non-2xx responses, so a panic during an htmx request is answered
// with an out-of-band toast instead of a bare 500.
const panicToast = `<div id="toast" hx-swap-oob="true" class="show error">Something went wrong, try again.</div>`

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
				}).Errorf("panic serving request: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				if req.Header.Get("HX-Request") == "true" {
					respWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
					respWriter.Header().Set("HX-Reswap", "none")
					respWriter.WriteHeader(http.StatusOK)
					_, _ = respWriter.Write([]byte(panicToast))
					return
				}
				http.Error(respWriter, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
