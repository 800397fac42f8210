// middleware/metrics/middleware.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
)

// Collect records per-request counters and latency for the diagnostics
// listener.
func Collect() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			defer func() {
				endTime := time.Since(startTime)
				if r.URL.Path != "/metrics" {
					code := strconv.Itoa(ww.Status())
					uri := r.URL.Path // path only; avoid cardinality explosion
					method := r.Method

					totalHttpRequestsToUri.WithLabelValues(code, uri, method).Inc()
					totalHttpRequests.WithLabelValues(code, method).Inc()
					responseTime.Observe(endTime.Seconds())
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
