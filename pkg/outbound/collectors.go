package outbound

import "github.com/prometheus/client_golang/prometheus"

var (
	outboundDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outbound_request_seconds",
			Help:    "outbound http request time.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	outboundRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "outbound_requests_total", Help: "outbound http requests by code, and method"},
		[]string{"code", "method"},
	)

	clientCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "outbound_client_cache_hits_total", Help: "outbound client cache hits"},
	)

	clientCacheInserts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "outbound_client_cache_inserts_total", Help: "outbound client cache inserts, including evictions"},
	)
)

func init() {
	prometheus.MustRegister(
		outboundDuration,
		outboundRequests,
		clientCacheHits,
		clientCacheInserts,
	)
}
