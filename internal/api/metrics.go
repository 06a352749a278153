package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cees_http_requests_total",
		Help: "HTTP requests by method.",
	}, []string{"method"})

	chatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cees_chat_requests_total",
		Help: "AI proxy requests by outcome.",
	}, []string{"outcome"})

	chatUpstreamSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cees_chat_upstream_seconds",
		Help:    "Latency of upstream AI calls.",
		Buckets: prometheus.DefBuckets,
	})

	storeMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cees_store_mutations_total",
		Help: "Entity store mutations by collection and operation.",
	}, []string{"collection", "op"})
)

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues(r.Method).Inc()
		next.ServeHTTP(w, r)
	})
}
