package stats

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	QueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "abfahrtbot_queries_total",
		Help: "Total journey queries handled.",
	})

	QueryFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "abfahrtbot_query_failures_total",
		Help: "Failed journey queries by pipeline stage.",
	}, []string{"stage"})

	QueryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "abfahrtbot_query_duration_seconds",
		Help:    "Duration of the full query pipeline.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	RepliesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "abfahrtbot_replies_published_total",
		Help: "Total speech replies published to the speech queue.",
	})
)

func init() {
	registry.MustRegister(QueriesTotal, QueryFailures, QueryDuration, RepliesPublished)
}

// Handler exposes the collectors for the stats server /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
