package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus collectors for the service.
var Metrics = struct {
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	UpstreamDuration *prometheus.HistogramVec
	ItemsSynced      prometheus.Counter
	AnswerFallbacks  prometheus.Counter
}{}

// Helpers below are nil-safe so service code instrumented with them can run
// under test without Init having been called.

func IncCacheHit() {
	if Metrics.CacheHits != nil {
		Metrics.CacheHits.Inc()
	}
}

func IncCacheMiss() {
	if Metrics.CacheMisses != nil {
		Metrics.CacheMisses.Inc()
	}
}

func ObserveUpstream(collaborator string, seconds float64) {
	if Metrics.UpstreamDuration != nil {
		Metrics.UpstreamDuration.WithLabelValues(collaborator).Observe(seconds)
	}
}

func AddItemsSynced(n int) {
	if Metrics.ItemsSynced != nil {
		Metrics.ItemsSynced.Add(float64(n))
	}
}

func IncAnswerFallback() {
	if Metrics.AnswerFallbacks != nil {
		Metrics.AnswerFallbacks.Inc()
	}
}

// Init registers all Prometheus metrics. Call once at startup.
func Init() {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentpulse_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "contentpulse_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contentpulse_cache_hits_total",
			Help: "Total result cache hits.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contentpulse_cache_misses_total",
			Help: "Total result cache misses (cold or expired).",
		},
	)

	Metrics.UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentpulse_upstream_request_duration_seconds",
			Help:    "Duration of calls to external collaborators.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collaborator"},
	)

	Metrics.ItemsSynced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contentpulse_items_synced_total",
			Help: "Total new items written to the table store.",
		},
	)

	Metrics.AnswerFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contentpulse_answer_fallbacks_total",
			Help: "Chat answers served by the deterministic generator after an answering-service failure.",
		},
	)

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.CacheHits,
		Metrics.CacheMisses,
		Metrics.UpstreamDuration,
		Metrics.ItemsSynced,
		Metrics.AnswerFallbacks,
	)
}
