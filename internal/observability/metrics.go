package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_rows_loaded_total",
			Help: "Total dataset rows loaded from the source",
		},
	)
	LoadRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_load_retries_total",
			Help: "Total retried page fetches during dataset load",
		},
	)
	ExportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_exports_total",
			Help: "Total spreadsheet exports downloaded",
		},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "HTTP request duration by path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

func init() {
	prometheus.MustRegister(RowsLoaded, LoadRetries, ExportsTotal, RequestDuration)
}

// Handler exposes the metrics endpoint for mounting on an existing mux.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Start serves /metrics on its own port, for the hosted variant where the
// main listener sits behind the login.
func Start(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, mux)
}
