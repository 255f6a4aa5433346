package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Engine metrics
	EngineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wharf_engine_requests_total",
			Help: "Total number of engine API requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	// Listing metrics
	ListRecordsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wharf_list_records_skipped_total",
			Help: "Total number of container records dropped during list assembly",
		},
	)

	ModulesListed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wharf_modules_listed",
			Help: "Number of module descriptors returned by the most recent list",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(EngineRequestsTotal)
	prometheus.MustRegister(ListRecordsSkipped)
	prometheus.MustRegister(ModulesListed)
}

// RecordEngineRequest counts one engine API request for the given operation.
func RecordEngineRequest(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	EngineRequestsTotal.WithLabelValues(operation, status).Inc()
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// serveMux routes the metrics endpoint.
func serveMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return mux
}

// Serve exposes the metrics endpoint on addr, blocking until the server
// fails.
func Serve(addr string) error {
	return http.ListenAndServe(addr, serveMux())
}
