// Package metrics provides the Prometheus registry and exposition handler
// for the CurseForge client. All metrics are defined in their respective
// packages (client, decode, pagination, checkpoint) to maintain modularity
// and avoid circular dependencies.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the counterpart of Registry that Handler exposes.
var Gatherer = prometheus.DefaultGatherer

// Handler returns the /metrics exposition handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// NewServer returns an HTTP server exposing Handler at /metrics.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - cf_requests_total{endpoint, status} (Counter): Requests by route template and HTTP status ("network_error" on transport failure)
//   - cf_request_duration_seconds{endpoint} (Histogram): Request duration by route template
//   - cf_errors_total{class} (Counter): Errors by class (network, client, server, decode)
//
// Decode Metrics (pkg/decode):
//   - cf_decode_errors_total{mode} (Counter): Payloads that failed to decode, by compatibility mode
//   - cf_decode_residual_fields_total (Counter): Unknown members captured into Extra (lenient mode)
//   - cf_decode_unknown_variants_total (Counter): Unknown enum values mapped to UnknownVariant (lenient mode)
//
// Pagination Metrics (pkg/pagination):
//   - cf_pagination_pages_total{endpoint} (Counter): Pages fetched
//   - cf_pagination_items_total{endpoint} (Counter): Records received
//   - cf_pagination_protocol_violations_total{kind} (Counter): Descriptors contradicting their request (offset_mismatch, count_mismatch)
//
// Checkpoint Metrics (pkg/checkpoint):
//   - cf_checkpoint_operations_total{operation, result} (Counter): Save, load and delete calls by result (ok, miss, error)
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(cf_errors_total[5m])
//
//   # Schema Drift (lenient mode)
//   rate(cf_decode_residual_fields_total[1h]) > 0
//
//   # Records per Page
//   rate(cf_pagination_items_total[5m]) / rate(cf_pagination_pages_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(cf_request_duration_seconds_bucket[5m]))
