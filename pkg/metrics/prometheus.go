package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RoutesScanned    prometheus.Counter
	QueriesSkipped   prometheus.Counter
	DealsFound       prometheus.Counter
	DigestsSent      prometheus.Counter
	ScanDuration     prometheus.Histogram
	ProviderRequests *prometheus.CounterVec
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RoutesScanned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routes_scanned_total",
			Help:      "The total number of route/date queries scanned",
		}),
		QueriesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_skipped_total",
			Help:      "The total number of provider queries skipped after failures",
		}),
		DealsFound: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deals_found_total",
			Help:      "The total number of below-trend fares detected",
		}),
		DigestsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digests_sent_total",
			Help:      "The total number of deal digest emails sent",
		}),
		ScanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time taken to complete one scan cycle",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		ProviderRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "The total number of upstream search requests",
		}, []string{"status"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
