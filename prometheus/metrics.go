package prometheus

import (
	"tenant-ledger/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Ledger entity metrics
	TenantOperationsCounter   prometheus.CounterVec
	PaymentOperationsCounter  prometheus.CounterVec
	DocumentOperationsCounter prometheus.CounterVec

	// Attachment store metrics
	AttachmentStoresCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Tenant metrics
	TenantOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_operations_total",
			Help: "Total number of tenant operations",
		},
		[]string{"operation"},
	)

	// Payment metrics
	PaymentOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_payment_operations_total",
			Help: "Total number of rent payment operations",
		},
		[]string{"operation"},
	)

	// Document metrics
	DocumentOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_document_operations_total",
			Help: "Total number of document operations",
		},
		[]string{"operation"},
	)

	// Attachment metrics
	AttachmentStoresCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_attachment_stores_total",
			Help: "Total number of attachment store operations",
		},
		[]string{"category"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordTenantOperation increments the counter for tenant operations
func RecordTenantOperation(operation string) {
	TenantOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordPaymentOperation increments the counter for rent payment operations
func RecordPaymentOperation(operation string) {
	PaymentOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordDocumentOperation increments the counter for document operations
func RecordDocumentOperation(operation string) {
	DocumentOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAttachmentStore increments the counter for attachment store operations
func RecordAttachmentStore(category string) {
	AttachmentStoresCounter.WithLabelValues(category).Inc()
}
