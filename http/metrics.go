package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bank-documents/domain"
)

const (
	metricPrefix = "bankdocs_"

	resultSuccess = "success"
	resultError   = "error"

	labelUnknown = "unknown"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	documentsTotal  *prometheus.CounterVec
	loanQuotesTotal *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "documents_generated_total",
				Help: "Total document generation requests by kind, category and result",
			},
			[]string{"kind", "category", "result"},
		),
		loanQuotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "loan_quotes_total",
				Help: "Total loan quote requests by result",
			},
			[]string{"result"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "code"},
		),
	}
	m.registry.MustRegister(m.documentsTotal, m.loanQuotesTotal, m.requestLatency)
	return m
}

// Handler exposes the collectors for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveDocument(kind domain.DocumentKind, category domain.ClientCategory, err error) {
	if m == nil {
		return
	}
	kindLabel, categoryLabel := labelUnknown, labelUnknown
	if _, ok := domain.ParseDocumentKind(string(kind)); ok {
		kindLabel = string(kind)
	}
	if _, ok := domain.ParseClientCategory(string(category)); ok {
		categoryLabel = string(category)
	}
	m.documentsTotal.WithLabelValues(kindLabel, categoryLabel, resultLabel(err)).Inc()
}

func (m *Metrics) ObserveLoanQuote(err error) {
	if m == nil {
		return
	}
	m.loanQuotesTotal.WithLabelValues(resultLabel(err)).Inc()
}

// Instrument records the latency of every request served by next.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requestLatency.
			WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
