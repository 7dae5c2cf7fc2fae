package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "armybook"

// PrometheusRecorder implements Recorder using Prometheus metrics
type PrometheusRecorder struct {
	artifactLookups     *prom.CounterVec
	renderDuration      *prom.HistogramVec
	renderShared        prom.Counter
	artifactStoreErrors prom.Counter
	derivationDuration  *prom.HistogramVec
	skippedRecords      *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		artifactLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_cache_lookups_total",
			Help:      "PDF cache lookups by observed state",
		}, []string{"state"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "pdf_render_duration_seconds",
			Help:      "Duration of upstream PDF renders",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		renderShared: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_render_shared_total",
			Help:      "Requests served by a render started for another caller",
		}),
		artifactStoreErrors: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_cache_store_failures_total",
			Help:      "Rendered PDFs that could not be cached",
		}),
		derivationDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "derivation_duration_seconds",
			Help:      "Duration of pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage", "result"}),
		skippedRecords: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_records_total",
			Help:      "Records quarantined by a pipeline stage",
		}, []string{"stage", "kind"}),
	}
	reg.MustRegister(pr.artifactLookups, pr.renderDuration, pr.renderShared,
		pr.artifactStoreErrors, pr.derivationDuration, pr.skippedRecords)
	return pr
}

func (p *PrometheusRecorder) IncArtifactLookup(state LookupState) {
	if p == nil {
		return
	}
	p.artifactLookups.WithLabelValues(string(state)).Inc()
}

func (p *PrometheusRecorder) ObserveRender(d time.Duration, success bool) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(resultLabel(success)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderShared() {
	if p == nil {
		return
	}
	p.renderShared.Inc()
}

func (p *PrometheusRecorder) IncArtifactStoreFailure() {
	if p == nil {
		return
	}
	p.artifactStoreErrors.Inc()
}

func (p *PrometheusRecorder) ObserveDerivation(stage Stage, d time.Duration, success bool) {
	if p == nil {
		return
	}
	p.derivationDuration.WithLabelValues(string(stage), resultLabel(success)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncSkippedRecords(stage Stage, kind string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.skippedRecords.WithLabelValues(string(stage), kind).Add(float64(n))
}

// HTTPHandler serves the metrics of reg
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
