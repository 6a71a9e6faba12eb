package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	generateDuration prom.Histogram
	outcomes         *prom.CounterVec
	documents        *prom.CounterVec
	indexedPosts     prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "postindex",
			Name:      "generate_duration_seconds",
			Help:      "Duration of index generation runs",
			Buckets:   prom.DefBuckets,
		})
		pr.outcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "postindex",
			Name:      "generate_outcomes_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"})
		pr.documents = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "postindex",
			Name:      "documents_total",
			Help:      "Source documents seen by result",
		}, []string{"result"})
		pr.indexedPosts = prom.NewGauge(prom.GaugeOpts{
			Namespace: "postindex",
			Name:      "indexed_posts",
			Help:      "Number of posts in the last written index",
		})
		reg.MustRegister(pr.generateDuration, pr.outcomes, pr.documents, pr.indexedPosts)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	if p == nil || p.generateDuration == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerateOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncDocumentResult(result DocumentLabel, n int) {
	if p == nil || p.documents == nil || n <= 0 {
		return
	}
	p.documents.WithLabelValues(string(result)).Add(float64(n))
}

func (p *PrometheusRecorder) SetIndexedPosts(n int) {
	if p == nil || p.indexedPosts == nil {
		return
	}
	p.indexedPosts.Set(float64(n))
}
