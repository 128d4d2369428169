// Package metrics counts generated hypergraphs. Drivers take a Collector;
// the Prometheus implementation can be dumped to a node-exporter textfile
// at the end of a batch run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespaceHypergen = "hypergen"
	subsystemGenerate = "generate"

	LabelMethod = "method"
)

// Collector receives one event per generator call.
type Collector interface {
	HypergraphGenerated(method string, vertices, hyperedges int)
	GenerationFailed(method string)
}

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) HypergraphGenerated(method string, vertices, hyperedges int) {}
func (nc *NoopCollector) GenerationFailed(method string)                            {}

// PrometheusCollector tracks generation counts and realized sizes per method.
type PrometheusCollector struct {
	generated  *prometheus.CounterVec
	failed     *prometheus.CounterVec
	vertices   *prometheus.HistogramVec
	hyperedges *prometheus.HistogramVec
}

// NewPrometheusCollector registers its metrics on reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)
	sizeBuckets := prometheus.ExponentialBuckets(1, 2, 10)
	return &PrometheusCollector{
		generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceHypergen,
			Subsystem: subsystemGenerate,
			Name:      "hypergraphs_total",
			Help:      "number of hypergraphs generated",
		}, []string{LabelMethod}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceHypergen,
			Subsystem: subsystemGenerate,
			Name:      "failures_total",
			Help:      "number of generator calls that returned an error",
		}, []string{LabelMethod}),
		vertices: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespaceHypergen,
			Subsystem: subsystemGenerate,
			Name:      "vertices",
			Help:      "realized vertex count after the finishing passes",
			Buckets:   sizeBuckets,
		}, []string{LabelMethod}),
		hyperedges: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespaceHypergen,
			Subsystem: subsystemGenerate,
			Name:      "hyperedges",
			Help:      "realized hyperedge count after the finishing passes",
			Buckets:   sizeBuckets,
		}, []string{LabelMethod}),
	}
}

func (pc *PrometheusCollector) HypergraphGenerated(method string, vertices, hyperedges int) {
	pc.generated.WithLabelValues(method).Inc()
	pc.vertices.WithLabelValues(method).Observe(float64(vertices))
	pc.hyperedges.WithLabelValues(method).Observe(float64(hyperedges))
}

func (pc *PrometheusCollector) GenerationFailed(method string) {
	pc.failed.WithLabelValues(method).Inc()
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
