// Package metric provides Prometheus metrics for tokgen.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/tokgen-go/pkg/securerand"
)

const namespace = "tokgen"

// Operation results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	BytesGenerated  prometheus.Counter
	EntropyFailures prometheus.Counter
	ShortReadBytes  prometheus.Counter
	Operations      *prometheus.CounterVec
	BuildInfo       *prometheus.GaugeVec
}

// NewRegistry creates a registry with all tokgen metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		BytesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entropy",
			Name:      "bytes_generated_total",
			Help:      "Random bytes successfully read from the entropy source",
		}),
		EntropyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entropy",
			Name:      "failures_total",
			Help:      "Reads that could not fill the requested buffer",
		}),
		ShortReadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entropy",
			Name:      "short_read_bytes_total",
			Help:      "Bytes obtained by failed reads and discarded",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Generation operations by kind and result",
		}, []string{"operation", "result"}),
		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information, value is always 1",
		}, []string{"version", "commit"}),
	}

	r.reg.MustRegister(
		r.BytesGenerated,
		r.EntropyFailures,
		r.ShortReadBytes,
		r.Operations,
		r.BuildInfo,
	)
	return r
}

// Register adds an extra collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.reg.Register(c)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// SetBuildInfo records the running version.
func (r *Registry) SetBuildInfo(version, commit string) {
	r.BuildInfo.WithLabelValues(version, commit).Set(1)
}

// ObserveRead implements securerand.Observer.
func (r *Registry) ObserveRead(n int) {
	r.BytesGenerated.Add(float64(n))
}

// ObserveFailure implements securerand.Observer.
func (r *Registry) ObserveFailure(err *securerand.EntropySourceError) {
	r.EntropyFailures.Inc()
	r.ShortReadBytes.Add(float64(err.Read))
}

// ObserveOperation counts one generation operation.
func (r *Registry) ObserveOperation(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	r.Operations.WithLabelValues(operation, result).Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

var _ securerand.Observer = (*Registry)(nil)
