// Package metric provides Prometheus metrics for tokgen.
package metric

import (
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultEntropyAvailPath is the Linux kernel's entropy estimate.
const DefaultEntropyAvailPath = "/proc/sys/kernel/random/entropy_avail"

// Collector reports the kernel entropy pool estimate at scrape time.
// Nothing is emitted when the file is missing (non-Linux hosts).
type Collector struct {
	path string
	desc *prometheus.Desc
}

// NewCollector creates a collector reading path; empty selects
// DefaultEntropyAvailPath.
func NewCollector(path string) *Collector {
	if path == "" {
		path = DefaultEntropyAvailPath
	}
	return &Collector{
		path: path,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "kernel", "entropy_available_bits"),
			"Entropy available in the kernel pool as reported by the OS",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	bits, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, bits)
}
