// Package metric provides Prometheus metrics for tokgen.
//
//   - prometheus.go: registry, generation counters, textfile export
//   - collector.go: kernel entropy pool collector (Linux)
//
// tokgen is a short-lived process, so metrics are not served over HTTP;
// they are written in the text exposition format to a file picked up by
// the node_exporter textfile collector.
package metric
