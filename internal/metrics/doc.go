// Package metrics provides run metrics for the sanitizer.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder registers counters and
// histograms on a registry that WriteTextfile can export in the Prometheus
// text format (for example for the node_exporter textfile collector):
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	s := sanitize.New(cfg).WithRecorder(rec)
//	...
//	metrics.WriteTextfile(path, reg)
package metrics
