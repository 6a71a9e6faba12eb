// Package metrics provides observability hooks for index generation.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks at call sites:
//
//	gen := index.NewGenerator(src, out) // NoopRecorder
//	gen := index.NewGenerator(src, out, index.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The watch command activates the Prometheus implementation when a metrics
// address is configured and serves it through HTTPHandler.
package metrics
