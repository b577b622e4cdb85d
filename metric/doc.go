// Package metric provides Prometheus instrumentation for the substrate.
//
// A Registry owns a private prometheus.Registry pre-populated with the
// substrate metrics: pulse acceptance/delivery/drop counters and handler
// duration per channel, plus active/released stream counts and release
// notice fan-out counters. Channels and streams are wired to a registry
// through their WithMetrics option; instrumentation is entirely opt-in and
// a nil registry costs nothing on the delivery path.
//
// Applications can register their own collectors alongside the substrate's
// via Registry.Register, with duplicate-name protection, and expose the
// whole registry through promhttp:
//
//	reg := metric.NewRegistry()
//	http.Handle("/metrics", promhttp.HandlerFor(
//	    reg.PrometheusRegistry(), promhttp.HandlerOpts{}))
package metric
