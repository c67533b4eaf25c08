package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates a private registry with the runtime collectors, a
// version info gauge and any extra collectors (e.g. the pgx pool one).
func SetupPrometheus(versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	if versionInfo == "" {
		versionInfo = "unknown"
	}
	versionGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "ironlog",
		Name:        "version_info",
		Help:        "Version of the running ironlog web service, always 1.",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	versionGauge.Set(1)

	promRegistry.MustRegister(
		versionGauge,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.GoRuntimeMetricsRule{
				Matcher: regexp.MustCompile(`^/sched/latencies:seconds`),
			}),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}
