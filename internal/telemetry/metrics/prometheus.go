package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, runtime metrics and process collectors.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}

// WriteTextfile dumps everything gathered by g to path, in the format the
// node exporter textfile collector reads. Empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
