package tracing

import (
	"fmt"

	// registers the honeycomb endpoint/headers with otelconfig, driven by HONEYCOMB_API_KEY
	_ "github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

// GlobalTracer is a no-op until Setup (or a test) registers a TracerProvider globally.
var GlobalTracer = otel.Tracer("blogsandposts")

// Setup registers the global OpenTelemetry SDK. Exporter settings come from the
// environment (OTEL_EXPORTER_OTLP_*, HONEYCOMB_API_KEY). The returned func flushes
// and shuts down the provider; it is a no-op when tracing is disabled.
func Setup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		log.Debugln("tracing disabled")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	log.Debugf("tracing enabled for service %s", serviceName)
	return otelShutdown, nil
}
