// Package telemetry holds the tracing and logging hooks shared by the
// algorithm packages. Library code only reads the global OpenTelemetry
// provider (a no-op until Setup or another application hook registers one),
// and loggers default to discarding output.
package telemetry

import (
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationPrefix = "github.com/katalvlaran/gridwalk/"

// Tracer returns a named tracer for the given component.
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(instrumentationPrefix + component)
}

// DiscardLogger returns a logrus logger that writes nowhere.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
