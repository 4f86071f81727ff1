package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer is used for spans around upstream Intervals.icu calls.
// Without an SDK trace provider installed it is a no-op.
var GlobalTracer trace.Tracer = otel.Tracer("intervals-icu-mcp")
