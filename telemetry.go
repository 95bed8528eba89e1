package lightsource

import "go.opentelemetry.io/otel"

// instrumentationName identifies spans produced by this package.
const instrumentationName = "github.com/lightsourceengine/LightSourceEngine-sub000"

// tracer delegates to the global provider, so a provider installed with
// otel.SetTracerProvider after package init is still honoured. Without one
// spans are no-ops.
var tracer = otel.Tracer(instrumentationName)
