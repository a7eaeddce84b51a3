package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestMeterAndTracerAvailableWithoutSetup(t *testing.T) {
	// Before Setup the globals are otel's no-op providers; instruments
	// must still be creatable so observers work with telemetry disabled.
	m := Meter()
	counter, err := m.Int64Counter("test.counter")
	if err != nil {
		t.Fatal(err)
	}
	counter.Add(context.Background(), 1)

	ctx, span := StartSpan(context.Background(), "test", attribute.Int("n", 1))
	if ctx == nil {
		t.Fatal("StartSpan returned nil context")
	}
	span.End()
}
