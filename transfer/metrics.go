package transfer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics is an Observer that records pipeline traffic as OpenTelemetry
// metrics: per-side item counters, a queue-depth distribution sampled
// at every handoff, a fault counter, and a run-duration histogram.
type Metrics struct {
	itemsProduced metric.Int64Counter
	itemsConsumed metric.Int64Counter
	queueDepth    metric.Int64Histogram
	faults        metric.Int64Counter
	runDuration   metric.Float64Histogram
}

// NewMetrics builds the pipeline instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.itemsProduced, err = meter.Int64Counter("transfer.items.produced",
		metric.WithDescription("Items enqueued by the producer")); err != nil {
		return nil, fmt.Errorf("creating produced counter: %w", err)
	}
	if m.itemsConsumed, err = meter.Int64Counter("transfer.items.consumed",
		metric.WithDescription("Items written to the destination by the consumer")); err != nil {
		return nil, fmt.Errorf("creating consumed counter: %w", err)
	}
	if m.queueDepth, err = meter.Int64Histogram("transfer.queue.depth",
		metric.WithDescription("Channel length sampled after each insert/remove")); err != nil {
		return nil, fmt.Errorf("creating queue depth histogram: %w", err)
	}
	if m.faults, err = meter.Int64Counter("transfer.faults",
		metric.WithDescription("Recovered producer/consumer faults")); err != nil {
		return nil, fmt.Errorf("creating fault counter: %w", err)
	}
	if m.runDuration, err = meter.Float64Histogram("transfer.run.duration",
		metric.WithDescription("Wall-clock duration of completed runs"),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("creating run duration histogram: %w", err)
	}
	return m, nil
}

func (m *Metrics) ItemProduced(_ Item, queueLen int) {
	ctx := context.Background()
	m.itemsProduced.Add(ctx, 1)
	m.queueDepth.Record(ctx, int64(queueLen), metric.WithAttributes(sideAttr(sideProducer)))
}

func (m *Metrics) ItemConsumed(_ Item, queueLen int) {
	ctx := context.Background()
	m.itemsConsumed.Add(ctx, 1)
	m.queueDepth.Record(ctx, int64(queueLen), metric.WithAttributes(sideAttr(sideConsumer)))
}

func (m *Metrics) SentinelProduced() {}
func (m *Metrics) SentinelConsumed() {}

func (m *Metrics) Fault(side string, _ error) {
	m.faults.Add(context.Background(), 1, metric.WithAttributes(sideAttr(side)))
}

// RecordRun records the duration and outcome of a completed run.
func (m *Metrics) RecordRun(ctx context.Context, report *Report) {
	m.runDuration.Record(ctx, report.Elapsed.Seconds(), metric.WithAttributes(
		attribute.Bool("passed", report.Passed),
		attribute.Int("size", report.Size),
	))
}

func sideAttr(side string) attribute.KeyValue {
	return attribute.String("side", side)
}
