package transfer

import "github.com/lancemnguyen/dataferry/logger"

// Observer receives diagnostic callbacks as elements move through the
// pipeline. Callbacks run on the producer or consumer goroutine, so
// implementations must be quick and must not call back into the
// channel. queueLen is the channel length sampled just after the
// operation; it is advisory, not a synchronized snapshot.
type Observer interface {
	// ItemProduced fires after the producer enqueues an item.
	ItemProduced(item Item, queueLen int)
	// ItemConsumed fires after the consumer writes an item to the destination.
	ItemConsumed(item Item, queueLen int)
	// SentinelProduced fires after the producer enqueues the terminal marker.
	SentinelProduced()
	// SentinelConsumed fires when the consumer observes the terminal marker.
	SentinelConsumed()
	// Fault fires when a side recovers an internal fault, just before it
	// terminates.
	Fault(side string, err error)
}

// NopObserver discards all callbacks.
type NopObserver struct{}

func (NopObserver) ItemProduced(Item, int) {}
func (NopObserver) ItemConsumed(Item, int) {}
func (NopObserver) SentinelProduced()      {}
func (NopObserver) SentinelConsumed()      {}
func (NopObserver) Fault(string, error)    {}

// LogObserver traces pipeline traffic through a logger: per-element
// events at debug level, sentinel handoff at debug, faults at error.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an observer that logs through log.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log.WithComponent("pipeline")}
}

func (o *LogObserver) ItemProduced(item Item, queueLen int) {
	o.log.Debug().
		Int("index", item.Index).
		Float64("value", item.Value).
		Int("queue_len", queueLen).
		Msg("produced")
}

func (o *LogObserver) ItemConsumed(item Item, queueLen int) {
	o.log.Debug().
		Int("index", item.Index).
		Float64("value", item.Value).
		Int("queue_len", queueLen).
		Msg("consumed")
}

func (o *LogObserver) SentinelProduced() {
	o.log.Debug().Msg("sentinel enqueued")
}

func (o *LogObserver) SentinelConsumed() {
	o.log.Debug().Msg("sentinel observed, stream ended")
}

func (o *LogObserver) Fault(side string, err error) {
	o.log.Error().Err(err).Str("side", side).Msg("pipeline fault")
}

// MultiObserver fans callbacks out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) ItemProduced(item Item, queueLen int) {
	for _, o := range m {
		o.ItemProduced(item, queueLen)
	}
}

func (m MultiObserver) ItemConsumed(item Item, queueLen int) {
	for _, o := range m {
		o.ItemConsumed(item, queueLen)
	}
}

func (m MultiObserver) SentinelProduced() {
	for _, o := range m {
		o.SentinelProduced()
	}
}

func (m MultiObserver) SentinelConsumed() {
	for _, o := range m {
		o.SentinelConsumed()
	}
}

func (m MultiObserver) Fault(side string, err error) {
	for _, o := range m {
		o.Fault(side, err)
	}
}
