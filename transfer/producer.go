package transfer

import (
	"fmt"

	"github.com/lancemnguyen/dataferry/buffer"
	"github.com/lancemnguyen/dataferry/errors"
)

const (
	sideProducer = "producer"
	sideConsumer = "consumer"
)

// producer walks the source once in index order and pushes tagged
// items into the channel, followed by exactly one sentinel. Put blocks
// while the channel is full; that is the backpressure mechanism.
type producer struct {
	source []float64
	ch     *buffer.Bounded[Element]
	obs    Observer

	// fault records the recovered error, if any. Read only after run
	// returns.
	fault error
}

// run performs the single production pass. A recovered fault
// terminates the producer without emitting a synthetic sentinel, so
// the consumer may block forever; see the package comment.
func (p *producer) run() {
	defer func() {
		if r := recover(); r != nil {
			err := errors.ChannelFault(sideProducer, fmt.Errorf("%v", r))
			p.fault = err
			p.obs.Fault(sideProducer, err)
		}
	}()

	for i, v := range p.source {
		p.ch.Put(Element{Item: Item{Index: i, Value: v}})
		p.obs.ItemProduced(Item{Index: i, Value: v}, p.ch.Len())
	}

	// An empty source still yields exactly one sentinel.
	p.ch.Put(sentinel())
	p.obs.SentinelProduced()
}
