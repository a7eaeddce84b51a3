package transfer

import (
	"fmt"

	"github.com/lancemnguyen/dataferry/buffer"
	"github.com/lancemnguyen/dataferry/errors"
)

// consumer drains the channel until it observes the sentinel, writing
// each item into its tagged destination slot. Get blocks while the
// channel is empty.
type consumer struct {
	dest *Destination
	ch   *buffer.Bounded[Element]
	obs  Observer

	// fault records the recovered error, if any. Read only after run
	// returns.
	fault error
}

// run drains the channel to the sentinel. On a fault the consumer logs
// and terminates; the destination may be left partially populated. No
// Get calls happen after the sentinel is observed.
func (c *consumer) run() {
	defer func() {
		if r := recover(); r != nil {
			err := errors.ChannelFault(sideConsumer, fmt.Errorf("%v", r))
			c.fault = err
			c.obs.Fault(sideConsumer, err)
		}
	}()

	for {
		el := c.ch.Get()
		if el.End {
			c.obs.SentinelConsumed()
			return
		}
		if err := c.dest.Set(el.Item.Index, el.Item.Value); err != nil {
			fault := errors.ChannelFault(sideConsumer, err)
			c.fault = fault
			c.obs.Fault(sideConsumer, fault)
			return
		}
		c.obs.ItemConsumed(el.Item, c.ch.Len())
	}
}
