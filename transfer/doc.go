// Package transfer implements a single-producer/single-consumer
// pipeline that moves a fixed sequence of numeric values from a source
// to a destination through a bounded blocking buffer.
//
// The producer walks the source once in index order, tags each value
// with its position, and pushes it into the channel; the channel's
// fixed capacity is the backpressure mechanism. After the last value
// the producer pushes exactly one terminal sentinel. The consumer
// drains the channel until it observes the sentinel, writing each item
// into its tagged slot in the destination. The channel's FIFO property
// guarantees the consumer sees items in ascending index order and the
// sentinel strictly last.
//
// A Runner sizes the channel (capacity max(1, N/2)), starts both
// goroutines, performs a full join, and validates the destination
// against the source elementwise.
//
// Faults inside the producer or consumer are recovered, logged, and
// terminate only that side. The pipeline has no cancellation or
// timeout: if the producer dies before emitting the sentinel, the
// consumer blocks forever and so does the join. That fail-silent-hang
// behavior is deliberate; callers who cannot accept it must impose
// their own deadline around Runner.Run.
package transfer
