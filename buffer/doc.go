// Package buffer provides a fixed-capacity blocking FIFO buffer.
//
// Bounded is the synchronization primitive the transfer pipeline rests
// on: Put blocks while the buffer is full, Get blocks while it is
// empty, and elements come out in exactly the order they went in. The
// buffer is built on one mutex and two condition variables (notFull,
// notEmpty) rather than a raw channel so that its current length is
// observable, which the pipeline uses for queue-depth reporting.
//
// Bounded is safe for concurrent use. The transfer pipeline drives it
// with exactly one producing and one consuming goroutine, but nothing
// in the implementation assumes that.
package buffer
