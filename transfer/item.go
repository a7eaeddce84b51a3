package transfer

import "fmt"

// Item is a source value tagged with its position. Index is assigned
// once by the producer and is unique across a run.
type Item struct {
	Index int
	Value float64
}

// Element is the tagged union moved through the channel: either an
// Item or the end-of-stream sentinel. The End flag keeps the sentinel
// structurally disjoint from any legitimate item, including index 0
// with value 0.
type Element struct {
	Item Item
	End  bool
}

// sentinel returns the terminal marker element.
func sentinel() Element {
	return Element{End: true}
}

// Destination holds the consumer's output slots. Each slot starts
// empty and is written at most once. Only the consumer writes to it,
// so no locking is needed.
type Destination struct {
	values []float64
	filled []bool
}

// NewDestination allocates a destination with n empty slots.
func NewDestination(n int) *Destination {
	return &Destination{
		values: make([]float64, n),
		filled: make([]bool, n),
	}
}

// Len returns the number of slots.
func (d *Destination) Len() int { return len(d.values) }

// Set writes value into slot index. Out-of-range indexes and repeated
// writes are rejected; a correct producer never triggers either.
func (d *Destination) Set(index int, value float64) error {
	if index < 0 || index >= len(d.values) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(d.values))
	}
	if d.filled[index] {
		return fmt.Errorf("slot %d written twice", index)
	}
	d.values[index] = value
	d.filled[index] = true
	return nil
}

// Values returns a copy of the destination values. Unfilled slots are
// zero.
func (d *Destination) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)
	return out
}

// Mismatches compares the destination against source elementwise and
// returns the indexes that differ or were never filled.
func (d *Destination) Mismatches(source []float64) []int {
	var bad []int
	for i := range d.values {
		if i >= len(source) || !d.filled[i] || d.values[i] != source[i] {
			bad = append(bad, i)
		}
	}
	return bad
}
