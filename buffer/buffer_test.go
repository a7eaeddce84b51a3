package buffer

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewClampsCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"negative", -3, 1},
		{"zero", 0, 1},
		{"one", 1, 1},
		{"five", 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New[int](tc.capacity)
			if got := b.Cap(); got != tc.want {
				t.Errorf("Cap() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPutGetFIFO(t *testing.T) {
	b := New[int](4)
	for _, v := range []int{9, 7, 5, 3} {
		b.Put(v)
	}
	if got := b.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	for _, want := range []int{9, 7, 5, 3} {
		if got := b.Get(); got != want {
			t.Errorf("Get() = %d, want %d", got, want)
		}
	}
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d after draining, want 0", got)
	}
}

func TestWrapAround(t *testing.T) {
	b := New[string](2)
	b.Put("a")
	b.Put("b")
	if got := b.Get(); got != "a" {
		t.Fatalf("Get() = %q, want %q", got, "a")
	}
	b.Put("c") // tail wraps past the end of the ring
	if got := b.Get(); got != "b" {
		t.Errorf("Get() = %q, want %q", got, "b")
	}
	if got := b.Get(); got != "c" {
		t.Errorf("Get() = %q, want %q", got, "c")
	}
}

func TestPutBlocksWhenFull(t *testing.T) {
	b := New[int](1)
	b.Put(1)

	unblocked := make(chan struct{})
	go func() {
		b.Put(2) // must block until the Get below
		close(unblocked)
	}()

	select {
	case <-unblocked:
		t.Fatal("Put returned while buffer was full")
	case <-time.After(50 * time.Millisecond):
	}

	if got := b.Get(); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}

	select {
	case <-unblocked:
	case <-time.After(2 * time.Second):
		t.Fatal("Put did not unblock after capacity freed")
	}
	if got := b.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestGetBlocksWhenEmpty(t *testing.T) {
	b := New[int](1)

	got := make(chan int)
	go func() {
		got <- b.Get() // must block until the Put below
	}()

	select {
	case v := <-got:
		t.Fatalf("Get returned %d from an empty buffer", v)
	case <-time.After(50 * time.Millisecond):
	}

	b.Put(42)

	select {
	case v := <-got:
		if v != 42 {
			t.Errorf("Get() = %d, want 42", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Get did not unblock after element arrived")
	}
}

func TestSingleProducerSingleConsumer(t *testing.T) {
	const n = 10000
	b := New[int](3)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range n {
			b.Put(i)
		}
	}()

	out := make([]int, 0, n)
	go func() {
		defer wg.Done()
		for range n {
			out = append(out, b.Get())
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("producer/consumer pair did not finish")
	}

	for i, v := range out {
		if v != i {
			t.Fatalf("out[%d] = %d, order not preserved", i, v)
		}
	}
}

func TestLenNeverExceedsCap(t *testing.T) {
	const n = 5000
	b := New[int](7)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range n {
			b.Put(i)
		}
	}()
	go func() {
		defer wg.Done()
		for range n {
			b.Get()
			if l := b.Len(); l < 0 || l > b.Cap() {
				t.Errorf("Len() = %d outside [0, %d]", l, b.Cap())
				return
			}
		}
	}()
	wg.Wait()
}
