// Package stream provides the two reactive building blocks the app
// demonstrates: cold, per-collector sequences and hot, shared latest-value
// broadcasts.
package stream

import "sync"

// Cold is a stream that runs its producer once per collector. Collectors
// never share emissions: each Collect call replays the sequence from the
// start.
type Cold[T any] struct {
	produce func(emit func(T))
}

// NewCold wraps a producer. The producer runs synchronously inside Collect
// and may emit any number of values.
func NewCold[T any](produce func(emit func(T))) *Cold[T] {
	return &Cold[T]{produce: produce}
}

// Collect runs the producer, passing every emitted value to fn.
func (c *Cold[T]) Collect(fn func(T)) {
	if c.produce == nil {
		return
	}
	c.produce(fn)
}

// Latest is a hot latest-value broadcast. Publishing replaces the current
// value and notifies every subscriber; a new subscriber receives the current
// value immediately. Slow subscribers are conflated to the newest value
// rather than blocking the publisher.
type Latest[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	nextID  int
	closed  bool
}

// NewLatest creates a broadcast seeded with an initial value.
func NewLatest[T any](initial T) *Latest[T] {
	return &Latest[T]{
		current: initial,
		subs:    make(map[int]chan T),
	}
}

// Value returns the most recently published value.
func (l *Latest[T]) Value() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Subscribe returns a channel that yields the current value immediately and
// every published value afterwards, plus a cancel func that stops delivery
// and closes the channel. Cancel is safe to call more than once.
func (l *Latest[T]) Subscribe() (<-chan T, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan T, 1)
	if l.closed {
		close(ch)
		return ch, func() {}
	}

	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	ch <- l.current

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if sub, ok := l.subs[id]; ok {
				delete(l.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish replaces the current value and notifies all subscribers. After
// Close, Publish is a no-op.
func (l *Latest[T]) Publish(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.current = v
	for _, ch := range l.subs {
		// Conflate: drop the undelivered value so the buffer always holds
		// the newest one.
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Close terminates the broadcast and closes all subscriber channels.
// Pending buffered values are still delivered before the close is observed.
func (l *Latest[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
}
