// Package handoff provides a single-use, single-slot channel for passing
// one value from a callback to a goroutine waiting on it.
package handoff

import (
	"errors"
	"sync"
)

// ErrDropped is returned by Recv when the sender was closed without sending.
var ErrDropped = errors.New("sender dropped without sending")

type slot[T any] struct {
	ch   chan T
	once sync.Once
}

// Sender is the producing half. At most one of Send or Close takes effect.
type Sender[T any] struct {
	s *slot[T]
}

// Receiver is the consuming half.
type Receiver[T any] struct {
	s *slot[T]
}

// New returns a connected Sender/Receiver pair. Pairs are never reused.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &slot[T]{ch: make(chan T, 1)}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

// Send delivers v without blocking. It reports whether v was delivered;
// false means the pair was already used.
func (tx *Sender[T]) Send(v T) bool {
	sent := false
	tx.s.once.Do(func() {
		tx.s.ch <- v
		close(tx.s.ch)
		sent = true
	})
	return sent
}

// Close drops the sender. If nothing was sent, the waiting Recv returns
// ErrDropped. Calling Close after Send is a no-op.
func (tx *Sender[T]) Close() bool {
	closed := false
	tx.s.once.Do(func() {
		close(tx.s.ch)
		closed = true
	})
	return closed
}

// Recv blocks until a value is sent or the sender is dropped.
func (rx *Receiver[T]) Recv() (T, error) {
	v, ok := <-rx.s.ch
	if !ok {
		var zero T
		return zero, ErrDropped
	}
	return v, nil
}
