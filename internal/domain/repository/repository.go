// Package repository defines the interfaces for the persistence layer.
package repository

import "sync"

// Subscription delivers values of T until closed. Close is safe to call more
// than once and blocks until the producer has stopped.
type Subscription[T any] struct {
	C <-chan T

	once    sync.Once
	closeFn func()
}

// NewSubscription wraps a channel and the function that releases it.
func NewSubscription[T any](c <-chan T, closeFn func()) *Subscription[T] {
	return &Subscription[T]{C: c, closeFn: closeFn}
}

// Close stops the subscription.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		if s.closeFn != nil {
			s.closeFn()
		}
	})
}
