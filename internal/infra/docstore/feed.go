package docstore

import (
	"context"
	"sync"
)

// Change describes a successful write.
type Change struct {
	Path    string
	OwnerID string
}

// ChangeFeed fans out write notifications from this process to live subscriptions.
// Writes made by other processes are picked up by polling.
type ChangeFeed struct {
	mu        sync.Mutex
	listeners map[int]chan Change
	next      int
}

// NewChangeFeed creates an empty feed.
func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{listeners: map[int]chan Change{}}
}

// Listen registers a listener. The returned cancel func must be called to release it.
func (f *ChangeFeed) Listen() (<-chan Change, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan Change, 16)
	f.listeners[id] = ch

	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			close(ch)
		}
	}
}

// Publish notifies all listeners. Slow listeners miss notifications rather than
// blocking writers; their next poll catches up.
func (f *ChangeFeed) Publish(change Change) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.listeners {
		select {
		case ch <- change:
		default:
		}
	}
}

// notifyingStore publishes a Change after every successful write.
type notifyingStore struct {
	Store
	feed *ChangeFeed
}

// WithChangeFeed decorates store so writes are announced on feed.
func WithChangeFeed(store Store, feed *ChangeFeed) Store {
	return &notifyingStore{Store: store, feed: feed}
}

func (s *notifyingStore) Create(ctx context.Context, path, ownerID string, payload any) error {
	if err := s.Store.Create(ctx, path, ownerID, payload); err != nil {
		return err
	}
	s.feed.Publish(Change{Path: path, OwnerID: ownerID})

	return nil
}

func (s *notifyingStore) Update(ctx context.Context, path string, patch map[string]any) error {
	if err := s.Store.Update(ctx, path, patch); err != nil {
		return err
	}
	s.feed.Publish(Change{Path: path})

	return nil
}

func (s *notifyingStore) Delete(ctx context.Context, path string) error {
	if err := s.Store.Delete(ctx, path); err != nil {
		return err
	}
	s.feed.Publish(Change{Path: path})

	return nil
}

func (s *notifyingStore) Transaction(ctx context.Context, path string, fn TxFunc) error {
	if err := s.Store.Transaction(ctx, path, fn); err != nil {
		return err
	}
	s.feed.Publish(Change{Path: path})

	return nil
}
