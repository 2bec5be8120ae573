package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"smartfit/internal/errors"
)

// Snapshot is the value of a watched path at one point in time.
type Snapshot struct {
	Path   string
	Data   json.RawMessage
	Exists bool
	Err    error
}

// Decode unmarshals the snapshot data into v.
func (s Snapshot) Decode(v any) error {
	if s.Err != nil {
		return s.Err
	}
	if !s.Exists {
		return ErrNotFound
	}

	return errors.WithStack(json.Unmarshal(s.Data, v))
}

// Subscription delivers snapshots of one path until closed.
// C receives one snapshot immediately and one per observed change; it is
// closed when the subscription ends.
type Subscription struct {
	C <-chan Snapshot

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Close stops the subscription and waits for its goroutine to exit.
// It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Watcher opens live subscriptions over a Store.
type Watcher struct {
	store    Store
	feed     *ChangeFeed
	interval time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher that re-reads on local writes and every interval.
func NewWatcher(store Store, feed *ChangeFeed, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{store: store, feed: feed, interval: interval, logger: logger}
}

// Subscribe watches path until ctx is cancelled or the subscription is closed.
func (w *Watcher) Subscribe(ctx context.Context, path string) (*Subscription, error) {
	if err := ValidatePath(path); err != nil {
		return nil, errors.Wrap(err, "subscribe")
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Snapshot, 1)
	sub := &Subscription{C: out, cancel: cancel, done: make(chan struct{})}

	changes, stopListening := w.feed.Listen()

	go func() {
		defer close(sub.done)
		defer close(out)
		defer stopListening()

		w.run(ctx, path, changes, out)
	}()

	return sub, nil
}

func (w *Watcher) run(ctx context.Context, path string, changes <-chan Change, out chan<- Snapshot) {
	var ticker <-chan time.Time
	if w.interval > 0 {
		t := time.NewTicker(w.interval)
		defer t.Stop()
		ticker = t.C
	}

	var last *Snapshot
	emit := func() bool {
		snap := w.read(ctx, path)
		if last != nil && sameSnapshot(*last, snap) {
			return true
		}
		last = &snap

		select {
		case out <- snap:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !emit() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
		case change, ok := <-changes:
			if !ok {
				return
			}
			if !Overlaps(change.Path, path) {
				continue
			}
		}

		if !emit() {
			return
		}
	}
}

func (w *Watcher) read(ctx context.Context, path string) Snapshot {
	var raw json.RawMessage
	err := w.store.Read(ctx, path, &raw)
	switch {
	case err == nil:
		return Snapshot{Path: path, Data: raw, Exists: true}
	case errors.Is(err, ErrNotFound):
		return Snapshot{Path: path}
	default:
		if ctx.Err() == nil {
			w.logger.Warn("Subscription read failed", slog.String("path", path), slog.Any("error", err))
		}

		return Snapshot{Path: path, Err: err}
	}
}

func sameSnapshot(a, b Snapshot) bool {
	if (a.Err == nil) != (b.Err == nil) {
		return false
	}
	if a.Err != nil {
		return a.Err.Error() == b.Err.Error()
	}

	return a.Exists == b.Exists && bytes.Equal(a.Data, b.Data)
}
