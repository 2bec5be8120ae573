package docstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(interval time.Duration) (Store, *Watcher) {
	feed := NewChangeFeed()
	store := WithChangeFeed(NewMemoryStore(), feed)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return store, NewWatcher(store, feed, interval, logger)
}

func nextSnapshot(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()

	select {
	case snap, ok := <-sub.C:
		require.True(t, ok, "subscription closed")

		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	return Snapshot{}
}

func TestWatcher_InitialAndChangeSnapshots(t *testing.T) {
	ctx := context.Background()
	store, watcher := newTestWatcher(time.Hour)

	sub, err := watcher.Subscribe(ctx, "transactions/u1")
	require.NoError(t, err)
	defer sub.Close()

	initial := nextSnapshot(t, sub)
	assert.False(t, initial.Exists)
	assert.NoError(t, initial.Err)

	require.NoError(t, store.Create(ctx, "transactions/u1/o1", "u1", testDoc{Name: "order"}))

	snap := nextSnapshot(t, sub)
	require.True(t, snap.Exists)

	var orders map[string]testDoc
	require.NoError(t, snap.Decode(&orders))
	assert.Equal(t, "order", orders["o1"].Name)
}

func TestWatcher_IgnoresUnrelatedWrites(t *testing.T) {
	ctx := context.Background()
	store, watcher := newTestWatcher(time.Hour)

	sub, err := watcher.Subscribe(ctx, "transactions/u1")
	require.NoError(t, err)
	defer sub.Close()

	nextSnapshot(t, sub)

	require.NoError(t, store.Create(ctx, "transactions/u2/o1", "u2", testDoc{Name: "other"}))
	require.NoError(t, store.Create(ctx, "transactions/u1/o1", "u1", testDoc{Name: "mine"}))

	var orders map[string]testDoc
	require.NoError(t, nextSnapshot(t, sub).Decode(&orders))
	assert.Contains(t, orders, "o1")
	assert.Equal(t, "mine", orders["o1"].Name)
}

func TestWatcher_PollPicksUpDirectWrites(t *testing.T) {
	ctx := context.Background()
	feed := NewChangeFeed()
	inner := NewMemoryStore()
	watcher := NewWatcher(inner, feed, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	sub, err := watcher.Subscribe(ctx, "shop/s1")
	require.NoError(t, err)
	defer sub.Close()

	nextSnapshot(t, sub)

	// Written without the feed, as another process would.
	require.NoError(t, inner.Create(ctx, "shop/s1", "s1", testDoc{Name: "Shop"}))

	var doc testDoc
	require.NoError(t, nextSnapshot(t, sub).Decode(&doc))
	assert.Equal(t, "Shop", doc.Name)
}

func TestWatcher_CloseEndsSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, watcher := newTestWatcher(time.Hour)

	sub, err := watcher.Subscribe(ctx, "carts/u1")
	require.NoError(t, err)
	nextSnapshot(t, sub)

	sub.Close()
	sub.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
}

func TestWatcher_ContextCancelEndsSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, watcher := newTestWatcher(time.Hour)

	sub, err := watcher.Subscribe(ctx, "carts/u1")
	require.NoError(t, err)
	nextSnapshot(t, sub)

	cancel()

	select {
	case _, ok := <-sub.C:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not end")
	}
	sub.Close()
}

func TestWatcher_RejectsInvalidPath(t *testing.T) {
	_, watcher := newTestWatcher(time.Hour)

	_, err := watcher.Subscribe(context.Background(), "bad#path")
	assert.Error(t, err)
}

func TestSnapshotDecodeMissing(t *testing.T) {
	err := Snapshot{Path: "x"}.Decode(&testDoc{})
	assert.ErrorIs(t, err, ErrNotFound)
}
