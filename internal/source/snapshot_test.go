package source

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voices/internal/model"
)

// newTestStore wires the snapshot store to a fake Redis and an in-memory
// Badger so nothing touches the network or disk.
func newTestStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &SnapshotStore{rdb: rdb, db: db}, mr
}

func TestSnapshotStore_StoreAndList(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	articles := SampleArticles()
	require.NoError(t, store.Store(ctx, articles))

	// Metadata in Redis must not carry the heavy translated text.
	raw, err := mr.Get("article:1")
	require.NoError(t, err)
	var meta model.Article
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))
	assert.Empty(t, meta.AISummary, "summary text belongs in Badger")
	assert.Empty(t, meta.Translations)
	assert.Equal(t, "NPR", meta.Source)

	// List reassembles full records in stored order.
	got, err := store.List(ctx, FullListLimit)
	require.NoError(t, err)
	require.Len(t, got, len(articles))
	for i := range articles {
		assert.Equal(t, articles[i].ID, got[i].ID)
		assert.Equal(t, articles[i].AISummary, got[i].AISummary)
		assert.Equal(t, articles[i].Translations, got[i].Translations)
	}
}

func TestSnapshotStore_StoreReplacesPrevious(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, SampleArticles()))
	require.NoError(t, store.Store(ctx, SampleArticles()[:2]))

	got, err := store.List(ctx, FullListLimit)
	require.NoError(t, err)
	assert.Len(t, got, 2, "a refresh replaces the recent list, not appends")
}

func TestSnapshotStore_GetNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotStore_RedisOnlyModeKeepsBodyInline(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := NewSnapshotStore(mr.Addr(), "")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Store(ctx, SampleArticles()[:1]))

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, got.AISummary, "without Badger the body stays in Redis")
}
