package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/redis/go-redis/v9"

	"voices/internal/model"
)

const recentKey = "articles:recent"

func metaKey(id int64) string {
	return fmt.Sprintf("article:%d", id)
}

// body is the heavy text split out of the Redis metadata and kept in
// Badger instead.
type body struct {
	AISummary    string            `json:"ai_summary"`
	Translations map[string]string `json:"translations"`
}

// SnapshotStore keeps a local copy of the last successful upstream fetch:
// article metadata in Redis (fast list reads), translated body text in
// Badger. It is the fallback layer the client serves from when the
// upstream database is unreachable.
type SnapshotStore struct {
	rdb *redis.Client
	db  *badger.DB
}

// NewSnapshotStore connects both stores. Pass badgerPath="" for a
// Redis-only store (one-shot CLI use); body text is then kept inline.
func NewSnapshotStore(redisAddr, badgerPath string) (*SnapshotStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	var db *badger.DB
	if badgerPath != "" {
		opts := badger.DefaultOptions(badgerPath)
		opts.Logger = nil
		var err error
		db, err = badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
	}

	return &SnapshotStore{rdb: rdb, db: db}, nil
}

// Redis exposes the underlying client so session state can share the
// same connection.
func (s *SnapshotStore) Redis() *redis.Client {
	return s.rdb
}

func (s *SnapshotStore) Close() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// Store replaces the snapshot with a freshly fetched article set,
// preserving the given (newest-first) order.
func (s *SnapshotStore) Store(ctx context.Context, articles []model.Article) error {
	pipe := s.rdb.Pipeline()
	pipe.Del(ctx, recentKey)

	for i := range articles {
		a := articles[i]
		if s.db != nil {
			// Strip the heavy text before it hits Redis.
			a.AISummary = ""
			a.Translations = nil
		}
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		pipe.Set(ctx, metaKey(a.ID), data, 0)
		pipe.RPush(ctx, recentKey, strconv.FormatInt(a.ID, 10))
	}
	pipe.LTrim(ctx, recentKey, 0, FullListLimit-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, a := range articles {
			blob, err := json.Marshal(body{AISummary: a.AISummary, Translations: a.Translations})
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(metaKey(a.ID)), blob); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns up to limit snapshot articles in stored order.
func (s *SnapshotStore) List(ctx context.Context, limit int) ([]model.Article, error) {
	ids, err := s.rdb.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	var articles []model.Article
	for _, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}
		a, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		articles = append(articles, *a)
	}
	return articles, nil
}

// Get returns one snapshot article, reassembling metadata and body.
func (s *SnapshotStore) Get(ctx context.Context, id int64) (*model.Article, error) {
	val, err := s.rdb.Get(ctx, metaKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var a model.Article
	if err := json.Unmarshal(val, &a); err != nil {
		return nil, err
	}

	if s.db != nil {
		err = s.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get([]byte(metaKey(id)))
			if err != nil {
				return err
			}
			return item.Value(func(blob []byte) error {
				var b body
				if err := json.Unmarshal(blob, &b); err != nil {
					return err
				}
				a.AISummary = b.AISummary
				a.Translations = b.Translations
				return nil
			})
		})
		if err != nil && err != badger.ErrKeyNotFound {
			return nil, err
		}
	}

	return &a, nil
}
