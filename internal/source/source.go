// Package source fetches published article records from the hosted
// dashboard database, caching a local snapshot so the UI never renders
// empty when the upstream is unreachable.
package source

import (
	"context"
	"errors"

	"voices/internal/model"
)

var ErrNotFound = errors.New("article not found")

const (
	// DefaultLimit caps homepage feed queries.
	DefaultLimit = 20
	// FullListLimit caps full-list fetches used for permalink lookup.
	FullListLimit = 50
)

// Query describes one article fetch. Category filtering happens upstream
// in the database; locale-availability filtering happens locally, after
// the fetch, and only when RequireLocale is set. Category-only queries
// leave RequireLocale unset and see every published record.
type Query struct {
	Language      string
	Category      string
	Limit         int
	RequireLocale bool
}

// Result is a fetched article set. Fallback is true when the upstream was
// unavailable and the records came from the local snapshot or the
// compiled-in samples.
type Result struct {
	Articles []model.Article
	Fallback bool
}

// Source is the read-only article query interface the server consumes.
type Source interface {
	List(ctx context.Context, q Query) (Result, error)
	Get(ctx context.Context, id int64) (*model.Article, error)
}
