package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voices/internal/model"
)

// upstreamFixture serves five published rows the way the dashboard
// database does: category filter applied server-side, newest first.
// Two are tagged Immigration; of those, one has only an AI summary and
// one has a populated Chinese translation.
func upstreamFixture(t *testing.T) *httptest.Server {
	t.Helper()

	rows := []map[string]any{
		{
			"id": 1, "original_title": "Census change proposed", "topic": "Immigration",
			"ai_summary": "English-only summary.", "scraped_date": "2025-08-07",
			"source": "NPR", "original_url": "https://example.org/1", "status": "published",
		},
		{
			"id": 2, "original_title": "Visa backlog grows", "topic": "Immigration",
			"ai_summary": "Another summary.", "scraped_date": "2025-08-06",
			"translations": map[string]string{"chinese": "签证积压加剧"},
			"source":       "NBC News", "original_url": "https://example.org/2", "status": "published",
		},
		{
			"id": 3, "original_title": "University funding frozen", "topic": "Education",
			"ai_summary": "Edu summary.", "scraped_date": "2025-08-05",
			"source": "AP News", "original_url": "https://example.org/3", "status": "published",
		},
		{
			"id": 4, "original_title": "Hall of fame induction", "topic": "Culture",
			"translations": map[string]string{"chinese": "名人堂"},
			"scraped_date": "2025-08-04", "source": "NBC News",
			"original_url": "https://example.org/4", "status": "published",
		},
		{
			"id": 5, "original_title": "Voting rights anniversary", "topic": "Politics",
			"ai_summary": "Politics summary.", "scraped_date": "2025-08-03",
			"source": "USA Today", "original_url": "https://example.org/5", "status": "published",
		},
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.published", r.URL.Query().Get("status"))

		topic := strings.TrimPrefix(r.URL.Query().Get("topic"), "eq.")
		var out []map[string]any
		for _, row := range rows {
			if topic != "" && row["topic"] != topic {
				continue
			}
			out = append(out, row)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}))
}

func TestClient_CategoryAndLocaleFiltering(t *testing.T) {
	srv := upstreamFixture(t)
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil, zap.NewNop())
	ctx := context.Background()

	// Language-specific fetch: category upstream, locale filter local.
	res, err := client.List(ctx, Query{
		Language:      model.LocaleChinese,
		Category:      "Immigration",
		Limit:         20,
		RequireLocale: true,
	})
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	require.Len(t, res.Articles, 1, "only the Immigration article with a Chinese translation survives")
	assert.Equal(t, int64(2), res.Articles[0].ID)

	// Category-only fetch bypasses locale filtering.
	res, err = client.List(ctx, Query{Category: "Immigration", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, res.Articles, 2)
}

func TestClient_FallsBackToSamplesWhenUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil, zap.NewNop())

	res, err := client.List(context.Background(), Query{Limit: 20})
	require.NoError(t, err, "fetch failure is never a hard error")
	assert.True(t, res.Fallback)
	assert.Len(t, res.Articles, len(SampleArticles()), "UI never renders empty")
}

func TestClient_FallbackPrefersSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store, _ := newTestStore(t)
	seeded := SampleArticles()[:3]
	require.NoError(t, store.Store(context.Background(), seeded))

	client := NewClient(srv.URL, "", store, zap.NewNop())

	res, err := client.List(context.Background(), Query{Limit: 20})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Len(t, res.Articles, 3, "snapshot beats compiled-in samples")
}

func TestClient_FallbackAppliesCategoryFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil, zap.NewNop())

	res, err := client.List(context.Background(), Query{Category: "Immigration", Limit: 20})
	require.NoError(t, err)
	for _, a := range res.Articles {
		assert.Equal(t, "Immigration", a.Topic)
	}
	assert.NotEmpty(t, res.Articles)
}

func TestClient_Get(t *testing.T) {
	srv := upstreamFixture(t)
	defer srv.Close()

	client := NewClient(srv.URL, "", nil, zap.NewNop())
	ctx := context.Background()

	a, err := client.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "University funding frozen", a.OriginalTitle)

	_, err = client.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
