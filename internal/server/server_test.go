package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voices/internal/analytics"
	"voices/internal/content"
	"voices/internal/model"
	"voices/internal/share"
	"voices/internal/source"
)

type fakeSource struct {
	articles []model.Article
	fallback bool
}

func (f *fakeSource) List(_ context.Context, q source.Query) (source.Result, error) {
	out := make([]model.Article, 0, len(f.articles))
	for _, a := range f.articles {
		if q.Category != "" && q.Category != "all" && a.Topic != q.Category {
			continue
		}
		out = append(out, a)
	}
	if q.RequireLocale {
		out = content.FilterByLocale(out, q.Language)
	}
	return source.Result{Articles: out, Fallback: f.fallback}, nil
}

func (f *fakeSource) Get(_ context.Context, id int64) (*model.Article, error) {
	for i := range f.articles {
		if f.articles[i].ID == id {
			return &f.articles[i], nil
		}
	}
	return nil, source.ErrNotFound
}

type captureSink struct {
	mu     sync.Mutex
	events []analytics.Event
}

func (s *captureSink) Deliver(_ context.Context, ev analytics.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *captureSink) all() []analytics.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]analytics.Event(nil), s.events...)
}

func testArticles() []model.Article {
	return []model.Article{
		{
			ID: 1, OriginalTitle: "Census change proposed", Topic: "Immigration",
			AISummary: "English-only summary.", Source: "NPR", ScrapedDate: "2025-08-07",
		},
		{
			ID: 2, OriginalTitle: "Visa backlog grows", Topic: "Immigration",
			Translations: map[string]string{model.LocaleChinese: "签证积压加剧"},
			Source:       "NBC News", ScrapedDate: "2025-08-06",
		},
		{
			ID: 3, OriginalTitle: "Funding frozen", Topic: "Education",
			AISummary: "Edu summary.", Source: "AP News", ScrapedDate: "2025-08-05",
		},
	}
}

func newTestServer(t *testing.T, src source.Source, fallbackSink *captureSink) (*Server, *analytics.Tracker) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := analytics.NewSessions(rdb)

	sink := analytics.Sink(analytics.NopSink{})
	if fallbackSink != nil {
		sink = fallbackSink
	}
	tracker := analytics.NewTracker(zap.NewNop(), sink, 32)
	dispatcher := share.NewDispatcher(zap.NewNop(), tracker)

	return NewServer(src, dispatcher, tracker, sessions, "https://example.org", zap.NewNop()), tracker
}

func TestListArticlesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles()}, nil)

	// Language-specific query applies locale filtering.
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET",
		"/api/published-articles?language=chinese&category=Immigration&limit=20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Articles []model.Article `json:"articles"`
		Total    int             `json:"total"`
		Language string          `json:"language"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, int64(2), resp.Articles[0].ID)
	assert.Equal(t, "chinese", resp.Language)

	// Category-only query bypasses locale filtering.
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET",
		"/api/published-articles?category=Immigration", nil))

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestListArticlesEndpoint_FallbackFlag(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles(), fallback: true}, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/published-articles", nil))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Using fallback data", resp["error"])
}

func TestShareEndpoint_FacebookPopupDirective(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles()}, nil)

	body, _ := json.Marshal(map[string]any{
		"platform":  "facebook",
		"articleId": 1,
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/share", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success    bool `json:"success"`
		Directives []struct {
			Action string `json:"action"`
			URL    string `json:"url"`
		} `json:"directives"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Directives, 1)
	assert.Equal(t, "popup", resp.Directives[0].Action)
	assert.Contains(t, resp.Directives[0].URL, "facebook.com/sharer")
}

func TestShareEndpoint_ArticleNotFound(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles()}, nil)

	body, _ := json.Marshal(map[string]any{"platform": "copy", "articleId": 999})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/share", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareEndpoint_UnknownPlatform(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles()}, nil)

	body, _ := json.Marshal(map[string]any{
		"platform": "myspace", "articleId": 1, "title": "Hello",
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/share", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestEventsEndpoint(t *testing.T) {
	sink := &captureSink{}
	srv, tracker := newTestServer(t, &fakeSource{articles: testArticles()}, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Start(ctx)

	body, _ := json.Marshal(map[string]any{
		"event_type": "page_view",
		"metadata":   map[string]any{"article_id": 1},
	})
	req := httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	req.Header.Set("User-Agent", "MicroMessenger/8.0")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool { return len(sink.all()) == 1 }, time.Second, 10*time.Millisecond)
	ev := sink.all()[0]
	assert.Equal(t, "page_view", ev.Type)
	assert.Equal(t, "wechat", ev.Metadata["referral_platform"])
	assert.NotEmpty(t, ev.Metadata["session_id"])
}

func TestEventsEndpoint_RejectsGarbage(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{}, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/events", bytes.NewReader([]byte("not json"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionCookieMinted(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSource{articles: testArticles()}, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestParseSlugID(t *testing.T) {
	id, err := parseSlugID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = parseSlugID("42-new-census-rules")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseSlugID("not-a-number")
	assert.Error(t, err)
}
