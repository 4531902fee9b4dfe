package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"voices/internal/content"
	"voices/internal/model"
)

// row is the snake_case shape the dashboard database returns.
type row struct {
	ID               int64             `json:"id"`
	OriginalTitle    string            `json:"original_title"`
	AITitle          string            `json:"ai_title"`
	DisplayTitle     string            `json:"display_title"`
	AISummary        string            `json:"ai_summary"`
	Translations     map[string]string `json:"translations"`
	TranslatedTitles map[string]string `json:"translated_titles"`
	Source           string            `json:"source"`
	Author           string            `json:"author"`
	Dateline         string            `json:"dateline"`
	ScrapedDate      string            `json:"scraped_date"`
	Topic            string            `json:"topic"`
	Priority         string            `json:"priority"`
	RelevanceScore   float64           `json:"relevance_score"`
	ImageURL         string            `json:"image_url"`
	OriginalURL      string            `json:"original_url"`
	Status           string            `json:"status"`
}

func (r row) toArticle() model.Article {
	return model.Article{
		ID:               r.ID,
		OriginalTitle:    r.OriginalTitle,
		AITitle:          r.AITitle,
		DisplayTitle:     r.DisplayTitle,
		AISummary:        r.AISummary,
		Translations:     r.Translations,
		TranslatedTitles: r.TranslatedTitles,
		Source:           r.Source,
		Author:           r.Author,
		Dateline:         r.Dateline,
		ScrapedDate:      r.ScrapedDate,
		Topic:            r.Topic,
		Priority:         model.Priority(r.Priority),
		RelevanceScore:   r.RelevanceScore,
		ImageURL:         r.ImageURL,
		OriginalURL:      r.OriginalURL,
		Status:           model.ArticleStatus(r.Status),
	}
}

// Client queries the dashboard's REST interface, falling back to the
// local snapshot and finally the compiled-in samples when the upstream
// is down. A data-fetch failure is never surfaced as a hard error.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	logger   *zap.Logger
	snapshot *SnapshotStore
}

// NewClient builds a client. snapshot may be nil, in which case fallback
// goes straight to the sample set.
func NewClient(baseURL, apiKey string, snapshot *SnapshotStore, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		snapshot: snapshot,
	}
}

// ListUpstream fetches published records from the database, newest first,
// with the category filter applied server-side. No fallback: callers that
// want degradation use List.
func (c *Client) ListUpstream(ctx context.Context, q Query) ([]model.Article, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("status", "eq.published")
	params.Set("order", "scraped_date.desc")
	params.Set("limit", fmt.Sprintf("%d", limit))
	if q.Category != "" && q.Category != "all" {
		params.Set("topic", "eq."+q.Category)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/articles?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch articles: upstream returned %s", resp.Status)
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	articles := make([]model.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toArticle())
	}
	return articles, nil
}

// List fetches articles for a query, degrading to the snapshot and then
// the sample set when the upstream fails. Locale-availability filtering
// runs last, locally, and only when the query asks for it.
func (c *Client) List(ctx context.Context, q Query) (Result, error) {
	res := Result{}

	articles, err := c.ListUpstream(ctx, q)
	if err != nil {
		c.logger.Warn("upstream fetch failed, using fallback", zap.Error(err))
		articles = c.fallback(ctx, q)
		res.Fallback = true
	}

	if q.RequireLocale {
		articles = content.FilterByLocale(articles, q.Language)
	}
	res.Articles = articles
	return res, nil
}

// Get resolves one article by id, searching the full published list the
// way the article page does.
func (c *Client) Get(ctx context.Context, id int64) (*model.Article, error) {
	res, err := c.List(ctx, Query{Limit: FullListLimit})
	if err != nil {
		return nil, err
	}
	for i := range res.Articles {
		if res.Articles[i].ID == id {
			return &res.Articles[i], nil
		}
	}
	return nil, ErrNotFound
}

func (c *Client) fallback(ctx context.Context, q Query) []model.Article {
	if c.snapshot != nil {
		limit := q.Limit
		if limit <= 0 {
			limit = DefaultLimit
		}
		cached, err := c.snapshot.List(ctx, limit)
		if err == nil && len(cached) > 0 {
			return filterCategory(cached, q.Category)
		}
		if err != nil {
			c.logger.Warn("snapshot read failed", zap.Error(err))
		}
	}
	return filterCategory(SampleArticles(), q.Category)
}

func filterCategory(articles []model.Article, category string) []model.Article {
	if category == "" || category == "all" {
		return articles
	}
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if a.Topic == category {
			out = append(out, a)
		}
	}
	return out
}
