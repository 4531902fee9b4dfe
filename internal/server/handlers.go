package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"voices/internal/analytics"
	"voices/internal/content"
	"voices/internal/model"
	"voices/internal/share"
	"voices/internal/source"
)

const relatedLimit = 3

// articleView is an Article shaped for the templates: one resolved title,
// one resolved summary, localized labels.
type articleView struct {
	ID             int64
	Title          string
	Summary        string
	Source         string
	Author         string
	Topic          string
	TopicLabel     string
	Date           string
	Priority       model.Priority
	RelevanceScore float64
	ImageURL       string
	OriginalURL    string
	Permalink      string
}

func newArticleView(a *model.Article, locale string) articleView {
	return articleView{
		ID:             a.ID,
		Title:          content.ResolveTitle(a, locale),
		Summary:        content.ResolveSummary(a, locale),
		Source:         a.Source,
		Author:         content.AuthorDisplay(a.Author, a.Source),
		Topic:          a.Topic,
		TopicLabel:     content.CategoryLabel(a.Topic),
		Date:           content.FormatDate(a),
		Priority:       a.Priority,
		RelevanceScore: a.RelevanceScore,
		ImageURL:       a.ImageURL,
		OriginalURL:    a.OriginalURL,
		Permalink:      "/article/" + content.ResolveSlug(a),
	}
}

func (s *Server) clientInfo(r *http.Request) analytics.ClientInfo {
	return analytics.ClientInfo{
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		Query:     r.URL.Query(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("language")
	q := source.Query{
		Language:      locale,
		Category:      r.URL.Query().Get("category"),
		Limit:         source.DefaultLimit,
		RequireLocale: locale != "",
	}
	if locale == "" {
		locale = model.LocaleChinese
	}

	res, err := s.src.List(r.Context(), q)
	if err != nil {
		s.logger.Error("Failed to list articles", zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	views := make([]articleView, 0, len(res.Articles))
	for i := range res.Articles {
		views = append(views, newArticleView(&res.Articles[i], locale))
	}

	tmpl, err := template.ParseFiles("templates/layout.html", "templates/index.html")
	if err != nil {
		s.logger.Error("Template error", zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Articles": views,
		"Fallback": res.Fallback,
		"Category": q.Category,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl.ExecuteTemplate(w, "layout", data)
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	id, err := parseSlugID(slug)
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	article, err := s.src.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			s.renderNotFound(w)
			return
		}
		s.logger.Error("Failed to load article", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	title := content.ResolveTitle(article, model.LocaleChinese)
	sid := sessionID(r.Context())
	referral := analytics.Classify(s.clientInfo(r))
	s.tracker.TrackPageView(article, title, sid, referral)
	s.tracker.TrackReadingStart(article, title, sid)

	related := s.relatedArticles(r, article)

	tmpl, err := template.ParseFiles("templates/layout.html", "templates/article.html")
	if err != nil {
		s.logger.Error("Template error", zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Article": newArticleView(article, model.LocaleChinese),
		"Related": related,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl.ExecuteTemplate(w, "layout", data)
}

func (s *Server) relatedArticles(r *http.Request, article *model.Article) []articleView {
	res, err := s.src.List(r.Context(), source.Query{Limit: source.FullListLimit})
	if err != nil {
		return nil
	}
	var related []articleView
	for i := range res.Articles {
		a := &res.Articles[i]
		if a.ID == article.ID || a.Topic != article.Topic {
			continue
		}
		related = append(related, newArticleView(a, model.LocaleChinese))
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	tmpl, err := template.ParseFiles("templates/layout.html", "templates/notfound.html")
	if err != nil {
		w.Write([]byte("文章未找到 (Article not found)"))
		return
	}
	tmpl.ExecuteTemplate(w, "layout", nil)
}

// handleListArticles is the JSON feed endpoint. Category filtering ran
// upstream; locale filtering runs here only when a language is requested.
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("language")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := s.src.List(r.Context(), source.Query{
		Language:      locale,
		Category:      r.URL.Query().Get("category"),
		Limit:         limit,
		RequireLocale: locale != "",
	})
	if err != nil {
		s.logger.Error("Failed to list articles", zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"articles":  res.Articles,
		"total":     len(res.Articles),
		"language":  locale,
		"category":  r.URL.Query().Get("category"),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if res.Fallback {
		resp["error"] = "Using fallback data"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

type shareRequest struct {
	Platform  string `json:"platform"`
	ArticleID int64  `json:"articleId"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"imageUrl"`
	CanShare  bool   `json:"canShare"`
}

// handleShare runs the dispatcher against a directive-recording browser
// environment and hands the resulting action back to the client to
// execute. The attempt event is tracked here either way.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		article, err := s.src.Get(r.Context(), req.ArticleID)
		if err != nil {
			if errors.Is(err, source.ErrNotFound) {
				http.Error(w, "Article not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		req.Title = content.ResolveTitle(article, model.LocaleChinese)
		req.Summary = content.ResolveSummary(article, model.LocaleChinese)
		req.ImageURL = article.ImageURL
	}

	rec := newRecordingEnv(req.CanShare)
	env := rec.env(s.origin, r.UserAgent(), sessionID(r.Context()), string(analytics.Classify(s.clientInfo(r))))

	ok := s.dispatcher.Dispatch(env, model.SharePlatform(req.Platform), share.Request{
		ArticleID: req.ArticleID,
		Title:     req.Title,
		Summary:   req.Summary,
		ImageURL:  req.ImageURL,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    ok,
		"directives": rec.directives,
	})
}

type trackedEvent struct {
	Type     string                 `json:"event_type"`
	Metadata map[string]interface{} `json:"metadata"`
}

// handleEvent ingests client-side telemetry, enriching each event with
// the session id and the detected referral platform before queueing it.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var ev trackedEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil || ev.Type == "" {
		http.Error(w, "Invalid event", http.StatusBadRequest)
		return
	}

	if ev.Metadata == nil {
		ev.Metadata = map[string]interface{}{}
	}
	ev.Metadata["session_id"] = sessionID(r.Context())
	ev.Metadata["referral_platform"] = string(analytics.Classify(s.clientInfo(r)))
	ev.Metadata["user_agent"] = r.UserAgent()
	if _, ok := ev.Metadata["timestamp"]; !ok {
		ev.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	}

	s.tracker.Track(ev.Type, ev.Metadata)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// parseSlugID extracts the numeric id that prefixes a permalink slug.
// Both "42" and "42-some-title-text" are accepted.
func parseSlugID(slug string) (int64, error) {
	idPart := slug
	if i := strings.IndexByte(slug, '-'); i > 0 {
		idPart = slug[:i]
	}
	return strconv.ParseInt(idPart, 10, 64)
}
