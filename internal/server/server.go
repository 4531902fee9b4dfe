package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"voices/internal/analytics"
	"voices/internal/share"
	"voices/internal/source"
)

const sessionCookie = "voices_session"

type Server struct {
	src        source.Source
	dispatcher *share.Dispatcher
	tracker    *analytics.Tracker
	sessions   *analytics.Sessions
	origin     string
	logger     *zap.Logger
	router     *mux.Router
	server     *http.Server
}

func NewServer(src source.Source, dispatcher *share.Dispatcher, tracker *analytics.Tracker, sessions *analytics.Sessions, origin string, logger *zap.Logger) *Server {
	s := &Server{
		src:        src,
		dispatcher: dispatcher,
		tracker:    tracker,
		sessions:   sessions,
		origin:     origin,
		logger:     logger,
		router:     mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Static Files (CSS)
	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Pages
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/article/{slug}", s.handleArticle).Methods("GET")

	// API
	s.router.HandleFunc("/api/published-articles", s.handleListArticles).Methods("GET")
	s.router.HandleFunc("/api/share", s.handleShare).Methods("POST")
	s.router.HandleFunc("/api/events", s.handleEvent).Methods("POST")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	s.router.Use(s.withSession)
}

// withSession lazily mints a browsing-session id on first access and
// keeps it alive in a cookie. Session failures are logged, never fatal:
// the page still renders, events just go out unattributed.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var existing string
		if c, err := r.Cookie(sessionCookie); err == nil {
			existing = c.Value
		}

		id, err := s.sessions.Ensure(r.Context(), existing)
		if err != nil {
			s.logger.Warn("session init failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if id != existing {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}

		next.ServeHTTP(w, r.WithContext(withSessionID(r.Context(), id)))
	})
}

// Start launches the HTTP server
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("Web server listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

type sessionKeyType struct{}

func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKeyType{}, id)
}

func sessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKeyType{}).(string); ok {
		return id
	}
	return ""
}
