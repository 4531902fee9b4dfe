package analytics

import (
	"context"

	"go.uber.org/zap"

	"voices/internal/model"
)

// Event is the wire shape the telemetry sink accepts.
type Event struct {
	Type     string         `json:"event_type"`
	Metadata map[string]any `json:"metadata"`
}

// Sink delivers a single event to wherever telemetry lives.
type Sink interface {
	Deliver(ctx context.Context, ev Event) error
}

// Tracker queues events on a bounded channel consumed by a background
// goroutine. Track never blocks: when the queue is full the event is
// dropped with a warning, because telemetry must not slow a share action
// down or affect its reported outcome.
type Tracker struct {
	logger *zap.Logger
	sink   Sink
	queue  chan Event
}

func NewTracker(logger *zap.Logger, sink Sink, buffer int) *Tracker {
	if buffer <= 0 {
		buffer = 256
	}
	return &Tracker{
		logger: logger,
		sink:   sink,
		queue:  make(chan Event, buffer),
	}
}

// Start runs the delivery loop until the context is canceled. Delivery
// failures are logged and forgotten.
func (t *Tracker) Start(ctx context.Context) {
	t.logger.Info("analytics tracker started")
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("analytics tracker shutting down")
			return
		case ev := <-t.queue:
			if err := t.sink.Deliver(ctx, ev); err != nil {
				t.logger.Warn("event delivery failed",
					zap.String("event_type", ev.Type),
					zap.Error(err))
			}
		}
	}
}

// Track enqueues an event, dropping it if the queue is full.
func (t *Tracker) Track(eventType string, metadata map[string]any) {
	select {
	case t.queue <- Event{Type: eventType, Metadata: metadata}:
	default:
		t.logger.Warn("analytics queue full, dropping event",
			zap.String("event_type", eventType))
	}
}

// TrackShare adapts a share outcome into a tracked event.
func (t *Tracker) TrackShare(ev model.ShareEvent) {
	t.Track("share", map[string]any{
		"method":            string(ev.Platform),
		"content_type":      "article",
		"item_id":           ev.ArticleID,
		"content_title":     ev.ArticleTitle,
		"share_url":         ev.ShareURL,
		"success":           ev.Success,
		"timestamp":         ev.Timestamp,
		"session_id":        ev.SessionID,
		"referral_platform": ev.Referral,
	})
}

// TrackPageView records an article page view.
func (t *Tracker) TrackPageView(a *model.Article, title, sessionID string, referral Platform) {
	t.Track("page_view", map[string]any{
		"article_id":        a.ID,
		"article_title":     title,
		"article_topic":     a.Topic,
		"article_source":    a.Source,
		"article_language":  "zh",
		"content_type":      "article",
		"session_id":        sessionID,
		"referral_platform": string(referral),
	})
}

// TrackReadingStart records the start of a reading session on an article.
func (t *Tracker) TrackReadingStart(a *model.Article, title, sessionID string) {
	t.Track("reading_start", map[string]any{
		"article_id":       a.ID,
		"article_title":    title,
		"article_language": "zh",
		"session_id":       sessionID,
	})
}
