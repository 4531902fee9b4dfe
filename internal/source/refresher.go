package source

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher periodically re-fetches the full published list from the
// upstream database into the local snapshot so fallback data stays fresh.
type Refresher struct {
	cron    *cron.Cron
	client  *Client
	store   *SnapshotStore
	logger  *zap.Logger
	entryID cron.EntryID
}

func NewRefresher(client *Client, store *SnapshotStore, logger *zap.Logger) *Refresher {
	return &Refresher{
		cron:   cron.New(),
		client: client,
		store:  store,
		logger: logger,
	}
}

// Start schedules the refresh job on the given cron expression and runs
// one refresh immediately so a cold start has a snapshot.
func (r *Refresher) Start(spec string) error {
	id, err := r.cron.AddFunc(spec, func() { r.Refresh(context.Background()) })
	if err != nil {
		return err
	}
	r.entryID = id
	r.cron.Start()
	r.logger.Info("snapshot refresher started", zap.String("schedule", spec))

	go r.Refresh(context.Background())
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}

// Refresh performs one upstream fetch and stores it. Upstream failure is
// logged and the previous snapshot is kept.
func (r *Refresher) Refresh(ctx context.Context) {
	articles, err := r.client.ListUpstream(ctx, Query{Limit: FullListLimit})
	if err != nil {
		r.logger.Warn("snapshot refresh failed, keeping previous snapshot", zap.Error(err))
		return
	}
	if err := r.store.Store(ctx, articles); err != nil {
		r.logger.Error("snapshot store failed", zap.Error(err))
		return
	}
	r.logger.Info("snapshot refreshed", zap.Int("articles", len(articles)))
}
