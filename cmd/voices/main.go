package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voices/internal/analytics"
	"voices/internal/config"
	web "voices/internal/server"
	"voices/internal/share"
	"voices/internal/source"
)

var (
	logger     *zap.Logger
	configPath string
	redisAddr  string
	badgerPath string
)

var rootCmd = &cobra.Command{
	Use:   "voices",
	Short: "voices - bilingual news front-end for Chinese American Voices",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server, analytics tracker and snapshot refresher",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Setup Signal Handling (Ctrl+C)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("Shutting down...")
			cancel()
		}()

		snapshot, err := source.NewSnapshotStore(cfg.Redis.Addr, cfg.Badger.Path)
		if err != nil {
			logger.Fatal("Failed to init snapshot store", zap.Error(err))
		}
		defer snapshot.Close()

		var sink analytics.Sink = analytics.NopSink{}
		if cfg.Analytics.Endpoint != "" {
			sink = analytics.NewHTTPSink(cfg.Analytics.Endpoint)
		}
		tracker := analytics.NewTracker(logger, sink, cfg.Analytics.Buffer)
		go tracker.Start(ctx)

		client := source.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, snapshot, logger)

		refresher := source.NewRefresher(client, snapshot, logger)
		if err := refresher.Start(cfg.Refresh.Schedule); err != nil {
			logger.Fatal("Failed to start refresher", zap.Error(err))
		}
		defer refresher.Stop()

		sessions := analytics.NewSessions(snapshot.Redis())
		dispatcher := share.NewDispatcher(logger, tracker)

		srv := web.NewServer(client, dispatcher, tracker, sessions, cfg.Server.Origin, logger)
		go func() {
			if err := srv.Start(cfg.Server.Addr); err != nil {
				logger.Error("Server stopped", zap.Error(err))
				cancel()
			}
		}()

		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Stop(shutdownCtx)
		logger.Info("Goodbye!")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the published article list into the local snapshot once",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		snapshot, err := source.NewSnapshotStore(cfg.Redis.Addr, cfg.Badger.Path)
		if err != nil {
			logger.Fatal("Failed to init snapshot store", zap.Error(err))
		}
		defer snapshot.Close()

		client := source.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, snapshot, logger)

		articles, err := client.ListUpstream(context.Background(), source.Query{Limit: source.FullListLimit})
		if err != nil {
			logger.Fatal("Failed to fetch articles", zap.Error(err))
		}
		if err := snapshot.Store(context.Background(), articles); err != nil {
			logger.Fatal("Failed to store snapshot", zap.Error(err))
		}

		logger.Info("Snapshot refreshed", zap.Int("articles", len(articles)))
	},
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}
	if badgerPath != "" {
		cfg.Badger.Path = badgerPath
	}
	return cfg
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Address of Redis server (overrides config)")
	rootCmd.PersistentFlags().StringVar(&badgerPath, "badger", "", "Path to BadgerDB data directory (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(refreshCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
