package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/config"
	"github.com/matst80/diecast-finder/pkg/index"
	"github.com/matst80/diecast-finder/pkg/server"
	"github.com/matst80/diecast-finder/pkg/storage"
	"github.com/matst80/diecast-finder/pkg/tracking"
	"github.com/matst80/diecast-finder/pkg/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var configFile = flag.String("config", "catalog.toml", "optional TOML configuration file")

func main() {
	flag.Parse()

	logger, err := common.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger = logger.With(zap.String("catalog", cfg.Catalog))

	db := storage.NewDiskStorage(cfg.Catalog, cfg.DataDir)
	models, err := db.LoadCatalog()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	idx, err := index.NewIndex(models, index.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to index catalog", zap.Error(err))
	}

	hooks := make([]common.ShutdownHook, 0, 2)

	var trk types.Tracking = tracking.NoopTracking{}
	if cfg.Rabbit.Url != "" {
		rabbit, err := tracking.NewRabbitTracking(cfg.Rabbit.Url, cfg.Catalog, logger)
		if err != nil {
			logger.Error("tracking disabled, failed to connect to rabbitmq", zap.Error(err))
		} else {
			logger.Info("tracking enabled")
			trk = rabbit
		}
	}
	hooks = append(hooks, func(ctx context.Context) error {
		return trk.Close()
	})

	var client *redis.Client
	if cfg.Redis.Url != "" {
		client = server.NewRedisClient(cfg.Redis.Url, cfg.Redis.Password, cfg.Redis.Db)
		logger.Info("redis response cache enabled", zap.String("addr", cfg.Redis.Url))
	}
	cache, err := server.NewCache(cfg.CacheSize, client, idx.Fingerprint(), logger)
	if err != nil {
		logger.Fatal("failed to create cache", zap.Error(err))
	}
	hooks = append(hooks, func(ctx context.Context) error {
		return cache.Close()
	})

	srv, err := server.NewWebServer(idx, server.Options{
		Title:        cfg.Title,
		SessionLimit: cfg.SessionLimit,
		Cache:        cache,
		Tracking:     trk,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{
		Addr:    cfg.ListenAddress,
		Handler: srv.Handler(),
	}, timeouts)
	common.RunServerWithShutdown(logger, httpServer, "catalog", timeouts.Shutdown, timeouts.Hook, hooks...)
}
