package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"grocer-be/internal/auth"
	"grocer-be/internal/catalog"
	"grocer-be/internal/config"
	"grocer-be/internal/db"
	"grocer-be/internal/logger"
	"grocer-be/internal/metrics"
	"grocer-be/internal/middleware"
	"grocer-be/internal/notify"
	"grocer-be/internal/storage"
	"grocer-be/internal/view"
	"grocer-be/internal/web"
)

const (
	visitorTTL     = 30 * 24 * time.Hour
	redisKeyPrefix = "grocer"
)

var (
	initDBFunc      = db.NewDatabase
	startServerFunc = func(addr string, handler http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	}
	newRedisFunc = func(addr string) *redis.Client {
		return redis.NewClient(&redis.Options{Addr: addr})
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	var database *sql.DB
	if cfg.NeedsPostgres() {
		d, err := initDBFunc(cfg)
		if err != nil {
			return err
		}
		defer d.Close()
		database = d
	}

	reg := metrics.NewRegistry()
	store, closeStore, err := openStore(cfg, database, reg)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter := middleware.NewRateLimiter()
	stop := make(chan struct{})
	defer close(stop)
	go limiter.Run(stop)

	router, err := newServer(cfg, store, openCatalog(cfg, database), limiter, reg)
	if err != nil {
		return err
	}

	addr := ":" + cfg.AppPort
	logger.L().Info("storefront running",
		zap.String("addr", addr),
		zap.String("store", cfg.StoreDriver),
		zap.String("catalog", cfg.CatalogSource),
	)
	if err := startServerFunc(addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openStore builds the store selected by STORE_DRIVER. The returned func
// releases it.
func openStore(cfg *config.Config, database *sql.DB, reg *metrics.Registry) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		return storage.NewMemoryStore(), noop, nil
	case config.DriverFile:
		s, err := storage.OpenFileStore(cfg.StorePath, reg)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.DriverRedis:
		client := newRedisFunc(cfg.RedisAddr)
		closeClient := func() { _ = client.Close() }
		s := storage.NewRedisStore(client, redisKeyPrefix, visitorTTL)
		if err := s.Ping(context.Background()); err != nil {
			closeClient()
			return nil, noop, fmt.Errorf("failed to reach redis: %w", err)
		}
		return s, closeClient, nil
	case config.DriverPostgres:
		if database == nil {
			return nil, noop, config.ErrMissingDBHost
		}
		return storage.NewPostgresStore(database), noop, nil
	default:
		return nil, noop, config.ErrUnknownStoreDriver
	}
}

func openCatalog(cfg *config.Config, database *sql.DB) catalog.Repository {
	if cfg.CatalogSource == config.DriverPostgres && database != nil {
		return catalog.NewPostgresRepository(database)
	}
	return catalog.NewMemoryRepository(catalog.DefaultProducts())
}

func newServer(cfg *config.Config, store storage.Store, products catalog.Repository, limiter *middleware.RateLimiter, reg *metrics.Registry) (http.Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	secret := cfg.VisitorSecret
	if secret == "" {
		// cookies signed with a generated secret do not survive a restart
		secret = uuid.NewString()
		logger.L().Warn("VISITOR_SECRET not set, using a per-process secret")
	}

	timing := notify.DefaultTiming()
	if cfg.NotificationDuration > 0 {
		timing.Duration = cfg.NotificationDuration
	}

	srv := web.NewServer(web.Deps{
		Store:           store,
		Catalog:         products,
		Renderer:        renderer,
		Tokens:          auth.NewVisitorTokens(secret, visitorTTL),
		Limiter:         limiter,
		StaticDir:       cfg.StaticDir,
		NavigationDelay: cfg.NavigationDelay,
		Timing:          timing,
		Metrics:         reg,
	})
	return srv.Router(), nil
}
