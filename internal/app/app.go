package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/aislechef-backend/internal/cache"
	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/data/db"
	httpserver "github.com/yungbote/aislechef-backend/internal/http"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
	"github.com/yungbote/aislechef-backend/internal/seed"
)

// Version is stamped at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

type App struct {
	Log     *logger.Logger
	Config  *config.Config
	DB      *gorm.DB
	Repos   Repos
	Catalog Services
	Metrics *observability.Metrics
	Router  *gin.Engine

	cache        cache.RouteCache
	server       *http.Server
	otelShutdown func(context.Context) error
}

// New wires the database, repositories, route cache, use cases and router.
// The caller owns the returned App and must call Close.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	a := &App{Log: log, Config: cfg}
	if cfg.Telemetry.OTelEnabled {
		a.otelShutdown = observability.InitOTel(ctx, log, observability.OtelConfigFrom(*cfg, Version))
	}
	if cfg.Telemetry.MetricsEnabled {
		a.Metrics = observability.NewMetrics(log)
	}

	theDB, err := db.Open(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.DB = theDB
	if err := db.AutoMigrateAll(theDB); err != nil {
		a.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	a.Repos = wireRepos(theDB, log)
	a.cache = wireCache(cfg.Redis, log, a.Metrics)
	a.Catalog = wireServices(log, a.Repos, a.cache, a.Metrics)

	if cfg.Seed.OnStart {
		if _, err := seed.Apply(ctx, a.Repos.Set, mustDefaultFixtures(), log); err != nil {
			a.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	sqlDB, err := theDB.DB()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("sql db handle: %w", err)
	}
	handlers := wireHandlers(log, a.Catalog, sqlDB)
	a.Router = wireRouter(cfg, log, a.Metrics, handlers)
	a.server = httpserver.NewServer(cfg.HTTP, a.Router)
	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := a.Config.HTTP.ShutdownTimeout.Duration
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		a.Log.Info("HTTP server shutting down", "timeout", timeout.String())
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the cache, database and tracer. Safe to call more than once.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.Log.Warn("route cache close failed", "error", err)
		}
		a.cache = nil
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
		a.DB = nil
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.otelShutdown(ctx)
		a.otelShutdown = nil
	}
	a.Log.Sync()
}

func mustDefaultFixtures() *seed.Fixtures {
	f, err := seed.Default()
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures invalid: %v", err))
	}
	return f
}
