package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/aislechef-backend/internal/cache"
	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/data/repos"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type Repos struct {
	repos.Set
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{Set: repos.NewSet(db, log)}
}

// wireCache falls back to a cache that never hits when Redis is not
// configured or unreachable.
func wireCache(cfg config.RedisConfig, log *logger.Logger, m *observability.Metrics) cache.RouteCache {
	if !cfg.Enabled() {
		return cache.Noop()
	}
	c, err := cache.NewRedis(cfg, log, m)
	if err != nil {
		log.Warn("Route cache disabled", "redis_addr", cfg.Addr, "error", err)
		return cache.Noop()
	}
	log.Info("Route cache enabled", "redis_addr", cfg.Addr, "ttl", cfg.RouteTTL.Duration.String())
	return c
}
