package catalog

import (
	"github.com/yungbote/aislechef-backend/internal/cache"
	"github.com/yungbote/aislechef-backend/internal/data/repos"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type UsecasesDeps struct {
	Log *logger.Logger

	Stores      repos.StoreRepo
	Ingredients repos.IngredientRepo
	Recipes     repos.RecipeRepo
	Pairings    repos.PairingRepo

	// Optional: defaults to a cache that never hits.
	Cache cache.RouteCache
	// Optional: nil records nothing.
	Metrics *observability.Metrics
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("service", "CatalogUsecases")
	if deps.Cache == nil {
		deps.Cache = cache.Noop()
	}
	return Usecases{deps: deps}
}

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}
