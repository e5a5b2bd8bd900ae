package app

import (
	"github.com/yungbote/aislechef-backend/internal/cache"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type Services = catalogmod.Usecases

func wireServices(log *logger.Logger, r Repos, c cache.RouteCache, m *observability.Metrics) Services {
	log.Info("Wiring services...")
	return catalogmod.New(catalogmod.UsecasesDeps{
		Log:         log,
		Stores:      r.Stores,
		Ingredients: r.Ingredients,
		Recipes:     r.Recipes,
		Pairings:    r.Pairings,
		Cache:       c,
		Metrics:     m,
	})
}
