package app

import (
	httpH "github.com/yungbote/aislechef-backend/internal/http/handlers"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type Handlers struct {
	Recipe *httpH.RecipeHandler
	Store  *httpH.StoreHandler
	Route  *httpH.RouteHandler
	Health *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, catalog Services, db httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Recipe: httpH.NewRecipeHandler(log, catalog),
		Store:  httpH.NewStoreHandler(log, catalog),
		Route:  httpH.NewRouteHandler(log, catalog),
		Health: httpH.NewHealthHandler(db),
	}
}
