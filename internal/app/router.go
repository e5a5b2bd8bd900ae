package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/config"
	httpserver "github.com/yungbote/aislechef-backend/internal/http"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

func wireRouter(cfg *config.Config, log *logger.Logger, m *observability.Metrics, h Handlers) *gin.Engine {
	tracing := ""
	if cfg.Telemetry.OTelEnabled {
		tracing = cfg.Telemetry.ServiceName
	}
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:            log,
		Metrics:        m,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		TracingService: tracing,
		RecipeHandler:  h.Recipe,
		StoreHandler:   h.Store,
		RouteHandler:   h.Route,
		HealthHandler:  h.Health,
	})
}
