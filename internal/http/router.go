package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/aislechef-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aislechef-backend/internal/http/middleware"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	CORSOrigins []string
	// TracingService enables otelgin spans under this service name when set.
	TracingService string

	RecipeHandler *httpH.RecipeHandler
	StoreHandler  *httpH.StoreHandler
	RouteHandler  *httpH.RouteHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Recipes
		if cfg.RecipeHandler != nil {
			api.GET("/recipes", cfg.RecipeHandler.ListRecipes)
			api.GET("/recipes/:id", cfg.RecipeHandler.GetRecipe)
			api.GET("/recipes/:id/route", cfg.RecipeHandler.GetRecipeRoute)
		}

		// Stores + ingredient catalog
		if cfg.StoreHandler != nil {
			api.GET("/stores", cfg.StoreHandler.ListStores)
			api.GET("/stores/:id", cfg.StoreHandler.GetStore)
			api.GET("/ingredients", cfg.StoreHandler.ListIngredients)
		}

		// Ad hoc routes
		if cfg.RouteHandler != nil {
			api.POST("/route", cfg.RouteHandler.ResolveRoute)
		}
	}

	return r
}
