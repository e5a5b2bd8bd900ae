package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/http/response"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type RouteHandler struct {
	log     *logger.Logger
	catalog catalogmod.Usecases
}

func NewRouteHandler(log *logger.Logger, catalog catalogmod.Usecases) *RouteHandler {
	return &RouteHandler{
		log:     log.With("handler", "RouteHandler"),
		catalog: catalog,
	}
}

type resolveRouteRequest struct {
	StoreID uint     `json:"store_id"`
	Codes   []string `json:"codes"`
}

// POST /api/route
func (h *RouteHandler) ResolveRoute(c *gin.Context) {
	var req resolveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.catalog.ResolveCodes(c.Request.Context(), req.StoreID, req.Codes)
	if err != nil {
		response.RespondAPIError(c, err, "resolve_route_failed")
		return
	}
	response.RespondOK(c, out)
}
