package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/http/response"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type StoreHandler struct {
	log     *logger.Logger
	catalog catalogmod.Usecases
}

func NewStoreHandler(log *logger.Logger, catalog catalogmod.Usecases) *StoreHandler {
	return &StoreHandler{
		log:     log.With("handler", "StoreHandler"),
		catalog: catalog,
	}
}

// GET /api/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	out, err := h.catalog.ListStores(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err, "list_stores_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	out, err := h.catalog.GetStore(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err, "load_store_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/ingredients
func (h *StoreHandler) ListIngredients(c *gin.Context) {
	out, err := h.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err, "list_ingredients_failed")
		return
	}
	response.RespondOK(c, out)
}
