package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/http/response"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type RecipeHandler struct {
	log     *logger.Logger
	catalog catalogmod.Usecases
}

func NewRecipeHandler(log *logger.Logger, catalog catalogmod.Usecases) *RecipeHandler {
	return &RecipeHandler{
		log:     log.With("handler", "RecipeHandler"),
		catalog: catalog,
	}
}

// GET /api/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	out, err := h.catalog.ListRecipes(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err, "list_recipes_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	out, err := h.catalog.GetRecipe(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err, "load_recipe_failed")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/recipes/:id/route?store_id=&include_pairing=
func (h *RecipeHandler) GetRecipeRoute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	storeID, ok := optionalID(c, "store_id")
	if !ok {
		return
	}
	withPairing, ok := queryBool(c, "include_pairing")
	if !ok {
		return
	}
	out, err := h.catalog.GetRecipeRoute(c.Request.Context(), catalogmod.RouteQuery{
		RecipeID:       id,
		StoreID:        storeID,
		IncludePairing: withPairing,
	})
	if err != nil {
		h.log.Warn("recipe route failed", "recipe_id", id, "store_id", storeID, "error", err)
		response.RespondAPIError(c, err, "resolve_route_failed")
		return
	}
	response.RespondOK(c, out)
}
