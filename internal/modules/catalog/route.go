package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/yungbote/aislechef-backend/internal/cache"
	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/apierr"
	"github.com/yungbote/aislechef-backend/internal/platform/ctxutil"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/route"
)

var errStoreNotConfigured = errors.New("store not configured")

// GetRecipeRoute orders the aisles a recipe needs by the store's walking
// order. Ingredients missing from the catalog or without an aisle code are
// left off the route.
func (u Usecases) GetRecipeRoute(ctx context.Context, q RouteQuery) (*RouteResult, error) {
	dbc := dbctx.Context{Ctx: ctx}
	recipe, err := u.loadRecipe(dbc, q.RecipeID)
	if err != nil {
		return nil, err
	}
	store, err := u.loadStore(dbc, q.StoreID)
	if err != nil {
		return nil, err
	}

	key := cache.RouteKey(recipe.ID, store.ID, store.LayoutVersion, q.IncludePairing)
	var cached RouteResult
	if u.deps.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	byName, err := u.deps.Ingredients.GetByNames(dbc, recipe.IngredientNames())
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_ingredients_failed", err)
	}
	codes := make([]string, 0, len(recipe.Ingredients))
	for _, item := range recipe.Ingredients {
		if code := byName[item.Name].AisleCode(); code != "" {
			codes = append(codes, code)
		}
	}
	if q.IncludePairing {
		pairing, err := u.deps.Pairings.GetByRecipeID(dbc, recipe.ID)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "load_pairing_failed", err)
		}
		if pairing != nil && pairing.AisleCode != "" {
			codes = append(codes, pairing.AisleCode)
		}
	}

	res := u.resolve(store, codes, "recipe")
	u.deps.Cache.Set(ctx, key, res)
	u.deps.Log.With(ctxutil.LogFields(ctx)...).Debug("recipe route resolved",
		"recipe_id", recipe.ID,
		"store_id", store.ID,
		"stops", len(res.Route),
	)
	return res, nil
}

// ResolveCodes orders arbitrary aisle codes for a store.
func (u Usecases) ResolveCodes(ctx context.Context, storeID uint, codes []string) (*RouteResult, error) {
	store, err := u.loadStore(dbctx.Context{Ctx: ctx}, storeID)
	if err != nil {
		return nil, err
	}
	return u.resolve(store, codes, "adhoc"), nil
}

func (u Usecases) resolve(store *types.Store, codes []string, source string) *RouteResult {
	entries := route.Resolve(codes, store.Directory())
	u.deps.Metrics.ObserveRoute(source, route.Summary(entries))
	return &RouteResult{
		StoreID:       store.ID,
		LayoutVersion: store.LayoutVersion,
		Route:         entries,
		Aisles:        nonNil([]types.StoreAisle(store.Aisles)),
	}
}
