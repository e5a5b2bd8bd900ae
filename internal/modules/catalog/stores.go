package catalog

import (
	"context"
	"net/http"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/apierr"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
)

func (u Usecases) ListStores(ctx context.Context) ([]*types.Store, error) {
	rows, err := u.deps.Stores.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_stores_failed", err)
	}
	return nonNil(rows), nil
}

func (u Usecases) GetStore(ctx context.Context, id uint) (*types.Store, error) {
	return u.loadStore(dbctx.Context{Ctx: ctx}, id)
}

func (u Usecases) ListIngredients(ctx context.Context) ([]*types.Ingredient, error) {
	rows, err := u.deps.Ingredients.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_ingredients_failed", err)
	}
	return nonNil(rows), nil
}

// loadStore returns the store with the given id, or the default store for id 0.
func (u Usecases) loadStore(dbc dbctx.Context, id uint) (*types.Store, error) {
	if id == 0 {
		store, err := u.deps.Stores.GetDefault(dbc)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "load_store_failed", err)
		}
		if store == nil {
			return nil, apierr.Internal("store_not_configured", errStoreNotConfigured)
		}
		return store, nil
	}
	store, err := u.deps.Stores.GetByID(dbc, id)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_store_failed", err)
	}
	if store == nil {
		return nil, apierr.NotFound("store_not_found")
	}
	return store, nil
}
