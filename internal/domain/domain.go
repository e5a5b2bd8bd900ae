package domain

import "github.com/yungbote/aislechef-backend/internal/domain/catalog"

type Store = catalog.Store
type StoreAisle = catalog.StoreAisle
type Ingredient = catalog.Ingredient
type IngredientLocation = catalog.IngredientLocation
type Recipe = catalog.Recipe
type RecipeIngredient = catalog.RecipeIngredient
type Pairing = catalog.Pairing

// Models lists every persisted catalog model, in migration order.
func Models() []any {
	return []any{
		&catalog.Store{},
		&catalog.Ingredient{},
		&catalog.Recipe{},
		&catalog.Pairing{},
	}
}

// Validate checks a catalog record before it is written.
func Validate(record any) error { return catalog.Validate(record) }
