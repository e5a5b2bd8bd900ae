package catalog

import (
	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/route"
)

type RecipeSummary struct {
	ID    uint     `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Image string   `json:"image"`
}

// IngredientLine is one recipe line joined with the ingredient catalog.
// Missing is set when the catalog has no ingredient of that name, in which
// case Price and Location are nil.
type IngredientLine struct {
	Name        string                    `json:"name"`
	Quantity    float64                   `json:"quantity"`
	Unit        string                    `json:"unit"`
	Price       *float64                  `json:"price"`
	Location    *types.IngredientLocation `json:"location"`
	Substitutes []string                  `json:"substitutes"`
	Missing     bool                      `json:"missing"`
}

type RecipeDetail struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Tags        []string         `json:"tags"`
	Image       string           `json:"image"`
	Steps       []string         `json:"steps"`
	Ingredients []IngredientLine `json:"ingredients"`
	Pairing     *types.Pairing   `json:"pairing"`
}

type RouteQuery struct {
	RecipeID uint
	// StoreID 0 selects the default store.
	StoreID        uint
	IncludePairing bool
}

type RouteResult struct {
	StoreID       uint               `json:"store_id"`
	LayoutVersion string             `json:"layout_version"`
	Route         []route.Entry      `json:"route"`
	Aisles        []types.StoreAisle `json:"aisles"`
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func summarize(r *types.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:    r.ID,
		Title: r.Title,
		Tags:  nonNil([]string(r.Tags)),
		Image: r.Image,
	}
}
