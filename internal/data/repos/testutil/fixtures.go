package testutil

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/pkg/pointers"
)

func SeedStore(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, aisles ...domain.StoreAisle) *domain.Store {
	tb.Helper()
	if len(aisles) == 0 {
		aisles = []domain.StoreAisle{
			{Code: "A1", Name: "Produce", Position: pointers.Int(0)},
			{Code: "B1", Name: "Meats", Position: pointers.Int(2)},
			{Code: "C1", Name: "Pantry", Position: pointers.Int(3)},
		}
	}
	s := &domain.Store{Name: name, LayoutVersion: "v1", Aisles: datatypes.JSONSlice[domain.StoreAisle](aisles)}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed store: %v", err)
	}
	return s
}

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name, aisleCode string) *domain.Ingredient {
	tb.Helper()
	ing := &domain.Ingredient{
		Name:        name,
		Price:       1.25,
		Unit:        "ea",
		Location:    datatypes.NewJSONType(domain.IngredientLocation{Code: aisleCode, Area: "Front"}),
		Substitutes: datatypes.JSONSlice[string]{},
	}
	if err := tx.WithContext(ctx).Create(ing).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return ing
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, lines ...domain.RecipeIngredient) *domain.Recipe {
	tb.Helper()
	r := &domain.Recipe{
		Title:       title,
		Image:       "assets/images/test.jpg",
		Tags:        datatypes.JSONSlice[string]{"test"},
		Steps:       datatypes.JSONSlice[string]{"cook"},
		Ingredients: datatypes.JSONSlice[domain.RecipeIngredient](lines),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedPairing(tb testing.TB, ctx context.Context, tx *gorm.DB, recipeID uint, aisleCode string) *domain.Pairing {
	tb.Helper()
	p := &domain.Pairing{RecipeID: recipeID, Type: "beverage", Title: "Cola", AisleCode: aisleCode, Rationale: "classic"}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed pairing: %v", err)
	}
	return p
}
