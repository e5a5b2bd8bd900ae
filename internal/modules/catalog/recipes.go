package catalog

import (
	"context"
	"net/http"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/apierr"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
)

func (u Usecases) ListRecipes(ctx context.Context) ([]RecipeSummary, error) {
	rows, err := u.deps.Recipes.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_recipes_failed", err)
	}
	out := make([]RecipeSummary, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, summarize(r))
	}
	return out, nil
}

func (u Usecases) GetRecipe(ctx context.Context, id uint) (*RecipeDetail, error) {
	dbc := dbctx.Context{Ctx: ctx}
	recipe, err := u.loadRecipe(dbc, id)
	if err != nil {
		return nil, err
	}
	byName, err := u.deps.Ingredients.GetByNames(dbc, recipe.IngredientNames())
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_ingredients_failed", err)
	}

	lines := make([]IngredientLine, 0, len(recipe.Ingredients))
	for _, item := range recipe.Ingredients {
		lines = append(lines, joinLine(item, byName[item.Name]))
	}

	pairing, err := u.deps.Pairings.GetByRecipeID(dbc, recipe.ID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_pairing_failed", err)
	}

	s := summarize(recipe)
	return &RecipeDetail{
		ID:          s.ID,
		Title:       s.Title,
		Tags:        s.Tags,
		Image:       s.Image,
		Steps:       nonNil([]string(recipe.Steps)),
		Ingredients: lines,
		Pairing:     pairing,
	}, nil
}

func joinLine(item types.RecipeIngredient, ing *types.Ingredient) IngredientLine {
	if ing == nil {
		return IngredientLine{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Substitutes: []string{},
			Missing:     true,
		}
	}
	unit := item.Unit
	if unit == "" {
		unit = ing.Unit
	}
	price := ing.Price
	line := IngredientLine{
		Name:        ing.Name,
		Quantity:    item.Quantity,
		Unit:        unit,
		Price:       &price,
		Substitutes: nonNil([]string(ing.Substitutes)),
	}
	if loc := ing.Location.Data(); loc.Code != "" || loc.Area != "" {
		line.Location = &loc
	}
	return line
}

func (u Usecases) loadRecipe(dbc dbctx.Context, id uint) (*types.Recipe, error) {
	recipe, err := u.deps.Recipes.GetByID(dbc, id)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_recipe_failed", err)
	}
	if recipe == nil {
		return nil, apierr.NotFound("recipe_not_found")
	}
	return recipe, nil
}
