package catalog

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uint                                  `gorm:"primaryKey" json:"id"`
	Title       string                                `gorm:"column:title;not null" json:"title" validate:"required"`
	Image       string                                `gorm:"column:image" json:"image"`
	Tags        datatypes.JSONSlice[string]           `gorm:"column:tags" json:"tags"`
	Steps       datatypes.JSONSlice[string]           `gorm:"column:steps" json:"steps"`
	Ingredients datatypes.JSONSlice[RecipeIngredient] `gorm:"column:ingredients" json:"ingredients" validate:"dive"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Recipe) TableName() string { return "recipe" }

// RecipeIngredient is one line of a recipe. Name refers to Ingredient.Name.
type RecipeIngredient struct {
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Quantity float64 `json:"quantity" yaml:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// IngredientNames lists the ingredient names in recipe order, without repeats.
func (r *Recipe) IngredientNames() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(r.Ingredients))
	out := make([]string, 0, len(r.Ingredients))
	for _, item := range r.Ingredients {
		if _, ok := seen[item.Name]; ok {
			continue
		}
		seen[item.Name] = struct{}{}
		out = append(out, item.Name)
	}
	return out
}
