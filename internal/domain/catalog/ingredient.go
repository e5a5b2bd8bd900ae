package catalog

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID          uint                                   `gorm:"primaryKey" json:"id"`
	Name        string                                 `gorm:"column:name;not null;uniqueIndex" json:"name" validate:"required"`
	Price       float64                                `gorm:"column:price;not null" json:"price" validate:"gte=0"`
	Unit        string                                 `gorm:"column:unit;not null" json:"unit" validate:"required"`
	Location    datatypes.JSONType[IngredientLocation] `gorm:"column:location" json:"location"`
	Substitutes datatypes.JSONSlice[string]            `gorm:"column:substitutes" json:"substitutes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Ingredient) TableName() string { return "ingredient" }

// IngredientLocation places an ingredient in a store: the aisle code plus a
// free-text area inside the aisle.
type IngredientLocation struct {
	Code string `json:"code" yaml:"code"`
	Area string `json:"area,omitempty" yaml:"area,omitempty"`
}

// AisleCode returns the aisle the ingredient is shelved in, or "" if unknown.
func (i *Ingredient) AisleCode() string {
	if i == nil {
		return ""
	}
	return i.Location.Data().Code
}
