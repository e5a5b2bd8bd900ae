package catalog

import (
	"time"

	"gorm.io/gorm"
)

const (
	PairingWine     = "wine"
	PairingBeer     = "beer"
	PairingBeverage = "beverage"
	PairingSide     = "side"
)

// Pairing is a suggested complementary purchase for a recipe.
type Pairing struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RecipeID  uint   `gorm:"column:recipe_id;not null;index" json:"recipe_id" validate:"required"`
	Type      string `gorm:"column:type;not null" json:"type" validate:"required,oneof=wine beer beverage side"`
	Title     string `gorm:"column:title;not null" json:"title" validate:"required"`
	AisleCode string `gorm:"column:aisle_code" json:"aisle_code"`
	Rationale string `gorm:"column:rationale" json:"rationale"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Pairing) TableName() string { return "pairing" }
