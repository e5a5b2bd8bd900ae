package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/aislechef-backend/internal/data/repos/catalog"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type AisleDirectory = catalog.AisleDirectory
type StoreRepo = catalog.StoreRepo
type IngredientRepo = catalog.IngredientRepo
type RecipeRepo = catalog.RecipeRepo
type PairingRepo = catalog.PairingRepo
type TxRunner = catalog.TxRunner

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	return catalog.NewStoreRepo(db, baseLog)
}
func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return catalog.NewIngredientRepo(db, baseLog)
}
func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return catalog.NewRecipeRepo(db, baseLog)
}
func NewPairingRepo(db *gorm.DB, baseLog *logger.Logger) PairingRepo {
	return catalog.NewPairingRepo(db, baseLog)
}
func NewTxRunner(db *gorm.DB) TxRunner { return catalog.NewGormTxRunner(db) }

// Set groups the catalog repositories.
type Set struct {
	Stores      StoreRepo
	Ingredients IngredientRepo
	Recipes     RecipeRepo
	Pairings    PairingRepo
	Tx          TxRunner
}

func NewSet(db *gorm.DB, baseLog *logger.Logger) Set {
	return Set{
		Stores:      NewStoreRepo(db, baseLog),
		Ingredients: NewIngredientRepo(db, baseLog),
		Recipes:     NewRecipeRepo(db, baseLog),
		Pairings:    NewPairingRepo(db, baseLog),
		Tx:          NewTxRunner(db),
	}
}
