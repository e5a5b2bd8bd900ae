package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type PairingRepo interface {
	Create(dbc dbctx.Context, rows []*types.Pairing) ([]*types.Pairing, error)
	GetByRecipeID(dbc dbctx.Context, recipeID uint) (*types.Pairing, error)
}

type pairingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPairingRepo(db *gorm.DB, baseLog *logger.Logger) PairingRepo {
	return &pairingRepo{db: db, log: baseLog.With("repo", "PairingRepo")}
}

func (r *pairingRepo) Create(dbc dbctx.Context, rows []*types.Pairing) ([]*types.Pairing, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Pairing{}, nil
	}
	for _, row := range rows {
		if err := types.Validate(row); err != nil {
			return nil, err
		}
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByRecipeID returns the first pairing recorded for the recipe.
func (r *pairingRepo) GetByRecipeID(dbc dbctx.Context, recipeID uint) (*types.Pairing, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if recipeID == 0 {
		return nil, nil
	}
	var rows []*types.Pairing
	if err := t.WithContext(dbc.Ctx).
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
