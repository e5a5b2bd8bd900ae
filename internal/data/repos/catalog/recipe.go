package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type RecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Recipe, error)
	List(dbc dbctx.Context) ([]*types.Recipe, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Recipe{}, nil
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

func (r *recipeRepo) GetByID(dbc dbctx.Context, id uint) (*types.Recipe, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var rows []*types.Recipe
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *recipeRepo) List(dbc dbctx.Context) ([]*types.Recipe, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Recipe
	if err := t.WithContext(dbc.Ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
