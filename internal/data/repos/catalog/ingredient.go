package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

type IngredientRepo interface {
	Create(dbc dbctx.Context, rows []*types.Ingredient) ([]*types.Ingredient, error)
	GetByName(dbc dbctx.Context, name string) (*types.Ingredient, error)
	GetByNames(dbc dbctx.Context, names []string) (map[string]*types.Ingredient, error)
	List(dbc dbctx.Context) ([]*types.Ingredient, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: baseLog.With("repo", "IngredientRepo")}
}

func (r *ingredientRepo) Create(dbc dbctx.Context, rows []*types.Ingredient) ([]*types.Ingredient, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Ingredient{}, nil
	}
	for _, row := range rows {
		if err := types.Validate(row); err != nil {
			return nil, err
		}
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("ingredient name already exists: %w", ErrConflict)
		}
		return nil, err
	}
	return rows, nil
}

func (r *ingredientRepo) GetByName(dbc dbctx.Context, name string) (*types.Ingredient, error) {
	if name == "" {
		return nil, nil
	}
	byName, err := r.GetByNames(dbc, []string{name})
	if err != nil {
		return nil, err
	}
	return byName[name], nil
}

// GetByNames loads the named ingredients in one query. Names that are not in
// the catalog are absent from the result.
func (r *ingredientRepo) GetByNames(dbc dbctx.Context, names []string) (map[string]*types.Ingredient, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := make(map[string]*types.Ingredient, len(names))
	if len(names) == 0 {
		return out, nil
	}
	var rows []*types.Ingredient
	if err := t.WithContext(dbc.Ctx).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.Name] = row
	}
	return out, nil
}

func (r *ingredientRepo) List(dbc dbctx.Context) ([]*types.Ingredient, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Ingredient
	if err := t.WithContext(dbc.Ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
