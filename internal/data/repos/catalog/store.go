package catalog

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
	"github.com/yungbote/aislechef-backend/internal/route"
)

// AisleDirectory provides the read-only aisle layout of a store.
type AisleDirectory interface {
	ListAisles(dbc dbctx.Context, storeID uint) ([]route.Aisle, error)
}

type StoreRepo interface {
	AisleDirectory

	Create(dbc dbctx.Context, row *types.Store) (*types.Store, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Store, error)
	GetDefault(dbc dbctx.Context) (*types.Store, error)
	List(dbc dbctx.Context) ([]*types.Store, error)
	Count(dbc dbctx.Context) (int64, error)
}

type storeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	return &storeRepo{db: db, log: baseLog.With("repo", "StoreRepo")}
}

func (r *storeRepo) Create(dbc dbctx.Context, row *types.Store) (*types.Store, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := types.Validate(row); err != nil {
		return nil, err
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *storeRepo) GetByID(dbc dbctx.Context, id uint) (*types.Store, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var rows []*types.Store
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// GetDefault returns the store with the lowest id, or nil when none exist.
func (r *storeRepo) GetDefault(dbc dbctx.Context) (*types.Store, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var rows []*types.Store
	if err := t.WithContext(dbc.Ctx).Order("id ASC").Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *storeRepo) List(dbc dbctx.Context) ([]*types.Store, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Store
	if err := t.WithContext(dbc.Ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *storeRepo) Count(dbc dbctx.Context) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(dbc.Ctx).Model(&types.Store{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *storeRepo) ListAisles(dbc dbctx.Context, storeID uint) ([]route.Aisle, error) {
	s, err := r.GetByID(dbc, storeID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("store %d: %w", storeID, ErrNotFound)
	}
	return s.Directory(), nil
}
