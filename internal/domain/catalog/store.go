package catalog

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/aislechef-backend/internal/route"
)

type Store struct {
	ID            uint                            `gorm:"primaryKey" json:"id"`
	Name          string                          `gorm:"column:name;not null" json:"name" validate:"required"`
	LayoutVersion string                          `gorm:"column:layout_version;not null" json:"layout_version" validate:"required"`
	Aisles        datatypes.JSONSlice[StoreAisle] `gorm:"column:aisles" json:"aisles" validate:"unique=Code,dive"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Store) TableName() string { return "store" }

// StoreAisle is one aisle of a store layout. Position is optional; aisles
// without one walk at their index in the layout.
type StoreAisle struct {
	Code     string `json:"code" yaml:"code" validate:"required"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Position *int   `json:"position,omitempty" yaml:"position,omitempty"`
}

func (a StoreAisle) ToRouteAisle() route.Aisle {
	return route.Aisle{Code: a.Code, Name: a.Name, Position: a.Position}
}

// Directory converts the store layout into the route resolver's aisle list.
func (s *Store) Directory() []route.Aisle {
	if s == nil {
		return []route.Aisle{}
	}
	out := make([]route.Aisle, 0, len(s.Aisles))
	for _, a := range s.Aisles {
		out = append(out, a.ToRouteAisle())
	}
	return out
}
