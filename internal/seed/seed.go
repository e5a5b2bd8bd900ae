package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/yungbote/aislechef-backend/internal/data/repos"
	types "github.com/yungbote/aislechef-backend/internal/domain"
	"github.com/yungbote/aislechef-backend/internal/platform/dbctx"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the on-disk shape of a catalog seed file.
type Fixtures struct {
	Store       StoreFixture        `yaml:"store"`
	Ingredients []IngredientFixture `yaml:"ingredients"`
	Recipes     []RecipeFixture     `yaml:"recipes"`
	Pairings    []PairingFixture    `yaml:"pairings"`
}

type StoreFixture struct {
	Name          string             `yaml:"name"`
	LayoutVersion string             `yaml:"layout_version"`
	Aisles        []types.StoreAisle `yaml:"aisles"`
}

type IngredientFixture struct {
	Name        string                   `yaml:"name"`
	Price       float64                  `yaml:"price"`
	Unit        string                   `yaml:"unit"`
	Location    types.IngredientLocation `yaml:"location"`
	Substitutes []string                 `yaml:"substitutes"`
}

type RecipeFixture struct {
	Title       string                   `yaml:"title"`
	Tags        []string                 `yaml:"tags"`
	Image       string                   `yaml:"image"`
	Steps       []string                 `yaml:"steps"`
	Ingredients []types.RecipeIngredient `yaml:"ingredients"`
}

// PairingFixture names its recipe by title; ids are assigned on insert.
type PairingFixture struct {
	Recipe    string `yaml:"recipe"`
	Type      string `yaml:"type"`
	Title     string `yaml:"title"`
	AisleCode string `yaml:"aisle_code"`
	Rationale string `yaml:"rationale"`
}

// Result reports what Apply inserted.
type Result struct {
	Skipped     bool
	StoreID     uint
	Ingredients int
	Recipes     int
	Pairings    int
}

func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &f, nil
}

// Default returns the built-in catalog: one store layout, its ingredient
// catalog, five recipes and one pairing per recipe.
func Default() (*Fixtures, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// Apply inserts fixtures in a single transaction. It does nothing when a store
// already exists, so running it on every start is safe.
func Apply(ctx context.Context, set repos.Set, f *Fixtures, log *logger.Logger) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("nil fixtures")
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "Seed")

	var res Result
	err := set.Tx.InTx(ctx, func(dbc dbctx.Context) error {
		n, err := set.Stores.Count(dbc)
		if err != nil {
			return fmt.Errorf("count stores: %w", err)
		}
		if n > 0 {
			res.Skipped = true
			return nil
		}

		store, err := set.Stores.Create(dbc, &types.Store{
			Name:          f.Store.Name,
			LayoutVersion: f.Store.LayoutVersion,
			Aisles:        datatypes.JSONSlice[types.StoreAisle](f.Store.Aisles),
		})
		if err != nil {
			return fmt.Errorf("create store: %w", err)
		}
		res.StoreID = store.ID

		if len(f.Ingredients) > 0 {
			rows := make([]*types.Ingredient, 0, len(f.Ingredients))
			for _, in := range f.Ingredients {
				rows = append(rows, &types.Ingredient{
					Name:        in.Name,
					Price:       in.Price,
					Unit:        in.Unit,
					Location:    datatypes.NewJSONType(in.Location),
					Substitutes: datatypes.JSONSlice[string](nonNil(in.Substitutes)),
				})
			}
			if _, err := set.Ingredients.Create(dbc, rows); err != nil {
				return fmt.Errorf("create ingredients: %w", err)
			}
			res.Ingredients = len(rows)
		}

		recipeIDs := make(map[string]uint, len(f.Recipes))
		if len(f.Recipes) > 0 {
			rows := make([]*types.Recipe, 0, len(f.Recipes))
			for _, in := range f.Recipes {
				rows = append(rows, &types.Recipe{
					Title:       in.Title,
					Image:       in.Image,
					Tags:        datatypes.JSONSlice[string](nonNil(in.Tags)),
					Steps:       datatypes.JSONSlice[string](nonNil(in.Steps)),
					Ingredients: datatypes.JSONSlice[types.RecipeIngredient](in.Ingredients),
				})
			}
			created, err := set.Recipes.Create(dbc, rows)
			if err != nil {
				return fmt.Errorf("create recipes: %w", err)
			}
			for _, r := range created {
				recipeIDs[r.Title] = r.ID
			}
			res.Recipes = len(created)
		}

		if len(f.Pairings) > 0 {
			rows := make([]*types.Pairing, 0, len(f.Pairings))
			for _, in := range f.Pairings {
				id, ok := recipeIDs[in.Recipe]
				if !ok {
					return fmt.Errorf("pairing %q: unknown recipe %q", in.Title, in.Recipe)
				}
				rows = append(rows, &types.Pairing{
					RecipeID:  id,
					Type:      in.Type,
					Title:     in.Title,
					AisleCode: in.AisleCode,
					Rationale: in.Rationale,
				})
			}
			if _, err := set.Pairings.Create(dbc, rows); err != nil {
				return fmt.Errorf("create pairings: %w", err)
			}
			res.Pairings = len(rows)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if res.Skipped {
		log.Info("Catalog already seeded; skipping")
	} else {
		log.Info("Catalog seeded",
			"store_id", res.StoreID,
			"ingredients", res.Ingredients,
			"recipes", res.Recipes,
			"pairings", res.Pairings,
		)
	}
	return res, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
