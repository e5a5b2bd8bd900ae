package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yungbote/aislechef-backend/internal/data/db"
	"github.com/yungbote/aislechef-backend/internal/data/repos"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
)

type RouteOptions struct {
	*RootOptions
	StoreID uint
	Pairing bool
}

func NewRouteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RouteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "route <recipe-id>",
		Short: "Print a recipe's aisle route as JSON",
		Long: `Print a recipe's aisle route as JSON.

Example:
  aislechef route 1 --pairing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			return printRoute(cmd, opts, uint(id))
		},
	}
	cmd.Flags().UintVar(&opts.StoreID, "store", 0, "store id (default: the first store)")
	cmd.Flags().BoolVar(&opts.Pairing, "pairing", false, "include the recipe's pairing aisle")
	return cmd
}

func printRoute(cmd *cobra.Command, opts *RouteOptions, recipeID uint) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer log.Sync()

	theDB, err := db.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close(theDB)

	set := repos.NewSet(theDB, log)
	uc := catalogmod.New(catalogmod.UsecasesDeps{
		Log:         log,
		Stores:      set.Stores,
		Ingredients: set.Ingredients,
		Recipes:     set.Recipes,
		Pairings:    set.Pairings,
	})
	res, err := uc.GetRecipeRoute(cmd.Context(), catalogmod.RouteQuery{
		RecipeID:       recipeID,
		StoreID:        opts.StoreID,
		IncludePairing: opts.Pairing,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
