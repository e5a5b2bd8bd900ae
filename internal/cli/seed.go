package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/aislechef-backend/internal/data/db"
	"github.com/yungbote/aislechef-backend/internal/data/repos"
	"github.com/yungbote/aislechef-backend/internal/seed"
)

type SeedOptions struct {
	*RootOptions
	File string
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the catalog fixtures into an empty database",
		Long: `Load the catalog fixtures into an empty database.

Without --file the built-in fixtures are used. Seeding is skipped when a
store already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "fixtures YAML file")
	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer log.Sync()

	var fixtures *seed.Fixtures
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			return err
		}
		defer f.Close()
		if fixtures, err = seed.Load(f); err != nil {
			return err
		}
	} else if fixtures, err = seed.Default(); err != nil {
		return err
	}

	theDB, err := db.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close(theDB)
	if err := db.AutoMigrateAll(theDB); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	res, err := seed.Apply(cmd.Context(), repos.NewSet(theDB, log), fixtures, log)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Skipped {
		fmt.Fprintln(out, "catalog already seeded")
		return nil
	}
	fmt.Fprintf(out, "seeded store %d: %d ingredients, %d recipes, %d pairings\n",
		res.StoreID, res.Ingredients, res.Recipes, res.Pairings)
	return nil
}
