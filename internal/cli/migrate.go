package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/aislechef-backend/internal/data/db"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := rootOpts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			theDB, err := db.Open(cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close(theDB)

			if err := db.AutoMigrateAll(theDB); err != nil {
				return fmt.Errorf("automigrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
