package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogMode    string
}

// load resolves the config and a logger for a subcommand. --log-mode wins
// over LOG_MODE and the config file.
func (o *RootOptions) load() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadFile(o.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.LogMode != "" {
		cfg.Env = o.LogMode
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// NewRootCommand creates the aislechef command. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "aislechef",
		Short:         "Aisle Chef recipe catalog service",
		Long:          "Serves recipes, ingredients and store layouts, and orders a recipe's aisles into a walking route.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (default: $AISLECHEF_CONFIG_PATH or ./config/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogMode, "log-mode", "", "log mode (development|production|test)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewRouteCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
