package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yungbote/aislechef-backend/internal/app"
	"github.com/yungbote/aislechef-backend/internal/platform/shutdown"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), rootOpts)
		},
	}
}

func serve(parent context.Context, opts *RootOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}

	ctx, stop := shutdown.NotifyContext(parent)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize app", "error", err)
		log.Sync()
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error("Server exited", "error", err)
		return err
	}
	if sig, ok := shutdown.Signal(ctx); ok {
		log.Info("Server stopped", "signal", sig.String())
	}
	return nil
}
