package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/serenakung/speech-scene-generator/internal/server"
)

// newServeCmd creates the serve command running the HTTP API.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func runServe(ctx context.Context, configPath, addr string) error {
	logger := loggerFromContext(ctx)

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.close()

	runner, err := a.newRunner(false)
	if err != nil {
		return err
	}

	srv := server.New(runner, a.loader, a.bank, a.usage, logger)
	printInfo("Listening on %s", addr)
	return srv.ListenAndServe(ctx, addr)
}
