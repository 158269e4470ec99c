package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/serenakung/speech-scene-generator/pkg/config"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// newLogCmd creates the log command group for inspecting the usage log.
func newLogCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect and export the word usage log",
	}

	cmd.AddCommand(newLogExportCmd(configPath))
	cmd.AddCommand(newLogTailCmd(configPath))
	cmd.AddCommand(newLogClearCmd(configPath))

	return cmd
}

// newLogExportCmd creates the "log export" subcommand writing the log as CSV.
func newLogExportCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the usage log as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsageLog(cmd.Context(), *configPath, func(ctx context.Context, store usagelog.Store) error {
				recs, err := store.List(ctx)
				if err != nil {
					return err
				}
				if output == "" {
					return usagelog.WriteCSV(os.Stdout, recs)
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := usagelog.WriteCSV(f, recs); err != nil {
					return err
				}
				printSuccess("Exported %d records", len(recs))
				printFile(output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write (default stdout)")
	return cmd
}

// newLogTailCmd creates the "log tail" subcommand printing the latest records.
func newLogTailCmd(configPath *string) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print the latest usage records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsageLog(cmd.Context(), *configPath, func(ctx context.Context, store usagelog.Store) error {
				recs, err := store.List(ctx)
				if err != nil {
					return err
				}
				if len(recs) == 0 {
					printInfo("Usage log is empty")
					return nil
				}
				if n > 0 && len(recs) > n {
					recs = recs[len(recs)-n:]
				}
				for _, rec := range recs {
					word := rec.Noun
					if rec.Verb != "" {
						word = rec.Verb
						if rec.Noun != "" {
							word = rec.Verb + " " + rec.Noun
						}
					}
					fmt.Printf("%s  %-9s %s\n",
						StyleDim.Render(rec.Timestamp.Format("2006-01-02 15:04")),
						rec.Mode,
						StyleValue.Render(word))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&n, "lines", "n", 20, "number of records to show")
	return cmd
}

// newLogClearCmd creates the "log clear" subcommand.
func newLogClearCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every usage record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsageLog(cmd.Context(), *configPath, func(ctx context.Context, store usagelog.Store) error {
				if err := store.Clear(ctx); err != nil {
					return err
				}
				printSuccess("Usage log cleared")
				return nil
			})
		},
	}
}

// withUsageLog opens the configured usage-log backend, runs fn, and closes it.
func withUsageLog(ctx context.Context, configPath string, fn func(context.Context, usagelog.Store) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	store, err := newUsageStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(ctx, store)
}
