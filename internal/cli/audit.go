package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newAuditCmd creates the audit command for checking image coverage of the
// word bank. Every entry with no image path or an unreadable image file is
// reported with its reason.
func newAuditCmd(configPath *string) *cobra.Command {
	var (
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report word bank entries with missing or unreadable images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd.Context(), *configPath, output, asJSON)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON report to a file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON even to a terminal")

	return cmd
}

func runAudit(ctx context.Context, configPath, output string, asJSON bool) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.close()

	report := a.loader.Audit(ctx, a.bank)

	if output != "" || asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if output == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		printFile(output)
		return nil
	}

	if len(report.Missing) == 0 {
		printSuccess("Every word has a readable image")
		return nil
	}
	printWarning("%d words have missing or unreadable images", len(report.Missing))
	for _, m := range report.Missing {
		printDetail("%s %q: %s", m.Kind, m.Word, m.Reason)
	}
	return nil
}
