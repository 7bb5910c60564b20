package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/pinset/internal/adapters/manifest"
	"go.trai.ch/pinset/internal/app"
	"go.trai.ch/pinset/internal/core/domain"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [manifests...]",
		Short: "Resolve every declaration to a concrete package",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			latest, _ := cmd.Flags().GetBool("latest")
			offline, _ := cmd.Flags().GetBool("offline")
			excludeDev, _ := cmd.Flags().GetBool("exclude-dev")
			record, _ := cmd.Flags().GetBool("record")

			paths, err := manifest.ResolvePaths(args)
			if err != nil {
				return err
			}

			result, err := c.app.Plan(cmd.Context(), paths, app.PlanOptions{
				ConfigPath: configPath(cmd),
				Latest:     latest,
				Offline:    offline,
				ExcludeDev: excludeDev,
				Record:     record,
			})
			if result != nil {
				printPlan(cmd, result)
			}
			return err
		},
	}
	cmd.Flags().BoolP("latest", "l", false, "Prefer the newest version satisfying each declaration")
	cmd.Flags().Bool("offline", false, "Only consult installed packages and local sources")
	cmd.Flags().Bool("exclude-dev", false, "Ignore development-only declarations")
	cmd.Flags().Bool("record", false, "Record resolved packages as installed")
	return cmd
}

func printPlan(cmd *cobra.Command, result *app.PlanResult) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "MANIFEST\tPACKAGE\tDECLARED\tVERSION\tSOURCE")
	for _, e := range result.Entries {
		version, source := "-", "-"
		if !e.Version.IsZero() {
			version = e.Version.String()
		}
		if e.Source != "" {
			source = e.Source
		}
		if e.Err != nil {
			source = "error: " + e.Err.Error()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Manifest, e.Declared.ID, declared(e.Declared), version, source)
	}
	_ = tw.Flush()
}

// declared renders the version and range of d, or "*" for a wildcard.
func declared(d domain.Declaration) string {
	var parts []string
	if !d.Version.IsZero() {
		parts = append(parts, d.Version.String())
	}
	if d.HasBoundedRange() {
		parts = append(parts, d.Range.String())
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}
