package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pinset/internal/adapters/manifest"
	"go.trai.ch/pinset/internal/app"
)

func (c *CLI) newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate [manifests...]",
		Short: "Merge the declarations of several manifests into one constraint per package",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			out, _ := cmd.Flags().GetString("out")
			dedupe, _ := cmd.Flags().GetString("dedupe")
			excludeDev, _ := cmd.Flags().GetBool("exclude-dev")

			paths, err := manifest.ResolvePaths(args)
			if err != nil {
				return err
			}

			result, err := c.app.Aggregate(cmd.Context(), paths, app.AggregateOptions{
				ConfigPath: configPath(cmd),
				Out:        out,
				Dedupe:     dedupe,
				ExcludeDev: excludeDev,
			})
			if result != nil {
				printAggregate(cmd, result)
			}
			return err
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the resolved constraints to this file")
	cmd.Flags().String("dedupe", "", "Equality used to deduplicate declarations: id, id-version, id-range or id-version-range")
	cmd.Flags().Bool("exclude-dev", false, "Ignore development-only declarations")
	return cmd
}

func printAggregate(cmd *cobra.Command, result *app.AggregateResult) {
	w := cmd.OutOrStdout()
	for _, r := range result.Resolved {
		switch {
		case r.Range != nil:
			_, _ = fmt.Fprintf(w, "%s %s\n", r.ID, r.Range)
		case !r.Version.IsZero():
			_, _ = fmt.Fprintf(w, "%s %s\n", r.ID, r.Version)
		default:
			_, _ = fmt.Fprintf(w, "%s *\n", r.ID)
		}
	}

	e := cmd.ErrOrStderr()
	for _, f := range result.Failed {
		decls := make([]string, len(f.Declarations))
		for i, d := range f.Declarations {
			decls[i] = d.String()
		}
		_, _ = fmt.Fprintf(e, "could not satisfy %s: %s\n", f.ID, strings.Join(decls, ", "))
	}
}
