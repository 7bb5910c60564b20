package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pinset/internal/app"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions <package>",
		Short: "List every known version of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offline, _ := cmd.Flags().GetBool("offline")

			pkgs, err := c.app.Versions(cmd.Context(), args[0], app.VersionsOptions{
				ConfigPath: configPath(cmd),
				Offline:    offline,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range pkgs {
				suffix := ""
				if !p.Listed {
					suffix = " (unlisted)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s%s\n", p.Version, p.Source, suffix)
			}
			return nil
		},
	}
	cmd.Flags().Bool("offline", false, "Only consult local sources")
	return cmd
}
