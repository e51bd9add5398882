package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how a sync would change the recorded plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Diff(cmd.Context(), rootDir(cmd))
			if err != nil {
				return err
			}
			if out == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Kimai plugins did not change")
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
