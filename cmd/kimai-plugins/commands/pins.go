package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pins",
		Short: "List the exact-version pins recorded in kimai-plugins.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pins, err := c.app.Pins(cmd.Context(), rootDir(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, pin := range pins {
				_, _ = fmt.Fprintf(w, "%s %s\n", pin.Name, pin.Constraint)
			}
			return nil
		},
	}
}
