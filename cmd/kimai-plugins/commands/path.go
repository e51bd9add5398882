package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/kimai-plugins/internal/core/domain"
)

func (c *CLI) newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <package>",
		Short: "Print the directory a plugin package is installed into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			version, _ := cmd.Flags().GetString("version")
			installName, _ := cmd.Flags().GetString("install-name")

			pkg := domain.Package{
				Name:          strings.ToLower(args[0]),
				PrettyName:    args[0],
				PrettyVersion: version,
				Type:          typ,
			}
			if installName != "" {
				pkg.Extra = map[string]any{"kimai": map[string]any{"name": installName}}
			}

			path, err := c.app.InstallPath(cmd.Context(), rootDir(cmd), pkg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", domain.DefaultPluginTypes[1], "Package type")
	cmd.Flags().String("version", "dev-main", "Package version")
	cmd.Flags().String("install-name", "", "Install name overriding the package name (extra.kimai.name)")
	return cmd
}
