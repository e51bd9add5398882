package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kimai-plugins/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Resolve plugin install paths and update kimai-plugins.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			report, err := c.app.Sync(cmd.Context(), app.SyncOptions{
				Root:   rootDir(cmd),
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, dryRun)
			return nil
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would change without writing the lock file")
	return cmd
}

func printReport(w io.Writer, report *app.SyncReport, dryRun bool) {
	if report.Result != nil {
		for _, op := range report.Result.Operations {
			_, _ = fmt.Fprintf(w, "%s (%s) -> %s\n", op.Package.PrettyName, op.Package.PrettyVersion, op.Path)
		}
		for _, pin := range report.Result.Unsatisfied {
			_, _ = fmt.Fprintf(w, "unsatisfied: %s %s\n", pin.Request.Name, pin.Request.Constraint)
		}
	}

	out := report.Outcome
	var status string
	switch {
	case out == nil || out.Skipped:
		status = "skipped"
	case !out.Changed:
		status = "unchanged"
	case dryRun:
		status = "would be updated"
	case out.Written:
		status = "updated"
	default:
		status = "not written"
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", report.LockPath, status)
}
