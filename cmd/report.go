package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/pepalyzer/core"
	"github.com/huangsam/pepalyzer/internal/contract"
)

// reportCmd aggregates recent activity per PEP.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Show recent activity aggregated per PEP.",
	Long: `Walk the repository's recent commit history and aggregate activity per PEP.

For each PEP touched in the time window, shows:
- How many commits touched it and which files each commit changed
- The commit subject lines, most recent first
- Header metadata (title, status, authors, type) from the current document
- A short abstract excerpt and a link to the rendered PEP
- Editorial signals such as deprecation markers and RFC 2119 language

Examples:
  # Report on the last 30 days (default window)
  pepalyzer report ~/src/peps

  # Most active PEPs first, top ten only
  pepalyzer report --order activity --limit 10 ~/src/peps

  # A custom window with machine-readable output
  pepalyzer report --since '6 months' --output json ~/src/peps

  # Export findings for tracking
  pepalyzer report --output parquet --output-file peps.parquet ~/src/peps`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePepReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run PEP report", err)
		}
	},
}
