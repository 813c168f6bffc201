package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/pepalyzer/core"
	"github.com/huangsam/pepalyzer/internal/contract"
)

// signalsCmd scans recently changed PEPs for editorial signals only.
var signalsCmd = &cobra.Command{
	Use:   "signals [repo-path]",
	Short: "Scan recently changed PEPs for editorial signals.",
	Long: `Scan the PEPs touched in the time window and report only their editorial
signals, without the full activity breakdown.

Detects:
- Deprecation markers (deprecated, superseded, obsolete, replaced by)
- Normative RFC 2119 language (MUST, SHALL, REQUIRED and friends)

Examples:
  # Signals over the default 30-day window
  pepalyzer signals ~/src/peps

  # Signals over a longer window as JSON
  pepalyzer signals --since '1 year' --output json ~/src/peps`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSignalScan(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run signal scan", err)
		}
	},
}
