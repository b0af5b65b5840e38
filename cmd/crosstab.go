package cmd

import (
	"github.com/huangsam/votetab/core"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/spf13/cobra"
)

// crosstabCmd produces the raw party-by-difficulty contingency table.
var crosstabCmd = &cobra.Command{
	Use:   "crosstab [dataset-path]",
	Short: "Show the raw party-by-difficulty contingency table.",
	Long: `Cross-tabulate party against reported voting difficulty.

Unlike 'frequencies', the counts here are raw and unnormalized, which is
useful when the absolute number of respondents matters more than the
within-party distribution.

Examples:
  # Full contingency table
  votetab crosstab survey.parquet

  # Only respondents above a difficulty floor
  votetab crosstab survey.parquet --min-level moderate`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCrossTab(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build crosstab", err)
		}
	},
}
