package cmd

import (
	"github.com/huangsam/votetab/core"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/spf13/cobra"
)

// reasonsCmd tabulates presumed blocking reasons among nonvoters.
var reasonsCmd = &cobra.Command{
	Use:   "reasons [dataset-path]",
	Short: "Show why nonvoting respondents are presumed not to have voted.",
	Long: `Tabulate the presumed blocking reason across nonvoting respondents.

Voters carry no reason and are excluded, so the shares describe only the
nonvoting slice of the sample. Reasons come back by count descending.

Examples:
  # Most common blocking reasons
  votetab reasons survey.parquet

  # Top five reasons only
  votetab reasons survey.parquet --limit 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReasons(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot tabulate reasons", err)
		}
	},
}
