package cmd

import (
	"github.com/huangsam/votetab/core"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/spf13/cobra"
)

// tabulateCmd tabulates value counts for a single categorical column.
var tabulateCmd = &cobra.Command{
	Use:   "tabulate [dataset-path]",
	Short: "Show value counts and shares for a survey column.",
	Long: `Count the distinct values of a categorical survey column.

Each value is reported with its raw count and its share of the column total.
Respondents with a missing value in the column are excluded from both.

Ordered columns (voting_difficulty) come back in level order; unordered
columns come back by count descending.

Examples:
  # Party breakdown of the sample
  votetab tabulate survey.parquet --column party

  # Distribution of reported difficulty
  votetab tabulate survey.parquet --column voting_difficulty

  # Top blocking reasons, exported as JSON
  votetab tabulate survey.parquet --column presumed_reason --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTabulate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot tabulate column", err)
		}
	},
}
