package cmd

import (
	"github.com/huangsam/votetab/core"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/spf13/cobra"
)

// frequenciesCmd computes party-normalized difficulty frequencies.
var frequenciesCmd = &cobra.Command{
	Use:   "frequencies [dataset-path]",
	Short: "Show voting difficulty frequencies normalized within each party.",
	Long: `Compute how reported voting difficulty is distributed within each party.

Counts every (party, difficulty) pair and divides each count by the party's
total, so the frequencies for a party always sum to 1.0. This makes parties
of very different sizes directly comparable.

Respondents without a reported difficulty are dropped before counting, so
they never dilute the denominators.

Examples:
  # Frequencies across the whole dataset
  votetab frequencies survey.parquet

  # Focus on respondents who found voting at least somewhat hard
  votetab frequencies survey.parquet --min-level little

  # Export for plotting
  votetab frequencies survey.parquet --output csv --output-file freq.csv

  # Track runs in a local SQLite store
  votetab frequencies survey.parquet --store-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFrequencies(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute frequencies", err)
		}
	},
}
