package surveystore

import (
	"errors"
	"fmt"

	"github.com/huangsam/votetab/internal/dataset"
)

// ExecuteRunExport performs the actual export of run tracking data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total frequency rows: %d\n", status.TableSizes[frequencyRowsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all stored frequency rows
	freqRows, err := store.GetAllFrequencyRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve frequency rows: %w", err)
	}

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := dataset.WriteRunRecordsParquet(runs, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	// Write frequency rows to Parquet
	freqFile := outputFile + ".frequency_rows.parquet"
	if err := dataset.WriteStoredFrequencyParquet(freqRows, freqFile); err != nil {
		return fmt.Errorf("failed to write frequency rows: %w", err)
	}
	fmt.Printf("Exported %d frequency rows to: %s\n", len(freqRows), freqFile)

	return nil
}
