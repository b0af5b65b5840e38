// Package contract provides interfaces, config and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/votetab/schema"
)

// RunStore defines the interface for tracking aggregation runs and storing
// frequency tables. This allows the store layer to be mocked for testing.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, rowsLoaded, rowsAggregated int) error

	// RecordFrequencyRows stores a complete frequency table for a run.
	// The table is written all-or-nothing; partial tables are never recorded.
	RecordFrequencyRows(runID int64, rows []schema.FrequencyRow) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.StoreStatus, error)

	// GetAllRuns returns every tracked run, used for exports
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllFrequencyRows returns every stored frequency row with its run ID
	GetAllFrequencyRows() ([]schema.StoredFrequencyRow, error)

	// Clear removes all tracked runs and frequency rows
	Clear() error

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for accessing the run store.
type StoreManager interface {
	GetRunStore() RunStore
}
