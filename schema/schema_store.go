package schema

import "time"

// RunRecord represents one aggregation run tracked by the run store.
type RunRecord struct {
	RunID          int64      `json:"run_id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	RunDurationMs  *int64     `json:"run_duration_ms"`
	RowsLoaded     int32      `json:"rows_loaded"`
	RowsAggregated int32      `json:"rows_aggregated"`
	ConfigParams   *string    `json:"config_params"`
}

// StoredFrequencyRow is a frequency row joined with the run that produced it.
type StoredFrequencyRow struct {
	RunID int64 `json:"run_id"`
	FrequencyRow
}

// StoreStatus holds status information about the run store.
type StoreStatus struct {
	Backend     string           `json:"backend"`
	Connected   bool             `json:"connected"`
	TotalRuns   int64            `json:"total_runs"`
	LastRunID   int64            `json:"last_run_id"`
	LastRunTime time.Time        `json:"last_run_time"`
	TableSizes  map[string]int64 `json:"table_sizes"`
}
