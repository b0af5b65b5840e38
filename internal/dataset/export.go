package dataset

import (
	"fmt"
	"os"

	"github.com/huangsam/votetab/schema"
	"github.com/parquet-go/parquet-go"
)

// FrequencyRecord maps a frequency table row to Parquet columns.
type FrequencyRecord struct {
	Party string  `parquet:"party,snappy"`
	Level string  `parquet:"level,snappy"`
	Count int32   `parquet:"count,snappy"`
	Freq  float64 `parquet:"freq,snappy"`
}

// TabulationRecord maps a tabulation row to Parquet columns.
type TabulationRecord struct {
	Value string  `parquet:"value,snappy"`
	Count int32   `parquet:"count,snappy"`
	Share float64 `parquet:"share,snappy"`
}

// CrossTabRecord maps a contingency table row to Parquet columns.
type CrossTabRecord struct {
	Party string `parquet:"party,snappy"`
	Level string `parquet:"level,snappy"`
	Count int32  `parquet:"count,snappy"`
}

// writeParquet writes a slice of records to a Parquet file using struct
// schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteFrequencyParquet writes a frequency table to a Parquet file.
func WriteFrequencyParquet(rows []schema.FrequencyRow, outputPath string) error {
	records := make([]FrequencyRecord, len(rows))
	for i, r := range rows {
		records[i] = FrequencyRecord{
			Party: string(r.Party),
			Level: r.Level.String(),
			Count: int32(r.Count),
			Freq:  r.Freq,
		}
	}
	return writeParquet(records, outputPath)
}

// WriteTabulationParquet writes a tabulation table to a Parquet file.
func WriteTabulationParquet(rows []schema.TabulationRow, outputPath string) error {
	records := make([]TabulationRecord, len(rows))
	for i, r := range rows {
		records[i] = TabulationRecord{
			Value: r.Value,
			Count: int32(r.Count),
			Share: r.Share,
		}
	}
	return writeParquet(records, outputPath)
}

// WriteCrossTabParquet writes a contingency table to a Parquet file.
func WriteCrossTabParquet(rows []schema.CrossTabRow, outputPath string) error {
	records := make([]CrossTabRecord, len(rows))
	for i, r := range rows {
		records[i] = CrossTabRecord{
			Party: string(r.Party),
			Level: r.Level.String(),
			Count: int32(r.Count),
		}
	}
	return writeParquet(records, outputPath)
}

// WriteRespondentRecordsParquet writes raw survey records to a Parquet file.
// Used by tests and the sample data generator.
func WriteRespondentRecordsParquet(records []RespondentRecord, outputPath string) error {
	return writeParquet(records, outputPath)
}

// RunExportRecord maps a tracked run to Parquet columns.
type RunExportRecord struct {
	RunID          int64   `parquet:"run_id,snappy"`
	StartTime      int64   `parquet:"start_time,timestamp(millisecond),snappy"`
	EndTime        *int64  `parquet:"end_time,optional,timestamp(millisecond),snappy"`
	RunDurationMs  *int64  `parquet:"run_duration_ms,optional,snappy"`
	RowsLoaded     int32   `parquet:"rows_loaded,snappy"`
	RowsAggregated int32   `parquet:"rows_aggregated,snappy"`
	ConfigParams   *string `parquet:"config_params,optional,snappy"`
}

// StoredFrequencyRecord maps a stored frequency row to Parquet columns.
type StoredFrequencyRecord struct {
	RunID int64   `parquet:"run_id,snappy"`
	Party string  `parquet:"party,snappy"`
	Level string  `parquet:"level,snappy"`
	Count int32   `parquet:"count,snappy"`
	Freq  float64 `parquet:"freq,snappy"`
}

// WriteRunRecordsParquet writes tracked runs to a Parquet file.
func WriteRunRecordsParquet(runs []schema.RunRecord, outputPath string) error {
	records := make([]RunExportRecord, len(runs))
	for i, r := range runs {
		rec := RunExportRecord{
			RunID:          r.RunID,
			StartTime:      r.StartTime.UnixMilli(),
			RunDurationMs:  r.RunDurationMs,
			RowsLoaded:     r.RowsLoaded,
			RowsAggregated: r.RowsAggregated,
			ConfigParams:   r.ConfigParams,
		}
		if r.EndTime != nil {
			endMillis := r.EndTime.UnixMilli()
			rec.EndTime = &endMillis
		}
		records[i] = rec
	}
	return writeParquet(records, outputPath)
}

// WriteStoredFrequencyParquet writes stored frequency rows to a Parquet file.
func WriteStoredFrequencyParquet(rows []schema.StoredFrequencyRow, outputPath string) error {
	records := make([]StoredFrequencyRecord, len(rows))
	for i, r := range rows {
		records[i] = StoredFrequencyRecord{
			RunID: r.RunID,
			Party: string(r.Party),
			Level: r.Level.String(),
			Count: int32(r.Count),
			Freq:  r.Freq,
		}
	}
	return writeParquet(records, outputPath)
}
