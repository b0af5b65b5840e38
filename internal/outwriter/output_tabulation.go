package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/internal/dataset"
	"github.com/huangsam/votetab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTabulationResults outputs one-dimensional value counts for a column,
// dispatching based on the output format configured. The result limit caps
// the number of rows shown; the share column still reflects the full column
// total.
func WriteTabulationResults(rows []schema.TabulationRow, cfg *contract.Config) error {
	limited := limitTabulation(rows, cfg.ResultLimit)
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, limited)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTabulationCSV(w, limited, fmtFloat, intFmt)
		}, "CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return dataset.WriteTabulationParquet(limited, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTabulationTable(limited, cfg, fmtFloat, intFmt, w)
		}, "table")
	}
}

// writeTabulationTable generates and writes the human-readable table.
func writeTabulationTable(rows []schema.TabulationRow, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	maxWidth := GetMaxValueWidth(cfg)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{string(cfg.Column.Name), "Count", "Share", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := func(share float64) string {
		if cfg.UseColors {
			return contract.GetColorLabel(share)
		}
		return contract.GetPlainLabel(share)
	}

	var data [][]string
	total := 0
	for _, r := range rows {
		data = append(data, []string{
			truncateValue(r.Value, maxWidth),
			fmt.Sprintf(intFmt, r.Count),
			fmtFloat(r.Share),
			label(r.Share),
		})
		total += r.Count
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d values covering %d respondents\n", len(rows), total)
	return err
}

// writeTabulationCSV writes the tabulation in CSV format.
func writeTabulationCSV(w io.Writer, rows []schema.TabulationRow, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"value", "count", "share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				r.Value,
				fmt.Sprintf(intFmt, r.Count),
				fmtFloat(r.Share),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// limitTabulation caps the number of rows without reslicing the caller's data.
func limitTabulation(rows []schema.TabulationRow, limit int) []schema.TabulationRow {
	if limit <= 0 || len(rows) <= limit {
		return rows
	}
	return rows[:limit]
}
