package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/internal/dataset"
	"github.com/huangsam/votetab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFrequencyResults outputs the party-normalized frequency table,
// dispatching based on the output format configured.
func WriteFrequencyResults(rows []schema.FrequencyRow, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFrequencyCSV(w, rows, fmtFloat, intFmt)
		}, "CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return dataset.WriteFrequencyParquet(rows, cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFrequencyTable(rows, cfg, fmtFloat, intFmt, w)
		}, "table")
	}
}

// writeFrequencyTable generates and writes the human-readable table.
func writeFrequencyTable(rows []schema.FrequencyRow, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Party", "Level", "Count", "Freq", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := func(freq float64) string {
		if cfg.UseColors {
			return contract.GetColorLabel(freq)
		}
		return contract.GetPlainLabel(freq)
	}

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			string(r.Party),
			r.Level.String(),
			fmt.Sprintf(intFmt, r.Count),
			fmtFloat(r.Freq),
			label(r.Freq),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totals := make(map[schema.Party]int)
	for _, r := range rows {
		totals[r.Party] += r.Count
	}
	for _, party := range schema.AllParties {
		if n, ok := totals[party]; ok {
			if _, err := fmt.Fprintf(writer, "%s: %d respondents with a reported difficulty\n", party, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeFrequencyCSV writes the frequency table in CSV format.
func writeFrequencyCSV(w io.Writer, rows []schema.FrequencyRow, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"party", "level", "count", "freq"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				string(r.Party),
				r.Level.String(),
				fmt.Sprintf(intFmt, r.Count),
				fmtFloat(r.Freq),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// WriteCrossTabResults outputs the raw party-by-difficulty counts,
// dispatching based on the output format configured.
func WriteCrossTabResults(rows []schema.CrossTabRow, cfg *contract.Config) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"party", "level", "count"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, r := range rows {
					rec := []string{string(r.Party), r.Level.String(), strconv.Itoa(r.Count)}
					if err := cw.Write(rec); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return dataset.WriteCrossTabParquet(rows, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Party", "Level", "Count"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})

			var data [][]string
			total := 0
			for _, r := range rows {
				data = append(data, []string{string(r.Party), r.Level.String(), fmt.Sprintf(intFmt, r.Count)})
				total += r.Count
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Total respondents with a reported difficulty: %d\n", total)
			return err
		}, "table")
	}
}
