// Package dataset reads and writes voter-survey tables as Parquet files
// using github.com/parquet-go/parquet-go.
package dataset

import (
	"os"
	"strings"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
	"github.com/parquet-go/parquet-go"
)

// RespondentRecord is the raw Parquet row of the survey export.
// All three columns are optional at the storage level; validity rules are
// applied when converting to schema.Respondent.
type RespondentRecord struct {
	// Party is the registered party of the respondent (nullable)
	Party *string `parquet:"party,optional,snappy"`

	// VotingDifficulty is the reported difficulty level token (nullable)
	VotingDifficulty *string `parquet:"voting_difficulty,optional,snappy"`

	// PresumedReason is the blocking reason for nonvoters (nullable)
	PresumedReason *string `parquet:"presumed_reason,optional,snappy"`
}

// requiredColumns are the columns the loader refuses to run without.
var requiredColumns = []schema.ColumnName{
	schema.PartyColumn,
	schema.DifficultyColumn,
	schema.ReasonColumn,
}

// LoadResult is the outcome of loading and cleaning a survey dataset.
type LoadResult struct {
	Rows                []schema.Respondent // Cleaned rows, missing-party rows removed
	RowsRead            int                 // Total rows read from the source
	DroppedMissingParty int                 // Rows removed for missing or unknown party
	DroppedColumns      int                 // Raw-export columns ignored by prefix
}

// Load reads the survey dataset at path, verifies the required columns are
// present, ignores every column carrying dropPrefix, and drops rows with a
// missing or unknown party. Any failure surfaces as a DataLoadError carrying
// the source path.
func Load(path, dropPrefix string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, contract.NewDataLoadError(path, "source is unreadable", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, contract.NewDataLoadError(path, "source is unreadable", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, contract.NewDataLoadError(path, "source is not a valid parquet file", err)
	}

	droppedColumns, err := checkColumns(path, pf, dropPrefix)
	if err != nil {
		return nil, err
	}

	// The struct-driven reader materializes only the declared columns, so
	// the prefixed raw-export columns never reach memory.
	records, err := parquet.ReadFile[RespondentRecord](path)
	if err != nil {
		return nil, contract.NewDataLoadError(path, "failed to read rows", err)
	}

	result := &LoadResult{
		RowsRead:       len(records),
		DroppedColumns: droppedColumns,
	}
	result.Rows = make([]schema.Respondent, 0, len(records))

	for _, rec := range records {
		row, ok, err := cleanRecord(path, rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.DroppedMissingParty++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// checkColumns verifies the required columns exist in the file schema and
// counts the raw-export columns that will be ignored.
func checkColumns(path string, pf *parquet.File, dropPrefix string) (int, error) {
	present := make(map[string]struct{})
	dropped := 0
	for _, field := range pf.Schema().Fields() {
		name := field.Name()
		if dropPrefix != "" && strings.HasPrefix(name, dropPrefix) {
			dropped++
			continue
		}
		present[name] = struct{}{}
	}

	for _, col := range requiredColumns {
		if _, ok := present[string(col)]; !ok {
			return 0, contract.NewDataLoadError(path, "missing required column "+string(col), nil)
		}
	}

	return dropped, nil
}

// cleanRecord converts a raw record into a cleaned respondent.
// Rows with a missing or unknown party are excluded (ok=false); an
// unparseable difficulty token means the source is malformed.
func cleanRecord(path string, rec RespondentRecord) (schema.Respondent, bool, error) {
	if rec.Party == nil {
		return schema.Respondent{}, false, nil
	}
	party := schema.Party(strings.ToLower(strings.TrimSpace(*rec.Party)))
	if _, ok := schema.ValidParties[party]; !ok {
		return schema.Respondent{}, false, nil
	}

	row := schema.Respondent{Party: party}

	if rec.VotingDifficulty != nil && strings.TrimSpace(*rec.VotingDifficulty) != "" {
		level, err := schema.ParseDifficulty(strings.ToLower(strings.TrimSpace(*rec.VotingDifficulty)))
		if err != nil {
			return schema.Respondent{}, false, contract.NewDataLoadError(path, "malformed difficulty value", err)
		}
		row.Difficulty = &level
	}

	if rec.PresumedReason != nil {
		row.Reason = strings.TrimSpace(*rec.PresumedReason)
	}

	return row, true, nil
}
