package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a config writing the given format to outputFile.
func testConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      output,
		OutputFile:  outputFile,
		Column:      schema.DifficultyCol,
	}
}

func sampleFrequencyRows() []schema.FrequencyRow {
	return []schema.FrequencyRow{
		{Party: schema.Democrat, Level: schema.LittleDifficult, Count: 2, Freq: 2.0 / 3.0},
		{Party: schema.Democrat, Level: schema.ModeratelyDifficult, Count: 1, Freq: 1.0 / 3.0},
		{Party: schema.Republican, Level: schema.LittleDifficult, Count: 1, Freq: 1.0},
	}
}

func TestWriteFrequencyResultsCSV(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "freq.csv")
	cfg := testConfig(schema.CSVOut, outPath)

	require.NoError(t, WriteFrequencyResults(sampleFrequencyRows(), cfg))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 rows

	assert.Equal(t, []string{"party", "level", "count", "freq"}, records[0])
	assert.Equal(t, []string{"democrat", "little", "2", "0.667"}, records[1])
	assert.Equal(t, []string{"republican", "little", "1", "1.000"}, records[3])
}

func TestWriteFrequencyResultsJSON(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "freq.json")
	cfg := testConfig(schema.JSONOut, outPath)

	require.NoError(t, WriteFrequencyResults(sampleFrequencyRows(), cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var rows []schema.FrequencyRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, schema.LittleDifficult, rows[0].Level)
	assert.InDelta(t, 2.0/3.0, rows[0].Freq, 1e-9)
}

func TestWriteFrequencyResultsText(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "freq.txt")
	cfg := testConfig(schema.TextOut, outPath)

	require.NoError(t, WriteFrequencyResults(sampleFrequencyRows(), cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "democrat")
	assert.Contains(t, text, "moderate")
	assert.Contains(t, text, "Dominant") // republican 1.0 share label
	assert.Contains(t, text, "democrat: 3 respondents")
}

func TestWriteFrequencyResultsParquetRequiresFile(t *testing.T) {
	cfg := testConfig(schema.ParquetOut, "")
	err := WriteFrequencyResults(sampleFrequencyRows(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestWriteTabulationResultsCSV(t *testing.T) {
	rows := []schema.TabulationRow{
		{Value: "apathy", Count: 5, Share: 0.5},
		{Value: "registration", Count: 3, Share: 0.3},
		{Value: "id requirements", Count: 2, Share: 0.2},
	}
	outPath := filepath.Join(t.TempDir(), "tab.csv")
	cfg := testConfig(schema.CSVOut, outPath)

	require.NoError(t, WriteTabulationResults(rows, cfg))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"value", "count", "share"}, records[0])
	assert.Equal(t, []string{"apathy", "5", "0.500"}, records[1])
}

func TestWriteTabulationResultsHonorsLimit(t *testing.T) {
	rows := []schema.TabulationRow{
		{Value: "a", Count: 3, Share: 0.5},
		{Value: "b", Count: 2, Share: 0.3},
		{Value: "c", Count: 1, Share: 0.2},
	}
	outPath := filepath.Join(t.TempDir(), "tab.json")
	cfg := testConfig(schema.JSONOut, outPath)
	cfg.ResultLimit = 2

	require.NoError(t, WriteTabulationResults(rows, cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got []schema.TabulationRow
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 2)
}

func TestWriteCrossTabResultsText(t *testing.T) {
	rows := []schema.CrossTabRow{
		{Party: schema.Democrat, Level: schema.LittleDifficult, Count: 2},
		{Party: schema.Republican, Level: schema.ExtremelyDifficult, Count: 1},
	}
	outPath := filepath.Join(t.TempDir(), "crosstab.txt")
	cfg := testConfig(schema.TextOut, outPath)

	require.NoError(t, WriteCrossTabResults(rows, cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total respondents with a reported difficulty: 3")
}

func TestGetMaxValueWidth(t *testing.T) {
	// Explicit width override wins over detection.
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 60, GetMaxValueWidth(cfg)) // clamped to the max

	cfg.Width = 50
	assert.Equal(t, 15, GetMaxValueWidth(cfg)) // clamped to the min

	cfg.Width = 80
	assert.Equal(t, 40, GetMaxValueWidth(cfg))
}

func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", truncateValue("short", 20))
	assert.Equal(t, "exact", truncateValue("exact", 5))

	long := strings.Repeat("x", 30)
	got := truncateValue(long, 10)
	assert.Len(t, got, 10)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Widths too small for an ellipsis leave the value untouched.
	assert.Equal(t, long, truncateValue(long, 3))
}
