package surveystore

import (
	"testing"
	"time"

	"github.com/huangsam/votetab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	assert.NoError(t, store.EndRun(1, time.Now(), 10, 5))
	assert.NoError(t, store.RecordFrequencyRows(1, nil))
	assert.NoError(t, store.Clear())

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	assert.NoError(t, store.Close())
}

func TestRunStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"dataset_path": "/test/survey.parquet",
		"column":       "voting_difficulty",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordFrequencyRows
	rows := []schema.FrequencyRow{
		{Party: schema.Democrat, Level: schema.LittleDifficult, Count: 2, Freq: 2.0 / 3.0},
		{Party: schema.Democrat, Level: schema.ModeratelyDifficult, Count: 1, Freq: 1.0 / 3.0},
		{Party: schema.Republican, Level: schema.LittleDifficult, Count: 1, Freq: 1.0},
	}
	require.NoError(t, store.RecordFrequencyRows(runID, rows))

	// Test EndRun
	require.NoError(t, store.EndRun(runID, time.Now().Add(50*time.Millisecond), 4, 3))

	// Test GetStatus
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, int64(3), status.TableSizes["votetab_frequency_rows"])

	// Test GetAllRuns
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(4), runs[0].RowsLoaded)
	assert.Equal(t, int32(3), runs[0].RowsAggregated)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, "voting_difficulty")

	// Test GetAllFrequencyRows
	stored, err := store.GetAllFrequencyRows()
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, runID, stored[0].RunID)
	assert.Equal(t, schema.Democrat, stored[0].Party)
	assert.Equal(t, schema.LittleDifficult, stored[0].Level)
	assert.InDelta(t, 2.0/3.0, stored[0].Freq, 1e-9)

	// Test Clear
	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRuns)
}

func TestRunStore_SQLiteRoundTripFrequencyRows(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	impl, ok := store.(*RunStoreImpl)
	require.True(t, ok)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)

	rows := []schema.FrequencyRow{
		{Party: schema.Republican, Level: schema.ExtremelyDifficult, Count: 7, Freq: 0.7},
		{Party: schema.Republican, Level: schema.NotDifficult, Count: 3, Freq: 0.3},
	}
	require.NoError(t, store.RecordFrequencyRows(runID, rows))

	got, err := impl.GetFrequencyRows(runID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Rows come back ordered by party then level token.
	assert.Equal(t, schema.ExtremelyDifficult, got[0].Level)
	assert.Equal(t, 7, got[0].Count)
}

func TestRunStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestMockRunStore(t *testing.T) {
	store := NewMockRunStore()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	rows := []schema.FrequencyRow{
		{Party: schema.Democrat, Level: schema.NotDifficult, Count: 1, Freq: 1.0},
	}
	require.NoError(t, store.RecordFrequencyRows(runID, rows))
	require.NoError(t, store.EndRun(runID, time.Now(), 1, 1))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotNil(t, runs[0].EndTime)

	stored, err := store.GetAllFrequencyRows()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, runID, stored[0].RunID)

	require.NoError(t, store.Clear())
	runs, err = store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, store.Close())
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestMockStoreManager(t *testing.T) {
	store := NewMockRunStore()
	mgr := &MockStoreManager{Store: store}
	assert.Equal(t, store, mgr.GetRunStore())
}
