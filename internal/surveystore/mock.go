package surveystore

import (
	"sort"
	"time"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
)

// MockRunStore is an in-memory RunStore for testing.
type MockRunStore struct {
	NextRunID int64
	Runs      map[int64]schema.RunRecord
	Frequency map[int64][]schema.FrequencyRow
	Closed    bool
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// NewMockRunStore creates an empty in-memory store.
func NewMockRunStore() *MockRunStore {
	return &MockRunStore{
		NextRunID: 1,
		Runs:      make(map[int64]schema.RunRecord),
		Frequency: make(map[int64][]schema.FrequencyRow),
	}
}

// BeginRun creates a new run and returns its unique ID.
func (m *MockRunStore) BeginRun(startTime time.Time, _ map[string]any) (int64, error) {
	id := m.NextRunID
	m.NextRunID++
	m.Runs[id] = schema.RunRecord{RunID: id, StartTime: startTime}
	return id, nil
}

// EndRun updates the run with completion data.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, rowsLoaded, rowsAggregated int) error {
	rec := m.Runs[runID]
	rec.EndTime = &endTime
	durationMs := endTime.Sub(rec.StartTime).Milliseconds()
	rec.RunDurationMs = &durationMs
	rec.RowsLoaded = int32(rowsLoaded)
	rec.RowsAggregated = int32(rowsAggregated)
	m.Runs[runID] = rec
	return nil
}

// RecordFrequencyRows stores a complete frequency table for a run.
func (m *MockRunStore) RecordFrequencyRows(runID int64, rows []schema.FrequencyRow) error {
	m.Frequency[runID] = append([]schema.FrequencyRow(nil), rows...)
	return nil
}

// GetStatus returns status information about the run store.
func (m *MockRunStore) GetStatus() (schema.StoreStatus, error) {
	return schema.StoreStatus{
		Backend:   "mock",
		Connected: !m.Closed,
		TotalRuns: int64(len(m.Runs)),
	}, nil
}

// GetAllRuns returns every tracked run sorted by run ID.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	ids := make([]int64, 0, len(m.Runs))
	for id := range m.Runs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	results := make([]schema.RunRecord, 0, len(ids))
	for _, id := range ids {
		results = append(results, m.Runs[id])
	}
	return results, nil
}

// GetAllFrequencyRows returns every stored frequency row sorted by run ID.
func (m *MockRunStore) GetAllFrequencyRows() ([]schema.StoredFrequencyRow, error) {
	ids := make([]int64, 0, len(m.Frequency))
	for id := range m.Frequency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var results []schema.StoredFrequencyRow
	for _, id := range ids {
		for _, r := range m.Frequency[id] {
			results = append(results, schema.StoredFrequencyRow{RunID: id, FrequencyRow: r})
		}
	}
	return results, nil
}

// Clear removes all tracked runs and frequency rows.
func (m *MockRunStore) Clear() error {
	m.Runs = make(map[int64]schema.RunRecord)
	m.Frequency = make(map[int64][]schema.FrequencyRow)
	return nil
}

// Close marks the store as closed.
func (m *MockRunStore) Close() error {
	m.Closed = true
	return nil
}

// MockStoreManager is a StoreManager backed by a MockRunStore.
type MockStoreManager struct {
	Store contract.RunStore
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore returns the mock store.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	return m.Store
}
