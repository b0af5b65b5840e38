package core

import (
	"context"
	"time"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/internal/dataset"
	"github.com/huangsam/votetab/internal/outwriter"
	"github.com/huangsam/votetab/schema"
)

// ExecutorFunc defines the function signature for executing different tabulation modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// GetFrequencyResults loads the dataset and computes the party-normalized
// difficulty frequencies, recording the run when tracking is configured.
func GetFrequencyResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.FrequencyRow, error) {
	start := time.Now()

	loaded, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runID, store := beginRunTracking(cfg, mgr, start)

	rows := loaded.Rows
	if cfg.MinLevel != nil {
		rows, err = FilterAboveLevel(rows, schema.DifficultyCol, *cfg.MinLevel)
		if err != nil {
			return nil, err
		}
	}

	result := NormalizedFrequencies(rows)

	if store != nil && runID > 0 {
		if err := store.RecordFrequencyRows(runID, result); err != nil {
			contract.LogWarn("Failed to record frequency rows", err)
		}
	}
	endRunTracking(store, runID, len(loaded.Rows), len(result))

	return result, nil
}

// GetTabulationResults loads the dataset and tabulates value counts for the
// configured column.
func GetTabulationResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.TabulationRow, error) {
	start := time.Now()

	loaded, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runID, store := beginRunTracking(cfg, mgr, start)

	result := Tabulate(loaded.Rows, cfg.Column)
	endRunTracking(store, runID, len(loaded.Rows), len(result))

	return result, nil
}

// GetCrossTabResults loads the dataset and produces the raw
// party-by-difficulty contingency table.
func GetCrossTabResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.CrossTabRow, error) {
	start := time.Now()

	loaded, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runID, store := beginRunTracking(cfg, mgr, start)

	rows := loaded.Rows
	if cfg.MinLevel != nil {
		rows, err = FilterAboveLevel(rows, schema.DifficultyCol, *cfg.MinLevel)
		if err != nil {
			return nil, err
		}
	}

	result := CrossTab(rows)
	endRunTracking(store, runID, len(loaded.Rows), len(result))

	return result, nil
}

// GetReasonsResults loads the dataset and tabulates the presumed blocking
// reasons among nonvoters.
func GetReasonsResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.TabulationRow, error) {
	start := time.Now()

	loaded, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runID, store := beginRunTracking(cfg, mgr, start)

	result := NonvoterReasons(loaded.Rows)
	endRunTracking(store, runID, len(loaded.Rows), len(result))

	return result, nil
}

// ExecuteFrequencies computes the party-normalized difficulty frequencies
// and prints results to stdout. It serves as the main entry point for the
// 'frequencies' command.
func ExecuteFrequencies(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetFrequencyResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteFrequencyResults(result, cfg)
}

// ExecuteTabulate tabulates value counts for the configured column and
// prints results to stdout. It serves as the main entry point for the
// 'tabulate' command.
func ExecuteTabulate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetTabulationResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTabulationResults(result, cfg)
}

// ExecuteCrossTab produces the raw party-by-difficulty contingency table
// and prints results to stdout. It serves as the main entry point for the
// 'crosstab' command.
func ExecuteCrossTab(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetCrossTabResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteCrossTabResults(result, cfg)
}

// ExecuteReasons tabulates the presumed blocking reasons among nonvoters
// and prints results to stdout. It serves as the main entry point for the
// 'reasons' command.
func ExecuteReasons(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetReasonsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTabulationResults(result, cfg)
}

// loadDataset reads and cleans the survey dataset, honoring context
// cancellation before the read starts.
func loadDataset(ctx context.Context, cfg *contract.Config) (*dataset.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dataset.Load(cfg.DatasetPath, cfg.DropPrefix)
}

// beginRunTracking opens a run record when tracking is configured. A zero
// run ID means tracking is disabled or failed; either way the tabulation
// proceeds.
func beginRunTracking(cfg *contract.Config, mgr contract.StoreManager, start time.Time) (int64, contract.RunStore) {
	if mgr == nil {
		return 0, nil
	}
	store := mgr.GetRunStore()
	if store == nil {
		return 0, nil
	}

	configParams := map[string]any{
		"dataset_path": cfg.DatasetPath,
		"column":       string(cfg.Column.Name),
		"output":       string(cfg.Output),
		"result_limit": cfg.ResultLimit,
		"precision":    cfg.Precision,
	}
	if cfg.MinLevel != nil {
		configParams["min_level"] = cfg.MinLevel.String()
	}

	runID, err := store.BeginRun(start, configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0, store
	}
	return runID, store
}

// endRunTracking finalizes the run record. Tracking failures are logged
// and never fail the tabulation itself.
func endRunTracking(store contract.RunStore, runID int64, rowsLoaded, rowsAggregated int) {
	if store == nil || runID <= 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), rowsLoaded, rowsAggregated); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
