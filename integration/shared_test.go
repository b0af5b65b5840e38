//go:build basic || database

// Package integration contains integration tests for votetab.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database tests additionally need Docker: go test -tags database ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/huangsam/votetab/internal/dataset"
)

var (
	// sharedVotetabPath holds the path to a shared votetab binary built once for all tests.
	sharedVotetabPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getVotetabBinary returns the path to the votetab binary, building it once if needed.
func getVotetabBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "votetab-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		votetabPath := filepath.Join(tempDir, "votetab")
		buildCmd := exec.Command("go", "build", "-o", votetabPath, "./cmd/votetab")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build votetab: %v", err))
		}

		sharedVotetabPath = votetabPath
	})

	return sharedVotetabPath
}

// writeSampleDataset writes a small survey parquet file and returns its path.
func writeSampleDataset(t *testing.T) string {
	t.Helper()
	strPtr := func(s string) *string { return &s }

	records := []dataset.RespondentRecord{
		{Party: strPtr("democrat"), VotingDifficulty: strPtr("not")},
		{Party: strPtr("democrat"), VotingDifficulty: strPtr("little")},
		{Party: strPtr("democrat"), VotingDifficulty: strPtr("little")},
		{Party: strPtr("democrat"), VotingDifficulty: strPtr("moderate")},
		{Party: strPtr("republican"), VotingDifficulty: strPtr("not")},
		{Party: strPtr("republican"), VotingDifficulty: strPtr("very")},
		{Party: strPtr("republican"), PresumedReason: strPtr("apathy")},
		{Party: strPtr("republican"), PresumedReason: strPtr("registration")},
	}

	path := filepath.Join(t.TempDir(), "survey.parquet")
	if err := dataset.WriteRespondentRecordsParquet(records, path); err != nil {
		t.Fatalf("failed to write sample dataset: %v", err)
	}
	return path
}

// runVotetabCommand runs the votetab binary with the given args.
func runVotetabCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	votetabPath := getVotetabBinary()
	cmd := exec.Command(votetabPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
