//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestVotetabWithMySQL tests run tracking against a MySQL backend.
func TestVotetabWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "votetab",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/votetab?parseTime=true", host, port.Port())
	runStoreLifecycle(t, "mysql", connStr)
}

// TestVotetabWithPostgres tests run tracking against a PostgreSQL backend.
func TestVotetabWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runStoreLifecycle(t, "postgresql", connStr)
}

// runStoreLifecycle drives the run-tracking lifecycle through the CLI
// against the given backend.
func runStoreLifecycle(t *testing.T, backend, connStr string) {
	t.Helper()

	// Set environment variables for the child processes
	_ = os.Setenv("VOTETAB_STORE_BACKEND", backend)
	_ = os.Setenv("VOTETAB_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("VOTETAB_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("VOTETAB_STORE_DB_CONNECT") }()

	path := writeSampleDataset(t)

	// Apply schema migrations
	out, err := runVotetabCommand(t, "store", "migrate")
	require.NoError(t, err, "store migrate failed: %s", out)

	// Start from a clean slate
	out, err = runVotetabCommand(t, "store", "clear")
	require.NoError(t, err, "store clear failed: %s", out)

	// Record one tracked run
	out, err = runVotetabCommand(t, "frequencies", path, "--output", "json")
	require.NoError(t, err, "frequencies failed: %s", out)

	out, err = runVotetabCommand(t, "store", "status")
	require.NoError(t, err, "store status failed: %s", out)
	assert.Contains(t, out, "Total Runs: 1")
	assert.Contains(t, out, "votetab_frequency_rows")

	// Export the recorded runs to parquet
	exportBase := t.TempDir() + "/runs"
	out, err = runVotetabCommand(t, "store", "export", "--output-file", exportBase)
	require.NoError(t, err, "store export failed: %s", out)
	_, err = os.Stat(exportBase + ".runs.parquet")
	assert.NoError(t, err)
	_, err = os.Stat(exportBase + ".frequency_rows.parquet")
	assert.NoError(t, err)

	out, err = runVotetabCommand(t, "store", "clear")
	require.NoError(t, err, "store clear failed: %s", out)
}
