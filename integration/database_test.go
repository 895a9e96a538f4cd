//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestVahanlensWithMySQL exercises the CLI against a MySQL backend.
func TestVahanlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "vahanlens",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/vahanlens?parseTime=true", host, port.Port())
	runBackendScenario(t, "mysql", connStr)
}

// TestVahanlensWithPostgres exercises the CLI against a PostgreSQL backend.
func TestVahanlensWithPostgres(t *testing.T) {
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

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runBackendScenario(t, "postgresql", connStr)
}

// runBackendScenario drives a seed/report/clear cycle through the CLI with
// the backend configured via environment variables.
func runBackendScenario(t *testing.T, backend, connStr string) {
	t.Helper()

	_ = os.Setenv("VAHANLENS_STORE_BACKEND", backend)
	_ = os.Setenv("VAHANLENS_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("VAHANLENS_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("VAHANLENS_STORE_DB_CONNECT") }()

	_, err := runVahanlens(t, "store", "clear")
	require.NoError(t, err)

	_, err = runVahanlens(t, "seed", "--seed", "42", "--from", "2024-01", "--to", "2024-06")
	require.NoError(t, err)

	_, err = runVahanlens(t, "store", "status")
	require.NoError(t, err)

	_, err = runVahanlens(t, "summary", "--limit", "5")
	require.NoError(t, err)

	_, err = runVahanlens(t, "growth", "qoq")
	require.NoError(t, err)

	_, err = runVahanlens(t, "store", "clear")
	require.NoError(t, err)
}
