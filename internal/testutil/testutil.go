// Package testutil provides shared test helpers for config files and mocked databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and its output directory for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "plans")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`env: test
server:
  port: 18080
  cors:
    allowed_origins:
      - http://localhost:5173
database:
  host: 127.0.0.1
  port: 3306
  database: studysaathi_test
  username: test
streak:
  timezone: Asia/Kolkata
outputs:
  plan_directory: %s
`, outputDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that build an LLM client.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// NewMockDB returns a sqlx handle backed by sqlmock. Unmet expectations fail the test on cleanup.
func NewMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "mysql"), mock
}
