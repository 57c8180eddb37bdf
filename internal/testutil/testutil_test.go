package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysaathi/studysaathi/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	info, err := os.Stat(filepath.Join(tmpDir, "plans"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Streak.Timezone)
	assert.Equal(t, filepath.Join(tmpDir, "plans"), cfg.Outputs.PlanDirectory)
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "api_key: fake-key-for-testing")
	assert.Contains(t, string(content), "timezone: Asia/Kolkata")
}

func TestNewMockDB(t *testing.T) {
	db, mock := NewMockDB(t)
	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 2))

	result, err := db.ExecContext(context.Background(), "DELETE FROM notes")
	require.NoError(t, err)
	affected, err := result.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
