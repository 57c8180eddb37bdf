package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studysaathi/studysaathi/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantDebug: true,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := zap.ReplaceGlobals(zap.NewNop())
			t.Cleanup(restore)

			require.NoError(t, setupLogger(tt.debugMode))
			assert.Equal(t, tt.wantDebug, zap.L().Core().Enabled(zapcore.DebugLevel))
			assert.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Migration commands", cmd.Short)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewMigrateUpCommand(t *testing.T) {
	cmd := newMigrateUpCommand()

	assert.Equal(t, "up", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "test", cfg.Env)

		location, err := loadLocation(cfg)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Kolkata", location.String())
	})

	t.Run("broken config", func(t *testing.T) {
		setConfigFile(t, setupBrokenConfigFile(t))

		_, err := loadConfig()
		assert.Error(t, err)
	})
}

func TestCommands_BrokenConfig(t *testing.T) {
	tests := []struct {
		name    string
		command func() *cobra.Command
		args    []string
	}{
		{
			name:    "migrate up",
			command: newMigrateCommand,
			args:    []string{"up"},
		},
		{
			name:    "progress report",
			command: newProgressCommand,
			args:    []string{"report", "--user", "user-1"},
		},
		{
			name:    "progress export",
			command: newProgressCommand,
			args:    []string{"export", "--user", "user-1", "--format", "yaml"},
		},
		{
			name:    "plan export",
			command: newPlanCommand,
			args:    []string{"export", "--user", "user-1", "--no-pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setConfigFile(t, setupBrokenConfigFile(t))
			cmd := tt.command()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load configuration")
		})
	}
}
