package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysaathi/studysaathi/internal/cli"
	"github.com/studysaathi/studysaathi/internal/streak"
)

func TestFormatFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    FormatFlag
		wantErr bool
	}{
		{
			name:  "json",
			value: "json",
			want:  FormatFlag(cli.FormatJSON),
		},
		{
			name:  "yml alias",
			value: "yml",
			want:  FormatFlag(cli.FormatYAML),
		},
		{
			name:    "invalid value",
			value:   "csv",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag FormatFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestFormatFlag_String(t *testing.T) {
	tests := []struct {
		name string
		flag *FormatFlag
		want string
	}{
		{
			name: "yaml",
			flag: func() *FormatFlag { f := FormatFlag(cli.FormatYAML); return &f }(),
			want: "yaml",
		},
		{
			name: "nil pointer",
			flag: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flag.String())
		})
	}
}

func TestNewProgressCommand(t *testing.T) {
	t.Run("user is required", func(t *testing.T) {
		cmd := newProgressCommand()
		cmd.SetArgs([]string{"report"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "user" not set`)
	})

	t.Run("invalid format", func(t *testing.T) {
		cmd := newProgressCommand()
		cmd.SetArgs([]string{"export", "--user", "user-1", "--format", "xml"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestWriteReport(t *testing.T) {
	report := &cli.ProgressReport{
		UserID: "user-1",
		Streak: &streak.Status{CurrentStreak: 2, LongestStreak: 5},
	}
	yamlFormat := FormatFlag(cli.FormatYAML)

	tests := []struct {
		name   string
		format *FormatFlag
		want   []string
	}{
		{
			name:   "table",
			format: nil,
			want:   []string{"Progress Report: user-1", "Streak: 2 days (longest 5)", "No topics tracked yet."},
		},
		{
			name:   "yaml export",
			format: &yamlFormat,
			want:   []string{"user_id: user-1", "topics: []"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			var buf bytes.Buffer

			err := writeReport(&buf, report, tt.format)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNewPlanCommand(t *testing.T) {
	cmd := newPlanCommand()
	export, _, err := cmd.Find([]string{"export"})
	require.NoError(t, err)

	assert.Equal(t, "export", export.Use)
	for _, name := range []string{"user", "output", "no-pdf"} {
		assert.NotNil(t, export.Flags().Lookup(name), name)
	}
}
