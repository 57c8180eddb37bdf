package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/cli"
	"github.com/studysaathi/studysaathi/internal/inference/openai"
	"github.com/studysaathi/studysaathi/internal/motivation"
	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/streak"
	"github.com/studysaathi/studysaathi/internal/strength"
	"github.com/studysaathi/studysaathi/internal/user"
)

type FormatFlag cli.Format

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	format, err := cli.ParseFormat(v)
	if err != nil {
		return err
	}
	*f = FormatFlag(format)
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

func newProgressCommand() *cobra.Command {
	progressCommands := &cobra.Command{
		Use:   "progress",
		Short: "Topic mastery of a learner",
	}

	var userID, subject string
	flags := progressCommands.PersistentFlags()
	flags.StringVar(&userID, "user", "", "User id")
	flags.StringVar(&subject, "subject", "", "Limit topics to one subject")
	_ = progressCommands.MarkPersistentFlagRequired("user")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print topic strengths, statistics, recommendations and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd, userID, subject)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, nil)
		},
	}

	format := FormatFlag(cli.FormatJSON)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the progress report as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadReport(cmd, userID, subject)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, &format)
		},
	}
	exportCmd.Flags().Var(&format, "format", "Output format. Options: json, yaml")

	progressCommands.AddCommand(reportCmd, exportCmd)

	return progressCommands
}

// writeReport prints report as a table, or encodes it when format is set.
func writeReport(w io.Writer, report *cli.ProgressReport, format *FormatFlag) error {
	if format == nil {
		cli.WriteProgressReport(w, report)
		return nil
	}
	if err := cli.WriteExport(w, cli.Format(*format), report); err != nil {
		return fmt.Errorf("cli.WriteExport() > %w", err)
	}
	return nil
}

func loadReport(cmd *cobra.Command, userID, subject string) (*cli.ProgressReport, error) {
	cfg, db, err := openDatabase()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	location, err := loadLocation(cfg)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(cfg.OpenAI, zap.L())
	defer func() {
		_ = client.Close()
	}()

	tracker := progress.NewTracker(progress.NewDBRepository(db), strength.NewScorer(cfg.Scoring))
	streaks := streak.NewTracker(
		streak.NewDBRepository(db),
		user.NewDBRepository(db),
		motivation.NewGenerator(client, zap.L()),
		location,
		zap.L(),
	)
	report, err := cli.LoadProgressReport(cmd.Context(), userID, subject, tracker, streaks)
	if err != nil {
		return nil, fmt.Errorf("cli.LoadProgressReport() > %w", err)
	}
	return report, nil
}
