package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/cli"
	"github.com/studysaathi/studysaathi/internal/inference/openai"
	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/strength"
	"github.com/studysaathi/studysaathi/internal/studyplan"
	"github.com/studysaathi/studysaathi/internal/user"
)

func newPlanCommand() *cobra.Command {
	planCommands := &cobra.Command{
		Use:   "plan",
		Short: "Study plan commands",
	}

	var (
		userID    string
		outputDir string
		skipPDF   bool
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active study plan of a user as Markdown and PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			location, err := loadLocation(cfg)
			if err != nil {
				return err
			}
			client := openai.NewClient(cfg.OpenAI, zap.L())
			defer func() {
				_ = client.Close()
			}()

			service := studyplan.NewService(
				studyplan.NewDBRepository(db),
				user.NewDBRepository(db),
				progress.NewTracker(progress.NewDBRepository(db), strength.NewScorer(cfg.Scoring)),
				client,
				location,
				zap.L(),
			)
			plan, message, err := service.Active(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("service.Active() > %w", err)
			}
			if plan == nil {
				return fmt.Errorf("user %s: %s", userID, message)
			}

			if outputDir == "" {
				outputDir = cfg.Outputs.PlanDirectory
			}
			result, err := cli.ExportPlan(plan, outputDir, cfg.Templates.StudyPlanTemplate, skipPDF, zap.L())
			if err != nil {
				return fmt.Errorf("cli.ExportPlan() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Markdown: %s\n", result.MarkdownPath)
			if result.PDFPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "PDF: %s\n", result.PDFPath)
			}
			return nil
		},
	}
	flags := exportCmd.Flags()
	flags.StringVar(&userID, "user", "", "User id")
	flags.StringVar(&outputDir, "output", "", "Output directory. Defaults to outputs.plan_directory")
	flags.BoolVar(&skipPDF, "no-pdf", false, "Only write the Markdown file")
	_ = exportCmd.MarkFlagRequired("user")

	planCommands.AddCommand(exportCmd)

	return planCommands
}
