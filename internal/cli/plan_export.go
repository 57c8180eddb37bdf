package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/assets"
	"github.com/studysaathi/studysaathi/internal/pdf"
	"github.com/studysaathi/studysaathi/internal/studyplan"
)

// PlanExport is where ExportPlan wrote a plan.
type PlanExport struct {
	MarkdownPath string
	PDFPath      string
}

// ExportPlan renders plan to <outputDir>/<user>/<plan id>.md and converts it to PDF unless skipPDF is set.
func ExportPlan(plan *studyplan.Plan, outputDir, templatePath string, skipPDF bool, logger *zap.Logger) (*PlanExport, error) {
	metadata := plan.Metadata.V
	data := assets.StudyPlanTemplate{
		ExamName:        metadata.ExamName,
		ExamDate:        metadata.ExamDate,
		DaysLeft:        metadata.DaysLeft,
		WeeksLeft:       metadata.WeeksLeft,
		DailyStudyHours: metadata.DailyStudyHours,
		GeneratedAt:     metadata.GeneratedAt,
		Adjusted:        plan.AdjustedBasedOnProgress,
		Plan:            plan.Plan.V,
	}
	if plan.RawPlan != nil {
		data.RawPlan = *plan.RawPlan
	}

	var buf bytes.Buffer
	if err := assets.WriteStudyPlan(&buf, templatePath, data, logger); err != nil {
		return nil, fmt.Errorf("assets.WriteStudyPlan() > %w", err)
	}

	dir := filepath.Join(outputDir, plan.UserID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	markdownPath := filepath.Join(dir, plan.ID+".md")
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	result := &PlanExport{MarkdownPath: markdownPath}
	if skipPDF {
		return result, nil
	}
	pdfPath, err := pdf.ConvertMarkdownFile(markdownPath)
	if err != nil {
		return nil, fmt.Errorf("pdf.ConvertMarkdownFile() > %w", err)
	}
	result.PDFPath = pdfPath
	return result, nil
}
