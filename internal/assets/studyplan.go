package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/inference"
)

const studyPlanTemplateName = "study-plan.md.go.tmpl"

//go:embed templates/study-plan.md.go.tmpl
var fallbackStudyPlanTemplate string

// StudyPlanTemplate is the data a study plan template renders.
// Plan is nil when only the raw generated text is known.
type StudyPlanTemplate struct {
	ExamName        string
	ExamDate        string
	DaysLeft        int
	WeeksLeft       int
	DailyStudyHours float64
	GeneratedAt     time.Time
	Adjusted        bool
	Plan            *inference.StudyPlan
	RawPlan         string
}

func WriteStudyPlan(output io.Writer, templatePath string, data StudyPlanTemplate, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := parseTemplateWithFallback(templatePath, studyPlanTemplateName, fallbackStudyPlanTemplate, logger)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
