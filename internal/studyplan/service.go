package studyplan

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/inference"
	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/statistics"
	"github.com/studysaathi/studysaathi/internal/user"
)

const defaultDailyStudyHours = 4

//go:generate mockgen -source=service.go -destination=../mocks/studyplan/mock_service.go -package=mock_studyplan

// ProgressReader reads the tracked topics of a user.
type ProgressReader interface {
	TopicProgress(ctx context.Context, userID, subject string) (*progress.Overview, error)
}

type GenerateRequest struct {
	UserID          string
	ExamName        string
	ExamDate        string
	Subjects        []string
	Topics          map[string][]string
	WeakSubjects    map[string]int
	DailyStudyHours float64
}

// Adjustment explains how an adjusted plan weighted each subject.
type Adjustment struct {
	SubjectConfidence map[string]int                        `json:"subjectConfidence"`
	TopicBreakdown    map[string][]statistics.TopicStrength `json:"topicBreakdown"`
}

type Service struct {
	plans    Repository
	profiles user.Repository
	progress ProgressReader
	client   inference.Client
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(plans Repository, profiles user.Repository, progress ProgressReader, client inference.Client, location *time.Location, logger *zap.Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		plans:    plans,
		profiles: profiles,
		progress: progress,
		client:   client,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// ParseExamDate accepts a calendar date or an RFC 3339 timestamp.
func ParseExamDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.Validation("examDate must be a date like 2026-05-17")
}

// Generate creates a plan and makes it the active plan of the user.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Plan, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.ExamName) == "" ||
		strings.TrimSpace(req.ExamDate) == "" || len(req.Subjects) == 0 {
		return nil, apperr.Validation("userId, examName, examDate, and subjects are required")
	}
	examDate, err := ParseExamDate(req.ExamDate)
	if err != nil {
		return nil, err
	}
	if req.Topics == nil {
		req.Topics = map[string][]string{}
	}
	if req.WeakSubjects == nil {
		req.WeakSubjects = map[string]int{}
	}
	if req.DailyStudyHours <= 0 {
		req.DailyStudyHours = defaultDailyStudyHours
	}

	return s.generate(ctx, req.UserID, inference.StudyPlanRequest{
		ExamName:        req.ExamName,
		ExamDate:        examDate,
		Subjects:        req.Subjects,
		Topics:          req.Topics,
		WeakSubjects:    req.WeakSubjects,
		DailyStudyHours: req.DailyStudyHours,
		Today:           s.now().In(s.location),
	}, nil)
}

func (s *Service) generate(ctx context.Context, userID string, req inference.StudyPlanRequest, breakdown map[string][]statistics.TopicStrength) (*Plan, error) {
	response, err := s.client.GenerateStudyPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		UserID:   userID,
		Plan:     database.NewJSON(response.Plan.Structured),
		Metadata: database.NewJSON(response.Metadata),
	}
	if !response.Plan.OK() {
		raw := response.Plan.Raw
		plan.RawPlan = &raw
	}
	if breakdown != nil {
		plan.AdjustedBasedOnProgress = true
		plan.TopicStrengths = database.NewJSON(breakdown)
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.profiles.SetActiveStudyPlan(ctx, userID, plan.ID); err != nil {
		return nil, err
	}
	s.logger.Info("study plan generated",
		zap.String("user_id", userID),
		zap.String("plan_id", plan.ID),
		zap.Bool("structured", response.Plan.OK()),
		zap.Bool("adjusted", plan.AdjustedBasedOnProgress))
	return plan, nil
}

// Active returns the active plan of a user. A nil plan comes with the reason it is missing.
func (s *Service) Active(ctx context.Context, userID string) (*Plan, string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, "", apperr.Validation("userId required")
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.ActiveStudyPlanID == nil || *profile.ActiveStudyPlanID == "" {
		return nil, "No active study plan", nil
	}

	plan, err := s.plans.Get(ctx, *profile.ActiveStudyPlanID)
	if err != nil {
		return nil, "", err
	}
	if plan == nil {
		return nil, "Study plan not found", nil
	}
	return plan, "", nil
}

// Adjust regenerates the plan of a user with subject confidence derived from tracked progress.
func (s *Service) Adjust(ctx context.Context, userID string) (*Plan, *Adjustment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil, apperr.Validation("userId is required")
	}

	overview, err := s.progress.TopicProgress(ctx, userID, "")
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, apperr.NotFound("user %s not found", userID)
	}
	if profile.ExamDate == nil || len(profile.Subjects.V) == 0 {
		return nil, nil, apperr.Validation("profile has no exam date or subjects")
	}

	stats := statistics.CalculateStatistics(overview.Topics)
	adjustment := &Adjustment{
		SubjectConfidence: stats.SubjectConfidence(),
		TopicBreakdown:    stats.TopicBreakdown(),
	}

	dailyHours := profile.DailyStudyHours
	if dailyHours <= 0 {
		dailyHours = defaultDailyStudyHours
	}
	plan, err := s.generate(ctx, userID, inference.StudyPlanRequest{
		ExamName:        profile.ExamName,
		ExamDate:        *profile.ExamDate,
		Subjects:        profile.Subjects.V,
		Topics:          profile.Topics.V,
		WeakSubjects:    adjustment.SubjectConfidence,
		DailyStudyHours: dailyHours,
		Today:           s.now().In(s.location),
	}, adjustment.TopicBreakdown)
	if err != nil {
		return nil, nil, err
	}
	return plan, adjustment, nil
}
