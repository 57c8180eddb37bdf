// Package server exposes the study assistant over a JSON HTTP API.
package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/inference"
	"github.com/studysaathi/studysaathi/internal/notes"
	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/streak"
	"github.com/studysaathi/studysaathi/internal/studyplan"
	"github.com/studysaathi/studysaathi/internal/user"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

// ProgressTracker updates and reads topic progress.
type ProgressTracker interface {
	TrackTimeSpent(ctx context.Context, userID, subject, topic string, minutes int) (*progress.TimeResult, error)
	UpdateConfidence(ctx context.Context, userID, subject, topic string, confidence int) (*progress.ConfidenceResult, error)
	TopicProgress(ctx context.Context, userID, subject string) (*progress.Overview, error)
	Recommendations(ctx context.Context, userID string) (*progress.Recommendations, error)
	RecentTopics(ctx context.Context, userID string, limit int) ([]progress.TopicProgress, error)
}

// StreakTracker records daily activity.
type StreakTracker interface {
	Update(ctx context.Context, userID string) (*streak.Status, error)
	Get(ctx context.Context, userID string) (*streak.Status, error)
}

type NoteService interface {
	Save(ctx context.Context, req notes.SaveRequest) (*notes.Note, error)
	List(ctx context.Context, userID string) ([]notes.Note, error)
}

type StudyPlanService interface {
	Generate(ctx context.Context, req studyplan.GenerateRequest) (*studyplan.Plan, error)
	Active(ctx context.Context, userID string) (*studyplan.Plan, string, error)
	Adjust(ctx context.Context, userID string) (*studyplan.Plan, *studyplan.Adjustment, error)
}

// ContentCache stores generated text under a key.
type ContentCache interface {
	GetOrGenerate(ctx context.Context, key string, generate func(ctx context.Context) (string, error)) (string, bool, error)
}

// Dependencies are the services the handlers call.
type Dependencies struct {
	Progress ProgressTracker
	Streaks  StreakTracker
	Notes    NoteService
	Plans    StudyPlanService
	Profiles user.Repository
	Client   inference.Client
	Cache    ContentCache
	Logger   *zap.Logger
}

// Server holds the HTTP handlers.
type Server struct {
	progress ProgressTracker
	streaks  StreakTracker
	notes    NoteService
	plans    StudyPlanService
	profiles user.Repository
	client   inference.Client
	cache    ContentCache
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a Server.
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		progress: deps.Progress,
		streaks:  deps.Streaks,
		notes:    deps.Notes,
		plans:    deps.Plans,
		profiles: deps.Profiles,
		client:   deps.Client,
		cache:    deps.Cache,
		logger:   logger.Named("server"),
		now:      time.Now,
	}
}
